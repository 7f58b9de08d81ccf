package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		in     string
		kind   Kind
		target string
	}{
		{"data/shelter.csv", KindFile, "data/shelter.csv"},
		{"file:///srv/shelter.csv", KindFile, "/srv/shelter.csv"},
		{"https://example.org/shelter.csv", KindHTTP, "https://example.org/shelter.csv"},
		{"postgres://u:p@localhost/db", KindPostgres, "postgres://u:p@localhost/db"},
		{"postgresql://localhost/db", KindPostgres, "postgresql://localhost/db"},
		{"sqlite:///tmp/shelter.db", KindSQLite, "/tmp/shelter.db"},
	}
	for _, c := range cases {
		kind, target := Detect(c.in)
		assert.Equal(t, c.kind, kind, c.in)
		assert.Equal(t, c.target, target, c.in)
	}
}

func TestOpen_SQLiteSupportsImport(t *testing.T) {
	h, err := Open("sqlite://:memory:", Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	assert.Equal(t, KindSQLite, h.Kind)
	_, ok := h.Importer()
	assert.True(t, ok)
}

func TestOpen_FileHasNoImporter(t *testing.T) {
	h, err := Open("shelter.csv", Options{})
	require.NoError(t, err)

	_, ok := h.Importer()
	assert.False(t, ok)
	assert.NoError(t, h.Close())
}

func TestOpen_EmptySource(t *testing.T) {
	_, err := Open("sqlite://", Options{})
	require.Error(t, err)
}
