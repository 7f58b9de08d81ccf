package sqlite

import (
	"context"
	"testing"

	"shelter-outcomes/internal/domain/outcomes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSource_ImportThenRead(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	src := NewRecordSource(db, "animal_outcomes")
	ctx := context.Background()

	in := []outcomes.Record{
		{AgeDays: 30, Datetime: "2021-01-05 10:00:00", SexUponOutcome: "Male", OutcomeType: "Adoption", CFABreed: true},
		{AgeDays: 400, Datetime: "2021-06-01 08:30:00", SexUponOutcome: "Female", OutcomeType: "Transfer", OutcomeSubtype: "Partner"},
	}
	require.NoError(t, src.Import(ctx, in))

	got, err := src.ReadRecords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 30.0, got[0].AgeDays)
	assert.Equal(t, "Adoption", got[0].OutcomeType)
	assert.True(t, got[0].CFABreed)
	assert.Equal(t, "", got[0].OutcomeSubtype)
	assert.Equal(t, "Partner", got[1].OutcomeSubtype)
	assert.False(t, got[1].CFABreed)

	ds, err := outcomes.Load(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, "sqlite:animal_outcomes", ds.Source)
	assert.Equal(t, 1, ds.Record(0).AgeMonths)
}

func TestRecordSource_RejectsBadTableName(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	src := NewRecordSource(db, "outcomes; DROP TABLE x")
	_, err = src.ReadRecords(context.Background())
	require.Error(t, err)
}

func TestRecordSource_MissingTableIsLoadError(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = outcomes.Load(context.Background(), NewRecordSource(db, "animal_outcomes"))
	require.ErrorIs(t, err, outcomes.ErrLoad)
}
