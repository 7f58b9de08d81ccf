package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"shelter-outcomes/internal/domain/outcomes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `outcome_age_(days),datetime,sex_upon_outcome,breed,color,outcome_type,outcome_subtype,cfa_breed,count
30,2021-01-05 10:00:00,Male,Domestic Shorthair,Black,Adoption,,True,1
60,2021-01-10 11:00:00,Female,Siamese,Cream,Adoption,Foster,False,1
`

func TestSource_ReadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelter.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	src := NewSource(path)
	recs, err := src.ReadRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "Domestic Shorthair", recs[0].Breed)
	assert.True(t, recs[0].CFABreed)
	assert.Equal(t, "Foster", recs[1].OutcomeSubtype)
	assert.Equal(t, "file:"+path, src.Name())
}

func TestSource_MissingFileIsLoadError(t *testing.T) {
	_, err := outcomes.Load(context.Background(), NewSource(filepath.Join(t.TempDir(), "nope.csv")))
	require.ErrorIs(t, err, outcomes.ErrLoad)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
