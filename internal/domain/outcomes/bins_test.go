package outcomes

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agesDataset(t *testing.T, days ...float64) *Dataset {
	t.Helper()
	recs := make([]Record, len(days))
	for i, d := range days {
		recs[i] = Record{AgeDays: d, Datetime: "2021-01-01", OutcomeType: "Adoption"}
	}
	return mustDataset(t, recs)
}

func TestBin_LabelsAndAssignment(t *testing.T) {
	// 0, 600, 1500, 3000 días => 0, 20, 50, 100 meses
	ds := agesDataset(t, 0, 600, 1500, 3000)

	v, labels, err := Bin(ds.All(), ColAgeMonths, ColAgeGroup, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"0.0-20.0", "20.0-40.0", "40.0-60.0", "60.0-80.0", "80.0-100.1"}, labels)

	got := make([]string, v.Len())
	for i := range got {
		got[i], _ = v.Value(i, ColAgeGroup)
	}
	assert.Equal(t, []string{"0.0-20.0", "20.0-40.0", "40.0-60.0", "80.0-100.1"}, got)
}

func TestBin_EveryRecordInExactlyOneContiguousBin(t *testing.T) {
	ds := mustDataset(t, shelterRecords())

	for _, n := range []int{MinBins, 7, DefaultBins, MaxBins} {
		v, labels, err := Bin(ds.All(), ColAgeMonths, ColAgeGroup, n)
		require.NoError(t, err)
		require.Len(t, labels, n)

		vals := make([]float64, ds.Len())
		for i := range vals {
			vals[i] = float64(ds.Record(i).AgeMonths)
		}
		edges := BinEdges(vals, n)
		require.Len(t, edges, n+1)
		for i := 1; i < len(edges); i++ {
			assert.Greater(t, edges[i], edges[i-1])
		}

		for i := 0; i < v.Len(); i++ {
			label, ok := v.Value(i, ColAgeGroup)
			require.True(t, ok)
			k := indexOf(labels, label)
			require.GreaterOrEqual(t, k, 0, label)

			age := float64(v.Record(i).AgeMonths)
			assert.GreaterOrEqual(t, age, edges[k])
			assert.Less(t, age, edges[k+1])
		}
	}
}

func TestBin_DegenerateRange(t *testing.T) {
	ds := agesDataset(t, 150, 150, 150)

	v, labels, err := Bin(ds.All(), ColAgeMonths, ColAgeGroup, MinBins)
	require.NoError(t, err)
	require.Len(t, labels, MinBins)

	tbl, err := CountBy(v, ColAgeGroup)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, 3, tbl.Rows[0].Count)
}

func TestBin_DoesNotTouchDataset(t *testing.T) {
	ds := mustDataset(t, shelterRecords())

	_, _, err := Bin(ds.All(), ColAgeMonths, ColAgeGroup, DefaultBins)
	require.NoError(t, err)
	assert.False(t, ds.All().HasColumn(ColAgeGroup))
}

func TestBin_Errors(t *testing.T) {
	ds := mustDataset(t, shelterRecords())
	for name, tc := range map[string]struct {
		src, dst Column
		n        int
	}{
		"too few":     {ColAgeMonths, ColAgeGroup, MinBins - 1},
		"too many":    {ColAgeMonths, ColAgeGroup, MaxBins + 1},
		"unknown src": {"nope", ColAgeGroup, 10},
		"not numeric": {ColBreed, ColAgeGroup, 10},
		"shadow dst":  {ColAgeMonths, ColSex, 10},
	} {
		_, _, err := Bin(ds.All(), tc.src, tc.dst, tc.n)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
}

func TestBin_EmptyView(t *testing.T) {
	ds := mustDataset(t, shelterRecords())
	v, err := Apply(ds.All(), Filters{Breeds: []string{"Sphynx"}})
	require.NoError(t, err)

	bv, labels, err := Bin(v, ColAgeMonths, ColAgeGroup, DefaultBins)
	require.NoError(t, err)
	assert.Empty(t, labels)
	assert.True(t, bv.HasColumn(ColAgeGroup))
}

func TestFormatEdge(t *testing.T) {
	for in, want := range map[float64]string{
		0:        "0.0",
		12.5:     "12.5",
		100.1:    "100.1",
		-0.15:    "-0.15",
		0.000123: "0.000123",
		3.14159:  "3.142",
	} {
		assert.Equal(t, want, formatEdge(in), strconv.FormatFloat(in, 'g', -1, 64))
	}
}

func indexOf(xs []string, s string) int {
	for i, x := range xs {
		if x == s {
			return i
		}
	}
	return -1
}
