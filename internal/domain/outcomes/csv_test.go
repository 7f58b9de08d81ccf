package outcomes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeffOutcome_Age_(Days),datetime,Sex Upon Outcome,breed,color,outcome_type,outcome_subtype,outcome_weekday,outcome_month,outcome_year,outcome_hour,cfa_breed,extra\n" +
	"30,2021-01-05 10:00:00,Male,Siamese,Cream,Adoption,,Tuesday,1,2021,10,TRUE,x\n" +
	"400, 2021-06-01 09:15:00,Female,Domestic Shorthair,Black,Transfer,Partner,Tuesday,6,2021,9,,y\n"

func TestReadCSV_ParsesRows(t *testing.T) {
	recs, err := ReadCSV("sample.csv", strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, Record{
		AgeDays:        30,
		Datetime:       "2021-01-05 10:00:00",
		SexUponOutcome: "Male",
		Breed:          "Siamese",
		Color:          "Cream",
		OutcomeType:    "Adoption",
		OutcomeWeekday: "Tuesday",
		OutcomeMonth:   "1",
		OutcomeYear:    "2021",
		OutcomeHour:    "10",
		CFABreed:       true,
	}, recs[0])
	assert.Equal(t, "2021-06-01 09:15:00", recs[1].Datetime)
	assert.Equal(t, "Partner", recs[1].OutcomeSubtype)
	assert.False(t, recs[1].CFABreed)
}

func TestReadCSV_OptionalColumnsMayBeMissing(t *testing.T) {
	recs, err := ReadCSV("min.csv", strings.NewReader("outcome_age_(days),datetime,outcome_type\n12,2020-03-01,Adoption\n"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].Breed)
	assert.False(t, recs[0].CFABreed)
}

func TestReadCSV_Errors(t *testing.T) {
	cases := map[string]struct {
		in  string
		row int
	}{
		"empty":          {in: "", row: 0},
		"missing column": {in: "datetime,outcome_type\n2021-01-01,Adoption\n", row: 0},
		"bad age":        {in: "outcome_age_days,datetime,outcome_type\n30,2021-01-01,Adoption\nabc,2021-01-01,Adoption\n", row: 2},
		"bad bool":       {in: "outcome_age_days,datetime,outcome_type,cfa_breed\n30,2021-01-01,Adoption,maybe\n", row: 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadCSV("bad.csv", strings.NewReader(tc.in))
			require.ErrorIs(t, err, ErrLoad)

			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tc.row, le.Row)
			assert.Equal(t, "bad.csv", le.Source)
		})
	}
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, ColAgeDays, NormalizeHeader(" Outcome_Age_(Days) "))
	assert.Equal(t, ColSex, NormalizeHeader("Sex Upon Outcome"))
	assert.Equal(t, ColCFABreed, NormalizeHeader("cfa-breed"))
	assert.Equal(t, ColAgeDays, NormalizeHeader("\ufeffoutcome_age_days"))
}

func TestParseBool(t *testing.T) {
	for in, want := range map[string]bool{"": false, "TRUE": true, "1": true, "0": false, "yes": true, "No": false} {
		got, err := ParseBool(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseBool("maybe")
	assert.Error(t, err)
}
