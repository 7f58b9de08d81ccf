package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `outcome_age_(days),datetime,sex_upon_outcome,breed,color,outcome_type,outcome_subtype,outcome_weekday,outcome_month,outcome_year,outcome_hour,cfa_breed
30,2021-01-05 10:00:00,Male,Siamese,Cream,Adoption,,Tuesday,1,2021,10,true
60,2021-01-10 12:30:00,Female,Persian,White,Adoption,Foster,Sunday,1,2021,12,true
400,2021-06-01 09:15:00,Male,Domestic Shorthair,Black,Transfer,Partner,Tuesday,6,2021,9,false
`

func writeCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shelter.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestView_KPIsWithAgeFilter(t *testing.T) {
	csv := writeCSV(t)

	out, err := run(t, "view", "overview-kpis", "--source", csv, "--age-min", "0", "--age-max", "12", "--kpi", "Adoption")
	require.NoError(t, err)

	var res struct {
		Records int `json:"records"`
		KPIs    []struct {
			Category   string  `json:"category"`
			Percentage float64 `json:"percentage"`
		} `json:"kpis"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Records)
	require.Len(t, res.KPIs, 1)
	assert.Equal(t, 100.0, res.KPIs[0].Percentage)
}

func TestViewsAndMeta(t *testing.T) {
	csv := writeCSV(t)

	out, err := run(t, "views", "--source", csv)
	require.NoError(t, err)
	assert.Contains(t, out, "breed-scatter")

	out, err = run(t, "meta", "--source", csv)
	require.NoError(t, err)
	assert.Contains(t, out, `"min_date": "2021-01-05"`)
}

func TestPage(t *testing.T) {
	out, err := run(t, "page", "age", "--source", writeCSV(t), "--outcome-type", "Adoption", "--bins", "5")
	require.NoError(t, err)

	var res map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Contains(t, res, "age-strip")
	assert.Contains(t, res, "age-stacked")
}

func TestView_Errors(t *testing.T) {
	csv := writeCSV(t)

	_, err := run(t, "view", "nope", "--source", csv)
	assert.Error(t, err)

	_, err = run(t, "view", "age-strip", "--source", csv, "--age-min", "9", "--age-max", "1")
	assert.Error(t, err)

	_, err = run(t, "view", "age-strip", "--source", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestView_BreedWithCommaIsOneValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breeds.csv")
	require.NoError(t, os.WriteFile(path, []byte(`outcome_age_days,datetime,breed,outcome_type
30,2021-01-05,"Persian, Longhair",Adoption
60,2021-01-10,Persian,Adoption
90,2021-02-01,Longhair,Transfer
`), 0o644))

	out, err := run(t, "view", "age-strip", "--source", path, "--breed", "Persian, Longhair")
	require.NoError(t, err)

	var res struct {
		Records int `json:"records"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 1, res.Records)
}

func TestView_ZeroBinsRejected(t *testing.T) {
	_, err := run(t, "view", "age-stacked", "--source", writeCSV(t), "--bins", "0")
	assert.ErrorContains(t, err, "bins")
}

func TestImport_IntoSQLiteThenQuery(t *testing.T) {
	csv := writeCSV(t)
	db := "sqlite://" + filepath.Join(t.TempDir(), "shelter.db")

	out, err := run(t, "import", "--source", csv, "--to", db)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 3 records")

	out, err = run(t, "view", "subtypes-sunburst", "--source", db)
	require.NoError(t, err)
	assert.Contains(t, out, `"records": 3`)
}

func TestImport_RejectsReadOnlyDestination(t *testing.T) {
	csv := writeCSV(t)

	_, err := run(t, "import", "--source", csv, "--to", csv)
	assert.ErrorContains(t, err, "does not accept imports")
}
