package outcomes

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// ComputePage y los tests concurrentes no deben dejar goroutines vivas.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// scenarioRecords: los tres records del escenario end-to-end.
func scenarioRecords() []Record {
	return []Record{
		{AgeDays: 30, Datetime: "2021-01-05 10:00:00", SexUponOutcome: "Male", OutcomeType: "Adoption"},
		{AgeDays: 60, Datetime: "2021-01-10 12:30:00", SexUponOutcome: "Female", OutcomeType: "Adoption"},
		{AgeDays: 400, Datetime: "2021-06-01 09:15:00", SexUponOutcome: "Male", OutcomeType: "Transfer"},
	}
}

// shelterRecords: dataset más variado para vistas y propiedades.
func shelterRecords() []Record {
	return []Record{
		{AgeDays: 30, Datetime: "2020-01-05 10:00:00", SexUponOutcome: "Neutered Male", Breed: "Siamese", Color: "Cream", OutcomeType: "Transfer", OutcomeSubtype: "Partner", OutcomeWeekday: "Sunday", OutcomeMonth: "1", OutcomeYear: "2020", OutcomeHour: "10", CFABreed: true},
		{AgeDays: 60, Datetime: "2020-02-11 11:00:00", SexUponOutcome: "Spayed Female", Breed: "Domestic Shorthair", Color: "Black", OutcomeType: "Adoption", OutcomeSubtype: "", OutcomeWeekday: "Tuesday", OutcomeMonth: "2", OutcomeYear: "2020", OutcomeHour: "11", CFABreed: false},
		{AgeDays: 90, Datetime: "2020-02-12 16:00:00", SexUponOutcome: "Neutered Male", Breed: "Domestic Shorthair", Color: "Black", OutcomeType: "Adoption", OutcomeSubtype: "Foster", OutcomeWeekday: "Wednesday", OutcomeMonth: "2", OutcomeYear: "2020", OutcomeHour: "16", CFABreed: false},
		{AgeDays: 365, Datetime: "2020-12-24 09:00:00", SexUponOutcome: "Intact Female", Breed: "Persian", Color: "White", OutcomeType: "Return to Owner", OutcomeSubtype: "", OutcomeWeekday: "Thursday", OutcomeMonth: "12", OutcomeYear: "2020", OutcomeHour: "9", CFABreed: true},
		{AgeDays: 10, Datetime: "2021-01-02 08:00:00", SexUponOutcome: "Unknown", Breed: "Domestic Shorthair", Color: "Brown Tabby", OutcomeType: "Transfer", OutcomeSubtype: "SCRP", OutcomeWeekday: "Saturday", OutcomeMonth: "1", OutcomeYear: "2021", OutcomeHour: "8", CFABreed: false},
		{AgeDays: 1200, Datetime: "2021-03-15 14:00:00", SexUponOutcome: "Spayed Female", Breed: "Siamese", Color: "Seal Point", OutcomeType: "Adoption", OutcomeSubtype: "", OutcomeWeekday: "Monday", OutcomeMonth: "3", OutcomeYear: "2021", OutcomeHour: "14", CFABreed: true},
		{AgeDays: 720, Datetime: "2021-03-20 17:00:00", SexUponOutcome: "Neutered Male", Breed: "Persian", Color: "White", OutcomeType: "Adoption", OutcomeSubtype: "Foster", OutcomeWeekday: "Saturday", OutcomeMonth: "3", OutcomeYear: "2021", OutcomeHour: "17", CFABreed: true},
		{AgeDays: 45, Datetime: "2021-11-30 12:00:00", SexUponOutcome: "Intact Male", Breed: "Domestic Shorthair", Color: "Orange Tabby", OutcomeType: "Euthanasia", OutcomeSubtype: "Suffering", OutcomeWeekday: "Tuesday", OutcomeMonth: "11", OutcomeYear: "2021", OutcomeHour: "12", CFABreed: false},
	}
}

func mustDataset(t *testing.T, recs []Record) *Dataset {
	t.Helper()
	ds, err := NewDataset("test", recs)
	require.NoError(t, err)
	return ds
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }
