package memory

import (
	"context"
	"testing"

	"shelter-outcomes/internal/domain/outcomes"
)

func TestRecordSource_ReadReturnsCopy(t *testing.T) {
	src := NewRecordSource("", outcomes.Record{AgeDays: 10, Datetime: "2021-01-01", OutcomeType: "Adoption"})
	src.Add(outcomes.Record{AgeDays: 20, Datetime: "2021-01-02", OutcomeType: "Transfer"})

	recs, err := src.ReadRecords(context.Background())
	if err != nil {
		t.Fatalf("ReadRecords returned error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}

	recs[0].OutcomeType = "mutated"
	again, _ := src.ReadRecords(context.Background())
	if again[0].OutcomeType != "Adoption" {
		t.Fatalf("source was mutated through returned slice")
	}
	if src.Name() != "memory" {
		t.Fatalf("expected default name memory, got %q", src.Name())
	}
}

func TestRecordSource_ImportReplaces(t *testing.T) {
	src := NewRecordSource("fixture", outcomes.Record{AgeDays: 10})
	if err := src.Import(context.Background(), []outcomes.Record{{AgeDays: 1}, {AgeDays: 2}}); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	recs, _ := src.ReadRecords(context.Background())
	if len(recs) != 2 || recs[0].AgeDays != 1 {
		t.Fatalf("unexpected records after import: %#v", recs)
	}
}
