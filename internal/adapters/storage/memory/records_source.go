package memory

import (
	"context"
	"sync"

	"shelter-outcomes/internal/domain/outcomes"
)

// RecordSource guarda records crudos en memoria (fixtures, imports, tests).
type RecordSource struct {
	mu   sync.RWMutex
	name string
	recs []outcomes.Record
}

func NewRecordSource(name string, recs ...outcomes.Record) *RecordSource {
	if name == "" {
		name = "memory"
	}
	return &RecordSource{
		name: name,
		recs: append([]outcomes.Record(nil), recs...),
	}
}

func (s *RecordSource) Name() string { return s.name }

// Add agrega records al final.
func (s *RecordSource) Add(recs ...outcomes.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = append(s.recs, recs...)
}

// ReadRecords devuelve una copia: el llamador puede mutarla sin afectar la fuente.
func (s *RecordSource) ReadRecords(ctx context.Context) ([]outcomes.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]outcomes.Record, len(s.recs))
	copy(out, s.recs)
	return out, nil
}

// Import reemplaza el contenido (misma firma que postgres/sqlite).
func (s *RecordSource) Import(ctx context.Context, recs []outcomes.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = append([]outcomes.Record(nil), recs...)
	return nil
}
