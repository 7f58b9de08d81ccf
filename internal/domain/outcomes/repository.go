package outcomes

import "context"

// Source entrega los records crudos (sin columnas derivadas).
// Implementaciones: csvfile, remote, postgres, sqlite, memory.
type Source interface {
	Name() string
	ReadRecords(ctx context.Context) ([]Record, error)
}
