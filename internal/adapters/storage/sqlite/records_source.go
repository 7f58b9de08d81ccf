package sqlite

import (
	"context"
	"database/sql"

	"shelter-outcomes/internal/adapters/storage/sqlrecords"
	"shelter-outcomes/internal/domain/outcomes"
)

// RecordSource lee outcomes desde una tabla SQLite.
type RecordSource struct {
	db    *sql.DB
	table string
}

func NewRecordSource(db *sql.DB, table string) *RecordSource {
	return &RecordSource{db: db, table: table}
}

func (s *RecordSource) Name() string { return "sqlite:" + s.table }

func (s *RecordSource) ReadRecords(ctx context.Context) ([]outcomes.Record, error) {
	return sqlrecords.ReadAll(ctx, s.db, s.table)
}

// Import crea la tabla (si falta) e inserta recs.
func (s *RecordSource) Import(ctx context.Context, recs []outcomes.Record) error {
	return sqlrecords.WriteAll(ctx, s.db, sqlrecords.SQLite, s.table, recs)
}
