// Package sqlrecords contiene el SQL compartido por las fuentes postgres y sqlite.
package sqlrecords

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"shelter-outcomes/internal/domain/outcomes"
)

// Dialect encapsula lo que cambia entre motores.
type Dialect struct {
	Name        string
	Placeholder func(n int) string // n es 1-based
	TextType    string
	FloatType   string
	BoolType    string
}

var (
	Postgres = Dialect{
		Name:        "postgres",
		Placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
		TextType:    "TEXT",
		FloatType:   "DOUBLE PRECISION",
		BoolType:    "BOOLEAN",
	}
	SQLite = Dialect{
		Name:        "sqlite",
		Placeholder: func(int) string { return "?" },
		TextType:    "TEXT",
		FloatType:   "REAL",
		BoolType:    "INTEGER",
	}
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// textColumns en el orden en que se leen/escriben.
var textColumns = []outcomes.Column{
	outcomes.ColDatetime,
	outcomes.ColSex,
	outcomes.ColBreed,
	outcomes.ColColor,
	outcomes.ColOutcomeType,
	outcomes.ColOutcomeSubtype,
	outcomes.ColWeekday,
	outcomes.ColMonth,
	outcomes.ColOutcomeYear,
	outcomes.ColHour,
}

// ValidateTable evita inyección vía nombre de tabla (viene de config).
func ValidateTable(table string) error {
	if !identRe.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	return nil
}

// SelectSQL arma el SELECT con casts a texto para columnas categóricas.
func SelectSQL(table string) string {
	cols := []string{"outcome_age_days"}
	for _, c := range textColumns {
		cols = append(cols, fmt.Sprintf("COALESCE(CAST(%s AS TEXT), '')", c))
	}
	cols = append(cols, "COALESCE(cfa_breed, FALSE)")
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), table)
}

// CreateTableSQL arma el DDL de la tabla de outcomes.
func CreateTableSQL(d Dialect, table string) string {
	cols := []string{"outcome_age_days " + d.FloatType + " NOT NULL"}
	for _, c := range textColumns {
		cols = append(cols, string(c)+" "+d.TextType)
	}
	cols = append(cols, "cfa_breed "+d.BoolType)
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", table, strings.Join(cols, ",\n\t"))
}

// InsertSQL arma el INSERT de un record.
func InsertSQL(d Dialect, table string) string {
	names := []string{"outcome_age_days"}
	for _, c := range textColumns {
		names = append(names, string(c))
	}
	names = append(names, "cfa_breed")

	ph := make([]string, len(names))
	for i := range ph {
		ph[i] = d.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(names, ", "), strings.Join(ph, ", "))
}

// ReadAll ejecuta SelectSQL y escanea records crudos.
func ReadAll(ctx context.Context, db *sql.DB, table string) ([]outcomes.Record, error) {
	if err := ValidateTable(table); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, SelectSQL(table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]outcomes.Record, 0)
	for rows.Next() {
		var r outcomes.Record
		if err := rows.Scan(
			&r.AgeDays,
			&r.Datetime,
			&r.SexUponOutcome,
			&r.Breed,
			&r.Color,
			&r.OutcomeType,
			&r.OutcomeSubtype,
			&r.OutcomeWeekday,
			&r.OutcomeMonth,
			&r.OutcomeYear,
			&r.OutcomeHour,
			&r.CFABreed,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// WriteAll crea la tabla si falta e inserta recs en una transacción.
func WriteAll(ctx context.Context, db *sql.DB, d Dialect, table string, recs []outcomes.Record) error {
	if err := ValidateTable(table); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, CreateTableSQL(d, table)); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, InsertSQL(d, table))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range recs {
		if _, err := stmt.ExecContext(ctx,
			r.AgeDays,
			r.Datetime,
			r.SexUponOutcome,
			r.Breed,
			r.Color,
			r.OutcomeType,
			r.OutcomeSubtype,
			r.OutcomeWeekday,
			r.OutcomeMonth,
			r.OutcomeYear,
			r.OutcomeHour,
			r.CFABreed,
		); err != nil {
			return fmt.Errorf("insert row %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}
