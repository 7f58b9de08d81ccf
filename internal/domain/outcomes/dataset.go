package outcomes

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var dateLayouts = []string{
	DateLayout,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02T15:04:05",
}

// Load lee los records de src y deriva las columnas calendario/edad una sola vez.
// Cualquier falla se devuelve como *LoadError.
func Load(ctx context.Context, src Source) (*Dataset, error) {
	if src == nil {
		return nil, &LoadError{Source: "<nil>", Err: errors.New("source required")}
	}

	recs, err := src.ReadRecords(ctx)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			return nil, err
		}
		return nil, &LoadError{Source: src.Name(), Err: err}
	}

	return NewDataset(src.Name(), recs)
}

// NewDataset normaliza recs (se copian) y arma un Dataset inmutable.
func NewDataset(source string, recs []Record) (*Dataset, error) {
	if len(recs) == 0 {
		return nil, &LoadError{Source: source, Err: errors.New("no records")}
	}

	out := make([]Record, len(recs))
	for i, r := range recs {
		if err := derive(&r); err != nil {
			return nil, &LoadError{Source: source, Row: i + 1, Err: err}
		}
		out[i] = r
	}

	return &Dataset{
		ID:       uuid.NewString(),
		Source:   source,
		LoadedAt: time.Now().UTC(),
		records:  out,
	}, nil
}

func derive(r *Record) error {
	if math.IsNaN(r.AgeDays) || math.IsInf(r.AgeDays, 0) || r.AgeDays < 0 {
		return fmt.Errorf("outcome_age_days must be a non-negative number, got %v", r.AgeDays)
	}

	d, err := ParseDatetime(r.Datetime)
	if err != nil {
		return err
	}

	// Redondeo half-to-even (45 días => 2 meses, 75 => 2).
	r.AgeMonths = int(math.RoundToEven(r.AgeDays / 30))
	r.Date = d
	r.MonthName = d.Month().String()
	r.Year = d.Format("2006")
	r.MonthYear = r.MonthName + "-" + r.Year
	return nil
}

// ParseDatetime toma el primer token de un timestamp y lo interpreta como fecha calendario.
func ParseDatetime(raw string) (time.Time, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return time.Time{}, errors.New("datetime required")
	}
	tok := fields[0]
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, tok); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	if t, err := time.Parse(time.RFC3339, tok); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unparseable datetime %q", raw)
}
