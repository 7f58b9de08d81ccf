package outcomes

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"
)

// AgeRange filtra outcome_age_months en [Min, Max] inclusive.
type AgeRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// DateRange filtra date en [Start, End] inclusive (fechas calendario).
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// UnmarshalJSON acepta YYYY-MM-DD o RFC3339, igual que el query string.
func (d *DateRange) UnmarshalJSON(b []byte) error {
	var raw struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		in   string
		out  *time.Time
	}{
		{"dates.start", raw.Start, &d.Start},
		{"dates.end", raw.End, &d.End},
	} {
		if f.in == "" {
			continue
		}
		t, err := parseDateParam(f.in)
		if err != nil {
			return invalid(f.name, "%v", err)
		}
		*f.out = t
	}
	return nil
}

// Filters es la conjunción de filtros opcionales. Campo ausente = sin restricción.
type Filters struct {
	Age   *AgeRange  `json:"age,omitempty"`
	Dates *DateRange `json:"dates,omitempty"`

	// Multi-select: lista vacía o nil = sin restricción.
	Sexes  []string `json:"sexes,omitempty"`
	Breeds []string `json:"breeds,omitempty"`
	Colors []string `json:"colors,omitempty"`

	// Igualdad: outcome_type, outcome_weekday, outcome_month, outcome_year, ...
	Equals   map[Column]string `json:"equals,omitempty"`
	CFABreed *bool             `json:"cfa_breed,omitempty"`
}

// equalityColumns fija el orden de aplicación de los filtros de igualdad.
var equalityColumns = []Column{
	ColOutcomeType,
	ColOutcomeSubtype,
	ColWeekday,
	ColMonth,
	ColOutcomeYear,
	ColHour,
	ColSex,
	ColBreed,
	ColColor,
	ColMonthYear,
	ColYear,
}

// Validate detecta parámetros contradictorios o mal formados.
func (f Filters) Validate() error {
	if f.Age != nil {
		if f.Age.Min < 0 || f.Age.Max < 0 {
			return invalid("age", "bounds must be non-negative, got [%d,%d]", f.Age.Min, f.Age.Max)
		}
		if f.Age.Min > f.Age.Max {
			return invalid("age", "min %d greater than max %d", f.Age.Min, f.Age.Max)
		}
	}
	if f.Dates != nil {
		if f.Dates.Start.IsZero() || f.Dates.End.IsZero() {
			return invalid("date_range", "start and end required")
		}
		if f.Dates.Start.After(f.Dates.End) {
			return invalid("date_range", "start %s after end %s",
				f.Dates.Start.Format(DateLayout), f.Dates.End.Format(DateLayout))
		}
	}
	for c := range f.Equals {
		if !isEqualityColumn(c) {
			return invalid("equals", "unsupported column %q", c)
		}
	}
	return nil
}

// Apply aplica los filtros en orden fijo: edad, multi-selects, fechas, igualdad.
// El resultado no depende del orden (es una conjunción); el orden es solo de costo.
func Apply(v View, f Filters) (View, error) {
	if err := f.Validate(); err != nil {
		return View{}, err
	}

	if f.Age != nil {
		lo, hi := f.Age.Min, f.Age.Max
		v = v.where(func(i int) bool {
			m := v.Record(i).AgeMonths
			return m >= lo && m <= hi
		})
	}

	v = whereIn(v, ColSex, f.Sexes)
	v = whereIn(v, ColBreed, f.Breeds)
	v = whereIn(v, ColColor, f.Colors)

	if f.Dates != nil {
		start, end := truncateDay(f.Dates.Start), truncateDay(f.Dates.End)
		v = v.where(func(i int) bool {
			d := v.Record(i).Date
			return !d.Before(start) && !d.After(end)
		})
	}

	for _, c := range equalityColumns {
		want, ok := f.Equals[c]
		if !ok {
			continue
		}
		v = WhereEquals(v, c, want)
	}

	if f.CFABreed != nil {
		want := *f.CFABreed
		v = v.where(func(i int) bool { return v.Record(i).CFABreed == want })
	}

	return v, nil
}

// WhereEquals conserva los records cuyo valor en c es exactamente want.
// Sirve también para columnas locales de la view (p.ej. age_group_months).
func WhereEquals(v View, c Column, want string) View {
	return v.where(func(i int) bool {
		got, _ := v.Value(i, c)
		return got == want
	})
}

func whereIn(v View, c Column, values []string) View {
	if len(values) == 0 {
		return v
	}
	set := make(map[string]struct{}, len(values))
	for _, s := range values {
		set[s] = struct{}{}
	}
	return v.where(func(i int) bool {
		got, _ := v.Value(i, c)
		_, ok := set[got]
		return ok
	})
}

func isEqualityColumn(c Column) bool {
	for _, ec := range equalityColumns {
		if ec == c {
			return true
		}
	}
	return false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// sortedKeys devuelve las columnas de igualdad presentes, ordenadas por nombre.
func (f Filters) sortedKeys() []Column {
	out := make([]Column, 0, len(f.Equals))
	for c := range f.Equals {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Describe arma un resumen legible (para logs) de los filtros activos.
func (f Filters) Describe() map[string]any {
	out := map[string]any{}
	if f.Age != nil {
		out["age"] = strconv.Itoa(f.Age.Min) + "-" + strconv.Itoa(f.Age.Max)
	}
	if f.Dates != nil {
		out["dates"] = f.Dates.Start.Format(DateLayout) + ".." + f.Dates.End.Format(DateLayout)
	}
	if len(f.Sexes) > 0 {
		out["sexes"] = len(f.Sexes)
	}
	if len(f.Breeds) > 0 {
		out["breeds"] = len(f.Breeds)
	}
	if len(f.Colors) > 0 {
		out["colors"] = len(f.Colors)
	}
	for _, c := range f.sortedKeys() {
		out[string(c)] = f.Equals[c]
	}
	if f.CFABreed != nil {
		out["cfa_breed"] = *f.CFABreed
	}
	return out
}
