package outcomes

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var requiredColumns = []Column{ColAgeDays, ColDatetime, ColOutcomeType}

// ReadCSV parsea un CSV con header en records crudos.
// Los headers se normalizan: "outcome_age_(days)" => "outcome_age_days".
// Columnas desconocidas se ignoran; las categóricas faltantes quedan vacías.
func ReadCSV(source string, r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Source: source, Err: errors.New("empty csv")}
		}
		return nil, &LoadError{Source: source, Err: fmt.Errorf("read header: %w", err)}
	}

	pos := map[Column]int{}
	for i, h := range header {
		c := NormalizeHeader(h)
		if _, dup := pos[c]; !dup {
			pos[c] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := pos[c]; !ok {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("missing required column %q", c)}
		}
	}

	get := func(row []string, c Column) string {
		i, ok := pos[c]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []Record
	for n := 1; ; n++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Source: source, Row: n, Err: err}
		}

		age, err := strconv.ParseFloat(get(row, ColAgeDays), 64)
		if err != nil {
			return nil, &LoadError{Source: source, Row: n, Err: fmt.Errorf("outcome_age_days: %w", err)}
		}

		cfa, err := ParseBool(get(row, ColCFABreed))
		if err != nil {
			return nil, &LoadError{Source: source, Row: n, Err: fmt.Errorf("cfa_breed: %w", err)}
		}

		out = append(out, Record{
			AgeDays:        age,
			Datetime:       get(row, ColDatetime),
			SexUponOutcome: get(row, ColSex),
			Breed:          get(row, ColBreed),
			Color:          get(row, ColColor),
			OutcomeType:    get(row, ColOutcomeType),
			OutcomeSubtype: get(row, ColOutcomeSubtype),
			OutcomeWeekday: get(row, ColWeekday),
			OutcomeMonth:   get(row, ColMonth),
			OutcomeYear:    get(row, ColOutcomeYear),
			OutcomeHour:    get(row, ColHour),
			CFABreed:       cfa,
		})
	}

	return out, nil
}

// NormalizeHeader: minúsculas, sin espacios extremos, espacios/guiones => "_", sin paréntesis.
func NormalizeHeader(h string) Column {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	h = strings.NewReplacer("(", "", ")", "", " ", "_", "-", "_").Replace(h)
	return Column(h)
}

// ParseBool acepta true/false, 1/0, yes/no. Vacío => false.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return false, nil
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}
