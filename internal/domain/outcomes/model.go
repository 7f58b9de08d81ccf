package outcomes

import (
	"strconv"
	"time"
)

// Column identifica una columna consultable del dataset.
type Column string

const (
	ColAgeDays        Column = "outcome_age_days"
	ColAgeMonths      Column = "outcome_age_months"
	ColDatetime       Column = "datetime"
	ColDate           Column = "date"
	ColMonthName      Column = "month_name"
	ColYear           Column = "year"
	ColMonthYear      Column = "month_year"
	ColSex            Column = "sex_upon_outcome"
	ColBreed          Column = "breed"
	ColColor          Column = "color"
	ColOutcomeType    Column = "outcome_type"
	ColOutcomeSubtype Column = "outcome_subtype"
	ColWeekday        Column = "outcome_weekday"
	ColMonth          Column = "outcome_month"
	ColOutcomeYear    Column = "outcome_year"
	ColHour           Column = "outcome_hour"
	ColCFABreed       Column = "cfa_breed"

	// ColAgeGroup no existe en el dataset; lo agrega Bin sobre una View.
	ColAgeGroup Column = "age_group_months"
)

// DateLayout es el formato de la columna derivada date.
const DateLayout = "2006-01-02"

// Record es un evento de salida (outcome) del refugio.
// Los campos derivados los completa NewDataset; las fuentes solo llenan los crudos.
type Record struct {
	AgeDays        float64
	Datetime       string
	SexUponOutcome string
	Breed          string
	Color          string
	OutcomeType    string
	OutcomeSubtype string
	OutcomeWeekday string
	OutcomeMonth   string
	OutcomeYear    string
	OutcomeHour    string
	CFABreed       bool

	// Derivados
	AgeMonths int
	Date      time.Time
	MonthName string
	Year      string
	MonthYear string
}

// Value devuelve el valor de la columna como string (forma usada en grupos y labels).
func (r Record) Value(c Column) (string, bool) {
	switch c {
	case ColAgeDays:
		return strconv.FormatFloat(r.AgeDays, 'f', -1, 64), true
	case ColAgeMonths:
		return strconv.Itoa(r.AgeMonths), true
	case ColDatetime:
		return r.Datetime, true
	case ColDate:
		return r.Date.Format(DateLayout), true
	case ColMonthName:
		return r.MonthName, true
	case ColYear:
		return r.Year, true
	case ColMonthYear:
		return r.MonthYear, true
	case ColSex:
		return r.SexUponOutcome, true
	case ColBreed:
		return r.Breed, true
	case ColColor:
		return r.Color, true
	case ColOutcomeType:
		return r.OutcomeType, true
	case ColOutcomeSubtype:
		return r.OutcomeSubtype, true
	case ColWeekday:
		return r.OutcomeWeekday, true
	case ColMonth:
		return r.OutcomeMonth, true
	case ColOutcomeYear:
		return r.OutcomeYear, true
	case ColHour:
		return r.OutcomeHour, true
	case ColCFABreed:
		return strconv.FormatBool(r.CFABreed), true
	default:
		return "", false
	}
}

// KnownColumn indica si c es una columna del dataset (no incluye columnas de View).
func KnownColumn(c Column) bool {
	_, ok := Record{}.Value(c)
	return ok
}

// Dataset es la colección inmutable de records ya normalizados.
// Se comparte en solo-lectura entre requests concurrentes.
type Dataset struct {
	ID       string
	Source   string
	LoadedAt time.Time

	records []Record
}

// Len devuelve la cantidad de records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Record devuelve una copia del record i.
func (d *Dataset) Record(i int) Record {
	return d.records[i]
}

// All devuelve una View sin filtros sobre todo el dataset.
func (d *Dataset) All() View {
	idx := make([]int, d.Len())
	for i := range idx {
		idx[i] = i
	}
	return View{ds: d, idx: idx}
}

// DateBounds devuelve la fecha mínima y máxima observadas.
func (d *Dataset) DateBounds() (time.Time, time.Time) {
	var lo, hi time.Time
	for i, r := range d.records {
		if i == 0 || r.Date.Before(lo) {
			lo = r.Date
		}
		if i == 0 || r.Date.After(hi) {
			hi = r.Date
		}
	}
	return lo, hi
}

// AgeBounds devuelve la edad mínima y máxima (en meses) observadas.
func (d *Dataset) AgeBounds() (int, int) {
	var lo, hi int
	for i, r := range d.records {
		if i == 0 || r.AgeMonths < lo {
			lo = r.AgeMonths
		}
		if i == 0 || r.AgeMonths > hi {
			hi = r.AgeMonths
		}
	}
	return lo, hi
}
