package outcomes

import "time"

// PageName agrupa las vistas que la capa de presentación muestra juntas.
type PageName string

const (
	PageOverview      PageName = "overview"
	PageSubtypes      PageName = "subtypes"
	PageDistributions PageName = "distributions"
	PageAge           PageName = "age"
	PageBreed         PageName = "breed"
)

// PageDefaults son los valores iniciales sugeridos para los controles de una página.
type PageDefaults struct {
	Page         PageName   `json:"page"`
	Views        []ViewName `json:"views"`
	WindowMonths int        `json:"window_months"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	AgeMin       int        `json:"age_min"`
	AgeMax       int        `json:"age_max"`
	OutcomeType  string     `json:"outcome_type,omitempty"`
	Bins         int        `json:"bins,omitempty"`
	CFABreed     *bool      `json:"cfa_breed,omitempty"`
}

type pageSpec struct {
	name         PageName
	windowMonths int
	ageMax       int
	outcome      bool
	bins         bool
	cfa          bool
}

var pages = []pageSpec{
	{name: PageOverview, windowMonths: 36, ageMax: 12},
	{name: PageSubtypes, windowMonths: 12, ageMax: 12, outcome: true},
	{name: PageDistributions, windowMonths: 12, ageMax: 12, outcome: true},
	{name: PageAge, windowMonths: 12, ageMax: 150, outcome: true, bins: true},
	{name: PageBreed, windowMonths: 12, ageMax: 24, cfa: true},
}

// Pages devuelve los nombres de página en orden de navegación.
func Pages() []PageName {
	out := make([]PageName, len(pages))
	for i, p := range pages {
		out[i] = p.name
	}
	return out
}

// PageViews devuelve las vistas built-in de una página.
func PageViews(page PageName) []ViewName {
	var out []ViewName
	for _, d := range builtinViews {
		if d.info.Page == page {
			out = append(out, d.info.Name)
		}
	}
	return out
}

// DefaultOutcomeType es la selección inicial del dropdown de outcome: el 2º
// outcome_type distinto (el 1º si hay uno solo).
func DefaultOutcomeType(ds *Dataset) string {
	all, _ := Distinct(ds.All(), ColOutcomeType, OrderFirstSeen)
	switch {
	case len(all) > 1:
		return all[1]
	case len(all) == 1:
		return all[0]
	}
	return ""
}

// Meta resume el dataset para poblar los controles de la capa de presentación.
type Meta struct {
	DatasetID    string         `json:"dataset_id"`
	Source       string         `json:"source"`
	LoadedAt     time.Time      `json:"loaded_at"`
	Records      int            `json:"records"`
	MinDate      string         `json:"min_date"`
	MaxDate      string         `json:"max_date"`
	MinAgeMonths int            `json:"min_age_months"`
	MaxAgeMonths int            `json:"max_age_months"`
	Sexes        []string       `json:"sexes"`
	Breeds       []string       `json:"breeds"`
	Colors       []string       `json:"colors"`
	OutcomeTypes []string       `json:"outcome_types"`
	KPIDefaults  []string       `json:"kpi_defaults"`
	Pages        []PageDefaults `json:"pages"`
}

// BuildMeta calcula límites, opciones de dropdowns y defaults por página.
// El fin de ventana por defecto es la fecha mínima + N meses, acotado a la máxima.
func BuildMeta(ds *Dataset) Meta {
	all := ds.All()
	lo, hi := ds.DateBounds()
	ageLo, ageHi := ds.AgeBounds()

	distinct := func(c Column) []string {
		vals, _ := Distinct(all, c, OrderFirstSeen)
		return vals
	}

	m := Meta{
		DatasetID:    ds.ID,
		Source:       ds.Source,
		LoadedAt:     ds.LoadedAt,
		Records:      ds.Len(),
		MinDate:      lo.Format(DateLayout),
		MaxDate:      hi.Format(DateLayout),
		MinAgeMonths: ageLo,
		MaxAgeMonths: ageHi,
		Sexes:        distinct(ColSex),
		Breeds:       distinct(ColBreed),
		Colors:       distinct(ColColor),
		OutcomeTypes: distinct(ColOutcomeType),
		KPIDefaults:  DefaultKPICategories(ds),
	}

	for _, p := range pages {
		end := lo.AddDate(0, p.windowMonths, 0)
		if end.After(hi) {
			end = hi
		}
		d := PageDefaults{
			Page:         p.name,
			Views:        PageViews(p.name),
			WindowMonths: p.windowMonths,
			StartDate:    lo.Format(DateLayout),
			EndDate:      end.Format(DateLayout),
			AgeMin:       ageLo,
			AgeMax:       p.ageMax,
		}
		if p.outcome {
			d.OutcomeType = DefaultOutcomeType(ds)
		}
		if p.bins {
			d.Bins = DefaultBins
		}
		if p.cfa {
			cfa := true
			d.CFABreed = &cfa
		}
		m.Pages = append(m.Pages, d)
	}
	return m
}
