package outcomes

// ViewName identifica una vista agregada con nombre.
type ViewName string

const (
	ViewOverviewKPIs      ViewName = "overview-kpis"
	ViewOverviewTimeline  ViewName = "overview-timeline"
	ViewSubtypesSunburst  ViewName = "subtypes-sunburst"
	ViewSubtypesBar       ViewName = "subtypes-bar"
	ViewDistributionOpts  ViewName = "distribution-options"
	ViewDistributionHists ViewName = "distribution-histograms"
	ViewAgeStrip          ViewName = "age-strip"
	ViewAgeStacked        ViewName = "age-stacked"
	ViewBreedScatter      ViewName = "breed-scatter"
)

const (
	defaultPeriod   = ColMonthYear
	defaultKPICount = 3
)

// Params son los valores que la capa de presentación toma de sus controles.
// Todo es opcional; ausente = sin restricción.
type Params struct {
	// Filtros comunes: edad, fechas, sexo, raza, color, cfa_breed.
	// Filters.Equals no se admite: la igualdad llega por OutcomeType,
	// Weekday, Month y Year. Compute lo rechaza con ErrInvalidInput.
	Filters Filters

	OutcomeType string
	Period      Column // date | month_year | year
	Bins        *int   // nil = DefaultBins; cualquier otro valor se valida en [5,100]
	KPIs        []string

	// Dropdowns secundarios de la página de distribuciones.
	Weekday string
	Month   string
	Year    string
}

// Result es lo que se devuelve a la capa de presentación.
type Result struct {
	View      ViewName            `json:"view"`
	DatasetID string              `json:"dataset_id"`
	Records   int                 `json:"records"`
	Tables    map[string]Table    `json:"tables,omitempty"`
	KPIs      []KPI               `json:"kpis,omitempty"`
	Options   map[string][]string `json:"options,omitempty"`
	// AxisOrder: orden de categorías del eje x cuando el período es month_year.
	AxisOrder []string `json:"axis_order,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// ViewInfo describe una vista para listados (/views, CLI).
type ViewInfo struct {
	Name        ViewName `json:"name"`
	Page        PageName `json:"page,omitempty"`
	Description string   `json:"description"`
	Custom      bool     `json:"custom,omitempty"`
}

type viewFunc func(ds *Dataset, p Params) (Result, error)

type viewDef struct {
	info ViewInfo
	run  viewFunc
}

var builtinViews = []viewDef{
	{ViewInfo{Name: ViewOverviewKPIs, Page: PageOverview, Description: "percentage of total outcomes for up to three outcome types"}, overviewKPIs},
	{ViewInfo{Name: ViewOverviewTimeline, Page: PageOverview, Description: "outcome counts per period and outcome type"}, overviewTimeline},
	{ViewInfo{Name: ViewSubtypesSunburst, Page: PageSubtypes, Description: "outcome counts per outcome type and subtype"}, subtypesSunburst},
	{ViewInfo{Name: ViewSubtypesBar, Page: PageSubtypes, Description: "subtype counts per period for one outcome type"}, subtypesBar},
	{ViewInfo{Name: ViewDistributionOpts, Page: PageDistributions, Description: "weekday, month and year options for one outcome type"}, distributionOptions},
	{ViewInfo{Name: ViewDistributionHists, Page: PageDistributions, Description: "subtype histograms by hour, weekday and month"}, distributionHistograms},
	{ViewInfo{Name: ViewAgeStrip, Page: PageAge, Description: "outcome counts per age in months, outcome type and sex"}, ageStrip},
	{ViewInfo{Name: ViewAgeStacked, Page: PageAge, Description: "sex percentage within each age group for one outcome type"}, ageStacked},
	{ViewInfo{Name: ViewBreedScatter, Page: PageBreed, Description: "outcome counts per breed, outcome type and sex"}, breedScatter},
}

func lookupBuiltin(name ViewName) (viewDef, bool) {
	for _, d := range builtinViews {
		if d.info.Name == name {
			return d, true
		}
	}
	return viewDef{}, false
}

func commonView(ds *Dataset, p Params) (View, error) {
	return Apply(ds.All(), p.Filters)
}

func withOutcome(ds *Dataset, p Params) (View, error) {
	v, err := commonView(ds, p)
	if err != nil {
		return View{}, err
	}
	if p.OutcomeType != "" {
		v = WhereEquals(v, ColOutcomeType, p.OutcomeType)
	}
	return v, nil
}

func period(p Params) (Column, error) {
	switch p.Period {
	case "":
		return defaultPeriod, nil
	case ColDate, ColMonthYear, ColYear:
		return p.Period, nil
	default:
		return "", invalid("period", "must be one of date, month_year, year, got %q", p.Period)
	}
}

func newResult(ds *Dataset, name ViewName, records int) Result {
	r := Result{View: name, DatasetID: ds.ID, Records: records}
	if records == 0 {
		r.Warnings = append(r.Warnings, WarnEmptyResult)
	}
	return r
}

func tableResult(ds *Dataset, name ViewName, v View, keys ...Column) (Result, error) {
	t, err := CountBy(v, keys...)
	if err != nil {
		return Result{}, err
	}
	r := newResult(ds, name, v.Len())
	r.Tables = map[string]Table{"main": t}
	return r, nil
}

// DefaultKPICategories replica la selección inicial: 2º, 1º y 3º outcome_type distintos.
func DefaultKPICategories(ds *Dataset) []string {
	all, _ := Distinct(ds.All(), ColOutcomeType, OrderFirstSeen)
	out := make([]string, 0, defaultKPICount)
	for _, i := range []int{1, 0, 2} {
		if i < len(all) {
			out = append(out, all[i])
		}
	}
	return out
}

func overviewKPIs(ds *Dataset, p Params) (Result, error) {
	v, err := commonView(ds, p)
	if err != nil {
		return Result{}, err
	}
	cats := p.KPIs
	if len(cats) == 0 {
		cats = DefaultKPICategories(ds)
	}
	if len(cats) > defaultKPICount {
		return Result{}, invalid("kpi", "at most %d categories, got %d", defaultKPICount, len(cats))
	}

	r := newResult(ds, ViewOverviewKPIs, v.Len())
	r.KPIs = KPIs(v, cats...)
	return r, nil
}

func overviewTimeline(ds *Dataset, p Params) (Result, error) {
	per, err := period(p)
	if err != nil {
		return Result{}, err
	}
	v, err := commonView(ds, p)
	if err != nil {
		return Result{}, err
	}
	r, err := tableResult(ds, ViewOverviewTimeline, v, per, ColOutcomeType)
	if err != nil {
		return Result{}, err
	}
	r.AxisOrder = axisOrder(r.Tables["main"], per)
	return r, nil
}

func subtypesSunburst(ds *Dataset, p Params) (Result, error) {
	v, err := commonView(ds, p)
	if err != nil {
		return Result{}, err
	}
	return tableResult(ds, ViewSubtypesSunburst, v, ColOutcomeType, ColOutcomeSubtype)
}

func subtypesBar(ds *Dataset, p Params) (Result, error) {
	per, err := period(p)
	if err != nil {
		return Result{}, err
	}
	v, err := commonView(ds, p)
	if err != nil {
		return Result{}, err
	}
	t, err := CountBy(v, per, ColOutcomeType, ColOutcomeSubtype)
	if err != nil {
		return Result{}, err
	}
	if p.OutcomeType != "" {
		t = t.Where(ColOutcomeType, p.OutcomeType)
	}

	r := newResult(ds, ViewSubtypesBar, t.Total())
	r.Tables = map[string]Table{"main": t}
	r.AxisOrder = axisOrder(t, per)
	return r, nil
}

func distributionOptions(ds *Dataset, p Params) (Result, error) {
	v, err := withOutcome(ds, p)
	if err != nil {
		return Result{}, err
	}

	r := newResult(ds, ViewDistributionOpts, v.Len())
	r.Options = map[string][]string{}
	for _, o := range []struct {
		col   Column
		order DistinctOrder
	}{
		{ColWeekday, OrderFirstSeen},
		{ColMonth, OrderSorted},
		{ColOutcomeYear, OrderSorted},
	} {
		vals, err := Distinct(v, o.col, o.order)
		if err != nil {
			return Result{}, err
		}
		r.Options[string(o.col)] = vals
	}
	return r, nil
}

func distributionHistograms(ds *Dataset, p Params) (Result, error) {
	v, err := withOutcome(ds, p)
	if err != nil {
		return Result{}, err
	}

	// Cada histograma se filtra con el dropdown secundario de su columna vecina.
	hists := []struct {
		name   string
		x      Column
		filter Column
		value  string
	}{
		{"hour", ColHour, ColWeekday, p.Weekday},
		{"weekday", ColWeekday, ColMonth, p.Month},
		{"month", ColMonth, ColOutcomeYear, p.Year},
	}

	r := newResult(ds, ViewDistributionHists, v.Len())
	r.Tables = make(map[string]Table, len(hists))
	for _, h := range hists {
		hv := v
		if h.value != "" {
			hv = WhereEquals(v, h.filter, h.value)
		}
		t, err := CountBy(hv, h.x, ColOutcomeSubtype)
		if err != nil {
			return Result{}, err
		}
		r.Tables[h.name] = t
	}
	return r, nil
}

func ageStrip(ds *Dataset, p Params) (Result, error) {
	v, err := commonView(ds, p)
	if err != nil {
		return Result{}, err
	}
	return tableResult(ds, ViewAgeStrip, v, ColAgeMonths, ColOutcomeType, ColSex)
}

func ageStacked(ds *Dataset, p Params) (Result, error) {
	bins := DefaultBins
	if p.Bins != nil {
		bins = *p.Bins
	}
	// Siempre hay un outcome seleccionado; los porcentajes suman 100 por grupo de edad.
	outcome := p.OutcomeType
	if outcome == "" {
		outcome = DefaultOutcomeType(ds)
	}
	q := Query{
		Filters:    p.Filters,
		Bins:       &BinSpec{Source: ColAgeMonths, Target: ColAgeGroup, Count: &bins},
		PreEquals:  map[Column]string{ColOutcomeType: outcome},
		GroupBy:    []Column{ColOutcomeType, ColAgeGroup, ColSex},
		Percentage: true,
	}

	t, err := Run(ds.All(), q)
	if err != nil {
		return Result{}, err
	}
	r := newResult(ds, ViewAgeStacked, t.Total())
	r.Tables = map[string]Table{"main": t}
	return r, nil
}

func breedScatter(ds *Dataset, p Params) (Result, error) {
	f := p.Filters
	if f.CFABreed == nil {
		cfa := true
		f.CFABreed = &cfa
	}
	p.Filters = f

	v, err := commonView(ds, p)
	if err != nil {
		return Result{}, err
	}
	return tableResult(ds, ViewBreedScatter, v, ColBreed, ColOutcomeType, ColSex)
}

func axisOrder(t Table, per Column) []string {
	if per != ColMonthYear {
		return nil
	}
	return ChronologicalOrder(t.Column(ColMonthYear))
}

