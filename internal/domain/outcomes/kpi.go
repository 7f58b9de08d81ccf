package outcomes

import "math"

// KPIStatus explica de dónde sale el porcentaje de un KPI.
type KPIStatus string

const (
	KPIOK       KPIStatus = "ok"
	KPINotFound KPIStatus = "not_found" // la categoría no aparece en la view filtrada
	KPINoData   KPIStatus = "no_data"   // la view filtrada está vacía
)

// KPI es el porcentaje del total que representa una categoría de outcome_type.
type KPI struct {
	Category   string    `json:"category"`
	Count      int       `json:"count"`
	Total      int       `json:"total"`
	Percentage float64   `json:"percentage"`
	Status     KPIStatus `json:"status"`
}

// KPIs calcula, para cada categoría, round(100*count/total, 2) sobre la view.
// Total 0 => todos en 0% (único caso que se recupera en silencio).
// Una categoría ausente no afecta a las demás: queda en 0% con status not_found.
func KPIs(v View, categories ...string) []KPI {
	counts := map[string]int{}
	for i := 0; i < v.Len(); i++ {
		counts[v.Record(i).OutcomeType]++
	}
	total := v.Len()

	out := make([]KPI, 0, len(categories))
	for _, c := range categories {
		k := KPI{Category: c, Total: total}
		n, found := counts[c]
		switch {
		case total == 0:
			k.Status = KPINoData
		case !found:
			k.Status = KPINotFound
		default:
			k.Count = n
			k.Percentage = math.Round(percentOf(n, total)*100) / 100
			k.Status = KPIOK
		}
		out = append(out, k)
	}
	return out
}
