package outcomes

// BinSpec pide agregar una columna de rangos sobre una columna numérica.
type BinSpec struct {
	Source Column `json:"source" yaml:"source"`
	Target Column `json:"target" yaml:"target"`
	Count  *int   `json:"count,omitempty" yaml:"count"` // nil = DefaultBins
}

// Query es la parametrización del pipeline filter → bin → igualdad → group → porcentaje.
type Query struct {
	Filters Filters `json:"filters"`

	// Bins se aplica antes de PreEquals: los bordes dependen de la view previa
	// al filtro de igualdad (p.ej. todos los outcome_type).
	Bins *BinSpec `json:"bins,omitempty"`

	// PreEquals filtra records después del binning.
	PreEquals map[Column]string `json:"pre_equals,omitempty"`

	GroupBy []Column `json:"group_by"`

	// PostEquals filtra filas de la tabla ya agrupada.
	PostEquals map[Column]string `json:"post_equals,omitempty"`

	Percentage       bool     `json:"percentage,omitempty"`
	PercentageWithin []Column `json:"percentage_within,omitempty"`
}

// Run ejecuta q sobre v. Es pura: no guarda estado entre llamadas.
func Run(v View, q Query) (Table, error) {
	fv, err := Apply(v, q.Filters)
	if err != nil {
		return Table{}, err
	}

	if q.Bins != nil {
		target := q.Bins.Target
		if target == "" {
			target = ColAgeGroup
		}
		n := DefaultBins
		if q.Bins.Count != nil {
			n = *q.Bins.Count
		}
		fv, _, err = Bin(fv, q.Bins.Source, target, n)
		if err != nil {
			return Table{}, err
		}
	}

	for _, c := range sortedColumns(q.PreEquals) {
		if !fv.HasColumn(c) {
			return Table{}, invalid("pre_equals", "unknown column %q", c)
		}
		fv = WhereEquals(fv, c, q.PreEquals[c])
	}

	t, err := CountBy(fv, q.GroupBy...)
	if err != nil {
		return Table{}, err
	}

	for _, c := range sortedColumns(q.PostEquals) {
		if t.keyIndex(c) < 0 {
			return Table{}, invalid("post_equals", "column %q is not a group key", c)
		}
		t = t.Where(c, q.PostEquals[c])
	}

	if q.Percentage {
		return WithPercentage(t, q.PercentageWithin...)
	}
	return t, nil
}

func sortedColumns(m map[Column]string) []Column {
	return Filters{Equals: m}.sortedKeys()
}
