package outcomes

// View es un subconjunto (lista de índices) de un Dataset, más columnas
// calculadas por request (p.ej. age_group_months). Nunca modifica el Dataset.
type View struct {
	ds  *Dataset
	idx []int

	// extra: columnas locales al request, indexadas por índice del dataset.
	extra map[Column][]string
}

// Len devuelve la cantidad de records visibles.
func (v View) Len() int { return len(v.idx) }

// Record devuelve el i-ésimo record visible.
func (v View) Record(i int) Record { return v.ds.records[v.idx[i]] }

// Value devuelve el valor de la columna c para el i-ésimo record visible.
func (v View) Value(i int, c Column) (string, bool) {
	if col, ok := v.extra[c]; ok {
		return col[v.idx[i]], true
	}
	return v.ds.records[v.idx[i]].Value(c)
}

// HasColumn indica si c es consultable en esta view.
func (v View) HasColumn(c Column) bool {
	if _, ok := v.extra[c]; ok {
		return true
	}
	return KnownColumn(c)
}

// where devuelve una sub-view con los records que cumplen keep.
func (v View) where(keep func(i int) bool) View {
	out := make([]int, 0, len(v.idx))
	for i, di := range v.idx {
		if keep(i) {
			out = append(out, di)
		}
	}
	return View{ds: v.ds, idx: out, extra: v.extra}
}

// withColumn agrega una columna local; values está alineado con v.idx.
func (v View) withColumn(c Column, values []string) View {
	extra := make(map[Column][]string, len(v.extra)+1)
	for k, col := range v.extra {
		extra[k] = col
	}
	col := make([]string, v.ds.Len())
	for i, di := range v.idx {
		col[di] = values[i]
	}
	extra[c] = col
	return View{ds: v.ds, idx: v.idx, extra: extra}
}
