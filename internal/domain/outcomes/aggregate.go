package outcomes

import (
	"sort"
	"strconv"
	"strings"
)

const maxGroupKeys = 3

// CountBy agrupa la view por keys (1 a 3 columnas) y cuenta records por combinación.
// Combinaciones sin records no aparecen. Filas ordenadas por tupla de claves
// (month_year cronológico, numéricos por valor, resto lexicográfico).
func CountBy(v View, keys ...Column) (Table, error) {
	if len(keys) == 0 || len(keys) > maxGroupKeys {
		return Table{}, invalid("group_by", "expected 1 to %d keys, got %d", maxGroupKeys, len(keys))
	}
	seenKey := map[Column]bool{}
	for _, k := range keys {
		if !v.HasColumn(k) {
			return Table{}, invalid("group_by", "unknown column %q", k)
		}
		if seenKey[k] {
			return Table{}, invalid("group_by", "duplicated column %q", k)
		}
		seenKey[k] = true
	}

	counts := map[string]int{}
	tuples := map[string][]string{}
	for i := 0; i < v.Len(); i++ {
		tuple := make([]string, len(keys))
		for j, k := range keys {
			tuple[j], _ = v.Value(i, k)
		}
		id := strings.Join(tuple, "\x00")
		if _, ok := tuples[id]; !ok {
			tuples[id] = tuple
		}
		counts[id]++
	}

	rows := make([]Row, 0, len(tuples))
	for id, tuple := range tuples {
		rows = append(rows, Row{Keys: tuple, Count: counts[id]})
	}
	sort.Slice(rows, func(a, b int) bool {
		for j, k := range keys {
			if c := compareValues(k, rows[a].Keys[j], rows[b].Keys[j]); c != 0 {
				return c < 0
			}
		}
		return false
	})

	return Table{Keys: keys, Rows: rows}, nil
}

// WithPercentage agrega percentage = 100*count/total, donde total es la suma de
// count de las filas que comparten las claves within. Sin within se usa la
// penúltima clave (o el total general si la tabla tiene una sola clave).
// Un total 0 deja el porcentaje en 0.
func WithPercentage(t Table, within ...Column) (Table, error) {
	if len(within) == 0 {
		within = DefaultPercentageWithin(t.Keys)
	}
	pos := make([]int, len(within))
	for i, c := range within {
		pos[i] = t.keyIndex(c)
		if pos[i] < 0 {
			return Table{}, invalid("percentage_within", "column %q is not a group key", c)
		}
	}

	groupID := func(r Row) string {
		parts := make([]string, len(pos))
		for i, p := range pos {
			parts[i] = r.Keys[p]
		}
		return strings.Join(parts, "\x00")
	}

	totals := map[string]int{}
	for _, r := range t.Rows {
		totals[groupID(r)] += r.Count
	}

	out := Table{Keys: t.Keys, HasPercentage: true, Rows: make([]Row, len(t.Rows))}
	for i, r := range t.Rows {
		r.Keys = append([]string(nil), r.Keys...)
		r.Percentage = percentOf(r.Count, totals[groupID(r)])
		out.Rows[i] = r
	}
	return out, nil
}

// DefaultPercentageWithin devuelve la clave externa por defecto: la penúltima.
func DefaultPercentageWithin(keys []Column) []Column {
	if len(keys) < 2 {
		return nil
	}
	return []Column{keys[len(keys)-2]}
}

func percentOf(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

// DistinctOrder define cómo se ordena la lista de valores distintos.
type DistinctOrder string

const (
	OrderFirstSeen     DistinctOrder = "first_seen"
	OrderSorted        DistinctOrder = "sorted"
	OrderChronological DistinctOrder = "chronological"
)

// Distinct devuelve los valores únicos no vacíos de c en la view.
func Distinct(v View, c Column, order DistinctOrder) ([]string, error) {
	if !v.HasColumn(c) {
		return nil, invalid("column", "unknown column %q", c)
	}

	seen := map[string]struct{}{}
	out := make([]string, 0)
	for i := 0; i < v.Len(); i++ {
		val, _ := v.Value(i, c)
		if val == "" {
			continue
		}
		if _, ok := seen[val]; ok {
			continue
		}
		seen[val] = struct{}{}
		out = append(out, val)
	}

	switch order {
	case OrderSorted:
		sort.SliceStable(out, func(i, j int) bool { return compareValues(c, out[i], out[j]) < 0 })
	case OrderChronological:
		out = SortChronologically(out)
	case OrderFirstSeen, "":
	default:
		return nil, invalid("order", "unknown order %q", order)
	}
	return out, nil
}

// compareValues compara dos valores de la columna c.
func compareValues(c Column, a, b string) int {
	if a == b {
		return 0
	}
	switch c {
	case ColMonthYear:
		ra, rb := monthYearRank(a), monthYearRank(b)
		if ra != rb {
			return cmpInt(ra, rb)
		}
	case ColAgeGroup:
		la, okA := binLower(a)
		lb, okB := binLower(b)
		if okA && okB && la != lb {
			return cmpFloat(la, lb)
		}
	}

	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil && fa != fb {
		return cmpFloat(fa, fb)
	}
	return strings.Compare(a, b)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
