package outcomes

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	MinBins     = 5
	MaxBins     = 100
	DefaultBins = 12
)

// Bin particiona el rango observado de src en n intervalos de igual ancho,
// semiabiertos [lo, hi) (el último incluye el máximo), y etiqueta cada record
// con "lo-hi" en la columna local dst. Devuelve también las etiquetas en orden.
func Bin(v View, src, dst Column, n int) (View, []string, error) {
	if n < MinBins || n > MaxBins {
		return View{}, nil, invalid("bins", "must be between %d and %d, got %d", MinBins, MaxBins, n)
	}
	if !v.HasColumn(src) {
		return View{}, nil, invalid("bins", "unknown column %q", src)
	}
	if KnownColumn(dst) {
		return View{}, nil, invalid("bins", "target column %q shadows a dataset column", dst)
	}

	vals := make([]float64, v.Len())
	for i := range vals {
		s, _ := v.Value(i, src)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return View{}, nil, invalid("bins", "column %q is not numeric", src)
		}
		vals[i] = f
	}
	if len(vals) == 0 {
		return v.withColumn(dst, nil), nil, nil
	}

	edges := BinEdges(vals, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = formatEdge(edges[i]) + "-" + formatEdge(edges[i+1])
	}

	out := make([]string, len(vals))
	for i, x := range vals {
		out[i] = labels[binIndex(edges, x)]
	}
	return v.withColumn(dst, out), labels, nil
}

// BinEdges calcula n+1 bordes sobre [min(vals), max(vals)].
// El último borde se corre 0.1% del rango para que el máximo quede adentro
// del intervalo semiabierto; un rango degenerado se ensancha 0.1% por lado.
func BinEdges(vals []float64, n int) []float64 {
	mn, mx := vals[0], vals[0]
	for _, x := range vals[1:] {
		mn = math.Min(mn, x)
		mx = math.Max(mx, x)
	}

	degenerate := mn == mx
	if degenerate {
		d := 0.001
		if mn != 0 {
			d = 0.001 * math.Abs(mn)
		}
		mn, mx = mn-d, mx+d
	}

	edges := make([]float64, n+1)
	step := (mx - mn) / float64(n)
	for i := range edges {
		edges[i] = mn + step*float64(i)
	}
	edges[n] = mx
	if !degenerate {
		edges[n] += (mx - mn) * 0.001
	}
	return edges
}

func binIndex(edges []float64, x float64) int {
	n := len(edges) - 1
	i := sort.Search(len(edges), func(k int) bool { return edges[k] > x }) - 1
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// formatEdge redondea a 3 cifras significativas decimales y siempre muestra un decimal.
func formatEdge(x float64) string {
	digits := 3
	if ax := math.Abs(x); ax != 0 && ax < 1 {
		digits = int(-math.Floor(math.Log10(ax))) - 1 + 3
	}
	if x != math.Trunc(x) {
		p := math.Pow(10, float64(digits))
		x = math.Round(x*p) / p
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// binLower extrae el borde inferior de una etiqueta "lo-hi".
func binLower(label string) (float64, bool) {
	// lo puede ser negativo en general ("-1.5-3.0"), se busca el separador después del primer char.
	if len(label) < 3 {
		return 0, false
	}
	i := strings.Index(label[1:], "-")
	if i < 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(label[:i+1], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
