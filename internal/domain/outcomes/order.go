package outcomes

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// monthNames es la secuencia canónica January..December.
var monthNames = func() []string {
	out := make([]string, 12)
	for m := time.January; m <= time.December; m++ {
		out[m-1] = m.String()
	}
	return out
}()

// ChronologicalOrder arma el producto mes × año (year-major) para los años
// observados en values ("{Month}-{Year}"), en orden ascendente de año.
// Labels que no tienen esa forma se ignoran.
func ChronologicalOrder(values []string) []string {
	years := map[int]struct{}{}
	for _, v := range values {
		if _, y, ok := splitMonthYear(v); ok {
			years[y] = struct{}{}
		}
	}

	sorted := make([]int, 0, len(years))
	for y := range years {
		sorted = append(sorted, y)
	}
	sort.Ints(sorted)

	out := make([]string, 0, len(sorted)*12)
	for _, y := range sorted {
		ys := strconv.Itoa(y)
		for _, m := range monthNames {
			out = append(out, m+"-"+ys)
		}
	}
	return out
}

// SortChronologically reordena labels month_year según ChronologicalOrder.
// Los labels inválidos van al final, en su orden original.
func SortChronologically(values []string) []string {
	out := append([]string(nil), values...)
	sort.SliceStable(out, func(i, j int) bool {
		return monthYearRank(out[i]) < monthYearRank(out[j])
	})
	return out
}

// monthYearRank: year*12 + mes (0-based); labels inválidos => MaxInt.
func monthYearRank(label string) int {
	m, y, ok := splitMonthYear(label)
	if !ok {
		return math.MaxInt
	}
	return y*12 + m
}

func splitMonthYear(label string) (month int, year int, ok bool) {
	i := strings.LastIndex(label, "-")
	if i <= 0 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(label[i+1:])
	if err != nil {
		return 0, 0, false
	}
	name := label[:i]
	for idx, mn := range monthNames {
		if mn == name {
			return idx, y, true
		}
	}
	return 0, 0, false
}
