package outcomes

import (
	"encoding/json"
	"math"
)

// Row es una combinación de claves con su conteo (y porcentaje opcional).
// Keys está alineado con Table.Keys.
type Row struct {
	Keys       []string
	Count      int
	Percentage float64
}

// Table es el resultado tabular listo para graficar.
type Table struct {
	Keys          []Column
	HasPercentage bool
	Rows          []Row
}

// Total suma Count sobre todas las filas.
func (t Table) Total() int {
	n := 0
	for _, r := range t.Rows {
		n += r.Count
	}
	return n
}

// Column devuelve los valores de la clave c en orden de filas.
func (t Table) Column(c Column) []string {
	pos := t.keyIndex(c)
	if pos < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Keys[pos]
	}
	return out
}

// Where devuelve las filas cuya clave c vale want (filtro de igualdad post-agrupación).
func (t Table) Where(c Column, want string) Table {
	pos := t.keyIndex(c)
	out := Table{Keys: t.Keys, HasPercentage: t.HasPercentage, Rows: []Row{}}
	if pos < 0 {
		return out
	}
	for _, r := range t.Rows {
		if r.Keys[pos] == want {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

func (t Table) keyIndex(c Column) int {
	for i, k := range t.Keys {
		if k == c {
			return i
		}
	}
	return -1
}

// MarshalJSON serializa filas como objetos {clave: valor, count, percentage}.
func (t Table) MarshalJSON() ([]byte, error) {
	rows := make([]map[string]any, 0, len(t.Rows))
	for _, r := range t.Rows {
		m := make(map[string]any, len(t.Keys)+2)
		for i, k := range t.Keys {
			m[string(k)] = r.Keys[i]
		}
		m["count"] = r.Count
		if t.HasPercentage {
			m["percentage"] = math.Round(r.Percentage*100) / 100
		}
		rows = append(rows, m)
	}
	return json.Marshal(struct {
		Keys []Column         `json:"keys"`
		Rows []map[string]any `json:"rows"`
	}{Keys: t.Keys, Rows: rows})
}
