// Command shelterq consulta el dataset de outcomes desde la terminal.
//
// Uso:
//
//	shelterq views
//	shelterq meta --source data/animal-shelter-data.csv
//	shelterq view overview-kpis --age-min 0 --age-max 12 --kpi Adoption
//	shelterq page age --outcome-type Adoption --bins 8
//	shelterq import --to sqlite://shelter.db
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
