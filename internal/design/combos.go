package design

import "github.com/alexiusacademia/gostud/internal/o86"

// FactoredLoad is one combination's factored line load (kN/m) at a
// level.
type FactoredLoad struct {
	Combo o86.LoadCombination
	Load  float64
}

// FactorLoads produces the factored load table: one row per level, one
// column per combination, in the combinations' declared order.
func FactorLoads(table []LevelLoads, combos []o86.LoadCombination) [][]FactoredLoad {
	out := make([][]FactoredLoad, len(table))
	for i, lv := range table {
		row := make([]FactoredLoad, len(combos))
		for j, c := range combos {
			row[j] = FactoredLoad{Combo: c, Load: c.Factored(lv.DL, lv.LL, lv.SL)}
		}
		out[i] = row
	}
	return out
}
