package design

import "github.com/alexiusacademia/gostud/internal/model"

// LevelLoads holds cumulative unfactored line loads (kN/m) at one
// level of the wall.
type LevelLoads struct {
	DL float64
	LL float64
	SL float64
}

// AccumulateLoads converts per-story area loads into cumulative line
// loads, one entry per level ordered from the roof (index 0) down.
//
// At each level the loads assigned to that story are summed by case
// and multiplied by the tributary width; the wall self-weight
// contributes its pressure times the story height. The roof level
// carries snow but no live or partition load; typical levels carry
// live and partition load but no snow. The returned table is the
// running sum from the top down, modelling tributary load transfer
// through a stacked bearing wall.
func AccumulateLoads(w model.Wall) []LevelLoads {
	table := make([]LevelLoads, len(w.Stories))

	var running LevelLoads
	for i, ws := range w.Stories {
		loads := ws.Loads()
		dead := model.SumByCase(loads, model.Dead)
		live := model.SumByCase(loads, model.Live)
		snow := model.SumByCase(loads, model.Snow)
		partition := model.SumByCase(loads, model.Partition)

		trib := w.Tribs[i].Total() / 1000 // mm -> m
		sw := w.SelfWeight * ws.Story.Height / 1000

		var level LevelLoads
		if i == 0 {
			// Roof: no live or partition load from above.
			level.DL = dead*trib + sw
			level.SL = snow * trib
		} else {
			level.DL = (dead+partition)*trib + sw
			level.LL = live * trib
		}

		running.DL += level.DL
		running.LL += level.LL
		running.SL += level.SL
		table[i] = running
	}
	return table
}
