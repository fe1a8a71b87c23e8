// Package design implements the load accumulation and code-compliance
// search for multi-story stud walls: cumulative factored design loads,
// exhaustive enumeration of the stud catalog, and selection of the
// most material-efficient compliant design per level.
package design

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/gostud/internal/catalog"
	"github.com/alexiusacademia/gostud/internal/model"
	"github.com/alexiusacademia/gostud/internal/o86"
)

// DefaultSpacings are the allowed on-center spacings in mm,
// corresponding to 16", 12" and 8".
var DefaultSpacings = []float64{406, 305, 203}

// Designer runs the design search for a wall against a stud catalog
// and a load combination set. All collaborator data is held in memory;
// a Designer carries no state between runs and two runs over identical
// inputs produce identical results.
type Designer struct {
	Catalog      catalog.Catalog
	Spacings     []float64
	Combinations []o86.LoadCombination
}

// NewDesigner returns a Designer with the standard spacings and
// default gravity load combinations.
func NewDesigner(cat catalog.Catalog) *Designer {
	return &Designer{
		Catalog:      cat,
		Spacings:     DefaultSpacings,
		Combinations: o86.DefaultCombinations,
	}
}

// Design performs the complete design run: load accumulation, load
// combinations, and per-level search for the optimal stud
// configuration. Configuration errors (empty catalog, malformed
// combinations, inconsistent wall data) fail before the search loop; a
// level for which nothing works is reported in the result, not as an
// error.
func (d *Designer) Design(w model.Wall) (*RunResult, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := d.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stud catalog: %w", err)
	}
	if err := o86.ValidateCombinations(d.Combinations); err != nil {
		return nil, fmt.Errorf("invalid load combinations: %w", err)
	}
	if len(d.Spacings) == 0 {
		return nil, fmt.Errorf("no stud spacings defined")
	}

	run := &RunResult{Wall: w}
	run.Loads = AccumulateLoads(w)
	run.Factored = FactorLoads(run.Loads, d.Combinations)

	templates := d.sortedTemplates()
	spacings := sortedAscending(d.Spacings)

	for level, ws := range w.Stories {
		lr := LevelResult{Level: level, Story: ws.Story}

		// Enumerate every candidate in deterministic order:
		// section depth, then ply count, then spacing, ascending.
		for ti := range templates {
			stud := &templates[ti]
			for plys := 1; plys <= 3; plys++ {
				sec := model.Section{
					Width:   stud.Section.Width,
					Depth:   stud.Section.Depth,
					Plys:    plys,
					LuWidth: w.Lu[level].Width,
					LuDepth: w.Lu[level].Depth,
				}
				for _, spacing := range spacings {
					cand := d.evaluate(level, ws.Story, stud, sec, spacing, run.Loads[level], run.Factored[level])
					lr.Candidates = append(lr.Candidates, cand)
				}
			}
		}

		// Pick the compliant candidate with the least wood volume.
		// Strict comparison keeps the first at equal volume, so ties
		// fall to the enumeration order above.
		for i := range lr.Candidates {
			c := &lr.Candidates[i]
			if !c.Valid() {
				continue
			}
			if lr.Optimal == nil || c.WoodVolume < lr.Optimal.WoodVolume {
				lr.Optimal = c
			}
		}
		run.Levels = append(run.Levels, lr)
	}
	return run, nil
}

// evaluate checks one candidate design against every load combination
// at a level and records its governing (worst-case) combination.
func (d *Designer) evaluate(level int, story model.Story, stud *model.Stud, sec model.Section, spacing float64, loads LevelLoads, factored []FactoredLoad) DesignResult {
	res := DesignResult{
		Level:      level,
		Story:      story,
		Stud:       stud,
		Section:    sec,
		Spacing:    spacing,
		Plys:       sec.Plys,
		WoodVolume: sec.Ag() / spacing,
	}

	for i, fl := range factored {
		// Line load to axial point load on a single stud.
		pf := fl.Load * spacing / 1000
		longTerm, shortTerm := fl.Combo.LongShort(loads.DL, loads.LL, loads.SL)
		pl := longTerm * spacing / 1000
		ps := shortTerm * spacing / 1000

		k := o86.DefaultKFactors(o86.DurationFactor(fl.Combo.Duration(), pl, ps))
		governing, _, _ := o86.MemberResistance(sec, stud.Material, k)
		pr := governing.Pr / 1000 // N -> kN

		dc := math.Inf(1)
		if pr > 0 {
			dc = pf / pr
		}

		if i == 0 || dc > res.DCRatio {
			res.DCRatio = dc
			res.GoverningCombo = fl.Combo.Name
			res.Pf = pf
			res.Pr = pr
			res.KFactors = k
			res.Resistance = governing
		}
	}
	return res
}

// sortedTemplates returns the catalog studs stably ordered by section
// depth, preserving catalog declaration order within equal depths.
func (d *Designer) sortedTemplates() []model.Stud {
	templates := make([]model.Stud, len(d.Catalog.Studs))
	copy(templates, d.Catalog.Studs)
	sort.SliceStable(templates, func(i, j int) bool {
		return templates[i].Section.Depth < templates[j].Section.Depth
	})
	return templates
}

func sortedAscending(spacings []float64) []float64 {
	out := make([]float64, len(spacings))
	copy(out, spacings)
	sort.Float64s(out)
	return out
}
