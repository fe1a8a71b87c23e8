package design

import (
	"math"

	"github.com/alexiusacademia/gostud/internal/model"
	"github.com/alexiusacademia/gostud/internal/o86"
)

// DesignResult is the outcome of evaluating one candidate design
// (stud × spacing × plys) at one level, recorded for its governing
// load combination. A nil Stud marks the "no adequate design found"
// level outcome. Results are never mutated after creation; a
// recalculation produces fresh ones.
type DesignResult struct {
	Level          int // 0 = roof
	Story          model.Story
	Stud           *model.Stud
	Section        model.Section // concrete section evaluated
	Spacing        float64       // mm o/c
	Plys           int
	DCRatio        float64
	GoverningCombo string
	Pf             float64 // kN, at the governing combination
	Pr             float64 // kN, governing axis
	KFactors       o86.KFactors
	Resistance     o86.Resistance // governing-axis intermediates
	WoodVolume     float64        // Ag/spacing, mm² per mm of wall
}

// Valid reports whether the candidate complies: a governing
// demand/capacity ratio below 1.0.
func (r DesignResult) Valid() bool {
	return r.Stud != nil && r.DCRatio < 1.0
}

// Record is the flat serializable shape external reporting and
// persistence depend on.
type Record struct {
	Level          int     `json:"level"`
	Story          string  `json:"story"`
	Stud           string  `json:"stud"`
	Spacing        float64 `json:"spacing"`
	Plys           int     `json:"plys"`
	DCRatio        float64 `json:"dc_ratio"`
	GoverningCombo string  `json:"governing_combo"`
	Pf             float64 `json:"pf"`
	Pr             float64 `json:"pr"`
	Kd             float64 `json:"kd"`
	Kh             float64 `json:"kh"`
	Kse            float64 `json:"kse"`
	Ksc            float64 `json:"ksc"`
	Kt             float64 `json:"kt"`
	WoodVolume     float64 `json:"wood_volume"`
}

// ToRecord flattens the result. An unbounded DC ratio (zero
// resistance) is clamped to a large sentinel so the record stays
// serializable.
func (r DesignResult) ToRecord() Record {
	studName := ""
	if r.Stud != nil {
		studName = r.Stud.Name
	}
	dc := r.DCRatio
	if math.IsInf(dc, 1) {
		dc = math.MaxFloat64
	}
	return Record{
		Level:          r.Level,
		Story:          r.Story.Name,
		Stud:           studName,
		Spacing:        r.Spacing,
		Plys:           r.Plys,
		DCRatio:        dc,
		GoverningCombo: r.GoverningCombo,
		Pf:             r.Pf,
		Pr:             r.Pr,
		Kd:             r.KFactors.Kd,
		Kh:             r.KFactors.Kh,
		Kse:            r.KFactors.Kse,
		Ksc:            r.KFactors.Ksc,
		Kt:             r.KFactors.Kt,
		WoodVolume:     r.WoodVolume,
	}
}

// LevelResult packages one level's full candidate list and the
// selected optimal design, if any.
type LevelResult struct {
	Level      int
	Story      model.Story
	Candidates []DesignResult // enumeration order: depth, plys, spacing
	Optimal    *DesignResult  // nil when no adequate design was found
}

// Final returns the level's selected design, or a result with a nil
// Stud when no candidate complied. "No adequate design found" is a
// normal terminal outcome, surfaced as data.
func (lr LevelResult) Final() DesignResult {
	if lr.Optimal != nil {
		return *lr.Optimal
	}
	return DesignResult{Level: lr.Level, Story: lr.Story}
}

// RunResult is the complete outcome of one design run for a wall.
type RunResult struct {
	Wall     model.Wall
	Loads    []LevelLoads     // cumulative unfactored, level 0 = roof
	Factored [][]FactoredLoad // per level, per combination
	Levels   []LevelResult
}
