package o86

import "fmt"

// LoadCombination is a factored combination of the cumulative load
// cases. The factors themselves carry everything downstream needs:
// the duration class and the long/short-term load split are derived
// from which cases participate, not from the combination name.
type LoadCombination struct {
	Name string
	// Load factors for each accumulated load case
	Dead float64 // DL
	Live float64 // LL
	Snow float64 // SL
}

// Default load combinations for gravity design of bearing walls,
// NBC/CSA strength design.
var DefaultCombinations = []LoadCombination{
	{Name: "1.4DL", Dead: 1.4},
	{Name: "1.25DL+1.5LL+1.0SL", Dead: 1.25, Live: 1.5, Snow: 1.0},
	{Name: "1.25DL+1.5SL+1.0LL", Dead: 1.25, Live: 1.0, Snow: 1.5},
	{Name: "1.25DL+1.5LL", Dead: 1.25, Live: 1.5},
	{Name: "1.25DL+1.5SL", Dead: 1.25, Snow: 1.5},
}

// Factored returns the factored line load (kN/m) for the given
// cumulative unfactored line loads.
func (c LoadCombination) Factored(dl, ll, sl float64) float64 {
	return c.Dead*dl + c.Live*ll + c.Snow*sl
}

// Duration returns the load duration class implied by the combination:
// purely-dead combinations are long duration, anything carrying live
// or snow load is standard duration.
func (c LoadCombination) Duration() DurationClass {
	if c.Live == 0 && c.Snow == 0 {
		return DurationLong
	}
	return DurationStandard
}

// LongShort splits the combination's unfactored line loads into
// long-term and short-term components for the Clause 5.3.2.3 duration
// factor. Dead load is the long-term component. When both live and
// snow participate, the case with the larger factor is principal and
// the companion contributes at half value.
func (c LoadCombination) LongShort(dl, ll, sl float64) (pl, ps float64) {
	if c.Duration() == DurationLong {
		return 0, 0
	}
	pl = dl
	switch {
	case c.Live > 0 && c.Snow > 0:
		if c.Snow > c.Live {
			ps = sl + 0.5*ll
		} else {
			ps = ll + 0.5*sl
		}
	case c.Live > 0:
		ps = ll
	case c.Snow > 0:
		ps = sl
	}
	return pl, ps
}

// ValidateCombinations checks a combination set before the design
// search runs. An empty or malformed set is a configuration error the
// engine cannot compensate for.
func ValidateCombinations(combos []LoadCombination) error {
	if len(combos) == 0 {
		return fmt.Errorf("no load combinations defined")
	}
	seen := make(map[string]bool, len(combos))
	for i, c := range combos {
		if c.Name == "" {
			return fmt.Errorf("load combination %d has no name", i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate load combination %q", c.Name)
		}
		seen[c.Name] = true
		if c.Dead < 0 || c.Live < 0 || c.Snow < 0 {
			return fmt.Errorf("load combination %q has a negative factor", c.Name)
		}
		if c.Dead == 0 && c.Live == 0 && c.Snow == 0 {
			return fmt.Errorf("load combination %q has no load factors", c.Name)
		}
	}
	return nil
}
