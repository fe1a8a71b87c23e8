package o86

import "math"

// CSA O86-20 constants for sawn lumber compression members

const (
	// Resistance factor for sawn lumber, MSR and MEL (Clause 6.5.6.2.3)
	PhiCompression = 0.8

	// Maximum slenderness ratio for compression members (Clause 6.5.6.2.4)
	MaxSlenderness = 50.0

	// Load duration factors (Table 5.3.2.2)
	KdShort    = 1.15
	KdStandard = 1.0
	KdLong     = 0.65
)

// DurationClass is the load duration category from Table 5.3.2.2.
type DurationClass string

const (
	DurationShort    DurationClass = "Short"
	DurationStandard DurationClass = "Standard"
	DurationLong     DurationClass = "Long"
)

// KFactors holds the modification factors applied to compressive
// resistance. The zero value is not useful; use DefaultKFactors.
type KFactors struct {
	Kd  float64 // Load duration factor
	Kh  float64 // System factor
	Kse float64 // Service condition factor for modulus of elasticity
	Ksc float64 // Service condition factor for compression
	Kt  float64 // Treatment factor
}

// DefaultKFactors returns the factor set for dry service, untreated,
// single-member conditions with the given load duration factor.
func DefaultKFactors(kd float64) KFactors {
	return KFactors{Kd: kd, Kh: 1.0, Kse: 1.0, Ksc: 1.0, Kt: 1.0}
}

// DurationFactor calculates the load duration factor Kd.
// CSA O86-20 Clause 5.3.2.2
//
// pl and ps are the long-term and short-term components of the
// specified load. When the long-term component exceeds a non-zero
// short-term component, the combined-load formula of Clause 5.3.2.3
// governs. A long-term component with no short-term component is a
// permanent load (Kd = 0.65). Otherwise Kd is selected by the named
// duration class.
func DurationFactor(duration DurationClass, pl, ps float64) float64 {
	switch {
	case pl > ps && ps > 0:
		return CombinedDurationFactor(pl, ps)
	case pl > ps && ps == 0:
		return KdLong
	case duration == DurationShort:
		return KdShort
	case duration == DurationLong:
		return KdLong
	default:
		return KdStandard
	}
}

// CombinedDurationFactor calculates Kd for loads with both long-term
// and short-term components.
// CSA O86-20 Clause 5.3.2.3
func CombinedDurationFactor(pl, ps float64) float64 {
	if pl <= 0 || ps <= 0 {
		return KdStandard
	}
	kd := 1.0 - 0.5*math.Log10(pl/ps)
	return math.Min(1.0, math.Max(kd, KdLong))
}
