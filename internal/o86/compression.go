package o86

import (
	"math"

	"github.com/alexiusacademia/gostud/internal/model"
)

// Resistance holds the factored compressive resistance of a member
// about one buckling axis, together with the intermediate factors for
// reporting.
type Resistance struct {
	Pr  float64 // Factored compressive resistance (N)
	Fc  float64 // Factored compressive strength (MPa)
	Kzc float64 // Size factor
	Kc  float64 // Column stability factor
	Cc  float64 // Slenderness ratio
}

// SlendernessRatio calculates Cc for a rectangular compression member.
// CSA O86-20 Clause 6.5.6.2.2
//
// lu is the unbraced length and d the cross-section dimension
// resisting buckling in that plane, both in mm. A zero dimension
// yields Cc = 0 rather than a division error.
func SlendernessRatio(lu, d float64) float64 {
	if d == 0 {
		return 0
	}
	return lu / d
}

// SizeFactor calculates the size factor Kzc for compression.
// CSA O86-20 Clause 6.5.6.2.3
func SizeFactor(d, lu float64) float64 {
	if d*lu <= 0 {
		return 1.3
	}
	return math.Min(6.3*math.Pow(d*lu, -0.13), 1.3)
}

// AdjustedE05 returns the fifth percentile modulus of elasticity used
// for stability calculations, reduced for machine-graded lumber.
func AdjustedE05(mat model.Wood) float64 {
	switch mat.MaterialType {
	case model.MSR:
		return 0.85 * mat.E05
	case model.MEL:
		return 0.75 * mat.E05
	default:
		return mat.E05
	}
}

// CompressiveResistance calculates the factored compressive resistance
// parallel to grain about one buckling axis.
// CSA O86-20 Clause 6.5.6.2.3
//
// ag is the gross area (mm²), d the cross-section dimension resisting
// buckling in this plane (mm) and lu the unbraced length for the same
// plane (mm). Degenerate inputs (zero modulus, zero length, zero
// dimension) resolve to conservative floors, never to an error: a
// member over the slenderness limit of 50 has Pr = 0.
func CompressiveResistance(mat model.Wood, ag, d, lu float64, k KFactors) Resistance {
	e05 := AdjustedE05(mat)

	cc := SlendernessRatio(lu, d)
	fc := mat.Fc * k.Kd * k.Kh * k.Ksc * k.Kt
	kzc := SizeFactor(d, lu)

	var kc float64
	if e05 > 0 {
		kc = 1.0 / (1.0 + fc*kzc*math.Pow(cc, 3)/(35*e05*k.Kse*k.Kt))
	}

	var pr float64
	if cc <= MaxSlenderness {
		pr = PhiCompression * fc * ag * kc * kzc
	}

	return Resistance{Pr: pr, Fc: fc, Kzc: kzc, Kc: kc, Cc: cc}
}

// MemberResistance evaluates a section about both buckling axes and
// returns the governing (minimum) resistance together with each axis
// result. The weak axis is resisted by the combined ply width, the
// strong axis by the depth.
func MemberResistance(sec model.Section, mat model.Wood, k KFactors) (governing, width, depth Resistance) {
	ag := sec.Ag()
	width = CompressiveResistance(mat, ag, float64(sec.Plys)*sec.Width, sec.LuWidth, k)
	depth = CompressiveResistance(mat, ag, sec.Depth, sec.LuDepth, k)
	governing = width
	if depth.Pr < width.Pr {
		governing = depth
	}
	return governing, width, depth
}
