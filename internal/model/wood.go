package model

// MaterialType identifies how the lumber was graded. The type drives
// the fifth percentile modulus adjustment in stability calculations.
type MaterialType string

const (
	Sawn MaterialType = "Sawn" // Visually graded sawn lumber
	MSR  MaterialType = "MSR"  // Machine stress-rated lumber
	MEL  MaterialType = "MEL"  // Machine evaluated lumber
)

// Wood holds the specified strengths and moduli for a species/grade
// combination, in MPa. Values correspond to the CSA O86-20 design
// value tables for dimension lumber.
type Wood struct {
	Name         string
	Category     string
	Species      string
	Grade        string
	Fb           float64 // Bending
	Fv           float64 // Shear
	Fc           float64 // Compression parallel to grain
	Fcp          float64 // Compression perpendicular to grain
	Ft           float64 // Tension parallel to grain
	E            float64 // Mean modulus of elasticity
	E05          float64 // Fifth percentile modulus of elasticity
	MaterialType MaterialType
}
