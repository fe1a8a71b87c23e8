package model

import "fmt"

// Section represents a rectangular built-up section of one or more
// plys placed side by side. Width and Depth are single-ply dimensions
// in mm. A Section is a value; the design search builds a fresh one
// for every candidate it evaluates.
type Section struct {
	Width float64 // mm, single ply
	Depth float64 // mm
	Plys  int

	// Unbraced lengths for buckling about each axis (mm).
	// LuWidth governs buckling resisted by the combined width
	// (weak axis, normally braced by sheathing or blocking);
	// LuDepth governs buckling resisted by the depth (strong axis,
	// normally the full story height).
	LuWidth float64
	LuDepth float64
}

// Ag returns the gross cross-sectional area in mm².
func (s Section) Ag() float64 {
	return s.Width * s.Depth * float64(s.Plys)
}

// Ix returns the moment of inertia about the strong axis (mm⁴).
func (s Section) Ix() float64 {
	return (float64(s.Plys) * s.Width) * (s.Depth * s.Depth * s.Depth) / 12
}

// Iy returns the moment of inertia about the weak axis (mm⁴).
func (s Section) Iy() float64 {
	bw := float64(s.Plys) * s.Width
	return s.Depth * (bw * bw * bw) / 12
}

// Sx returns the section modulus about the strong axis (mm³).
func (s Section) Sx() float64 {
	if s.Depth == 0 {
		return 0
	}
	return s.Ix() / (s.Depth / 2)
}

// Sy returns the section modulus about the weak axis (mm³).
func (s Section) Sy() float64 {
	if s.Plys == 0 || s.Width == 0 {
		return 0
	}
	return s.Iy() / (float64(s.Plys) * s.Width / 2)
}

// Name returns a dimensional name for the section, e.g. "38x89".
func (s Section) Name() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Depth)
}
