package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionProperties(t *testing.T) {
	s := Section{Width: 38, Depth: 89, Plys: 1}

	assert.InDelta(t, 3382, s.Ag(), 1e-9)
	assert.InDelta(t, 38*89*89*89/12.0, s.Ix(), 1e-6)
	assert.InDelta(t, 89*38*38*38/12.0, s.Iy(), 1e-6)
	assert.InDelta(t, 38*89*89/6.0, s.Sx(), 1e-6)
	assert.InDelta(t, 89*38*38/6.0, s.Sy(), 1e-6)
	assert.Equal(t, "38x89", s.Name())
}

func TestSectionBuiltUp(t *testing.T) {
	one := Section{Width: 38, Depth: 140, Plys: 1}
	two := Section{Width: 38, Depth: 140, Plys: 2}

	assert.InDelta(t, 2*one.Ag(), two.Ag(), 1e-9)
	// Plys stack side by side: strong-axis inertia scales linearly,
	// weak-axis inertia cubically.
	assert.InDelta(t, 2*one.Ix(), two.Ix(), 1e-6)
	assert.InDelta(t, 8*one.Iy(), two.Iy(), 1e-6)
	assert.Equal(t, "38x140", two.Name())
}

func TestSectionDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, Section{Width: 38, Plys: 1}.Sx())
	assert.Equal(t, 0.0, Section{Depth: 89, Plys: 1}.Sy())
	assert.Equal(t, 0.0, Section{Width: 38, Depth: 89}.Sy())
}
