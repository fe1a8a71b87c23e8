package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMetricImperial(t *testing.T) {
	s := System{Units: Imperial}

	assert.InDelta(t, 0.9576, s.ToMetric(20, Pressure), 1e-9)
	assert.InDelta(t, 3048, s.ToMetric(10, LengthMM), 1e-9)
	assert.InDelta(t, 3.048, s.ToMetric(10, LengthM), 1e-4)
	assert.InDelta(t, 152.4, s.ToMetric(6, LengthIn), 1e-9)
	assert.InDelta(t, 4.448222, s.ToMetric(1000, Load), 1e-6)
	assert.InDelta(t, 1.459, s.ToMetric(100, UDL), 1e-9)
}

func TestMetricPassthrough(t *testing.T) {
	s := System{Units: Metric}
	assert.Equal(t, 1.9152, s.ToMetric(1.9152, Pressure))
	assert.Equal(t, 3048.0, s.FromMetric(3048, LengthMM))
}

func TestRoundTrip(t *testing.T) {
	s := System{Units: Imperial}
	for _, q := range []Quantity{Pressure, UDL, Load, LengthM, LengthMM, LengthIn} {
		assert.InDelta(t, 42.0, s.FromMetric(s.ToMetric(42.0, q), q), 1e-9, string(q))
	}
}

func TestLabels(t *testing.T) {
	m := System{Units: Metric}
	i := System{Units: Imperial}

	assert.Equal(t, "kPa", m.Label(Pressure))
	assert.Equal(t, "psf", i.Label(Pressure))
	assert.Equal(t, "kN/m", m.Label(UDL))
	assert.Equal(t, "plf", i.Label(UDL))
	assert.Equal(t, "mm", m.Label(LengthMM))
	assert.Equal(t, "ft", i.Label(LengthMM))
}
