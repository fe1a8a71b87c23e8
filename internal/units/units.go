// Package units handles conversion between the internal metric system
// (kPa, kN, mm) and imperial display/input units.
package units

// Units selects the unit system for inputs and display.
type Units int

const (
	Metric Units = iota
	Imperial
)

// Quantity identifies a physical quantity with a known conversion.
type Quantity string

const (
	Pressure Quantity = "pressure"     // kPa / psf
	UDL      Quantity = "udl"          // kN/m / plf
	Load     Quantity = "load"         // kN / lb
	LengthM  Quantity = "length_ft_m"  // m / ft
	LengthMM Quantity = "length_ft_mm" // mm / ft
	LengthIn Quantity = "length_in_mm" // mm / in
)

type conversion struct {
	metric   string
	imperial string
	toMetric float64
}

var conversions = map[Quantity]conversion{
	Pressure: {"kPa", "psf", 0.04788},
	UDL:      {"kN/m", "plf", 0.01459},
	Load:     {"kN", "lb", 4.448222 / 1000},
	LengthM:  {"m", "ft", 1 / 3.28084},
	LengthMM: {"mm", "ft", 304.8},
	LengthIn: {"mm", "in", 25.4},
}

// System converts values between the active display system and the
// internal metric system.
type System struct {
	Units Units
}

// ToMetric converts a value in the display system to metric.
func (s System) ToMetric(value float64, q Quantity) float64 {
	if s.Units == Imperial {
		return value * conversions[q].toMetric
	}
	return value
}

// FromMetric converts an internal metric value to the display system.
func (s System) FromMetric(value float64, q Quantity) float64 {
	if s.Units == Imperial {
		return value / conversions[q].toMetric
	}
	return value
}

// Label returns the display unit symbol for a quantity.
func (s System) Label(q Quantity) string {
	if s.Units == Imperial {
		return conversions[q].imperial
	}
	return conversions[q].metric
}
