package model

import "fmt"

// Stud is a catalog entry pairing a section template with a material.
// The template's Plys and unbraced lengths are ignored; the design
// search builds concrete sections from it per candidate.
type Stud struct {
	Name     string
	Section  Section
	Material Wood
}

// DisplayName returns the stud label used in reports, prefixed with a
// ply count, e.g. "(2)-38x140".
func (s Stud) DisplayName(plys int) string {
	return fmt.Sprintf("(%d)-%s", plys, s.Name)
}
