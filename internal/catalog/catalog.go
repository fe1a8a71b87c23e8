// Package catalog provides the stud catalog consumed by the design
// search: the set of (section template, material) pairs the optimizer
// may enumerate. The catalog is an explicitly passed, immutable
// collaborator; nothing here caches at module level.
package catalog

import (
	"fmt"

	"github.com/alexiusacademia/gostud/internal/model"
)

// Catalog is an immutable list of candidate stud types.
type Catalog struct {
	Studs []model.Stud
}

// Validate checks that the catalog is usable before a search runs.
func (c Catalog) Validate() error {
	if len(c.Studs) == 0 {
		return fmt.Errorf("stud catalog is empty")
	}
	seen := make(map[string]bool, len(c.Studs))
	for i, s := range c.Studs {
		if s.Name == "" {
			return fmt.Errorf("stud %d has no name", i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate stud %q", s.Name)
		}
		seen[s.Name] = true
		if s.Section.Width <= 0 || s.Section.Depth <= 0 {
			return fmt.Errorf("stud %q has non-positive section dimensions", s.Name)
		}
		if s.Material.Fc <= 0 {
			return fmt.Errorf("stud %q material %q has non-positive fc", s.Name, s.Material.Name)
		}
	}
	return nil
}

// Standard single-ply dimension lumber section templates (mm).
var standardSections = []model.Section{
	{Width: 38, Depth: 89, Plys: 1},
	{Width: 38, Depth: 140, Plys: 1},
	{Width: 38, Depth: 184, Plys: 1},
	{Width: 38, Depth: 235, Plys: 1},
}

// Joist and plank design values, CSA O86-20 Table 6.3.1A (MPa).
var standardMaterials = []model.Wood{
	{
		Name: "SPF No.1/No.2", Category: "Joist and Plank",
		Species: "SPF", Grade: "No.1/No.2",
		Fb: 11.8, Fv: 1.5, Fc: 11.5, Fcp: 5.3, Ft: 5.5,
		E: 9500, E05: 6500, MaterialType: model.Sawn,
	},
	{
		Name: "D.Fir-L No.1/No.2", Category: "Joist and Plank",
		Species: "D.Fir-L", Grade: "No.1/No.2",
		Fb: 10.8, Fv: 1.8, Fc: 14.0, Fcp: 7.0, Ft: 5.8,
		E: 12500, E05: 8500, MaterialType: model.Sawn,
	},
	{
		Name: "Hem-Fir No.1/No.2", Category: "Joist and Plank",
		Species: "Hem-Fir", Grade: "No.1/No.2",
		Fb: 11.0, Fv: 1.6, Fc: 12.7, Fcp: 4.6, Ft: 4.6,
		E: 11000, E05: 7500, MaterialType: model.Sawn,
	},
	{
		Name: "SPF 2100f-1.8E", Category: "MSR Lumber",
		Species: "SPF", Grade: "2100f-1.8E",
		Fb: 30.2, Fv: 1.5, Fc: 16.9, Fcp: 5.3, Ft: 15.7,
		E: 12400, E05: 11000, MaterialType: model.MSR,
	},
}

// Default returns the built-in stud catalog: every standard section in
// every standard material. Declaration order is load-bearing for the
// optimizer's tie-break, so SPF No.1/No.2 (the usual wall stud
// material) comes first for each section.
func Default() Catalog {
	var studs []model.Stud
	for _, sec := range standardSections {
		for _, mat := range standardMaterials {
			studs = append(studs, model.Stud{
				Name:     fmt.Sprintf("%s %s", sec.Name(), mat.Name),
				Section:  sec,
				Material: mat,
			})
		}
	}
	return Catalog{Studs: studs}
}
