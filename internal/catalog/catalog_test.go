package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gostud/internal/model"
)

func TestDefault(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Studs, len(standardSections)*len(standardMaterials))

	// SPF No.1/No.2 leads every section group; the optimizer's
	// tie-break depends on this ordering.
	assert.Equal(t, "38x89 SPF No.1/No.2", cat.Studs[0].Name)
	assert.Equal(t, "SPF", cat.Studs[0].Material.Species)
	assert.InDelta(t, 11.5, cat.Studs[0].Material.Fc, 1e-9)
	assert.Equal(t, 1, cat.Studs[0].Section.Plys)
}

func TestValidate(t *testing.T) {
	err := Catalog{}.Validate()
	assert.ErrorContains(t, err, "empty")

	stud := model.Stud{
		Name:     "38x89 SPF No.1/No.2",
		Section:  model.Section{Width: 38, Depth: 89, Plys: 1},
		Material: model.Wood{Name: "SPF No.1/No.2", Fc: 11.5, E05: 6500},
	}

	err = Catalog{Studs: []model.Stud{stud, stud}}.Validate()
	assert.ErrorContains(t, err, "duplicate")

	unnamed := stud
	unnamed.Name = ""
	err = Catalog{Studs: []model.Stud{unnamed}}.Validate()
	assert.ErrorContains(t, err, "no name")

	flat := stud
	flat.Section.Depth = 0
	err = Catalog{Studs: []model.Stud{flat}}.Validate()
	assert.ErrorContains(t, err, "dimensions")

	weak := stud
	weak.Material.Fc = 0
	err = Catalog{Studs: []model.Stud{weak}}.Validate()
	assert.ErrorContains(t, err, "fc")
}
