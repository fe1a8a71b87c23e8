package design

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gostud/internal/catalog"
	"github.com/alexiusacademia/gostud/internal/model"
	"github.com/alexiusacademia/gostud/internal/o86"
)

func TestDesignSingleStoryReference(t *testing.T) {
	d := NewDesigner(catalog.Default())
	run, err := d.Design(singleStoryWall())
	require.NoError(t, err)
	require.Len(t, run.Levels, 1)

	opt := run.Levels[0].Optimal
	require.NotNil(t, opt, "expected an adequate design")

	assert.Equal(t, "38x89 SPF No.1/No.2", opt.Stud.Name)
	assert.Equal(t, 406.0, opt.Spacing)
	assert.Equal(t, 1, opt.Plys)
	assert.Equal(t, "1.25DL+1.5SL+1.0LL", opt.GoverningCombo)
	assert.InDelta(t, 6.147, opt.Pf, 0.01)
	assert.InDelta(t, 10.96, opt.Pr, 0.02)
	assert.InDelta(t, 0.561, opt.DCRatio, 0.005)
	assert.Equal(t, 1.0, opt.KFactors.Kd)
}

func TestDesignDeterminism(t *testing.T) {
	d := NewDesigner(catalog.Default())
	w := threeStoryWall()

	first, err := d.Design(w)
	require.NoError(t, err)
	second, err := d.Design(w)
	require.NoError(t, err)

	require.Equal(t, len(first.Levels), len(second.Levels))
	for i := range first.Levels {
		assert.Equal(t, first.Levels[i].Candidates, second.Levels[i].Candidates)
		assert.Equal(t, first.Levels[i].Final(), second.Levels[i].Final())
	}
}

func TestDesignOptimality(t *testing.T) {
	d := NewDesigner(catalog.Default())
	run, err := d.Design(threeStoryWall())
	require.NoError(t, err)

	for _, lr := range run.Levels {
		opt := lr.Optimal
		require.NotNil(t, opt, "level %d", lr.Level)
		require.True(t, opt.Valid())
		for _, c := range lr.Candidates {
			if c.Valid() {
				assert.GreaterOrEqual(t, c.WoodVolume, opt.WoodVolume,
					"level %d: %s @ %g beats the optimum", lr.Level, c.Stud.Name, c.Spacing)
			}
		}
	}
}

func TestDesignLowerLevelsCarryMoreLoad(t *testing.T) {
	d := NewDesigner(catalog.Default())
	run, err := d.Design(threeStoryWall())
	require.NoError(t, err)
	require.Len(t, run.Levels, 3)

	for i := 1; i < len(run.Levels); i++ {
		upper := run.Levels[i-1].Final()
		lower := run.Levels[i].Final()
		assert.GreaterOrEqual(t, lower.Pf, upper.Pf)
	}
}

func TestDesignNoSolution(t *testing.T) {
	w := singleStoryWall()
	w.Stories[0].LoadsLeft[0].Value = 500 // kPa, far beyond any catalog stud

	d := NewDesigner(catalog.Default())
	run, err := d.Design(w)
	require.NoError(t, err, "an unsolvable level is a result, not an error")
	require.Len(t, run.Levels, 1)

	assert.Nil(t, run.Levels[0].Optimal)
	assert.Nil(t, run.Levels[0].Final().Stud)
	assert.NotEmpty(t, run.Levels[0].Candidates)
}

func TestDesignOverSlenderNeverSelected(t *testing.T) {
	// A 6 m unbraced storey drives the 89 mm depth axis past the
	// slenderness limit; a thin catalog leaves nothing compliant.
	cat := catalog.Catalog{Studs: []model.Stud{{
		Name:     "38x89 SPF No.1/No.2",
		Section:  model.Section{Width: 38, Depth: 89, Plys: 1},
		Material: model.Wood{Name: "SPF No.1/No.2", Fc: 11.5, E: 9500, E05: 6500},
	}}}

	w := singleStoryWall()
	w.Stories[0].Story.Height = 6000
	w.Lu[0].Depth = 6000

	run, err := NewDesigner(cat).Design(w)
	require.NoError(t, err)
	require.Nil(t, run.Levels[0].Optimal)
	for _, c := range run.Levels[0].Candidates {
		assert.True(t, math.IsInf(c.DCRatio, 1) || c.DCRatio >= 1.0)
	}
}

func TestDesignConfigurationErrors(t *testing.T) {
	w := singleStoryWall()

	_, err := NewDesigner(catalog.Catalog{}).Design(w)
	assert.ErrorContains(t, err, "catalog")

	d := NewDesigner(catalog.Default())
	d.Combinations = nil
	_, err = d.Design(w)
	assert.ErrorContains(t, err, "combinations")

	d = NewDesigner(catalog.Default())
	d.Spacings = nil
	_, err = d.Design(w)
	assert.ErrorContains(t, err, "spacings")

	bad := w
	bad.Tribs = nil
	_, err = NewDesigner(catalog.Default()).Design(bad)
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGoverningComboIsWorstCase(t *testing.T) {
	d := NewDesigner(catalog.Default())
	run, err := d.Design(singleStoryWall())
	require.NoError(t, err)

	loads := run.Loads[0]
	for _, c := range run.Levels[0].Candidates {
		if !c.Valid() {
			continue
		}
		// Recompute every combination's ratio and confirm the
		// recorded governing value is the maximum.
		worst := 0.0
		for _, fl := range run.Factored[0] {
			pf := fl.Load * c.Spacing / 1000
			pl, ps := fl.Combo.LongShort(loads.DL, loads.LL, loads.SL)
			k := o86.DefaultKFactors(o86.DurationFactor(fl.Combo.Duration(), pl*c.Spacing/1000, ps*c.Spacing/1000))
			gov, _, _ := o86.MemberResistance(c.Section, c.Stud.Material, k)
			if gov.Pr > 0 {
				if dc := pf / (gov.Pr / 1000); dc > worst {
					worst = dc
				}
			}
		}
		assert.InDelta(t, worst, c.DCRatio, 1e-9,
			"%s @ %g mm, %d ply", c.Stud.Name, c.Spacing, c.Plys)
	}
}

func TestToRecordClampsUnboundedRatio(t *testing.T) {
	r := DesignResult{DCRatio: math.Inf(1)}
	assert.Equal(t, math.MaxFloat64, r.ToRecord().DCRatio)
}
