package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWall() Wall {
	return Wall{
		Name:       "W1",
		SelfWeight: 0.5,
		Tribs:      []Trib{{Left: 2000}},
		Lu:         []Unbraced{{Width: 152, Depth: 3000}},
		Stories: []WallStory{
			{
				Story: Story{Name: "Roof", Height: 3000},
				LoadsLeft: []Load{
					{Name: "Roof Dead", Case: Dead, Value: 1.0, LoadType: "Area"},
					{Name: "Roof Snow", Case: Snow, Value: 2.0, LoadType: "Area"},
				},
			},
		},
	}
}

func TestWallValidate(t *testing.T) {
	require.NoError(t, validWall().Validate())
}

func TestWallValidateParallelArrays(t *testing.T) {
	w := validWall()
	w.Tribs = nil
	assert.ErrorContains(t, w.Validate(), "tributary")

	w = validWall()
	w.Lu = nil
	assert.ErrorContains(t, w.Validate(), "unbraced")
}

func TestWallValidateBadValues(t *testing.T) {
	w := validWall()
	w.SelfWeight = -0.1
	assert.ErrorContains(t, w.Validate(), "self-weight")

	w = validWall()
	w.Stories[0].Story.Height = 0
	assert.ErrorContains(t, w.Validate(), "height")

	w = validWall()
	w.Stories[0].LoadsLeft[0].Value = -1
	var verr *ValidationError
	err := w.Validate()
	require.ErrorAs(t, err, &verr)
	assert.ErrorContains(t, err, "negative value")
}

func TestWallStoryLoads(t *testing.T) {
	ws := WallStory{
		LoadsLeft:  []Load{{Name: "a", Case: Dead, Value: 1}},
		LoadsRight: []Load{{Name: "b", Case: Live, Value: 2}},
	}
	all := ws.Loads()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "b", all[1].Name)
}

func TestSumByCase(t *testing.T) {
	loads := []Load{
		{Case: Dead, Value: 1.0},
		{Case: Dead, Value: 0.5},
		{Case: Live, Value: 2.0},
	}
	assert.InDelta(t, 1.5, SumByCase(loads, Dead), 1e-9)
	assert.InDelta(t, 2.0, SumByCase(loads, Live), 1e-9)
	assert.Equal(t, 0.0, SumByCase(loads, Snow))
}

func TestTribTotal(t *testing.T) {
	assert.Equal(t, 5000.0, Trib{Left: 2000, Right: 3000}.Total())
}
