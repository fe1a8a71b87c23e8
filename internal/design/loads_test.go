package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gostud/internal/model"
	"github.com/alexiusacademia/gostud/internal/o86"
)

// singleStoryWall is the single-story reference wall: 3048 mm storey,
// 0.9576 kPa roof dead, 1.9152 kPa roof snow, 0.7182 kPa self-weight,
// 3048 mm tributary width.
func singleStoryWall() model.Wall {
	return model.Wall{
		Name:       "W1",
		SelfWeight: 0.7182,
		Tribs:      []model.Trib{{Left: 3048}},
		Lu:         []model.Unbraced{{Width: 152, Depth: 3048}},
		Stories: []model.WallStory{
			{
				Story: model.Story{Name: "Roof", Height: 3048},
				LoadsLeft: []model.Load{
					{Name: "Roof Dead", Case: model.Dead, Value: 0.9576, LoadType: "Area"},
					{Name: "Roof Snow", Case: model.Snow, Value: 1.9152, LoadType: "Area"},
				},
			},
		},
	}
}

func threeStoryWall() model.Wall {
	roof := model.WallStory{
		Story: model.Story{Name: "Roof", Height: 3000},
		LoadsLeft: []model.Load{
			{Name: "Roof Dead", Case: model.Dead, Value: 1.0, LoadType: "Area"},
			{Name: "Roof Snow", Case: model.Snow, Value: 2.0, LoadType: "Area"},
		},
	}
	floor := model.WallStory{
		Story: model.Story{Name: "Floor", Height: 3000},
		LoadsLeft: []model.Load{
			{Name: "Floor Dead", Case: model.Dead, Value: 1.5, LoadType: "Area"},
			{Name: "Floor Live", Case: model.Live, Value: 1.9, LoadType: "Area"},
			{Name: "Partitions", Case: model.Partition, Value: 1.0, LoadType: "Area"},
		},
	}
	floor2 := floor
	floor2.Story.Name = "Second Floor"
	return model.Wall{
		Name:       "W3",
		SelfWeight: 0.5,
		Tribs:      []model.Trib{{Left: 2000}, {Left: 3000}, {Left: 3000}},
		Lu: []model.Unbraced{
			{Width: 152, Depth: 3000},
			{Width: 152, Depth: 3000},
			{Width: 152, Depth: 3000},
		},
		Stories: []model.WallStory{roof, floor, floor2},
	}
}

func TestAccumulateLoadsSingleStory(t *testing.T) {
	table := AccumulateLoads(singleStoryWall())
	require.Len(t, table, 1)

	assert.InDelta(t, 5.1078, table[0].DL, 1e-3)
	assert.InDelta(t, 5.8375, table[0].SL, 1e-3)
	assert.Equal(t, 0.0, table[0].LL)
}

func TestAccumulateLoadsMultiStory(t *testing.T) {
	table := AccumulateLoads(threeStoryWall())
	require.Len(t, table, 3)

	// Roof: dead*trib + sw*height, snow*trib, no live.
	assert.InDelta(t, 1.0*2.0+0.5*3.0, table[0].DL, 1e-9)
	assert.InDelta(t, 4.0, table[0].SL, 1e-9)
	assert.Equal(t, 0.0, table[0].LL)

	// Second level adds floor dead, partitions and live; snow is
	// unchanged below the roof.
	assert.InDelta(t, 3.5+(1.5+1.0)*3.0+0.5*3.0, table[1].DL, 1e-9)
	assert.InDelta(t, 1.9*3.0, table[1].LL, 1e-9)
	assert.InDelta(t, 4.0, table[1].SL, 1e-9)

	// Cumulative loads never decrease going down.
	for i := 1; i < len(table); i++ {
		assert.GreaterOrEqual(t, table[i].DL, table[i-1].DL)
		assert.GreaterOrEqual(t, table[i].LL, table[i-1].LL)
		assert.GreaterOrEqual(t, table[i].SL, table[i-1].SL)
	}
}

func TestAccumulateLoadsEmptyWall(t *testing.T) {
	assert.Empty(t, AccumulateLoads(model.Wall{Name: "empty"}))
}

func TestFactorLoads(t *testing.T) {
	table := []LevelLoads{{DL: 5.0, LL: 2.0, SL: 3.0}}
	rows := FactorLoads(table, o86.DefaultCombinations)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], len(o86.DefaultCombinations))

	for j, fl := range rows[0] {
		assert.Equal(t, o86.DefaultCombinations[j].Name, fl.Combo.Name)
		assert.InDelta(t, fl.Combo.Factored(5.0, 2.0, 3.0), fl.Load, 1e-9)
	}
	// Spot check the snow-principal combination.
	assert.InDelta(t, 1.25*5.0+1.0*2.0+1.5*3.0, rows[0][2].Load, 1e-9)
}
