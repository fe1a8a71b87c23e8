package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gostud/internal/model"
	"github.com/alexiusacademia/gostud/internal/units"
	"github.com/spf13/cobra"
)

// wallInput gathers the scalar flags shared by the loads and wall
// design commands and converts them into a Wall model.
type wallInput struct {
	name       string
	heights    []float64
	roofDead   float64
	roofSnow   float64
	floorDead  float64
	floorLive  float64
	partitions float64
	selfWeight float64
	roofTrib   float64
	floorTrib  float64
	luWidth    float64
	imperial   bool
}

func addWallFlags(cmd *cobra.Command, in *wallInput) {
	cmd.Flags().StringVar(&in.name, "name", "Wall", "Wall name")
	cmd.Flags().Float64SliceVar(&in.heights, "heights", nil, "Story heights, top (roof) to bottom (ft imperial, mm metric) [required]")
	cmd.Flags().Float64Var(&in.roofDead, "roof-dead", 0, "Roof dead load (psf or kPa)")
	cmd.Flags().Float64Var(&in.roofSnow, "roof-snow", 0, "Roof snow load (psf or kPa)")
	cmd.Flags().Float64Var(&in.floorDead, "floor-dead", 0, "Floor dead load (psf or kPa)")
	cmd.Flags().Float64Var(&in.floorLive, "floor-live", 0, "Floor live load (psf or kPa)")
	cmd.Flags().Float64Var(&in.partitions, "partitions", 0, "Partition load on floors (psf or kPa)")
	cmd.Flags().Float64Var(&in.selfWeight, "sw", 0, "Wall self-weight (psf or kPa)")
	cmd.Flags().Float64Var(&in.roofTrib, "roof-trib", 0, "Roof tributary width (ft or m)")
	cmd.Flags().Float64Var(&in.floorTrib, "floor-trib", 0, "Floor tributary width (ft or m)")
	cmd.Flags().Float64Var(&in.luWidth, "lu-width", 0, "Weak-axis unbraced length (in or mm); 0 = sheathing nail spacing (152 mm)")
	cmd.Flags().BoolVar(&in.imperial, "imperial", false, "Interpret inputs and display results in imperial units")

	cmd.MarkFlagRequired("heights")
}

func (in wallInput) system() units.System {
	if in.imperial {
		return units.System{Units: units.Imperial}
	}
	return units.System{Units: units.Metric}
}

// buildWall converts the display-unit inputs into the internal metric
// wall model. Level 0 is the roof; lower levels carry the floor loads.
func (in wallInput) buildWall() (model.Wall, error) {
	if len(in.heights) == 0 {
		return model.Wall{}, fmt.Errorf("at least one story height is required")
	}

	sys := in.system()
	luWidth := sys.ToMetric(in.luWidth, units.LengthIn)
	if luWidth == 0 {
		luWidth = 152 // sheathing nail spacing
	}

	w := model.Wall{
		Name:       in.name,
		SelfWeight: sys.ToMetric(in.selfWeight, units.Pressure),
	}

	roofTrib := sys.ToMetric(in.roofTrib, units.LengthM) * 1000
	floorTrib := sys.ToMetric(in.floorTrib, units.LengthM) * 1000

	for i, h := range in.heights {
		height := sys.ToMetric(h, units.LengthMM)
		story := model.Story{Name: fmt.Sprintf("Level %d", i+1), Height: height}

		var loads []model.Load
		var trib model.Trib
		if i == 0 {
			loads = []model.Load{
				{Name: "Roof Dead", Case: model.Dead, Value: sys.ToMetric(in.roofDead, units.Pressure), LoadType: "Area"},
				{Name: "Roof Snow", Case: model.Snow, Value: sys.ToMetric(in.roofSnow, units.Pressure), LoadType: "Area"},
			}
			trib = model.Trib{Left: roofTrib}
		} else {
			loads = []model.Load{
				{Name: "Floor Dead", Case: model.Dead, Value: sys.ToMetric(in.floorDead, units.Pressure), LoadType: "Area"},
				{Name: "Floor Live", Case: model.Live, Value: sys.ToMetric(in.floorLive, units.Pressure), LoadType: "Area"},
				{Name: "Partitions", Case: model.Partition, Value: sys.ToMetric(in.partitions, units.Pressure), LoadType: "Area"},
			}
			trib = model.Trib{Left: floorTrib}
		}

		w.Stories = append(w.Stories, model.WallStory{Story: story, LoadsLeft: loads})
		w.Tribs = append(w.Tribs, trib)
		w.Lu = append(w.Lu, model.Unbraced{Width: luWidth, Depth: height})
	}

	return w, nil
}
