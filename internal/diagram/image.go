package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gostud/internal/design"
)

// ExportLoadProfile exports the cumulative load table as a chart.
// Format follows the file extension (png, svg, pdf).
func ExportLoadProfile(loads []design.LevelLoads, filename string) error {
	p := plot.New()
	p.Title.Text = "Cumulative Line Loads"
	p.X.Label.Text = "Level (1 = roof)"
	p.Y.Label.Text = "Line load (kN/m)"

	series := []struct {
		name  string
		color color.RGBA
		value func(design.LevelLoads) float64
	}{
		{"DL", color.RGBA{R: 120, G: 120, B: 120, A: 255}, func(l design.LevelLoads) float64 { return l.DL }},
		{"LL", color.RGBA{R: 30, G: 100, B: 200, A: 255}, func(l design.LevelLoads) float64 { return l.LL }},
		{"SL", color.RGBA{R: 60, G: 170, B: 220, A: 255}, func(l design.LevelLoads) float64 { return l.SL }},
	}

	for _, s := range series {
		pts := make(plotter.XYs, len(loads))
		for i, lv := range loads {
			pts[i] = plotter.XY{X: float64(i + 1), Y: s.value(lv)}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = s.color
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = true

	return save(p, filename)
}

func save(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
