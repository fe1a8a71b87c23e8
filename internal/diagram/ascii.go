package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gostud/internal/design"
	"github.com/alexiusacademia/gostud/internal/model"
)

// LoadProfile renders the cumulative line loads as an ASCII chart,
// roof on the left, in kN/m.
func LoadProfile(loads []design.LevelLoads) string {
	if len(loads) == 0 {
		return ""
	}

	dl := make([]float64, len(loads))
	ll := make([]float64, len(loads))
	sl := make([]float64, len(loads))
	for i, lv := range loads {
		dl[i] = lv.DL
		ll[i] = lv.LL
		sl[i] = lv.SL
	}

	return asciigraph.PlotMany(
		[][]float64{dl, ll, sl},
		asciigraph.Height(12),
		asciigraph.Caption("Cumulative line loads per level, roof to base (kN/m)"),
		asciigraph.SeriesLegends("DL", "LL", "SL"),
	)
}

// StudSketch draws a plan view of a built-up stud section, plies side
// by side with the depth drawn vertically.
func StudSketch(sec model.Section) string {
	var sb strings.Builder

	plyChars := 6
	rows := 8

	sb.WriteString(fmt.Sprintf("  Section %s, %d ply(s)\n", sec.Name(), sec.Plys))
	sb.WriteString(fmt.Sprintf("  b = %g mm total, d = %g mm\n\n", sec.Width*float64(sec.Plys), sec.Depth))

	border := "  +" + strings.Repeat(strings.Repeat("-", plyChars)+"+", sec.Plys)
	sb.WriteString(border + "\n")
	for r := 0; r < rows; r++ {
		sb.WriteString("  |" + strings.Repeat(strings.Repeat(" ", plyChars)+"|", sec.Plys) + "\n")
	}
	sb.WriteString(border + "\n")

	return sb.String()
}
