package model

// LoadCase is the building-code load case category used to group loads
// in combinations.
type LoadCase string

const (
	Dead      LoadCase = "Dead"
	Live      LoadCase = "Live"
	Snow      LoadCase = "Snow"
	Wind      LoadCase = "Wind"
	Seismic   LoadCase = "Seismic"
	Partition LoadCase = "Partition"
)

// Load is a specified load applied to a wall story. Value is a
// pressure in kPa for area loads. Loads are shared by reference across
// stories and must not be mutated once a calculation has consumed them.
type Load struct {
	Name     string
	Case     LoadCase
	Value    float64 // kPa
	LoadType string  // "Area", "Line", "Point"
}

// SumByCase totals the values of the given loads matching a case.
func SumByCase(loads []Load, c LoadCase) float64 {
	var sum float64
	for _, l := range loads {
		if l.Case == c {
			sum += l.Value
		}
	}
	return sum
}
