package model

import "fmt"

// Story is a single building level. Height and FloorThickness are mm.
type Story struct {
	Name           string
	Height         float64
	FloorThickness float64
}

// WallStory associates a wall with a story and carries the loads
// applied at that level on each side of the wall.
type WallStory struct {
	Story      Story
	LoadsLeft  []Load
	LoadsRight []Load
}

// Loads returns the combined left and right load sets for the level.
func (ws WallStory) Loads() []Load {
	all := make([]Load, 0, len(ws.LoadsLeft)+len(ws.LoadsRight))
	all = append(all, ws.LoadsLeft...)
	all = append(all, ws.LoadsRight...)
	return all
}

// Trib holds the tributary widths (mm) on each side of a wall at one
// level.
type Trib struct {
	Left  float64
	Right float64
}

// Total returns the combined tributary width in mm.
func (t Trib) Total() float64 { return t.Left + t.Right }

// Unbraced holds the unbraced lengths (mm) for each buckling axis at
// one level.
type Unbraced struct {
	Width float64 // weak axis, braced by sheathing/blocking
	Depth float64 // strong axis, normally the story height
}

// Wall is a multi-story bearing wall. Stories are ordered from the
// roof (index 0) downward; Tribs and Lu are indexed parallel to
// Stories and the ordering is load-bearing for the cumulative sums.
type Wall struct {
	Name       string
	Length     float64 // mm
	SelfWeight float64 // kPa
	Tribs      []Trib
	Lu         []Unbraced
	Stories    []WallStory
}

// Validate checks the parallel-array invariants before any calculation
// runs. The engine never guesses alignment between stories, tributary
// widths and unbraced lengths.
func (w Wall) Validate() error {
	if len(w.Tribs) != len(w.Stories) {
		return &ValidationError{fmt.Sprintf("wall %q: %d tributary entries for %d stories", w.Name, len(w.Tribs), len(w.Stories))}
	}
	if len(w.Lu) != len(w.Stories) {
		return &ValidationError{fmt.Sprintf("wall %q: %d unbraced length entries for %d stories", w.Name, len(w.Lu), len(w.Stories))}
	}
	if w.SelfWeight < 0 {
		return &ValidationError{fmt.Sprintf("wall %q: negative self-weight", w.Name)}
	}
	for i, ws := range w.Stories {
		if ws.Story.Height <= 0 {
			return &ValidationError{fmt.Sprintf("wall %q: story %d has non-positive height", w.Name, i+1)}
		}
		for _, l := range ws.Loads() {
			if l.Value < 0 {
				return &ValidationError{fmt.Sprintf("wall %q: story %d: load %q has negative value", w.Name, i+1, l.Name)}
			}
		}
	}
	return nil
}

// ValidationError represents a data-model invariant violation.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
