package cull

import (
	"fmt"

	"github.com/philipparndt/gocull/pkg/frustum"
)

// Stats counts classification results
type Stats struct {
	Inside    int
	Intersect int
	Outside   int
}

// Add records one result
func (s *Stats) Add(loc frustum.Location) {
	switch loc {
	case frustum.Inside:
		s.Inside++
	case frustum.Intersect:
		s.Intersect++
	case frustum.Outside:
		s.Outside++
	}
}

// Merge adds the counts of other
func (s *Stats) Merge(other Stats) {
	s.Inside += other.Inside
	s.Intersect += other.Intersect
	s.Outside += other.Outside
}

// Total returns the number of recorded results
func (s Stats) Total() int {
	return s.Inside + s.Intersect + s.Outside
}

// Visible returns the number of results a renderer would draw
func (s Stats) Visible() int {
	return s.Inside + s.Intersect
}

// VisibleRatio returns Visible / Total, or 0 when nothing was recorded
func (s Stats) VisibleRatio() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Visible()) / float64(s.Total())
}

func (s Stats) String() string {
	return fmt.Sprintf("inside=%d intersect=%d outside=%d", s.Inside, s.Intersect, s.Outside)
}

// Tally counts a slice of results
func Tally(locs []frustum.Location) Stats {
	var s Stats
	for _, loc := range locs {
		s.Add(loc)
	}
	return s
}
