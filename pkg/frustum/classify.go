package frustum

import "github.com/philipparndt/gocull/pkg/geometry"

// PointIn classifies a point. A point is never reported as Intersect.
func (s *State) PointIn(p geometry.Vector3) Location {
	for i := range s.Planes {
		if s.Planes[i].Distance(p) < 0 {
			return Outside
		}
	}
	return Inside
}

// SphereIn classifies a sphere. Every plane is checked so that an Outside
// result on a later plane overrides an earlier Intersect.
func (s *State) SphereIn(center geometry.Vector3, radius float64) Location {
	result := Inside
	for i := range s.Planes {
		d := s.Planes[i].Distance(center)
		if d < -radius {
			return Outside
		} else if d < radius {
			result = Intersect
		}
	}
	return result
}

// BoxIn classifies an axis-aligned box using the per-plane positive and
// negative vertices.
func (s *State) BoxIn(box geometry.BoundingBox) Location {
	result := Inside
	for i := range s.Planes {
		plane := &s.Planes[i]
		positive, negative := box.Extremes(plane.Normal)
		if plane.Distance(positive) < 0 {
			return Outside
		} else if plane.Distance(negative) < 0 {
			result = Intersect
		}
	}
	return result
}
