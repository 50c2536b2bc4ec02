package frustum

import (
	"math"

	"github.com/philipparndt/gocull/pkg/geometry"
)

// Corners are the four corners of a clip rectangle
type Corners struct {
	TopLeft     geometry.Vector3
	TopRight    geometry.Vector3
	BottomLeft  geometry.Vector3
	BottomRight geometry.Vector3
}

// State is a frustum derived from a set of Params. It is a plain value and
// never changes after Derive returns it.
type State struct {
	Params

	NearHeight float64
	NearWidth  float64
	FarHeight  float64
	FarWidth   float64

	NearCenter geometry.Vector3
	FarCenter  geometry.Vector3
	Near       Corners
	Far        Corners

	// Planes are indexed by Face; every normal points into the frustum.
	Planes [faceCount]geometry.Plane
}

// Derive computes the corner points and bounding planes for p.
func Derive(p Params) State {
	s := State{Params: p}

	twoTanHalfFOV := 2 * math.Tan(p.FieldOfView*math.Pi/180/2)

	s.NearHeight = twoTanHalfFOV * p.NearClip
	s.NearWidth = s.NearHeight * p.AspectRatio
	s.FarHeight = twoTanHalfFOV * p.FarClip
	s.FarWidth = s.FarHeight * p.AspectRatio

	s.FarCenter = p.Position.Add(p.Direction.Mul(p.FarClip))
	s.Far = rectangle(s.FarCenter, p.Up, p.Right, s.FarHeight/2, s.FarWidth/2)

	s.NearCenter = p.Position.Add(p.Direction.Mul(p.NearClip))
	s.Near = rectangle(s.NearCenter, p.Up, p.Right, s.NearHeight/2, s.NearWidth/2)

	// Each triple is counter-clockwise seen from inside the frustum.
	n, f := s.Near, s.Far
	s.Planes[Top] = geometry.PlaneFromPoints(n.TopRight, n.TopLeft, f.TopLeft)
	s.Planes[Bottom] = geometry.PlaneFromPoints(n.BottomLeft, n.BottomRight, f.BottomRight)
	s.Planes[Left] = geometry.PlaneFromPoints(n.TopLeft, n.BottomLeft, f.BottomLeft)
	s.Planes[Right] = geometry.PlaneFromPoints(n.BottomRight, n.TopRight, f.BottomRight)
	s.Planes[Near] = geometry.PlaneFromPoints(n.TopLeft, n.TopRight, n.BottomRight)
	s.Planes[Far] = geometry.PlaneFromPoints(f.TopRight, f.TopLeft, f.BottomLeft)

	return s
}

func rectangle(center, up, right geometry.Vector3, halfHeight, halfWidth float64) Corners {
	u := up.Mul(halfHeight)
	r := right.Mul(halfWidth)
	return Corners{
		TopLeft:     center.Add(u).Sub(r),
		TopRight:    center.Add(u).Add(r),
		BottomLeft:  center.Sub(u).Sub(r),
		BottomRight: center.Sub(u).Add(r),
	}
}

// Plane returns the bounding plane for face
func (s *State) Plane(face Face) geometry.Plane {
	return s.Planes[face]
}
