package geometry

// Plane is a half-space boundary given by a point on the plane and a unit
// normal pointing into the inside half-space.
type Plane struct {
	Point  Vector3
	Normal Vector3
}

// NewPlane creates a plane through point with the given normal.
// The normal is normalized so distances are metric.
func NewPlane(point, normal Vector3) Plane {
	return Plane{
		Point:  point,
		Normal: normal.Normalize(),
	}
}

// PlaneFromPoints creates the plane through three points given in
// counter-clockwise order as seen from the inside half-space.
func PlaneFromPoints(v1, v2, v3 Vector3) Plane {
	edge1 := v1.Sub(v2)
	edge2 := v3.Sub(v2)

	return Plane{
		Point:  v1,
		Normal: edge2.Cross(edge1).Normalize(),
	}
}

// Distance returns the signed distance of point from the plane.
// Positive is inside, negative outside, zero on the plane.
func (p Plane) Distance(point Vector3) float64 {
	return point.Sub(p.Point).Dot(p.Normal)
}
