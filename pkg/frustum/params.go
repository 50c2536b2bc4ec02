package frustum

import "github.com/philipparndt/gocull/pkg/geometry"

// Params are the camera parameters a frustum is derived from.
// Direction, Up and Right must be mutually orthogonal unit vectors.
type Params struct {
	Position  geometry.Vector3
	Direction geometry.Vector3
	Up        geometry.Vector3
	Right     geometry.Vector3

	FieldOfView float64 // vertical, in degrees
	AspectRatio float64 // width / height
	NearClip    float64
	FarClip     float64
}

// DefaultParams returns zero orientation vectors with the stock clip range.
// The orientation and field of view must be set before deriving.
func DefaultParams() Params {
	return Params{
		FieldOfView: 0,
		AspectRatio: 1,
		NearClip:    0.1,
		FarClip:     500,
	}
}

// Orientation builds an orthonormal direction/up/right basis for a camera at
// eye looking at target. up only needs to be roughly upward; it is
// re-orthogonalized against the view direction.
func Orientation(eye, target, up geometry.Vector3) (direction, trueUp, right geometry.Vector3) {
	direction = target.Sub(eye).Normalize()
	right = direction.Cross(up).Normalize()
	trueUp = right.Cross(direction).Normalize()
	return direction, trueUp, right
}
