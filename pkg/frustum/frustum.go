package frustum

import (
	"io"

	"github.com/philipparndt/gocull/pkg/geometry"
)

// ViewFrustum owns a camera's frustum parameters and the state last derived
// from them. Setters only change parameters; call Calculate before querying.
// A ViewFrustum must not be used from several goroutines at once; hand out
// State snapshots instead.
type ViewFrustum struct {
	params Params
	state  State
}

// New creates a frustum with DefaultParams
func New() *ViewFrustum {
	return NewWithParams(DefaultParams())
}

// NewWithParams creates a frustum with the given parameters and calculates it
func NewWithParams(p Params) *ViewFrustum {
	f := &ViewFrustum{params: p}
	f.Calculate()
	return f
}

// Params returns the current parameters
func (f *ViewFrustum) Params() Params { return f.params }

// SetParams replaces all parameters at once
func (f *ViewFrustum) SetParams(p Params) { f.params = p }

func (f *ViewFrustum) Position() geometry.Vector3 { return f.params.Position }
func (f *ViewFrustum) Direction() geometry.Vector3 { return f.params.Direction }
func (f *ViewFrustum) Up() geometry.Vector3 { return f.params.Up }
func (f *ViewFrustum) Right() geometry.Vector3 { return f.params.Right }
func (f *ViewFrustum) FieldOfView() float64 { return f.params.FieldOfView }
func (f *ViewFrustum) AspectRatio() float64 { return f.params.AspectRatio }
func (f *ViewFrustum) NearClip() float64 { return f.params.NearClip }
func (f *ViewFrustum) FarClip() float64 { return f.params.FarClip }

func (f *ViewFrustum) SetPosition(p geometry.Vector3) { f.params.Position = p }

// SetOrientation sets the view basis. The vectors must be orthonormal.
func (f *ViewFrustum) SetOrientation(direction, up, right geometry.Vector3) {
	f.params.Direction = direction
	f.params.Up = up
	f.params.Right = right
}

// LookAt positions the camera at eye facing target
func (f *ViewFrustum) LookAt(eye, target, up geometry.Vector3) {
	f.params.Position = eye
	f.params.Direction, f.params.Up, f.params.Right = Orientation(eye, target, up)
}

// SetFieldOfView sets the vertical field of view in degrees
func (f *ViewFrustum) SetFieldOfView(degrees float64) { f.params.FieldOfView = degrees }
func (f *ViewFrustum) SetAspectRatio(ratio float64) { f.params.AspectRatio = ratio }
func (f *ViewFrustum) SetNearClip(distance float64) { f.params.NearClip = distance }
func (f *ViewFrustum) SetFarClip(distance float64) { f.params.FarClip = distance }

// Calculate re-derives corners and planes from the current parameters
func (f *ViewFrustum) Calculate() {
	f.state = Derive(f.params)
}

// State returns a copy of the state from the last Calculate call
func (f *ViewFrustum) State() State {
	return f.state
}

// PointIn classifies p against the planes from the last Calculate call
func (f *ViewFrustum) PointIn(p geometry.Vector3) Location {
	return f.state.PointIn(p)
}

// SphereIn classifies a sphere against the planes from the last Calculate call
func (f *ViewFrustum) SphereIn(center geometry.Vector3, radius float64) Location {
	return f.state.SphereIn(center, radius)
}

// BoxIn classifies a box against the planes from the last Calculate call
func (f *ViewFrustum) BoxIn(box geometry.BoundingBox) Location {
	return f.state.BoxIn(box)
}

// Dump writes the last calculated state to w
func (f *ViewFrustum) Dump(w io.Writer) error {
	return f.state.Dump(w)
}
