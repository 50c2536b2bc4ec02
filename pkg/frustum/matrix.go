package frustum

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/philipparndt/gocull/pkg/geometry"
)

func toVec3(v geometry.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// ViewMatrix returns the right-handed look-at matrix for the camera
func (p Params) ViewMatrix() mgl64.Mat4 {
	eye := toVec3(p.Position)
	return mgl64.LookAtV(eye, eye.Add(toVec3(p.Direction)), toVec3(p.Up))
}

// ProjectionMatrix returns the OpenGL style perspective projection
func (p Params) ProjectionMatrix() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(p.FieldOfView), p.AspectRatio, p.NearClip, p.FarClip)
}

// ViewProjection returns ProjectionMatrix * ViewMatrix
func (p Params) ViewProjection() mgl64.Mat4 {
	return p.ProjectionMatrix().Mul4(p.ViewMatrix())
}

// ClipContains reports whether point falls inside the canonical clip volume
// after the view-projection transform. It agrees with PointIn away from the
// plane boundaries and is meant for cross-checking GPU-side culling.
func (p Params) ClipContains(point geometry.Vector3) bool {
	c := p.ViewProjection().Mul4x1(toVec3(point).Vec4(1))
	w := c.W()
	if w <= 0 {
		return false
	}
	return c.X() >= -w && c.X() <= w &&
		c.Y() >= -w && c.Y() <= w &&
		c.Z() >= -w && c.Z() <= w
}
