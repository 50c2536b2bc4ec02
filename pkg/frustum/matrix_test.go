package frustum

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocull/pkg/geometry"
)

func TestViewMatrixMovesEyeToOrigin(t *testing.T) {
	p := lookingDownZ()
	p.Position = v(4, 5, 6)

	eye := p.ViewMatrix().Mul4x1(mgl64.Vec4{4, 5, 6, 1})
	assert.InDelta(t, 0.0, eye.Vec3().Len(), epsilon)

	ahead := p.ViewMatrix().Mul4x1(mgl64.Vec4{4, 5, -4, 1})
	assert.InDelta(t, -10.0, ahead.Z(), epsilon)
}

func TestClipContainsAgreesWithPlanes(t *testing.T) {
	p := Params{
		Position:    v(2, -1, 3),
		FieldOfView: 60,
		AspectRatio: 1.5,
		NearClip:    0.5,
		FarClip:     40,
	}
	p.Direction, p.Up, p.Right = Orientation(p.Position, v(-5, 4, -20), v(0, 1, 0))
	s := Derive(p)

	rng := rand.New(rand.NewSource(7))
	checked := 0
	for i := 0; i < 5000; i++ {
		point := p.Position.Add(geometry.NewVector3(
			rng.Float64()*100-50,
			rng.Float64()*100-50,
			rng.Float64()*100-50,
		))

		nearest := math.Inf(1)
		for _, plane := range s.Planes {
			nearest = math.Min(nearest, math.Abs(plane.Distance(point)))
		}
		if nearest < 1e-6 {
			continue
		}

		checked++
		require.Equalf(t, s.PointIn(point) == Inside, p.ClipContains(point), "point %v", point)
	}
	assert.Greater(t, checked, 4000)
}

func TestClipContainsBehindCamera(t *testing.T) {
	p := lookingDownZ()

	assert.False(t, p.ClipContains(v(0, 0, 10)))
	assert.True(t, p.ClipContains(v(0, 0, -10)))
}
