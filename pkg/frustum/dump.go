package frustum

import (
	"bufio"
	"fmt"
	"io"

	"github.com/philipparndt/gocull/pkg/geometry"
)

// Dump writes every attribute of the state to w, one name=value per line
func (s *State) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)

	vec := func(name string, v geometry.Vector3) {
		fmt.Fprintf(bw, "%s.x=%f, %s.y=%f, %s.z=%f\n", name, v.X, name, v.Y, name, v.Z)
	}
	num := func(name string, v float64) {
		fmt.Fprintf(bw, "%s=%f\n", name, v)
	}

	vec("position", s.Position)
	vec("direction", s.Direction)
	vec("up", s.Up)
	vec("right", s.Right)

	num("fieldOfView", s.FieldOfView)
	num("aspectRatio", s.AspectRatio)

	num("farDist", s.FarClip)
	num("farHeight", s.FarHeight)
	num("farWidth", s.FarWidth)

	num("nearDist", s.NearClip)
	num("nearHeight", s.NearHeight)
	num("nearWidth", s.NearWidth)

	vec("farCenter", s.FarCenter)
	vec("farTopLeft", s.Far.TopLeft)
	vec("farTopRight", s.Far.TopRight)
	vec("farBottomLeft", s.Far.BottomLeft)
	vec("farBottomRight", s.Far.BottomRight)

	vec("nearCenter", s.NearCenter)
	vec("nearTopLeft", s.Near.TopLeft)
	vec("nearTopRight", s.Near.TopRight)
	vec("nearBottomLeft", s.Near.BottomLeft)
	vec("nearBottomRight", s.Near.BottomRight)

	return bw.Flush()
}
