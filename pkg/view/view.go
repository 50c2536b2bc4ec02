// Package view loads frustum parameters from YAML view files.
package view

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gocull/pkg/frustum"
	"github.com/philipparndt/gocull/pkg/geometry"
)

// ErrInvalidView is wrapped by every validation error
var ErrInvalidView = errors.New("invalid view")

// orthoTolerance bounds the dot products between orientation vectors
const orthoTolerance = 1e-6

// File is the on-disk form of a view
type File struct {
	Position    *Vec     `yaml:"position"`
	Direction   *Vec     `yaml:"direction"`
	LookAt      *Vec     `yaml:"lookAt"`
	Up          *Vec     `yaml:"up"`
	Right       *Vec     `yaml:"right"`
	FieldOfView *float64 `yaml:"fieldOfView"`
	AspectRatio *float64 `yaml:"aspectRatio"`
	NearClip    *float64 `yaml:"nearClip"`
	FarClip     *float64 `yaml:"farClip"`
}

// Vec is a vector written as a three element sequence
type Vec [3]float64

func (v Vec) vector() geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}

// UnmarshalYAML rejects sequences that do not have exactly three numbers
func (v *Vec) UnmarshalYAML(node *yaml.Node) error {
	var values []float64
	if err := node.Decode(&values); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	if len(values) != 3 {
		return fmt.Errorf("line %d: expected 3 components, got %d", node.Line, len(values))
	}
	copy(v[:], values)
	return nil
}

// Load reads and parses a view file
func Load(path string) (frustum.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return frustum.Params{}, fmt.Errorf("failed to read view file: %w", err)
	}

	params, err := Parse(data)
	if err != nil {
		return frustum.Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return params, nil
}

// Parse decodes a view document. Missing intrinsic values fall back to
// frustum.DefaultParams; orientation must be given as either direction or
// lookAt together with up. right is derived when absent.
func Parse(data []byte) (frustum.Params, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return frustum.Params{}, fmt.Errorf("failed to parse view: %w", err)
	}
	return f.Params()
}

// Params converts the file into validated frustum parameters
func (f File) Params() (frustum.Params, error) {
	p := frustum.DefaultParams()

	if f.Position != nil {
		p.Position = f.Position.vector()
	}
	if f.FieldOfView != nil {
		p.FieldOfView = *f.FieldOfView
	}
	if f.AspectRatio != nil {
		p.AspectRatio = *f.AspectRatio
	}
	if f.NearClip != nil {
		p.NearClip = *f.NearClip
	}
	if f.FarClip != nil {
		p.FarClip = *f.FarClip
	}

	if f.Up == nil {
		return p, fmt.Errorf("%w: up is required", ErrInvalidView)
	}

	switch {
	case f.Direction != nil && f.LookAt != nil:
		return p, fmt.Errorf("%w: direction and lookAt are mutually exclusive", ErrInvalidView)
	case f.LookAt != nil:
		if f.Right != nil {
			return p, fmt.Errorf("%w: right cannot be combined with lookAt", ErrInvalidView)
		}
		p.Direction, p.Up, p.Right = frustum.Orientation(p.Position, f.LookAt.vector(), f.Up.vector())
	case f.Direction != nil:
		p.Direction = f.Direction.vector().Normalize()
		p.Up = f.Up.vector().Normalize()
		if f.Right != nil {
			p.Right = f.Right.vector().Normalize()
		} else {
			p.Right = p.Direction.Cross(p.Up).Normalize()
		}
	default:
		return p, fmt.Errorf("%w: one of direction or lookAt is required", ErrInvalidView)
	}

	if err := Validate(p); err != nil {
		return p, err
	}
	return p, nil
}

// Validate checks the preconditions frustum.Derive does not check itself
func Validate(p frustum.Params) error {
	if !p.Position.IsFinite() {
		return fmt.Errorf("%w: position %v is not finite", ErrInvalidView, p.Position)
	}
	for _, axis := range []struct {
		name string
		v    geometry.Vector3
	}{
		{"direction", p.Direction},
		{"up", p.Up},
		{"right", p.Right},
	} {
		if math.Abs(axis.v.Length()-1) > orthoTolerance {
			return fmt.Errorf("%w: %s %v is not a unit vector", ErrInvalidView, axis.name, axis.v)
		}
	}
	if math.Abs(p.Direction.Dot(p.Up)) > orthoTolerance ||
		math.Abs(p.Direction.Dot(p.Right)) > orthoTolerance ||
		math.Abs(p.Up.Dot(p.Right)) > orthoTolerance {
		return fmt.Errorf("%w: direction, up and right must be orthogonal", ErrInvalidView)
	}
	// Plane normals only face inward for right = direction x up.
	if p.Direction.Cross(p.Up).Dot(p.Right) < 1-orthoTolerance {
		return fmt.Errorf("%w: right %v must equal direction x up", ErrInvalidView, p.Right)
	}
	if p.FieldOfView <= 0 || p.FieldOfView >= 180 {
		return fmt.Errorf("%w: fieldOfView %g must be in (0, 180)", ErrInvalidView, p.FieldOfView)
	}
	if p.AspectRatio <= 0 {
		return fmt.Errorf("%w: aspectRatio %g must be positive", ErrInvalidView, p.AspectRatio)
	}
	if p.NearClip <= 0 || p.FarClip <= p.NearClip {
		return fmt.Errorf("%w: clip range [%g, %g] must satisfy 0 < near < far", ErrInvalidView, p.NearClip, p.FarClip)
	}
	return nil
}
