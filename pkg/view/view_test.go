package view

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocull/pkg/frustum"
	"github.com/philipparndt/gocull/pkg/geometry"
)

const fullView = `
position: [0, 0, 0]
direction: [0, 0, -1]
up: [0, 1, 0]
right: [1, 0, 0]
fieldOfView: 90
aspectRatio: 1
nearClip: 1
farClip: 100
`

func TestParseFullView(t *testing.T) {
	p, err := Parse([]byte(fullView))
	require.NoError(t, err)

	assert.Equal(t, frustum.Params{
		Position:    geometry.NewVector3(0, 0, 0),
		Direction:   geometry.NewVector3(0, 0, -1),
		Up:          geometry.NewVector3(0, 1, 0),
		Right:       geometry.NewVector3(1, 0, 0),
		FieldOfView: 90,
		AspectRatio: 1,
		NearClip:    1,
		FarClip:     100,
	}, p)

	s := frustum.Derive(p)
	assert.Equal(t, frustum.Inside, s.PointIn(geometry.NewVector3(0, 0, -50)))
}

func TestParseDerivesRight(t *testing.T) {
	p, err := Parse([]byte(`
direction: [0, 0, -2]
up: [0, 3, 0]
fieldOfView: 60
`))
	require.NoError(t, err)

	assert.True(t, p.Direction.ApproxEqual(geometry.NewVector3(0, 0, -1), 1e-12))
	assert.True(t, p.Up.ApproxEqual(geometry.NewVector3(0, 1, 0), 1e-12))
	assert.True(t, p.Right.ApproxEqual(geometry.NewVector3(1, 0, 0), 1e-12))

	// Defaults fill the unset values.
	assert.Equal(t, 1.0, p.AspectRatio)
	assert.Equal(t, 0.1, p.NearClip)
	assert.Equal(t, 500.0, p.FarClip)
}

func TestParseLookAt(t *testing.T) {
	p, err := Parse([]byte(`
position: [5, 0, 0]
lookAt: [5, 0, -10]
up: [0, 1, 0.5]
fieldOfView: 45
aspectRatio: 1.5
nearClip: 0.5
farClip: 50
`))
	require.NoError(t, err)

	assert.Equal(t, geometry.NewVector3(5, 0, 0), p.Position)
	assert.True(t, p.Direction.ApproxEqual(geometry.NewVector3(0, 0, -1), 1e-12))
	assert.True(t, p.Up.ApproxEqual(geometry.NewVector3(0, 1, 0), 1e-12))
	assert.True(t, p.Right.ApproxEqual(geometry.NewVector3(1, 0, 0), 1e-12))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{"missing up", "direction: [0, 0, -1]\nfieldOfView: 90\n", true},
		{"missing direction", "up: [0, 1, 0]\nfieldOfView: 90\n", true},
		{"direction and lookAt", "direction: [0, 0, -1]\nlookAt: [0, 0, -1]\nup: [0, 1, 0]\nfieldOfView: 90\n", true},
		{"lookAt with right", "lookAt: [0, 0, -1]\nup: [0, 1, 0]\nright: [1, 0, 0]\nfieldOfView: 90\n", true},
		{"zero field of view", "direction: [0, 0, -1]\nup: [0, 1, 0]\n", true},
		{"wide field of view", "direction: [0, 0, -1]\nup: [0, 1, 0]\nfieldOfView: 180\n", true},
		{"negative aspect", "direction: [0, 0, -1]\nup: [0, 1, 0]\nfieldOfView: 90\naspectRatio: -1\n", true},
		{"inverted clip", "direction: [0, 0, -1]\nup: [0, 1, 0]\nfieldOfView: 90\nnearClip: 10\nfarClip: 5\n", true},
		{"zero near clip", "direction: [0, 0, -1]\nup: [0, 1, 0]\nfieldOfView: 90\nnearClip: 0\n", true},
		{"not orthogonal", "direction: [0, 0, -1]\nup: [0, 1, 1]\nfieldOfView: 90\n", true},
		{"left-handed right", "direction: [0, 0, -1]\nup: [0, 1, 0]\nright: [-1, 0, 0]\nfieldOfView: 90\nnearClip: 1\nfarClip: 100\n", true},
		{"zero up", "direction: [0, 0, -1]\nup: [0, 0, 0]\nfieldOfView: 90\n", true},
		{"short vector", "direction: [0, -1]\nup: [0, 1, 0]\nfieldOfView: 90\n", false},
		{"not yaml", "direction: [0, 0", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			if tc.invalid {
				assert.ErrorIs(t, err, ErrInvalidView)
			} else {
				assert.NotErrorIs(t, err, ErrInvalidView)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullView), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.FarClip)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
