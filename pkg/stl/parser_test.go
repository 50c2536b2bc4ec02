package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gocull/pkg/geometry"
)

const asciiCube = `solid corner
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 0 0 2
      vertex 1 0 0
    endloop
  endfacet
endsolid corner
`

func binarySTL(header string, tris []geometry.Triangle) []byte {
	var buf bytes.Buffer
	h := make([]byte, binaryHeaderSize)
	copy(h, header)
	buf.Write(h)
	binary.Write(&buf, binary.LittleEndian, uint32(len(tris)))
	for _, tri := range tris {
		for _, v := range []geometry.Vector3{tri.Normal, tri.V1, tri.V2, tri.V3} {
			for _, c := range []float64{v.X, v.Y, v.Z} {
				binary.Write(&buf, binary.LittleEndian, math.Float32bits(float32(c)))
			}
		}
		binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func sampleTriangles() []geometry.Triangle {
	return []geometry.Triangle{
		geometry.NewTriangle(
			geometry.NewVector3(0, 0, 1),
			geometry.NewVector3(0, 0, 0),
			geometry.NewVector3(3, 0, 0),
			geometry.NewVector3(0, 4, 0),
		),
		geometry.NewTriangle(
			geometry.NewVector3(1, 0, 0),
			geometry.NewVector3(-1.5, 2, 8),
			geometry.NewVector3(-1.5, 3, 8),
			geometry.NewVector3(-1.5, 2, 9),
		),
	}
}

func TestDecodeASCII(t *testing.T) {
	model, err := Decode(strings.NewReader(asciiCube))
	require.NoError(t, err)

	assert.Equal(t, "corner", model.Name)
	require.Equal(t, 2, model.TriangleCount())
	assert.Equal(t, geometry.NewVector3(0, -1, 0), model.Triangles[1].Normal)
	assert.Equal(t, geometry.NewVector3(0, 0, 2), model.Triangles[1].V2)

	bbox := model.BoundingBox()
	assert.Equal(t, geometry.NewVector3(0, 0, 0), bbox.Min)
	assert.Equal(t, geometry.NewVector3(1, 1, 2), bbox.Max)
}

func TestDecodeBinary(t *testing.T) {
	data := binarySTL("exported part", sampleTriangles())

	model, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, "exported part", model.Name)
	assert.Equal(t, sampleTriangles(), model.Triangles)
}

func TestDecodeBinaryWithSolidHeader(t *testing.T) {
	data := binarySTL("solid header written by a careless exporter", sampleTriangles())

	model, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, model.Triangles, 2)
}

func TestDecodeEmptyASCII(t *testing.T) {
	model, err := Decode(strings.NewReader("solid nothing\nendsolid nothing\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, model.TriangleCount())
	assert.True(t, model.BoundingBox().IsEmpty())
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad vertex", "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 zero 0\nendloop\nendfacet\nendsolid x\n"},
		{"missing vertex", "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\nendsolid x\n"},
		{"bad normal", "solid x\nfacet normal 0 0\nendsolid x\n"},
		{"truncated binary", string(binarySTL("part", sampleTriangles())[:100])},
		{"short binary", "abc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corner.stl")
	require.NoError(t, os.WriteFile(path, []byte(asciiCube), 0o644))

	model, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, 2, model.TriangleCount())

	_, err = Parse(filepath.Join(t.TempDir(), "missing.stl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
