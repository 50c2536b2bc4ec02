// Package scene loads the models the cull command classifies and works out
// which files to watch for them.
package scene

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gocull/pkg/openscad"
	"github.com/philipparndt/gocull/pkg/stl"
)

// ErrUnsupported is returned for files that are neither STL nor OpenSCAD
var ErrUnsupported = errors.New("unsupported file type")

// Scene is a loaded model and where it came from
type Scene struct {
	Model      *stl.Model
	Source     string
	IsOpenSCAD bool
}

func isOpenSCAD(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".scad")
}

// Load reads an STL file, or renders an OpenSCAD file to a temporary STL and
// reads that.
func Load(ctx context.Context, path string) (*Scene, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		return &Scene{Model: model, Source: path}, nil

	case ".scad":
		model, err := renderSCAD(ctx, path)
		if err != nil {
			return nil, err
		}
		return &Scene{Model: model, Source: path, IsOpenSCAD: true}, nil

	default:
		return nil, fmt.Errorf("%w: %s (expected .stl or .scad)", ErrUnsupported, ext)
	}
}

func renderSCAD(ctx context.Context, path string) (*stl.Model, error) {
	tmp, err := os.CreateTemp("", "gocull_*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	renderer := openscad.NewRenderer(filepath.Dir(path))
	if err := renderer.RenderToSTL(ctx, path, tmp.Name()); err != nil {
		return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
	}

	model, err := stl.Parse(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}
	return model, nil
}

// WatchList returns the files whose changes should trigger a reload of the
// scene at path: the file itself, every OpenSCAD dependency, and extra.
func WatchList(path string, extra ...string) ([]string, error) {
	var files []string
	if isOpenSCAD(path) {
		deps, err := openscad.NewRenderer(filepath.Dir(path)).ResolveDependencies(filepath.Base(path))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
		}
		files = deps
	} else {
		files = []string{path}
	}

	for _, f := range extra {
		if f != "" {
			files = append(files, f)
		}
	}
	return files, nil
}
