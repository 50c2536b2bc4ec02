package cull

import (
	"context"
	"runtime"
	"sync"

	"github.com/philipparndt/gocull/pkg/frustum"
	"github.com/philipparndt/gocull/pkg/geometry"
)

// chunkSize is the number of triangles a worker classifies between
// cancellation checks.
const chunkSize = 4096

// Triangles classifies the bounding box of every triangle against state.
// The work is split over workers goroutines (GOMAXPROCS when workers <= 0)
// which all read the same state snapshot. The result is indexed like tris.
func Triangles(ctx context.Context, state *frustum.State, tris []geometry.Triangle, workers int) ([]frustum.Location, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]frustum.Location, len(tris))
	chunks := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for start := range chunks {
				end := min(start+chunkSize, len(tris))
				for i := start; i < end; i++ {
					out[i] = state.BoxIn(tris[i].Bounds())
				}
			}
		}()
	}

	var err error
feed:
	for start := 0; start < len(tris); start += chunkSize {
		select {
		case chunks <- start:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(chunks)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return out, nil
}

// Area is triangle surface area split by classification result
type Area struct {
	Inside    float64
	Intersect float64
	Outside   float64
}

// Total returns the surface area of all triangles
func (a Area) Total() float64 {
	return a.Inside + a.Intersect + a.Outside
}

// Visible returns the surface area a renderer would draw
func (a Area) Visible() float64 {
	return a.Inside + a.Intersect
}

// SurfaceArea splits the surface area of tris by their locations.
// locs must be indexed like tris, as returned by Triangles; slices of
// different lengths yield the zero Area.
func SurfaceArea(tris []geometry.Triangle, locs []frustum.Location) Area {
	var a Area
	if len(tris) != len(locs) {
		return a
	}
	for i, tri := range tris {
		switch locs[i] {
		case frustum.Inside:
			a.Inside += tri.Area()
		case frustum.Intersect:
			a.Intersect += tri.Area()
		case frustum.Outside:
			a.Outside += tri.Area()
		}
	}
	return a
}
