// Package frustum derives the six bounding planes of a perspective camera's
// visible volume and classifies points, spheres and axis-aligned boxes
// against them.
//
// A ViewFrustum holds mutable camera parameters and a cached State that is
// refreshed only by Calculate. Queries never recompute, so callers must call
// Calculate after changing parameters. A State is an immutable snapshot and
// may be shared freely between goroutines; a ViewFrustum may not.
//
// Degenerate parameters (non-positive field of view or aspect ratio, or an
// inverted clip range) are not rejected and yield NaN or infinite planes.
package frustum
