package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that any Extend call will reset
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// NewBoundingBoxFromCorner creates a box spanning from corner by size.
// Negative size components are allowed and flip the span on that axis.
func NewBoundingBoxFromCorner(corner, size Vector3) BoundingBox {
	other := corner.Add(size)
	return BoundingBox{
		Min: corner.Min(other),
		Max: corner.Max(other),
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// IsEmpty reports whether the box has never been extended
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Contains reports whether point lies inside or on the box
func (b BoundingBox) Contains(point Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// Extremes returns the corners of the box furthest along normal (positive)
// and furthest against it (negative), chosen per axis from the sign of the
// normal component.
func (b BoundingBox) Extremes(normal Vector3) (positive, negative Vector3) {
	positive, negative = b.Min, b.Max
	if normal.X >= 0 {
		positive.X, negative.X = b.Max.X, b.Min.X
	}
	if normal.Y >= 0 {
		positive.Y, negative.Y = b.Max.Y, b.Min.Y
	}
	if normal.Z >= 0 {
		positive.Z, negative.Z = b.Max.Z, b.Min.Z
	}
	return positive, negative
}

// Octants splits the box at its center into eight equal child boxes
func (b BoundingBox) Octants() [8]BoundingBox {
	c := b.Center()
	var out [8]BoundingBox
	for i := range out {
		lo, hi := b.Min, c
		if i&1 != 0 {
			lo.X, hi.X = c.X, b.Max.X
		}
		if i&2 != 0 {
			lo.Y, hi.Y = c.Y, b.Max.Y
		}
		if i&4 != 0 {
			lo.Z, hi.Z = c.Z, b.Max.Z
		}
		out[i] = BoundingBox{Min: lo, Max: hi}
	}
	return out
}
