package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// Box is an axis-aligned box assembled from six rectangles. Orientation
// comes from wrapping it in RotateY or Translate rather than from the box
// itself.
type Box struct {
	Min, Max core.Vec3
	sides    *List
}

// NewBox creates a box spanning the two opposite corners min and max, with
// the same material on all six faces.
func NewBox(min, max core.Vec3, material core.Material) *Box {
	sides := NewList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material), // front  (Z+)
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material), // back   (Z-)
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material), // top    (Y+)
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material), // bottom (Y-)
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material), // right  (X+)
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material), // left   (X-)
	)
	return &Box{Min: min, Max: max, sides: sides}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
