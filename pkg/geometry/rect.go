package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// XYRect is an axis-aligned rectangle in the plane z = K, spanning
// [X0,X1] x [Y0,Y1]. Its outward normal points along +Z.
type XYRect struct {
	X0, X1   float64
	Y0, Y1   float64
	K        float64
	Material core.Material
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit solves for the plane crossing and checks it lies within the extents.
// Rays parallel to the plane produce an infinite t and fail the range check.
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((x-r.X0)/(r.X1-r.X0), (y-r.Y0)/(r.Y1-r.Y0)),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	return hit, true
}

// BoundingBox pads the flat axis so the box has nonzero thickness
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K),
		core.NewVec3(r.X1, r.Y1, r.K),
	)
	return box.Pad(), true
}

// XZRect is an axis-aligned rectangle in the plane y = K, spanning
// [X0,X1] x [Z0,Z1]. Its outward normal points along +Y.
type XZRect struct {
	X0, X1   float64
	Z0, Z1   float64
	K        float64
	Material core.Material
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit solves for the plane crossing and checks it lies within the extents
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((x-r.X0)/(r.X1-r.X0), (z-r.Z0)/(r.Z1-r.Z0)),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return hit, true
}

// BoundingBox pads the flat axis so the box has nonzero thickness
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.NewAABB(
		core.NewVec3(r.X0, r.K, r.Z0),
		core.NewVec3(r.X1, r.K, r.Z1),
	)
	return box.Pad(), true
}

// YZRect is an axis-aligned rectangle in the plane x = K, spanning
// [Y0,Y1] x [Z0,Z1]. Its outward normal points along +X.
type YZRect struct {
	Y0, Y1   float64
	Z0, Z1   float64
	K        float64
	Material core.Material
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit solves for the plane crossing and checks it lies within the extents
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return nil, false
	}

	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((y-r.Y0)/(r.Y1-r.Y0), (z-r.Z0)/(r.Z1-r.Z0)),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return hit, true
}

// BoundingBox pads the flat axis so the box has nonzero thickness
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.NewAABB(
		core.NewVec3(r.K, r.Y0, r.Z0),
		core.NewVec3(r.K, r.Y1, r.Z1),
	)
	return box.Pad(), true
}
