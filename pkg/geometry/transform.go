package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// Translate shifts an inner shape by a fixed offset. Instead of moving the
// shape, the incoming ray is moved the opposite way, the inner shape is
// queried in its own space, and the hit point is shifted back.
type Translate struct {
	Inner  core.Shape
	Offset core.Vec3
}

// NewTranslate wraps inner so it appears displaced by offset
func NewTranslate(inner core.Shape, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit queries the inner shape with the offset ray and shifts the hit back.
// The normal and front/back flag are unchanged by a pure translation.
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	moved := core.NewRayWithTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, isHit := t.Inner.Hit(moved, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the inner shape's box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// RotateY rotates an inner shape about the world Y axis. The incoming ray is
// rotated into the shape's local space, and the resulting hit point and
// normal are rotated back out.
type RotateY struct {
	Inner    core.Shape
	sinTheta float64
	cosTheta float64
}

// NewRotateY wraps inner rotated by the given angle in degrees,
// counterclockwise when viewed from +Y.
func NewRotateY(inner core.Shape, degrees float64) *RotateY {
	radians := degrees * math.Pi / 180.0
	return &RotateY{
		Inner:    inner,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// toLocal rotates a world-space vector by -theta into the shape's space
func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates a local-space vector by +theta back into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into local space, delegates, then rotates the hit
// point and normal back. Rotation preserves the angle between ray and
// normal, so the front/back flag carries over unchanged.
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	rotated := core.NewRayWithTime(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)

	hit, isHit := r.Inner.Hit(rotated, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox rotates the eight corners of the inner box and encloses them
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := r.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := make([]core.Vec3, 0, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z
				corners = append(corners, r.toWorld(core.NewVec3(x, y, z)))
			}
		}
	}

	return core.NewAABBFromPoints(corners...), true
}
