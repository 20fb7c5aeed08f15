package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// MovingSphere is a sphere whose center travels linearly from Center0 at
// Time0 to Center1 at Time1. Each ray carries the time it was fired, and
// intersection happens against the center at that instant, which is what
// produces motion blur when rays sample the shutter interval.
type MovingSphere struct {
	Center0  core.Vec3
	Center1  core.Vec3
	Time0    float64
	Time1    float64
	Radius   float64
	Material core.Material
}

// NewMovingSphere creates a sphere moving between two centers over the given
// time interval. Times must be non-negative and ordered.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) (*MovingSphere, error) {
	if time0 < 0 || time1 < 0 {
		return nil, fmt.Errorf("time cannot be negative: %g, %g", time0, time1)
	}
	if time1 < time0 {
		return nil, fmt.Errorf("end time cannot be less than start time: %g, %g", time0, time1)
	}
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}, nil
}

// Center returns the interpolated center position at the given time
func (s *MovingSphere) Center(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	offset := s.Center1.Subtract(s.Center0).Multiply((time - s.Time0) / (s.Time1 - s.Time0))
	return s.Center0.Add(offset)
}

// Hit tests if a ray intersects the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	center := s.Center(ray.Time)

	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	outwardNormal := hitRecord.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hitRecord.UV = sphereUV(outwardNormal)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// BoundingBox returns the union of the boxes at the interval's endpoints,
// which encloses the sphere everywhere on its linear path.
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	r := math.Abs(s.Radius)
	extent := core.NewVec3(r, r, r)
	box0 := core.NewAABB(s.Center(time0).Subtract(extent), s.Center(time0).Add(extent))
	box1 := core.NewAABB(s.Center(time1).Subtract(extent), s.Center(time1).Add(extent))
	return box0.Union(box1), true
}
