package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// List aggregates shapes and answers intersection queries with the closest
// hit among them. It is also a Shape, so lists nest inside wrappers and
// hierarchies.
type List struct {
	Shapes []core.Shape
}

// NewList creates a list over the given shapes
func NewList(shapes ...core.Shape) *List {
	return &List{Shapes: shapes}
}

// Add appends shapes to the list
func (l *List) Add(shapes ...core.Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Hit scans every shape, tightening the search interval to the closest hit
// found so far
func (l *List) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar, sampler); isHit {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all members' boxes. It reports false for
// an empty list or when any member has no box.
func (l *List) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Shapes) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, shape := range l.Shapes {
		memberBox, ok := shape.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = memberBox
		} else {
			box = box.Union(memberBox)
		}
	}

	return box, true
}
