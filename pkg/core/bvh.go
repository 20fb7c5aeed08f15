package core

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// BVHNode is a node in the Bounding Volume Hierarchy. Children are either
// further nodes or shapes themselves; single-shape inputs duplicate the shape
// into both children so traversal never has to handle a missing child.
type BVHNode struct {
	Left  Shape
	Right Shape
	Box   AABB
}

// BVH is a Bounding Volume Hierarchy for fast ray-shape intersection.
// It is built once per render and is read-only afterwards, so concurrent
// workers can share it without locking.
type BVH struct {
	Root *BVHNode
}

// NewBVH builds a hierarchy over the shape collection covering ray times in
// [time0, time1]. The split axis at each level is drawn uniformly from
// random. Construction fails if the collection is empty or any shape cannot
// report a bounding box for the interval.
func NewBVH(shapes []Shape, time0, time1 float64, random *rand.Rand) (*BVH, error) {
	if len(shapes) == 0 {
		return nil, errors.New("cannot build BVH over an empty shape collection")
	}

	// Resolve every bounding box up front so a missing one fails the whole
	// build before any partitioning happens.
	entries := make([]bvhEntry, len(shapes))
	for i, shape := range shapes {
		box, ok := shape.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("no bounding box in BVH node construction")
		}
		entries[i] = bvhEntry{shape: shape, box: box}
	}

	return &BVH{Root: buildBVHNode(entries, random)}, nil
}

// bvhEntry pairs a shape with its precomputed bounding box for the build
type bvhEntry struct {
	shape Shape
	box   AABB
}

// buildBVHNode recursively partitions entries along a random axis
func buildBVHNode(entries []bvhEntry, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	node := &BVHNode{}

	switch len(entries) {
	case 1:
		node.Left = entries[0].shape
		node.Right = entries[0].shape
		node.Box = entries[0].box
	case 2:
		first, second := entries[0], entries[1]
		if second.box.Min.Component(axis) < first.box.Min.Component(axis) {
			first, second = second, first
		}
		node.Left = first.shape
		node.Right = second.shape
		node.Box = first.box.Union(second.box)
	default:
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].box.Min.Component(axis) < entries[j].box.Min.Component(axis)
		})
		mid := len(entries) / 2
		left := buildBVHNode(entries[:mid], random)
		right := buildBVHNode(entries[mid:], random)
		node.Left = left
		node.Right = right
		node.Box = left.Box.Union(right.Box)
	}

	return node
}

// Hit tests the ray against the hierarchy and returns the closest hit
func (b *BVH) Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool) {
	return b.Root.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box enclosing the whole hierarchy
func (b *BVH) BoundingBox(time0, time1 float64) (AABB, bool) {
	return b.Root.Box, true
}

// Hit tests the node's own box first, then both children, tightening the
// right child's search interval to the left child's hit so the closer of
// the two comes back.
func (n *BVHNode) Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)

	rightTMax := tMax
	if hitLeft {
		rightTMax = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, tMin, rightTMax, sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the node's precomputed box
func (n *BVHNode) BoundingBox(time0, time1 float64) (AABB, bool) {
	return n.Box, true
}
