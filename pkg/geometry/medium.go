package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// mediumExitBias nudges the second boundary probe just past the entry
// crossing so it finds the exit of the boundary instead of the entry again.
const mediumExitBias = 1e-4

// ConstantMedium fills a boundary shape with a participating medium of
// uniform density. A ray crossing the boundary scatters somewhere inside it
// with an exponentially distributed free path, or passes through if the
// sampled path outruns the boundary. The boundary surface itself is
// invisible.
//
// The two-probe entry/exit search assumes a convex boundary. Concave
// boundaries (or boxes seen from inside) give undefined results.
type ConstantMedium struct {
	Boundary      core.Shape
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium fills boundary with a medium of the given density whose
// scattering comes from phaseFunction, usually an isotropic material.
func NewConstantMedium(boundary core.Shape, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phaseFunction,
		negInvDensity: -1.0 / density,
	}
}

// Hit finds where the ray enters and leaves the boundary, then samples a
// scattering distance along the inside segment.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	// Probe the full line for the entry crossing, then probe again just past
	// it for the exit crossing.
	entry, isHit := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}
	exit, isHit := m.Boundary.Hit(ray, entry.T+mediumExitBias, math.Inf(1), sampler)
	if !isHit {
		return nil, false
	}

	entryT := math.Max(entry.T, tMin)
	exitT := math.Min(exit.T, tMax)
	if entryT >= exitT {
		return nil, false
	}
	if entryT < 0 {
		entryT = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (exitT - entryT) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := entryT + hitDistance/rayLength
	return &core.HitRecord{
		T:     t,
		Point: ray.At(t),
		// Normal and front face are arbitrary for a scatter point inside a
		// volume; the isotropic phase function ignores both.
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
