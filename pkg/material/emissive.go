package material

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// DiffuseLight is a light-emitting material. It never scatters; paths end at
// its surface with the emitted color.
type DiffuseLight struct {
	Emission ColorSource
}

// NewDiffuseLight creates an emissive material with a solid color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emissive material with a textured
// emission source
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements the Material interface; lights absorb all incoming rays
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the emitted light at the hit's texture coordinates
func (d *DiffuseLight) Emit(uv core.Vec2, point core.Vec3) core.Vec3 {
	return d.Emission.Evaluate(uv, point)
}
