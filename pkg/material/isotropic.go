package material

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// Isotropic scatters equally in all directions. It is the phase function of
// constant-density media (fog, smoke).
type Isotropic struct {
	Albedo ColorSource
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a textured albedo
func NewTexturedIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements the Material interface; the scattered direction is
// uniform over the unit sphere regardless of the incoming direction
func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	scattered := core.NewRayWithTime(hit.Point, core.SamplePointInUnitSphere(sampler.Get3D()), rayIn.Time)

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
