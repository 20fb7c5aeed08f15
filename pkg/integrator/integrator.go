package integrator

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// RayColor computes the color seen along a ray by recursive path tracing.
// Each bounce adds the hit material's emission and attenuates whatever the
// scattered ray sees. The world is any Shape, so callers can trace against
// a BVH or a plain shape list interchangeably.
func RayColor(ray core.Ray, world core.Shape, background core.Background, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	// tMin avoids shadow acne from self-intersection at the last hit point
	hit, isHit := world.Hit(ray, core.RayTMin, math.Inf(1), sampler)
	if !isHit {
		return background.Sample(ray)
	}

	colorEmitted := emittedLight(hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(
		RayColor(scatter.Scattered, world, background, sampler, depth-1))
	return colorEmitted.Add(colorScattered)
}

// emittedLight returns the emitted light from a material if it's emissive
func emittedLight(hit *core.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		return emitter.Emit(hit.UV, hit.Point)
	}
	return core.NewVec3(0, 0, 0)
}
