package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Shape is a geometric object that answers ray intersection queries and
// reports its spatial extent over a time interval.
type Shape interface {
	// Hit returns the closest intersection with t in (tMin, tMax), if any.
	// The sampler feeds shapes with probabilistic interactions (volumetric
	// media); passing it explicitly keeps intersection queries free of
	// shared mutable state and makes seeded renders reproducible.
	Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the shape for all times in
	// [time0, time1]. The second result is false if no such box exists.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Material interface for objects that can scatter rays
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light. Discovered by type
// assertion in the integrator; non-emissive materials don't implement it.
type Emitter interface {
	Emit(uv Vec2, point Vec3) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The continuation ray
	Attenuation Vec3 // Color attenuation applied to light carried back
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always opposing the incoming ray
	T         float64  // Parameter t along the ray
	UV        Vec2     // Texture coordinates at the intersection
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
