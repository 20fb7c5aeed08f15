package core

// RayTMin is the minimum ray parameter used when querying the scene.
// Starting slightly above zero avoids self-intersection at the ray origin
// ("shadow acne").
const RayTMin = 0.001

// Ray represents a ray with an origin, a direction and a sample time.
// The time identifies the instant within the camera's shutter interval
// this ray observes, which is what moving shapes interpolate against.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay creates a new ray at time zero
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayWithTime creates a new ray with a motion-blur sample time
func NewRayWithTime(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
