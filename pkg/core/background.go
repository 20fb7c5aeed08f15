package core

// Background supplies the radiance carried by rays that escape the scene
type Background interface {
	Sample(ray Ray) Vec3
}

// GradientBackground blends between two colors by the vertical component
// of the ray direction, giving the classic sky gradient.
type GradientBackground struct {
	Bottom Vec3
	Top    Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(bottom, top Vec3) GradientBackground {
	return GradientBackground{Bottom: bottom, Top: top}
}

// Sample returns the gradient color for the ray's direction
func (g GradientBackground) Sample(ray Ray) Vec3 {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return g.Bottom.Lerp(g.Top, t)
}

// SolidBackground returns a constant color for every escaping ray.
// Light-driven scenes use black so only emitters contribute.
type SolidBackground struct {
	Color Vec3
}

// NewSolidBackground creates a constant-color background
func NewSolidBackground(color Vec3) SolidBackground {
	return SolidBackground{Color: color}
}

// Sample returns the constant background color
func (s SolidBackground) Sample(ray Ray) Vec3 {
	return s.Color
}
