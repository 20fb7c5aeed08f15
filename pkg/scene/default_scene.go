package scene

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// threeSphereWorld builds the diffuse/glass/metal trio over a matte ground.
// A nonzero innerRadius adds a negative-radius shell inside the glass sphere,
// turning it into a hollow bubble.
func threeSphereWorld(innerRadius float64) []core.Shape {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	shapes := []core.Shape{
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
	}
	if innerRadius != 0 {
		shapes = append(shapes, geometry.NewSphere(core.NewVec3(-1, 0, -1), innerRadius, glass))
	}
	shapes = append(shapes, geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metal))

	return shapes
}

// originCamera frames the trio head-on from the world origin
func originCamera(aspectRatio float64) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: aspectRatio,
	})
}

// NewShinyMetalScene shows the sphere trio with a solid glass ball
func NewShinyMetalScene(aspectRatio float64) *Scene {
	return &Scene{
		Camera:     originCamera(aspectRatio),
		Background: core.NewSolidBackground(core.NewVec3(0.7, 0.8, 1.0)),
		Shapes:     threeSphereWorld(0),
	}
}

// NewHollowGlassScene shows the sphere trio with the glass ball hollowed out
func NewHollowGlassScene(aspectRatio float64) *Scene {
	return &Scene{
		Camera:     originCamera(aspectRatio),
		Background: core.NewSolidBackground(core.NewVec3(0.7, 0.8, 1.0)),
		Shapes:     threeSphereWorld(-0.4),
	}
}

// NewWideAngleScene places two touching spheres so that a 90 degree field of
// view spans exactly both of them
func NewWideAngleScene(aspectRatio float64) *Scene {
	r := math.Cos(math.Pi / 4)

	blue := material.NewLambertian(core.NewVec3(0, 0, 1))
	red := material.NewLambertian(core.NewVec3(1, 0, 0))

	shapes := []core.Shape{
		geometry.NewSphere(core.NewVec3(-r, 0, -1), r, blue),
		geometry.NewSphere(core.NewVec3(r, 0, -1), r, red),
	}

	return &Scene{
		Camera:     originCamera(aspectRatio),
		Background: core.NewSolidBackground(core.NewVec3(0.7, 0.8, 1.0)),
		Shapes:     shapes,
	}
}

// NewDistantViewScene looks at the hollow-glass trio from a far corner
// through a narrow lens
func NewDistantViewScene(aspectRatio float64) *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
	})

	return &Scene{
		Camera:     camera,
		Background: core.NewSolidBackground(core.NewVec3(0.7, 0.8, 1.0)),
		Shapes:     threeSphereWorld(-0.45),
	}
}

// NewDepthOfFieldScene opens the aperture wide and focuses on the center
// sphere, defocusing everything nearer or farther
func NewDepthOfFieldScene(aspectRatio float64) *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Aperture:    2.0,
		// FocusDistance defaults to the look-at distance
	})

	return &Scene{
		Camera:     camera,
		Background: core.NewSolidBackground(core.NewVec3(0.7, 0.8, 1.0)),
		Shapes:     threeSphereWorld(-0.45),
	}
}
