package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// NewCheckeredSpheresScene stacks two giant checkered spheres touching at the
// origin, which makes the solid-texture parameterization easy to inspect
func NewCheckeredSpheresScene(aspectRatio float64) *Scene {
	checker := material.NewCheckerTextureFromColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	)
	checkered := material.NewTexturedLambertian(checker)

	shapes := []core.Shape{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checkered),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checkered),
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   aspectRatio,
		FocusDistance: 10.0,
		Time1:         1.0,
	})

	return &Scene{
		Camera:     camera,
		Background: core.NewSolidBackground(core.NewVec3(0.7, 0.8, 1.0)),
		Shapes:     shapes,
	}
}
