package scene

import (
	"math/rand"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// NewRectangleLightScene lights two marble spheres with a rectangle and a
// sphere lamp against a black background
func NewRectangleLightScene(aspectRatio float64, seed int64) *Scene {
	perlin := material.NewPerlin(rand.New(rand.NewSource(seed)))
	marble := material.NewTexturedLambertian(material.NewMarbleTexture(perlin, 4.0))

	// Brighter than (1,1,1) so the lamp can illuminate the scene
	lamp := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	shapes := []core.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, lamp),
		geometry.NewXYRect(3, 5, 1, 3, -2, lamp),
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(26, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   aspectRatio,
		FocusDistance: 10.0,
		Time1:         1.0,
	})

	return &Scene{
		Camera:     camera,
		Background: core.NewSolidBackground(core.NewVec3(0, 0, 0)),
		Shapes:     shapes,
	}
}
