package scene

import (
	"math/rand"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// NewPerlinSpheresScene shades the noise spheres with raw blocky lattice noise
func NewPerlinSpheresScene(aspectRatio float64, seed int64) *Scene {
	perlin := material.NewPerlin(rand.New(rand.NewSource(seed)))
	texture := material.NewNoiseTexture(perlin, 1.0, material.NoiseBlocky)
	return newNoiseSpheres(aspectRatio, texture)
}

// NewSmoothedPerlinScene uses Hermite-smoothed interpolation at scale 4
func NewSmoothedPerlinScene(aspectRatio float64, seed int64) *Scene {
	perlin := material.NewPerlin(rand.New(rand.NewSource(seed)))
	texture := material.NewNoiseTexture(perlin, 4.0, material.NoiseSmooth)
	return newNoiseSpheres(aspectRatio, texture)
}

// NewMarbleScene runs turbulence through a sine wave to produce marble veins
func NewMarbleScene(aspectRatio float64, seed int64) *Scene {
	perlin := material.NewPerlin(rand.New(rand.NewSource(seed)))
	texture := material.NewMarbleTexture(perlin, 4.0)
	return newNoiseSpheres(aspectRatio, texture)
}

// newNoiseSpheres places a textured sphere on a ground sphere sharing the
// same texture, the standard layout for inspecting procedural noise
func newNoiseSpheres(aspectRatio float64, texture material.ColorSource) *Scene {
	textured := material.NewTexturedLambertian(texture)

	shapes := []core.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, textured),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, textured),
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          20,
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
