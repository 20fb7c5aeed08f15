package scene

import (
	"math/rand"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// NewRandomSpheresScene scatters a grid of small randomized spheres around
// three large ones. The layout is drawn from seed so renders are reproducible.
func NewRandomSpheresScene(aspectRatio float64, seed int64) *Scene {
	return newSphereField(aspectRatio, seed, false, false)
}

// NewMovingSpheresScene is the random field with each diffuse sphere rising
// during the shutter interval, producing motion blur
func NewMovingSpheresScene(aspectRatio float64, seed int64) *Scene {
	return newSphereField(aspectRatio, seed, true, false)
}

// NewCheckeredFloorScene is the moving field over a checkered ground sphere
func NewCheckeredFloorScene(aspectRatio float64, seed int64) *Scene {
	return newSphereField(aspectRatio, seed, true, true)
}

func newSphereField(aspectRatio float64, seed int64, moving, checkered bool) *Scene {
	rng := rand.New(rand.NewSource(seed))

	var groundMaterial core.Material
	if checkered {
		checker := material.NewCheckerTextureFromColors(
			core.NewVec3(0.2, 0.3, 0.1),
			core.NewVec3(0.9, 0.9, 0.9),
		)
		groundMaterial = material.NewTexturedLambertian(checker)
	} else {
		groundMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	}

	shapes := []core.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, groundMaterial),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := rng.Float64()
			center := core.NewVec3(
				float64(a)+0.9*rng.Float64(),
				0.2,
				float64(b)+0.9*rng.Float64(),
			)

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				// Diffuse
				albedo := randomColor(rng).MultiplyVec(randomColor(rng))
				sphereMaterial := material.NewLambertian(albedo)
				if moving {
					center2 := center.Add(core.NewVec3(0, 0.5*rng.Float64(), 0))
					sphere, _ := geometry.NewMovingSphere(center, center2, 0, 1, 0.2, sphereMaterial)
					shapes = append(shapes, sphere)
				} else {
					shapes = append(shapes, geometry.NewSphere(center, 0.2, sphereMaterial))
				}
			case chooseMaterial < 0.95:
				// Metal
				albedo := core.NewVec3(
					0.5+0.5*rng.Float64(),
					0.5+0.5*rng.Float64(),
					0.5+0.5*rng.Float64(),
				)
				fuzz := 0.5 * rng.Float64()
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// Glass
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	config := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}
	if moving {
		// Shutter open for the full frame
		config.Time1 = 1.0
	}

	return &Scene{
		Camera:     renderer.NewCamera(config),
		Background: core.NewSolidBackground(core.NewVec3(0.7, 0.8, 1.0)),
		Shapes:     shapes,
	}
}

// randomColor draws a color with each channel uniform in [0, 1)
func randomColor(rng *rand.Rand) core.Vec3 {
	return core.NewVec3(rng.Float64(), rng.Float64(), rng.Float64())
}
