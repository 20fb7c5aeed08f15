package scene

import (
	"math/rand"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// NewShowcaseScene crams every feature into one frame: a grid of random-height
// ground boxes, a motion-blurred sphere, glass and fuzzy metal, a subsurface
// sphere, a thin global mist, an image-mapped globe, marble, and a rotated
// cloud of a thousand small spheres.
func NewShowcaseScene(aspectRatio float64, seed int64) *Scene {
	rng := rand.New(rand.NewSource(seed))

	// Ground: 20x20 grid of boxes with random heights
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))

	const boxesPerSide = 20
	const boxWidth = 100.0

	var shapes []core.Shape
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*boxWidth
			z0 := -1000.0 + float64(j)*boxWidth
			x1 := x0 + boxWidth
			y1 := 1.0 + 100.0*rng.Float64()
			z1 := z0 + boxWidth

			shapes = append(shapes, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x1, y1, z1),
				ground,
			))
		}
	}

	// Ceiling light
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	shapes = append(shapes, geometry.NewXZRect(123, 423, 147, 412, 554, light))

	// Motion-blurred diffuse sphere
	center1 := core.NewVec3(400, 400, 400)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	movingSphere, _ := geometry.NewMovingSphere(center1, center2, 0, 1, 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1)))
	shapes = append(shapes, movingSphere)

	// Glass and fuzzy metal
	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// A blue medium inside a glass boundary reads as subsurface scattering
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	shapes = append(shapes,
		boundary,
		geometry.NewConstantMedium(boundary, 0.2, material.NewIsotropic(core.NewVec3(0.2, 0.4, 0.9))),
	)

	// Thin mist covering the whole scene
	mistBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	shapes = append(shapes,
		geometry.NewConstantMedium(mistBoundary, 0.0001, material.NewIsotropic(core.NewVec3(1, 1, 1))),
	)

	// Image-mapped globe and a marble sphere
	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(loadEarthTexture())),
	)
	perlin := material.NewPerlin(rng)
	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
			material.NewTexturedLambertian(material.NewMarbleTexture(perlin, 0.1))),
	)

	// A rotated cube-shaped cloud of a thousand small spheres, accelerated
	// with its own BVH so the transform wraps a single shape
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	spheres := make([]core.Shape, 0, 1000)
	for i := 0; i < 1000; i++ {
		center := core.NewVec3(165*rng.Float64(), 165*rng.Float64(), 165*rng.Float64())
		spheres = append(spheres, geometry.NewSphere(center, 10, white))
	}
	cluster, _ := core.NewBVH(spheres, 0, 1, rng)
	shapes = append(shapes,
		geometry.NewTranslate(geometry.NewRotateY(cluster, 15), core.NewVec3(-100, 270, 395)),
	)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          40,
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
