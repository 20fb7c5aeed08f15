package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// cornellWalls builds the five walls and ceiling light of the classic
// 555-unit box
func cornellWalls() []core.Shape {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	return []core.Shape{
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		geometry.NewXZRect(213, 343, 227, 332, 554, light),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),   // floor
		geometry.NewXZRect(0, 555, 0, 555, 555, white), // ceiling
		geometry.NewXYRect(0, 555, 0, 555, 555, white), // back wall
	}
}

// cornellBlocks builds the two rotated boxes, tall in back and short in front
func cornellBlocks() (tall, short core.Shape) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	return tall, short
}

// cornellCamera frames the box through the open front face
func cornellCamera(aspectRatio float64) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   aspectRatio,
		FocusDistance: 10.0,
		Time1:         1.0,
	})
}

// NewCornellBoxScene builds the classic box with two rotated blocks
func NewCornellBoxScene(aspectRatio float64) *Scene {
	tall, short := cornellBlocks()
	shapes := append(cornellWalls(), tall, short)

	return &Scene{
		Camera:     cornellCamera(aspectRatio),
		Background: core.NewSolidBackground(core.NewVec3(0, 0, 0)),
		Shapes:     shapes,
	}
}

// NewCornellSmokeScene replaces the blocks with participating media: dark
// smoke where the tall block was and white fog where the short one was
func NewCornellSmokeScene(aspectRatio float64) *Scene {
	tall, short := cornellBlocks()
	shapes := append(cornellWalls(),
		geometry.NewConstantMedium(tall, 0.01, material.NewIsotropic(core.NewVec3(0, 0, 0))),
		geometry.NewConstantMedium(short, 0.01, material.NewIsotropic(core.NewVec3(1, 1, 1))),
	)

	return &Scene{
		Camera:     cornellCamera(aspectRatio),
		Background: core.NewSolidBackground(core.NewVec3(0, 0, 0)),
		Shapes:     shapes,
	}
}
