package scene

import (
	"fmt"
	"os"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/loaders"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// NewEarthScene wraps an equirectangular earth image around a globe
func NewEarthScene(aspectRatio float64) *Scene {
	surface := material.NewTexturedLambertian(loadEarthTexture())
	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, surface)

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
		Shapes:     []core.Shape{globe},
	}
}

// loadEarthTexture loads the earth bitmap, trying paths that work from both
// the project root and a subdirectory. A missing or unreadable file falls
// back to a gradient placeholder so the scene still renders.
func loadEarthTexture() material.ColorSource {
	possiblePaths := []string{
		"scenes/earthmap.jpg",
		"../scenes/earthmap.jpg",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, err := loaders.LoadImage(path)
		if err != nil {
			fmt.Printf("Warning: failed to load %s: %v\n", path, err)
			break
		}
		return material.NewImageTexture(img.Width, img.Height, img.Pixels)
	}

	fmt.Println("Warning: earthmap.jpg not found, using gradient placeholder")
	return material.NewGradientTexture(256, 256,
		core.NewVec3(0.1, 0.2, 0.5), // ocean blue
		core.NewVec3(0.2, 0.5, 0.3), // land green
	)
}
