package renderer

import (
	"bytes"
	"io"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
)

// testScene is a minimal Scene implementation for renderer tests
type testScene struct {
	camera     *Camera
	background core.Background
	shapes     []core.Shape
}

func (s *testScene) GetCamera() *Camera             { return s.camera }
func (s *testScene) GetBackground() core.Background { return s.background }
func (s *testScene) GetShapes() []core.Shape        { return s.shapes }

func silentLogger() core.Logger {
	return log.New(io.Discard, "", 0)
}

// skyScene is a diffuse sphere resting on a large ground sphere under a
// gradient sky
func skyScene() *testScene {
	camera := NewCamera(CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          90.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.0,
		FocusDistance: 1.0,
	})

	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	return &testScene{
		camera:     camera,
		background: core.NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
		shapes: []core.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
		},
	}
}

func testRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           16,
		Height:          9,
		SamplesPerPixel: 4,
		MaxDepth:        5,
		Seed:            42,
		NumWorkers:      2,
	}
}

func TestRender_SeededRunsAreBitIdentical(t *testing.T) {
	config := testRenderConfig()

	first, err := NewRaytracer(skyScene(), config, silentLogger()).Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := NewRaytracer(skyScene(), config, silentLogger()).Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !bytes.Equal(first.Image.Pix, second.Image.Pix) {
		t.Error("Expected identical rasters for identical seeds")
	}
	for i := range first.Radiance {
		if first.Radiance[i] != second.Radiance[i] {
			t.Fatalf("Radiance differs at pixel %d: %v vs %v", i, first.Radiance[i], second.Radiance[i])
		}
	}
}

func TestRender_WorkerCountDoesNotChangeResult(t *testing.T) {
	config := testRenderConfig()
	config.NumWorkers = 1
	serial, err := NewRaytracer(skyScene(), config, silentLogger()).Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	config.NumWorkers = 7
	parallel, err := NewRaytracer(skyScene(), config, silentLogger()).Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !bytes.Equal(serial.Image.Pix, parallel.Image.Pix) {
		t.Error("Expected raster independent of worker count")
	}
}

func TestRender_DifferentSeedsDiffer(t *testing.T) {
	config := testRenderConfig()
	first, err := NewRaytracer(skyScene(), config, silentLogger()).Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	config.Seed = 1234
	second, err := NewRaytracer(skyScene(), config, silentLogger()).Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if bytes.Equal(first.Image.Pix, second.Image.Pix) {
		t.Error("Expected different seeds to jitter samples differently")
	}
}

func TestRender_ProgressIsMonotonicAndEndsAt100(t *testing.T) {
	config := testRenderConfig()

	var percents []float64
	_, err := NewRaytracer(skyScene(), config, silentLogger()).Render(func(percent float64) {
		percents = append(percents, percent)
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(percents) == 0 {
		t.Fatal("Expected at least one progress report")
	}
	for i, p := range percents {
		if p <= 0 || p > 100 {
			t.Errorf("Report %d out of range (0, 100]: %v", i, p)
		}
		if i > 0 && p <= percents[i-1] {
			t.Errorf("Report %d not strictly increasing: %v after %v", i, p, percents[i-1])
		}
	}
	if percents[len(percents)-1] != 100 {
		t.Errorf("Expected final report of 100, got %v", percents[len(percents)-1])
	}
}

func TestRender_DepthZeroGivesBlackImage(t *testing.T) {
	config := testRenderConfig()
	config.MaxDepth = 0

	result, err := NewRaytracer(skyScene(), config, silentLogger()).Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for i, v := range result.Radiance {
		if v != (core.Vec3{}) {
			t.Fatalf("Expected black radiance at pixel %d, got %v", i, v)
		}
	}
	for i := 0; i < len(result.Image.Pix); i += 4 {
		if result.Image.Pix[i] != 0 || result.Image.Pix[i+1] != 0 || result.Image.Pix[i+2] != 0 {
			t.Fatalf("Expected black pixel at offset %d", i)
		}
		if result.Image.Pix[i+3] != 255 {
			t.Fatalf("Expected opaque alpha at offset %d", i)
		}
	}
}

func TestRender_EmptySceneFailsToBuildBVH(t *testing.T) {
	scene := skyScene()
	scene.shapes = nil

	_, err := NewRaytracer(scene, testRenderConfig(), silentLogger()).Render(nil)
	if err == nil {
		t.Fatal("Expected an error for an empty scene")
	}
	if !strings.Contains(err.Error(), "BVH") {
		t.Errorf("Expected a BVH construction error, got %v", err)
	}
}

func TestRender_SkyGradientScene(t *testing.T) {
	config := testRenderConfig()
	config.Width = 20
	config.Height = 12
	config.SamplesPerPixel = 16

	result, err := NewRaytracer(skyScene(), config, silentLogger()).Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	brightness := func(x, y int) float64 {
		v := result.Radiance[y*config.Width+x]
		return v.X + v.Y + v.Z
	}

	// The top rows see only sky and lean blue
	sky := result.Radiance[1*config.Width+config.Width/2]
	if sky.Z <= sky.X {
		t.Errorf("Expected blue-leaning sky, got %v", sky)
	}

	// The sphere silhouette at frame center is darker than the open sky
	if brightness(config.Width/2, config.Height/2) >= brightness(config.Width/2, 1) {
		t.Error("Expected the sphere silhouette to be darker than the sky")
	}
}

func TestRender_HollowGlassSphereStaysFinite(t *testing.T) {
	camera := NewCamera(CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          90.0,
		AspectRatio:   1.0,
		Aperture:      0.0,
		FocusDistance: 1.0,
	})

	glass := material.NewDielectric(1.5)
	scene := &testScene{
		camera:     camera,
		background: core.NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)),
		shapes: []core.Shape{
			// Negative inner radius turns the sphere into a thin shell
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, glass),
			geometry.NewSphere(core.NewVec3(0, 0, -1), -0.45, glass),
		},
	}

	config := RenderConfig{
		Width:           8,
		Height:          8,
		SamplesPerPixel: 4,
		MaxDepth:        20,
		Seed:            42,
		NumWorkers:      2,
	}
	result, err := NewRaytracer(scene, config, silentLogger()).Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lit := false
	for i, v := range result.Radiance {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
			t.Fatalf("NaN radiance at pixel %d", i)
		}
		if math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0) {
			t.Fatalf("Infinite radiance at pixel %d", i)
		}
		if v.X > 0 {
			lit = true
		}
	}
	if !lit {
		t.Error("Expected light to pass through the glass shell")
	}
}

func TestRender_StatsAccounting(t *testing.T) {
	config := testRenderConfig()
	result, err := NewRaytracer(skyScene(), config, silentLogger()).Render(nil)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if result.Stats.TotalPixels != config.Width*config.Height {
		t.Errorf("Expected %d pixels, got %d", config.Width*config.Height, result.Stats.TotalPixels)
	}
	wantSamples := config.Width * config.Height * config.SamplesPerPixel
	if result.Stats.TotalSamples != wantSamples {
		t.Errorf("Expected %d samples, got %d", wantSamples, result.Stats.TotalSamples)
	}
	if result.Stats.AverageSamplesPerPixel != float64(config.SamplesPerPixel) {
		t.Errorf("Expected %d samples per pixel, got %v",
			config.SamplesPerPixel, result.Stats.AverageSamplesPerPixel)
	}
	if result.Stats.ElapsedTime <= 0 {
		t.Error("Expected a positive elapsed time")
	}
	bounds := result.Image.Bounds()
	if bounds.Dx() != config.Width || bounds.Dy() != config.Height {
		t.Errorf("Expected a %dx%d image, got %dx%d",
			config.Width, config.Height, bounds.Dx(), bounds.Dy())
	}
}
