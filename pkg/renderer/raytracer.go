package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/integrator"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Root seed for all random streams
	NumWorkers      int   // Parallel workers, 0 = one per CPU
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           640,
		Height:          360,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
		NumWorkers:      0,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackground() core.Background
	GetShapes() []core.Shape
}

// RenderResult carries the finished frame in both display and linear form
type RenderResult struct {
	Image    *image.RGBA // Gamma-corrected 8-bit raster
	Radiance []core.Vec3 // Linear pre-gamma radiance, raster row-major
	Stats    RenderStats
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if config.SamplesPerPixel < 1 {
		config.SamplesPerPixel = 1
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}
}

// Render traces the full frame and blocks until it is complete. The progress
// callback, if non-nil, receives strictly increasing percentages in (0, 100]
// and may be invoked from worker goroutines.
func (rt *Raytracer) Render(progress func(percent float64)) (*RenderResult, error) {
	start := time.Now()

	camera := rt.scene.GetCamera()
	background := rt.scene.GetBackground()

	time0, time1 := camera.Shutter()
	bvh, err := core.NewBVH(rt.scene.GetShapes(), time0, time1,
		rand.New(rand.NewSource(rt.config.Seed)))
	if err != nil {
		return nil, fmt.Errorf("building BVH: %w", err)
	}

	width, height := rt.config.Width, rt.config.Height
	totalPixels := width * height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	radiance := make([]core.Vec3, totalPixels)
	tracker := newProgressTracker(totalPixels, progress)

	pool := NewWorkerPool(rt.config.NumWorkers, totalPixels)
	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (%d workers)...\n",
		width, height, rt.config.SamplesPerPixel, pool.GetNumWorkers())

	pool.Start(func(task PixelTask) {
		pixel := rt.renderPixel(camera, bvh, background, task)
		radiance[task.Index] = pixel
		img.SetRGBA(task.X, task.Y, vec3ToRGBA(pixel))
		tracker.pixelDone()
	})

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pool.Submit(PixelTask{X: x, Y: y, Index: y*width + x})
		}
	}
	pool.Stop()
	tracker.finish()

	elapsed := time.Since(start)
	rt.logger.Printf("Render completed in %v\n", elapsed)

	return &RenderResult{
		Image:    img,
		Radiance: radiance,
		Stats: RenderStats{
			TotalPixels:            totalPixels,
			TotalSamples:           totalPixels * rt.config.SamplesPerPixel,
			AverageSamplesPerPixel: float64(rt.config.SamplesPerPixel),
			ElapsedTime:            elapsed,
		},
	}, nil
}

// renderPixel accumulates the sample budget for one pixel. The sampler is
// seeded from the render seed and the pixel index, so the result does not
// depend on which worker picks the task up or in what order.
func (rt *Raytracer) renderPixel(camera *Camera, world core.Shape, background core.Background, task PixelTask) core.Vec3 {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(rt.config.Seed + int64(task.Index))))

	// Image-plane t runs bottom to top; raster rows run top to bottom
	j := rt.config.Height - 1 - task.Y

	colorAccum := core.NewVec3(0, 0, 0)
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Jitter within the pixel for a box filter
		s := (float64(task.X) + sampler.Get1D()) / float64(rt.config.Width-1)
		t := (float64(j) + sampler.Get1D()) / float64(rt.config.Height-1)

		ray := camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(
			integrator.RayColor(ray, world, background, sampler, rt.config.MaxDepth))
	}

	return colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
}

// vec3ToRGBA converts linear radiance to a display pixel with gamma 2 tone
// mapping and clamping
func vec3ToRGBA(colorVec core.Vec3) color.RGBA {
	corrected := colorVec.GammaCorrect(2.0).Clamp(0.0, 0.999)
	return color.RGBA{
		R: uint8(256 * corrected.X),
		G: uint8(256 * corrected.Y),
		B: uint8(256 * corrected.Z),
		A: 255,
	}
}

// progressTracker counts finished pixels and reports completion percentages.
// Delivery is serialized and strictly increasing so callers see a clean
// progression regardless of worker interleaving.
type progressTracker struct {
	total    int64
	cadence  int64
	fn       func(float64)
	counter  int64
	mu       sync.Mutex
	reported float64
}

func newProgressTracker(total int, fn func(float64)) *progressTracker {
	cadence := int64(total / 100)
	if cadence < 1 {
		cadence = 1
	}
	return &progressTracker{total: int64(total), cadence: cadence, fn: fn}
}

// pixelDone records one finished pixel, reporting at the configured cadence
func (p *progressTracker) pixelDone() {
	completed := atomic.AddInt64(&p.counter, 1)
	if p.fn == nil || completed%p.cadence != 0 {
		return
	}
	p.report(float64(completed) / float64(p.total) * 100)
}

// finish reports the final 100 unless the cadence already landed on it
func (p *progressTracker) finish() {
	if p.fn == nil {
		return
	}
	p.report(100)
}

func (p *progressTracker) report(percent float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if percent <= p.reported {
		return
	}
	p.reported = percent
	p.fn(percent)
}
