package output

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mrjoshuak/go-openexr/exr"
	"golang.org/x/image/tiff"

	"github.com/df07/go-path-tracer/pkg/config"
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// testResult builds a 2x2 frame with distinct pixels in both rasters
func testResult() *renderer.RenderResult {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	colors := []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 200, G: 150, B: 100, A: 255},
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
	for i, c := range colors {
		img.SetRGBA(i%2, i/2, c)
	}

	return &renderer.RenderResult{
		Image: img,
		Radiance: []core.Vec3{
			core.NewVec3(0.25, 0.5, 0.75),
			core.NewVec3(1, 0, 0),
			core.NewVec3(0, 1, 0),
			core.NewVec3(4, 2, 1), // brighter than display white
		},
	}
}

func TestWriteFile_PNG(t *testing.T) {
	result := testResult()
	path := filepath.Join(t.TempDir(), "render.png")

	if err := WriteFile(path, result, config.FormatPNG); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open written file: %v", err)
	}
	defer file.Close()

	decoded, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := result.Image.RGBAAt(x, y)
			got := color.RGBAModel.Convert(decoded.At(x, y)).(color.RGBA)
			if got != want {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestWriteFile_JPG(t *testing.T) {
	result := testResult()
	path := filepath.Join(t.TempDir(), "render.jpg")

	if err := WriteFile(path, result, config.FormatJPG); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open written file: %v", err)
	}
	defer file.Close()

	// JPEG is lossy, so only the dimensions are checked
	decoded, err := jpeg.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode JPEG: %v", err)
	}
	if decoded.Bounds().Dx() != 2 || decoded.Bounds().Dy() != 2 {
		t.Errorf("Expected 2x2 image, got %v", decoded.Bounds())
	}
}

func TestWriteFile_PPM(t *testing.T) {
	result := testResult()
	path := filepath.Join(t.TempDir(), "render.ppm")

	if err := WriteFile(path, result, config.FormatPPM); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	header := []byte("P6\n2 2\n255\n")
	if !bytes.HasPrefix(data, header) {
		t.Fatalf("Expected P6 header, got %q", data[:min(len(data), len(header))])
	}

	payload := data[len(header):]
	if len(payload) != 2*2*3 {
		t.Fatalf("Expected 12 payload bytes, got %d", len(payload))
	}
	if payload[0] != 10 || payload[1] != 20 || payload[2] != 30 {
		t.Errorf("Expected first pixel 10 20 30, got %d %d %d", payload[0], payload[1], payload[2])
	}
	last := payload[len(payload)-3:]
	if last[0] != 255 || last[1] != 255 || last[2] != 255 {
		t.Errorf("Expected last pixel 255 255 255, got %d %d %d", last[0], last[1], last[2])
	}
}

func TestWriteFile_TIFF(t *testing.T) {
	result := testResult()
	path := filepath.Join(t.TempDir(), "render.tiff")

	if err := WriteFile(path, result, config.FormatTIFF); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open written file: %v", err)
	}
	defer file.Close()

	decoded, err := tiff.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode TIFF: %v", err)
	}

	// Deflate compression is lossless
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := result.Image.RGBAAt(x, y)
			got := color.RGBAModel.Convert(decoded.At(x, y)).(color.RGBA)
			if got != want {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestWriteFile_EXR(t *testing.T) {
	result := testResult()
	path := filepath.Join(t.TempDir(), "render.exr")

	if err := WriteFile(path, result, config.FormatEXR); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	decoded, err := exr.DecodeFile(path)
	if err != nil {
		t.Fatalf("Failed to decode EXR: %v", err)
	}
	if decoded.Bounds().Dx() != 2 || decoded.Bounds().Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", decoded.Bounds())
	}

	// The radiance goes out linear, without gamma correction or clamping
	const tolerance = 0.001
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := result.Radiance[y*2+x]
			r, g, b, _ := decoded.RGBA(x, y)
			if math.Abs(float64(r)-want.X) > tolerance ||
				math.Abs(float64(g)-want.Y) > tolerance ||
				math.Abs(float64(b)-want.Z) > tolerance {
				t.Errorf("Pixel (%d,%d): expected %v, got (%g, %g, %g)", x, y, want, r, g, b)
			}
		}
	}

	// Values above display white must survive
	r, _, _, _ := decoded.RGBA(1, 1)
	if math.Abs(float64(r)-4.0) > tolerance {
		t.Errorf("Expected HDR value 4.0 to survive, got %g", r)
	}
}

func TestWriteFile_UnknownFormat(t *testing.T) {
	result := testResult()
	path := filepath.Join(t.TempDir(), "render.bmp")

	if err := WriteFile(path, result, config.Format("bmp")); err == nil {
		t.Error("Expected error for unknown format, got nil")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no file to be written for unknown format")
	}
}

func TestSave_CreatesTimestampedFile(t *testing.T) {
	result := testResult()
	settings := config.ImageSettings{
		Path:   t.TempDir(),
		Format: config.FormatPNG,
	}

	filename, err := Save(result, "cornell-box", settings)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	wantPrefix := filepath.Join(settings.Path, "cornell-box", "render_")
	if !strings.HasPrefix(filename, wantPrefix) {
		t.Errorf("Expected filename under %s, got %s", wantPrefix, filename)
	}
	if !strings.HasSuffix(filename, ".png") {
		t.Errorf("Expected .png suffix, got %s", filename)
	}
	if _, err := os.Stat(filename); err != nil {
		t.Errorf("Expected saved file to exist: %v", err)
	}
}
