package output

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mrjoshuak/go-openexr/exr"
	"golang.org/x/image/tiff"

	"github.com/df07/go-path-tracer/pkg/config"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

const jpegQuality = 90

// Save writes the render result under <path>/<sceneID>/render_<timestamp>.<format>
// and returns the written filename
func Save(result *renderer.RenderResult, sceneID string, settings config.ImageSettings) (string, error) {
	dir := filepath.Join(settings.Path, sceneID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(dir, fmt.Sprintf("render_%s.%s", timestamp, settings.Format))

	if err := WriteFile(filename, result, settings.Format); err != nil {
		return "", err
	}
	return filename, nil
}

// WriteFile encodes the render result into filename. The display formats use
// the gamma-corrected raster; EXR stores the linear radiance.
func WriteFile(filename string, result *renderer.RenderResult, format config.Format) error {
	switch format {
	case config.FormatEXR:
		// The EXR writer needs a seekable output, so it opens the file itself
		return exr.EncodeFile(filename, radianceImage(result))
	case config.FormatPNG, config.FormatJPG, config.FormatPPM, config.FormatTIFF:
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer file.Close()

	switch format {
	case config.FormatPNG:
		err = png.Encode(file, result.Image)
	case config.FormatJPG:
		err = jpeg.Encode(file, result.Image, &jpeg.Options{Quality: jpegQuality})
	case config.FormatPPM:
		err = encodePPM(file, result.Image)
	case config.FormatTIFF:
		err = tiff.Encode(file, result.Image, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return nil
}

// encodePPM writes a binary P6 PPM with 8-bit samples
func encodePPM(w io.Writer, img *image.RGBA) error {
	bounds := img.Bounds()
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}

	row := make([]byte, bounds.Dx()*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := 0
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := img.RGBAAt(x, y)
			row[i] = pixel.R
			row[i+1] = pixel.G
			row[i+2] = pixel.B
			i += 3
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// radianceImage copies the linear radiance into a half-float image. EXR is a
// scene-referred format, so no gamma correction or clamping is applied and
// values above 1 survive.
func radianceImage(result *renderer.RenderResult) *exr.RGBAImage {
	bounds := result.Image.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	img := exr.NewRGBAImage(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := result.Radiance[y*width+x]
			img.SetRGBA(x, y, float32(v.X), float32(v.Y), float32(v.Z), 1)
		}
	}
	return img
}
