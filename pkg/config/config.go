package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the image encoder used to save the render
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatPPM  Format = "ppm"
	FormatTIFF Format = "tiff"
	FormatEXR  Format = "exr"
)

// Settings mirrors the YAML settings file. Fields omitted from the file
// keep their default values.
type Settings struct {
	AspectRatio     float64 `yaml:"aspect_ratio"`
	Height          int     `yaml:"height"`
	SamplesPerPixel int     `yaml:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth"`
	Format          Format  `yaml:"format"`
	Path            string  `yaml:"path"`
}

// ImageSettings is the resolved render description with the width derived
// from the height and aspect ratio
type ImageSettings struct {
	Width           int
	Height          int
	AspectRatio     float64
	SamplesPerPixel int
	MaxDepth        int
	Format          Format
	Path            string
}

// DefaultSettings returns the settings used when no file is present
func DefaultSettings() Settings {
	return Settings{
		AspectRatio:     16.0 / 9.0,
		Height:          360,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Format:          FormatPNG,
		Path:            "output",
	}
}

// Load reads settings from a YAML file. A missing file falls back to the
// defaults; a malformed file or invalid values are an error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("reading settings file: %w", err)
	}

	// Unmarshal over the defaults so partial files keep them
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings file %s: %w", path, err)
	}

	return settings, nil
}

// Validate checks the settings for values the renderer cannot work with
func (s Settings) Validate() error {
	switch s.Format {
	case FormatPNG, FormatJPG, FormatPPM, FormatTIFF, FormatEXR:
	default:
		return fmt.Errorf("unknown output format %q", s.Format)
	}
	if s.AspectRatio <= 0 {
		return fmt.Errorf("aspect_ratio must be positive, got %g", s.AspectRatio)
	}
	if s.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", s.Height)
	}
	if s.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples_per_pixel must be positive, got %d", s.SamplesPerPixel)
	}
	if s.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", s.MaxDepth)
	}
	return nil
}

// ImageSettings resolves the output dimensions
func (s Settings) ImageSettings() ImageSettings {
	return ImageSettings{
		Width:           int(float64(s.Height) * s.AspectRatio),
		Height:          s.Height,
		AspectRatio:     s.AspectRatio,
		SamplesPerPixel: s.SamplesPerPixel,
		MaxDepth:        s.MaxDepth,
		Format:          s.Format,
		Path:            s.Path,
	}
}
