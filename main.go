package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/df07/go-path-tracer/pkg/config"
	"github.com/df07/go-path-tracer/pkg/output"
	"github.com/df07/go-path-tracer/pkg/renderer"
	"github.com/df07/go-path-tracer/pkg/scene"
)

func main() {
	sceneID := flag.String("scene", "random-spheres", "Scene to render (see -list)")
	list := flag.Bool("list", false, "List available scenes")
	configPath := flag.String("config", "configuration/base.yaml", "Render settings file")
	outputDir := flag.String("output", "", "Output directory (overrides the settings file)")
	seed := flag.Int64("seed", 42, "Seed for scene layout and sampling")
	workers := flag.Int("workers", 0, "Parallel render workers, 0 = one per CPU")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}
	if *list {
		printScenes()
		return
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		os.Exit(1)
	}
	if *outputDir != "" {
		settings.Path = *outputDir
	}
	image := settings.ImageSettings()

	info, ok := scene.Lookup(*sceneID)
	if !ok {
		fmt.Printf("Unknown scene %q. Use -list to see the available scenes.\n", *sceneID)
		os.Exit(1)
	}

	fmt.Printf("Rendering %s...\n", info.Name)
	selectedScene := info.Build(image.AspectRatio, *seed)

	logger := renderer.NewDefaultLogger()
	raytracer := renderer.NewRaytracer(selectedScene, renderer.RenderConfig{
		Width:           image.Width,
		Height:          image.Height,
		SamplesPerPixel: image.SamplesPerPixel,
		MaxDepth:        image.MaxDepth,
		Seed:            *seed,
		NumWorkers:      *workers,
	}, logger)

	result, err := raytracer.Render(func(percent float64) {
		logger.Printf("\r%.2f%% completed", percent)
		if percent >= 100 {
			logger.Printf("\n")
		}
	})
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Samples per pixel: %.1f (%d samples total)\n",
		result.Stats.AverageSamplesPerPixel, result.Stats.TotalSamples)

	filename, err := output.Save(result, info.ID, image)
	if err != nil {
		fmt.Printf("Error saving render: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

func printHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: path-tracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	printScenes()
	fmt.Println()
	fmt.Println("Output will be saved to <path>/<scene>/render_<timestamp>.<format>")
}

func printScenes() {
	for _, info := range scene.List() {
		fmt.Printf("  %-18s %s\n", info.ID, info.Description)
	}
}
