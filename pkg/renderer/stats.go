package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels            int           // Total number of pixels rendered
	TotalSamples           int           // Total number of samples taken
	AverageSamplesPerPixel float64       // Average samples per pixel
	ElapsedTime            time.Duration // Wall-clock render time
}
