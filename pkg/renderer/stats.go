package renderer

import "github.com/df07/go-live-raytracer/pkg/core"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels in the buffer
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	MinSamples     int     // Minimum samples taken by any pixel
	MaxSamplesUsed int     // Maximum samples taken by any pixel
}

// PixelStats tracks the running mean color of a single pixel
type PixelStats struct {
	Mean        core.Vec3 // Mean of every sample added so far
	SampleCount int       // Number of samples taken
}

// AddSample folds a new color sample into the running mean
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.SampleCount++
	ps.Mean = ps.Mean.Add(color.Subtract(ps.Mean).Multiply(1.0 / float64(ps.SampleCount)))
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	return ps.Mean
}
