package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-live-raytracer/pkg/core"
)

// RenderBuffer holds one PixelStats per pixel in row-major order.
// Row 0 is the top of the image.
type RenderBuffer struct {
	width, height int
	pixels        []PixelStats
}

// NewRenderBuffer creates a zeroed buffer of the given size
func NewRenderBuffer(width, height int) *RenderBuffer {
	return &RenderBuffer{
		width:  width,
		height: height,
		pixels: make([]PixelStats, width*height),
	}
}

// Width returns the buffer width in pixels
func (rb *RenderBuffer) Width() int {
	return rb.width
}

// Height returns the buffer height in pixels
func (rb *RenderBuffer) Height() int {
	return rb.height
}

// At returns the stats cell for pixel (x, y). Concurrent writers must never share a cell.
func (rb *RenderBuffer) At(x, y int) *PixelStats {
	return &rb.pixels[y*rb.width+x]
}

// Reset zeroes every mean and sample count
func (rb *RenderBuffer) Reset() {
	clear(rb.pixels)
}

// Image converts the running means to a gamma corrected RGBA image
func (rb *RenderBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rb.width, rb.height))
	for y := 0; y < rb.height; y++ {
		for x := 0; x < rb.width; x++ {
			img.SetRGBA(x, y, vec3ToColor(rb.At(x, y).GetColor()))
		}
	}
	return img
}

// RGB returns the image as packed 8-bit RGB triples, row-major, top row first
func (rb *RenderBuffer) RGB() []byte {
	out := make([]byte, 0, 3*len(rb.pixels))
	for i := range rb.pixels {
		c := vec3ToColor(rb.pixels[i].GetColor())
		out = append(out, c.R, c.G, c.B)
	}
	return out
}

// Stats summarizes the sample counts across the buffer
func (rb *RenderBuffer) Stats() RenderStats {
	stats := RenderStats{TotalPixels: len(rb.pixels)}
	if len(rb.pixels) == 0 {
		return stats
	}

	stats.MinSamples = math.MaxInt
	for i := range rb.pixels {
		count := rb.pixels[i].SampleCount
		stats.TotalSamples += count
		stats.MinSamples = min(stats.MinSamples, count)
		stats.MaxSamplesUsed = max(stats.MaxSamplesUsed, count)
	}
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)

	return stats
}

// vec3ToColor applies gamma 2 and quantizes each channel as int(256 * clamp(c, 0, 0.999))
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}
