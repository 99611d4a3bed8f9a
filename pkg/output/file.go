package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// RenderedFrame is a finished render that can be written in either format
type RenderedFrame interface {
	Frame
	Image() *image.RGBA
}

// SaveFile writes the frame to path, choosing PNG or PPM by extension.
// Parent directories are created as needed.
func SaveFile(path string, frame RenderedFrame) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".ppm" {
		return fmt.Errorf("unsupported output format %q (use .png or .ppm)", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	switch ext {
	case ".png":
		err = png.Encode(file, frame.Image())
	default:
		err = EncodePPM(file, frame)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", path, err)
	}

	return file.Close()
}
