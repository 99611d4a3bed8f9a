package output

import (
	"bufio"
	"fmt"
	"io"
)

// Frame is an 8-bit RGB image, row-major with the top row first
type Frame interface {
	Width() int
	Height() int
	RGB() []byte
}

// EncodePPM writes frame as a plain-text PPM (P3) image: a magic line, a
// dimensions line, the maximum channel value and one "R G B" line per pixel
func EncodePPM(w io.Writer, frame Frame) error {
	width, height := frame.Width(), frame.Height()
	rgb := frame.RGB()
	if len(rgb) != 3*width*height {
		return fmt.Errorf("ppm: frame has %d bytes, expected %d for %dx%d", len(rgb), 3*width*height, width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	for i := 0; i < len(rgb); i += 3 {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", rgb[i], rgb[i+1], rgb[i+2]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
