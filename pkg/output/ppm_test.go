package output

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testFrame is a fixed RGB frame
type testFrame struct {
	width, height int
	rgb           []byte
}

func (f testFrame) Width() int  { return f.width }
func (f testFrame) Height() int { return f.height }
func (f testFrame) RGB() []byte { return f.rgb }

func (f testFrame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for i := 0; i < f.width*f.height; i++ {
		copy(img.Pix[4*i:], f.rgb[3*i:3*i+3])
		img.Pix[4*i+3] = 255
	}
	return img
}

func newTestFrame() testFrame {
	return testFrame{
		width:  2,
		height: 2,
		rgb: []byte{
			255, 0, 0, 0, 255, 0,
			0, 0, 255, 10, 20, 30,
		},
	}
}

func TestEncodePPM(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePPM(&buf, newTestFrame()); err != nil {
		t.Fatalf("EncodePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n255 0 0\n0 255 0\n0 0 255\n10 20 30\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%q\nwant\n%q", buf.String(), expected)
	}
}

func TestEncodePPM_SizeMismatch(t *testing.T) {
	frame := newTestFrame()
	frame.rgb = frame.rgb[:9]

	if err := EncodePPM(&bytes.Buffer{}, frame); err == nil {
		t.Error("Expected an error for a truncated frame")
	}
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	frame := newTestFrame()

	ppmPath := filepath.Join(dir, "nested", "out.ppm")
	if err := SaveFile(ppmPath, frame); err != nil {
		t.Fatalf("SaveFile(ppm) failed: %v", err)
	}
	data, err := os.ReadFile(ppmPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "P3\n2 2\n255\n") {
		t.Errorf("Unexpected PPM header: %q", data)
	}

	pngPath := filepath.Join(dir, "out.PNG")
	if err := SaveFile(pngPath, frame); err != nil {
		t.Fatalf("SaveFile(png) failed: %v", err)
	}
	file, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if r, g, b, _ := img.At(1, 1).RGBA(); r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("Unexpected bottom right pixel %d %d %d", r>>8, g>>8, b>>8)
	}

	if err := SaveFile(filepath.Join(dir, "out.jpg"), frame); err == nil {
		t.Error("Expected an error for an unsupported extension")
	}
}
