package cmd

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-live-raytracer/pkg/renderer"
)

func TestSceneBaseName(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"default", "default"},
		{"file:glass-bubbles", "glass-bubbles"},
		{"scenes/glass-bubbles.json", "glass-bubbles"},
		{"scenes/subdir/my-scene.json", "my-scene"},
		{"", "scene"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := sceneBaseName(tt.ref); got != tt.want {
				t.Errorf("sceneBaseName(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	got := defaultOutputPath("file:glass-bubbles", now)
	want := filepath.Join("output", "glass-bubbles", "render_20240309_140507.ppm")
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestWorkerCount(t *testing.T) {
	if got := workerCount(3); got != 3 {
		t.Errorf("Expected explicit worker count to be kept, got %d", got)
	}
	if got := workerCount(0); got < 1 {
		t.Errorf("Expected at least one worker by default, got %d", got)
	}
}

func TestFormatRenderStats(t *testing.T) {
	stats := renderer.RenderStats{
		TotalPixels:    144,
		TotalSamples:   576,
		AverageSamples: 4,
		MinSamples:     4,
		MaxSamplesUsed: 4,
	}

	table := formatRenderStats(stats, 4, 2, 12*time.Millisecond, 40*time.Millisecond)

	for _, want := range []string{"Samples/pixel", "144", "4.0", "12ms", "TOTAL", "40ms"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected %q in table:\n%s", want, table)
		}
	}
}
