// Package display shows a progressive render in a desktop window and turns key
// presses into camera moves.
package display

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-live-raytracer/pkg/renderer"
)

// MoveKeys maps keys to camera steps
var MoveKeys = map[ebiten.Key]renderer.MoveCommand{
	ebiten.KeyArrowRight: renderer.MoveRight,
	ebiten.KeyArrowLeft:  renderer.MoveLeft,
	ebiten.KeyArrowUp:    renderer.MoveUp,
	ebiten.KeyArrowDown:  renderer.MoveDown,
	ebiten.KeyE:          renderer.MoveForward,
	ebiten.KeyD:          renderer.MoveBack,
}

// Options configures the window
type Options struct {
	Title string
	Scale int  // Window pixels per image pixel
	HUD   bool // Print pass statistics over the image
}

// Window is an ebiten game that displays the latest pass of a progressive render
type Window struct {
	raytracer *renderer.ProgressiveRaytracer
	passChan  <-chan renderer.PassResult
	errChan   <-chan error
	options   Options

	frame  *ebiten.Image
	width  int
	height int
	last   renderer.PassResult
	err    error
}

// Run opens the window and renders until Escape is pressed, the window is closed
// or ctx is cancelled. The raytracer is left open; the caller closes it.
func Run(ctx context.Context, raytracer *renderer.ProgressiveRaytracer, options Options) error {
	if options.Scale <= 0 {
		options.Scale = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	passChan, errChan := raytracer.RenderProgressive(ctx)
	defer func() {
		cancel()
		for range passChan {
		}
	}()

	buffer := raytracer.Buffer()
	w := &Window{
		raytracer: raytracer,
		passChan:  passChan,
		errChan:   errChan,
		options:   options,
		width:     buffer.Width(),
		height:    buffer.Height(),
	}
	w.frame = ebiten.NewImage(w.width, w.height)

	ebiten.SetWindowSize(w.width*options.Scale, w.height*options.Scale)
	ebiten.SetWindowTitle(options.Title)

	if err := ebiten.RunGame(w); err != nil {
		return err
	}
	return w.err
}

// Update handles input and picks up the newest finished pass
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for key, cmd := range MoveKeys {
		if inpututil.IsKeyJustPressed(key) {
			w.raytracer.Move(cmd)
		}
	}

	for {
		select {
		case result, ok := <-w.passChan:
			if !ok {
				return w.stopped()
			}
			w.show(result)
			continue
		default:
		}
		return nil
	}
}

// stopped is called once the render goroutine has exited
func (w *Window) stopped() error {
	if err, ok := <-w.errChan; ok && !errors.Is(err, context.Canceled) {
		w.err = err
	}
	return ebiten.Termination
}

func (w *Window) show(result renderer.PassResult) {
	bounds := result.Image.Bounds()
	if bounds.Dx() != w.width || bounds.Dy() != w.height {
		w.width, w.height = bounds.Dx(), bounds.Dy()
		w.frame = ebiten.NewImage(w.width, w.height)
	}
	w.frame.WritePixels(result.Image.Pix)
	w.last = result
}

// Draw blits the current frame
func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.frame, nil)

	if w.options.HUD && w.last.PassNumber > 0 {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("pass %d  %d spp  %d ms",
			w.last.PassNumber, w.last.Sample, w.last.Duration.Milliseconds()))
	}
}

// Layout keeps the logical screen at image resolution; ebiten scales it to the window
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
