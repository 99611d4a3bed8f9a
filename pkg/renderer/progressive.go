package renderer

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/df07/go-live-raytracer/pkg/core"
	"github.com/df07/go-live-raytracer/pkg/geometry"
	"github.com/df07/go-live-raytracer/pkg/integrator"
	"github.com/df07/go-live-raytracer/pkg/log"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() geometry.CameraConfig
	GetWorld() geometry.Shape
	GetIntegrator() integrator.Integrator
}

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	MaxSamplesPerPixel int    // Stop sampling at this many samples per pixel (0 = never)
	NumWorkers         int    // Number of parallel workers (0 = use CPU count, 1 = serial)
	Seed               uint64 // Base seed for every per-pixel random stream
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		MaxSamplesPerPixel: 0,
		NumWorkers:         0,
		Seed:               42,
	}
}

// PassResult contains the result of a single pass
type PassResult struct {
	PassNumber int           // Passes rendered since the raytracer was created
	Sample     int           // Samples per pixel accumulated since the last reset
	Image      *image.RGBA   // Snapshot of the buffer after the pass
	Stats      RenderStats   // Sample statistics of the buffer
	Duration   time.Duration // Wall time of the pass
	Reset      bool          // The buffer was cleared before this pass
}

// ProgressiveRaytracer owns the render state: camera, world, buffer and scheduler.
// Passes are run by a single coordinating goroutine; Move and SetScene may be called
// from any goroutine and take effect at the next pass boundary.
type ProgressiveRaytracer struct {
	config    ProgressiveConfig
	scheduler Scheduler
	logger    log.Logger

	buffer     *RenderBuffer
	world      geometry.Shape
	integrator integrator.Integrator
	sample     int
	passNumber int

	mu           sync.Mutex
	camera       geometry.Camera
	pendingMoves []core.Vec3
	pendingScene Scene
	wake         chan struct{}
}

// NewProgressiveRaytracer creates a new progressive raytracer
func NewProgressiveRaytracer(scene Scene, config ProgressiveConfig, logger log.Logger) (*ProgressiveRaytracer, error) {
	if scene == nil {
		return nil, ErrNoScene
	}
	if logger == nil {
		logger = log.Discard()
	}

	camera := geometry.NewCamera(scene.GetCamera())

	return &ProgressiveRaytracer{
		config:     config,
		scheduler:  NewScheduler(config.NumWorkers),
		logger:     logger,
		buffer:     NewRenderBuffer(camera.Width(), camera.Height()),
		world:      scene.GetWorld(),
		integrator: scene.GetIntegrator(),
		camera:     *camera,
		wake:       make(chan struct{}, 1),
	}, nil
}

// Move queues a camera step that is applied before the next pass
func (pr *ProgressiveRaytracer) Move(cmd MoveCommand) {
	pr.MoveBy(cmd.Direction())
}

// MoveBy queues an arbitrary camera-space translation
func (pr *ProgressiveRaytracer) MoveBy(delta core.Vec3) {
	pr.mu.Lock()
	pr.pendingMoves = append(pr.pendingMoves, delta)
	pr.mu.Unlock()
	pr.notify()
}

// SetScene queues a full scene swap that is applied before the next pass
func (pr *ProgressiveRaytracer) SetScene(scene Scene) {
	if scene == nil {
		return
	}
	pr.mu.Lock()
	pr.pendingScene = scene
	pr.pendingMoves = nil
	pr.mu.Unlock()
	pr.notify()
}

func (pr *ProgressiveRaytracer) notify() {
	select {
	case pr.wake <- struct{}{}:
	default:
	}
}

// Camera returns a snapshot of the current camera
func (pr *ProgressiveRaytracer) Camera() geometry.Camera {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.camera
}

// World returns the geometry currently being rendered
func (pr *ProgressiveRaytracer) World() geometry.Shape {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.world
}

// Buffer returns the accumulation buffer. Only read it between passes.
func (pr *ProgressiveRaytracer) Buffer() *RenderBuffer {
	return pr.buffer
}

// Workers returns the number of goroutines sampling each pass
func (pr *ProgressiveRaytracer) Workers() int {
	return pr.scheduler.Workers()
}

// Close stops the scheduler's workers
func (pr *ProgressiveRaytracer) Close() {
	pr.scheduler.Close()
}

// applyPending installs queued scene swaps and camera moves, resetting the
// accumulation when anything changed. Returns true on reset.
func (pr *ProgressiveRaytracer) applyPending() bool {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	if pr.pendingScene == nil && len(pr.pendingMoves) == 0 {
		return false
	}

	if scene := pr.pendingScene; scene != nil {
		camera := geometry.NewCamera(scene.GetCamera())
		pr.camera = *camera
		pr.world = scene.GetWorld()
		pr.integrator = scene.GetIntegrator()
		if camera.Width() != pr.buffer.Width() || camera.Height() != pr.buffer.Height() {
			pr.buffer = NewRenderBuffer(camera.Width(), camera.Height())
		}
		pr.pendingScene = nil
		pr.logger.Infof("Scene swapped, restarting accumulation")
	}

	for _, delta := range pr.pendingMoves {
		if !pr.camera.Move(delta) {
			pr.logger.Debugf("Ignoring camera move %v: pose would lose its view direction", delta)
		}
	}
	if len(pr.pendingMoves) > 0 {
		pr.logger.Debugf("Camera moved to %v, restarting accumulation", pr.camera.Origin())
	}
	pr.pendingMoves = nil

	pr.buffer.Reset()
	pr.sample = 0
	return true
}

// RenderPass applies pending changes and adds one sample to every pixel
func (pr *ProgressiveRaytracer) RenderPass() PassResult {
	reset := pr.applyPending()

	pr.sample++
	pr.passNumber++

	pass := &Pass{
		Sample:     pr.sample,
		Camera:     pr.Camera(),
		World:      pr.world,
		Integrator: pr.integrator,
		Buffer:     pr.buffer,
		Seed:       pr.config.Seed,
	}

	startTime := time.Now()
	pr.scheduler.RunPass(pass)
	passTime := time.Since(startTime)

	pr.logger.Infof("Pass %d: %d ms (%d samples/pixel, %d workers)",
		pr.passNumber, passTime.Milliseconds(), pr.sample, pr.scheduler.Workers())

	return PassResult{
		PassNumber: pr.passNumber,
		Sample:     pr.sample,
		Image:      pr.buffer.Image(),
		Stats:      pr.buffer.Stats(),
		Duration:   passTime,
		Reset:      reset,
	}
}

// converged reports whether the sample cap is reached and nothing is queued
func (pr *ProgressiveRaytracer) converged() bool {
	if pr.config.MaxSamplesPerPixel <= 0 || pr.sample < pr.config.MaxSamplesPerPixel {
		return false
	}
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.pendingScene == nil && len(pr.pendingMoves) == 0
}

// RenderProgressive renders passes on a background goroutine until ctx is done.
// Once the sample cap is reached it idles until a move or scene swap arrives.
// Both channels are closed when rendering stops; ctx.Err() is sent on errChan.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(passChan)
		defer close(errChan)

		pr.logger.Noticef("Starting progressive rendering (%dx%d, %d workers)",
			pr.buffer.Width(), pr.buffer.Height(), pr.scheduler.Workers())

		for {
			if pr.converged() {
				pr.logger.Infof("Reached %d samples per pixel, waiting for camera input", pr.sample)
				select {
				case <-pr.wake:
				case <-ctx.Done():
					errChan <- ctx.Err()
					return
				}
				continue
			}

			// Cancellation is only honoured between passes
			select {
			case <-ctx.Done():
				pr.logger.Infof("Rendering cancelled before pass %d", pr.passNumber+1)
				errChan <- ctx.Err()
				return
			default:
			}

			result := pr.RenderPass()

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return passChan, errChan
}
