package renderer

import (
	"errors"
	"testing"
)

func TestWorkerPool_WaitDrainsEveryJob(t *testing.T) {
	scene := newTestScene(16)
	pass := newTestPass(scene, 1, 7)

	pool := NewWorkerPool(4, 8) // queue smaller than the job count
	pool.Start()
	defer pool.Stop()

	for y := 0; y < pass.Buffer.Height(); y++ {
		for x := 0; x < pass.Buffer.Width(); x++ {
			pool.Submit(Job{X: x, Y: y, Pass: pass})
		}
	}
	pool.Wait()

	stats := pass.Buffer.Stats()
	if stats.MinSamples != 1 || stats.MaxSamplesUsed != 1 {
		t.Errorf("Expected exactly one sample per pixel, got min %d max %d",
			stats.MinSamples, stats.MaxSamplesUsed)
	}
}

func TestWorkerPool_SubmitAfterStopPanics(t *testing.T) {
	pool := NewWorkerPool(2, 0)
	pool.Start()
	pool.Stop()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPoolStopped) {
			t.Errorf("Expected panic with ErrPoolStopped, got %v", r)
		}
	}()

	pool.Submit(Job{})
}

func TestWorkerPool_StopIsIdempotent(t *testing.T) {
	pool := NewWorkerPool(3, 0)
	pool.Start()
	pool.Stop()
	pool.Stop()

	if pool.GetNumWorkers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}
}

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(0, 0)
	if pool.GetNumWorkers() < 1 {
		t.Errorf("Expected at least one worker, got %d", pool.GetNumWorkers())
	}
}
