package renderer

import (
	"testing"
)

func TestNewScheduler(t *testing.T) {
	if _, ok := NewScheduler(1).(SerialScheduler); !ok {
		t.Error("Expected a serial scheduler for one worker")
	}

	pool := NewScheduler(3)
	defer pool.Close()
	if _, ok := pool.(*PoolScheduler); !ok {
		t.Fatal("Expected a pool scheduler for three workers")
	}
	if pool.Workers() != 3 {
		t.Errorf("Expected 3 workers, got %d", pool.Workers())
	}
}

func TestSchedulers_SameSeedSameBuffer(t *testing.T) {
	scene := newTestScene(24)
	const passes = 4
	const seed = 1234

	render := func(scheduler Scheduler) *RenderBuffer {
		defer scheduler.Close()
		base := newTestPass(scene, 1, seed)
		for sample := 1; sample <= passes; sample++ {
			pass := *base
			pass.Sample = sample
			scheduler.RunPass(&pass)
		}
		return base.Buffer
	}

	serial := render(SerialScheduler{})
	parallel := render(NewPoolScheduler(4))

	for y := 0; y < serial.Height(); y++ {
		for x := 0; x < serial.Width(); x++ {
			a, b := serial.At(x, y), parallel.At(x, y)
			if a.SampleCount != passes || b.SampleCount != passes {
				t.Fatalf("Pixel (%d,%d): expected %d samples, got %d and %d", x, y, passes, a.SampleCount, b.SampleCount)
			}
			if a.Mean != b.Mean {
				t.Fatalf("Pixel (%d,%d): serial %v != pool %v", x, y, a.Mean, b.Mean)
			}
		}
	}
}

func TestSchedulers_DifferentSeedsDiffer(t *testing.T) {
	scene := newTestScene(24)

	a := newTestPass(scene, 1, 1)
	b := newTestPass(scene, 1, 2)
	SerialScheduler{}.RunPass(a)
	SerialScheduler{}.RunPass(b)

	differences := 0
	for y := 0; y < a.Buffer.Height(); y++ {
		for x := 0; x < a.Buffer.Width(); x++ {
			if a.Buffer.At(x, y).Mean != b.Buffer.At(x, y).Mean {
				differences++
			}
		}
	}
	if differences == 0 {
		t.Error("Expected different seeds to produce different samples")
	}
}
