package material

import (
	"testing"

	"github.com/df07/go-live-raytracer/pkg/core"
)

// fixedSampler replays a fixed list of values, cycling when exhausted
type fixedSampler struct {
	values []float64
	next   int
}

func (s *fixedSampler) draw() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *fixedSampler) Get1D() float64 { return s.draw() }
func (s *fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.draw(), s.draw())
}
func (s *fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.draw(), s.draw(), s.draw())
}

// forbiddenSampler fails the test when any random value is requested
type forbiddenSampler struct {
	t *testing.T
}

func (s forbiddenSampler) Get1D() float64 {
	s.t.Fatal("unexpected random draw")
	return 0
}
func (s forbiddenSampler) Get2D() core.Vec2 {
	s.t.Fatal("unexpected random draw")
	return core.Vec2{}
}
func (s forbiddenSampler) Get3D() core.Vec3 {
	s.t.Fatal("unexpected random draw")
	return core.Vec3{}
}
