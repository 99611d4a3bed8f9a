package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"lerp midpoint", NewVec3(0, 0, 0).Lerp(NewVec3(2, 4, 6), 0.5), NewVec3(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to stay zero, got %v", zero)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-3, 0).NearZero() {
		t.Error("Expected vector with a 1e-3 component not to be near zero")
	}
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)

	reflected := Reflect(v, n)
	expected := NewVec3(1, 1, 0)
	if reflected != expected {
		t.Errorf("Expected %v, got %v", expected, reflected)
	}
}

func TestRefract_NormalIncidencePassesStraightThrough(t *testing.T) {
	uv := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)

	refracted := Refract(uv, n, 1.0/1.5)
	if refracted.Subtract(uv).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", uv, refracted)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -2))
	point := ray.At(1.5)
	expected := NewVec3(1, 1, -2)
	if point != expected {
		t.Errorf("Expected %v, got %v", expected, point)
	}
}
