package geometry

import (
	"github.com/df07/go-live-raytracer/pkg/core"
	"github.com/df07/go-live-raytracer/pkg/material"
)

// HittableList is a flat arena of shapes tested brute force against every ray.
// Shapes are addressed by the stable index returned from Add.
type HittableList struct {
	shapes []Shape
}

// NewHittableList creates a list holding the given shapes in order
func NewHittableList(shapes ...Shape) *HittableList {
	list := &HittableList{}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape and returns its index. Must not be called while a pass is rendering.
func (l *HittableList) Add(shape Shape) int {
	l.shapes = append(l.shapes, shape)
	return len(l.shapes) - 1
}

// Len returns the number of shapes
func (l *HittableList) Len() int {
	return len(l.shapes)
}

// Shape returns the shape stored at index
func (l *HittableList) Shape(index int) Shape {
	return l.shapes[index]
}

// Hit returns the nearest intersection among all shapes
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, _, isHit := l.HitIndex(ray, tMin, tMax)
	return hit, isHit
}

// HitIndex is Hit that also reports the index of the shape that was hit, or -1
func (l *HittableList) HitIndex(ray core.Ray, tMin, tMax float64) (*material.HitRecord, int, bool) {
	var closestHit *material.HitRecord
	closestIndex := -1
	closestSoFar := tMax

	for i, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
			closestIndex = i
		}
	}

	return closestHit, closestIndex, closestHit != nil
}
