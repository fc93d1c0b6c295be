package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Scene contains all the elements needed for rendering. It is built once
// and then only read, so renderer workers share it without locking.
type Scene struct {
	Name   string
	Camera geometry.Camera
	Shapes []geometry.Shape // Objects in the scene, in insertion order
}

// New creates an empty scene viewed through the given camera
func New(name string, camera geometry.Camera) *Scene {
	return &Scene{
		Name:   name,
		Camera: camera,
		Shapes: make([]geometry.Shape, 0),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit returns the nearest hit across all shapes with tMin < t < tMax.
// Each hit narrows tMax for the shapes scanned after it.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float32) (material.HitRecord, bool) {
	var closest material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() geometry.Camera {
	return s.Camera
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
