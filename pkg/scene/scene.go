package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera     *renderer.Camera
	Background core.Background
	Shapes     []core.Shape // Objects in the scene
}

// GetCamera returns the camera that generates primary rays
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackground returns the radiance source for rays that escape the scene
func (s *Scene) GetBackground() core.Background {
	return s.Background
}

// GetShapes returns the scene contents for acceleration structure construction
func (s *Scene) GetShapes() []core.Shape {
	return s.Shapes
}
