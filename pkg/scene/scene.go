package scene

import (
	"fmt"

	"github.com/lberg/go-sphere-raytracer/pkg/core"
	"github.com/lberg/go-sphere-raytracer/pkg/geometry"
	"github.com/lberg/go-sphere-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is built once
// before rendering; rendering never mutates it.
type Scene struct {
	Camera  *geometry.Camera
	Spheres []*geometry.Sphere
	Lights  []lights.SphereLight
	Config  core.RenderConfig
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetLights returns the scene's lights
func (s *Scene) GetLights() []lights.SphereLight {
	return s.Lights
}

// GetConfig returns the scene's render configuration
func (s *Scene) GetConfig() core.RenderConfig {
	return s.Config
}

// NearestHit finds the closest intersection along the ray. Linear scan over
// all objects; a later hit replaces the current best only at strictly
// smaller t, so the first object seen wins ties.
func (s *Scene) NearestHit(ray core.Ray) (geometry.Hit, bool) {
	var closest geometry.Hit
	found := false

	for _, sphere := range s.Spheres {
		hit, ok := sphere.Hit(ray, s.Config.Epsilon)
		if !ok {
			continue
		}
		if !found || hit.T < closest.T {
			closest = hit
			found = true
		}
	}

	return closest, found
}

// Validate checks the scene for geometric contract violations before any
// rendering happens, so degenerate geometry fails fast instead of
// propagating NaNs into pixel output.
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return fmt.Errorf("scene has no camera")
	}
	if s.Config.Width <= 0 || s.Config.Height <= 0 {
		return fmt.Errorf("invalid image dimensions %dx%d", s.Config.Width, s.Config.Height)
	}
	if s.Config.LightSamples <= 0 {
		return fmt.Errorf("light samples must be positive, got %d", s.Config.LightSamples)
	}
	if s.Config.MaxDepth <= 0 {
		return fmt.Errorf("reflection depth must be positive, got %d", s.Config.MaxDepth)
	}
	for i, sphere := range s.Spheres {
		if sphere.Radius <= 0 {
			return fmt.Errorf("sphere %d: radius must be positive, got %g", i, sphere.Radius)
		}
		if sphere.Material == nil {
			return fmt.Errorf("sphere %d: missing material", i)
		}
	}
	for i, light := range s.Lights {
		if light.Radius < 0 {
			return fmt.Errorf("light %d: radius must not be negative, got %g", i, light.Radius)
		}
	}
	return nil
}
