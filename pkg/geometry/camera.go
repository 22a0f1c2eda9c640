package geometry

import "github.com/lberg/go-sphere-raytracer/pkg/core"

// CameraConfig contains camera configuration
type CameraConfig struct {
	Center core.Vec3 // Ray origin before jitter
	Jitter float64   // Edge length of the cube the origin is jittered within
}

// Camera supplies sampled ray origins for rendering. Each sample jitters
// the origin for antialiasing; ray directions come from the pixel grid.
type Camera struct {
	config CameraConfig
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	return &Camera{config: config}
}

// Center returns the unjittered camera position
func (c *Camera) Center() core.Vec3 {
	return c.config.Center
}

// SampleOrigin returns a jittered ray origin. Invoked once per
// (light, light sample) combination per pixel, not once per bounce.
func (c *Camera) SampleOrigin(sampler core.Sampler) core.Vec3 {
	if c.config.Jitter == 0 {
		return c.config.Center
	}
	offset := sampler.Get3D().
		Subtract(core.NewVec3(0.5, 0.5, 0.5)).
		Multiply(c.config.Jitter)
	return c.config.Center.Add(offset)
}
