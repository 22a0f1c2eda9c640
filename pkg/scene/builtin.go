package scene

import (
	"github.com/lberg/go-sphere-raytracer/pkg/core"
	"github.com/lberg/go-sphere-raytracer/pkg/geometry"
	"github.com/lberg/go-sphere-raytracer/pkg/lights"
	"github.com/lberg/go-sphere-raytracer/pkg/material"
)

// Screen coordinates put +y downward, so lights sit at negative y to hang
// above the scene. The camera looks along +z from the origin.

const (
	defaultLightRadius = 0.3
	defaultLightPower  = 200.0
)

var defaultLightColor = core.NewVec3(1, 1, 1)

// NewDefaultScene creates the default scene: three spheres over a large
// floor sphere, lit by a single overhead area light.
func NewDefaultScene(overrides ...core.RenderConfig) *Scene {
	config := core.DefaultRenderConfig()
	if len(overrides) > 0 {
		config = MergeRenderConfig(config, overrides[0])
	}

	camera := geometry.NewCamera(geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		Jitter: 0.02,
	})

	matteRed := material.NewMaterial(
		core.NewVec3(0.05, 0.01, 0.01), core.NewVec3(0.9, 0.2, 0.15), 0.25, 32)
	matteBlue := material.NewMaterial(
		core.NewVec3(0.01, 0.01, 0.05), core.NewVec3(0.2, 0.3, 0.9), 0.35, 64)
	mirror := material.NewMaterial(
		core.NewVec3(0.02, 0.02, 0.02), core.NewVec3(0.7, 0.7, 0.7), 0.85, 128)
	floor := material.NewMaterial(
		core.NewVec3(0.02, 0.02, 0.02), core.NewVec3(0.6, 0.6, 0.55), 0.1, 8)

	return &Scene{
		Camera: camera,
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0.1, 3), 0.6, matteRed),
			geometry.NewSphere(core.NewVec3(-0.9, 0.2, 3.6), 0.5, matteBlue),
			geometry.NewSphere(core.NewVec3(0.95, 0.15, 2.9), 0.45, mirror),
			geometry.NewSphere(core.NewVec3(0, 50.7, 3), 50, floor),
		},
		Lights: []lights.SphereLight{
			lights.NewSphereLight(core.NewVec3(0, -2.5, 2.5),
				defaultLightRadius, defaultLightColor, defaultLightPower),
		},
		Config: config,
	}
}

// NewMirrorsScene creates a scene of two facing mirror spheres with a
// diffuse sphere between them, lit from two sides. Exercises the
// reflection loop harder than the default scene.
func NewMirrorsScene(overrides ...core.RenderConfig) *Scene {
	config := core.DefaultRenderConfig()
	if len(overrides) > 0 {
		config = MergeRenderConfig(config, overrides[0])
	}

	camera := geometry.NewCamera(geometry.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		Jitter: 0.02,
	})

	mirror := material.NewMaterial(
		core.NewVec3(0.01, 0.01, 0.01), core.NewVec3(0.8, 0.8, 0.8), 0.95, 256)
	matteGreen := material.NewMaterial(
		core.NewVec3(0.01, 0.04, 0.01), core.NewVec3(0.2, 0.85, 0.25), 0.2, 16)

	return &Scene{
		Camera: camera,
		Spheres: []*geometry.Sphere{
			geometry.NewSphere(core.NewVec3(-1.2, 0, 3.2), 0.7, mirror),
			geometry.NewSphere(core.NewVec3(1.2, 0, 3.2), 0.7, mirror),
			geometry.NewSphere(core.NewVec3(0, 0.25, 3.5), 0.4, matteGreen),
		},
		Lights: []lights.SphereLight{
			lights.NewSphereLight(core.NewVec3(-1.5, -2, 2),
				defaultLightRadius, defaultLightColor, defaultLightPower),
			lights.NewSphereLight(core.NewVec3(1.5, -2.5, 3),
				defaultLightRadius, core.NewVec3(1, 0.9, 0.8), defaultLightPower),
		},
		Config: config,
	}
}

// MergeRenderConfig overlays the non-zero fields of override onto base.
// Boolean fields are taken from the override as-is.
func MergeRenderConfig(base, override core.RenderConfig) core.RenderConfig {
	merged := base
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.Height != 0 {
		merged.Height = override.Height
	}
	if override.LightSamples != 0 {
		merged.LightSamples = override.LightSamples
	}
	if override.MaxDepth != 0 {
		merged.MaxDepth = override.MaxDepth
	}
	if override.Bias != 0 {
		merged.Bias = override.Bias
	}
	if override.Epsilon != 0 {
		merged.Epsilon = override.Epsilon
	}
	if override.Background != (core.Vec3{}) {
		merged.Background = override.Background
	}
	merged.LegacyReflection = override.LegacyReflection
	return merged
}
