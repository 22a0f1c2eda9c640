package renderer

import (
	"testing"

	"github.com/lberg/go-sphere-raytracer/pkg/core"
	"github.com/lberg/go-sphere-raytracer/pkg/geometry"
	"github.com/lberg/go-sphere-raytracer/pkg/lights"
	"github.com/lberg/go-sphere-raytracer/pkg/material"
	"github.com/lberg/go-sphere-raytracer/pkg/scene"
)

func testConfig() core.RenderConfig {
	return core.RenderConfig{
		Width:        4,
		Height:       4,
		LightSamples: 1,
		MaxDepth:     2,
		Bias:         0.03,
		Epsilon:      1e-5,
		Background:   core.NewVec3(0.08, 0.082, 0.08),
	}
}

func newTestScene(config core.RenderConfig, spheres []*geometry.Sphere, sceneLights []lights.SphereLight) *scene.Scene {
	return &scene.Scene{
		Camera:  geometry.NewCamera(geometry.CameraConfig{Center: core.NewVec3(0, 0, 0)}),
		Spheres: spheres,
		Lights:  sceneLights,
		Config:  config,
	}
}

func TestRaytracer_Shade_DirectIllumination(t *testing.T) {
	mat := material.NewMaterial(
		core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.5, 0.5, 0.5), 0, 10)
	rt := NewRaytracer(newTestScene(testConfig(), nil, nil))

	// Surface point straight ahead, normal facing both the camera and a
	// light at the origin 4 units away: lambertian and specular are both 1
	hit := geometry.Hit{
		T:        4,
		Point:    core.NewVec3(0, 0, 4),
		Normal:   core.NewVec3(0, 0, -1),
		Material: mat,
	}
	light := lights.NewSphereLight(core.NewVec3(0, 0, 0), 0.3, core.NewVec3(1, 1, 1), 16)

	// falloff = 16/16 = 1, so color = ambient + diffuse + specular
	color := rt.Shade(hit, light)
	expected := core.NewVec3(1.6, 1.6, 1.6)
	if color.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestRaytracer_Shade_FacingAway(t *testing.T) {
	mat := material.NewMaterial(
		core.NewVec3(0.1, 0.2, 0.3), core.NewVec3(0.5, 0.5, 0.5), 0, 10)
	rt := NewRaytracer(newTestScene(testConfig(), nil, nil))
	light := lights.NewSphereLight(core.NewVec3(0, 0, 0), 0.3, core.NewVec3(1, 1, 1), 200)

	tests := []struct {
		name   string
		normal core.Vec3
	}{
		{"normal away from light", core.NewVec3(0, 0, 1)},
		{"normal perpendicular to light", core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := geometry.Hit{
				T:        4,
				Point:    core.NewVec3(0, 0, 4),
				Normal:   tt.normal,
				Material: mat,
			}
			// No diffuse and no specular, only ambient survives
			color := rt.Shade(hit, light)
			if color.Subtract(mat.Ambient).Length() > 1e-9 {
				t.Errorf("Expected ambient-only %v, got %v", mat.Ambient, color)
			}
		})
	}
}

func TestRaytracer_Occluded(t *testing.T) {
	mat := material.NewMaterial(
		core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.5, 0.5, 0.5), 0, 10)

	// Surface point on the front of a sphere behind it, light at the origin
	hit := geometry.Hit{
		T:        4,
		Point:    core.NewVec3(0, 0, 4),
		Normal:   core.NewVec3(0, 0, -1),
		Material: mat,
	}
	lightPoint := core.NewVec3(0, 0, 0)

	tests := []struct {
		name     string
		blocker  *geometry.Sphere
		expected bool
	}{
		{
			name:     "blocker between point and light casts shadow",
			blocker:  geometry.NewSphere(core.NewVec3(0, 0, 2), 0.5, mat),
			expected: true,
		},
		{
			name:     "blocker beyond the light does not cast shadow",
			blocker:  geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, mat),
			expected: false,
		},
		{
			name:     "blocker off the shadow ray does not cast shadow",
			blocker:  geometry.NewSphere(core.NewVec3(2, 0, 2), 0.5, mat),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := NewRaytracer(newTestScene(testConfig(),
				[]*geometry.Sphere{tt.blocker}, nil))
			if got := rt.Occluded(hit, lightPoint); got != tt.expected {
				t.Errorf("Expected occluded=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRaytracer_ReflectionDirection(t *testing.T) {
	mat := material.NewMaterial(
		core.NewVec3(0, 0, 0), core.NewVec3(0.5, 0.5, 0.5), 1, 10)
	hit := geometry.Hit{
		T:        2,
		Point:    core.NewVec3(0, 1, 2),
		Normal:   core.NewVec3(0, 0, -1),
		Material: mat,
	}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1))

	physical := testConfig()
	rtPhysical := NewRaytracer(newTestScene(physical, nil, nil))
	if got := rtPhysical.reflectionDirection(ray, hit); got.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Physical mode: expected (0,0,-1), got %v", got)
	}

	legacy := testConfig()
	legacy.LegacyReflection = true
	rtLegacy := NewRaytracer(newTestScene(legacy, nil, nil))
	if got := rtLegacy.reflectionDirection(ray, hit); got.Subtract(core.NewVec3(0, 1, -2)).Length() > 1e-9 {
		t.Errorf("Legacy mode: expected (0,1,-2), got %v", got)
	}
}

// The two reflection modes diverge once the ray origin leaves the camera:
// a mirror bounce lands on a different target sphere in each mode.
func TestRaytracer_ReflectionModes_Diverge(t *testing.T) {
	mirror := material.NewMaterial(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), 1, 10)
	redTarget := material.NewMaterial(
		core.NewVec3(0.5, 0, 0), core.NewVec3(0, 0, 0), 0, 10)
	greenTarget := material.NewMaterial(
		core.NewVec3(0, 0.5, 0), core.NewVec3(0, 0, 0), 0, 10)

	spheres := []*geometry.Sphere{
		// First bounce for both modes
		geometry.NewSphere(core.NewVec3(0, 1, 3), 1, mirror),
		// Only the physical reflection reaches this one
		geometry.NewSphere(core.NewVec3(0, 1, -3), 0.5, redTarget),
		// Only the legacy reflection reaches this one
		geometry.NewSphere(core.NewVec3(0, 3, -2.03), 0.5, greenTarget),
	}
	// Distant dim light so shading is dominated by the target ambients
	light := lights.NewSphereLight(core.NewVec3(0, -50, 0), 0.001, core.NewVec3(1, 1, 1), 1e-6)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1))

	physical := testConfig()
	rtPhysical := NewRaytracer(newTestScene(physical, spheres, []lights.SphereLight{light}))
	colorPhysical := rtPhysical.sampleColor(ray, light, light.Center)

	legacy := testConfig()
	legacy.LegacyReflection = true
	rtLegacy := NewRaytracer(newTestScene(legacy, spheres, []lights.SphereLight{light}))
	colorLegacy := rtLegacy.sampleColor(ray, light, light.Center)

	if colorPhysical.X < 0.4 || colorPhysical.Y > 0.1 {
		t.Errorf("Physical mode should see the red target, got %v", colorPhysical)
	}
	if colorLegacy.Y < 0.4 || colorLegacy.X > 0.1 {
		t.Errorf("Legacy mode should see the green target, got %v", colorLegacy)
	}
}

func TestRaytracer_SampleColor_MissIsBackground(t *testing.T) {
	config := testConfig()
	rt := NewRaytracer(newTestScene(config, nil, nil))
	light := lights.NewSphereLight(core.NewVec3(0, -2, 0), 0.3, core.NewVec3(1, 1, 1), 200)

	color := rt.sampleColor(
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
		light, light.Center)
	if color.Subtract(config.Background).Length() > 1e-9 {
		t.Errorf("Expected background %v, got %v", config.Background, color)
	}
}

func TestRaytracer_SampleColor_ReflectionWeights(t *testing.T) {
	// A single mirror of reflectiveness 0.5 facing empty space: the sample
	// is the first-bounce shade plus 0.5 × background from the escaping
	// reflection
	config := testConfig()
	mirror := material.NewMaterial(
		core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0, 0, 0), 0.5, 10)
	spheres := []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1, mirror),
	}
	// Dim light: shading contributes only the ambient term within tolerance
	light := lights.NewSphereLight(core.NewVec3(0, -50, 0), 0.001, core.NewVec3(1, 1, 1), 1e-6)

	rt := NewRaytracer(newTestScene(config, spheres, []lights.SphereLight{light}))
	color := rt.sampleColor(
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
		light, light.Center)

	expected := mirror.Ambient.Add(config.Background.Multiply(0.5))
	if color.Subtract(expected).Length() > 1e-3 {
		t.Errorf("Expected ~%v, got %v", expected, color)
	}
}

func TestRaytracer_SamplePixel_NoLights(t *testing.T) {
	config := testConfig()
	spheres := []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, 3), 1,
			material.NewMaterial(core.NewVec3(0.5, 0, 0), core.NewVec3(1, 0, 0), 0, 10)),
	}
	rt := NewRaytracer(newTestScene(config, spheres, nil))

	pixel := &Pixel{Pos: core.NewVec3(0, 0, 1)}
	samples := rt.SamplePixel(pixel, core.NewSeededSampler(1))

	if samples != 1 {
		t.Errorf("Expected a single background sample, got %d", samples)
	}
	if pixel.RGB8() != config.Background.ToRGB8() {
		t.Errorf("Expected background %v, got %v", config.Background.ToRGB8(), pixel.RGB8())
	}
}
