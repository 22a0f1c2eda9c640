package renderer

import (
	"image"
	"math"

	"github.com/lberg/go-sphere-raytracer/pkg/core"
	"github.com/lberg/go-sphere-raytracer/pkg/geometry"
	"github.com/lberg/go-sphere-raytracer/pkg/lights"
)

// Scene is the view of the world the raytracer needs. Declared here to
// avoid importing the scene package.
type Scene interface {
	GetCamera() *geometry.Camera
	GetLights() []lights.SphereLight
	GetConfig() core.RenderConfig
	NearestHit(ray core.Ray) (geometry.Hit, bool)
}

// Raytracer renders pixels: camera rays, shadow tests, Blinn-Phong
// shading, and the bounded reflection loop.
type Raytracer struct {
	scene  Scene
	config core.RenderConfig
}

// NewRaytracer creates a new raytracer for the given scene
func NewRaytracer(scene Scene) *Raytracer {
	return &Raytracer{
		scene:  scene,
		config: scene.GetConfig(),
	}
}

// RenderBounds renders every pixel inside bounds into the shared grid and
// returns the number of samples taken. Bounds of concurrent calls must not
// overlap.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixels [][]Pixel, sampler core.Sampler) int {
	samples := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			samples += rt.SamplePixel(&pixels[y][x], sampler)
		}
	}
	return samples
}

// SamplePixel folds one sample per (light, light sample) combination into
// the pixel and returns the number of samples taken. With no lights there
// is no illumination path, so the pixel resolves to the background color.
func (rt *Raytracer) SamplePixel(pixel *Pixel, sampler core.Sampler) int {
	sceneLights := rt.scene.GetLights()
	if len(sceneLights) == 0 {
		pixel.Fold(rt.config.Background.ToRGB8())
		return 1
	}

	camera := rt.scene.GetCamera()
	samples := 0
	for _, light := range sceneLights {
		for i := 0; i < rt.config.LightSamples; i++ {
			lightPoint := light.SamplePoint(sampler)
			ray := core.NewRay(camera.SampleOrigin(sampler), pixel.Pos)
			color := rt.sampleColor(ray, light, lightPoint)
			pixel.Fold(color.ToRGB8())
			samples++
		}
	}
	return samples
}

// sampleColor runs the bounded intersect → shade → reflect loop for a
// single light sample. Contributions are weighted by the cumulative
// reflectiveness of the surfaces hit so far.
func (rt *Raytracer) sampleColor(ray core.Ray, light lights.SphereLight, lightPoint core.Vec3) core.Vec3 {
	var color core.Vec3
	weight := 1.0

	for bounce := 0; bounce < rt.config.MaxDepth; bounce++ {
		hit, ok := rt.scene.NearestHit(ray)
		if !ok {
			// A miss ends the sample immediately, whatever depth remains
			return color.Add(rt.config.Background.Multiply(weight))
		}

		// An occluded light point contributes black for this bounce
		if !rt.Occluded(hit, lightPoint) {
			color = color.Add(rt.Shade(hit, light).Multiply(weight))
		}

		weight *= hit.Material.Reflectiveness
		ray = core.NewRay(
			hit.Point.Add(hit.Normal.Normalize().Multiply(rt.config.Bias)),
			rt.reflectionDirection(ray, hit),
		)
	}
	return color
}

// reflectionDirection computes the next bounce direction. The physical
// mode mirrors the incoming ray direction about the surface normal; the
// legacy mode mirrors the hit point's position vector instead, matching
// the behavior of renderers that predate the fix.
func (rt *Raytracer) reflectionDirection(ray core.Ray, hit geometry.Hit) core.Vec3 {
	if rt.config.LegacyReflection {
		return hit.Point.Reflect(hit.Normal)
	}
	return ray.Direction.Normalize().Reflect(hit.Normal)
}

// Occluded reports whether any object blocks the path from the hit point
// to the sampled light point. The shadow ray starts at the hit point
// offset along the outward normal by the configured bias; its direction is
// unit length, so hit parameters are metric distances. An occluder farther
// than the light does not cast a shadow.
func (rt *Raytracer) Occluded(hit geometry.Hit, lightPoint core.Vec3) bool {
	toLight := lightPoint.Subtract(hit.Point)
	distance := toLight.Length()

	shadowRay := core.NewRay(
		hit.Point.Add(hit.Normal.Multiply(rt.config.Bias)),
		toLight.Normalize(),
	)
	occluder, ok := rt.scene.NearestHit(shadowRay)
	return ok && occluder.T < distance
}

// Shade evaluates the local Blinn-Phong model at the hit for one light:
// ambient + power·lambert·lightColor⊙diffuse/d² + power·spec·lightColor/d².
// Surfaces facing away from the light receive neither diffuse nor specular.
func (rt *Raytracer) Shade(hit geometry.Hit, light lights.SphereLight) core.Vec3 {
	toLight := light.Center.Subtract(hit.Point)
	distanceSq := toLight.LengthSquared()
	lightDir := toLight.Normalize()

	lambertian := 0.0
	specular := 0.0
	if cos := lightDir.Dot(hit.Normal); cos > 0 {
		lambertian = cos

		// The camera sits near the origin, so the view direction is the
		// negated unit hit point
		viewDir := hit.Point.Normalize().Negate()
		halfDir := lightDir.Add(viewDir).Normalize()
		if s := halfDir.Dot(hit.Normal); s > 0 {
			specular = math.Pow(s, hit.Material.Shininess)
		}
	}

	falloff := light.Power / distanceSq
	return hit.Material.Ambient.
		Add(light.Color.MultiplyVec(hit.Material.Diffuse).Multiply(lambertian * falloff)).
		Add(light.Color.Multiply(specular * falloff))
}
