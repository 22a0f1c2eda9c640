// Package lights provides the spherical area light used for soft shadows.
package lights

import "github.com/lberg/go-sphere-raytracer/pkg/core"

// SphereLight is a spherical area light. Shadow rays aim at stochastically
// sampled points on its surface, which approximates penumbra.
type SphereLight struct {
	Center core.Vec3 // Light position
	Radius float64   // Radius of the sampled sphere
	Color  core.Vec3 // Emission color
	Power  float64   // Intensity before inverse-square falloff
}

// NewSphereLight creates a new spherical area light
func NewSphereLight(center core.Vec3, radius float64, color core.Vec3, power float64) SphereLight {
	return SphereLight{
		Center: center,
		Radius: radius,
		Color:  color,
		Power:  power,
	}
}

// SamplePoint returns a random point on the light's surface
func (l SphereLight) SamplePoint(sampler core.Sampler) core.Vec3 {
	direction := sampler.Get3D().Normalize()
	return l.Center.Add(direction.Multiply(l.Radius))
}
