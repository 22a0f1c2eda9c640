// Package material defines the Blinn-Phong surface description used by
// scene objects.
package material

import "github.com/lberg/go-sphere-raytracer/pkg/core"

// Material describes how a surface responds to light
type Material struct {
	Ambient        core.Vec3 // Base color applied regardless of lighting
	Diffuse        core.Vec3 // Lambertian reflectance color
	Reflectiveness float64   // Mirror contribution per bounce, in [0,1]
	Shininess      float64   // Blinn-Phong specular exponent, > 0
}

// NewMaterial creates a new Blinn-Phong material
func NewMaterial(ambient, diffuse core.Vec3, reflectiveness, shininess float64) *Material {
	return &Material{
		Ambient:        ambient,
		Diffuse:        diffuse,
		Reflectiveness: reflectiveness,
		Shininess:      shininess,
	}
}
