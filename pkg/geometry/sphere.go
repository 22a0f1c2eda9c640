package geometry

import (
	"math"

	"github.com/lberg/go-sphere-raytracer/pkg/core"
	"github.com/lberg/go-sphere-raytracer/pkg/material"
)

// Hit describes where and how a ray struck a sphere
type Hit struct {
	T        float64            // Parameter t along the ray
	Point    core.Vec3          // Point of intersection
	Normal   core.Vec3          // Outward unit normal at the intersection
	Material *material.Material // Material of the hit object
}

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere. Hits closer than tMin are
// rejected to guard against self-intersection.
func (s *Sphere) Hit(ray core.Ray, tMin float64) (Hit, bool) {
	// Quadratic equation coefficients: at² + 2(half_b)t + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	// Tangent rays (discriminant == 0) count as misses
	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return Hit{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	near := (-halfB - sqrtD) / a
	far := (-halfB + sqrtD) / a

	// Both roots must be strictly positive: a ray whose origin lies inside
	// the sphere does not register a hit.
	if near <= 0 || far <= 0 {
		return Hit{}, false
	}
	if near < tMin {
		return Hit{}, false
	}

	point := ray.At(near)
	return Hit{
		T:        near,
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		Material: s.Material,
	}, true
}
