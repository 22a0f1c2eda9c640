package core

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width            int     // Image width in pixels
	Height           int     // Image height in pixels
	LightSamples     int     // Stochastic samples taken per light per pixel
	MaxDepth         int     // Maximum reflection bounces per light sample
	Bias             float64 // Surface offset along the normal to avoid shadow acne
	Epsilon          float64 // Minimum accepted hit distance
	Background       Vec3    // Color for rays that escape the scene
	LegacyReflection bool    // Reflect the hit point vector instead of the incoming ray direction
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:        400,
		Height:       400,
		LightSamples: 2,
		MaxDepth:     3,
		Bias:         0.03,
		Epsilon:      1e-5,
		Background:   NewVec3(0.08, 0.082, 0.08),
	}
}
