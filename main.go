package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lberg/go-sphere-raytracer/pkg/core"
	"github.com/lberg/go-sphere-raytracer/pkg/output"
	"github.com/lberg/go-sphere-raytracer/pkg/renderer"
	"github.com/lberg/go-sphere-raytracer/pkg/scene"
)

func createScene(sceneType string, config core.RenderConfig) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(config), nil
	case "mirrors":
		return scene.NewMirrorsScene(config), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'mirrors'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	samples := flag.Int("samples", 2, "Light samples per light per pixel")
	depth := flag.Int("depth", 3, "Maximum reflection depth")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base random seed")
	scale := flag.Int("scale", 1, "Integer upscale factor for the output image")
	outDir := flag.String("output", "output", "Output directory")
	legacyReflection := flag.Bool("legacy-reflection", false,
		"Reflect the hit point vector instead of the ray direction")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Raytracer")
		fmt.Println("Usage: sphere-raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three spheres over a floor with one overhead light")
		fmt.Println("  mirrors - Facing mirror spheres with two lights")
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene_type>/render_<timestamp>.png")
		return
	}

	config := core.DefaultRenderConfig()
	config.Width = *width
	config.Height = *height
	config.LightSamples = *samples
	config.MaxDepth = *depth
	config.LegacyReflection = *legacyReflection

	selectedScene, err := createScene(*sceneType, config)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	if err := selectedScene.Validate(); err != nil {
		fmt.Printf("Invalid scene: %v\n", err)
		os.Exit(1)
	}

	outputDir := filepath.Join(*outDir, *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	poolConfig := renderer.DefaultPoolConfig()
	poolConfig.NumWorkers = *workers
	poolConfig.Seed = *seed

	r := renderer.NewRenderer(selectedScene, poolConfig, renderer.NewDefaultLogger())

	startTime := time.Now()
	pixels, stats, err := r.Render()
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Samples per pixel: %.1f (%d tiles, %d workers)\n",
		stats.AverageSamples, stats.Tiles, stats.Workers)

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	// The render is already complete in memory, so a write failure is
	// reported but does not abort.
	if err := output.WriteScaledPNG(filename, renderer.Flatten(pixels), config.Width, config.Height, *scale); err != nil {
		fmt.Printf("Error writing file %q: %v\n", filename, err)
		return
	}

	fmt.Printf("Render saved as %s\n", filename)
}
