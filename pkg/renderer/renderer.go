package renderer

import (
	"fmt"

	"github.com/lberg/go-sphere-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// PoolConfig contains parallel rendering configuration
type PoolConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed for the per-tile samplers
}

// DefaultPoolConfig returns sensible default values
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		TileSize:   64,
		NumWorkers: 0,
		Seed:       42,
	}
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	AverageSamples float64 // Average samples per pixel
	Tiles          int     // Number of tiles rendered
	Workers        int     // Number of workers used
}

// Renderer drives a full render: tile the image, fan the tiles out to the
// worker pool, join, and hand back the finished pixel grid.
type Renderer struct {
	scene  Scene
	config core.RenderConfig
	pool   PoolConfig
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(scene Scene, pool PoolConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  scene,
		config: scene.GetConfig(),
		pool:   pool,
		logger: logger,
	}
}

// Render executes the render to completion and returns the pixel grid.
// All scene state is read-only during the render; each pixel is written
// only by the tile that owns it, so the only synchronization is the final
// join before returning.
func (r *Renderer) Render() ([][]Pixel, RenderStats, error) {
	width, height := r.config.Width, r.config.Height

	pixels := NewPixelGrid(width, height)
	tiles := NewTileGrid(width, height, r.pool.TileSize, r.pool.Seed)

	workerPool := NewWorkerPool(r.scene, r.pool.NumWorkers, len(tiles))
	workerPool.Start()

	r.logger.Printf("Rendering %dx%d in %d tiles using %d workers...\n",
		width, height, len(tiles), workerPool.NumWorkers())

	for i, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: i,
			Pixels: pixels,
		})
	}

	totalSamples := 0
	for range tiles {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Err != nil {
			return nil, RenderStats{}, result.Err
		}
		totalSamples += result.Samples
	}
	workerPool.Stop()

	stats := RenderStats{
		TotalPixels:    width * height,
		TotalSamples:   totalSamples,
		AverageSamples: float64(totalSamples) / float64(width*height),
		Tiles:          len(tiles),
		Workers:        workerPool.NumWorkers(),
	}
	return pixels, stats, nil
}
