package renderer

import "github.com/lberg/go-sphere-raytracer/pkg/core"

// Pixel is one output cell: a fixed normalized screen-space position
// assigned at grid construction, and the running average of every 8-bit
// color sample folded into it. Each pixel is written only by the tile
// that owns it.
type Pixel struct {
	Pos   core.Vec3 // Normalized screen position on the focal plane (z = 1)
	mean  core.Vec3 // Running mean in 8-bit channel space
	count int
}

// Fold merges an 8-bit color sample into the running average and returns
// the updated mean: newAvg = oldAvg + (sample - oldAvg) / n.
func (p *Pixel) Fold(sample [3]uint8) [3]uint8 {
	p.count++
	s := core.NewVec3(float64(sample[0]), float64(sample[1]), float64(sample[2]))
	p.mean = p.mean.Add(s.Subtract(p.mean).Multiply(1.0 / float64(p.count)))
	return p.RGB8()
}

// RGB8 returns the current averaged color truncated to 8 bits per channel
func (p *Pixel) RGB8() [3]uint8 {
	return [3]uint8{uint8(p.mean.X), uint8(p.mean.Y), uint8(p.mean.Z)}
}

// SampleCount returns the number of samples folded so far
func (p *Pixel) SampleCount() int {
	return p.count
}

// NewPixelGrid creates the height × width pixel grid. Pixel (x, y) sits at
// screen coordinate ((x - width/2)/width, (y - height/2)/height) on the
// z = 1 focal plane.
func NewPixelGrid(width, height int) [][]Pixel {
	halfW := float64(width) / 2
	halfH := float64(height) / 2

	grid := make([][]Pixel, height)
	for y := range grid {
		row := make([]Pixel, width)
		for x := range row {
			row[x] = Pixel{Pos: core.NewVec3(
				(float64(x)-halfW)/float64(width),
				(float64(y)-halfH)/float64(height),
				1,
			)}
		}
		grid[y] = row
	}
	return grid
}

// Flatten converts the pixel grid to row-major 8-bit triples for the
// image writer.
func Flatten(pixels [][]Pixel) [][3]uint8 {
	if len(pixels) == 0 {
		return nil
	}
	width := len(pixels[0])
	flat := make([][3]uint8, 0, len(pixels)*width)
	for y := range pixels {
		for x := range pixels[y] {
			flat = append(flat, pixels[y][x].RGB8())
		}
	}
	return flat
}
