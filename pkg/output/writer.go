// Package output serializes finished pixel buffers to image files.
package output

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// WritePNG writes a row-major grid of 24-bit RGB triples to a PNG file.
// The pixel slice must contain exactly width × height entries.
func WritePNG(path string, pixels [][3]uint8, width, height int) error {
	img, err := toImage(pixels, width, height)
	if err != nil {
		return err
	}
	return gg.NewContextForRGBA(img).SavePNG(path)
}

// WriteScaledPNG writes the pixel grid upscaled by an integer factor,
// for inspecting small renders. A factor of 1 or less writes unscaled.
func WriteScaledPNG(path string, pixels [][3]uint8, width, height, scale int) error {
	if scale <= 1 {
		return WritePNG(path, pixels, width, height)
	}
	img, err := toImage(pixels, width, height)
	if err != nil {
		return err
	}
	scaled := resize.Resize(uint(width*scale), uint(height*scale), img, resize.NearestNeighbor)
	return gg.NewContextForImage(scaled).SavePNG(path)
}

func toImage(pixels [][3]uint8, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height {
		return nil, fmt.Errorf("pixel count %d does not match dimensions %dx%d",
			len(pixels), width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			img.SetRGBA(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return img, nil
}
