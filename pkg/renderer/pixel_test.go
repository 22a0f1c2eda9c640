package renderer

import (
	"testing"

	"github.com/lberg/go-sphere-raytracer/pkg/core"
)

func TestPixel_Fold_RunningAverage(t *testing.T) {
	var p Pixel

	p.Fold([3]uint8{10, 10, 10})
	p.Fold([3]uint8{20, 20, 20})
	mean := p.Fold([3]uint8{30, 30, 30})

	if mean != [3]uint8{20, 20, 20} {
		t.Errorf("Expected mean (20,20,20), got %v", mean)
	}
	if p.SampleCount() != 3 {
		t.Errorf("Expected 3 samples, got %d", p.SampleCount())
	}
}

func TestPixel_Fold_StableOverManySamples(t *testing.T) {
	// Bounded by lights × light samples; a few hundred folds of the same
	// value must not drift
	var p Pixel
	for i := 0; i < 400; i++ {
		if mean := p.Fold([3]uint8{200, 100, 50}); mean != [3]uint8{200, 100, 50} {
			t.Fatalf("Mean drifted to %v after %d folds", mean, i+1)
		}
	}
}

func TestNewPixelGrid_ScreenCoordinates(t *testing.T) {
	grid := NewPixelGrid(4, 4)

	if len(grid) != 4 || len(grid[0]) != 4 {
		t.Fatalf("Expected 4x4 grid, got %dx%d", len(grid), len(grid[0]))
	}

	tests := []struct {
		name     string
		x, y     int
		expected core.Vec3
	}{
		{"top-left corner", 0, 0, core.NewVec3(-0.5, -0.5, 1)},
		{"center", 2, 2, core.NewVec3(0, 0, 1)},
		{"last column", 3, 1, core.NewVec3(0.25, -0.25, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := grid[tt.y][tt.x].Pos
			if pos.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.expected, pos)
			}
		})
	}
}

func TestFlatten_RowMajor(t *testing.T) {
	grid := NewPixelGrid(2, 2)
	grid[0][0].Fold([3]uint8{1, 1, 1})
	grid[0][1].Fold([3]uint8{2, 2, 2})
	grid[1][0].Fold([3]uint8{3, 3, 3})
	grid[1][1].Fold([3]uint8{4, 4, 4})

	flat := Flatten(grid)
	expected := [][3]uint8{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {4, 4, 4}}
	if len(flat) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(flat))
	}
	for i := range expected {
		if flat[i] != expected[i] {
			t.Errorf("Entry %d: expected %v, got %v", i, expected[i], flat[i])
		}
	}
}
