package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcrete(t *testing.T) {
	tests := []struct {
		x, y int
		want Tone
	}{
		{0, 0, Light}, // (x+y)%4 == 0 wins over %3
		{1, 3, Light},
		{1, 2, Dark}, // (x+y)%3 == 0
		{3, 3, Dark},
		{1, 0, Base},
		{2, 3, Base},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Concrete(tt.x, tt.y), "Concrete(%d, %d)", tt.x, tt.y)
	}
}

// The mortar condition groups as: row-boundary OR (even-brick-row AND
// column 7) OR (odd-brick-row AND column 3). These pairs pin that grouping
// down.
func TestBrick(t *testing.T) {
	tests := []struct {
		x, y int
		want Tone
	}{
		{0, 3, Dark},  // horizontal mortar row, any column
		{5, 7, Dark},  // horizontal mortar on an odd brick row
		{7, 0, Dark},  // vertical mortar, even brick row at column 7
		{15, 1, Dark}, // column 15 ≡ 7 (mod 8)
		{3, 4, Dark},  // vertical mortar, odd brick row at column 3
		{11, 5, Dark},
		{3, 0, Base}, // column 3 is mortar only on odd brick rows
		{7, 4, Base}, // column 7 is mortar only on even brick rows
		{0, 0, Light}, // leading edge, even brick row
		{8, 1, Light},
		{4, 4, Light}, // leading edge, odd brick row
		{12, 6, Light},
		{4, 0, Base}, // column 4 highlights only on odd brick rows
		{0, 4, Base}, // column 0 highlights only on even brick rows
		{1, 1, Base},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Brick(tt.x, tt.y), "Brick(%d, %d)", tt.x, tt.y)
	}
}

func TestAsphalt(t *testing.T) {
	tests := []struct {
		x, y int
		want Tone
	}{
		{0, 7, Light}, // dashed center line
		{1, 8, Light},
		{2, 7, Base}, // gap in the dashes
		{3, 8, Base},
		{0, 0, Dark}, // (x+y*3)%7 == 0 flecks
		{4, 1, Dark},
		{1, 0, Base},
		{5, 1, Base},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Asphalt(tt.x, tt.y), "Asphalt(%d, %d)", tt.x, tt.y)
	}
}

func TestGrass(t *testing.T) {
	tests := []struct {
		x, y int
		want Tone
	}{
		{0, 0, Light}, // (x*7+y*11)%13 == 0
		{2, 0, Light}, // 14 % 13 == 1
		{4, 0, Dark},  // 28 % 13 == 2
		{6, 0, Dark},  // 42 % 13 == 3
		{1, 0, Base},  // 7
		{0, 1, Base},  // 11
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Grass(tt.x, tt.y), "Grass(%d, %d)", tt.x, tt.y)
	}
}

func TestGrassDeterministic(t *testing.T) {
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			assert.Equal(t, Grass(x, y), Grass(x, y))
		}
	}
}

func TestFill(t *testing.T) {
	p, base, dark, light := testPalette(t)

	m := image.NewRGBA(image.Rect(0, 0, 16, 16))
	Fill(m, p, Brick, base, dark, light)

	assert.Equal(t, p.Color(dark), m.RGBAAt(0, 3))
	assert.Equal(t, p.Color(light), m.RGBAAt(0, 0))
	assert.Equal(t, p.Color(base), m.RGBAAt(1, 1))
}
