package raster

import (
	"image"

	"github.com/uhogames/spritegen/palette"
)

// Tone classifies a dithered pixel relative to the material's base color.
type Tone int

const (
	Base Tone = iota
	Dark
	Light
)

// Pattern is a deterministic texture: a pure function of pixel coordinates.
type Pattern func(x, y int) Tone

// Concrete is a diagonal speckle: every fourth diagonal is light, the
// remaining third diagonals dark.
func Concrete(x, y int) Tone {
	switch {
	case (x+y)%4 == 0:
		return Light
	case (x+y)%3 == 0:
		return Dark
	default:
		return Base
	}
}

// Brick draws 8 by 4 bricks with staggered mortar. Horizontal mortar runs
// on every fourth row; vertical mortar alternates between columns 7 and 3
// on even and odd brick rows. The highlight sits on the leading edge of
// each brick. The grouping of the mortar condition is deliberate:
// row-boundary OR (even-brick-row AND column 7) OR (odd-brick-row AND
// column 3).
func Brick(x, y int) Tone {
	switch {
	case y%4 == 3 || ((y/4)%2 == 0 && x%8 == 7) || ((y/4)%2 == 1 && x%8 == 3):
		return Dark
	case (x%8 == 0 && (y/4)%2 == 0) || (x%8 == 4 && (y/4)%2 == 1):
		return Light
	default:
		return Base
	}
}

// Asphalt scatters dark flecks over the base tone. Rows 7 and 8 belong to
// the road marking and are handled by the tileset, which substitutes the
// line color for Light there.
func Asphalt(x, y int) Tone {
	if y == 7 || y == 8 {
		if x%4 < 2 {
			return Light
		}
		return Base
	}
	if (x+y*3)%7 == 0 {
		return Dark
	}
	return Base
}

// Grass hashes the coordinates into blades: two in thirteen pixels are
// light, three more are dark.
func Grass(x, y int) Tone {
	switch v := (x*7 + y*11) % 13; {
	case v < 2:
		return Light
	case v < 5:
		return Dark
	default:
		return Base
	}
}

// Fill paints the whole frame with a pattern, resolving each tone through
// the palette.
func Fill(m *image.RGBA, p *palette.Palette, pat Pattern, base, dark, light int) {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			idx := base
			switch pat(x, y) {
			case Dark:
				idx = dark
			case Light:
				idx = light
			}
			SetPixel(m, x, y, p.Color(idx))
		}
	}
}
