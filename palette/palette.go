/*
Package palette implements the 16 color palettes used by generated sprite
sheets.

Colors are quantized to 5 bits per channel on insertion, matching 16-bit
console color depth. A palette holds at most 16 entries; once full it is
effectively read-only and further colors resolve to the nearest stored
entry by Euclidean distance in RGB space. Index 0 is conventionally the
transparent black sentinel and is installed by New.
*/
package palette

import (
	"image/color"
)

// MaxColors is the capacity of a single palette.
const MaxColors = 16

// RGB is one palette entry. Channel values are already quantized.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Palette accumulates quantized colors for one sprite or tileset.
type Palette struct {
	name   string
	colors []RGB
}

// New returns a palette with the transparent black sentinel at index 0.
func New(name string) *Palette {
	p := &Palette{
		name:   name,
		colors: make([]RGB, 0, MaxColors),
	}
	p.AddColor(0, 0, 0)
	return p
}

// Name returns the palette name as written to metadata.
func (p *Palette) Name() string {
	return p.name
}

// Len returns the number of stored colors, never more than MaxColors.
func (p *Palette) Len() int {
	return len(p.colors)
}

func quantize(c uint8) uint8 {
	return c >> 3 << 3
}

// AddColor quantizes the color and returns its palette index. An already
// stored color returns its existing index. Once the palette is full the
// nearest stored color is returned instead and nothing is added.
func (p *Palette) AddColor(r, g, b uint8) int {
	c := RGB{quantize(r), quantize(g), quantize(b)}

	for i, e := range p.colors {
		if e == c {
			return i
		}
	}

	if len(p.colors) < MaxColors {
		p.colors = append(p.colors, c)
		return len(p.colors) - 1
	}

	return p.Nearest(c.R, c.G, c.B)
}

// Nearest returns the index of the stored color closest to the given one by
// Euclidean distance in RGB space. Ties go to the lowest index.
func (p *Palette) Nearest(r, g, b uint8) int {
	best := 0
	bestDist := int64(1) << 62

	for i, e := range p.colors {
		dr := int64(r) - int64(e.R)
		dg := int64(g) - int64(e.G)
		db := int64(b) - int64(e.B)
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			bestDist, best = d, i
		}
	}

	return best
}

// Color resolves an index to an opaque color. Index 0 resolves to fully
// transparent black.
func (p *Palette) Color(i int) color.RGBA {
	if i <= 0 || i >= len(p.colors) {
		return color.RGBA{}
	}
	e := p.colors[i]
	return color.RGBA{e.R, e.G, e.B, 0xff}
}

// Colors returns a copy of the stored entries in insertion order.
func (p *Palette) Colors() []RGB {
	return append(p.colors[:0:0], p.colors...)
}

// FromColors converts a standard library palette into metadata entries,
// dropping alpha.
func FromColors(cp color.Palette) []RGB {
	out := make([]RGB, len(cp))
	for i, c := range cp {
		r, g, b, _ := c.RGBA()
		out[i] = RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	}
	return out
}

// ColorPalette converts to the standard library palette type for paletted
// image encoding. Index 0 becomes transparent.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, len(p.colors))
	for i := range p.colors {
		cp[i] = p.Color(i)
	}
	return cp
}
