/*
Package raster implements the small set of drawing primitives used to paint
sprite frames: bounds-safe pixel writes, three-tone shaded circles and
rectangles, and the deterministic dither patterns used by tilesets.

Every write is checked against the frame bounds and silently dropped when
out of range, so callers can draw shapes that overhang the canvas without
clipping them first.
*/
package raster

import (
	"image"
	"image/color"

	"github.com/uhogames/spritegen/palette"
)

// SetPixel writes one opaque pixel, ignoring coordinates outside the frame.
func SetPixel(m *image.RGBA, x, y int, c color.RGBA) {
	b := m.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	m.SetRGBA(x, y, c)
}

// Circle paints a filled circle with three-tone directional shading. The
// light comes from the top left: each pixel's light factor is
// (-dx-dy)/(2r), classified as highlight above 0.3, shadow below -0.3 and
// the base tone in between.
func Circle(m *image.RGBA, p *palette.Palette, cx, cy, r int, base, shadow, highlight int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r*r {
				continue
			}

			light := float64(-dx-dy) / float64(r*2)

			idx := base
			switch {
			case light > 0.3:
				idx = highlight
			case light < -0.3:
				idx = shadow
			}

			SetPixel(m, x, y, p.Color(idx))
		}
	}
}

// Rect paints a filled rectangle with a one pixel bevel: top and left edges
// take the highlight tone, bottom and right edges the shadow tone, the
// interior the base tone. Top/left wins where edges meet.
func Rect(m *image.RGBA, p *palette.Palette, x, y, w, h int, base, shadow, highlight int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			idx := base
			switch {
			case px == x || py == y:
				idx = highlight
			case px == x+w-1 || py == y+h-1:
				idx = shadow
			}

			SetPixel(m, px, py, p.Color(idx))
		}
	}
}

// Ellipse paints a filled axis-aligned ellipse over the inclusive bounding
// box (x0,y0)-(x1,y1), with an optional one pixel outline color.
func Ellipse(m *image.RGBA, fill, outline color.RGBA, x0, y0, x1, y1 int) {
	// Work in half-pixel units so even-sized boxes center correctly.
	cx := x0 + x1
	cy := y0 + y1
	rx := x1 - x0
	ry := y1 - y0
	if rx == 0 || ry == 0 {
		return
	}

	inside := func(x, y int) bool {
		dx := 2*x - cx
		dy := 2*y - cy
		return dx*dx*ry*ry+dy*dy*rx*rx <= rx*rx*ry*ry
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !inside(x, y) {
				continue
			}
			edge := !inside(x-1, y) || !inside(x+1, y) || !inside(x, y-1) || !inside(x, y+1)
			if edge && outline.A != 0 {
				SetPixel(m, x, y, outline)
			} else {
				SetPixel(m, x, y, fill)
			}
		}
	}
}
