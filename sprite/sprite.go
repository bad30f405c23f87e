/*
Package sprite implements the sprite sheet model and exporter.

A Sprite is a named, ordered collection of equally sized RGBA frames plus
the 16 color palette they were painted from. Frames are appended once and
never removed; their insertion order is the playback and sheet layout
order. The exporter composites frames into a single sheet image and writes
it alongside the palette metadata.
*/
package sprite

import (
	"image"
	"image/draw"

	"github.com/uhogames/spritegen/palette"
)

// Sprite is a named animation strip sharing one palette.
type Sprite struct {
	name          string
	width, height int
	palette       *palette.Palette
	frames        []*image.RGBA
}

// New returns an empty sprite. The palette starts with the transparent
// sentinel at index 0.
func New(width, height int, name string) *Sprite {
	return &Sprite{
		name:    name,
		width:   width,
		height:  height,
		palette: palette.New(name + "_palette"),
	}
}

// Name returns the sprite name used for output filenames.
func (s *Sprite) Name() string {
	return s.name
}

// Size returns the frame dimensions.
func (s *Sprite) Size() (int, int) {
	return s.width, s.height
}

// Palette returns the sprite's color accumulator.
func (s *Sprite) Palette() *palette.Palette {
	return s.palette
}

// Frames returns the number of frames added so far.
func (s *Sprite) Frames() int {
	return len(s.frames)
}

// Frame returns the i'th frame buffer, or nil if out of range.
func (s *Sprite) Frame(i int) *image.RGBA {
	if i < 0 || i >= len(s.frames) {
		return nil
	}
	return s.frames[i]
}

// NewFrame appends a blank fully transparent frame and returns it for
// drawing.
func (s *Sprite) NewFrame() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	s.frames = append(s.frames, m)
	return m
}

// Sheet composites all frames into a horizontal strip, left to right in
// insertion order. Sheet width is frame width times frame count.
func (s *Sprite) Sheet() *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, s.width*len(s.frames), s.height))
	for i, f := range s.frames {
		r := image.Rect(i*s.width, 0, (i+1)*s.width, s.height)
		draw.Draw(sheet, r, f, image.Point{}, draw.Src)
	}
	return sheet
}

// Grid composites frames into rows of cols frames each, filling left to
// right then top to bottom. The last row may be partially empty.
func (s *Sprite) Grid(cols int) *image.RGBA {
	rows := (len(s.frames) + cols - 1) / cols
	sheet := image.NewRGBA(image.Rect(0, 0, s.width*cols, s.height*rows))
	for i, f := range s.frames {
		x := (i % cols) * s.width
		y := (i / cols) * s.height
		r := image.Rect(x, y, x+s.width, y+s.height)
		draw.Draw(sheet, r, f, image.Point{}, draw.Src)
	}
	return sheet
}
