package spritegen

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/uhogames/spritegen/palette"
	"github.com/uhogames/spritegen/raster"
	"github.com/uhogames/spritegen/sprite"
)

const playerScale = 4

// Player builds the basic outlined player sprite: the same 16 walking
// frames as the legendary strip but drawn in the flat, black-outlined
// style used during prototyping. Laid out as a 4 by 4 grid, one direction
// per row.
func (g *Generator) Player() *sprite.Sprite {
	s := sprite.New(frameSize, frameSize, "player")
	p := s.Palette()

	skin := p.AddColor(255, 220, 177)
	hair := p.AddColor(101, 67, 33)
	jacket := p.AddColor(72, 118, 170)
	pants := p.AddColor(45, 45, 60)
	shoes := p.AddColor(30, 30, 30)
	shirt := p.AddColor(240, 240, 240)
	outline := p.AddColor(20, 20, 20)

	for _, dir := range Directions {
		for frame := 0; frame < framesPerDirection; frame++ {
			m := s.NewFrame()
			drawOutlinedCharacter(m, p, dir, walkOffsets[frame],
				skin, hair, jacket, pants, shoes, shirt, outline)
		}
	}

	g.logger.Printf("Created %s with %d frames\n", s.Name(), s.Frames())

	return s
}

func drawOutlinedCharacter(m *image.RGBA, p *palette.Palette, dir Direction, walkOffset int,
	skin, hair, jacket, pants, shoes, shirt, outline int) {
	f := facings[dir]

	// Head, with the fringe drawn over its top rows
	raster.Ellipse(m, p.Color(skin), p.Color(outline), 6, headY, 10, headY+4)
	fillBox(m, p, hair, 5, headY-1, 11, headY+1)

	if f.leftEye {
		raster.SetPixel(m, 7, headY+2, p.Color(outline))
	}
	if f.rightEye {
		raster.SetPixel(m, 9, headY+2, p.Color(outline))
	}

	// Jacket with shirt collar
	outlineBox(m, p, jacket, outline, 5, bodyY, 11, bodyY+5)
	fillBox(m, p, shirt, 6, bodyY+1, 10, bodyY+2)

	if f.rightArm {
		outlineBox(m, p, jacket, outline, 11, bodyY+1, 12, bodyY+4)
	}
	if f.leftArm {
		outlineBox(m, p, jacket, outline, 4, bodyY+1, 5, bodyY+4)
	}

	leftLegY := legsY + walkOffset
	rightLegY := legsY - walkOffset

	outlineBox(m, p, pants, outline, 6, leftLegY, 7, leftLegY+4)
	outlineBox(m, p, pants, outline, 9, rightLegY, 10, rightLegY+4)

	fillBox(m, p, shoes, 5, leftLegY+3, 8, leftLegY+4)
	fillBox(m, p, shoes, 8, rightLegY+3, 11, rightLegY+4)
}

// fillBox fills the inclusive box (x0,y0)-(x1,y1) with one palette color.
func fillBox(m *image.RGBA, p *palette.Palette, idx, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			raster.SetPixel(m, x, y, p.Color(idx))
		}
	}
}

// outlineBox fills the inclusive box and traces its border with the
// outline color.
func outlineBox(m *image.RGBA, p *palette.Palette, fill, outline, x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			idx := fill
			if x == x0 || x == x1 || y == y0 || y == y1 {
				idx = outline
			}
			raster.SetPixel(m, x, y, p.Color(idx))
		}
	}
}

// SavePlayer writes the basic player sheet as a 64 by 64 grid plus a 256
// by 256 nearest-neighbor preview, and records the sheet in the catalog.
func (g *Generator) SavePlayer(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	s := g.Player()
	sheet := s.Grid(framesPerDirection)

	path := filepath.Join(dir, s.Name()+".png")
	if err := writePNG(path, sheet); err != nil {
		return err
	}
	g.logger.Printf("Created player sheet at %s\n", path)

	large := filepath.Join(dir, s.Name()+"-large.png")
	if err := writePNG(large, sprite.Scale(sheet, playerScale)); err != nil {
		return err
	}
	g.logger.Printf("Created large preview at %s\n", large)

	crc, err := crcFile(path)
	if err != nil {
		return err
	}

	w, h := s.Size()

	return g.db.Put(Asset{
		Name:   s.Name(),
		Path:   path,
		CRC:    crc,
		Width:  w,
		Height: h,
		Frames: s.Frames(),
	})
}

func writePNG(path string, m image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, m)
}
