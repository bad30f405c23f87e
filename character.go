package spritegen

import (
	"image"
	"image/color"

	"github.com/uhogames/spritegen/palette"
	"github.com/uhogames/spritegen/raster"
	"github.com/uhogames/spritegen/sprite"
)

const (
	frameSize          = 16
	framesPerDirection = 4

	headY = 2
	bodyY = 6
	legsY = 11
)

// characterColors holds the palette indices for each body part tone.
type characterColors struct {
	skinBase, skinShadow, skinHighlight       int
	hairBase, hairShadow, hairHighlight       int
	jacketBase, jacketShadow, jacketHighlight int
	pantsBase, pantsShadow, pantsHighlight    int
	shoes, shirt                              int
}

func addCharacterColors(p *palette.Palette) characterColors {
	return characterColors{
		skinBase:      p.AddColor(255, 220, 177),
		skinShadow:    p.AddColor(210, 180, 140),
		skinHighlight: p.AddColor(255, 240, 200),

		hairBase:      p.AddColor(101, 67, 33),
		hairShadow:    p.AddColor(70, 45, 20),
		hairHighlight: p.AddColor(140, 95, 50),

		jacketBase:      p.AddColor(72, 118, 170),
		jacketShadow:    p.AddColor(50, 85, 125),
		jacketHighlight: p.AddColor(100, 150, 200),

		pantsBase:      p.AddColor(45, 45, 60),
		pantsShadow:    p.AddColor(30, 30, 40),
		pantsHighlight: p.AddColor(65, 65, 85),

		shoes: p.AddColor(30, 30, 30),
		shirt: p.AddColor(240, 240, 240),
	}
}

// LegendaryPlayer builds the 16 frame walking sprite: four directions in
// sheet order, four animation phases each, as one horizontal strip.
func (g *Generator) LegendaryPlayer() *sprite.Sprite {
	s := sprite.New(frameSize, frameSize, "legendary_player")
	c := addCharacterColors(s.Palette())

	for _, dir := range Directions {
		for frame := 0; frame < framesPerDirection; frame++ {
			drawCharacter(s.NewFrame(), s.Palette(), dir, walkOffsets[frame], c)
		}
	}

	g.logger.Printf("Created %s with %d frames\n", s.Name(), s.Frames())

	return s
}

func drawCharacter(m *image.RGBA, p *palette.Palette, dir Direction, walkOffset int, c characterColors) {
	f := facings[dir]

	// Head
	raster.Circle(m, p, 8, headY+2, 3, c.skinBase, c.skinShadow, c.skinHighlight)

	// Hair sits on top of the head circle
	if f.backHair {
		drawHairBack(m, p, 8, headY, c)
	} else {
		drawHairFront(m, p, 8, headY, dir, c)
	}

	// Eyes are plain black, not palette entries
	eye := color.RGBA{A: 0xff}
	if f.leftEye {
		raster.SetPixel(m, 7, headY+2, eye)
	}
	if f.rightEye {
		raster.SetPixel(m, 9, headY+2, eye)
	}

	// Jacket and shirt collar
	raster.Rect(m, p, 6, bodyY, 4, 5, c.jacketBase, c.jacketShadow, c.jacketHighlight)
	raster.Rect(m, p, 7, bodyY, 2, 1, c.shirt, c.jacketShadow, c.jacketHighlight)

	// Arms
	if f.rightArm {
		raster.Rect(m, p, 10, bodyY+1, 1, 3, c.jacketBase, c.jacketShadow, c.jacketHighlight)
	}
	if f.leftArm {
		raster.Rect(m, p, 5, bodyY+1, 1, 3, c.jacketBase, c.jacketShadow, c.jacketHighlight)
	}

	// Legs bounce in opposite phase while walking
	leftLegY := legsY + walkOffset
	rightLegY := legsY - walkOffset

	raster.Rect(m, p, 6, leftLegY, 1, 4, c.pantsBase, c.pantsShadow, c.pantsHighlight)
	raster.Rect(m, p, 9, rightLegY, 1, 4, c.pantsBase, c.pantsShadow, c.pantsHighlight)

	// Shoes
	raster.SetPixel(m, 5, leftLegY+3, p.Color(c.shoes))
	raster.SetPixel(m, 6, leftLegY+3, p.Color(c.shoes))
	raster.SetPixel(m, 9, rightLegY+3, p.Color(c.shoes))
	raster.SetPixel(m, 10, rightLegY+3, p.Color(c.shoes))
}

// drawHairFront paints the asymmetric fringe. The far side is hidden when
// facing west or east, and the lit side follows the facing.
func drawHairFront(m *image.RGBA, p *palette.Palette, cx, cy int, dir Direction, c characterColors) {
	pixels := [][2]int{
		{cx - 2, cy}, {cx - 1, cy}, {cx, cy}, {cx + 1, cy}, {cx + 2, cy},
		{cx - 2, cy + 1}, {cx + 2, cy + 1},
		{cx - 1, cy + 2}, {cx + 1, cy + 2},
	}

	for _, px := range pixels {
		x, y := px[0], px[1]

		if dir == West && x > cx {
			continue
		}
		if dir == East && x < cx {
			continue
		}

		idx := c.hairBase
		switch {
		case x < cx:
			if dir != East {
				idx = c.hairShadow
			}
		case x > cx:
			if dir != West {
				idx = c.hairHighlight
			}
		}

		raster.SetPixel(m, x, y, p.Color(idx))
	}
}

// drawHairBack paints the symmetric back of the head seen when facing
// north.
func drawHairBack(m *image.RGBA, p *palette.Palette, cx, cy int, c characterColors) {
	for y := cy; y <= cy+1; y++ {
		for x := cx - 2; x <= cx+2; x++ {
			raster.SetPixel(m, x, y, p.Color(c.hairBase))
		}
	}
}
