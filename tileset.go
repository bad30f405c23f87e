package spritegen

import (
	"github.com/uhogames/spritegen/raster"
	"github.com/uhogames/spritegen/sprite"
)

// UrbanTiles builds the four environment tiles as one strip: concrete
// floor, brick wall, asphalt road and grass patch, in that order.
func (g *Generator) UrbanTiles() *sprite.Sprite {
	s := sprite.New(frameSize, frameSize, "urban_tiles")
	p := s.Palette()

	concreteBase := p.AddColor(128, 128, 128)
	concreteDark := p.AddColor(96, 96, 96)
	concreteLight := p.AddColor(160, 160, 160)

	brickBase := p.AddColor(180, 100, 80)
	brickDark := p.AddColor(140, 70, 50)
	brickLight := p.AddColor(220, 140, 120)

	asphaltBase := p.AddColor(64, 64, 64)
	asphaltDark := p.AddColor(32, 32, 32)

	yellowLine := p.AddColor(255, 255, 0)
	p.AddColor(255, 255, 255) // curb paint, kept in the palette for map tooling

	grassBase := p.AddColor(64, 128, 64)
	grassDark := p.AddColor(32, 96, 32)
	grassLight := p.AddColor(96, 160, 96)

	raster.Fill(s.NewFrame(), p, raster.Concrete, concreteBase, concreteDark, concreteLight)
	raster.Fill(s.NewFrame(), p, raster.Brick, brickBase, brickDark, brickLight)

	// The asphalt pattern reports its dashed center line as Light
	raster.Fill(s.NewFrame(), p, raster.Asphalt, asphaltBase, asphaltDark, yellowLine)

	raster.Fill(s.NewFrame(), p, raster.Grass, grassBase, grassDark, grassLight)

	g.logger.Printf("Created %s with %d tiles\n", s.Name(), s.Frames())

	return s
}

// Legendary generates the legendary player strip and the urban tileset
// into dir, writing each sheet plus its palette metadata and recording
// both in the catalog.
func (g *Generator) Legendary(dir string) error {
	for _, s := range []*sprite.Sprite{g.LegendaryPlayer(), g.UrbanTiles()} {
		if err := s.Save(dir); err != nil {
			return err
		}
		if err := g.record(s, dir); err != nil {
			return err
		}
	}
	return nil
}
