package sprite

import (
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/uhogames/spritegen/palette"
)

// Metadata is the palette record written alongside each sheet.
type Metadata struct {
	Name   string        `json:"name"`
	Colors []palette.RGB `json:"colors"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Frames int           `json:"frames"`
}

// Save writes the record as <name>_palette.json in dir, overwriting any
// existing file.
func (md Metadata) Save(dir string) error {
	b, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, md.Name+"_palette.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(b)
	return err
}

// Save writes the sprite sheet as <name>.png and the palette as
// <name>_palette.json in dir, creating the directory if necessary and
// overwriting any existing files.
func (s *Sprite) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, s.name+".png"))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, s.Sheet()); err != nil {
		return err
	}

	return s.savePalette(dir)
}

func (s *Sprite) savePalette(dir string) error {
	return Metadata{
		Name:   s.name,
		Colors: s.palette.Colors(),
		Width:  s.width,
		Height: s.height,
		Frames: len(s.frames),
	}.Save(dir)
}

// EncodePaletted writes m to w as a paletted PNG using cp. If cp is nil or
// holds more than palette.MaxColors entries the image is median-cut
// quantized down to palette.MaxColors colors first.
func EncodePaletted(w io.Writer, m image.Image, cp color.Palette) error {
	b := m.Bounds()

	if cp == nil || len(cp) > palette.MaxColors {
		q := quantize.MedianCutQuantizer{}
		cp = q.Quantize(make(color.Palette, 0, palette.MaxColors), m)
	}

	pm := image.NewPaletted(b, cp)
	draw.Draw(pm, b, m, b.Min, draw.Src)

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		pm.Rect = pm.Rect.Sub(pm.Rect.Min)
	}

	return png.Encode(w, pm)
}
