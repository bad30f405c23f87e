package spritegen

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/uhogames/spritegen/palette"
	"github.com/uhogames/spritegen/sprite"
)

// ImportImage reduces an arbitrary image to a 16 color paletted PNG in
// dir, named after the source file, with the palette metadata alongside.
// The reduced palette is ordered darkest first so imports are stable under
// re-encoding.
func (g *Generator) ImportImage(file, dir string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	q := quantize.MedianCutQuantizer{}
	cp := q.Quantize(make(color.Palette, 0, palette.MaxColors), m)
	palette.SortByLuminance(cp)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	path := filepath.Join(dir, name+".png")

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := sprite.EncodePaletted(out, m, cp); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	b := m.Bounds()
	md := sprite.Metadata{
		Name:   name,
		Colors: palette.FromColors(cp),
		Width:  b.Dx(),
		Height: b.Dy(),
		Frames: 1,
	}
	if err := md.Save(dir); err != nil {
		return err
	}

	g.logger.Printf("Imported %s as %d color paletted image\n", file, len(cp))

	crc, err := crcFile(path)
	if err != nil {
		return err
	}

	return g.db.Put(Asset{
		Name:   name,
		Path:   path,
		CRC:    crc,
		Width:  b.Dx(),
		Height: b.Dy(),
		Frames: 1,
	})
}
