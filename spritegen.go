/*
Package spritegen procedurally generates the pixel art assets for a 2D
game: the player character sprite sheets and the urban environment tiles,
each with a 16 color quantized palette exported as JSON metadata alongside
the PNG.

Generation is deterministic; running the same generator twice produces
byte-identical files.
*/
package spritegen

import "log"

type Generator struct {
	db     *AssetDB
	logger *log.Logger
}

// New opens (creating if necessary) the asset catalog at file and returns
// a generator recording into it.
func New(file string, logger *log.Logger) (*Generator, error) {
	db, err := OpenCatalog(file)
	if err != nil {
		return nil, err
	}

	return &Generator{
		db:     db,
		logger: logger,
	}, nil
}

// Close releases the underlying catalog.
func (g *Generator) Close() error {
	return g.db.Close()
}
