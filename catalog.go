package spritegen

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/uhogames/spritegen/sprite"
)

// Asset is one catalog row describing a generated sheet on disk.
type Asset struct {
	Name   string
	Path   string
	CRC    string
	Width  int
	Height int
	Frames int
}

// AssetDB is the sqlite catalog of generated assets. It exists so tooling
// can tell whether the files on disk match what was last generated.
type AssetDB struct {
	db *sql.DB
}

// OpenCatalog opens the catalog at file, creating the schema if needed.
func OpenCatalog(file string) (*AssetDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, path TEXT NOT NULL, crc TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, frames INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &AssetDB{
		db: db,
	}, nil
}

func (db *AssetDB) Close() error {
	return db.db.Close()
}

// Put inserts or replaces the asset keyed by name.
func (db *AssetDB) Put(a Asset) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO asset (name, path, crc, width, height, frames) VALUES (?, ?, ?, ?, ?, ?)", a.Name, a.Path, a.CRC, a.Width, a.Height, a.Frames); err != nil {
		return err
	}
	return nil
}

// record checksums a sprite's sheet on disk and upserts it into the
// catalog keyed by sprite name.
func (g *Generator) record(s *sprite.Sprite, dir string) error {
	path := filepath.Join(dir, s.Name()+".png")

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

// FindByName returns the named asset, or nil if it has not been recorded.
func (db *AssetDB) FindByName(name string) (*Asset, error) {
	a := Asset{Name: name}
	switch err := db.db.QueryRow("SELECT path, crc, width, height, frames FROM asset WHERE name = ?", name).Scan(&a.Path, &a.CRC, &a.Width, &a.Height, &a.Frames); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &a, nil
	default:
		return nil, err
	}
}

// FindByCRC returns the first asset with the given checksum, or nil.
func (db *AssetDB) FindByCRC(crc string) (*Asset, error) {
	a := Asset{CRC: crc}
	switch err := db.db.QueryRow("SELECT name, path, width, height, frames FROM asset WHERE crc = ? ORDER BY name LIMIT 1", crc).Scan(&a.Name, &a.Path, &a.Width, &a.Height, &a.Frames); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &a, nil
	default:
		return nil, err
	}
}
