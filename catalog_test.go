package spritegen

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPutAndFind(t *testing.T) {
	dir, err := ioutil.TempDir("", "spritegen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := OpenCatalog(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	defer db.Close()

	a := Asset{
		Name:   "player",
		Path:   "assets/sprites/player.png",
		CRC:    "DEADBEEF",
		Width:  16,
		Height: 16,
		Frames: 16,
	}
	require.NoError(t, db.Put(a))

	got, err := db.FindByName("player")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, &a, got)

	got, err = db.FindByCRC("DEADBEEF")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, &a, got)
}

func TestCatalogMissing(t *testing.T) {
	dir, err := ioutil.TempDir("", "spritegen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := OpenCatalog(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	defer db.Close()

	got, err := db.FindByName("nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = db.FindByCRC("00000000")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCatalogPutReplaces(t *testing.T) {
	dir, err := ioutil.TempDir("", "spritegen")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	db, err := OpenCatalog(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	defer db.Close()

	a := Asset{Name: "player", Path: "a.png", CRC: "AAAAAAAA", Width: 16, Height: 16, Frames: 16}
	require.NoError(t, db.Put(a))

	a.CRC = "BBBBBBBB"
	require.NoError(t, db.Put(a))

	got, err := db.FindByName("player")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "BBBBBBBB", got.CRC)
}

func TestScanRecordsSheets(t *testing.T) {
	g, dir, done := testGenerator(t)
	defer done()

	out := filepath.Join(dir, "assets")
	require.NoError(t, g.Legendary(out))
	require.NoError(t, g.Scan(out))

	for _, name := range []string{"legendary_player", "urban_tiles"} {
		a, err := g.db.FindByName(name)
		require.NoError(t, err)
		require.NotNil(t, a, name)

		crc, err := crcFile(a.Path)
		require.NoError(t, err)
		assert.Equal(t, crc, a.CRC)
	}
}

func TestScanIsIdempotent(t *testing.T) {
	g, dir, done := testGenerator(t)
	defer done()

	out := filepath.Join(dir, "assets")
	require.NoError(t, g.Legendary(out))

	require.NoError(t, g.Scan(out))
	before, err := g.db.FindByName("legendary_player")
	require.NoError(t, err)

	require.NoError(t, g.Scan(out))
	after, err := g.db.FindByName("legendary_player")
	require.NoError(t, err)

	assert.Equal(t, before, after)
}
