package spritegen

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhogames/spritegen/palette"
)

func TestLegendaryPlayerFrames(t *testing.T) {
	g, _, done := testGenerator(t)
	defer done()

	s := g.LegendaryPlayer()

	assert.Equal(t, "legendary_player", s.Name())
	assert.Equal(t, 16, s.Frames())

	w, h := s.Size()
	assert.Equal(t, frameSize, w)
	assert.Equal(t, frameSize, h)

	assert.True(t, s.Palette().Len() <= palette.MaxColors)
}

func TestLegendaryPlayerPalette(t *testing.T) {
	g, _, done := testGenerator(t)
	defer done()

	colors := g.LegendaryPlayer().Palette().Colors()

	// Sentinel plus fourteen quantized character tones
	require.Len(t, colors, 15)
	assert.Equal(t, palette.RGB{R: 0, G: 0, B: 0}, colors[0])
	assert.Equal(t, palette.RGB{R: 248, G: 216, B: 176}, colors[1]) // skin base
}

func TestLegendaryPlayerEyes(t *testing.T) {
	g, _, done := testGenerator(t)
	defer done()

	s := g.LegendaryPlayer()
	black := color.RGBA{A: 0xff}
	eyeY := headY + 2

	south := s.Frame(int(South) * framesPerDirection)
	assert.Equal(t, black, south.RGBAAt(7, eyeY))
	assert.Equal(t, black, south.RGBAAt(9, eyeY))

	west := s.Frame(int(West) * framesPerDirection)
	assert.Equal(t, black, west.RGBAAt(7, eyeY))
	assert.NotEqual(t, black, west.RGBAAt(9, eyeY))

	east := s.Frame(int(East) * framesPerDirection)
	assert.NotEqual(t, black, east.RGBAAt(7, eyeY))
	assert.Equal(t, black, east.RGBAAt(9, eyeY))

	// Back of the head shows no eyes at all
	north := s.Frame(int(North) * framesPerDirection)
	assert.NotEqual(t, black, north.RGBAAt(7, eyeY))
	assert.NotEqual(t, black, north.RGBAAt(9, eyeY))
}

func TestLegendaryPlayerArms(t *testing.T) {
	g, _, done := testGenerator(t)
	defer done()

	s := g.LegendaryPlayer()
	armY := bodyY + 1

	// Both arms are drawn facing south
	south := s.Frame(int(South) * framesPerDirection)
	assert.NotZero(t, south.RGBAAt(5, armY).A)
	assert.NotZero(t, south.RGBAAt(10, armY).A)

	// The right arm is hidden facing west
	west := s.Frame(int(West) * framesPerDirection)
	assert.NotZero(t, west.RGBAAt(5, armY).A)
	assert.Zero(t, west.RGBAAt(10, armY).A)

	// The left arm is hidden facing east
	east := s.Frame(int(East) * framesPerDirection)
	assert.Zero(t, east.RGBAAt(5, armY).A)
	assert.NotZero(t, east.RGBAAt(10, armY).A)
}

func TestLegendaryPlayerWalkCycle(t *testing.T) {
	g, _, done := testGenerator(t)
	defer done()

	s := g.LegendaryPlayer()

	neutral := s.Frame(0)
	up := s.Frame(1)
	neutral2 := s.Frame(2)
	down := s.Frame(3)

	// Phases 0 and 2 are the identical neutral stance
	assert.Equal(t, neutral.Pix, neutral2.Pix)

	// Walking phases differ from neutral, but only below the torso
	assert.NotEqual(t, neutral.Pix, up.Pix)
	assert.NotEqual(t, neutral.Pix, down.Pix)
	assert.NotEqual(t, up.Pix, down.Pix)

	for y := 0; y < legsY-1; y++ {
		rowStart := neutral.PixOffset(0, y)
		rowEnd := neutral.PixOffset(0, y+1)
		assert.Equal(t, neutral.Pix[rowStart:rowEnd], up.Pix[rowStart:rowEnd], "row %d", y)
		assert.Equal(t, neutral.Pix[rowStart:rowEnd], down.Pix[rowStart:rowEnd], "row %d", y)
	}
}

func TestLegendaryPlayerHair(t *testing.T) {
	g, _, done := testGenerator(t)
	defer done()

	s := g.LegendaryPlayer()

	hairBase := color.RGBA{96, 64, 32, 0xff}
	hairShadow := color.RGBA{64, 40, 16, 0xff}
	hairHighlight := color.RGBA{136, 88, 48, 0xff}
	skinBase := color.RGBA{248, 216, 176, 0xff}
	skinHighlight := color.RGBA{248, 240, 200, 0xff}

	// The fringe shades from shadow on the left to highlight on the right
	south := s.Frame(int(South) * framesPerDirection)
	assert.Equal(t, hairShadow, south.RGBAAt(6, headY))
	assert.Equal(t, hairBase, south.RGBAAt(8, headY))
	assert.Equal(t, hairHighlight, south.RGBAAt(10, headY))

	// Facing west hides the right side, exposing the head circle beneath
	west := s.Frame(int(West) * framesPerDirection)
	assert.Equal(t, hairShadow, west.RGBAAt(6, headY))
	assert.Equal(t, skinBase, west.RGBAAt(10, headY))

	// Facing east hides the left side
	east := s.Frame(int(East) * framesPerDirection)
	assert.Equal(t, skinHighlight, east.RGBAAt(6, headY))
	assert.Equal(t, hairHighlight, east.RGBAAt(10, headY))

	// The back of the head is two solid rows of the base hair color
	north := s.Frame(int(North) * framesPerDirection)
	for x := 6; x <= 10; x++ {
		assert.Equal(t, hairBase, north.RGBAAt(x, headY))
		assert.Equal(t, hairBase, north.RGBAAt(x, headY+1))
	}
}
