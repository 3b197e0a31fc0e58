package cpu

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplay_DrawTwiceRestores(t *testing.T) {
	// 200: LD I, 20A
	// 202: LD V1, 0A
	// 204: DRW V1, V1, 2
	// 206: DRW V1, V1, 2
	// 208: JP 208
	// 20A: sprite
	emu := newTestEMU(t, 0xA20A, 0x610A, 0xD112, 0xD112, 0x1208, 0xA55A)

	steps(t, emu, 3)
	before := emu.Display().Frame()
	assert.Equal(t, 8, emu.Display().Lit())
	assert.Equal(t, uint8(0), emu.V[0xF])

	steps(t, emu, 1)
	assert.Equal(t, 0, emu.Display().Lit())
	assert.Equal(t, uint8(1), emu.V[0xF])
	assert.True(t, before[10][10])
	assert.False(t, before[10][11])
	assert.True(t, before[11][11])
}

func TestDisplay_PartialOverlap(t *testing.T) {
	var d Display
	assert.False(t, d.drawSprite(0, 0, []uint8{0xC0}, false))
	assert.True(t, d.drawSprite(1, 0, []uint8{0xC0}, false))
	assert.True(t, d.Pixel(0, 0))
	assert.False(t, d.Pixel(1, 0))
	assert.True(t, d.Pixel(2, 0))
}

func TestDisplay_Wrap(t *testing.T) {
	var d Display
	d.drawSprite(62, 31, []uint8{0xF0, 0xF0}, false)

	assert.True(t, d.Pixel(62, 31))
	assert.True(t, d.Pixel(63, 31))
	assert.True(t, d.Pixel(0, 31))
	assert.True(t, d.Pixel(1, 31))
	assert.True(t, d.Pixel(62, 0))
	assert.True(t, d.Pixel(1, 0))
	assert.Equal(t, 8, d.Lit())
}

func TestDisplay_Clip(t *testing.T) {
	var d Display
	d.drawSprite(62, 31, []uint8{0xF0, 0xF0}, true)

	assert.True(t, d.Pixel(62, 31))
	assert.True(t, d.Pixel(63, 31))
	assert.False(t, d.Pixel(0, 31))
	assert.False(t, d.Pixel(62, 0))
	assert.Equal(t, 2, d.Lit())
}

func TestDisplay_StartCoordinateWraps(t *testing.T) {
	for _, clip := range []bool{false, true} {
		var d Display
		d.drawSprite(Width+3, Height+2, []uint8{0x80}, clip)
		assert.True(t, d.Pixel(3, 2))
		assert.Equal(t, 1, d.Lit())
	}
}

func TestDisplay_Generation(t *testing.T) {
	var d Display
	g := d.Generation()
	d.drawSprite(0, 0, []uint8{0x80}, false)
	assert.Equal(t, g+1, d.Generation())
	d.clear()
	assert.Equal(t, g+2, d.Generation())
	assert.Equal(t, 0, d.Lit())
}

func TestDisplay_String(t *testing.T) {
	var d Display
	d.drawSprite(0, 0, []uint8{0xA0}, false)
	lines := strings.Split(strings.TrimSuffix(d.String(), "\n"), "\n")
	assert.Equal(t, Height, len(lines))
	assert.Equal(t, "#.#.", lines[0][:4])
	assert.Equal(t, strings.Repeat(".", Width), lines[1])
}

func TestDisplay_DrawOutOfBounds(t *testing.T) {
	emu := newTestEMU(t, 0xAFFE, 0xD005)
	steps(t, emu, 1)
	emu.V[0xF] = 7
	assertFault(t, emu.Step(), ErrOutOfBounds, 0xD005, 0x202)
	assert.Equal(t, 0, emu.Display().Lit())
	assert.Equal(t, uint8(7), emu.V[0xF])
}

func TestDisplay_PixelOutOfRange(t *testing.T) {
	var d Display
	assert.False(t, d.Pixel(-1, 0))
	assert.False(t, d.Pixel(Width, 0))
	assert.False(t, d.Pixel(0, Height))
}
