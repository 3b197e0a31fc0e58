package screen

import (
	"testing"

	"vip8/emu/cpu"

	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/retrogolib/assert"
)

func TestKeyMap(t *testing.T) {
	m := keyMap()
	assert.Equal(t, 16, len(m))
	assert.Equal(t, pixelgl.KeyX, m[0x0])
	assert.Equal(t, pixelgl.Key4, m[0xC])
	assert.Equal(t, pixelgl.KeyV, m[cpu.Key(0xF)])
}
