package driver

import (
	"testing"

	"vip8/emu/cpu"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want cpu.Key
	}{
		{'1', 0x1},
		{'4', 0xC},
		{'q', 0x4},
		{'R', 0xD},
		{'x', 0x0},
		{'v', 0xF},
		{'p', cpu.NoKey},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			assert.Equal(t, tt.want, KeyForRune(tt.r))
		})
	}
}

func TestLatch(t *testing.T) {
	none := func(cpu.Key) bool { return false }
	assert.Equal(t, cpu.NoKey, Latch(none))

	held := map[cpu.Key]bool{0x3: true, 0xA: true, 0x1: true}
	assert.Equal(t, cpu.Key(0xA), Latch(func(k cpu.Key) bool { return held[k] }))
}
