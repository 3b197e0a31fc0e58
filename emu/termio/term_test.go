package termio

import (
	"strings"
	"testing"
	"time"

	"vip8/emu/cpu"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestPoll_HoldsKey(t *testing.T) {
	now := time.Unix(100, 0)
	term := newTerminal()
	term.now = func() time.Time { return now }

	term.keys <- 'w'
	key, quit := term.Poll()
	assert.False(t, quit)
	assert.Equal(t, cpu.Key(0x5), key)

	now = now.Add(keyRepeatDuration / 2)
	key, _ = term.Poll()
	assert.Equal(t, cpu.Key(0x5), key)

	now = now.Add(keyRepeatDuration)
	key, _ = term.Poll()
	assert.Equal(t, cpu.NoKey, key)
}

func TestPoll_IgnoresUnmappedKeys(t *testing.T) {
	term := newTerminal()
	term.keys <- 'p'
	key, quit := term.Poll()
	assert.False(t, quit)
	assert.Equal(t, cpu.NoKey, key)
}

func TestPoll_Quit(t *testing.T) {
	term := newTerminal()
	term.keys <- keyEscape
	_, quit := term.Poll()
	assert.True(t, quit)

	term = newTerminal()
	close(term.keys)
	_, quit = term.Poll()
	assert.True(t, quit)
}

func TestRender(t *testing.T) {
	emu := cpu.NewEMU(cpu.WithLogger(log.NewTestLogger(t)))
	// 200: LD I, 206
	// 202: DRW V0, V0, 3
	// 204: JP 204
	// 206: sprite C0 80 40
	assert.NoError(t, emu.LoadROM([]byte{0xA2, 0x06, 0xD0, 0x03, 0x12, 0x04, 0xC0, 0x80, 0x40}))
	for i := 0; i < 2; i++ {
		assert.NoError(t, emu.Step())
	}

	lines := strings.Split(render(emu.Display()), "\r\n")
	assert.Equal(t, cpu.Height/2+1, len(lines))
	assert.Equal(t, "█▀ ", string([]rune(lines[0])[:3]))
	assert.Equal(t, " ▀ ", string([]rune(lines[1])[:3]))
	assert.Equal(t, cpu.Width, len([]rune(lines[2])))
}
