// Package termio presents the CHIP-8 display in a text terminal, two pixel
// rows per character cell, and reads the keypad from the terminal in raw
// mode.
package termio

import (
	"strings"
	"time"

	"vip8/emu/cpu"
	"vip8/emu/driver"

	"github.com/buger/goterm"
	"github.com/pkg/errors"
	"github.com/pkg/term"
)

// A terminal reports key presses but no releases, so a key counts as held
// for this long after its last byte arrived.
const keyRepeatDuration = time.Second / 5

const (
	keyEscape = 0x1B
	keyCtrlC  = 0x03
)

// Terminal implements driver.Frontend on a tty.
type Terminal struct {
	tty  *term.Term
	keys chan byte
	held [16]time.Time
	now  func() time.Time
	quit bool

	generation uint64
	drawn      bool
}

// Open puts device (usually /dev/tty) in raw mode and starts reading keys.
func Open(device string) (*Terminal, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", device)
	}

	t := newTerminal()
	t.tty = tty
	go t.read()

	goterm.Clear()
	goterm.Flush()
	return t, nil
}

func newTerminal() *Terminal {
	return &Terminal{
		keys: make(chan byte, 64),
		now:  time.Now,
	}
}

// read forwards raw input bytes until the tty is closed.
func (t *Terminal) read() {
	buf := make([]byte, 16)
	for {
		n, err := t.tty.Read(buf)
		if err != nil {
			close(t.keys)
			return
		}
		for _, b := range buf[:n] {
			t.keys <- b
		}
	}
}

// Close restores the terminal mode.
func (t *Terminal) Close() error {
	if err := t.tty.Restore(); err != nil {
		return errors.Wrap(err, "restoring terminal")
	}
	return t.tty.Close()
}

// Poll implements driver.Frontend. Escape or Ctrl-C quits.
func (t *Terminal) Poll() (cpu.Key, bool) {
	now := t.now()
drain:
	for {
		select {
		case b, ok := <-t.keys:
			if !ok {
				t.quit = true
				break drain
			}
			t.press(b, now)
		default:
			break drain
		}
	}
	if t.quit {
		return cpu.NoKey, true
	}

	return driver.Latch(func(k cpu.Key) bool {
		return !t.held[k].IsZero() && now.Sub(t.held[k]) < keyRepeatDuration
	}), false
}

func (t *Terminal) press(b byte, now time.Time) {
	if b == keyEscape || b == keyCtrlC {
		t.quit = true
		return
	}
	if k := driver.KeyForRune(rune(b)); k != cpu.NoKey {
		t.held[k] = now
	}
}

// Present implements driver.Frontend. Unchanged frames are not redrawn.
func (t *Terminal) Present(d *cpu.Display) error {
	if t.drawn && d.Generation() == t.generation {
		return nil
	}
	t.generation = d.Generation()
	t.drawn = true

	goterm.MoveCursor(1, 1)
	if _, err := goterm.Print(render(d)); err != nil {
		return errors.Wrap(err, "rendering frame")
	}
	goterm.Flush()
	return nil
}

// render draws two display rows per text line using half block glyphs.
// Lines end in CRLF since the tty is in raw mode.
func render(d *cpu.Display) string {
	var sb strings.Builder
	for y := 0; y < cpu.Height; y += 2 {
		for x := 0; x < cpu.Width; x++ {
			top, bottom := d.Pixel(x, y), d.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
