package sdlio

import (
	"vip8/emu/driver"

	"github.com/veandco/go-sdl2/sdl"
)

// scancodes returns the physical key for every keypad code in
// driver.Layout.
func scancodes() (codes [16]sdl.Scancode) {
	for code, r := range driver.Layout {
		codes[code] = scancode(r)
	}
	return codes
}

func scancode(r rune) sdl.Scancode {
	switch {
	case r >= '1' && r <= '9':
		return sdl.Scancode(sdl.SCANCODE_1) + sdl.Scancode(r-'1')
	case r >= 'a' && r <= 'z':
		return sdl.Scancode(sdl.SCANCODE_A) + sdl.Scancode(r-'a')
	}
	return sdl.Scancode(sdl.SCANCODE_UNKNOWN)
}
