package driver

import "vip8/emu/cpu"

// Layout maps each keypad code to the QWERTY key it sits under:
//
//	1 2 3 C      1 2 3 4
//	4 5 6 D  ->  Q W E R
//	7 8 9 E      A S D F
//	A 0 B F      Z X C V
var Layout = [16]rune{
	0x0: 'x', 0x1: '1', 0x2: '2', 0x3: '3',
	0x4: 'q', 0x5: 'w', 0x6: 'e', 0x7: 'a',
	0x8: 's', 0x9: 'd', 0xA: 'z', 0xB: 'c',
	0xC: '4', 0xD: 'r', 0xE: 'f', 0xF: 'v',
}

// KeyForRune returns the keypad code under r, or cpu.NoKey.
func KeyForRune(r rune) cpu.Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	for code, c := range Layout {
		if c == r {
			return cpu.Key(code)
		}
	}
	return cpu.NoKey
}

// Latch picks the single key to latch from the keys held this frame. Codes
// are scanned in ascending order and the last held one wins, so with
// several keys down the highest code is latched.
func Latch(held func(cpu.Key) bool) cpu.Key {
	key := cpu.NoKey
	for code := cpu.Key(0); code <= 0xF; code++ {
		if held(code) {
			key = code
		}
	}
	return key
}
