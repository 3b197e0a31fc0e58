package screen

import (
	"vip8/emu/cpu"
	"vip8/emu/driver"

	"github.com/faiface/pixel/pixelgl"
)

var buttons = map[rune]pixelgl.Button{
	'1': pixelgl.Key1, '2': pixelgl.Key2, '3': pixelgl.Key3, '4': pixelgl.Key4,
	'q': pixelgl.KeyQ, 'w': pixelgl.KeyW, 'e': pixelgl.KeyE, 'r': pixelgl.KeyR,
	'a': pixelgl.KeyA, 's': pixelgl.KeyS, 'd': pixelgl.KeyD, 'f': pixelgl.KeyF,
	'z': pixelgl.KeyZ, 'x': pixelgl.KeyX, 'c': pixelgl.KeyC, 'v': pixelgl.KeyV,
}

// keyMap binds every keypad code to its button in driver.Layout.
func keyMap() map[cpu.Key]pixelgl.Button {
	m := make(map[cpu.Key]pixelgl.Button, len(driver.Layout))
	for code, r := range driver.Layout {
		m[cpu.Key(code)] = buttons[r]
	}
	return m
}
