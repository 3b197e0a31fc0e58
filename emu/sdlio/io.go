// Package sdlio presents the CHIP-8 display in an SDL window and reads the
// keypad from the SDL keyboard state.
package sdlio

import (
	"vip8/emu/cpu"
	"vip8/emu/driver"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	screenColor = 0x1A237E
	spriteColor = 0x9FA8DA
)

// IO is an SDL window and keyboard. It implements driver.Frontend and must
// be used from the goroutine that created it.
type IO struct {
	window    *sdl.Window
	surface   *sdl.Surface
	pixelSize int32
	scancodes [16]sdl.Scancode

	generation uint64
	drawn      bool
	quit       bool
}

// Open initialises SDL and creates the window.
func Open(title string, pixelSize int) (*IO, error) {
	if pixelSize < 1 {
		pixelSize = 1
	}
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.Wrap(err, "initialising SDL")
	}

	io := &IO{
		pixelSize: int32(pixelSize),
		scancodes: scancodes(),
	}
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cpu.Width*io.pixelSize, cpu.Height*io.pixelSize, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrap(err, "creating window")
	}
	io.window = window

	io.surface, err = window.GetSurface()
	if err != nil {
		io.Destroy()
		return nil, errors.Wrap(err, "getting window surface")
	}
	return io, nil
}

// Destroy should be called before quitting the application
func (io *IO) Destroy() {
	if io.window != nil {
		_ = io.window.Destroy()
	}
	sdl.Quit()
}

// Poll implements driver.Frontend. It drains the SDL event queue; a quit
// event or Escape stops the driver.
func (io *IO) Poll() (cpu.Key, bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			io.quit = true
		case *sdl.KeyboardEvent:
			if t.Keysym.Scancode == sdl.Scancode(sdl.SCANCODE_ESCAPE) {
				io.quit = true
			}
		}
	}
	if io.quit {
		return cpu.NoKey, true
	}

	state := sdl.GetKeyboardState()
	return driver.Latch(func(k cpu.Key) bool {
		return state[io.scancodes[k]] != 0
	}), false
}

// Present implements driver.Frontend.
func (io *IO) Present(d *cpu.Display) error {
	if io.drawn && d.Generation() == io.generation {
		return nil
	}
	io.generation = d.Generation()
	io.drawn = true

	if err := io.surface.FillRect(nil, screenColor); err != nil {
		return errors.Wrap(err, "clearing surface")
	}
	for y := int32(0); y < cpu.Height; y++ {
		for x := int32(0); x < cpu.Width; x++ {
			if !d.Pixel(int(x), int(y)) {
				continue
			}
			rect := &sdl.Rect{X: x * io.pixelSize, Y: y * io.pixelSize, W: io.pixelSize, H: io.pixelSize}
			if err := io.surface.FillRect(rect, spriteColor); err != nil {
				return errors.Wrap(err, "drawing pixel")
			}
		}
	}
	return errors.Wrap(io.window.UpdateSurface(), "updating window")
}
