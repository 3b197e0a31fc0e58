// Package screen presents the CHIP-8 display in a pixelgl window and reads
// the keypad from the window's keyboard state.
package screen

import (
	"image/color"

	"vip8/emu/cpu"
	"vip8/emu/driver"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
)

var (
	screenColor = color.RGBA{R: 0x1A, G: 0x23, B: 0x7E, A: 0xFF}
	spriteColor = color.RGBA{R: 0x9F, G: 0xA8, B: 0xDA, A: 0xFF}
)

// Window is a pixelgl window sized to the display. It implements
// driver.Frontend; pixelgl.Run must be active.
type Window struct {
	*pixelgl.Window
	KeyMap map[cpu.Key]pixelgl.Button

	imd        *imdraw.IMDraw
	scale      float64
	generation uint64
	drawn      bool
}

// NewWindow opens a window with each display pixel drawn as a scale x scale
// square.
func NewWindow(title string, scale int) (*Window, error) {
	if scale < 1 {
		scale = 1
	}
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, float64(cpu.Width*scale), float64(cpu.Height*scale)),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "creating window")
	}
	return &Window{
		Window: win,
		KeyMap: keyMap(),
		imd:    imdraw.New(nil),
		scale:  float64(scale),
	}, nil
}

// Poll implements driver.Frontend. Escape or closing the window quits.
func (w *Window) Poll() (cpu.Key, bool) {
	if w.Closed() || w.Pressed(pixelgl.KeyEscape) {
		return cpu.NoKey, true
	}
	return driver.Latch(func(k cpu.Key) bool {
		button, ok := w.KeyMap[k]
		return ok && w.Pressed(button)
	}), false
}

// Present implements driver.Frontend. The sprite geometry is rebuilt only
// when the display changed.
func (w *Window) Present(d *cpu.Display) error {
	if !w.drawn || d.Generation() != w.generation {
		w.rebuild(d)
		w.generation = d.Generation()
		w.drawn = true
	}
	w.Clear(screenColor)
	w.imd.Draw(w.Window)
	w.Update()
	return nil
}

// rebuild converts lit pixels to rectangles. pixel's origin is bottom left,
// so rows are flipped.
func (w *Window) rebuild(d *cpu.Display) {
	w.imd.Clear()
	w.imd.Color = spriteColor
	frame := d.Frame()
	for y, row := range frame {
		top := float64(cpu.Height-y) * w.scale
		for x, lit := range row {
			if !lit {
				continue
			}
			left := float64(x) * w.scale
			w.imd.Push(pixel.V(left, top-w.scale), pixel.V(left+w.scale, top))
			w.imd.Rectangle(0)
		}
	}
}
