// Package driver runs a CHIP-8 machine against a frontend: once per frame it
// latches the held key, executes a batch of instructions, decrements the
// timers and presents the display.
package driver

import (
	"context"
	"time"

	"vip8/emu/cpu"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

const (
	defaultRefresh = 60
	defaultCycles  = 10
)

// Frontend presents frames and reports the keypad.
type Frontend interface {
	// Poll returns the held keypad code, or cpu.NoKey, and whether the user
	// asked to quit.
	Poll() (key cpu.Key, quit bool)
	// Present shows the display buffer.
	Present(d *cpu.Display) error
}

// Beeper plays a tone while the sound timer is running.
type Beeper interface {
	Beep(on bool)
}

// Driver owns the machine for the lifetime of Run.
type Driver struct {
	emu      *cpu.EMU
	frontend Frontend
	beeper   Beeper
	refresh  int
	cycles   int
	logger   *log.Logger
	frames   uint64
	beeping  bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithRefresh sets the frame rate in Hz. Timers decrement once per frame.
func WithRefresh(hz int) Option {
	return func(d *Driver) {
		if hz > 0 {
			d.refresh = hz
		}
	}
}

// WithCycles sets how many instructions run per frame.
func WithCycles(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.cycles = n
		}
	}
}

// WithBeeper sets the tone player.
func WithBeeper(b Beeper) Option {
	return func(d *Driver) { d.beeper = b }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// New returns a driver for emu presenting on frontend.
func New(emu *cpu.EMU, frontend Frontend, opts ...Option) *Driver {
	d := &Driver{
		emu:      emu,
		frontend: frontend,
		refresh:  defaultRefresh,
		cycles:   defaultCycles,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = log.NewWithConfig(log.DefaultConfig())
	}
	return d
}

// Frames returns the number of frames run.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Frame runs one iteration of the loop. It reports quit when the frontend
// asked to stop. An execution fault is returned after the frame has been
// presented so the last picture stays visible.
func (d *Driver) Frame() (quit bool, err error) {
	key, quit := d.frontend.Poll()
	if quit {
		return true, nil
	}
	d.emu.SetKey(key)

	var fault error
	for i := 0; i < d.cycles; i++ {
		if fault = d.emu.Step(); fault != nil {
			break
		}
		if d.emu.Waiting() {
			break
		}
	}

	d.emu.Tick()
	d.beep(d.emu.SoundActive())
	d.frames++

	if err := d.frontend.Present(d.emu.Display()); err != nil {
		return false, errors.Wrap(err, "presenting frame")
	}
	return false, fault
}

// Run repeats Frame at the refresh rate until the frontend quits, ctx is
// done or the machine faults.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(d.refresh))
	defer ticker.Stop()
	defer d.beep(false)

	d.logger.Debug("Driver started",
		log.Int("refresh", d.refresh),
		log.Int("cycles", d.cycles))

	for {
		quit, err := d.Frame()
		if err != nil {
			d.logger.Error("Machine halted", err)
			return err
		}
		if quit {
			d.logger.Debug("Quit requested", log.Int("frames", int(d.frames)))
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (d *Driver) beep(on bool) {
	if d.beeper == nil || on == d.beeping {
		return
	}
	d.beeping = on
	d.beeper.Beep(on)
}
