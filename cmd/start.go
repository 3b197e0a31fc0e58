package cmd

import (
	"context"
	"os"
	"os/signal"
	"runtime"

	"vip8/emu/audio"
	"vip8/emu/cpu"
	"vip8/emu/driver"
	"vip8/emu/screen"
	"vip8/emu/sdlio"
	"vip8/emu/termio"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const windowTitle = "vip8 | CHIP-8"

var startCmd = &cobra.Command{
	Use:   "start `path/ROM`",
	Short: "load and start the Emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

// vip8 start 'path/to/ROM' -r 60 -c 10
func Start(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(viper.GetViper())
	if err != nil {
		return err
	}

	emu, err := cpu.LoadFile(args[0], s.emuOptions()...)
	if err != nil {
		return errors.Wrap(err, "starting the emulator")
	}
	logger.Info("Loaded program",
		log.String("rom", args[0]),
		log.Int("size", emu.ROMSize()),
		log.String("frontend", s.Frontend),
		log.String("shift", emu.Quirks().ShiftSource()))

	beeper, closeBeeper := openBeeper(s)
	defer closeBeeper()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := func(front driver.Frontend) error {
		d := driver.New(emu, front,
			driver.WithRefresh(s.Refresh),
			driver.WithCycles(s.Cycles),
			driver.WithBeeper(beeper),
			driver.WithLogger(logger))
		err := d.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	switch s.Frontend {
	case "sdl":
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		io, err := sdlio.Open(windowTitle, s.Scale)
		if err != nil {
			return err
		}
		defer io.Destroy()
		return run(io)

	case "term":
		tty, err := termio.Open(s.TTY)
		if err != nil {
			return err
		}
		defer tty.Close()
		return run(tty)

	default:
		// pixelgl needs the main thread, which cobra runs on
		pixelgl.Run(func() {
			var win *screen.Window
			win, err = screen.NewWindow(windowTitle, s.Scale)
			if err != nil {
				return
			}
			defer win.Destroy()
			err = run(win)
		})
		return err
	}
}

func openBeeper(s settings) (driver.Beeper, func()) {
	if s.Beep == "" {
		return audio.Silent{}, func() {}
	}
	player, err := audio.Open(s.Beep)
	if err != nil {
		logger.Warn("Audio disabled", log.Err(err))
		return audio.Silent{}, func() {}
	}
	return player, func() {
		if err := player.Close(); err != nil {
			logger.Warn("Closing audio failed", log.Err(err))
		}
	}
}

func init() {
	flags := startCmd.Flags()
	flags.IntP("refresh", "r", 60, "sets the refresh rate of the display")
	flags.IntP("cycles", "c", 10, "instructions executed per frame")
	flags.StringP("frontend", "f", "pixel", "display and keyboard: pixel, sdl or term")
	flags.Int("scale", 10, "size of a display pixel in window pixels")
	flags.String("beep", "", "mp3 sample played while the sound timer runs")
	flags.Int64("seed", 0, "random seed, 0 for a time based seed")
	flags.Bool("trace", false, "log every executed instruction at debug level")
	flags.String("tty", "/dev/tty", "terminal device for the term frontend")
	flags.String("shift", "vy", "register shifted by 8XY6/8XYE: vx or vy")
	flags.Bool("clip", false, "clip sprites at the screen edge instead of wrapping")
	flags.Bool("increment-i", false, "advance I past the registers transferred by FX55/FX65")

	for key, flag := range map[string]string{
		"refresh":          "refresh",
		"cycles":           "cycles",
		"frontend":         "frontend",
		"scale":            "scale",
		"beep":             "beep",
		"seed":             "seed",
		"trace":            "trace",
		"tty":              "tty",
		"quirks.shift":     "shift",
		"quirks.clip":      "clip",
		"quirks.increment": "increment-i",
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}
