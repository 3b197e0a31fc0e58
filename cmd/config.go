package cmd

import (
	"vip8/emu/cpu"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// settings mirrors the configuration keys.
type settings struct {
	Refresh  int    `mapstructure:"refresh"`
	Cycles   int    `mapstructure:"cycles"`
	Frontend string `mapstructure:"frontend"`
	Scale    int    `mapstructure:"scale"`
	Beep     string `mapstructure:"beep"`
	Seed     int64  `mapstructure:"seed"`
	Trace    bool   `mapstructure:"trace"`
	TTY      string `mapstructure:"tty"`
	Quirks   struct {
		Shift     string `mapstructure:"shift"`
		Clip      bool   `mapstructure:"clip"`
		Increment bool   `mapstructure:"increment"`
	} `mapstructure:"quirks"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("refresh", 60)
	v.SetDefault("cycles", 10)
	v.SetDefault("frontend", "pixel")
	v.SetDefault("scale", 10)
	v.SetDefault("beep", "")
	v.SetDefault("seed", 0)
	v.SetDefault("trace", false)
	v.SetDefault("tty", "/dev/tty")
	v.SetDefault("quirks.shift", "vy")
	v.SetDefault("quirks.clip", false)
	v.SetDefault("quirks.increment", false)
}

func loadSettings(v *viper.Viper) (settings, error) {
	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return s, errors.Wrap(err, "parsing configuration")
	}
	if s.Refresh <= 0 {
		return s, errors.Errorf("refresh must be positive, got %d", s.Refresh)
	}
	if s.Cycles <= 0 {
		return s, errors.Errorf("cycles must be positive, got %d", s.Cycles)
	}
	switch s.Frontend {
	case "pixel", "sdl", "term":
	default:
		return s, errors.Errorf("unknown frontend %q, expected pixel, sdl or term", s.Frontend)
	}
	if _, err := s.quirks(); err != nil {
		return s, err
	}
	return s, nil
}

func (s settings) quirks() (cpu.Quirks, error) {
	q := cpu.Quirks{
		ClipSprites: s.Quirks.Clip,
		IncrementI:  s.Quirks.Increment,
	}
	if err := q.ParseShiftSource(s.Quirks.Shift); err != nil {
		return q, err
	}
	return q, nil
}

func (s settings) emuOptions() []cpu.Option {
	q, _ := s.quirks()
	return []cpu.Option{
		cpu.WithQuirks(q),
		cpu.WithSeed(s.Seed),
		cpu.WithTrace(s.Trace),
		cpu.WithLogger(logger),
	}
}
