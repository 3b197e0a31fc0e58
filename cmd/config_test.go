package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"vip8/emu/cpu"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
	"github.com/spf13/viper"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := loadSettings(newTestViper())
	assert.NoError(t, err)
	assert.Equal(t, 60, s.Refresh)
	assert.Equal(t, 10, s.Cycles)
	assert.Equal(t, "pixel", s.Frontend)
	assert.Equal(t, 10, s.Scale)
	assert.Equal(t, "vy", s.Quirks.Shift)

	q, err := s.quirks()
	assert.NoError(t, err)
	assert.Equal(t, cpu.Quirks{}, q)
}

func TestLoadSettings_Quirks(t *testing.T) {
	v := newTestViper()
	v.Set("quirks.shift", "vx")
	v.Set("quirks.clip", true)
	v.Set("quirks.increment", true)

	s, err := loadSettings(v)
	assert.NoError(t, err)
	q, err := s.quirks()
	assert.NoError(t, err)
	assert.Equal(t, cpu.Quirks{ShiftVX: true, ClipSprites: true, IncrementI: true}, q)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"zero refresh", "refresh", 0},
		{"negative cycles", "cycles", -1},
		{"unknown frontend", "frontend", "vga"},
		{"unknown shift", "quirks.shift", "vz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestViper()
			v.Set(tt.key, tt.value)
			_, err := loadSettings(v)
			assert.True(t, err != nil)
		})
	}
}

func TestLoadSettings_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vip8.yaml")
	config := "refresh: 30\ncycles: 20\nfrontend: term\nquirks:\n  shift: vx\n"
	assert.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	v := newTestViper()
	v.SetConfigFile(path)
	assert.NoError(t, v.ReadInConfig())

	s, err := loadSettings(v)
	assert.NoError(t, err)
	assert.Equal(t, 30, s.Refresh)
	assert.Equal(t, 20, s.Cycles)
	assert.Equal(t, "term", s.Frontend)
	assert.Equal(t, "vx", s.Quirks.Shift)
}

func TestDisasm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rom.ch8")
	assert.NoError(t, os.WriteFile(path, []byte{0x00, 0xE0, 0x12, 0x00}, 0o644))

	var buf bytes.Buffer
	disasmCmd.SetOut(&buf)
	defer disasmCmd.SetOut(nil)

	assert.NoError(t, Disasm(disasmCmd, []string{path}))
	assert.Equal(t, "200  00E0  CLS\n202  1200  JP $200\n", buf.String())

	big := filepath.Join(dir, "big.ch8")
	assert.NoError(t, os.WriteFile(big, make([]byte, cpu.MaxProgramSize+1), 0o644))
	err := Disasm(disasmCmd, []string{big})
	assert.True(t, errors.Is(err, cpu.ErrProgramTooLarge))
}

func TestNewLogger(t *testing.T) {
	assert.True(t, newLogger(true, false) != nil)
	assert.True(t, newLogger(false, true) != nil)
}

func TestStartFlags_BoundToViper(t *testing.T) {
	flags := startCmd.Flags()
	assert.NoError(t, flags.Set("refresh", "30"))
	assert.NoError(t, flags.Set("increment-i", "true"))
	t.Cleanup(func() {
		_ = flags.Set("refresh", "60")
		_ = flags.Set("increment-i", "false")
	})

	assert.Equal(t, 30, viper.GetInt("refresh"))
	assert.True(t, viper.GetBool("quirks.increment"))
}
