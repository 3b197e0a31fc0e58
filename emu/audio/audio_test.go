package audio

import (
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOpen_Missing(t *testing.T) {
	p, err := Open(filepath.Join(t.TempDir(), "missing.mp3"))
	assert.True(t, err != nil)
	assert.True(t, p == nil)
}

func TestSilent(t *testing.T) {
	var s Silent
	s.Beep(true)
	s.Beep(false)
}
