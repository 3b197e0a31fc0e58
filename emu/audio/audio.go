// Package audio plays a looping tone while the sound timer runs.
package audio

import (
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

// Player loops an mp3 sample, paused until Beep(true). It implements
// driver.Beeper.
type Player struct {
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
}

// Open decodes the mp3 at path and starts the speaker paused.
func Open(path string) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening beep sample")
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "decoding beep sample")
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return nil, errors.Wrap(err, "initialising speaker")
	}

	p := &Player{
		streamer: streamer,
		ctrl:     &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: true},
	}
	speaker.Play(p.ctrl)
	return p, nil
}

// Beep starts or stops the tone. A stopped tone restarts from the
// beginning of the sample.
func (p *Player) Beep(on bool) {
	speaker.Lock()
	defer speaker.Unlock()
	p.ctrl.Paused = !on
	if !on {
		_ = p.streamer.Seek(0)
	}
}

// Close stops playback and releases the sample.
func (p *Player) Close() error {
	speaker.Lock()
	p.ctrl.Streamer = nil
	speaker.Unlock()
	return p.streamer.Close()
}

// Silent is a Beeper that does nothing, used when no sample is configured.
type Silent struct{}

// Beep implements driver.Beeper.
func (Silent) Beep(bool) {}
