package cpu

// Tick decrements the delay and sound timers, stopping at zero. The driver
// calls it once per frame; Step never does.
func (emu *EMU) Tick() {
	if emu.delayTimer > 0 {
		emu.delayTimer--
	}
	if emu.soundTimer > 0 {
		emu.soundTimer--
	}
}

// DelayTimer returns the delay timer.
func (emu *EMU) DelayTimer() uint8 {
	return emu.delayTimer
}

// SoundTimer returns the sound timer.
func (emu *EMU) SoundTimer() uint8 {
	return emu.soundTimer
}

// SoundActive reports whether a tone should be playing.
func (emu *EMU) SoundActive() bool {
	return emu.soundTimer > 0
}

// SetKey latches the currently held key, or NoKey. There is one slot: the
// last call before Step wins. Codes above 0xF are latched as NoKey.
func (emu *EMU) SetKey(k Key) {
	if !k.Valid() {
		k = NoKey
	}
	emu.key = k
}

// Key returns the latched key.
func (emu *EMU) Key() Key {
	return emu.key
}

// Waiting reports whether the machine is parked on FX0A until a key is
// latched. Step may still be called; it returns immediately without
// advancing PC.
func (emu *EMU) Waiting() bool {
	return emu.waiting
}
