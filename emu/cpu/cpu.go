// Package cpu implements the CHIP-8 interpreter core: memory, registers,
// the display buffer and the fetch-decode-execute step. It performs no I/O
// and no scheduling; a driver latches keys, calls Step, decrements the timers
// once per frame and presents the display.
package cpu

import (
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/log"
)

// EMU is a single CHIP-8 machine. It is not safe for concurrent use; the
// driving loop owns it and calls every method from one goroutine.
type EMU struct {
	opcode     uint16
	memory     Memory
	V          [16]uint8
	I          uint16 //address register
	pc         uint16
	display    Display
	delayTimer uint8 //counts down once per frame
	soundTimer uint8 //same as above
	stack      stack
	key        Key  //latched keypad code
	waiting    bool //FX0A is parked until a key is latched
	cycles     uint64
	romSize    int

	quirks Quirks
	rng    *rand.Rand
	logger *log.Logger
	trace  bool
}

// Option configures an EMU.
type Option func(*EMU)

// WithQuirks selects the behavior of the ambiguous instructions.
func WithQuirks(q Quirks) Option {
	return func(emu *EMU) { emu.quirks = q }
}

// WithSeed seeds the random source used by CXNN. A zero seed is replaced by
// the current time.
func WithSeed(seed int64) Option {
	return func(emu *EMU) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		emu.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for load and fault diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(emu *EMU) { emu.logger = logger }
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace(trace bool) Option {
	return func(emu *EMU) { emu.trace = trace }
}

// NewEMU returns a machine with zeroed memory and registers, the font
// loaded and PC at ProgramStart.
func NewEMU(opts ...Option) *EMU {
	emu := &EMU{
		pc:  ProgramStart,
		key: NoKey,
	}
	for _, opt := range opts {
		opt(emu)
	}
	if emu.rng == nil {
		emu.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if emu.logger == nil {
		cfg := log.DefaultConfig()
		cfg.Level = log.ErrorLevel
		emu.logger = log.NewWithConfig(cfg)
	}
	emu.loadFont()
	return emu
}

func (emu *EMU) loadFont() {
	copy(emu.memory[FontStart:], FontSet[:])
}

// LoadROM copies program verbatim into memory at ProgramStart.
func (emu *EMU) LoadROM(program []byte) error {
	if len(program) > MaxProgramSize {
		return errors.Wrapf(ErrProgramTooLarge, "%d bytes, at most %d fit", len(program), MaxProgramSize)
	}
	copy(emu.memory[ProgramStart:], program)
	emu.romSize = len(program)
	emu.logger.Debug("Program loaded",
		log.Int("size", len(program)),
		log.Uint16("start", uint16(ProgramStart)))
	return nil
}

// LoadFile reads a ROM image from disk and returns a machine running it.
func LoadFile(filename string, opts ...Option) (*EMU, error) {
	rom, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "reading rom")
	}
	emu := NewEMU(opts...)
	if err := emu.LoadROM(rom); err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return emu, nil
}

// Display returns the live framebuffer; it changes on the next Step.
func (emu *EMU) Display() *Display {
	return &emu.display
}

// Memory returns the address space.
func (emu *EMU) Memory() *Memory {
	return &emu.memory
}

// PC returns the program counter.
func (emu *EMU) PC() uint16 {
	return emu.pc
}

// Cycles returns the number of instructions executed.
func (emu *EMU) Cycles() uint64 {
	return emu.cycles
}

// ROMSize returns the size of the loaded program in bytes.
func (emu *EMU) ROMSize() int {
	return emu.romSize
}

// Quirks returns the active quirk selection.
func (emu *EMU) Quirks() Quirks {
	return emu.quirks
}

// Snapshot copies the register file.
func (emu *EMU) Snapshot() Snapshot {
	return Snapshot{
		V:          emu.V,
		I:          emu.I,
		PC:         emu.pc,
		SP:         emu.stack.sp,
		Stack:      emu.stack.entries,
		DelayTimer: emu.delayTimer,
		SoundTimer: emu.soundTimer,
		Key:        emu.key,
		Waiting:    emu.waiting,
	}
}
