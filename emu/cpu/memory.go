package cpu

import "github.com/pkg/errors"

const (
	// MemorySize is the size of the addressable store.
	MemorySize = 0x1000
	// ProgramStart is where programs are loaded and where execution begins.
	ProgramStart = 0x200
	// FontStart is the address of the built-in glyph table.
	FontStart = 0x050
	// MaxProgramSize is the largest image LoadROM accepts.
	MaxProgramSize = MemorySize - ProgramStart
)

// Memory is the flat 4KB store. Every access is checked against its length;
// addresses never wrap.
type Memory [MemorySize]uint8

// Span returns the n bytes starting at addr. The returned slice aliases
// memory.
func (m *Memory) Span(addr uint16, n int) ([]uint8, error) {
	end := int(addr) + n
	if n < 0 || end > len(m) {
		return nil, errors.Wrapf(ErrOutOfBounds, "span %04X+%d", addr, n)
	}
	return m[addr:end], nil
}

// Word returns the big-endian instruction word at addr.
func (m *Memory) Word(addr uint16) (uint16, error) {
	b, err := m.Span(addr, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}
