package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// Fault kinds. A *Fault always carries one of these as its cause.
var (
	ErrUnsupportedOpcode = errors.New("unsupported opcode")
	ErrStackOverflow     = errors.New("stack overflow")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrOutOfBounds       = errors.New("address out of bounds")
	ErrProgramTooLarge   = errors.New("program too large")
)

// Fault is returned by Step when an instruction cannot be executed. The
// machine state is left as it was before the failing instruction.
type Fault struct {
	Kind   error
	Opcode uint16
	PC     uint16
	Detail string
}

func (f *Fault) Error() string {
	if f.Detail == "" {
		return fmt.Sprintf("%v: opcode %04X at %03X", f.Kind, f.Opcode, f.PC)
	}
	return fmt.Sprintf("%v: opcode %04X at %03X: %s", f.Kind, f.Opcode, f.PC, f.Detail)
}

// Cause returns the fault kind, for errors.Cause.
func (f *Fault) Cause() error { return f.Kind }

// Unwrap returns the fault kind, for errors.Is.
func (f *Fault) Unwrap() error { return f.Kind }

func (emu *EMU) fault(kind error, format string, args ...interface{}) *Fault {
	return &Fault{
		Kind:   kind,
		Opcode: emu.opcode,
		PC:     emu.pc,
		Detail: fmt.Sprintf(format, args...),
	}
}
