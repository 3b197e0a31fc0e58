package cpu

import (
	"fmt"
	"io"
)

// Disassemble writes a listing of program, as loaded at ProgramStart, one
// instruction word per line. A trailing odd byte is listed as data.
func Disassemble(w io.Writer, program []byte) error {
	addr := uint16(ProgramStart)
	for i := 0; i+1 < len(program); i += 2 {
		word := uint16(program[i])<<8 | uint16(program[i+1])
		ins := Decode(word)
		if _, err := fmt.Fprintf(w, "%03X  %04X  %s\n", addr, word, ins); err != nil {
			return err
		}
		addr += 2
	}
	if len(program)%2 == 1 {
		_, err := fmt.Fprintf(w, "%03X  %02X    DB $%02X\n", addr, program[len(program)-1], program[len(program)-1])
		return err
	}
	return nil
}
