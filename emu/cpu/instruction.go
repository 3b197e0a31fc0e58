package cpu

import "fmt"

// Op identifies a decoded instruction.
type Op uint8

// Instruction set. OpInvalid marks words with no defined meaning.
const (
	OpInvalid Op = iota
	OpSys        // 0NNN machine routine call, not supported
	OpCls        // 00E0
	OpRet        // 00EE
	OpJp         // 1NNN
	OpCall       // 2NNN
	OpSeByte     // 3XNN
	OpSneByte    // 4XNN
	OpSeReg      // 5XY0
	OpLdByte     // 6XNN
	OpAddByte    // 7XNN
	OpLdReg      // 8XY0
	OpOr         // 8XY1
	OpAnd        // 8XY2
	OpXor        // 8XY3
	OpAddReg     // 8XY4
	OpSub        // 8XY5
	OpShr        // 8XY6
	OpSubn       // 8XY7
	OpShl        // 8XYE
	OpSneReg     // 9XY0
	OpLdI        // ANNN
	OpJpV0       // BNNN
	OpRnd        // CXNN
	OpDrw        // DXYN
	OpSkp        // EX9E
	OpSknp       // EXA1
	OpLdVxDT     // FX07
	OpLdVxK      // FX0A
	OpLdDTVx     // FX15
	OpLdSTVx     // FX18
	OpAddI       // FX1E
	OpLdF        // FX29
	OpLdB        // FX33
	OpLdIVx      // FX55
	OpLdVxI      // FX65
)

var mnemonics = [...]string{
	OpInvalid: "???",
	OpSys:     "SYS",
	OpCls:     "CLS",
	OpRet:     "RET",
	OpJp:      "JP",
	OpCall:    "CALL",
	OpSeByte:  "SE",
	OpSneByte: "SNE",
	OpSeReg:   "SE",
	OpLdByte:  "LD",
	OpAddByte: "ADD",
	OpLdReg:   "LD",
	OpOr:      "OR",
	OpAnd:     "AND",
	OpXor:     "XOR",
	OpAddReg:  "ADD",
	OpSub:     "SUB",
	OpShr:     "SHR",
	OpSubn:    "SUBN",
	OpShl:     "SHL",
	OpSneReg:  "SNE",
	OpLdI:     "LD",
	OpJpV0:    "JP",
	OpRnd:     "RND",
	OpDrw:     "DRW",
	OpSkp:     "SKP",
	OpSknp:    "SKNP",
	OpLdVxDT:  "LD",
	OpLdVxK:   "LD",
	OpLdDTVx:  "LD",
	OpLdSTVx:  "LD",
	OpAddI:    "ADD",
	OpLdF:     "LD",
	OpLdB:     "LD",
	OpLdIVx:   "LD",
	OpLdVxI:   "LD",
}

// Mnemonic returns the assembler name of the operation.
func (op Op) Mnemonic() string {
	if int(op) < len(mnemonics) {
		return mnemonics[op]
	}
	return mnemonics[OpInvalid]
}

// Instruction is a decoded instruction word with its operand fields split
// out. Fields an operation does not use are still filled from the word.
type Instruction struct {
	Op   Op
	Word uint16
	X    uint8  // nibble 2, register index
	Y    uint8  // nibble 3, register index
	N    uint8  // low nibble
	NN   uint8  // low byte
	NNN  uint16 // low 12 bits, address
}

// Decode classifies a 16-bit instruction word. The high nibble selects the
// family; families 0, 5, 8, 9, E and F are further split on their low
// nibble or low byte.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word: word,
		X:    uint8(word>>8) & 0xF,
		Y:    uint8(word>>4) & 0xF,
		N:    uint8(word) & 0xF,
		NN:   uint8(word),
		NNN:  word & 0x0FFF,
	}
	ins.Op = decodeOp(word>>12, ins)
	return ins
}

func decodeOp(family uint16, ins Instruction) Op {
	switch family {
	case 0x0:
		switch ins.Word {
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		}
		return OpSys
	case 0x1:
		return OpJp
	case 0x2:
		return OpCall
	case 0x3:
		return OpSeByte
	case 0x4:
		return OpSneByte
	case 0x5:
		if ins.N == 0 {
			return OpSeReg
		}
	case 0x6:
		return OpLdByte
	case 0x7:
		return OpAddByte
	case 0x8:
		return decodeALU(ins.N)
	case 0x9:
		if ins.N == 0 {
			return OpSneReg
		}
	case 0xA:
		return OpLdI
	case 0xB:
		return OpJpV0
	case 0xC:
		return OpRnd
	case 0xD:
		return OpDrw
	case 0xE:
		switch ins.NN {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF:
		return decodeMisc(ins.NN)
	}
	return OpInvalid
}

func decodeALU(n uint8) Op {
	switch n {
	case 0x0:
		return OpLdReg
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddReg
	case 0x5:
		return OpSub
	case 0x6:
		return OpShr
	case 0x7:
		return OpSubn
	case 0xE:
		return OpShl
	}
	return OpInvalid
}

func decodeMisc(nn uint8) Op {
	switch nn {
	case 0x07:
		return OpLdVxDT
	case 0x0A:
		return OpLdVxK
	case 0x15:
		return OpLdDTVx
	case 0x18:
		return OpLdSTVx
	case 0x1E:
		return OpAddI
	case 0x29:
		return OpLdF
	case 0x33:
		return OpLdB
	case 0x55:
		return OpLdIVx
	case 0x65:
		return OpLdVxI
	}
	return OpInvalid
}

// IsSkip reports whether the instruction conditionally skips the next one.
func (ins Instruction) IsSkip() bool {
	switch ins.Op {
	case OpSeByte, OpSneByte, OpSeReg, OpSneReg, OpSkp, OpSknp:
		return true
	}
	return false
}

// IsBranch reports whether the instruction sets PC itself.
func (ins Instruction) IsBranch() bool {
	switch ins.Op {
	case OpJp, OpCall, OpRet, OpJpV0:
		return true
	}
	return false
}

// String renders the instruction in assembler syntax.
func (ins Instruction) String() string {
	name := ins.Op.Mnemonic()
	switch ins.Op {
	case OpInvalid:
		return fmt.Sprintf("DW $%04X", ins.Word)
	case OpCls, OpRet:
		return name
	case OpSys, OpJp, OpCall:
		return fmt.Sprintf("%s $%03X", name, ins.NNN)
	case OpSeByte, OpSneByte, OpLdByte, OpAddByte:
		return fmt.Sprintf("%s V%X, $%02X", name, ins.X, ins.NN)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpShr, OpSubn, OpShl:
		return fmt.Sprintf("%s V%X, V%X", name, ins.X, ins.Y)
	case OpLdI:
		return fmt.Sprintf("%s I, $%03X", name, ins.NNN)
	case OpJpV0:
		return fmt.Sprintf("%s V0, $%03X", name, ins.NNN)
	case OpRnd:
		return fmt.Sprintf("%s V%X, $%02X", name, ins.X, ins.NN)
	case OpDrw:
		return fmt.Sprintf("%s V%X, V%X, %d", name, ins.X, ins.Y, ins.N)
	case OpSkp, OpSknp:
		return fmt.Sprintf("%s V%X", name, ins.X)
	case OpLdVxDT:
		return fmt.Sprintf("%s V%X, DT", name, ins.X)
	case OpLdVxK:
		return fmt.Sprintf("%s V%X, K", name, ins.X)
	case OpLdDTVx:
		return fmt.Sprintf("%s DT, V%X", name, ins.X)
	case OpLdSTVx:
		return fmt.Sprintf("%s ST, V%X", name, ins.X)
	case OpAddI:
		return fmt.Sprintf("%s I, V%X", name, ins.X)
	case OpLdF:
		return fmt.Sprintf("%s F, V%X", name, ins.X)
	case OpLdB:
		return fmt.Sprintf("%s B, V%X", name, ins.X)
	case OpLdIVx:
		return fmt.Sprintf("%s [I], V%X", name, ins.X)
	case OpLdVxI:
		return fmt.Sprintf("%s V%X, [I]", name, ins.X)
	}
	return name
}
