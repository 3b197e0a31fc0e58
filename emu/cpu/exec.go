package cpu

import (
	"github.com/retroenv/retrogolib/log"
)

// Step fetches the instruction at PC, decodes it and applies its effect.
// On failure the returned error is a *Fault and the machine is left exactly
// as it was, so stepping again reproduces the fault.
//
// While Waiting is true Step does nothing until a key is latched.
func (emu *EMU) Step() error {
	word, err := emu.memory.Word(emu.pc)
	if err != nil {
		emu.opcode = 0
		return emu.fault(ErrOutOfBounds, "fetch past end of memory")
	}
	emu.opcode = word
	ins := Decode(word)

	if emu.trace {
		emu.logger.Debug("Step",
			log.Uint16("pc", emu.pc),
			log.Uint16("opcode", word),
			log.String("instruction", ins.String()))
	}

	if err := emu.execute(ins); err != nil {
		emu.logger.Debug("Execution fault", log.Err(err))
		return err
	}
	if !emu.waiting {
		emu.cycles++
	}
	return nil
}

func (emu *EMU) next() {
	emu.pc += 2
}

func (emu *EMU) skipIf(cond bool) {
	if cond {
		emu.pc += 4
	} else {
		emu.pc += 2
	}
}

func (emu *EMU) execute(ins Instruction) error {
	x, y := ins.X, ins.Y
	F := 0xF

	switch ins.Op {
	case OpSys:
		return emu.fault(ErrUnsupportedOpcode, "machine routine call to %03X", ins.NNN)

	case OpCls:
		emu.display.clear()
		emu.next()

	case OpRet:
		addr, ok := emu.stack.pop()
		if !ok {
			return emu.fault(ErrStackUnderflow, "return with empty stack")
		}
		emu.pc = addr + 2

	case OpJp:
		emu.pc = ins.NNN

	case OpCall:
		if !emu.stack.push(emu.pc) {
			return emu.fault(ErrStackOverflow, "call to %03X with %d frames", ins.NNN, StackDepth)
		}
		emu.pc = ins.NNN

	case OpSeByte:
		emu.skipIf(emu.V[x] == ins.NN)
	case OpSneByte:
		emu.skipIf(emu.V[x] != ins.NN)
	case OpSeReg:
		emu.skipIf(emu.V[x] == emu.V[y])
	case OpSneReg:
		emu.skipIf(emu.V[x] != emu.V[y])

	case OpLdByte:
		emu.V[x] = ins.NN
		emu.next()
	case OpAddByte:
		emu.V[x] += ins.NN
		emu.next()

	case OpLdReg:
		emu.V[x] = emu.V[y]
		emu.next()
	case OpOr:
		emu.V[x] |= emu.V[y]
		emu.next()
	case OpAnd:
		emu.V[x] &= emu.V[y]
		emu.next()
	case OpXor:
		emu.V[x] ^= emu.V[y]
		emu.next()

	// the flag is written after the result so VF holds the flag even
	// when X is F
	case OpAddReg:
		sum := uint16(emu.V[x]) + uint16(emu.V[y])
		emu.V[x] = uint8(sum)
		emu.V[F] = flag(sum > 0xFF)
		emu.next()
	case OpSub:
		vx, vy := emu.V[x], emu.V[y]
		emu.V[x] = vx - vy
		emu.V[F] = flag(vx >= vy)
		emu.next()
	case OpSubn:
		vx, vy := emu.V[x], emu.V[y]
		emu.V[x] = vy - vx
		emu.V[F] = flag(vy >= vx)
		emu.next()
	case OpShr:
		src := emu.shiftSource(x, y)
		emu.V[x] = src >> 1
		emu.V[F] = src & 0x01
		emu.next()
	case OpShl:
		src := emu.shiftSource(x, y)
		emu.V[x] = src << 1
		emu.V[F] = src >> 7
		emu.next()

	case OpLdI:
		emu.I = ins.NNN
		emu.next()
	case OpJpV0:
		emu.pc = ins.NNN + uint16(emu.V[0])
	case OpRnd:
		emu.V[x] = uint8(emu.rng.Intn(256)) & ins.NN
		emu.next()

	case OpDrw:
		return emu.draw(x, y, ins.N)

	case OpSkp:
		emu.skipIf(emu.pressed(emu.V[x]))
	case OpSknp:
		emu.skipIf(!emu.pressed(emu.V[x]))

	case OpLdVxDT:
		emu.V[x] = emu.delayTimer
		emu.next()
	case OpLdVxK:
		if emu.key == NoKey {
			emu.waiting = true
			return nil
		}
		emu.waiting = false
		emu.V[x] = uint8(emu.key)
		emu.next()
	case OpLdDTVx:
		emu.delayTimer = emu.V[x]
		emu.next()
	case OpLdSTVx:
		emu.soundTimer = emu.V[x]
		emu.next()
	case OpAddI:
		emu.I += uint16(emu.V[x])
		emu.next()
	case OpLdF:
		emu.I = glyphAddress(emu.V[x])
		emu.next()

	case OpLdB:
		digits, err := emu.memory.Span(emu.I, 3)
		if err != nil {
			return emu.fault(ErrOutOfBounds, "bcd store at %04X", emu.I)
		}
		v := emu.V[x]
		digits[0] = v / 100
		digits[1] = v / 10 % 10
		digits[2] = v % 10
		emu.next()

	case OpLdIVx:
		mem, err := emu.memory.Span(emu.I, int(x)+1)
		if err != nil {
			return emu.fault(ErrOutOfBounds, "register store at %04X", emu.I)
		}
		copy(mem, emu.V[:x+1])
		emu.advanceI(x)
		emu.next()
	case OpLdVxI:
		mem, err := emu.memory.Span(emu.I, int(x)+1)
		if err != nil {
			return emu.fault(ErrOutOfBounds, "register load at %04X", emu.I)
		}
		copy(emu.V[:x+1], mem)
		emu.advanceI(x)
		emu.next()

	default:
		return emu.fault(ErrUnsupportedOpcode, "")
	}
	return nil
}

// draw XORs an n-row sprite read from memory at I onto the display at
// (V[X], V[Y]). VF is cleared first and set if any lit pixel was erased.
func (emu *EMU) draw(x, y, n uint8) error {
	rows, err := emu.memory.Span(emu.I, int(n))
	if err != nil {
		return emu.fault(ErrOutOfBounds, "sprite at %04X height %d", emu.I, n)
	}
	vx, vy := emu.V[x], emu.V[y]
	emu.V[0xF] = 0
	if emu.display.drawSprite(vx, vy, rows, emu.quirks.ClipSprites) {
		emu.V[0xF] = 1
	}
	emu.next()
	return nil
}

// pressed reports whether the latched key is v. NoKey never matches, even
// when v holds the same value.
func (emu *EMU) pressed(v uint8) bool {
	return emu.key.Valid() && emu.key == Key(v)
}

func (emu *EMU) shiftSource(x, y uint8) uint8 {
	if emu.quirks.ShiftVX {
		return emu.V[x]
	}
	return emu.V[y]
}

func (emu *EMU) advanceI(x uint8) {
	if emu.quirks.IncrementI {
		emu.I += uint16(x) + 1
	}
}

func flag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
