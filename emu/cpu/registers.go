package cpu

// StackDepth is the number of return addresses the call stack holds.
const StackDepth = 16

// Key is a keypad code 0x0-0xF, or NoKey.
type Key uint8

// NoKey is latched when no key is held.
const NoKey Key = 0xFF

// Valid reports whether k is a keypad code.
func (k Key) Valid() bool {
	return k <= 0xF
}

// stack is the fixed-depth call stack. sp is the number of entries held.
type stack struct {
	entries [StackDepth]uint16
	sp      uint8
}

func (s *stack) push(addr uint16) bool {
	if int(s.sp) >= len(s.entries) {
		return false
	}
	s.entries[s.sp] = addr
	s.sp++
	return true
}

func (s *stack) pop() (uint16, bool) {
	if s.sp == 0 {
		return 0, false
	}
	s.sp--
	return s.entries[s.sp], true
}

// Snapshot is a value copy of the register file.
type Snapshot struct {
	V          [16]uint8
	I          uint16
	PC         uint16
	SP         uint8
	Stack      [StackDepth]uint16
	DelayTimer uint8
	SoundTimer uint8
	Key        Key
	Waiting    bool
}
