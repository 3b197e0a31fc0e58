package cpu

import "github.com/pkg/errors"

// Quirks select between behaviors where historical interpreters disagree.
// The zero value is the original COSMAC VIP shift with wrapping sprites and
// FX55/FX65 leaving I untouched.
type Quirks struct {
	// ShiftVX makes 8XY6 and 8XYE shift V[X] in place. By default V[Y] is
	// shifted and the result stored in V[X].
	ShiftVX bool
	// ClipSprites drops sprite pixels past the right and bottom edge
	// instead of wrapping them to the opposite side.
	ClipSprites bool
	// IncrementI leaves I pointing past the last register transferred by
	// FX55 and FX65.
	IncrementI bool
}

// ShiftSource names the register shifted by 8XY6/8XYE, as used in
// configuration files.
func (q Quirks) ShiftSource() string {
	if q.ShiftVX {
		return "vx"
	}
	return "vy"
}

// ParseShiftSource sets ShiftVX from a "vx" or "vy" setting.
func (q *Quirks) ParseShiftSource(s string) error {
	switch s {
	case "vy", "VY", "":
		q.ShiftVX = false
	case "vx", "VX":
		q.ShiftVX = true
	default:
		return errors.Errorf("unknown shift source %q, expected vx or vy", s)
	}
	return nil
}
