package dice

import (
	"strconv"
	"strings"
)

// Die describes a batch of identical dice to roll.
//
// The zero value is not a valid die; construct one with [New] or [ParseOne].
type Die struct {
	// Quantity is the number of dice to roll.
	Quantity uint16
	// Size is the number of sides on each die, at least 1.
	Size uint16
	// Modifier is added to each rolled value.
	Modifier int16
}

// New returns a validated die.
// It fails with [ErrInvalidDieSize] if size is less than 1.
func New(quantity, size uint16, modifier int16) (Die, error) {
	if size < 1 {
		err := *ErrInvalidDieSize
		err.Value = strconv.Itoa(int(size))
		err.Limit = 1

		return Die{}, &err
	}

	return Die{Quantity: quantity, Size: size, Modifier: modifier}, nil
}

// String returns the canonical expression of d, such as "2d6+1".
func (d Die) String() string {
	var sb strings.Builder

	sb.WriteString(strconv.Itoa(int(d.Quantity)))
	sb.WriteByte('d')
	sb.WriteString(strconv.Itoa(int(d.Size)))

	if d.Modifier != 0 {
		sb.WriteString(d.ModifierString())
	}

	return sb.String()
}

// ModifierString returns the signed modifier, such as "+1" or "-2".
// A zero modifier is rendered as "+0".
func (d Die) ModifierString() string {
	if d.Modifier < 0 {
		// Widen first: -math.MinInt16 does not fit in int16.
		return "-" + strconv.Itoa(-int(d.Modifier))
	}

	return "+" + strconv.Itoa(int(d.Modifier))
}

// MarshalText implements encoding.TextMarshaler using the canonical
// expression, so dice can be stored in configuration files.
func (d Die) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing an expression.
func (d *Die) UnmarshalText(text []byte) error {
	parsed, err := ParseOne(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
