package roll

import (
	"log/slog"

	"github.com/ardnew/diced/dice"
)

// Result holds the raw samples of one rolled die descriptor.
type Result struct {
	Die   dice.Die
	Rolls []uint16
}

// Values returns each sample adjusted by the modifier.
//
// The addition wraps in 16-bit signed arithmetic, so large samples combined
// with large modifiers may roll over to negative values.
func (r Result) Values() []int16 {
	values := make([]int16, len(r.Rolls))
	for i, v := range r.Rolls {
		values[i] = r.Die.Modifier + int16(v)
	}

	return values
}

// Sum returns the total of all samples plus Quantity times Modifier.
func (r Result) Sum() int {
	sum := int(r.Die.Quantity) * int(r.Die.Modifier)
	for _, v := range r.Rolls {
		sum += int(v)
	}

	return sum
}

// CritSuccesses counts the samples equal to the die size.
func (r Result) CritSuccesses() int {
	return r.count(r.Die.Size)
}

// CritFailures counts the samples equal to 1.
func (r Result) CritFailures() int {
	return r.count(1)
}

func (r Result) count(face uint16) int {
	n := 0

	for _, v := range r.Rolls {
		if v == face {
			n++
		}
	}

	return n
}

// LogValue implements slog.LogValuer.
func (r Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("die", r.Die.String()),
		slog.Any("rolls", r.Rolls),
		slog.Int("sum", r.Sum()),
	)
}

// Throw is one throw of a die descriptor. In painful mode the first result
// may be discarded in favor of Reroll.
type Throw struct {
	First  Result
	Reroll *Result
}

// Final returns the result that counts.
func (t Throw) Final() Result {
	if t.Reroll != nil {
		return *t.Reroll
	}

	return t.First
}

// Fumbled reports whether the first result rolled off the table.
func (t Throw) Fumbled() bool {
	return t.Reroll != nil
}
