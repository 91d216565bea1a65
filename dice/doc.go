// Package dice parses textual dice expressions into die descriptors.
//
// An expression names a quantity of identical dice, their number of sides and
// an optional signed modifier:
//
//	1d20      one twenty-sided die
//	2d6+1     two six-sided dice, each adjusted by +1
//	4/6-2     "/" (or "\") may replace "d"
//
// Quantity and size are limited to 16-bit unsigned values and the modifier to
// a 16-bit signed value. A die must have at least one side.
//
// Errors returned by [Parse], [ParseOne] and [New] are [*Error] values that
// match the sentinels [ErrMalformedExpression], [ErrNumericOverflow],
// [ErrInvalidDieSize] and [ErrEmptyInput] with [errors.Is].
package dice
