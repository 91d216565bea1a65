package dice

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// expression captures quantity, size and an optional signed modifier.
var expression = regexp.MustCompile(
	`^(?P<quantity>\d+)[d\\/](?P<size>\d+)(?P<modifier>[+-]\d+)?$`,
)

var (
	quantityIndex = expression.SubexpIndex("quantity")
	sizeIndex     = expression.SubexpIndex("size")
	modifierIndex = expression.SubexpIndex("modifier")
)

// Parse converts each expression into a [Die], preserving input order.
//
// It fails with [ErrEmptyInput] when exprs is empty, and otherwise with the
// error of the first expression that cannot be parsed.
func Parse(exprs []string) ([]Die, error) {
	if len(exprs) == 0 {
		return nil, ErrEmptyInput
	}

	dice := make([]Die, 0, len(exprs))

	for _, expr := range exprs {
		d, err := ParseOne(expr)
		if err != nil {
			return nil, err
		}

		dice = append(dice, d)
	}

	return dice, nil
}

// ParseOne converts a single expression into a [Die].
// Surrounding whitespace is ignored.
func ParseOne(expr string) (Die, error) {
	match := expression.FindStringSubmatch(strings.TrimSpace(expr))
	if match == nil {
		return Die{}, ErrMalformedExpression.at(expr)
	}

	size, err := parseUint16(expr, "size", match[sizeIndex])
	if err != nil {
		return Die{}, err
	}

	quantity, err := parseUint16(expr, "quantity", match[quantityIndex])
	if err != nil {
		return Die{}, err
	}

	var modifier int16

	if m := match[modifierIndex]; m != "" {
		v, err := strconv.ParseInt(m, 10, 16)
		if err != nil {
			limit := math.MaxInt16
			if strings.HasPrefix(m, "-") {
				limit = math.MinInt16
			}

			return Die{}, overflow(expr, "modifier", m, limit)
		}

		modifier = int16(v)
	}

	d, err := New(quantity, size, modifier)
	if err != nil {
		return Die{}, err.(*Error).at(expr)
	}

	return d, nil
}

// parseUint16 parses a field matched by \d+, which can only fail on range.
func parseUint16(expr, field, s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, overflow(expr, field, s, math.MaxUint16)
	}

	return uint16(v), nil
}

func overflow(expr, field, value string, limit int) *Error {
	err := ErrNumericOverflow.at(expr)
	err.Field = field
	err.Value = value
	err.Limit = limit

	return err
}
