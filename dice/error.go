package dice

import (
	"log/slog"
	"strconv"
	"strings"
)

// Kind classifies a dice error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindMalformedExpression: the input does not match the grammar.
	KindMalformedExpression
	// KindNumericOverflow: a numeric field exceeds its 16-bit range.
	KindNumericOverflow
	// KindInvalidDieSize: the die has fewer than one side.
	KindInvalidDieSize
	// KindEmptyInput: no expressions were supplied.
	KindEmptyInput
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMalformedExpression:
		return "MalformedExpression"
	case KindNumericOverflow:
		return "NumericOverflow"
	case KindInvalidDieSize:
		return "InvalidDieSize"
	case KindEmptyInput:
		return "EmptyInput"
	default:
		return "Unknown"
	}
}

// Predefined errors (sentinel values), matched by kind with errors.Is.
var (
	ErrMalformedExpression = &Error{Kind: KindMalformedExpression}
	ErrNumericOverflow     = &Error{Kind: KindNumericOverflow}
	ErrInvalidDieSize      = &Error{Kind: KindInvalidDieSize}
	ErrEmptyInput          = &Error{Kind: KindEmptyInput}
)

// Error describes why a dice expression or descriptor was rejected.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	Kind  Kind
	Input string // offending expression, if any
	Field string // numeric field name for KindNumericOverflow
	Limit int    // violated bound for KindNumericOverflow and KindInvalidDieSize
	Value string // offending field value, as written

	attrs []slog.Attr
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	switch e.Kind {
	case KindEmptyInput:
		return "no dice supplied"

	case KindInvalidDieSize:
		if e.Input == "" {
			return "improper die size " + e.Value
		}

		sb.WriteString("invalid die expression ")
		sb.WriteString(strconv.Quote(e.Input))
		sb.WriteString(": improper die size ")
		sb.WriteString(e.Value)

	case KindNumericOverflow:
		sb.WriteString("invalid die expression ")
		sb.WriteString(strconv.Quote(e.Input))
		sb.WriteString(": ")
		sb.WriteString(e.Field)
		if e.Limit < 0 {
			sb.WriteString(" too small [limit is ")
		} else {
			sb.WriteString(" too large [limit is ")
		}

		sb.WriteString(strconv.Itoa(e.Limit))
		sb.WriteString("]")

	case KindMalformedExpression:
		sb.WriteString("invalid die expression ")
		sb.WriteString(strconv.Quote(e.Input))

	default:
		sb.WriteString("invalid die")
	}

	return sb.String()
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrNumericOverflow) matches any overflow error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Kind == e.Kind
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+5)

	attrs = append(attrs,
		slog.String("error", e.Error()),
		slog.String("kind", e.Kind.String()),
	)

	if e.Input != "" {
		attrs = append(attrs, slog.String("input", e.Input))
	}

	if e.Field != "" {
		attrs = append(attrs,
			slog.String("field", e.Field),
			slog.Int("limit", e.Limit),
		)
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	clone := *e
	clone.attrs = append(e.attrs[:len(e.attrs):len(e.attrs)], attrs...)

	return &clone
}

// at returns a copy of e describing the given input.
func (e *Error) at(input string) *Error {
	clone := *e
	clone.Input = input

	return &clone
}
