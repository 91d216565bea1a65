package pkg

// Sentinel errors shared by the diced packages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrReadConfig is returned when a configuration file cannot be read.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadConfig = MakeErrorf("read configuration")

// ErrDecodeConfig is returned when a configuration file cannot be decoded.
//
// This error should be wrapped with the underlying YAML or TOML error.
var ErrDecodeConfig = MakeErrorf("decode configuration")

// ErrEncodeConfig is returned when a configuration cannot be encoded.
var ErrEncodeConfig = MakeErrorf("encode configuration")

// ErrInvalidFormat is returned when an unsupported configuration format is
// requested, either explicitly or through a file extension.
var ErrInvalidFormat = MakeErrorf("invalid format")

// ErrProfileNotFound is returned when a requested profile is not defined.
//
// This error should be wrapped with the identifier of the missing profile.
var ErrProfileNotFound = MakeErrorf("profile not found")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the outermost error in the chain.
// Nil errors are skipped.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, err)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ".
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(slices.Clip(e), MakeError(err...)...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(slices.Clip(e), fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether target is an Error rooted at the same sentinel as e.
// It makes errors.Is work for chains built with [Error.Wrap], since slices
// are not comparable.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(e) == 0 || len(t) == 0 {
		return false
	}

	return e[0] == t[0]
}
