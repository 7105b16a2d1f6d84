package fixint

import "errors"

var (
	// ErrOverflow is returned by the checked operations when the true
	// result is not representable in the result kind.
	ErrOverflow = errors.New("fixint: arithmetic overflow")

	// ErrDivisionByZero is returned by the division family when the
	// divisor is zero. It is never conflated with ErrOverflow.
	ErrDivisionByZero = errors.New("fixint: division by zero")

	// ErrInexact is returned by conversions that would lose
	// information: narrowing out of range, sign loss, or a float that
	// is not an exact in-range integer.
	ErrInexact = errors.New("fixint: inexact conversion")
)
