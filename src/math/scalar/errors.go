package scalar

import "errors"

var (
	ErrNegativePower = errors.New("scalar: negative power of ten is not an integer")
	ErrDivideByZero  = errors.New("scalar: division by zero")
	ErrSyntax        = errors.New("scalar: invalid syntax")
	ErrRange         = errors.New("scalar: value out of range")
)
