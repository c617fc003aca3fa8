package rational

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	ErrZeroDenominator = errors.New("rational: zero denominator")
	ErrDivisionByZero  = errors.New("rational: division by zero")
	ErrNegativeOperand = errors.New("rational: cannot compute GCF of negative operands")
	ErrUnsupported     = errors.New("rational: unsupported by scalar")
)

func unsupported[S any](what string) error {
	var s S
	return fmt.Errorf("%w: %T has no %s", ErrUnsupported, s, what)
}

// Must returns r, or panics if err is not nil.
func Must[S any](r S, err error) S {
	if err != nil {
		panic(err)
	}
	return r
}

// Recover stores any panicking error value in *err, including scalar errors
// such as scalar.ErrDivideByZero. It must be deferred:
//
//	func eval() (r rational.Rational[scalar.Int64], err error) {
//		defer rational.Recover(&err)
//		...
//	}
//
// Runtime errors (runtime.Error) and non-error panics are re-raised.
func Recover(err *error) {
	v := recover()
	if v == nil {
		return
	}
	e, ok := v.(error)
	if !ok {
		panic(v)
	}
	var re runtime.Error
	if errors.As(e, &re) {
		panic(v)
	}
	*err = e
}
