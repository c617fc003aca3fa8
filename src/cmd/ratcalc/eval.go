package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ratio/src/math/rational"
	"ratio/src/math/scalar"
)

var (
	ErrUnknownScalar  = errors.New("unknown scalar")
	ErrUnknownFormat  = errors.New("unknown format")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrStackLeftover  = errors.New("expression leaves more than one value")
	ErrEmpty          = errors.New("empty expression")
)

// Calculate evaluates the RPN expression in tokens with the scalar and
// output format named by cfg.
func Calculate(cfg *Config, tokens []string, logger *zap.Logger) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	switch cfg.Scalar {
	case "int128":
		return calc(tokens, scalar.ParseInt128, cfg.Format, logger)
	case "big":
		return calc(tokens, scalar.ParseBigInt, cfg.Format, logger)
	}
	return calc(tokens, scalar.ParseInt64, cfg.Format, logger)
}

func calc[S scalar.Scalar[S]](tokens []string, parse func(string) (S, error), format string, logger *zap.Logger) (string, error) {
	r, err := evaluate(tokens, parse, logger)
	if err != nil {
		return "", err
	}
	if format == "latex" {
		return r.LaTeX(), nil
	}
	return r.String(), nil
}

type stack[S scalar.Scalar[S]] []rational.Rational[S]

func (s *stack[S]) push(r rational.Rational[S]) { *s = append(*s, r) }

func (s *stack[S]) pop() rational.Rational[S] {
	top := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return top
}

func (s stack[S]) need(n int) error {
	if len(s) < n {
		return fmt.Errorf("%w: need %d, have %d", ErrStackUnderflow, n, len(s))
	}
	return nil
}

func evaluate[S scalar.Scalar[S]](tokens []string, parse func(string) (S, error), logger *zap.Logger) (rational.Rational[S], error) {
	var s stack[S]
	if len(tokens) == 0 {
		return rational.Rational[S]{}, ErrEmpty
	}

	for i, tok := range tokens {
		if err := s.step(tok, parse); err != nil {
			return rational.Rational[S]{}, fmt.Errorf("token %d %q: %w", i+1, tok, err)
		}
		logger.Debug("evaluated token",
			zap.String("token", tok),
			zap.Int("depth", len(s)),
			zap.Stringer("top", s[len(s)-1]))
	}

	if len(s) > 1 {
		return rational.Rational[S]{}, fmt.Errorf("%w: %d values", ErrStackLeftover, len(s))
	}
	return s[0], nil
}

// step applies one token. Panics from the rational package are returned as
// errors.
func (s *stack[S]) step(tok string, parse func(string) (S, error)) (err error) {
	defer rational.Recover(&err)

	switch tok {
	case "+", "-", "*", "/", "%":
		if err := s.need(2); err != nil {
			return err
		}
		y, x := s.pop(), s.pop()
		switch tok {
		case "+":
			x.AddAssign(y)
		case "-":
			x.SubAssign(y)
		case "*":
			x.MulAssign(y)
		case "/":
			x.QuoAssign(y)
		case "%":
			x.RemAssign(y)
		}
		s.push(x)
		return nil

	case "neg", "inv", "sq":
		if err := s.need(1); err != nil {
			return err
		}
		x := s.pop()
		switch tok {
		case "neg":
			s.push(x.Neg())
		case "inv":
			s.push(x.Inv())
		case "sq":
			s.push(x.MagSquare())
		}
		return nil
	}

	if k, ok := strings.CutPrefix(tok, "e"); ok {
		power, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("%w: %q", scalar.ErrSyntax, tok)
		}
		var r rational.Rational[S]
		s.push(r.OrderOf(power))
		return nil
	}

	r, err := parseOperand(tok, parse)
	if err != nil {
		return err
	}
	s.push(r)
	return nil
}

// parseOperand reads "a" or "a/b".
func parseOperand[S scalar.Scalar[S]](tok string, parse func(string) (S, error)) (rational.Rational[S], error) {
	ns, ds, frac := strings.Cut(tok, "/")
	n, err := parse(ns)
	if err != nil {
		return rational.Rational[S]{}, err
	}
	if !frac {
		return rational.Whole(n), nil
	}
	d, err := parse(ds)
	if err != nil {
		return rational.Rational[S]{}, err
	}
	return rational.Try(n, d)
}
