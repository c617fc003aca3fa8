package rational

import (
	"fmt"

	"ratio/src/math/scalar"
)

// String returns x as "(n/d)". The stored pair is rendered as is, reduced or
// not.
func (x Rational[S]) String() string {
	return fmt.Sprintf("(%v/%v)", x.n, x.den())
}

// LaTeX returns x as "\frac{n}{d}". Scalars implementing scalar.LaTeXer are
// typeset with it, others with their plain form.
func (x Rational[S]) LaTeX() string {
	return `\frac{` + latex(x.n) + `}{` + latex(x.den()) + `}`
}

func latex(v any) string {
	if l, ok := v.(scalar.LaTeXer); ok {
		return l.LaTeX()
	}
	return fmt.Sprint(v)
}
