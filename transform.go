package svgdom

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Transform is a 2D affine matrix:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Transform struct {
	A, B, C, D, E, F float64
}

func (Transform) isValue() {}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// NewTranslate returns a translation matrix.
func NewTranslate(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, E: tx, F: ty}
}

// NewScale returns a scale matrix.
func NewScale(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// NewRotate returns a rotation matrix for an angle in degrees.
func NewRotate(deg float64) Transform {
	rad := deg * math.Pi / 180
	s, c := math.Sin(rad), math.Cos(rad)
	return Transform{A: c, B: s, C: -s, D: c}
}

// NewSkewX returns a skew matrix along the x axis for an angle in degrees.
func NewSkewX(deg float64) Transform {
	return Transform{A: 1, D: 1, C: math.Tan(deg * math.Pi / 180)}
}

// NewSkewY returns a skew matrix along the y axis for an angle in degrees.
func NewSkewY(deg float64) Transform {
	return Transform{A: 1, D: 1, B: math.Tan(deg * math.Pi / 180)}
}

// Mul returns t×o, applying o before t.
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		A: t.A*o.A + t.C*o.B,
		B: t.B*o.A + t.D*o.B,
		C: t.A*o.C + t.C*o.D,
		D: t.B*o.C + t.D*o.D,
		E: t.A*o.E + t.C*o.F + t.E,
		F: t.B*o.E + t.D*o.F + t.F,
	}
}

// Apply maps a point through the transform.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// IsIdentity reports whether the transform is (fuzzily) the identity.
func (t Transform) IsIdentity() bool {
	return t.fuzzyEq(Identity())
}

// IsTranslate reports whether the transform is a pure translation.
func (t Transform) IsTranslate() bool {
	return fuzzyEq(t.A, 1) && fuzzyZero(t.B) && fuzzyZero(t.C) && fuzzyEq(t.D, 1)
}

// IsScale reports whether the transform is a pure scale.
func (t Transform) IsScale() bool {
	return fuzzyZero(t.B) && fuzzyZero(t.C) && fuzzyZero(t.E) && fuzzyZero(t.F)
}

// IsProportionalScale reports a pure scale with equal factors.
func (t Transform) IsProportionalScale() bool {
	return t.IsScale() && fuzzyEq(t.A, t.D)
}

// IsRotate reports whether the transform is a rotation about the origin.
func (t Transform) IsRotate() bool {
	return fuzzyZero(t.E) && fuzzyZero(t.F) &&
		fuzzyEq(t.A, t.D) && fuzzyEq(t.B, -t.C) &&
		fuzzyEq(t.A*t.A+t.B*t.B, 1)
}

// IsSkewX reports a pure skew along x.
func (t Transform) IsSkewX() bool {
	return fuzzyEq(t.A, 1) && fuzzyZero(t.B) && fuzzyEq(t.D, 1) &&
		fuzzyZero(t.E) && fuzzyZero(t.F) && !fuzzyZero(t.C)
}

// IsSkewY reports a pure skew along y.
func (t Transform) IsSkewY() bool {
	return fuzzyEq(t.A, 1) && fuzzyZero(t.C) && fuzzyEq(t.D, 1) &&
		fuzzyZero(t.E) && fuzzyZero(t.F) && !fuzzyZero(t.B)
}

func (t Transform) fuzzyEq(o Transform) bool {
	return fuzzyEq(t.A, o.A) && fuzzyEq(t.B, o.B) && fuzzyEq(t.C, o.C) &&
		fuzzyEq(t.D, o.D) && fuzzyEq(t.E, o.E) && fuzzyEq(t.F, o.F)
}

// ParseTransform parses an SVG transform list into a single matrix.
func ParseTransform(s string) (Transform, error) {
	sc := numScanner{s: s}
	sc.skipSpace()

	t := Identity()
	seen := false
	for !sc.atEnd() {
		name := sc.ident()
		sc.skipSpace()
		if sc.atEnd() || sc.s[sc.pos] != '(' {
			return Transform{}, fmt.Errorf("expected '(' after %q", name)
		}
		sc.pos++
		sc.skipSpace()

		args, err := sc.argList()
		if err != nil {
			return Transform{}, err
		}
		if sc.atEnd() || sc.s[sc.pos] != ')' {
			return Transform{}, errors.New("expected ')'")
		}
		sc.pos++

		var m Transform
		switch name {
		case "matrix":
			if len(args) != 6 {
				return Transform{}, errors.New("matrix requires 6 arguments")
			}
			m = Transform{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}
		case "translate":
			switch len(args) {
			case 1:
				m = NewTranslate(args[0], 0)
			case 2:
				m = NewTranslate(args[0], args[1])
			default:
				return Transform{}, errors.New("translate requires 1 or 2 arguments")
			}
		case "scale":
			switch len(args) {
			case 1:
				m = NewScale(args[0], args[0])
			case 2:
				m = NewScale(args[0], args[1])
			default:
				return Transform{}, errors.New("scale requires 1 or 2 arguments")
			}
		case "rotate":
			switch len(args) {
			case 1:
				m = NewRotate(args[0])
			case 3:
				m = NewTranslate(args[1], args[2]).
					Mul(NewRotate(args[0])).
					Mul(NewTranslate(-args[1], -args[2]))
			default:
				return Transform{}, errors.New("rotate requires 1 or 3 arguments")
			}
		case "skewX":
			if len(args) != 1 {
				return Transform{}, errors.New("skewX requires 1 argument")
			}
			m = NewSkewX(args[0])
		case "skewY":
			if len(args) != 1 {
				return Transform{}, errors.New("skewY requires 1 argument")
			}
			m = NewSkewY(args[0])
		default:
			return Transform{}, fmt.Errorf("unknown transform %q", name)
		}

		t = t.Mul(m)
		seen = true
		sc.skipCommaSpace()
	}
	if !seen {
		return Transform{}, errors.New("empty transform list")
	}
	return t, nil
}

func (sc *numScanner) ident() string {
	start := sc.pos
	for sc.pos < len(sc.s) {
		c := sc.s[sc.pos]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			sc.pos++
			continue
		}
		break
	}
	return sc.s[start:sc.pos]
}

func (sc *numScanner) argList() ([]float64, error) {
	var args []float64
	for {
		sc.skipSpace()
		if sc.atEnd() || sc.s[sc.pos] == ')' {
			return args, nil
		}
		n, err := sc.number()
		if err != nil {
			return nil, err
		}
		args = append(args, n)
		sc.skipSpace()
		if !sc.atEnd() && sc.s[sc.pos] == ',' {
			sc.pos++
		}
	}
}

func (t Transform) writeTo(b *strings.Builder, opts *WriteOptions) {
	prec := opts.transformsPrecision()
	num := func(v float64) string {
		return formatNumber(v, prec, opts.RemoveLeadingZero)
	}
	sep := opts.ListSeparator.String()

	if opts.SimplifyTransformMatrices {
		switch {
		case t.IsTranslate():
			b.WriteString("translate(")
			b.WriteString(num(t.E))
			if !fuzzyZero(t.F) {
				b.WriteString(sep)
				b.WriteString(num(t.F))
			}
			b.WriteByte(')')
			return
		case t.IsScale():
			b.WriteString("scale(")
			b.WriteString(num(t.A))
			if !fuzzyEq(t.A, t.D) {
				b.WriteString(sep)
				b.WriteString(num(t.D))
			}
			b.WriteByte(')')
			return
		case t.IsRotate():
			b.WriteString("rotate(")
			b.WriteString(num(math.Atan2(t.B, t.A) * 180 / math.Pi))
			b.WriteByte(')')
			return
		case t.IsSkewX():
			b.WriteString("skewX(")
			b.WriteString(num(math.Atan(t.C) * 180 / math.Pi))
			b.WriteByte(')')
			return
		case t.IsSkewY():
			b.WriteString("skewY(")
			b.WriteString(num(math.Atan(t.B) * 180 / math.Pi))
			b.WriteByte(')')
			return
		}
	}

	b.WriteString("matrix(")
	for i, v := range [6]float64{t.A, t.B, t.C, t.D, t.E, t.F} {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(num(v))
	}
	b.WriteByte(')')
}
