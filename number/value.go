package number

import "circlelang/bigint"

// Value is a rational function of π with arbitrary-precision integer
// coefficients: numerator/denominator, each a polynomial indexed by
// increasing powers of π. It is the only scalar type in circle-lang.
type Value struct {
	numerator   []bigint.Int
	denominator []bigint.Int
}

// FromInt builds the Value for a literal big integer n, the shape every
// digit-run token in source and every array-position key is built from:
// [0, n]/[1] (= n·π), or []/[1] if n is zero. Note this means plain
// numerals denote multiples of π, not the integers themselves — the
// canonical truthy Value, [0,1]/[1], is exactly FromInt(1).
func FromInt(n bigint.Int) Value {
	if n.IsZero() {
		return Value{denominator: []bigint.Int{bigint.One()}}
	}
	return Value{
		numerator:   []bigint.Int{bigint.Zero(), n},
		denominator: []bigint.Int{bigint.One()},
	}
}

// FromLetters builds the Value for an identifier-shaped token: its
// lexicographically minimal rotation s' gives numerator coefficients
// s'[i]·256^i, denominator [1]. abc and cab therefore denote the same
// scalar.
func FromLetters(s string) Value {
	if s == "" {
		return FromInt(bigint.Zero())
	}
	rotated := minimalRotation(s)
	const letterBase = 256
	base := bigint.One()
	b := bigint.New(letterBase)
	num := make([]bigint.Int, len(rotated))
	for i := 0; i < len(rotated); i++ {
		num[i] = base.Mul(bigint.New(int64(rotated[i])))
		base = base.Mul(b)
	}
	n, d := simplify(num, []bigint.Int{bigint.One()})
	return Value{numerator: n, denominator: d}
}

// FromPoly builds a Value from explicit numerator/denominator polynomials,
// immediately simplified. den must not be the empty polynomial (zero
// denominator is a caller error, not a representable Value).
func FromPoly(num, den []bigint.Int) Value {
	n, d := simplify(append([]bigint.Int(nil), num...), append([]bigint.Int(nil), den...))
	if len(d) == 0 {
		d = []bigint.Int{bigint.One()}
	}
	return Value{numerator: n, denominator: d}
}

// Truthy is the canonical truthy scalar, [0,1]/[1] = π.
func Truthy() Value { return FromInt(bigint.One()) }

// Falsey is the canonical falsey scalar, []/[1] = 0.
func Falsey() Value { return FromInt(bigint.Zero()) }

func boolValue(b bool) Value {
	if b {
		return Truthy()
	}
	return Falsey()
}

// Numerator returns a defensive copy of the numerator polynomial.
func (v Value) Numerator() []bigint.Int { return append([]bigint.Int(nil), v.numerator...) }

// Denominator returns a defensive copy of the denominator polynomial.
func (v Value) Denominator() []bigint.Int { return append([]bigint.Int(nil), v.denominator...) }

// IsTruthy reports whether v is non-zero (its numerator is non-empty).
func (v Value) IsTruthy() bool { return len(v.numerator) > 0 }

func (v Value) den() []bigint.Int {
	if len(v.denominator) == 0 {
		return []bigint.Int{bigint.One()}
	}
	return v.denominator
}

// Add returns a+b.
func Add(a, b Value) Value {
	num := polyAdd(polyMul(a.numerator, b.den()), polyMul(b.numerator, a.den()))
	den := polyMul(a.den(), b.den())
	n, d := simplify(num, den)
	return Value{numerator: n, denominator: d}
}

// Sub returns a-b.
func Sub(a, b Value) Value {
	num := polySub(polyMul(a.numerator, b.den()), polyMul(b.numerator, a.den()))
	den := polyMul(a.den(), b.den())
	n, d := simplify(num, den)
	return Value{numerator: n, denominator: d}
}

// piMonomial is the polynomial [0,1], i.e. the scalar π itself — every
// literal numeral embeds its integer at exactly this degree (FromInt).
var piMonomial = []bigint.Int{bigint.Zero(), bigint.One()}

// Mul returns a*b. Plain cross-multiplied convolution would double the
// π-degree every literal numeral is embedded at (FromInt(2) is 2π, so
// naive convolution would make 2π·3π equal 6π², not 6π): the glossary's
// pointer-arithmetic idiom, "incrementing (P) by 1*1 adds π", only holds
// if 1*1 equals the canonical truthy unit π itself, not π². Multiplying
// in an extra π on the denominator side restores that: simplify's
// leading-zero cancellation then divides the spurious extra π back out
// of both sides whenever the operands' constant terms allow it (which
// they always do for plain numerals), keeping products of integers on
// the same integer-multiple-of-π sublattice addition and subtraction
// already live on.
func Mul(a, b Value) Value {
	num := polyMul(a.numerator, b.numerator)
	den := polyMul(polyMul(a.den(), b.den()), piMonomial)
	n, d := simplify(num, den)
	return Value{numerator: n, denominator: d}
}

// Div returns a/b, the inverse of Mul: an extra π is multiplied into the
// numerator to compensate for the degree a naive cross-multiplied
// quotient would otherwise lose (6π/2π would simplify to the bare
// rational 3 with no π factor at all, rather than 3π). Division by zero
// is not special-cased up front: it naturally produces an empty
// denominator after simplification, which is the condition this function
// rejects with an error, per §4.2.
func Div(a, b Value) (Value, error) {
	num := polyMul(polyMul(a.numerator, b.den()), piMonomial)
	den := polyMul(a.den(), b.numerator)
	n, d := simplify(num, den)
	if len(d) == 0 {
		return Value{}, errDivisionByZero
	}
	return Value{numerator: n, denominator: d}, nil
}

// And implements &&: coerced-truth logical and, returning a canonical
// boolean Value.
func And(a, b Value) Value { return boolValue(a.IsTruthy() && b.IsTruthy()) }

// Or implements ||.
func Or(a, b Value) Value { return boolValue(a.IsTruthy() || b.IsTruthy()) }

// Not implements unary !.
func Not(a Value) Value { return boolValue(!a.IsTruthy()) }

// Neg implements unary -.
func Neg(a Value) Value {
	n, d := simplify(negPoly(a.numerator), a.den())
	return Value{numerator: n, denominator: d}
}

func negPoly(p []bigint.Int) []bigint.Int {
	out := make([]bigint.Int, len(p))
	for i, c := range p {
		out[i] = c.Neg()
	}
	return out
}

// Equal implements ==: cross-multiplied numerators must agree
// coefficient-wise starting from coefficient 1. The constant terms
// (coefficient 0) are deliberately ignored, so array keys built by
// arithmetic on π compare structurally rather than by absolute value.
func Equal(a, b Value) bool {
	lhs := polyMul(a.numerator, b.den())
	rhs := polyMul(b.numerator, a.den())
	n := len(lhs)
	if len(rhs) > n {
		n = len(rhs)
	}
	for i := 1; i < n; i++ {
		if !coeffAt(lhs, i).Equal(coeffAt(rhs, i)) {
			return false
		}
	}
	return true
}

// NotEqual implements !=.
func NotEqual(a, b Value) bool { return !Equal(a, b) }

// EqualValue evaluates == and returns the canonical boolean Value.
func EqualValue(a, b Value) Value { return boolValue(Equal(a, b)) }

// NotEqualValue evaluates !=.
func NotEqualValue(a, b Value) Value { return boolValue(NotEqual(a, b)) }

// String renders v for debugging (debugger "g" dump, diagnostics), as
// "num/den" using each polynomial's coefficient list.
func (v Value) String() string {
	return polyString(v.numerator) + "/" + polyString(v.den())
}

func polyString(p []bigint.Int) string {
	if len(p) == 0 {
		return "[]"
	}
	s := "["
	for i, c := range p {
		if i > 0 {
			s += ","
		}
		s += c.String()
	}
	return s + "]"
}
