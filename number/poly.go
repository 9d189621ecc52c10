// Package number implements circle-lang's only scalar type: a symbolic
// number represented as a rational function of π with arbitrary-precision
// integer coefficients. It is grounded on the polynomial-vector design of
// _examples/original_source/lib/number.cpp, reworked around bigint.Int and
// idiomatic Go value types instead of the original's class hierarchy.
package number

import "circlelang/bigint"

// A polynomial is represented as poly[i] = coefficient of π^i, index 0
// being the constant term. The empty slice denotes the zero polynomial.

func trimTrailingZeros(p []bigint.Int) []bigint.Int {
	n := len(p)
	for n > 0 && p[n-1].IsZero() {
		n--
	}
	return p[:n]
}

func polyAdd(a, b []bigint.Int) []bigint.Int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]bigint.Int, n)
	for i := 0; i < n; i++ {
		out[i] = coeffAt(a, i).Add(coeffAt(b, i))
	}
	return trimTrailingZeros(out)
}

func polySub(a, b []bigint.Int) []bigint.Int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]bigint.Int, n)
	for i := 0; i < n; i++ {
		out[i] = coeffAt(a, i).Sub(coeffAt(b, i))
	}
	return trimTrailingZeros(out)
}

func polyMul(a, b []bigint.Int) []bigint.Int {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]bigint.Int, len(a)+len(b)-1)
	for i := range out {
		out[i] = bigint.Zero()
	}
	for i, ca := range a {
		if ca.IsZero() {
			continue
		}
		for j, cb := range b {
			out[i+j] = out[i+j].Add(ca.Mul(cb))
		}
	}
	return trimTrailingZeros(out)
}

func coeffAt(p []bigint.Int, i int) bigint.Int {
	if i < len(p) {
		return p[i]
	}
	return bigint.Zero()
}

// gcdAll returns the greatest common divisor of every coefficient in a
// and b combined. It returns 1 if both slices are empty (nothing to
// divide by).
func gcdAll(a, b []bigint.Int) bigint.Int {
	g := bigint.Zero()
	for _, c := range a {
		g = g.GCD(c)
	}
	for _, c := range b {
		g = g.GCD(c)
	}
	if g.IsZero() {
		return bigint.One()
	}
	return g
}

func polyDiv(p []bigint.Int, d bigint.Int) []bigint.Int {
	if d.Equal(bigint.One()) {
		return p
	}
	out := make([]bigint.Int, len(p))
	for i, c := range p {
		out[i] = c.Quo(d)
	}
	return out
}

// TrimTrailingZeros, PolyMul and PolySub are exported for circular.Index,
// the only consumer outside this package: Index equality (§4.3) is
// defined directly in terms of cross-multiplied polynomial differences,
// the same primitives Value's own arithmetic is built from.

// TrimTrailingZeros drops trailing zero coefficients from p.
func TrimTrailingZeros(p []bigint.Int) []bigint.Int { return trimTrailingZeros(p) }

// PolyMul returns the coefficient-wise convolution of a and b.
func PolyMul(a, b []bigint.Int) []bigint.Int { return polyMul(a, b) }

// PolySub returns a-b, coefficient-wise.
func PolySub(a, b []bigint.Int) []bigint.Int { return polySub(a, b) }

// simplify canonicalises a (numerator, denominator) pair: trailing zeros
// are trimmed from each side independently, a common leading block of
// zero coefficients is factored out of both, and the overall GCD of every
// remaining coefficient is divided out. An empty numerator denotes zero;
// the denominator is never left empty.
func simplify(num, den []bigint.Int) ([]bigint.Int, []bigint.Int) {
	num = trimTrailingZeros(num)
	den = trimTrailingZeros(den)
	for len(num) > 0 && len(den) > 0 && num[0].IsZero() && den[0].IsZero() {
		num = num[1:]
		den = den[1:]
	}
	g := gcdAll(num, den)
	if !g.Equal(bigint.One()) {
		num = polyDiv(num, g)
		den = polyDiv(den, g)
	}
	return num, den
}
