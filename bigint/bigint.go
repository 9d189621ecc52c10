// Package bigint provides the arbitrary-precision integer and
// fixed-digit pi-evaluation primitives that number.Value's polynomial
// coefficients are built from.
//
// Int is grounded on robpike-ivy's value.BigInt (value/bigint.go): a
// thin named wrapper around math/big.Int. No dependency in the
// retrieved example pack supplies a big-integer type, and math/big is
// already the idiomatic Go choice the pack itself reaches for.
package bigint

import "math/big"

// Int is an arbitrary-precision signed integer.
type Int struct {
	v *big.Int
}

// Zero returns the integer 0.
func Zero() Int { return Int{big.NewInt(0)} }

// One returns the integer 1.
func One() Int { return Int{big.NewInt(1)} }

// New returns the integer n.
func New(n int64) Int { return Int{big.NewInt(n)} }

// FromString parses a base-10 integer literal. ok is false if s is not
// a valid decimal integer.
func FromString(s string) (value Int, ok bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, false
	}
	return Int{v}, true
}

// FromBig copies a math/big.Int into an Int.
func FromBig(v *big.Int) Int { return Int{new(big.Int).Set(v)} }

// Big returns a copy of the value as a math/big.Int, safe for the
// caller to mutate.
func (a Int) Big() *big.Int {
	if a.v == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(a.v)
}

func (a Int) Add(b Int) Int { return Int{new(big.Int).Add(a.Big(), b.Big())} }
func (a Int) Sub(b Int) Int { return Int{new(big.Int).Sub(a.Big(), b.Big())} }
func (a Int) Mul(b Int) Int { return Int{new(big.Int).Mul(a.Big(), b.Big())} }
func (a Int) Neg() Int      { return Int{new(big.Int).Neg(a.Big())} }
func (a Int) Abs() Int      { return Int{new(big.Int).Abs(a.Big())} }

// Quo truncates toward zero, matching math/big.Int.Quo.
func (a Int) Quo(b Int) Int { return Int{new(big.Int).Quo(a.Big(), b.Big())} }

// Rem is the remainder of truncated division, matching math/big.Int.Rem.
func (a Int) Rem(b Int) Int { return Int{new(big.Int).Rem(a.Big(), b.Big())} }

// Mod returns the Euclidean modulus, always in [0, |b|).
func (a Int) Mod(b Int) Int { return Int{new(big.Int).Mod(a.Big(), b.Big())} }

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, b) is |b|, GCD(0, 0) is 0.
func (a Int) GCD(b Int) Int {
	x, y := a.Abs(), b.Abs()
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}
	return Int{new(big.Int).GCD(nil, nil, x.Big(), y.Big())}
}

// Pow10 returns 10^n for n >= 0.
func Pow10(n int) Int {
	if n <= 0 {
		return One()
	}
	return Int{new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)}
}

func (a Int) Sign() int    { return a.Big().Sign() }
func (a Int) IsZero() bool { return a.Sign() == 0 }
func (a Int) Cmp(b Int) int {
	return a.Big().Cmp(b.Big())
}
func (a Int) Equal(b Int) bool { return a.Cmp(b) == 0 }
func (a Int) Less(b Int) bool  { return a.Cmp(b) < 0 }

func (a Int) String() string {
	if a.v == nil {
		return "0"
	}
	return a.v.String()
}

// Int64 converts a to a machine int64, reporting false if a does not
// fit in the range of int64.
func (a Int) Int64() (n int64, ok bool) {
	if a.v == nil {
		return 0, true
	}
	if !a.v.IsInt64() {
		return 0, false
	}
	return a.v.Int64(), true
}

// Evaluate computes an integer approximation of the polynomial
// Σ cᵢ·πⁱ represented by poly (poly[i] is the coefficient of πⁱ),
// scaled by 10^(deg·(sf-1)), by substituting π with the first sf
// digits of PiDigits (itself an approximation of π·10^(sf-1)). sf is
// clamped to [1, MaxSignificantFigures].
func Evaluate(poly []Int, sf int) Int {
	if len(poly) == 0 {
		return Zero()
	}
	if sf < 1 {
		sf = 1
	}
	if sf > MaxSignificantFigures {
		sf = MaxSignificantFigures
	}
	piSF, _ := FromString(PiDigits[:sf])

	deg := len(poly) - 1
	sum := Zero()
	piPow := One()
	for i := 0; i <= deg; i++ {
		term := poly[i].Mul(piPow).Mul(Pow10((deg - i) * (sf - 1)))
		sum = sum.Add(term)
		if i != deg {
			piPow = piPow.Mul(piSF)
		}
	}
	return sum
}

// EvaluateWithMargin returns Evaluate(poly, sf) together with the
// truncation-error margin: the true scaled value of the polynomial is
// guaranteed to lie within [value-margin, value+margin]. Only
// coefficients of a strictly positive power of π can carry truncation
// error (the constant term, poly[0], does not depend on the digits of
// π at all); each such non-zero coefficient contributes at most one
// unit of error from approximating π with a truncated digit prefix,
// so the margin is simply their count.
func EvaluateWithMargin(poly []Int, sf int) (value Int, margin Int) {
	value = Evaluate(poly, sf)
	nonZero := int64(0)
	for i, c := range poly {
		if i == 0 {
			continue
		}
		if !c.IsZero() {
			nonZero++
		}
	}
	return value, New(nonZero)
}
