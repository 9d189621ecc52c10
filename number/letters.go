package number

import "circlelang/bigint"

const letterBase = 256

// DivPi returns the integer k such that v equals k·π exactly, i.e. v's
// numerator has the shape [0, k·d0, k·d1, …] against denominator
// [d0, d1, …] with every ratio equal to the same k. Used by std_output to
// recover the ASCII byte a cell-of-π encodes.
func (v Value) DivPi() (k bigint.Int, ok bool) {
	num := trimTrailingZeros(v.numerator)
	den := trimTrailingZeros(v.den())
	if len(num) == 0 {
		return bigint.Zero(), true
	}
	if !num[0].IsZero() || len(num) != len(den)+1 {
		return bigint.Zero(), false
	}
	var result bigint.Int
	set := false
	for i := 0; i < len(den); i++ {
		if den[i].IsZero() {
			if !num[i+1].IsZero() {
				return bigint.Zero(), false
			}
			continue
		}
		q := num[i+1].Quo(den[i])
		r := num[i+1].Rem(den[i])
		if !r.IsZero() {
			return bigint.Zero(), false
		}
		if !set {
			result, set = q, true
		} else if !result.Equal(q) {
			return bigint.Zero(), false
		}
	}
	if !set {
		return bigint.Zero(), false
	}
	return result, true
}

// ToLetters returns the byte string v encodes, iff v's denominator is [1]
// and every numerator coefficient cᵢ is a positive integer less than 128
// divisible by 256ⁱ (the shape the letter constructor produces).
func (v Value) ToLetters() (string, bool) {
	den := trimTrailingZeros(v.den())
	if len(den) != 1 || !den[0].Equal(bigint.One()) {
		return "", false
	}
	num := trimTrailingZeros(v.numerator)
	if len(num) == 0 {
		return "", false
	}
	pow := bigint.One()
	base := bigint.New(letterBase)
	out := make([]byte, len(num))
	for i, c := range num {
		if c.Sign() <= 0 {
			return "", false
		}
		q := c.Quo(pow)
		r := c.Rem(pow)
		if !r.IsZero() {
			return "", false
		}
		n, ok := q.Int64()
		if !ok || n <= 0 || n >= 128 {
			return "", false
		}
		out[i] = byte(n)
		pow = pow.Mul(base)
	}
	return string(out), true
}
