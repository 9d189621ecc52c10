package number

import (
	"hash/fnv"

	"circlelang/bigint"
)

// hashPrime is substituted for π when hashing, so the hash of a Value can
// be computed exactly (no truncation error) rather than via the ordering
// machinery's interval arithmetic.
const hashPrime = 314159

// Hash combines the numerator and denominator's values at π=314159,
// reduced by their GCD, sign-canonicalised onto the denominator, and the
// numerator reduced modulo den·length·314159, into a single hash. It is
// parameterised by length so distinct Index ring sizes hash independently
// (see circular.Index, which is the sole consumer of this).
func (v Value) Hash(length int64) uint64 {
	n := evalAtPrime(v.numerator)
	d := evalAtPrime(v.den())

	g := n.GCD(d)
	if !g.IsZero() && !g.Equal(bigint.One()) {
		n = n.Quo(g)
		d = d.Quo(g)
	}
	if d.Sign() < 0 {
		n = n.Neg()
		d = d.Neg()
	}

	modulus := d.Mul(bigint.New(length)).Mul(bigint.New(hashPrime))
	if !modulus.IsZero() {
		n = n.Mod(modulus)
	}

	return stringHash(n.String()) ^ stringHash(d.String())
}

func evalAtPrime(poly []bigint.Int) bigint.Int {
	sum := bigint.Zero()
	pow := bigint.One()
	p := bigint.New(hashPrime)
	for _, c := range poly {
		sum = sum.Add(c.Mul(pow))
		pow = pow.Mul(p)
	}
	return sum
}

func stringHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
