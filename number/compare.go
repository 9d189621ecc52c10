package number

import "circlelang/bigint"

// signAt decides the sign of the polynomial's true value (π substituted
// by its exact transcendental value) using an sf-significant-figure
// truncated evaluation. It returns decided=false when the resulting
// interval still straddles zero and more precision might resolve it.
// The empty polynomial is always decided to be exactly zero.
func signAt(poly []bigint.Int, sf int) (sign int, decided bool) {
	if len(poly) == 0 {
		return 0, true
	}
	value, margin := bigint.EvaluateWithMargin(poly, sf)
	lo := value.Sub(margin)
	hi := value.Add(margin)
	if lo.Sign() > 0 {
		return 1, true
	}
	if hi.Sign() < 0 {
		return -1, true
	}
	if lo.IsZero() && hi.IsZero() {
		return 0, true
	}
	return 0, false
}

// sign decides the sign of v by deciding the signs of its numerator and
// denominator independently (sign(n/d) = sign(n)*sign(d) for d != 0),
// doubling the significant-figure count until both are decided or the
// π-table is exhausted. A non-zero polynomial in π can never evaluate to
// exactly zero (π is transcendental), so running out of precision while a
// decision is still pending is reported rather than guessed.
func sign(v Value) (int, error) {
	sf := 1
	for {
		nSign, nDecided := signAt(v.numerator, sf)
		dSign, dDecided := signAt(v.den(), sf)
		if nDecided && dDecided {
			return nSign * dSign, nil
		}
		if sf >= bigint.MaxSignificantFigures {
			return 0, ErrInsufficientDigits
		}
		sf *= 2
		if sf > bigint.MaxSignificantFigures {
			sf = bigint.MaxSignificantFigures
		}
	}
}

// compareSign returns -1, 0, or 1 according to whether a<b, a==b, or a>b
// as real numbers (substituting π's true value), deciding via Sub(a,b)'s
// sign. Note this disagrees with Equal in general: Equal ignores the
// constant term by definition, while ordering compares full values.
func compareSign(a, b Value) (int, error) {
	return sign(Sub(a, b))
}

// LessThan implements less_than(a, b).
func LessThan(a, b Value) (bool, error) {
	s, err := compareSign(a, b)
	if err != nil {
		return false, err
	}
	return s < 0, nil
}

// LessOrEqual implements a <= b.
func LessOrEqual(a, b Value) (bool, error) {
	s, err := compareSign(a, b)
	if err != nil {
		return false, err
	}
	return s <= 0, nil
}

// GreaterThan implements a > b.
func GreaterThan(a, b Value) (bool, error) {
	s, err := compareSign(a, b)
	if err != nil {
		return false, err
	}
	return s > 0, nil
}

// GreaterOrEqual implements a >= b.
func GreaterOrEqual(a, b Value) (bool, error) {
	s, err := compareSign(a, b)
	if err != nil {
		return false, err
	}
	return s >= 0, nil
}

// LessThanValue evaluates < and returns the canonical boolean Value the
// runtime's OperatorBinary deals in.
func LessThanValue(a, b Value) (Value, error) {
	r, err := LessThan(a, b)
	if err != nil {
		return Value{}, err
	}
	return boolValue(r), nil
}

// LessOrEqualValue evaluates <=.
func LessOrEqualValue(a, b Value) (Value, error) {
	r, err := LessOrEqual(a, b)
	if err != nil {
		return Value{}, err
	}
	return boolValue(r), nil
}

// GreaterThanValue evaluates >.
func GreaterThanValue(a, b Value) (Value, error) {
	r, err := GreaterThan(a, b)
	if err != nil {
		return Value{}, err
	}
	return boolValue(r), nil
}

// GreaterOrEqualValue evaluates >=.
func GreaterOrEqualValue(a, b Value) (Value, error) {
	r, err := GreaterOrEqual(a, b)
	if err != nil {
		return Value{}, err
	}
	return boolValue(r), nil
}
