package bigint

import "testing"

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Int
		want int64
	}{
		{"add", New(3).Add(New(4)), 7},
		{"sub", New(3).Sub(New(10)), -7},
		{"mul", New(-3).Mul(New(4)), -12},
		{"quo truncates toward zero", New(-7).Quo(New(2)), -3},
		{"rem", New(-7).Rem(New(2)), -1},
		{"mod is euclidean", New(-7).Mod(New(2)), 1},
		{"neg", New(5).Neg(), -5},
		{"pow10 zero", Pow10(0), 1},
		{"pow10", Pow10(3), 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.got.Int64()
			if !ok || got != tt.want {
				t.Errorf("got %v, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b Int
		want int64
	}{
		{New(12), New(18), 6},
		{New(0), New(5), 5},
		{New(0), New(0), 0},
		{New(-9), New(6), 3},
	}
	for _, tt := range tests {
		got, _ := tt.a.GCD(tt.b).Int64()
		if got != tt.want {
			t.Errorf("GCD(%v, %v) = %v, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFromString(t *testing.T) {
	v, ok := FromString("12345")
	if !ok {
		t.Fatal("expected ok")
	}
	n, _ := v.Int64()
	if n != 12345 {
		t.Errorf("got %d, want 12345", n)
	}
	if _, ok := FromString("not-a-number"); ok {
		t.Error("expected not ok for invalid literal")
	}
}

func TestEvaluateConstant(t *testing.T) {
	// The polynomial [5] (constant 5, no pi term) evaluates to 5
	// regardless of sf, since its "degree" scaling is 10^0.
	got := Evaluate([]Int{New(5)}, 10)
	n, _ := got.Int64()
	if n != 5 {
		t.Errorf("got %d, want 5", n)
	}
}

func TestEvaluatePi(t *testing.T) {
	// [0, 1] represents the polynomial 0 + 1*pi = pi, so Evaluate
	// should reproduce the pi digit table itself at any sf.
	for _, sf := range []int{1, 2, 5, 20} {
		got := Evaluate([]Int{Zero(), One()}, sf)
		want, _ := FromString(PiDigits[:sf])
		if !got.Equal(want) {
			t.Errorf("sf=%d: got %v, want %v", sf, got, want)
		}
	}
}

func TestEvaluateWithMarginCountsNonZeroCoefficients(t *testing.T) {
	_, margin := EvaluateWithMargin([]Int{New(1), Zero(), New(3)}, 5)
	n, _ := margin.Int64()
	if n != 2 {
		t.Errorf("margin = %d, want 2", n)
	}
}

func TestEvaluateEmptyPolyIsZero(t *testing.T) {
	got := Evaluate(nil, 10)
	if !got.IsZero() {
		t.Errorf("got %v, want 0", got)
	}
}
