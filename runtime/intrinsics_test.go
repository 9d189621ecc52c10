package runtime

import (
	"bytes"
	"strings"
	"testing"

	"circlelang/bigint"
	"circlelang/number"
)

func TestStdInputStoresByteAtInputChar(t *testing.T) {
	gca := NewArray(nil)
	in := strings.NewReader("A")
	if err := (StdInput{}).Execute(gca, in, &bytes.Buffer{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := gca.Index(number.FromLetters("std_input_char")).(*Number)
	if !number.Equal(got.Value, number.FromInt(bigint.New('A'))) {
		t.Errorf("std_input_char = %s, want 'A' (%d)", got.Value, 'A')
	}
}

func TestStdInputAtEOFReadsZero(t *testing.T) {
	gca := NewArray(nil)
	if err := (StdInput{}).Execute(gca, strings.NewReader(""), &bytes.Buffer{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := gca.Index(number.FromLetters("std_input_char")).(*Number)
	if !number.Equal(got.Value, number.Falsey()) {
		t.Errorf("std_input_char at EOF = %s, want 0", got.Value)
	}
}

func TestStdOutputWritesRecoveredByte(t *testing.T) {
	gca := NewArray(nil)
	// 65*pi = FromInt(65), which DivPi recovers as 65.
	gca.Insert(number.FromLetters("std_output_char"), &Number{Value: number.FromInt(bigint.New('A'))})

	var out bytes.Buffer
	if err := (StdOutput{}).Execute(gca, &bytes.Buffer{}, &out); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.String() != "A" {
		t.Errorf("wrote %q, want %q", out.String(), "A")
	}
}

func TestStdOutputRejectsNonMultipleOfPi(t *testing.T) {
	gca := NewArray(nil)
	// pi-squared: numerator [0,0,1], denominator [1] — not a scalar
	// multiple of pi, so DivPi must refuse it.
	piSquared := number.FromPoly([]bigint.Int{bigint.Zero(), bigint.Zero(), bigint.One()}, []bigint.Int{bigint.One()})
	gca.Insert(number.FromLetters("std_output_char"), &Number{Value: piSquared})
	if err := (StdOutput{}).Execute(gca, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for a non-pi-multiple output cell")
	}
}

func TestStdOutputRejectsOutOfAsciiRange(t *testing.T) {
	gca := NewArray(nil)
	gca.Insert(number.FromLetters("std_output_char"), &Number{Value: number.FromInt(bigint.New(200))})
	if err := (StdOutput{}).Execute(gca, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected an out-of-ascii-range error")
	}
}

func TestStdDecomposeWritesNumeratorAndDenominatorArrays(t *testing.T) {
	gca := NewArray(nil)
	gca.Insert(number.FromLetters("std_decompose_number"), &Number{Value: number.FromInt(bigint.New(5))})

	if err := (StdDecompose{}).Execute(gca, &bytes.Buffer{}, &bytes.Buffer{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	numArr, ok := gca.Index(number.FromLetters("std_decompose_numerator")).(*Array)
	if !ok {
		t.Fatal("expected std_decompose_numerator to be an Array")
	}
	c0 := numArr.Index(number.FromInt(bigint.Zero())).(*Number)
	if !number.Equal(c0.Value, number.FromInt(bigint.Zero())) {
		t.Errorf("numerator[0] = %s, want 0", c0.Value)
	}
	c1 := numArr.Index(number.FromInt(bigint.One())).(*Number)
	if !number.Equal(c1.Value, number.FromInt(bigint.New(5))) {
		t.Errorf("numerator[1] = %s, want 5", c1.Value)
	}
}

func TestStdDecomposeOfZeroIsOneCellArray(t *testing.T) {
	gca := NewArray(nil)
	gca.Insert(number.FromLetters("std_decompose_number"), &Number{Value: number.Falsey()})

	if err := (StdDecompose{}).Execute(gca, &bytes.Buffer{}, &bytes.Buffer{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	numArr := gca.Index(number.FromLetters("std_decompose_numerator")).(*Array)
	if numArr.Length() != 1 {
		t.Errorf("numerator array length = %d, want 1", numArr.Length())
	}
}
