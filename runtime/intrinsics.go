package runtime

import (
	"io"

	"circlelang/bigint"
	"circlelang/diag"
	"circlelang/number"
)

// StdInput reads one byte from standard input and stores it at
// std_input_char (§4.7). End of input is treated as the byte 0 rather
// than an error, so a program reading past EOF simply sees a stream of
// zero bytes instead of aborting.
type StdInput struct{}

func (StdInput) Evaluate(gca *Array) (Object, error) { return StdInput{}, nil }

func (StdInput) Execute(gca *Array, in io.Reader, out io.Writer) error {
	var buf [1]byte
	if _, err := io.ReadFull(in, buf[:]); err != nil {
		if err != io.EOF && err != io.ErrUnexpectedEOF {
			return err
		}
		buf[0] = 0
	}
	gca.Insert(number.FromLetters("std_input_char"), &Number{Value: number.FromInt(bigint.New(int64(buf[0])))})
	return nil
}

// StdOutput reads std_output_char, recovers the integer k such that the
// cell equals k·π, demands 0 <= k <= 127, and writes that byte (§4.7).
type StdOutput struct{}

func (StdOutput) Evaluate(gca *Array) (Object, error) { return StdOutput{}, nil }

func (StdOutput) Execute(gca *Array, in io.Reader, out io.Writer) error {
	cell := gca.Index(number.FromLetters("std_output_char"))
	n, ok := cell.(*Number)
	if !ok {
		return newRuntimeError(diag.Range{}, "Can not operate on non number")
	}
	k, ok := n.Value.DivPi()
	if !ok {
		return newRuntimeError(diag.Range{}, "std_output_char is not a multiple of pi")
	}
	v, ok := k.Int64()
	if !ok || v < 0 || v > 127 {
		return newRuntimeError(diag.Range{}, "std_output_char is out of ascii range")
	}
	_, err := out.Write([]byte{byte(v)})
	return err
}

// StdDecompose reads std_decompose_number and writes its numerator and
// denominator coefficients as arrays at std_decompose_numerator and
// std_decompose_denominator (§4.7). An empty polynomial is represented
// as a single cell holding 0.
type StdDecompose struct{}

func (StdDecompose) Evaluate(gca *Array) (Object, error) { return StdDecompose{}, nil }

func (StdDecompose) Execute(gca *Array, in io.Reader, out io.Writer) error {
	cell := gca.Index(number.FromLetters("std_decompose_number"))
	n, ok := cell.(*Number)
	if !ok {
		return newRuntimeError(diag.Range{}, "Can not operate on non number")
	}
	gca.Insert(number.FromLetters("std_decompose_numerator"), polyArray(n.Value.Numerator()))
	gca.Insert(number.FromLetters("std_decompose_denominator"), polyArray(n.Value.Denominator()))
	return nil
}

func polyArray(coeffs []bigint.Int) *Array {
	if len(coeffs) == 0 {
		coeffs = []bigint.Int{bigint.Zero()}
	}
	arr := NewOpaqueArray(int64(len(coeffs)))
	for i, c := range coeffs {
		arr.Insert(number.FromInt(bigint.New(int64(i))), &Number{Value: number.FromInt(c)})
	}
	return arr
}

// installIntrinsics inserts the standard library at their well-known
// letter-keyed slots of gca, invoked once at start-up (§4.7).
func installIntrinsics(gca *Array) {
	gca.Insert(number.FromLetters("std_input"), StdInput{})
	gca.Insert(number.FromLetters("std_output"), StdOutput{})
	gca.Insert(number.FromLetters("std_decompose"), StdDecompose{})
}
