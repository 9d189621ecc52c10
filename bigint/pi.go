package bigint

import (
	_ "embed"
	"strings"
)

// piDigitsRaw holds a long decimal expansion of pi (no decimal point,
// leading digit is the integer part "3") used exclusively for the
// ordering decisions of number.LessThan and its siblings (via number's
// sign computation). The table is generated
// once and embedded rather than hand-typed, since typing thousands of
// digits of pi by hand is how you get silent ordering bugs.
//
//go:embed pi_digits.txt
var piDigitsRaw string

// PiDigits is the decimal digit string of pi without its decimal point:
// "3141592653589793...". PiDigits[:sf] is pi truncated to sf significant
// figures, scaled by 10^(sf-1).
var PiDigits = strings.TrimSpace(piDigitsRaw)

// MaxSignificantFigures bounds how far Evaluate/EvaluateWithMargin can
// push sf before ordering decisions must report insufficient precision.
var MaxSignificantFigures = len(PiDigits)
