package formatter

import (
	"testing"

	"circlelang/lexer"
	"circlelang/parser"
)

func TestFormatEmptyInputIsUnchanged(t *testing.T) {
	if got := Format(""); got != "" {
		t.Errorf("Format(\"\") = %q, want \"\"", got)
	}
}

func TestFormatIndentsDoubleBracketBlocks(t *testing.T) {
	got := Format("((1;2));")
	want := "((\n    1;\n    2\n));\n"
	if got != want {
		t.Errorf("Format =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatPutsEachStatementOnItsOwnLine(t *testing.T) {
	got := Format("1;2;3;")
	want := "1;\n2;\n3;\n"
	if got != want {
		t.Errorf("Format =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatPreservesOperatorText(t *testing.T) {
	got := Format("1 + 2;")
	want := "1 + 2;\n"
	if got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

// reparse lexes and parses src, failing the test on any fatal
// diagnostic, and returns the number of top-level program elements.
func reparse(t *testing.T, src string) int {
	t.Helper()
	tokens, lexDiags := lexer.Scan(src)
	if lexDiags.Fatal() {
		t.Fatalf("lexing %q failed: %v", src, lexDiags.Entries())
	}
	program, parseDiags := parser.Parse(tokens)
	if parseDiags.Fatal() {
		t.Fatalf("parsing %q failed: %v", src, parseDiags.Entries())
	}
	return len(program.Elements)
}

// TestFormatOutputReparsesToTheSameShape locks in formatter output being
// real source, not merely readable text: re-lexing and re-parsing it must
// succeed and must not change how many top-level elements the program has.
func TestFormatOutputReparsesToTheSameShape(t *testing.T) {
	cases := []string{
		"((1;2));",
		"1;2;3;",
		"1 + 2;",
		"(V) := 1; (V) + 1*1; ((1;2;3)); (std_output);",
	}
	for _, src := range cases {
		want := reparse(t, src)
		formatted := Format(src)
		got := reparse(t, formatted)
		if got != want {
			t.Errorf("Format(%q) = %q, reparses to %d top-level elements, want %d", src, formatted, got, want)
		}
	}
}
