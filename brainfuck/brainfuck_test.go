package brainfuck

import (
	"strings"
	"testing"

	"circlelang/lexer"
	"circlelang/parser"
)

func TestTranspilePreambleAndPostamble(t *testing.T) {
	out := Transpile("")
	if !strings.HasPrefix(out, "(S)\n") {
		t.Fatalf("missing preamble, got %q", out)
	}
	if !strings.HasSuffix(out, "; (S) := 0\n") {
		t.Fatalf("missing postamble, got %q", out)
	}
}

func TestTranspileCommands(t *testing.T) {
	out := Transpile(">+-<.,")
	want := []string{
		"; (P) := (P) + 1*1",
		"; ( (P) ) := ( (P) ) + 1",
		"; ( (P) ) := ( (P) ) - 1",
		"; (P) := (P) - 1*1",
		"; (std_output_char) := ( (P) ) - 1",
		"; (std_output)",
		"; (std_input)",
		"; ( (P) ) := (std_input_char) + 1",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("transpiled output missing %q, got:\n%s", w, out)
		}
	}
}

func TestTranspileLoopBrackets(t *testing.T) {
	out := Transpile("[-]")
	if !strings.Contains(out, "; ((\n") {
		t.Fatalf("missing loop open, got:\n%s", out)
	}
	if !strings.Contains(out, "( (P) ) - 1\n") {
		t.Fatalf("missing loop condition, got:\n%s", out)
	}
	if !strings.Contains(out, "))\n") {
		t.Fatalf("missing loop close, got:\n%s", out)
	}
}

func TestTranspileDropsNonBrainfuckChars(t *testing.T) {
	out := Transpile("hello >+< world")
	for _, c := range "helowrd" {
		if strings.ContainsRune(out, c) {
			t.Fatalf("expected non-brainfuck char %q to be dropped, got:\n%s", c, out)
		}
	}
}

// TestTranspileOutputParses checks the emitted source for a representative
// Brainfuck snippet is itself valid circle-lang, end to end through the
// lexer and parser (§8 scenario 3/4's transpile-then-run pipeline, parse
// half).
func TestTranspileOutputParses(t *testing.T) {
	src := Transpile(",>,[<+>-]<.")
	tokens, diags := lexer.Scan(src)
	if diags.Fatal() {
		t.Fatalf("lexing transpiled source produced fatal diagnostics: %v", diags.Entries())
	}
	_, pdiags := parser.Parse(tokens)
	if pdiags.Fatal() {
		t.Fatalf("parsing transpiled source produced fatal diagnostics: %v", pdiags.Entries())
	}
}
