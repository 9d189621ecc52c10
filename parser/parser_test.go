package parser

import (
	"testing"

	"circlelang/ast"
	"circlelang/diag"
	"circlelang/lexer"
)

func parseSource(t *testing.T, src string) ast.Array {
	t.Helper()
	toks, diags := lexer.Scan(src)
	if diags.Fatal() {
		t.Fatalf("lexer reported fatal diagnostics: %v", diags.Entries())
	}
	program, pdiags := Parse(toks)
	if pdiags.Fatal() {
		t.Logf("parser diagnostics: %v", pdiags.Entries())
	}
	return program
}

func TestParseTopLevelIsArray(t *testing.T) {
	program := parseSource(t, "1;2;3;")
	if len(program.Elements) != 3 {
		t.Fatalf("got %d elements, want 3: %+v", len(program.Elements), program.Elements)
	}
	for i, el := range program.Elements {
		if _, ok := el.(ast.Number); !ok {
			t.Errorf("element %d = %T, want ast.Number", i, el)
		}
	}
}

func TestParseNestedDoubleBracket(t *testing.T) {
	program := parseSource(t, "(( 1;2 ));")
	if len(program.Elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(program.Elements))
	}
	arr, ok := program.Elements[0].(ast.Array)
	if !ok {
		t.Fatalf("element = %T, want ast.Array", program.Elements[0])
	}
	if len(arr.Elements) != 2 {
		t.Fatalf("nested array has %d elements, want 2", len(arr.Elements))
	}
}

func TestParseIndexWithSubject(t *testing.T) {
	program := parseSource(t, "abc(1);")
	idx, ok := program.Elements[0].(ast.Index)
	if !ok {
		t.Fatalf("element = %T, want ast.Index", program.Elements[0])
	}
	if idx.Subject == nil {
		t.Fatal("expected a subject for abc(1)")
	}
	if _, ok := idx.Subject.(ast.Number); !ok {
		t.Errorf("subject = %T, want ast.Number (the letter constant)", idx.Subject)
	}
}

func TestParseIndexWithoutSubject(t *testing.T) {
	program := parseSource(t, "(1);")
	idx, ok := program.Elements[0].(ast.Index)
	if !ok {
		t.Fatalf("element = %T, want ast.Index", program.Elements[0])
	}
	if idx.Subject != nil {
		t.Errorf("expected nil subject for bare (1), got %#v", idx.Subject)
	}
}

func TestParseAssignRequiresIndexLHS(t *testing.T) {
	program := parseSource(t, "(1) := 2;")
	assign, ok := program.Elements[0].(ast.Assign)
	if !ok {
		t.Fatalf("element = %T, want ast.Assign", program.Elements[0])
	}
	if _, ok := assign.RHS.(ast.Number); !ok {
		t.Errorf("rhs = %T, want ast.Number", assign.RHS)
	}
}

func TestParseAssignBadLHSIsFatal(t *testing.T) {
	toks, diags := lexer.Scan("1 := 2;")
	if diags.Fatal() {
		t.Fatalf("unexpected lexer diagnostics: %v", diags.Entries())
	}
	_, pdiags := Parse(toks)
	if !pdiags.Fatal() {
		t.Fatal("expected a fatal diagnostic for ':=' without an Index lhs")
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	program := parseSource(t, "1 + 2 * 3;")
	bin, ok := program.Elements[0].(ast.OperatorBinary)
	if !ok {
		t.Fatalf("element = %T, want ast.OperatorBinary", program.Elements[0])
	}
	if bin.Kind != "+" {
		t.Errorf("outer operator = %s, want +", bin.Kind)
	}
	if _, ok := bin.RHS.(ast.OperatorBinary); !ok {
		t.Errorf("rhs = %T, want nested OperatorBinary for 2*3", bin.RHS)
	}
}

func TestParseUnaryRightAssociative(t *testing.T) {
	program := parseSource(t, "- ! 1;")
	outer, ok := program.Elements[0].(ast.OperatorUnary)
	if !ok {
		t.Fatalf("element = %T, want ast.OperatorUnary", program.Elements[0])
	}
	if outer.Kind != "-" {
		t.Errorf("outer operator = %s, want -", outer.Kind)
	}
	inner, ok := outer.RHS.(ast.OperatorUnary)
	if !ok || inner.Kind != "!" {
		t.Errorf("inner = %+v, want unary !", outer.RHS)
	}
}

func TestParseStraySemicolonWarns(t *testing.T) {
	toks, diags := lexer.Scan("1;;2;")
	if diags.Fatal() {
		t.Fatalf("unexpected lexer diagnostics: %v", diags.Entries())
	}
	program, pdiags := Parse(toks)
	if len(program.Elements) != 2 {
		t.Fatalf("got %d elements, want 2 (stray ';' shouldn't add an empty element)", len(program.Elements))
	}
	foundWarning := false
	for _, d := range pdiags.Entries() {
		if d.Severity == diag.Warning {
			foundWarning = true
		}
	}
	if !foundWarning {
		t.Error("expected a warning diagnostic for the stray ';'")
	}
}

func TestParseUnmatchedDoubleCloseIsFatal(t *testing.T) {
	toks, diags := lexer.Scan("1 )) ;")
	if diags.Fatal() {
		t.Fatalf("unexpected lexer diagnostics: %v", diags.Entries())
	}
	_, pdiags := Parse(toks)
	if !pdiags.Fatal() {
		t.Fatal("expected a fatal diagnostic for an unmatched '))'")
	}
}
