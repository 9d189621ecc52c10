package parser

import (
	"encoding/json"
	"testing"

	"circlelang/ast"
	"circlelang/bigint"
	"circlelang/number"
)

func TestPrintASTJSON_Number(t *testing.T) {
	program := ast.Array{Elements: []ast.Node{ast.Number{Value: number.FromInt(bigint.One())}}}

	jsonStr, err := PrintASTJSON(program)
	if err != nil {
		t.Fatalf("PrintASTJSON error: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	if out["type"] != "Array" {
		t.Fatalf("expected type Array, got %v", out["type"])
	}
	elements, ok := out["elements"].([]any)
	if !ok || len(elements) != 1 {
		t.Fatalf("expected 1 element, got %v", out["elements"])
	}
	first := elements[0].(map[string]any)
	if first["type"] != "Number" {
		t.Fatalf("expected type Number, got %v", first["type"])
	}
}

func TestPrintASTJSON_IndexWithoutSubject(t *testing.T) {
	program := ast.Array{Elements: []ast.Node{
		ast.Index{Idx: ast.Number{Value: number.FromInt(bigint.One())}},
	}}

	jsonStr, err := PrintASTJSON(program)
	if err != nil {
		t.Fatalf("PrintASTJSON error: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	elements := out["elements"].([]any)
	idx := elements[0].(map[string]any)
	if idx["type"] != "Index" {
		t.Fatalf("expected type Index, got %v", idx["type"])
	}
	if idx["subject"] != nil {
		t.Errorf("expected nil subject, got %v", idx["subject"])
	}
}
