package parser

import (
	"encoding/json"
	"fmt"
	"os"

	"circlelang/ast"
)

const (
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// toJSON converts one ast.Node into a JSON-friendly value via a type
// switch — the tagged-sum counterpart to nilan's astPrinter Visitor.
func toJSON(n ast.Node) any {
	switch v := n.(type) {
	case ast.Array:
		elements := make([]any, len(v.Elements))
		for i, e := range v.Elements {
			elements[i] = toJSON(e)
		}
		return map[string]any{"type": "Array", "elements": elements}
	case ast.Assign:
		return map[string]any{
			"type": "Assign",
			"lhs":  toJSON(v.LHS),
			"rhs":  toJSON(v.RHS),
		}
	case ast.Index:
		var subject any
		if v.Subject != nil {
			subject = toJSON(v.Subject)
		}
		return map[string]any{
			"type":    "Index",
			"subject": subject,
			"index":   toJSON(v.Idx),
		}
	case ast.OperatorBinary:
		return map[string]any{
			"type":     "OperatorBinary",
			"operator": string(v.Kind),
			"lhs":      toJSON(v.LHS),
			"rhs":      toJSON(v.RHS),
		}
	case ast.OperatorUnary:
		return map[string]any{
			"type":     "OperatorUnary",
			"operator": string(v.Kind),
			"rhs":      toJSON(v.RHS),
		}
	case ast.Number:
		return map[string]any{"type": "Number", "value": v.Value.String()}
	default:
		return map[string]any{"type": "unknown"}
	}
}

// PrintASTJSON converts a program into a prettified JSON string, printing
// it to standard output as a side effect (retained from nilan's printer).
// Neither binary calls it; it serves ad-hoc AST inspection.
func PrintASTJSON(program ast.Array) (string, error) {
	bytes, err := json.MarshalIndent(toJSON(program), "", "  ")
	if err != nil {
		return "", err
	}

	jsonStr := string(bytes)
	fmt.Println(colorYellow + "----- AST JSON -----")
	fmt.Println(colorYellow + jsonStr)
	fmt.Println(colorYellow + "-----" + colorReset)
	fmt.Println("")
	return jsonStr, nil
}

// WriteASTJSONToFile writes the prettified AST JSON for program to path.
func WriteASTJSONToFile(program ast.Array, path string) error {
	s, err := PrintASTJSON(program)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating AST file: %w", err)
	}
	defer f.Close()
	if _, err := f.Write([]byte(s)); err != nil {
		return fmt.Errorf("error writing AST to file: %w", err)
	}
	return nil
}
