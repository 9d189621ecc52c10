// Package formatter is the pretty-printer cmd/circlefmt's "fmt"
// subcommand calls. §1 treats the formatter as an external collaborator
// "specified only at its interface to the core": it consumes a token
// stream and re-emits canonical source, same shape as
// _examples/original_source/lib/format.cpp's token-walk (one case per
// token kind, tracking an indent level across `((`/`))`), extended here
// to actually print every token's own text, which that draft stubbed
// out.
package formatter

import (
	"strings"

	"circlelang/lexer"
	"circlelang/token"
)

const indentUnit = "    "

// Format lexes src and re-renders it as canonical circle-lang source:
// each `((`/`))` block is indented on its own lines, `;` is re-emitted
// (circle-lang's sole element separator — whitespace alone is not, per
// lexer/lexer.go's whitespace handling) and always ends its line,
// comments sit on their own indented line, and every other token is
// printed with its original text separated by single spaces. A `;`
// immediately following a `))` attaches to that same line instead of
// starting a fresh one, so a closed block and its trailing separator
// read the way hand-written source does ("));"). Lexical errors are
// collected but never block the re-render — a program with a lexical
// error still gets whatever formatting the tokens scanned so far
// support, matching the original's "if (!lexed) return src_code"
// fallback for a source that fails to lex at all.
func Format(src string) string {
	tokens, _ := lexer.Scan(src)
	if len(tokens) == 0 {
		return src
	}

	var sb strings.Builder
	indent := 0
	atLineStart := true
	closePending := false // a "))" was just written; a following ';' attaches to it rather than forcing a break first

	writeIndent := func() { sb.WriteString(strings.Repeat(indentUnit, indent)) }
	breakLine := func() {
		if !atLineStart {
			sb.WriteString("\n")
			atLineStart = true
		}
	}
	flushClose := func() {
		if closePending {
			breakLine()
			closePending = false
		}
	}

	for _, tok := range tokens {
		if tok.Type != token.Semicolon {
			flushClose()
		}
		switch tok.Type {
		case token.Comment:
			breakLine()
			writeIndent()
			sb.WriteString("#" + tok.Text + "\n")
			atLineStart = true
		case token.OpenBracket2:
			breakLine()
			writeIndent()
			sb.WriteString("((\n")
			indent++
			atLineStart = true
		case token.CloseBracket2:
			breakLine()
			indent--
			if indent < 0 {
				indent = 0
			}
			writeIndent()
			sb.WriteString("))")
			atLineStart = false
			closePending = true
		case token.Semicolon:
			sb.WriteString(";")
			atLineStart = false
			closePending = false
			breakLine()
		default:
			if atLineStart {
				writeIndent()
			} else {
				sb.WriteString(" ")
			}
			sb.WriteString(tok.Text)
			atLineStart = false
		}
	}
	flushClose()
	breakLine()
	return sb.String()
}
