// Package lexer implements circle-lang's per-character state machine
// (§4.4), grounded on nilan/lexer.go's shape (a rune-slice scanner
// tracking position/line/column, peek-then-consume-a-run scanning of
// identifiers/numbers/operators) but replacing Nilan's Monkey-derived
// token rules with circle-lang's own: collapsing bracket runs, semicolons
// as their own token, `#` line comments, digit-or-letter number tokens,
// and the closed operator set.
package lexer

import (
	"strings"

	"circlelang/bigint"
	"circlelang/diag"
	"circlelang/number"
	"circlelang/token"
)

// Lexer scans circle-lang source into a token stream plus a diagnostic
// bag of lexical errors.
type Lexer struct {
	src  []rune
	pos  int
	line int
	col  int

	tokens []token.Token
	diags  diag.Bag
}

func isLexWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func isIdentChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}

func isOperatorChar(r rune) bool {
	return strings.ContainsRune("+-*/&|=!<>:", r)
}

// New builds a Lexer over src. A synthetic trailing newline is appended
// when src does not already end in whitespace, so the final in-flight
// scan state has something to commit on.
func New(src string) *Lexer {
	runes := []rune(src)
	if len(runes) == 0 || !isLexWhitespace(runes[len(runes)-1]) {
		runes = append(runes, '\n')
	}
	return &Lexer{src: runes}
}

// Scan is a convenience entry point equivalent to New(src).Scan().
func Scan(src string) ([]token.Token, *diag.Bag) {
	return New(src).Scan()
}

func (lx *Lexer) here() diag.Position { return diag.Position{Line: lx.line, Column: lx.col} }

func (lx *Lexer) peek() rune {
	if lx.pos >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos]
}

func (lx *Lexer) advance() rune {
	r := lx.src[lx.pos]
	lx.pos++
	if r == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return r
}

func (lx *Lexer) emit(typ token.Type, r diag.Range, text string) {
	lx.tokens = append(lx.tokens, token.New(typ, r, text))
}

// Scan runs the full state machine over the source, returning every
// token produced and the diagnostic bag of lexical errors. Scanning
// never stops at the first error: it resynchronises at the next
// character and keeps going, so a source file is fully diagnosed in one
// pass; whether the caller treats the result as usable is up to §6/§7's
// fatal-diagnostic rule.
func (lx *Lexer) Scan() ([]token.Token, *diag.Bag) {
	for lx.pos < len(lx.src) {
		c := lx.peek()
		switch {
		case isLexWhitespace(c):
			lx.advance()
		case c == '(':
			lx.scanBracketRun('(', token.OpenBracket, token.OpenBracket2)
		case c == ')':
			lx.scanBracketRun(')', token.CloseBracket, token.CloseBracket2)
		case c == ';':
			start := lx.here()
			lx.advance()
			lx.emit(token.Semicolon, diag.Range{Start: start, End: lx.here()}, ";")
		case c == '#':
			lx.scanComment()
		case isIdentChar(c):
			lx.scanIdentOrNumber()
		case isOperatorChar(c):
			lx.scanOperator()
		default:
			start := lx.here()
			lx.advance()
			lx.diags.Errorf(diag.Range{Start: start, End: lx.here()}, "unexpected character %q", c)
		}
	}
	return lx.tokens, &lx.diags
}

// scanBracketRun collapses a run of the same bracket character: one
// collapses to single, two to double, three or more is an error.
func (lx *Lexer) scanBracketRun(ch rune, single, double token.Type) {
	start := lx.here()
	n := 0
	for lx.peek() == ch {
		lx.advance()
		n++
	}
	r := diag.Range{Start: start, End: lx.here()}
	text := strings.Repeat(string(ch), n)
	switch n {
	case 1:
		lx.emit(single, r, text)
	case 2:
		lx.emit(double, r, text)
	default:
		lx.diags.Errorf(r, "%d consecutive '%c' found; split them with spaces", n, ch)
	}
}

// scanComment consumes `#...\n`, capturing the content between # and the
// newline (the newline itself is consumed but not part of Text).
func (lx *Lexer) scanComment() {
	start := lx.here()
	lx.advance() // '#'
	var sb strings.Builder
	for lx.pos < len(lx.src) && lx.peek() != '\n' {
		sb.WriteRune(lx.advance())
	}
	if lx.peek() == '\n' {
		lx.advance()
	}
	lx.emit(token.Comment, diag.Range{Start: start, End: lx.here()}, sb.String())
}

// scanIdentOrNumber consumes a maximal run of [A-Za-z0-9_] and classifies
// it: a digits-only run is a big-integer constructor, anything else is a
// letter-string constructor (§4.4's invariant).
func (lx *Lexer) scanIdentOrNumber() {
	start := lx.here()
	var sb strings.Builder
	for isIdentChar(lx.peek()) {
		sb.WriteRune(lx.advance())
	}
	text := sb.String()
	r := diag.Range{Start: start, End: lx.here()}
	if n, ok := bigint.FromString(text); ok {
		lx.tokens = append(lx.tokens, token.NewNumber(r, text, number.FromInt(n)))
		return
	}
	lx.tokens = append(lx.tokens, token.NewNumber(r, text, number.FromLetters(text)))
}

// scanOperator consumes a maximal run of operator characters and matches
// it against the closed operator set.
func (lx *Lexer) scanOperator() {
	start := lx.here()
	var sb strings.Builder
	for isOperatorChar(lx.peek()) {
		sb.WriteRune(lx.advance())
	}
	text := sb.String()
	r := diag.Range{Start: start, End: lx.here()}
	for _, op := range token.Operators {
		if string(op) == text {
			lx.emit(op, r, text)
			return
		}
	}
	lx.diags.Errorf(r, "%q is not a valid operator.", text)
}
