package parser

// Structural diagnostic messages (§4.5, §7). Named here once so bracket.go
// and assemble.go don't repeat the exact wording.
const (
	msgUnmatchedOpen2   = "unmatched '(('"
	msgUnmatchedClose2  = "unmatched '))'"
	msgUnmatchedOpen1   = "unmatched '('"
	msgUnmatchedClose1  = "unmatched ')'"
	msgExtraSemicolon   = "Extra ';' found"
	msgUnexpectedAssign = "Unexpected ':='"
	msgExpectedOperator = "Expected operator"
	msgUnexpectedOpFmt  = "Unexpected %q"
)
