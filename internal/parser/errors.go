package parser

import "fmt"

// ParseError is raised on any unexpected token. It carries enough context
// for a caller to render a precise diagnostic without re-deriving it from
// the token stream.
type ParseError struct {
	TokenText  string
	Expected   string
	TokenIndex int
	Line, Col  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: unexpected %q, expected %s", e.Line, e.Col, e.TokenText, e.Expected)
}
