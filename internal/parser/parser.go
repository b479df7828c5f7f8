// Package parser implements the recursive-descent, precedence-climbing
// parser that turns a Java token stream into a uniform [ast.Node] tree
// rooted at CompilationUnit. It is the sole producer of AST shapes the
// translator package consumes.
package parser

import (
	"fmt"

	"github.com/sumatoshi-tech/j2py/internal/token"
	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

// Parser holds the token stream cursor and nothing else; it carries no
// state across a call to [Parser.Parse].
type Parser struct {
	stream *token.Stream
}

// New wraps a token stream for parsing.
func New(stream *token.Stream) *Parser {
	return &Parser{stream: stream}
}

// UnitID returns the correlation ID of the token stream behind this
// parser, for callers that want to tie a translation's log lines together.
func (p *Parser) UnitID() string {
	return p.stream.UnitID()
}

// Parse consumes the entire token stream and returns the CompilationUnit
// root, or the first [*ParseError] encountered. There is no error
// recovery: the first unexpected token aborts parsing.
func (p *Parser) Parse() (*ast.Node, error) {
	var classes []*ast.Node

	for !p.atEOF() {
		class, err := p.parseClassDecl()
		if err != nil {
			return nil, err
		}

		classes = append(classes, class)
	}

	return ast.New(ast.KindCompilationUnit, "", classes...), nil
}

func (p *Parser) atEOF() bool {
	return p.peek(0).Kind == token.EOF
}

func (p *Parser) peek(k int) token.Token {
	return p.stream.Peek(k)
}

func (p *Parser) peekIs(k int, kind token.Kind, text string) bool {
	tok := p.peek(k)

	return tok.Kind == kind && tok.Text == text
}

func (p *Parser) at(kind token.Kind, text string) bool {
	return p.peekIs(0, kind, text)
}

func (p *Parser) consume() token.Token {
	return p.stream.Consume()
}

// expectGenericCloser consumes the '>' that closes a generic argument list,
// splitting it off a longer `>`-prefixed operator first if the lexer
// greedily matched one (">>", ">>>", ...) — see [token.Stream.SplitGenericCloser].
// Nested generics like Map<String, List<Integer>> close two argument lists
// back to back, so this must be used everywhere a lone generic closer is
// expected, not a plain p.at(token.OP, ">") check.
func (p *Parser) expectGenericCloser() error {
	if !p.at(token.OP, ">") && !p.stream.SplitGenericCloser() {
		return p.errorf(`">"`)
	}

	p.consume()

	return nil
}

// expect consumes the current token if it matches kind/text, otherwise
// raises a [*ParseError].
func (p *Parser) expect(kind token.Kind, text string) (token.Token, error) {
	if !p.at(kind, text) {
		return token.Token{}, p.errorf("%q", text)
	}

	return p.consume(), nil
}

func (p *Parser) errorf(expected string, args ...any) *ParseError {
	cur := p.peek(0)

	msg := expected
	if len(args) > 0 {
		msg = fmt.Sprintf(expected, args...)
	}

	return &ParseError{
		TokenText:  cur.Text,
		Expected:   msg,
		TokenIndex: p.stream.Mark(),
		Line:       cur.Line,
		Col:        cur.Col,
	}
}
