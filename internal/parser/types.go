package parser

import (
	"strings"

	"github.com/sumatoshi-tech/j2py/internal/token"
)

// parseType consumes an identifier, optional generic arguments, and
// optional array brackets, returning the normalized spelling per §4.1.2:
// no whitespace around `<>[]`, a single space between generic arguments.
// Callers that only need a lookahead probe use tryParseTypeAndName via mark/restore.
func (p *Parser) parseType() (string, error) {
	name, err := p.expectTypeNameToken()
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	buf.WriteString(name)

	if p.at(token.OP, "<") {
		args, aerr := p.parseGenericArgs()
		if aerr != nil {
			return "", aerr
		}

		buf.WriteString("<")
		buf.WriteString(strings.Join(args, ", "))
		buf.WriteString(">")
	}

	for p.at(token.PUNCT, "[") && p.peekIs(1, token.PUNCT, "]") {
		p.consume()
		p.consume()
		buf.WriteString("[]")
	}

	return buf.String(), nil
}

// expectTypeNameToken accepts either a primitive keyword (int, void, ...)
// or an identifier as the head of a type spelling.
func (p *Parser) expectTypeNameToken() (string, error) {
	cur := p.peek(0)

	if cur.Kind == token.IDENT || (cur.Kind == token.KEYWORD && isTypeKeyword(cur.Text)) {
		p.consume()

		return cur.Text, nil
	}

	return "", p.errorf("a type name")
}

func isTypeKeyword(text string) bool {
	switch text {
	case "void", "int", "long", "short", "byte", "float", "double", "boolean", "char":
		return true
	default:
		return false
	}
}

func (p *Parser) parseGenericArgs() ([]string, error) {
	p.consume() // '<'

	var args []string

	for {
		arg, err := p.parseType()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		if p.at(token.PUNCT, ",") {
			p.consume()

			continue
		}

		break
	}

	if err := p.expectGenericCloser(); err != nil {
		return nil, err
	}

	return args, nil
}

// tryParseTypeAndName attempts to parse `Type identifier` starting at the
// current mark, used for declaration-vs-statement and for-each-vs-for
// disambiguation. On any failure it restores the mark and returns ok=false
// with the stream untouched; on success the stream is left just past the
// identifier.
func (p *Parser) tryParseTypeAndName() (typ, name string, ok bool) {
	mark := p.stream.Mark()

	typ, err := p.parseType()
	if err != nil {
		p.stream.Restore(mark)

		return "", "", false
	}

	cur := p.peek(0)
	if cur.Kind != token.IDENT {
		p.stream.Restore(mark)

		return "", "", false
	}

	p.consume()

	return typ, cur.Text, true
}
