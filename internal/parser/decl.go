package parser

import (
	"strings"

	"github.com/sumatoshi-tech/j2py/internal/token"
	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

//nolint:gochecknoglobals // Lookup set, never mutated after init.
var modifierKeywords = map[string]bool{
	"public": true, "private": true, "protected": true,
	"static": true, "final": true, "abstract": true,
}

// parseModifiers consumes zero or more leading modifier keywords and
// returns their spellings in source order.
func (p *Parser) parseModifiers() []string {
	var mods []string

	for p.peek(0).Kind == token.KEYWORD && modifierKeywords[p.peek(0).Text] {
		mods = append(mods, p.consume().Text)
	}

	return mods
}

func (p *Parser) parseClassDecl() (*ast.Node, error) {
	mods := p.parseModifiers()

	if _, err := p.expect(token.KEYWORD, "class"); err != nil {
		return nil, err
	}

	nameTok := p.peek(0)
	if nameTok.Kind != token.IDENT {
		return nil, p.errorf("a class name")
	}

	p.consume()

	var children []*ast.Node

	if p.at(token.KEYWORD, "extends") {
		p.consume()

		baseTok := p.peek(0)
		if baseTok.Kind != token.IDENT {
			return nil, p.errorf("a base class name")
		}

		p.consume()
		children = append(children, ast.New(ast.KindExtends, baseTok.Text))
	}

	if _, err := p.expect(token.PUNCT, "{"); err != nil {
		return nil, err
	}

	for !p.at(token.PUNCT, "}") {
		member, err := p.parseMember(nameTok.Text)
		if err != nil {
			return nil, err
		}

		children = append(children, member)
	}

	if _, err := p.expect(token.PUNCT, "}"); err != nil {
		return nil, err
	}

	_ = mods // visibility/final/abstract on the class itself don't affect emission

	return ast.New(ast.KindClassDecl, nameTok.Text, children...), nil
}

// parseMember disambiguates FieldDecl, MethodDecl, and ConstructorDecl per
// §4.1.2: modifiers, then a type-or-identifier, then an identifier; `(`
// after that identifier means method or constructor (constructor iff the
// name equals className), anything else means field.
func (p *Parser) parseMember(className string) (*ast.Node, error) {
	mods := p.parseModifiers()

	if p.peek(0).Kind == token.IDENT && p.peek(0).Text == className && p.peekIs(1, token.PUNCT, "(") {
		p.consume()

		return p.parseConstructorDecl(className, mods)
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	nameTok := p.peek(0)
	if nameTok.Kind != token.IDENT {
		return nil, p.errorf("a member name")
	}

	p.consume()

	if p.at(token.PUNCT, "(") {
		return p.parseMethodDecl(mods, typ, nameTok.Text)
	}

	return p.parseFieldDeclRest(mods, typ, nameTok.Text)
}

func (p *Parser) parseConstructorDecl(className string, mods []string) (*ast.Node, error) {
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	_ = mods // constructor visibility doesn't affect emission; collapsing ignores it

	return ast.New(ast.KindConstructorDecl, className, params, body), nil
}

func (p *Parser) parseMethodDecl(mods []string, returnType, name string) (*ast.Node, error) {
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}

	// An abstract method (or interface method) has no block, just a
	// terminating semicolon. Give it an empty Block placeholder so the
	// translator can still walk a uniform ConstructorDecl/MethodDecl shape.
	var body *ast.Node

	if p.at(token.PUNCT, ";") {
		p.consume()

		body = ast.New(ast.KindBlock, "")
	} else {
		body, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}

	value := methodSignatureValue(mods, returnType, name)

	return ast.New(ast.KindMethodDecl, value, params, body), nil
}

func methodSignatureValue(mods []string, returnType, name string) string {
	parts := make([]string, 0, len(mods)+2)
	parts = append(parts, mods...)
	parts = append(parts, returnType, name)

	return strings.Join(parts, " ")
}

func (p *Parser) parseParamList() (*ast.Node, error) {
	if _, err := p.expect(token.PUNCT, "("); err != nil {
		return nil, err
	}

	var params []*ast.Node

	for !p.at(token.PUNCT, ")") {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}

		nameTok := p.peek(0)
		if nameTok.Kind != token.IDENT {
			return nil, p.errorf("a parameter name")
		}

		p.consume()

		params = append(params, ast.New(ast.KindParam, typ+" "+nameTok.Text))

		if p.at(token.PUNCT, ",") {
			p.consume()

			continue
		}

		break
	}

	if _, err := p.expect(token.PUNCT, ")"); err != nil {
		return nil, err
	}

	return ast.New(ast.KindParamList, "", params...), nil
}

// parseFieldDeclRest continues a field declaration after `Type name` has
// already been consumed, handling an optional initializer, further
// declarators, and the terminating `;`. A single declarator yields a bare
// FieldDecl; multiple declarators yield a Block of independent FieldDecl
// nodes per §4.1.2.
func (p *Parser) parseFieldDeclRest(mods []string, typ, firstName string) (*ast.Node, error) {
	var fields []*ast.Node

	field, err := p.parseOneFieldDeclarator(mods, typ, firstName)
	if err != nil {
		return nil, err
	}

	fields = append(fields, field)

	for p.at(token.PUNCT, ",") {
		p.consume()

		nameTok := p.peek(0)
		if nameTok.Kind != token.IDENT {
			return nil, p.errorf("a declarator name")
		}

		p.consume()

		next, ferr := p.parseOneFieldDeclarator(mods, typ, nameTok.Text)
		if ferr != nil {
			return nil, ferr
		}

		fields = append(fields, next)
	}

	if _, err := p.expect(token.PUNCT, ";"); err != nil {
		return nil, err
	}

	if len(fields) == 1 {
		return fields[0], nil
	}

	return ast.New(ast.KindBlock, "", fields...), nil
}

// parseOneFieldDeclarator parses the optional `= expr` following a single
// declarator's name, without consuming the trailing `,` or `;`.
func (p *Parser) parseOneFieldDeclarator(mods []string, typ, name string) (*ast.Node, error) {
	value := fieldDeclValue(mods, typ, name)

	if !p.at(token.OP, "=") {
		return ast.New(ast.KindFieldDecl, value), nil
	}

	p.consume()

	init, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	return ast.New(ast.KindFieldDecl, value, init), nil
}

func fieldDeclValue(mods []string, typ, name string) string {
	parts := make([]string, 0, len(mods)+2)
	parts = append(parts, mods...)
	parts = append(parts, typ, name)

	return strings.Join(parts, " ")
}
