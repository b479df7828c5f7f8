package parser

import (
	"github.com/sumatoshi-tech/j2py/internal/token"
	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

func (p *Parser) parseBlock() (*ast.Node, error) {
	if _, err := p.expect(token.PUNCT, "{"); err != nil {
		return nil, err
	}

	var stmts []*ast.Node

	for !p.at(token.PUNCT, "}") {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	if _, err := p.expect(token.PUNCT, "}"); err != nil {
		return nil, err
	}

	return ast.New(ast.KindBlock, "", stmts...), nil
}

// parseBlockOrSingle parses a brace-delimited block, or wraps a single
// brace-free statement in a synthetic Block so If/While/For bodies always
// present a uniform Block child to the translator.
func (p *Parser) parseBlockOrSingle() (*ast.Node, error) {
	if p.at(token.PUNCT, "{") {
		return p.parseBlock()
	}

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return ast.New(ast.KindBlock, "", stmt), nil
}

func (p *Parser) parseStatement() (*ast.Node, error) {
	cur := p.peek(0)

	switch {
	case cur.Kind == token.PUNCT && cur.Text == "{":
		return p.parseBlock()
	case cur.Kind == token.PUNCT && cur.Text == ";":
		p.consume()

		return ast.New(ast.KindBlock, ""), nil
	case cur.Kind == token.KEYWORD && cur.Text == "if":
		return p.parseIf()
	case cur.Kind == token.KEYWORD && cur.Text == "while":
		return p.parseWhile()
	case cur.Kind == token.KEYWORD && cur.Text == "do":
		return p.parseDoWhile()
	case cur.Kind == token.KEYWORD && cur.Text == "for":
		return p.parseFor()
	case cur.Kind == token.KEYWORD && cur.Text == "switch":
		return p.parseSwitch()
	case cur.Kind == token.KEYWORD && cur.Text == "try":
		return p.parseTry()
	case cur.Kind == token.KEYWORD && cur.Text == "return":
		return p.parseReturn()
	case cur.Kind == token.KEYWORD && cur.Text == "break":
		p.consume()

		if _, err := p.expect(token.PUNCT, ";"); err != nil {
			return nil, err
		}

		return ast.New(ast.KindBreak, ""), nil
	case cur.Kind == token.KEYWORD && cur.Text == "continue":
		p.consume()

		if _, err := p.expect(token.PUNCT, ";"); err != nil {
			return nil, err
		}

		return ast.New(ast.KindContinue, ""), nil
	case cur.Kind == token.KEYWORD && cur.Text == "throw":
		return p.parseThrow()
	default:
		return p.parseDeclOrExprStatement()
	}
}

func (p *Parser) parseIf() (*ast.Node, error) {
	p.consume() // 'if'

	if _, err := p.expect(token.PUNCT, "("); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, ")"); err != nil {
		return nil, err
	}

	thenBlock, err := p.parseBlockOrSingle()
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{cond, thenBlock}

	if p.at(token.KEYWORD, "else") {
		p.consume()

		var elseChild *ast.Node

		if p.at(token.KEYWORD, "if") {
			elseChild, err = p.parseIf()
		} else {
			elseChild, err = p.parseBlockOrSingle()
		}

		if err != nil {
			return nil, err
		}

		children = append(children, elseChild)
	}

	return ast.New(ast.KindIf, "", children...), nil
}

func (p *Parser) parseWhile() (*ast.Node, error) {
	p.consume() // 'while'

	if _, err := p.expect(token.PUNCT, "("); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, ")"); err != nil {
		return nil, err
	}

	body, err := p.parseBlockOrSingle()
	if err != nil {
		return nil, err
	}

	return ast.New(ast.KindWhile, "", cond, body), nil
}

func (p *Parser) parseDoWhile() (*ast.Node, error) {
	p.consume() // 'do'

	body, err := p.parseBlockOrSingle()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.KEYWORD, "while"); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, "("); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, ")"); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, ";"); err != nil {
		return nil, err
	}

	return ast.New(ast.KindDoWhile, "", body, cond), nil
}

// emptyForSlot marks an omitted for-init or for-update clause. A Block
// kind never otherwise appears at these positions, so it is an
// unambiguous sentinel for the translator to recognize as "nothing here".
func emptyForSlot() *ast.Node {
	return ast.New(ast.KindBlock, "")
}

func (p *Parser) parseFor() (*ast.Node, error) {
	p.consume() // 'for'

	if _, err := p.expect(token.PUNCT, "("); err != nil {
		return nil, err
	}

	mark := p.stream.Mark()

	if typ, name, ok := p.tryParseTypeAndName(); ok && p.at(token.OP, ":") {
		p.consume()

		iterable, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(token.PUNCT, ")"); err != nil {
			return nil, err
		}

		body, err := p.parseBlockOrSingle()
		if err != nil {
			return nil, err
		}

		param := ast.New(ast.KindParam, typ+" "+name)

		return ast.New(ast.KindForEach, "", param, iterable, body), nil
	}

	p.stream.Restore(mark)

	return p.parseCStyleFor()
}

func (p *Parser) parseCStyleFor() (*ast.Node, error) {
	init, err := p.parseForInit()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, ";"); err != nil {
		return nil, err
	}

	var cond *ast.Node

	if p.at(token.PUNCT, ";") {
		cond = ast.New(ast.KindLiteral, "true")
	} else {
		cond, err = p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.PUNCT, ";"); err != nil {
		return nil, err
	}

	var update *ast.Node

	if p.at(token.PUNCT, ")") {
		update = emptyForSlot()
	} else {
		update, err = p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.PUNCT, ")"); err != nil {
		return nil, err
	}

	body, err := p.parseBlockOrSingle()
	if err != nil {
		return nil, err
	}

	return ast.New(ast.KindFor, "", init, cond, update, body), nil
}

func (p *Parser) parseForInit() (*ast.Node, error) {
	if p.at(token.PUNCT, ";") {
		return emptyForSlot(), nil
	}

	mark := p.stream.Mark()

	mods := p.parseModifiers()

	if typ, name, ok := p.tryParseTypeAndName(); ok && p.declCommitsHere() {
		return p.parseOneFieldDeclarator(mods, typ, name)
	}

	p.stream.Restore(mark)

	return p.parseExpression(precAssignment)
}

// declCommitsHere reports whether the current token confirms the
// preceding `Type identifier` was a declaration rather than a coincidental
// parse of an expression's leading tokens, per §4.1.4.
func (p *Parser) declCommitsHere() bool {
	return p.at(token.OP, "=") || p.at(token.PUNCT, ",") || p.at(token.PUNCT, ";")
}

func (p *Parser) parseSwitch() (*ast.Node, error) {
	p.consume() // 'switch'

	if _, err := p.expect(token.PUNCT, "("); err != nil {
		return nil, err
	}

	scrutinee, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, ")"); err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, "{"); err != nil {
		return nil, err
	}

	children := []*ast.Node{scrutinee}

	for !p.at(token.PUNCT, "}") {
		switch {
		case p.at(token.KEYWORD, "case"):
			label, cerr := p.parseCaseLabel()
			if cerr != nil {
				return nil, cerr
			}

			children = append(children, label)
		case p.at(token.KEYWORD, "default"):
			label, derr := p.parseDefaultLabel()
			if derr != nil {
				return nil, derr
			}

			children = append(children, label)
		default:
			return nil, p.errorf(`"case" or "default"`)
		}
	}

	if _, err := p.expect(token.PUNCT, "}"); err != nil {
		return nil, err
	}

	return ast.New(ast.KindSwitch, "", children...), nil
}

func (p *Parser) parseCaseLabel() (*ast.Node, error) {
	p.consume() // 'case'

	labelExpr, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.OP, ":"); err != nil {
		return nil, err
	}

	stmts, err := p.parseCaseBody()
	if err != nil {
		return nil, err
	}

	children := append([]*ast.Node{labelExpr}, stmts...)

	return ast.New(ast.KindCaseLabel, "", children...), nil
}

func (p *Parser) parseDefaultLabel() (*ast.Node, error) {
	p.consume() // 'default'

	if _, err := p.expect(token.OP, ":"); err != nil {
		return nil, err
	}

	stmts, err := p.parseCaseBody()
	if err != nil {
		return nil, err
	}

	return ast.New(ast.KindDefaultLabel, "", stmts...), nil
}

func (p *Parser) parseCaseBody() ([]*ast.Node, error) {
	var stmts []*ast.Node

	for !p.at(token.KEYWORD, "case") && !p.at(token.KEYWORD, "default") && !p.at(token.PUNCT, "}") {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

func (p *Parser) parseTry() (*ast.Node, error) {
	p.consume() // 'try'

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	children := []*ast.Node{ast.New(ast.KindTryBlock, "", body)}

	for p.at(token.KEYWORD, "catch") {
		catch, cerr := p.parseCatch()
		if cerr != nil {
			return nil, cerr
		}

		children = append(children, catch)
	}

	if p.at(token.KEYWORD, "finally") {
		p.consume()

		finallyBody, ferr := p.parseBlock()
		if ferr != nil {
			return nil, ferr
		}

		children = append(children, ast.New(ast.KindFinally, "", finallyBody))
	}

	return ast.New(ast.KindTry, "", children...), nil
}

func (p *Parser) parseCatch() (*ast.Node, error) {
	p.consume() // 'catch'

	if _, err := p.expect(token.PUNCT, "("); err != nil {
		return nil, err
	}

	excType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	varTok := p.peek(0)
	if varTok.Kind != token.IDENT {
		return nil, p.errorf("a caught-exception variable name")
	}

	p.consume()

	if _, err := p.expect(token.PUNCT, ")"); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return ast.New(ast.KindCatch, excType+" "+varTok.Text, body), nil
}

func (p *Parser) parseReturn() (*ast.Node, error) {
	p.consume() // 'return'

	if p.at(token.PUNCT, ";") {
		p.consume()

		return ast.New(ast.KindReturn, ""), nil
	}

	expr, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, ";"); err != nil {
		return nil, err
	}

	return ast.New(ast.KindReturn, "", expr), nil
}

// parseThrow consumes a `throw expr;` statement. Exceptions are otherwise
// out of scope (no custom exception hierarchy modeling), but a bare throw
// still needs to parse rather than abort translation of an otherwise
// well-formed method; it is emitted as an ExprStmt-shaped raise by the
// translator via the same expression it would use for any other call.
func (p *Parser) parseThrow() (*ast.Node, error) {
	p.consume() // 'throw'

	expr, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, ";"); err != nil {
		return nil, err
	}

	return ast.New(ast.KindExprStmt, "throw", expr), nil
}

// parseDeclOrExprStatement implements §4.1.4: probe for a local variable
// declaration by trial-parsing `Type identifier`, committing only if the
// following token confirms it; otherwise rewind and parse an expression
// statement. A top-level Assign expression is kept unwrapped (Assign is
// itself a statement kind); everything else is wrapped in ExprStmt.
func (p *Parser) parseDeclOrExprStatement() (*ast.Node, error) {
	mark := p.stream.Mark()

	mods := p.parseModifiers()

	if typ, name, ok := p.tryParseTypeAndName(); ok && p.declCommitsHere() {
		return p.parseFieldDeclRest(mods, typ, name)
	}

	p.stream.Restore(mark)

	expr, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, ";"); err != nil {
		return nil, err
	}

	if expr.Kind == ast.KindAssign {
		return expr, nil
	}

	return ast.New(ast.KindExprStmt, "", expr), nil
}
