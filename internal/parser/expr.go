package parser

import (
	"github.com/sumatoshi-tech/j2py/internal/token"
	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

// Precedence levels, lowest to highest, per §4.1.3's table. Unary, postfix,
// and primary are handled outside this table by dedicated parse functions.
const (
	precAssignment     = 1
	precTernary        = 2
	precLogicalOr      = 3
	precLogicalAnd     = 4
	precBitwiseOr      = 5
	precBitwiseXor     = 6
	precBitwiseAnd     = 7
	precEquality       = 8
	precRelational     = 9
	precShift          = 10
	precAdditive       = 11
	precMultiplicative = 12
)

type opInfo struct {
	prec      int
	leftAssoc bool
	isAssign  bool
}

//nolint:gochecknoglobals // Lookup table, never mutated after init.
var binaryOps = map[string]opInfo{
	"*": {precMultiplicative, true, false},
	"/": {precMultiplicative, true, false},
	"%": {precMultiplicative, true, false},

	"+": {precAdditive, true, false},
	"-": {precAdditive, true, false},

	"<<":  {precShift, true, false},
	">>":  {precShift, true, false},
	">>>": {precShift, true, false},

	"<":          {precRelational, true, false},
	"<=":         {precRelational, true, false},
	">":          {precRelational, true, false},
	">=":         {precRelational, true, false},
	"instanceof": {precRelational, true, false},

	"==": {precEquality, true, false},
	"!=": {precEquality, true, false},

	"&": {precBitwiseAnd, true, false},
	"^": {precBitwiseXor, true, false},
	"|": {precBitwiseOr, true, false},

	"&&": {precLogicalAnd, true, false},
	"||": {precLogicalOr, true, false},

	"=":    {precAssignment, false, true},
	"+=":   {precAssignment, false, true},
	"-=":   {precAssignment, false, true},
	"*=":   {precAssignment, false, true},
	"/=":   {precAssignment, false, true},
	"%=":   {precAssignment, false, true},
	"&=":   {precAssignment, false, true},
	"|=":   {precAssignment, false, true},
	"^=":   {precAssignment, false, true},
	"<<=":  {precAssignment, false, true},
	">>=":  {precAssignment, false, true},
	">>>=": {precAssignment, false, true},
}

//nolint:gochecknoglobals // Lookup set, never mutated after init.
var prefixOps = map[string]bool{
	"+": true, "-": true, "!": true, "~": true, "++": true, "--": true,
}

// parseExpression is the precedence-climbing entry point: repeatedly
// consumes a binary (or ternary) operator whose precedence is at least
// minPrec, parsing each right-hand operand at the precedence the
// operator's associativity demands.
func (p *Parser) parseExpression(minPrec int) (*ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		if p.at(token.OP, "?") && precTernary >= minPrec {
			next, terr := p.parseTernaryTail(left)
			if terr != nil {
				return nil, terr
			}

			left = next

			continue
		}

		op, info, ok := p.peekBinaryOp()
		if !ok || info.prec < minPrec {
			break
		}

		p.consume()

		nextMin := info.prec
		if info.leftAssoc {
			nextMin++
		}

		right, rerr := p.parseExpression(nextMin)
		if rerr != nil {
			return nil, rerr
		}

		if info.isAssign {
			left = ast.New(ast.KindAssign, op, left, right)
		} else {
			left = ast.New(ast.KindBinaryOp, op, left, right)
		}
	}

	return left, nil
}

func (p *Parser) parseTernaryTail(cond *ast.Node) (*ast.Node, error) {
	p.consume() // '?'

	mid, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.OP, ":"); err != nil {
		return nil, err
	}

	right, err := p.parseExpression(precTernary)
	if err != nil {
		return nil, err
	}

	return ast.New(ast.KindTernary, "", cond, mid, right), nil
}

// peekBinaryOp reports the binary operator at the cursor, if any. `instanceof`
// is a keyword-spelled operator; everything else is OP-kinded.
func (p *Parser) peekBinaryOp() (string, opInfo, bool) {
	cur := p.peek(0)

	if cur.Kind != token.OP && !(cur.Kind == token.KEYWORD && cur.Text == "instanceof") {
		return "", opInfo{}, false
	}

	info, ok := binaryOps[cur.Text]

	return cur.Text, info, ok
}

// parseUnary handles prefix operators, casts, and falls through to
// [Parser.parsePostfix] for everything else.
func (p *Parser) parseUnary() (*ast.Node, error) {
	cur := p.peek(0)

	if cur.Kind == token.OP && prefixOps[cur.Text] {
		p.consume()

		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return ast.New(ast.KindPrefixOp, cur.Text, operand), nil
	}

	if castType, ok := p.tryParseCastPrefix(); ok {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return ast.New(ast.KindCast, castType, operand), nil
	}

	return p.parsePostfix()
}

// tryParseCastPrefix probes for `(Type)` immediately followed by a token
// that can start a unary expression, restoring the stream and reporting
// false on any mismatch — including a bare parenthesized expression like
// `(a)`, which is not a cast.
func (p *Parser) tryParseCastPrefix() (string, bool) {
	if !p.at(token.PUNCT, "(") {
		return "", false
	}

	mark := p.stream.Mark()

	p.consume()

	typ, err := p.parseType()
	if err != nil {
		p.stream.Restore(mark)

		return "", false
	}

	if !p.at(token.PUNCT, ")") {
		p.stream.Restore(mark)

		return "", false
	}

	p.consume()

	// After a parenthesized non-primitive name, `+`/`-` is a binary
	// operator, as in `(a) - b`; only a primitive cast takes a signed operand.
	next := p.peek(0)
	signFollows := next.Kind == token.OP && (next.Text == "+" || next.Text == "-")

	if !p.canStartUnaryOperand() || (signFollows && !isTypeKeyword(typ)) {
		p.stream.Restore(mark)

		return "", false
	}

	return typ, true
}

func (p *Parser) canStartUnaryOperand() bool {
	cur := p.peek(0)

	switch cur.Kind {
	case token.IDENT, token.NUMBER, token.STRING, token.CHAR:
		return true
	case token.KEYWORD:
		return cur.Text == "this" || cur.Text == "super" || cur.Text == "new" ||
			cur.Text == "true" || cur.Text == "false" || cur.Text == "null"
	case token.PUNCT:
		return cur.Text == "("
	case token.OP:
		return cur.Text == "!" || cur.Text == "~" || cur.Text == "+" || cur.Text == "-"
	default:
		return false
	}
}

// parsePostfix parses a primary expression, then greedily chains `.name`,
// `(args)`, `[index]`, `++`, `--` left-to-right.
func (p *Parser) parsePostfix() (*ast.Node, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.at(token.PUNCT, "."):
			p.consume()

			nameTok := p.peek(0)
			if nameTok.Kind != token.IDENT {
				return nil, p.errorf("a member name")
			}

			p.consume()

			member := ast.New(ast.KindMemberAccess, nameTok.Text, expr)

			if p.at(token.PUNCT, "(") {
				call, cerr := p.parseCallArgs(member)
				if cerr != nil {
					return nil, cerr
				}

				expr = call
			} else {
				expr = member
			}
		case p.at(token.PUNCT, "("):
			call, cerr := p.parseCallArgs(expr)
			if cerr != nil {
				return nil, cerr
			}

			expr = call
		case p.at(token.PUNCT, "["):
			p.consume()

			idx, ierr := p.parseExpression(precAssignment)
			if ierr != nil {
				return nil, ierr
			}

			if _, err := p.expect(token.PUNCT, "]"); err != nil {
				return nil, err
			}

			expr = ast.New(ast.KindBinaryOp, "[]", expr, idx)
		case p.at(token.OP, "++") || p.at(token.OP, "--"):
			op := p.consume().Text
			expr = ast.New(ast.KindPostfixOp, op, expr)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseCallArgs(callee *ast.Node) (*ast.Node, error) {
	p.consume() // '('

	children := []*ast.Node{callee}

	for !p.at(token.PUNCT, ")") {
		arg, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}

		children = append(children, arg)

		if p.at(token.PUNCT, ",") {
			p.consume()

			continue
		}

		break
	}

	if _, err := p.expect(token.PUNCT, ")"); err != nil {
		return nil, err
	}

	return ast.New(ast.KindCall, "", children...), nil
}

func (p *Parser) parsePrimary() (*ast.Node, error) {
	cur := p.peek(0)

	switch {
	case cur.Kind == token.NUMBER || cur.Kind == token.STRING || cur.Kind == token.CHAR:
		p.consume()

		return ast.New(ast.KindLiteral, cur.Text), nil
	case cur.Kind == token.KEYWORD && (cur.Text == "true" || cur.Text == "false" || cur.Text == "null"):
		p.consume()

		return ast.New(ast.KindLiteral, cur.Text), nil
	case cur.Kind == token.KEYWORD && cur.Text == "this":
		p.consume()

		return ast.New(ast.KindThis, ""), nil
	case cur.Kind == token.KEYWORD && cur.Text == "super":
		p.consume()

		return ast.New(ast.KindSuper, ""), nil
	case cur.Kind == token.KEYWORD && cur.Text == "new":
		return p.parseNewExpr()
	case cur.Kind == token.IDENT:
		p.consume()

		return ast.New(ast.KindIdentifier, cur.Text), nil
	case cur.Kind == token.PUNCT && cur.Text == "(":
		p.consume()

		inner, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(token.PUNCT, ")"); err != nil {
			return nil, err
		}

		return inner, nil
	case cur.Kind == token.PUNCT && cur.Text == "{":
		return p.parseArrayInit()
	default:
		return nil, p.errorf("an expression")
	}
}

func (p *Parser) parseArrayInit() (*ast.Node, error) {
	p.consume() // '{'

	var elems []*ast.Node

	for !p.at(token.PUNCT, "}") {
		elem, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}

		elems = append(elems, elem)

		if p.at(token.PUNCT, ",") {
			p.consume()

			continue
		}

		break
	}

	if _, err := p.expect(token.PUNCT, "}"); err != nil {
		return nil, err
	}

	return ast.New(ast.KindArrayInit, "", elems...), nil
}

// parseNewExpr handles `new Type[N]`, `new Type[]{...}`, and plain object
// instantiation `new Type(args)`. Python has no `new` keyword, so the
// latter collapses to an ordinary [ast.KindCall] on the type name — the
// translator emits it exactly like any other call.
func (p *Parser) parseNewExpr() (*ast.Node, error) {
	p.consume() // 'new'

	typ, err := p.parseNewTypeName()
	if err != nil {
		return nil, err
	}

	switch {
	case p.at(token.PUNCT, "["):
		return p.parseNewArrayTail(typ)
	case p.at(token.PUNCT, "("):
		callee := ast.New(ast.KindIdentifier, typ)

		return p.parseCallArgs(callee)
	default:
		return nil, p.errorf("[ or ( after new %s", typ)
	}
}

// parseNewTypeName parses the type name after `new`, tolerating a
// generic-argument or diamond (`<>`) suffix that the translator doesn't
// need and so is discarded.
func (p *Parser) parseNewTypeName() (string, error) {
	name, err := p.expectTypeNameToken()
	if err != nil {
		return "", err
	}

	if p.at(token.OP, "<") {
		if _, gerr := p.parseGenericArgsOrDiamond(); gerr != nil {
			return "", gerr
		}
	}

	return name, nil
}

func (p *Parser) parseGenericArgsOrDiamond() (bool, error) {
	p.consume() // '<'

	if p.at(token.OP, ">") {
		p.consume()

		return true, nil
	}

	for {
		if _, err := p.parseType(); err != nil {
			return false, err
		}

		if p.at(token.PUNCT, ",") {
			p.consume()

			continue
		}

		break
	}

	if err := p.expectGenericCloser(); err != nil {
		return false, err
	}

	return true, nil
}

func (p *Parser) parseNewArrayTail(typ string) (*ast.Node, error) {
	p.consume() // '['

	if p.at(token.PUNCT, "]") {
		p.consume()

		if _, err := p.expect(token.PUNCT, "{"); err != nil {
			return nil, err
		}

		var elems []*ast.Node

		for !p.at(token.PUNCT, "}") {
			elem, err := p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}

			elems = append(elems, elem)

			if p.at(token.PUNCT, ",") {
				p.consume()

				continue
			}

			break
		}

		if _, err := p.expect(token.PUNCT, "}"); err != nil {
			return nil, err
		}

		// The "[]" suffix distinguishes a brace-initialized array (children
		// are elements) from a sized array (the lone child is a size expr) —
		// both would otherwise collapse to the same shape when the literal
		// has exactly one element.
		return ast.New(ast.KindNewArray, typ+"[]", elems...), nil
	}

	size, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.PUNCT, "]"); err != nil {
		return nil, err
	}

	return ast.New(ast.KindNewArray, typ, size), nil
}
