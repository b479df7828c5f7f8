package translator

import (
	"fmt"
	"strings"

	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

// exprResult is a rendered expression's Python text plus any statements
// that must run immediately before the statement containing it — the
// mechanism behind the `i++` hoisting rule in §4.2.5.
type exprResult struct {
	text string
	pre  []string
}

func leaf(text string) exprResult {
	return exprResult{text: text}
}

func mergePre(results ...exprResult) []string {
	var pre []string

	for _, r := range results {
		pre = append(pre, r.pre...)
	}

	return pre
}

// renderExpr dispatches on node kind. Every case here corresponds to an
// expression kind in the AST's closed catalogue; an unrecognized kind
// renders as a TODO comment fragment rather than panicking, keeping the
// translator total per §4.2.1.
func (t *Translator) renderExpr(n *ast.Node) exprResult {
	if n == nil {
		return leaf("None")
	}

	switch n.Kind {
	case ast.KindLiteral:
		return leaf(rewriteLiteral(n.Value))
	case ast.KindIdentifier:
		return leaf(n.Value)
	case ast.KindThis:
		return leaf("self")
	case ast.KindSuper:
		return leaf("super()")
	case ast.KindMemberAccess:
		return t.renderMemberAccess(n)
	case ast.KindCall:
		return t.renderCall(n)
	case ast.KindBinaryOp:
		return t.renderBinaryOp(n)
	case ast.KindTernary:
		return t.renderTernary(n)
	case ast.KindPrefixOp:
		return t.renderPrefixOp(n)
	case ast.KindPostfixOp:
		return t.renderPostfixOp(n)
	case ast.KindAssign:
		return t.renderAssignExpr(n)
	case ast.KindCast:
		return t.renderCast(n)
	case ast.KindNewArray:
		return t.renderNewArray(n)
	case ast.KindArrayInit:
		return t.renderArrayInit(n)
	default:
		t.noteSchemaIssue(n.Kind, "unexpected expression kind")

		return leaf(fmt.Sprintf("None  # TODO: unknown %s", n.Kind))
	}
}

func rewriteLiteral(value string) string {
	switch value {
	case "true":
		return "True"
	case "false":
		return "False"
	case "null":
		return "None"
	}

	if strings.HasPrefix(value, "'") {
		return rewriteCharLiteral(value)
	}

	if strings.HasPrefix(value, `"`) {
		return value
	}

	return rewriteNumberLiteral(value)
}

func rewriteCharLiteral(value string) string {
	inner := strings.TrimSuffix(strings.TrimPrefix(value, "'"), "'")

	return `"` + inner + `"`
}

// rewriteNumberLiteral drops Java's numeric-literal type suffix (`L`,
// `f`, `F`, `d`, `D`); Python has no equivalent. Hex literals (`0x...`)
// are passed through unchanged since Python's `0x` syntax matches Java's
// and a trailing hex digit like the `F` in `0x1F` is not a suffix.
func rewriteNumberLiteral(value string) string {
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") {
		return value
	}

	if len(value) == 0 {
		return value
	}

	last := value[len(value)-1]
	switch last {
	case 'L', 'l', 'F', 'f', 'D', 'd':
		return value[:len(value)-1]
	default:
		return value
	}
}

func (t *Translator) renderMemberAccess(n *ast.Node) exprResult {
	target := t.renderExpr(n.Child(0))

	switch {
	case n.Child(0).Kind == ast.KindThis:
		return exprResult{text: "self." + n.Value, pre: target.pre}
	case n.Child(0).Kind == ast.KindSuper:
		return exprResult{text: "super()." + n.Value, pre: target.pre}
	default:
		return exprResult{text: target.text + "." + n.Value, pre: target.pre}
	}
}

// renderCall recognizes the small set of Java calls §4.2.5 rewrites to
// different Python shapes entirely (println/print, List.of, Arrays.asList,
// this/super constructor chaining); everything else renders as a plain
// call expression.
func (t *Translator) renderCall(n *ast.Node) exprResult {
	callee := n.Child(0)
	argNodes := n.Children[1:]

	args := make([]exprResult, len(argNodes))
	for i, a := range argNodes {
		args[i] = t.renderExpr(a)
	}

	pre := mergePre(args...)
	argTexts := make([]string, len(args))

	for i, a := range args {
		argTexts[i] = a.text
	}

	if qualifier, method, ok := staticMemberChain(callee); ok {
		switch {
		case qualifier == "System.out" && method == "println":
			return exprResult{text: "print(" + strings.Join(argTexts, ", ") + ")", pre: pre}
		case qualifier == "System.out" && method == "print":
			return exprResult{text: "print(" + appendKwarg(argTexts, "end=''") + ")", pre: pre}
		case qualifier == "List" && method == "of":
			return exprResult{text: "[" + strings.Join(argTexts, ", ") + "]", pre: pre}
		case qualifier == "Arrays" && method == "asList":
			return exprResult{text: "[" + strings.Join(argTexts, ", ") + "]", pre: pre}
		}
	}

	switch callee.Kind {
	case ast.KindThis:
		return exprResult{text: "self.__init__(" + strings.Join(argTexts, ", ") + ")", pre: pre}
	case ast.KindSuper:
		return exprResult{text: "super().__init__(" + strings.Join(argTexts, ", ") + ")", pre: pre}
	}

	calleeResult := t.renderExpr(callee)
	pre = append(calleeResult.pre, pre...)

	return exprResult{text: calleeResult.text + "(" + strings.Join(argTexts, ", ") + ")", pre: pre}
}

func appendKwarg(args []string, kwarg string) string {
	if len(args) == 0 {
		return kwarg
	}

	return strings.Join(args, ", ") + ", " + kwarg
}

// staticMemberChain recognizes a callee shaped like `A.b.c` built from
// nested MemberAccess/Identifier nodes (e.g. `System.out.println`'s
// callee is MemberAccess("println", MemberAccess("out", Identifier("System")))),
// returning the qualifier ("System.out") and final member name.
func staticMemberChain(n *ast.Node) (qualifier, method string, ok bool) {
	if n.Kind != ast.KindMemberAccess {
		return "", "", false
	}

	target := n.Child(0)

	switch target.Kind {
	case ast.KindIdentifier:
		return target.Value, n.Value, true
	case ast.KindMemberAccess:
		innerQualifier, innerMethod, innerOK := staticMemberChain(target)
		if !innerOK {
			return "", "", false
		}

		return innerQualifier + "." + innerMethod, n.Value, true
	default:
		return "", "", false
	}
}

func (t *Translator) renderBinaryOp(n *ast.Node) exprResult {
	lhs := t.renderExpr(n.Child(0))
	rhs := t.renderExpr(n.Child(1))
	pre := mergePre(lhs, rhs)

	if n.Value == "[]" {
		return exprResult{text: lhs.text + "[" + rhs.text + "]", pre: pre}
	}

	if n.Value == "instanceof" {
		return exprResult{text: "isinstance(" + lhs.text + ", " + rhs.text + ")", pre: pre}
	}

	op := rewriteBinaryOperator(n.Value)

	return exprResult{text: lhs.text + " " + op + " " + rhs.text, pre: pre}
}

// rewriteBinaryOperator applies §4.2.5's operator-token rewrites. `>>>`
// has no unsigned-shift equivalent in Python; the core narrows it to `>>`
// rather than emitting a bit-masked expression.
func rewriteBinaryOperator(op string) string {
	switch op {
	case "&&":
		return "and"
	case "||":
		return "or"
	case ">>>":
		return ">>"
	default:
		return op
	}
}

func (t *Translator) renderTernary(n *ast.Node) exprResult {
	cond := t.renderExpr(n.Child(0))
	then := t.renderExpr(n.Child(1))
	els := t.renderExpr(n.Child(2))

	pre := mergePre(cond, then, els)
	text := "(" + then.text + " if " + cond.text + " else " + els.text + ")"

	return exprResult{text: text, pre: pre}
}

func (t *Translator) renderPrefixOp(n *ast.Node) exprResult {
	if n.Value == "++" || n.Value == "--" {
		return t.hoistIncrementDecrement(n.Value, n.Child(0))
	}

	operand := t.renderExpr(n.Child(0))

	if n.Value == "!" {
		return exprResult{text: "not " + operand.text, pre: operand.pre}
	}

	return exprResult{text: n.Value + operand.text, pre: operand.pre}
}

func (t *Translator) renderPostfixOp(n *ast.Node) exprResult {
	return t.hoistIncrementDecrement(n.Value, n.Child(0))
}

// hoistIncrementDecrement implements §4.2.5's `i++`/`i--` rewrite for the
// case where the increment appears inside a larger expression: the
// increment becomes a statement emitted before the containing statement,
// and the expression's value becomes the bare operand.
func (t *Translator) hoistIncrementDecrement(op string, operand *ast.Node) exprResult {
	rendered := t.renderExpr(operand)

	stepOp := "+="
	if op == "--" {
		stepOp = "-="
	}

	stmt := rendered.text + " " + stepOp + " 1"

	return exprResult{text: rendered.text, pre: append(rendered.pre, stmt)}
}

func (t *Translator) renderAssignExpr(n *ast.Node) exprResult {
	lhs := t.renderExpr(n.Child(0))
	rhs := t.renderExpr(n.Child(1))
	pre := mergePre(lhs, rhs)

	return exprResult{text: lhs.text + " " + n.Value + " " + rhs.text, pre: pre}
}

// renderCast applies a Python conversion builtin when the target type is
// one with an obvious conversion function; any other cast is semantically
// a no-op under Python's duck typing and renders as the bare operand.
func (t *Translator) renderCast(n *ast.Node) exprResult {
	operand := t.renderExpr(n.Child(0))

	switch pyType(n.Value) {
	case "int":
		return exprResult{text: "int(" + operand.text + ")", pre: operand.pre}
	case "float":
		return exprResult{text: "float(" + operand.text + ")", pre: operand.pre}
	case "str":
		return exprResult{text: "str(" + operand.text + ")", pre: operand.pre}
	default:
		return operand
	}
}

// renderNewArray distinguishes the two NewArray shapes by the parser's
// "[]" value-suffix marker: a brace-initialized array (children are
// elements) versus a sized array (the lone child is a size expression).
func (t *Translator) renderNewArray(n *ast.Node) exprResult {
	if strings.HasSuffix(n.Value, "[]") {
		elems := make([]exprResult, len(n.Children))
		for i, c := range n.Children {
			elems[i] = t.renderExpr(c)
		}

		texts := make([]string, len(elems))

		for i, e := range elems {
			texts[i] = e.text
		}

		return exprResult{text: "[" + strings.Join(texts, ", ") + "]", pre: mergePre(elems...)}
	}

	size := t.renderExpr(n.Child(0))
	def := pyDefault(n.Value)
	text := "[" + def + " for _ in range(" + size.text + ")]"

	return exprResult{text: text, pre: size.pre}
}

func (t *Translator) renderArrayInit(n *ast.Node) exprResult {
	elems := make([]exprResult, len(n.Children))
	for i, c := range n.Children {
		elems[i] = t.renderExpr(c)
	}

	texts := make([]string, len(elems))

	for i, e := range elems {
		texts[i] = e.text
	}

	return exprResult{text: "[" + strings.Join(texts, ", ") + "]", pre: mergePre(elems...)}
}
