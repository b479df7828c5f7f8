package translator

import (
	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

// emitStmt dispatches a single statement node to its Python rendering at
// the given indentation depth. Every statement kind in the AST's closed
// catalogue has a case; an unrecognized kind degrades to a placeholder
// comment rather than aborting translation (§4.2.1, §7).
func (t *Translator) emitStmt(n *ast.Node, depth int) {
	switch n.Kind {
	case ast.KindBlock:
		for _, c := range n.Children {
			t.emitStmt(c, depth)
		}
	case ast.KindIf:
		t.emitIf(n, depth)
	case ast.KindWhile:
		t.emitWhile(n, depth)
	case ast.KindDoWhile:
		t.emitDoWhile(n, depth)
	case ast.KindFor:
		t.emitFor(n, depth)
	case ast.KindForEach:
		t.emitForEach(n, depth)
	case ast.KindSwitch:
		t.emitSwitch(n, depth)
	case ast.KindTry:
		t.emitTry(n, depth)
	case ast.KindReturn:
		t.emitReturn(n, depth)
	case ast.KindBreak:
		t.writeLine(depth, "break")
	case ast.KindContinue:
		t.writeLine(depth, "continue")
	case ast.KindExprStmt:
		t.emitExprStmtNode(n, depth)
	case ast.KindAssign:
		result := t.renderAssignExpr(n)
		t.writeLines(depth, result.pre)
		t.writeLine(depth, result.text)
	case ast.KindFieldDecl:
		t.emitLocalVarDecl(n, depth)
	default:
		t.noteSchemaIssue(n.Kind, "unexpected statement kind")
		t.writeLine(depth, "# TODO: unknown "+string(n.Kind))
	}
}

func (t *Translator) emitIf(n *ast.Node, depth int) {
	cond := t.renderExpr(n.Child(0))
	t.writeLines(depth, cond.pre)
	t.writeLine(depth, "if "+cond.text+":")
	t.emitBlockBody(n.Child(1), depth+1)

	if n.NumChildren() < 3 {
		return
	}

	t.emitElseChain(n.Child(2), depth)
}

// emitElseChain renders `else if` as Python `elif`, recursing through the
// chain of nested If nodes the parser produces for `else if`.
func (t *Translator) emitElseChain(n *ast.Node, depth int) {
	if n.Kind == ast.KindIf {
		cond := t.renderExpr(n.Child(0))
		t.writeLines(depth, cond.pre)
		t.writeLine(depth, "elif "+cond.text+":")
		t.emitBlockBody(n.Child(1), depth+1)

		if n.NumChildren() >= 3 {
			t.emitElseChain(n.Child(2), depth)
		}

		return
	}

	t.writeLine(depth, "else:")
	t.emitBlockBody(n, depth+1)
}

// emitWhile renders `while cond:` directly when the condition has no
// hoisted pre-statements. When it does (an increment buried inside the
// condition expression), those statements must re-run every iteration, so
// the loop is restructured as `while True: <pre>; if not (cond): break`.
func (t *Translator) emitWhile(n *ast.Node, depth int) {
	cond := t.renderExpr(n.Child(0))

	if len(cond.pre) == 0 {
		t.writeLine(depth, "while "+cond.text+":")
		t.emitBlockBody(n.Child(1), depth+1)

		return
	}

	t.writeLine(depth, "while True:")
	t.writeLines(depth+1, cond.pre)
	t.writeLine(depth+1, "if not ("+cond.text+"):")
	t.writeLine(depth+2, "break")
	t.emitBlockBody(n.Child(1), depth+1)
}

func (t *Translator) emitDoWhile(n *ast.Node, depth int) {
	t.writeLine(depth, "while True:")
	t.emitBlockBody(n.Child(0), depth+1)

	cond := t.renderExpr(n.Child(1))
	t.writeLines(depth+1, cond.pre)
	t.writeLine(depth+1, "if not ("+cond.text+"):")
	t.writeLine(depth+2, "break")
}

func (t *Translator) emitForEach(n *ast.Node, depth int) {
	_, name := splitParamValue(n.Child(0).Value)

	iterable := t.renderExpr(n.Child(1))
	t.writeLines(depth, iterable.pre)
	t.writeLine(depth, "for "+name+" in "+iterable.text+":")
	t.emitBlockBody(n.Child(2), depth+1)
}

// isEmptyForSlot recognizes the parser's sentinel for an omitted for-loop
// init or update clause (see [emptyForSlot] in the parser package).
func isEmptyForSlot(n *ast.Node) bool {
	return n.Kind == ast.KindBlock && n.NumChildren() == 0 && n.Value == ""
}

func (t *Translator) emitFor(n *ast.Node, depth int) {
	init, cond, update, body := n.Child(0), n.Child(1), n.Child(2), n.Child(3)

	if varName, rangeText, ok := tryRangeFor(t, init, cond, update); ok {
		t.writeLine(depth, "for "+varName+" in "+rangeText+":")
		t.emitBlockBody(body, depth+1)

		return
	}

	if !isEmptyForSlot(init) {
		t.emitStmt(init, depth)
	}

	condResult := t.renderExpr(cond)
	t.writeLines(depth, condResult.pre)
	t.writeLine(depth, "while "+condResult.text+":")
	t.emitBlockBody(body, depth+1)

	if !isEmptyForSlot(update) {
		t.emitIncrementOrExprStatement(update, depth+1)
	}
}

// tryRangeFor recognizes the exact shape §4.2.6 requires for the
// `for → range` rewrite: `for (T i = a; i <|<= b; i++|i--)` with no
// hoisted pre-statements in either bound. Anything else falls back to the
// while-loop form.
func tryRangeFor(t *Translator, init, cond, update *ast.Node) (varName, rangeText string, ok bool) {
	if init.Kind != ast.KindFieldDecl || init.NumChildren() != 1 {
		return "", "", false
	}

	_, _, name := splitFieldValue(init.Value)

	if (update.Kind != ast.KindPostfixOp && update.Kind != ast.KindPrefixOp) ||
		(update.Value != "++" && update.Value != "--") {
		return "", "", false
	}

	if update.Child(0) == nil || update.Child(0).Kind != ast.KindIdentifier || update.Child(0).Value != name {
		return "", "", false
	}

	if cond.Kind != ast.KindBinaryOp || (cond.Value != "<" && cond.Value != "<=") {
		return "", "", false
	}

	if cond.Child(0) == nil || cond.Child(0).Kind != ast.KindIdentifier || cond.Child(0).Value != name {
		return "", "", false
	}

	start := t.renderExpr(init.Child(0))
	bound := t.renderExpr(cond.Child(1))

	if len(start.pre) > 0 || len(bound.pre) > 0 {
		return "", "", false
	}

	step := 1
	if update.Value == "--" {
		step = -1
	}

	boundText := bound.text
	if cond.Value == "<=" {
		if step == 1 {
			boundText += " + 1"
		} else {
			boundText += " - 1"
		}
	}

	args := start.text + ", " + boundText
	if step == -1 {
		args += ", -1"
	}

	return name, "range(" + args + ")", true
}

func (t *Translator) emitSwitch(n *ast.Node, depth int) {
	scrutinee := t.renderExpr(n.Child(0))
	t.writeLines(depth, scrutinee.pre)
	t.writeLine(depth, "match "+scrutinee.text+":")

	for _, child := range n.Children[1:] {
		switch child.Kind {
		case ast.KindCaseLabel:
			label := t.renderExpr(child.Child(0))
			t.writeLines(depth+1, label.pre)
			t.writeLine(depth+1, "case "+label.text+":")
			t.emitCaseBody(dropTrailingBreak(child.Children[1:]), depth+2)
		case ast.KindDefaultLabel:
			t.writeLine(depth+1, "case _:")
			t.emitCaseBody(dropTrailingBreak(child.Children), depth+2)
		default:
			t.noteSchemaIssue(child.Kind, "unexpected switch arm kind")
		}
	}
}

// dropTrailingBreak drops a case arm's own top-level `break` — Python's
// `match` has no fall-through to guard against, and fall-through between
// cases is not itself preserved (§4.2.6, §9).
func dropTrailingBreak(stmts []*ast.Node) []*ast.Node {
	var out []*ast.Node

	for _, s := range stmts {
		if s.Kind == ast.KindBreak {
			continue
		}

		out = append(out, s)
	}

	return out
}

func (t *Translator) emitCaseBody(stmts []*ast.Node, depth int) {
	if len(stmts) == 0 {
		t.writeLine(depth, "pass")

		return
	}

	for _, s := range stmts {
		t.emitStmt(s, depth)
	}
}

func (t *Translator) emitTry(n *ast.Node, depth int) {
	t.writeLine(depth, "try:")
	t.emitBlockBody(n.Child(0).Child(0), depth+1)

	idx := 1

	for idx < len(n.Children) && n.Children[idx].Kind == ast.KindCatch {
		c := n.Children[idx]

		excType, varName := splitParamValue(c.Value)
		t.writeLine(depth, "except "+excType+" as "+varName+":")
		t.emitBlockBody(c.Child(0), depth+1)

		idx++
	}

	if idx < len(n.Children) && n.Children[idx].Kind == ast.KindFinally {
		t.writeLine(depth, "finally:")
		t.emitBlockBody(n.Children[idx].Child(0), depth+1)
	}
}

func (t *Translator) emitReturn(n *ast.Node, depth int) {
	if n.NumChildren() == 0 {
		t.writeLine(depth, "return")

		return
	}

	result := t.renderExpr(n.Child(0))
	t.writeLines(depth, result.pre)
	t.writeLine(depth, "return "+result.text)
}

// emitExprStmtNode renders an ExprStmt. Value "throw" marks the parser's
// documented extension for `throw expr;` (see internal/parser's
// parseThrow) — everything else goes through the standard
// expression-statement path, including the `i++` standalone rewrite.
func (t *Translator) emitExprStmtNode(n *ast.Node, depth int) {
	if n.Value == "throw" {
		result := t.renderExpr(n.Child(0))
		t.writeLines(depth, result.pre)
		t.writeLine(depth, "raise "+result.text)

		return
	}

	t.emitIncrementOrExprStatement(n.Child(0), depth)
}

// emitIncrementOrExprStatement renders a standalone `i++`/`i--` as
// `i += 1` directly, without the general hoisting machinery's leftover
// bare-identifier line; any other expression statement renders normally.
// Shared between ExprStmt bodies and a C-style for-loop's update clause.
func (t *Translator) emitIncrementOrExprStatement(expr *ast.Node, depth int) {
	if (expr.Kind == ast.KindPrefixOp || expr.Kind == ast.KindPostfixOp) &&
		(expr.Value == "++" || expr.Value == "--") {
		operand := t.renderExpr(expr.Child(0))
		t.writeLines(depth, operand.pre)

		op := "+="
		if expr.Value == "--" {
			op = "-="
		}

		t.writeLine(depth, operand.text+" "+op+" 1")

		return
	}

	result := t.renderExpr(expr)
	t.writeLines(depth, result.pre)
	t.writeLine(depth, result.text)
}

func (t *Translator) emitLocalVarDecl(n *ast.Node, depth int) {
	_, typ, name := splitFieldValue(n.Value)

	init := pyDefault(typ)

	var pre []string

	if n.NumChildren() > 0 {
		r := t.renderExpr(n.Child(0))
		init = r.text
		pre = r.pre
	}

	t.writeLines(depth, pre)

	if t.cfg.EmitTypeHints {
		t.writeLine(depth, name+": "+pyType(typ)+" = "+init)
	} else {
		t.writeLine(depth, name+" = "+init)
	}
}
