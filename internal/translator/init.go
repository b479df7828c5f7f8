package translator

import (
	"strings"

	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

// emitInit implements constructor collapsing (§4.2.3): every constructor
// of a class is merged into a single `__init__`.
func (t *Translator) emitInit(ctors []*ast.Node, instanceFields []*ast.Node) {
	var params []paramSpec

	var bodyStmts []*ast.Node

	switch len(ctors) {
	case 0:
	case 1:
		params = paramSpecsFromList(ctors[0].Child(0))
		bodyStmts = ctors[0].Child(1).Children
	default:
		params, bodyStmts = t.collapseConstructors(ctors)
	}

	t.writeLine(1, "def __init__("+t.renderInitParamList(params)+"):")

	fieldTypes := fieldTypeMap(instanceFields)
	assigned := collectAssignedFieldNames(bodyStmts, fieldTypes)

	remaining := bodyStmts
	wroteAny := false

	if len(remaining) > 0 && isCtorChainCall(remaining[0]) {
		result := t.renderExpr(remaining[0].Child(0))
		t.writeLines(2, result.pre)
		t.writeLine(2, result.text)

		wroteAny = true
		remaining = remaining[1:]
	}

	for _, f := range instanceFields {
		_, typ, name := splitFieldValue(f.Value)
		if assigned[name] {
			continue
		}

		init := pyDefault(typ)
		if f.NumChildren() > 0 {
			init = t.renderExpr(f.Child(0)).text
		}

		t.writeLine(2, "self."+name+": "+pyType(typ)+" = "+init)

		wroteAny = true
	}

	for _, stmt := range remaining {
		t.emitInitBodyStmt(stmt, fieldTypes)

		wroteAny = true
	}

	if !wroteAny {
		t.writeLine(2, "pass")
	}
}

// collapseConstructors implements the signature-merge rule: the union of
// parameter positions across all constructors, using the longest
// constructor's signature and injecting a default wherever constructors
// disagree on a position's name/type or a shorter constructor doesn't
// reach it. The longest constructor's body is retained verbatim.
func (t *Translator) collapseConstructors(ctors []*ast.Node) ([]paramSpec, []*ast.Node) {
	longest := ctors[0]

	for _, c := range ctors[1:] {
		if c.Child(0).NumChildren() > longest.Child(0).NumChildren() {
			longest = c
		}
	}

	minCount := longest.Child(0).NumChildren()

	for _, c := range ctors {
		if n := c.Child(0).NumChildren(); n < minCount {
			minCount = n
		}
	}

	longestParams := longest.Child(0).Children
	specs := make([]paramSpec, len(longestParams))

	for i, p := range longestParams {
		typ, name := splitParamValue(p.Value)
		spec := paramSpec{typ: typ, name: name}

		if i < minCount && allCtorsAgreeAt(ctors, i, typ, name) {
			specs[i] = spec

			continue
		}

		spec.defaultVal = pyDefault(typ)
		specs[i] = spec
	}

	return specs, longest.Child(1).Children
}

func allCtorsAgreeAt(ctors []*ast.Node, i int, typ, name string) bool {
	for _, c := range ctors {
		cp := c.Child(0).Child(i)

		ct, cn := splitParamValue(cp.Value)
		if ct != typ || cn != name {
			return false
		}
	}

	return true
}

func paramSpecsFromList(params *ast.Node) []paramSpec {
	specs := make([]paramSpec, params.NumChildren())

	for i, p := range params.Children {
		typ, name := splitParamValue(p.Value)
		specs[i] = paramSpec{typ: typ, name: name}
	}

	return specs
}

func (t *Translator) renderInitParamList(specs []paramSpec) string {
	parts := []string{"self"}

	for _, s := range specs {
		part := s.name
		if t.cfg.EmitTypeHints {
			part = s.name + ": " + pyType(s.typ)
		}

		if s.defaultVal != "" {
			part += " = " + s.defaultVal
		}

		parts = append(parts, part)
	}

	return strings.Join(parts, ", ")
}

// fieldTypeMap indexes a class's instance fields by name for the
// annotated-assignment lookup in emitInitBodyStmt.
func fieldTypeMap(instanceFields []*ast.Node) map[string]string {
	types := make(map[string]string, len(instanceFields))

	for _, f := range instanceFields {
		_, typ, name := splitFieldValue(f.Value)
		types[name] = typ
	}

	return types
}

// emitInitBodyStmt emits one retained constructor-body statement inside
// __init__. A direct assignment to a declared instance field — whether
// qualified as `this.f = expr` or written as the bare `f = expr` Java
// also permits inside a constructor — is the field's first initialization
// and carries its type annotation (§8.1's field initialization
// completeness invariant); every other statement falls back to the
// general statement emitter.
func (t *Translator) emitInitBodyStmt(stmt *ast.Node, fieldTypes map[string]string) {
	if stmt.Kind == ast.KindAssign {
		if name, typ, ok := fieldAssignTarget(stmt.Child(0), fieldTypes); ok {
			rhs := t.renderExpr(stmt.Child(1))
			t.writeLines(2, rhs.pre)
			t.writeLine(2, "self."+name+": "+pyType(typ)+" = "+rhs.text)

			return
		}
	}

	t.emitStmt(stmt, 2)
}

// fieldAssignTarget recognizes an assignment's left-hand side as a
// reference to a declared instance field, either `this.f` or the bare
// identifier `f`, returning the field's name and declared type.
func fieldAssignTarget(lhs *ast.Node, fieldTypes map[string]string) (name, typ string, ok bool) {
	if lhs == nil {
		return "", "", false
	}

	switch {
	case lhs.Kind == ast.KindMemberAccess && lhs.NumChildren() > 0 && lhs.Child(0).Kind == ast.KindThis:
		name = lhs.Value
	case lhs.Kind == ast.KindIdentifier:
		name = lhs.Value
	default:
		return "", "", false
	}

	typ, ok = fieldTypes[name]

	return name, typ, ok
}

func isCtorChainCall(stmt *ast.Node) bool {
	if stmt.Kind != ast.KindExprStmt {
		return false
	}

	call := stmt.Child(0)
	if call == nil || call.Kind != ast.KindCall {
		return false
	}

	callee := call.Child(0)

	return callee != nil && (callee.Kind == ast.KindThis || callee.Kind == ast.KindSuper)
}

// collectAssignedFieldNames walks a constructor body for every assignment
// to a declared instance field — `this.name = ...` or the bare
// `name = ...` — at any nesting depth, so field injection can skip fields
// the body already initializes.
func collectAssignedFieldNames(stmts []*ast.Node, fieldTypes map[string]string) map[string]bool {
	assigned := map[string]bool{}

	for _, s := range stmts {
		ast.Walk(s, func(n *ast.Node) bool {
			if n.Kind != ast.KindAssign {
				return true
			}

			if name, _, ok := fieldAssignTarget(n.Child(0), fieldTypes); ok {
				assigned[name] = true
			}

			return true
		})
	}

	return assigned
}
