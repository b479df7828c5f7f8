package translator

import (
	"strings"

	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

type paramSpec struct {
	typ        string
	name       string
	defaultVal string // "" means no default
}

// emitClass implements §4.2.1's two-pass class walk: scan for
// constructors and fields first (so `__init__` can reference fields
// declared later in source order), then emit the header, static fields,
// the synthesized `__init__`, and instance methods.
func (t *Translator) emitClass(class *ast.Node) {
	children := class.Children

	extendsName := ""
	if len(children) > 0 && children[0].Kind == ast.KindExtends {
		extendsName = children[0].Value
		children = children[1:]
	}

	members := flattenMembers(children)

	var instanceFields, staticFields, ctors, methods []*ast.Node

	for _, m := range members {
		switch m.Kind {
		case ast.KindFieldDecl:
			mods, _, _ := splitFieldValue(m.Value)
			if hasModifier(mods, "static") {
				staticFields = append(staticFields, m)
			} else {
				instanceFields = append(instanceFields, m)
			}
		case ast.KindConstructorDecl:
			ctors = append(ctors, m)
		case ast.KindMethodDecl:
			methods = append(methods, m)
		default:
			t.noteSchemaIssue(m.Kind, "unexpected class member kind")
		}
	}

	header := "class " + class.Value
	if extendsName != "" {
		header += "(" + extendsName + ")"
	}

	header += ":"

	t.writeLine(0, header)

	needsInit := len(ctors) > 0 || len(instanceFields) > 0

	if len(staticFields) == 0 && !needsInit && len(methods) == 0 {
		t.writeLine(1, "pass")

		return
	}

	for _, f := range staticFields {
		t.emitStaticField(f)
	}

	if len(staticFields) > 0 && (needsInit || len(methods) > 0) {
		t.writeLine(0, "")
	}

	if needsInit {
		t.emitInit(ctors, instanceFields)
	}

	if needsInit && len(methods) > 0 {
		t.writeLine(0, "")
	}

	for i, m := range methods {
		t.emitMethod(m)

		if i < len(methods)-1 {
			t.writeLine(0, "")
		}
	}
}

// flattenMembers expands the Block wrapper used for a multi-declarator
// field group (§4.1.2) back into its independent FieldDecl children,
// leaving every other member kind untouched.
func flattenMembers(children []*ast.Node) []*ast.Node {
	var out []*ast.Node

	for _, c := range children {
		if c.Kind == ast.KindBlock {
			out = append(out, c.Children...)
		} else {
			out = append(out, c)
		}
	}

	return out
}

func (t *Translator) emitStaticField(f *ast.Node) {
	_, typ, name := splitFieldValue(f.Value)

	value := pyDefault(typ)
	if f.NumChildren() > 0 {
		value = t.renderExpr(f.Child(0)).text
	}

	if t.cfg.EmitTypeHints {
		t.writeLine(1, name+": "+pyType(typ)+" = "+value)
	} else {
		t.writeLine(1, name+" = "+value)
	}
}

func (t *Translator) emitMethod(m *ast.Node) {
	mods, returnType, name := splitMethodValue(m.Value)
	params := m.Child(0)
	body := m.Child(1)

	if hasModifier(mods, "abstract") {
		t.emitAbstractMethod(mods, returnType, name, params)

		return
	}

	static := hasModifier(mods, "static")

	if static {
		t.writeLine(1, "@staticmethod")
	}

	sig := t.renderParamList(params, !static)
	ret := ""

	if t.cfg.EmitTypeHints {
		ret = " -> " + pyType(returnType)
	}

	t.writeLine(1, "def "+name+"("+sig+")"+ret+":")
	t.emitBlockBody(body, 2)
}

// emitAbstractMethod implements the abstract-method-as-comment rule
// (carried over from the original implementation's handling of methods
// with no body): an abstract method has no Java body to translate, so it
// becomes a documented stub rather than a synthesized pass statement.
func (t *Translator) emitAbstractMethod(mods []string, returnType, name string, params *ast.Node) {
	sig := t.renderParamList(params, !hasModifier(mods, "static"))
	ret := ""

	if t.cfg.EmitTypeHints {
		ret = " -> " + pyType(returnType)
	}

	t.writeLine(1, "def "+name+"("+sig+")"+ret+":")
	t.writeLine(2, "# TODO: abstract method, no Java body to translate")
	t.writeLine(2, "...")
}

func (t *Translator) renderParamList(params *ast.Node, withSelf bool) string {
	parts := make([]string, 0, params.NumChildren()+1)

	if withSelf {
		parts = append(parts, "self")
	}

	for _, p := range params.Children {
		typ, name := splitParamValue(p.Value)

		if t.cfg.EmitTypeHints {
			parts = append(parts, name+": "+pyType(typ))
		} else {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, ", ")
}

func (t *Translator) emitBlockBody(body *ast.Node, depth int) {
	if body == nil || body.NumChildren() == 0 {
		t.writeLine(depth, "pass")

		return
	}

	for _, stmt := range body.Children {
		t.emitStmt(stmt, depth)
	}
}
