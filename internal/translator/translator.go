// Package translator implements the two-pass AST-directed emitter that
// turns a CompilationUnit produced by [github.com/sumatoshi-tech/j2py/internal/parser]
// into Python 3.10+ source text.
package translator

import (
	"strings"

	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

// Translator holds the single-pass emission state for one translation.
// Per §5, a fresh instance is required per call to [Translate]; reusing
// one across translations is not supported.
type Translator struct {
	cfg    Config
	out    strings.Builder
	issues []*SchemaError
}

// New constructs a Translator for a single translation.
func New(cfg Config) *Translator {
	return &Translator{cfg: cfg}
}

// Translate renders a CompilationUnit to Python source. It is total over
// schema-conforming ASTs (§4.2.1, §8.1) — malformed subtrees degrade to a
// `# TODO: unknown <kind>` placeholder rather than an error, unless
// cfg.StrictSchema opts into failing the whole translation on the first
// such subtree instead.
func Translate(root *ast.Node, cfg Config) (string, error) {
	t := New(cfg)
	t.emitCompilationUnit(root)

	if cfg.StrictSchema && len(t.issues) > 0 {
		return "", t.issues[0]
	}

	return t.out.String(), nil
}

// Issues reports every [SchemaError] this instance has recorded during
// emission, for callers that want to surface translation quality warnings
// without treating them as fatal. [Translate] emits through an instance of
// its own, so its issues are not visible here.
func (t *Translator) Issues() []*SchemaError {
	return t.issues
}

func (t *Translator) noteSchemaIssue(kind ast.Kind, reason string) {
	t.issues = append(t.issues, newSchemaError(string(kind), reason))
}

func (t *Translator) writeLine(depth int, text string) {
	if text == "" {
		t.out.WriteString("\n")

		return
	}

	t.out.WriteString(strings.Repeat(t.cfg.Indent, depth))
	t.out.WriteString(text)
	t.out.WriteString("\n")
}

func (t *Translator) writeLines(depth int, lines []string) {
	for _, l := range lines {
		t.writeLine(depth, l)
	}
}

func (t *Translator) emitCompilationUnit(root *ast.Node) {
	if root == nil {
		return
	}

	for i, class := range root.Children {
		if i > 0 {
			t.writeLine(0, "")
			t.writeLine(0, "")
		}

		if class.Kind != ast.KindClassDecl {
			t.noteSchemaIssue(class.Kind, "expected ClassDecl at top level")
			t.writeLine(0, "# TODO: unknown "+string(class.Kind))

			continue
		}

		t.emitClass(class)
	}
}
