package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumatoshi-tech/j2py/internal/lexer"
	"github.com/sumatoshi-tech/j2py/internal/parser"
	"github.com/sumatoshi-tech/j2py/internal/token"
	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

func parseSrc(t *testing.T, src string) *ast.Node {
	t.Helper()

	toks, err := lexer.ScanString(src)
	require.NoError(t, err)

	root, err := parser.New(token.NewStream(toks)).Parse()
	require.NoError(t, err)

	return root
}

func TestParse_EmptyClassWithExtends(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, "public class A extends B {}")

	require.Len(t, root.Children, 1)

	class := root.Child(0)
	assert.Equal(t, ast.KindClassDecl, class.Kind)
	assert.Equal(t, "A", class.Value)
	require.Equal(t, 1, class.NumChildren())
	assert.Equal(t, ast.KindExtends, class.Child(0).Kind)
	assert.Equal(t, "B", class.Child(0).Value)
}

func TestParse_FieldAndConstructor(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, `
		public class Foo {
			private int x;
			public Foo(int x) { this.x = x; }
		}
	`)

	class := root.Child(0)
	require.Equal(t, 2, class.NumChildren())

	field := class.Child(0)
	assert.Equal(t, ast.KindFieldDecl, field.Kind)
	assert.Equal(t, "private int x", field.Value)

	ctor := class.Child(1)
	assert.Equal(t, ast.KindConstructorDecl, ctor.Kind)
	assert.Equal(t, "Foo", ctor.Value)

	params := ctor.Child(0)
	assert.Equal(t, ast.KindParamList, params.Kind)
	require.Equal(t, 1, params.NumChildren())
	assert.Equal(t, "int x", params.Child(0).Value)

	body := ctor.Child(1)
	assert.Equal(t, ast.KindBlock, body.Kind)
	require.Equal(t, 1, body.NumChildren())

	assign := body.Child(0)
	assert.Equal(t, ast.KindAssign, assign.Kind)
	assert.Equal(t, "=", assign.Value)
	assert.Equal(t, ast.KindMemberAccess, assign.Child(0).Kind)
	assert.Equal(t, "x", assign.Child(0).Value)
}

func TestParse_MethodVsConstructorDisambiguation(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, `
		class Calc {
			public int add(int a, int b) { return a + b; }
		}
	`)

	method := root.Child(0).Child(0)
	assert.Equal(t, ast.KindMethodDecl, method.Kind)
	assert.Equal(t, "public int add", method.Value)
}

func TestParse_MultiDeclaratorField(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, "class K { int a = 1, b = 2; }")

	member := root.Child(0).Child(0)
	require.Equal(t, ast.KindBlock, member.Kind)
	require.Equal(t, 2, member.NumChildren())

	assert.Equal(t, "int a", member.Child(0).Value)
	assert.Equal(t, ast.KindLiteral, member.Child(0).Child(0).Kind)
	assert.Equal(t, "int b", member.Child(1).Value)
}

func TestParse_ExpressionPrecedence(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, "class C { void m() { int x = 1 + 2 * 3; } } ")

	stmt := root.Child(0).Child(0).Child(1).Child(0)
	assert.Equal(t, ast.KindFieldDecl, stmt.Kind)

	add := stmt.Child(0)
	require.Equal(t, ast.KindBinaryOp, add.Kind)
	assert.Equal(t, "+", add.Value)
	assert.Equal(t, ast.KindLiteral, add.Child(0).Kind)

	mul := add.Child(1)
	assert.Equal(t, ast.KindBinaryOp, mul.Kind)
	assert.Equal(t, "*", mul.Value)
}

func TestParse_TernaryRightAssociative(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, "class C { void m() { x = a ? b : c ? d : e; } }")

	assign := root.Child(0).Child(0).Child(1).Child(0)
	ternary := assign.Child(1)

	require.Equal(t, ast.KindTernary, ternary.Kind)

	nested := ternary.Child(2)
	assert.Equal(t, ast.KindTernary, nested.Kind)
}

func TestParse_ForEachVsCStyleFor(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, `
		class C {
			void m() {
				for (int i = 0; i < 3; i++) {}
				for (String s : items) {}
			}
		}
	`)

	body := root.Child(0).Child(0).Child(1)
	require.Equal(t, 2, body.NumChildren())

	cFor := body.Child(0)
	assert.Equal(t, ast.KindFor, cFor.Kind)
	assert.Equal(t, ast.KindFieldDecl, cFor.Child(0).Kind)

	forEach := body.Child(1)
	assert.Equal(t, ast.KindForEach, forEach.Kind)
	assert.Equal(t, "String s", forEach.Child(0).Value)
}

func TestParse_DeclVsExprDisambiguation(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, `
		class C {
			void m() {
				int x = 1;
				x = 2;
				foo();
			}
		}
	`)

	body := root.Child(0).Child(0).Child(1)
	require.Equal(t, 3, body.NumChildren())

	assert.Equal(t, ast.KindFieldDecl, body.Child(0).Kind)
	assert.Equal(t, ast.KindAssign, body.Child(1).Kind)

	exprStmt := body.Child(2)
	assert.Equal(t, ast.KindExprStmt, exprStmt.Kind)
	assert.Equal(t, ast.KindCall, exprStmt.Child(0).Kind)
}

func TestParse_SwitchWithDefault(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, `
		class C {
			void m() {
				switch (x) {
					case 1:
						foo();
						break;
					default:
						bar();
				}
			}
		}
	`)

	sw := root.Child(0).Child(0).Child(1).Child(0)
	require.Equal(t, ast.KindSwitch, sw.Kind)
	require.Equal(t, 3, sw.NumChildren())

	caseLabel := sw.Child(1)
	assert.Equal(t, ast.KindCaseLabel, caseLabel.Kind)
	require.Equal(t, 3, caseLabel.NumChildren())
	assert.Equal(t, ast.KindBreak, caseLabel.Child(2).Kind)

	defLabel := sw.Child(2)
	assert.Equal(t, ast.KindDefaultLabel, defLabel.Kind)
}

func TestParse_TryCatchFinally(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, `
		class C {
			void m() {
				try {
					risky();
				} catch (Exception e) {
					handle();
				} finally {
					cleanup();
				}
			}
		}
	`)

	tryNode := root.Child(0).Child(0).Child(1).Child(0)
	require.Equal(t, ast.KindTry, tryNode.Kind)
	require.Equal(t, 3, tryNode.NumChildren())

	assert.Equal(t, ast.KindTryBlock, tryNode.Child(0).Kind)

	catch := tryNode.Child(1)
	assert.Equal(t, ast.KindCatch, catch.Kind)
	assert.Equal(t, "Exception e", catch.Value)

	assert.Equal(t, ast.KindFinally, tryNode.Child(2).Kind)
}

func TestParse_GenericTypeNormalization(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, "class C { List<String> items; }")

	field := root.Child(0).Child(0)
	assert.Equal(t, "List<String> items", field.Value)
}

func TestParse_NestedGenericTypeSplitsCloser(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, "class C { Map<String, List<Integer>> items; }")

	field := root.Child(0).Child(0)
	assert.Equal(t, "Map<String, List<Integer>> items", field.Value)
}

func TestParse_TriplyNestedGenericTypeSplitsTripleCloser(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, "class C { List<List<List<Integer>>> items; }")

	field := root.Child(0).Child(0)
	assert.Equal(t, "List<List<List<Integer>>> items", field.Value)
}

func TestParse_CastExpression(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, "class C { void m() { x = (int) y; } }")

	assign := root.Child(0).Child(0).Child(1).Child(0)
	cast := assign.Child(1)

	assert.Equal(t, ast.KindCast, cast.Kind)
	assert.Equal(t, "int", cast.Value)
}

func TestParse_NewArrayWithSize(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, "class C { void m() { x = new int[5]; } }")

	assign := root.Child(0).Child(0).Child(1).Child(0)
	newArr := assign.Child(1)

	assert.Equal(t, ast.KindNewArray, newArr.Kind)
	assert.Equal(t, "int", newArr.Value)
	require.Equal(t, 1, newArr.NumChildren())
}

func TestParse_NewObjectBecomesCall(t *testing.T) {
	t.Parallel()

	root := parseSrc(t, "class C { void m() { x = new Foo(1, 2); } }")

	assign := root.Child(0).Child(0).Child(1).Child(0)
	call := assign.Child(1)

	assert.Equal(t, ast.KindCall, call.Kind)
	assert.Equal(t, ast.KindIdentifier, call.Child(0).Kind)
	assert.Equal(t, "Foo", call.Child(0).Value)
	require.Equal(t, 3, call.NumChildren())
}

func TestParse_UnexpectedTokenProducesParseError(t *testing.T) {
	t.Parallel()

	toks, err := lexer.ScanString("class {}")
	require.NoError(t, err)

	_, err = parser.New(token.NewStream(toks)).Parse()
	require.Error(t, err)

	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "{", perr.TokenText)
}
