package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

func TestNew_SetsFields(t *testing.T) {
	t.Parallel()

	child := ast.New(ast.KindIdentifier, "x")
	n := ast.New(ast.KindReturn, "", child)

	assert.Equal(t, ast.KindReturn, n.Kind)
	assert.Equal(t, 1, n.NumChildren())
	assert.Same(t, child, n.Child(0))
}

func TestNode_ChildOutOfRange_ReturnsNil(t *testing.T) {
	t.Parallel()

	n := ast.New(ast.KindBlock, "")

	assert.Nil(t, n.Child(0))
	assert.Nil(t, n.Child(-1))
}

func TestBuilder_AssemblesIncrementally(t *testing.T) {
	t.Parallel()

	n := ast.NewBuilder(ast.KindSwitch).
		AddChild(ast.New(ast.KindIdentifier, "x")).
		AddChildren(
			ast.New(ast.KindCaseLabel, ""),
			ast.New(ast.KindDefaultLabel, ""),
		).
		Build()

	assert.Equal(t, ast.KindSwitch, n.Kind)
	assert.Len(t, n.Children, 3)
}

func TestBuilder_WithValue(t *testing.T) {
	t.Parallel()

	n := ast.NewBuilder(ast.KindFieldDecl).WithValue("private int x").Build()

	assert.Equal(t, "private int x", n.Value)
}

func TestWalk_VisitsPreOrder(t *testing.T) {
	t.Parallel()

	root := ast.New(ast.KindBlock, "",
		ast.New(ast.KindExprStmt, "1"),
		ast.New(ast.KindExprStmt, "2"),
	)

	var seen []string

	ast.Walk(root, func(n *ast.Node) bool {
		seen = append(seen, string(n.Kind)+n.Value)

		return true
	})

	assert.Equal(t, []string{"Block", "ExprStmt1", "ExprStmt2"}, seen)
}

func TestNode_String_IncludesValueAndChildren(t *testing.T) {
	t.Parallel()

	n := ast.New(ast.KindClassDecl, "Foo", ast.New(ast.KindFieldDecl, "int x"))

	s := n.String()

	assert.Contains(t, s, `ClassDecl("Foo")`)
	assert.Contains(t, s, `FieldDecl("int x")`)
}
