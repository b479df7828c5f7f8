// Package ast defines the uniform AST node shared between the parser and
// the translator. Every syntactic construct — declarations, statements,
// expressions — is represented by the same [Node] shape: a [Kind] tag, a
// textual [Node.Value] payload, and an ordered list of children. There are
// no parent back-pointers; any context a walker needs is kept on its own
// stack, not on the tree.
package ast

import (
	"fmt"
	"strings"
)

// Kind tags the syntactic role of a [Node]. The set is closed: a parser
// producing a kind outside this list, or a translator seeing one, is a bug.
type Kind string

// Node-kind catalogue. See the child schema table for each kind's expected
// Value and Children shape.
const (
	KindCompilationUnit Kind = "CompilationUnit"
	KindClassDecl       Kind = "ClassDecl"
	KindExtends         Kind = "Extends"
	KindFieldDecl       Kind = "FieldDecl"
	KindMethodDecl      Kind = "MethodDecl"
	KindConstructorDecl Kind = "ConstructorDecl"
	KindParamList       Kind = "ParamList"
	KindParam           Kind = "Param"

	KindBlock        Kind = "Block"
	KindIf           Kind = "If"
	KindWhile        Kind = "While"
	KindDoWhile      Kind = "DoWhile"
	KindFor          Kind = "For"
	KindForEach      Kind = "ForEach"
	KindSwitch       Kind = "Switch"
	KindCaseLabel    Kind = "CaseLabel"
	KindDefaultLabel Kind = "DefaultLabel"
	KindTry          Kind = "Try"
	KindTryBlock     Kind = "TryBlock"
	KindFinally      Kind = "Finally"
	KindCatch        Kind = "Catch"
	KindReturn       Kind = "Return"
	KindBreak        Kind = "Break"
	KindContinue     Kind = "Continue"
	KindExprStmt     Kind = "ExprStmt"
	KindAssign       Kind = "Assign"

	KindBinaryOp     Kind = "BinaryOp"
	KindTernary      Kind = "Ternary"
	KindPrefixOp     Kind = "PrefixOp"
	KindPostfixOp    Kind = "PostfixOp"
	KindCall         Kind = "Call"
	KindMemberAccess Kind = "MemberAccess"
	KindIdentifier   Kind = "Identifier"
	KindLiteral      Kind = "Literal"
	KindThis         Kind = "This"
	KindSuper        Kind = "Super"
	KindNewArray     Kind = "NewArray"
	KindArrayInit    Kind = "ArrayInit"
	KindCast         Kind = "Cast"
)

// Node is the single uniform AST node shape used throughout the parser and
// translator. Nodes are owned exclusively by their parent: there is no
// sharing and no cycles, and a node is never mutated once it has been
// inserted into its parent's Children.
type Node struct {
	Kind     Kind
	Value    string
	Children []*Node
}

// New constructs a [Node] with the given kind, value, and children in one
// call — the common case where all children are already built.
func New(kind Kind, value string, children ...*Node) *Node {
	return &Node{Kind: kind, Value: value, Children: children}
}

// Builder provides a fluent construction interface for [Node], for
// step-by-step assembly of a node whose children are gathered one at a
// time (e.g. case labels or catch clauses). The parser itself collects
// children in slices and builds its nodes with [New].
type Builder struct {
	node *Node
}

// NewBuilder starts building a node of the given kind.
func NewBuilder(kind Kind) *Builder {
	return &Builder{node: &Node{Kind: kind}}
}

// WithValue sets the node's textual payload.
func (b *Builder) WithValue(value string) *Builder {
	b.node.Value = value

	return b
}

// AddChild appends a single child, returning the builder for chaining.
func (b *Builder) AddChild(child *Node) *Builder {
	if child != nil {
		b.node.Children = append(b.node.Children, child)
	}

	return b
}

// AddChildren appends zero or more children, returning the builder for chaining.
func (b *Builder) AddChildren(children ...*Node) *Builder {
	for _, c := range children {
		b.AddChild(c)
	}

	return b
}

// Build returns the assembled node.
func (b *Builder) Build() *Node {
	return b.node
}

// Child returns the child at index i, or nil if out of range. Translator
// walks are positional (§3.2's child schema table), so out-of-range access
// must be a safe no-op rather than a panic on malformed-but-schema-passing
// input.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}

	return n.Children[i]
}

// NumChildren returns the number of direct children, 0 for a nil node.
func (n *Node) NumChildren() int {
	if n == nil {
		return 0
	}

	return len(n.Children)
}

// LastChild returns the final child, or nil if there are none.
func (n *Node) LastChild() *Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}

	return n.Children[len(n.Children)-1]
}

// String renders a compact, human-readable tree for debugging and for the
// `j2py parse -f tree` command.
func (n *Node) String() string {
	var buf strings.Builder

	writeNode(&buf, n, 0)

	return buf.String()
}

func writeNode(buf *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}

	buf.WriteString(strings.Repeat("  ", depth))

	if n.Value != "" {
		fmt.Fprintf(buf, "%s(%q)\n", n.Kind, n.Value)
	} else {
		fmt.Fprintf(buf, "%s\n", n.Kind)
	}

	for _, child := range n.Children {
		writeNode(buf, child, depth+1)
	}
}

// Walk visits n and every descendant in pre-order (n itself first, then
// each child's subtree left-to-right). fn returning false for the subtree
// root still visits siblings — it only skips recursing into that node's own
// children, matching the teacher's shallow-skip traversal idiom.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}

	if !fn(n) {
		return
	}

	for _, child := range n.Children {
		Walk(child, fn)
	}
}
