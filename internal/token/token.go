// Package token defines the lexical tokens consumed by the parser and the
// [Stream] interface it reads them through. The token stream is the
// documented boundary between the lexer (an external collaborator; only
// this interface is specified) and the parser (core).
package token

import "fmt"

// Kind classifies a [Token].
type Kind int

// Token kinds, per the externally-observable lexer contract.
const (
	EOF Kind = iota
	KEYWORD
	IDENT
	NUMBER
	STRING
	CHAR
	OP
	PUNCT
)

//nolint:gochecknoglobals // Display-only lookup table, never mutated.
var kindNames = map[Kind]string{
	EOF:     "EOF",
	KEYWORD: "KEYWORD",
	IDENT:   "IDENT",
	NUMBER:  "NUMBER",
	STRING:  "STRING",
	CHAR:    "CHAR",
	OP:      "OP",
	PUNCT:   "PUNCT",
}

// String renders the kind's canonical name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "UNKNOWN"
}

// Token is a single lexical unit: a kind tag, the original spelling, and a
// 1-based source position used only for diagnostics. Position is never
// carried into the AST (source-location preservation is a Non-goal).
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}

// String renders the token for error messages and debug dumps.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Line, t.Col)
}

// Keywords recognized by the lexer. Anything else that looks like an
// identifier is tokenized as IDENT.
//
//nolint:gochecknoglobals // Lookup table, never mutated after init.
var Keywords = map[string]bool{
	"class": true, "extends": true, "public": true, "private": true,
	"protected": true, "static": true, "final": true, "abstract": true,
	"void": true, "int": true, "long": true, "short": true, "byte": true,
	"float": true, "double": true, "boolean": true, "char": true,
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"switch": true, "case": true, "default": true, "break": true,
	"continue": true, "return": true, "try": true, "catch": true,
	"finally": true, "throw": true, "new": true, "this": true,
	"super": true, "instanceof": true, "null": true, "true": true,
	"false": true,
}
