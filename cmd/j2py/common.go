package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sumatoshi-tech/j2py/internal/lexer"
	"github.com/sumatoshi-tech/j2py/internal/parser"
	"github.com/sumatoshi-tech/j2py/internal/token"
	"github.com/sumatoshi-tech/j2py/pkg/ast"
	"github.com/sumatoshi-tech/j2py/pkg/textutil"
)

var errLooksBinary = errors.New("input looks binary, not Java source")

// parseResult bundles a successful parse with the bookkeeping the caller
// wants to log: the source's line count and the parser's correlation ID,
// neither of which the AST itself carries.
type parseResult struct {
	root      *ast.Node
	lineCount int
	unitID    string
}

// parseFile reads path, rejects it outright if it looks binary (the one
// validation that belongs at this boundary — everything else is the
// lexer/parser's job), and runs it through lex → parse.
func parseFile(path string) (parseResult, error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return parseResult{}, fmt.Errorf("read %s: %w", path, readErr)
	}

	if textutil.IsBinary(data) {
		return parseResult{}, fmt.Errorf("%s: %w", path, errLooksBinary)
	}

	lineCount := textutil.CountLines(data)

	toks, lexErr := lexer.ScanString(string(data))
	if lexErr != nil {
		return parseResult{lineCount: lineCount}, fmt.Errorf("lex %s: %w", path, lexErr)
	}

	p := parser.New(token.NewStream(toks))

	root, parseErr := p.Parse()
	if parseErr != nil {
		return parseResult{lineCount: lineCount, unitID: p.UnitID()}, fmt.Errorf("parse %s: %w", path, parseErr)
	}

	return parseResult{root: root, lineCount: lineCount, unitID: p.UnitID()}, nil
}

// printDiagnostic renders err to stderr, highlighting the offending token
// and expectation in red when err wraps a [parser.ParseError].
func printDiagnostic(err error) {
	var perr *parser.ParseError

	if errors.As(err, &perr) {
		fmt.Fprintf(os.Stderr, "%s: unexpected %s, expected %s\n",
			color.RedString("parse error"), color.YellowString("%q", perr.TokenText), perr.Expected)

		return
	}

	fmt.Fprintf(os.Stderr, "%s: %v\n", color.RedString("error"), err)
}
