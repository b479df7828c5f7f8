package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sumatoshi-tech/j2py/pkg/ast"
)

// ErrUnsupportedFormat is returned for a --format value other than "tree",
// "table", "json", or "yaml".
var ErrUnsupportedFormat = errors.New("unsupported output format")

func parseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <file.java>",
		Short: "Parse a Java compilation unit and dump its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "tree", `output format: "tree", "table", "json", or "yaml"`)

	return cmd
}

func runParse(cmd *cobra.Command, path, format string) error {
	parsed, err := parseFile(path)
	if err != nil {
		printDiagnostic(err)

		return err
	}

	switch format {
	case "tree":
		fmt.Fprint(cmd.OutOrStdout(), parsed.root.String())
	case "table":
		fmt.Fprint(cmd.OutOrStdout(), renderASTTable(parsed.root))
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		if encErr := enc.Encode(parsed.root); encErr != nil {
			return fmt.Errorf("encode AST: %w", encErr)
		}
	case "yaml":
		out, yamlErr := yaml.Marshal(parsed.root)
		if yamlErr != nil {
			return fmt.Errorf("encode AST: %w", yamlErr)
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return nil
}

// renderASTTable flattens the AST into a depth/kind/value grid, the same
// no-border, no-rule table shape the analyzers package uses for its
// collection dumps.
func renderASTTable(root *ast.Node) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	// StyleLight upper-cases footers; keep the node count as written.
	tbl.Style().Format.Footer = text.FormatDefault

	tbl.AppendHeader(table.Row{"depth", "kind", "value"})

	var nodeCount int

	appendASTRow(tbl, root, 0, &nodeCount)

	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("%d nodes", nodeCount)})

	return tbl.Render()
}

func appendASTRow(tbl table.Writer, n *ast.Node, depth int, count *int) {
	if n == nil {
		return
	}

	*count++

	tbl.AppendRow(table.Row{depth, n.Kind, n.Value})

	for i := 0; i < n.NumChildren(); i++ {
		appendASTRow(tbl, n.Child(i), depth+1, count)
	}
}
