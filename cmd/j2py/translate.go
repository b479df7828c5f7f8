package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sumatoshi-tech/j2py/internal/translator"
	"github.com/sumatoshi-tech/j2py/pkg/config"
	"github.com/sumatoshi-tech/j2py/pkg/observability"
)

func translateCmd() *cobra.Command {
	var (
		outPath      string
		indent       string
		noTypeHints  bool
		targetPython string
	)

	cmd := &cobra.Command{
		Use:   "translate <file.java>",
		Short: "Translate a Java compilation unit to Python",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args[0], outPath, indent, targetPython, noTypeHints)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&indent, "indent", "", "override the configured indent string")
	cmd.Flags().BoolVar(&noTypeHints, "no-type-hints", false, "omit parameter/return type annotations")
	cmd.Flags().StringVar(&targetPython, "target-python", "", "override the configured target Python version")

	return cmd
}

func runTranslate(cmd *cobra.Command, inPath, outPath, indentFlag, targetPythonFlag string, noTypeHints bool) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	tcfg := translator.Config{
		Indent:        cfg.Translate.Indent,
		TargetPython:  cfg.Translate.TargetPython,
		EmitTypeHints: cfg.Translate.EmitTypeHints,
		StrictSchema:  cfg.Translate.StrictSchema,
	}

	if cmd.Flags().Changed("indent") {
		tcfg.Indent = indentFlag
	}

	if cmd.Flags().Changed("target-python") {
		tcfg.TargetPython = targetPythonFlag
	}

	if noTypeHints {
		tcfg.EmitTypeHints = false
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.LogJSON = cfg.Logging.JSON

	providers, obsErr := observability.Init(obsCfg)
	if obsErr != nil {
		return fmt.Errorf("init observability: %w", obsErr)
	}

	defer func() { _ = providers.Shutdown(context.Background()) }()

	ctx, span := providers.Tracer.Start(context.Background(), "translate")
	defer span.End()

	parsed, parseErr := parseFile(inPath)
	if parseErr != nil {
		printDiagnostic(parseErr)

		return parseErr
	}

	ctx = observability.ContextWithUnitID(ctx, parsed.unitID)

	out, translateErr := translator.Translate(parsed.root, tcfg)
	if translateErr != nil {
		return fmt.Errorf("translate %s: %w", inPath, translateErr)
	}

	providers.Logger.InfoContext(ctx, "translated",
		"input", inPath, "output", outPath, "lines", parsed.lineCount)

	if outPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)

		return nil
	}

	if writeErr := os.WriteFile(outPath, []byte(out), 0o644); writeErr != nil { //nolint:gosec // intentional source output file
		return fmt.Errorf("write %s: %w", outPath, writeErr)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
	}

	return nil
}
