package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/sumatoshi-tech/j2py/internal/lexer"
	"github.com/sumatoshi-tech/j2py/internal/parser"
	"github.com/sumatoshi-tech/j2py/internal/token"
	"github.com/sumatoshi-tech/j2py/internal/translator"
	"github.com/sumatoshi-tech/j2py/pkg/ast"
	"github.com/sumatoshi-tech/j2py/pkg/config"
	"github.com/sumatoshi-tech/j2py/pkg/metrics"
	"github.com/sumatoshi-tech/j2py/pkg/observability"
)

const (
	serverReadTimeout  = 30 * time.Second
	serverWriteTimeout = 60 * time.Second
	serverIdleTimeout  = 120 * time.Second
)

// TranslateRequest is the /translate endpoint's request body.
type TranslateRequest struct {
	Code string `json:"code"`
}

// TranslateResponse is the /translate endpoint's response body.
type TranslateResponse struct {
	Python string `json:"python,omitempty"`
	Error  string `json:"error,omitempty"`
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run j2py as an HTTP translation service",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (default from config)")

	return cmd
}

func runServe(portFlag int) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	port := cfg.Server.Port
	if portFlag != 0 {
		port = portFlag
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.Mode = observability.ModeServer
	obsCfg.LogJSON = cfg.Logging.JSON

	providers, obsErr := observability.Init(obsCfg)
	if obsErr != nil {
		return fmt.Errorf("init observability: %w", obsErr)
	}

	defer func() { _ = providers.Shutdown(context.Background()) }()

	reg := prometheus.NewRegistry()
	mtr := metrics.New(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("/translate", handleTranslate(providers, mtr, cfg.Translate))
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, port),
		Handler:      observability.HTTPMiddleware(providers.Tracer, mux),
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	providers.Logger.Info("j2py serve starting", "addr", server.Addr)

	if listenErr := server.ListenAndServe(); listenErr != nil {
		return fmt.Errorf("serve: %w", listenErr)
	}

	return nil
}

func handleTranslate(providers observability.Providers, mtr *metrics.Metrics, tcfg config.TranslateConfig) http.HandlerFunc {
	return func(rw http.ResponseWriter, hr *http.Request) {
		if hr.Method != http.MethodPost {
			http.Error(rw, "method not allowed", http.StatusMethodNotAllowed)

			return
		}

		var req TranslateRequest

		if decodeErr := json.NewDecoder(hr.Body).Decode(&req); decodeErr != nil {
			http.Error(rw, "invalid request body", http.StatusBadRequest)

			return
		}

		start := time.Now()

		toks, lexErr := lexer.ScanString(req.Code)
		if lexErr != nil {
			mtr.RecordParseError()
			writeJSON(hr.Context(), providers, rw, TranslateResponse{Error: lexErr.Error()})

			return
		}

		p := parser.New(token.NewStream(toks))

		root, parseErr := p.Parse()
		if parseErr != nil {
			mtr.RecordParseError()
			writeJSON(hr.Context(), providers, rw, TranslateResponse{Error: parseErr.Error()})

			return
		}

		mtr.RecordParseOK()

		ctx := observability.ContextWithUnitID(hr.Context(), p.UnitID())

		out, translateErr := translator.Translate(root, translator.Config{
			Indent:        tcfg.Indent,
			TargetPython:  tcfg.TargetPython,
			EmitTypeHints: tcfg.EmitTypeHints,
			StrictSchema:  tcfg.StrictSchema,
		})
		if translateErr != nil {
			writeJSON(ctx, providers, rw, TranslateResponse{Error: translateErr.Error()})

			return
		}

		var nodeCount int

		ast.Walk(root, func(*ast.Node) bool {
			nodeCount++

			return true
		})

		mtr.RecordTranslate(time.Since(start).Seconds(), nodeCount)

		providers.Logger.InfoContext(ctx, "translated via HTTP",
			"bytes_in", len(req.Code), "bytes_out", len(out))

		writeJSON(ctx, providers, rw, TranslateResponse{Python: out})
	}
}

func writeJSON(ctx context.Context, providers observability.Providers, rw http.ResponseWriter, value any) {
	rw.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(rw).Encode(value); err != nil {
		providers.Logger.ErrorContext(ctx, "encode response", "error", err)
	}
}
