package observability

import (
	"context"
	"log/slog"
	"os"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Providers holds the observability handles a command needs for the
// lifetime of one invocation.
type Providers struct {
	// Tracer creates the span each `translate` invocation (and, through
	// [HTTPMiddleware], each `serve` request) runs inside, purely so its
	// logs carry a correlating trace_id/span_id.
	Tracer trace.Tracer

	// Logger is the context-aware structured logger.
	Logger *slog.Logger

	// Shutdown releases the tracer provider. Safe to call even though no
	// exporter is attached.
	Shutdown func(ctx context.Context) error
}

// Init builds a process-local TracerProvider (no exporter, no batching —
// spans never leave the process) and a slog logger wired through
// [TracingHandler] so its records pick up the active span's IDs.
func Init(cfg Config) (Providers, error) {
	tp := sdktrace.NewTracerProvider()

	return Providers{
		Tracer:   tp.Tracer(cfg.ServiceName),
		Logger:   buildLogger(cfg),
		Shutdown: tp.Shutdown,
	}, nil
}

func buildLogger(cfg Config) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var inner slog.Handler
	if cfg.LogJSON {
		inner = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		inner = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	return slog.New(NewTracingHandler(inner, cfg.ServiceName, cfg.Environment, cfg.Mode))
}
