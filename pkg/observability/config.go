package observability

import "log/slog"

// AppMode distinguishes the process shape j2py is running in, surfaced as
// the "mode" attribute on every log record.
type AppMode string

const (
	ModeCLI    AppMode = "cli"
	ModeServer AppMode = "server"
)

// Config controls logger and tracer construction for a single process.
// There is no OTLP endpoint here — j2py never exports spans to a collector
// (§1.3); a TracerProvider only exists so log records emitted inside a
// span carry a correlating trace_id/span_id.
type Config struct {
	ServiceName string
	Environment string
	Mode        AppMode
	LogJSON     bool
	LogLevel    slog.Level
}

// DefaultConfig returns the base configuration `j2py translate` and
// `j2py serve` start from (serve then sets Mode to [ModeServer]).
func DefaultConfig() Config {
	return Config{
		ServiceName: "j2py",
		Mode:        ModeCLI,
		LogLevel:    slog.LevelInfo,
	}
}
