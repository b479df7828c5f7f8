// Package config provides configuration loading and validation for j2py.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Sentinel validation errors.
var (
	ErrInvalidPort         = errors.New("invalid server port")
	ErrInvalidTargetPython = errors.New("unsupported target Python version")
	ErrInvalidIndent       = errors.New("indent must be non-empty whitespace")
)

// Default configuration values.
const (
	defaultPort         = 8080
	defaultHost         = "0.0.0.0"
	defaultIndent       = "    "
	defaultTargetPython = "3.10"
	maxPort             = 65535
)

// supportedTargetPythons lists the only --target-python values accepted.
// spec.md scopes the translator to a single Python dialect (§1); this is
// that dialect's allow-list.
var supportedTargetPythons = map[string]bool{"3.10": true}

// Config holds all configuration for j2py: the translate subcommand, the
// dev server, and logging. Grounded on the teacher's viper-backed
// Config/ServerConfig/LoggingConfig split.
type Config struct {
	Translate TranslateConfig `mapstructure:"translate" yaml:"translate"`
	Server    ServerConfig    `mapstructure:"server"    yaml:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"   yaml:"logging"`
}

// TranslateConfig is the translator's configuration surface (spec.md §6.3).
type TranslateConfig struct {
	Indent        string `mapstructure:"indent"          yaml:"indent"`
	TargetPython  string `mapstructure:"target_python"   yaml:"target_python"`
	EmitTypeHints bool   `mapstructure:"emit_type_hints" yaml:"emit_type_hints"`
	StrictSchema  bool   `mapstructure:"strict_schema"   yaml:"strict_schema"`
}

// ServerConfig holds `j2py serve`'s configuration.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// LoggingConfig holds structured-logging configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	JSON  bool   `mapstructure:"json"  yaml:"json"`
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath falls back to discovering "config.yaml" on the
// search path below; any other path is read directly.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("config")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/j2py")
	}

	viperCfg.SetEnvPrefix("J2PY")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	if unmarshalErr := viperCfg.Unmarshal(&cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	if validateErr := validateConfig(&cfg); validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &cfg, nil
}

// DefaultConfig returns the same values setDefaults installs on a fresh
// viper instance, as a concrete struct — the source of truth for `j2py
// config` (see [WriteDefault]).
func DefaultConfig() Config {
	return Config{
		Translate: TranslateConfig{
			Indent:        defaultIndent,
			TargetPython:  defaultTargetPython,
			EmitTypeHints: true,
		},
		Server: ServerConfig{
			Host: defaultHost,
			Port: defaultPort,
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(slog.LevelInfo.String()),
		},
	}
}

// WriteDefault renders the default configuration as a starter config.yaml.
func WriteDefault() ([]byte, error) {
	out, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("marshal default config: %w", err)
	}

	return out, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("translate.indent", defaultIndent)
	viperCfg.SetDefault("translate.target_python", defaultTargetPython)
	viperCfg.SetDefault("translate.emit_type_hints", true)
	viperCfg.SetDefault("translate.strict_schema", false)

	viperCfg.SetDefault("server.host", defaultHost)
	viperCfg.SetDefault("server.port", defaultPort)

	viperCfg.SetDefault("logging.level", strings.ToLower(slog.LevelInfo.String()))
	viperCfg.SetDefault("logging.json", false)
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > maxPort {
		return fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Server.Port)
	}

	if !supportedTargetPythons[cfg.Translate.TargetPython] {
		return fmt.Errorf("%w: %s", ErrInvalidTargetPython, cfg.Translate.TargetPython)
	}

	if cfg.Translate.Indent == "" || strings.TrimSpace(cfg.Translate.Indent) != "" {
		return fmt.Errorf("%w: %q", ErrInvalidIndent, cfg.Translate.Indent)
	}

	return nil
}
