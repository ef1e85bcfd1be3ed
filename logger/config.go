package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Level)); err != nil {
		return fmt.Errorf("log.level is not a valid level (got: %s)", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be one of [json console] (got: %s)", c.Format)
	}
	return nil
}

// New creates a Logger from the configuration. An invalid level falls back to info.
func New(cfg Config) Logger {
	cfg.ApplyDefaults()
	return NewZeroLogger(newZerolog(cfg, outputWriter(cfg.Output)))
}

// NewWithWriter is like New but writes to out regardless of the configured output
func NewWithWriter(cfg Config, out io.Writer) Logger {
	cfg.ApplyDefaults()
	return NewZeroLogger(newZerolog(cfg, out))
}

// NewStdLogger returns a console Logger writing to stderr at info level
func NewStdLogger() Logger {
	return New(Config{})
}

func newZerolog(cfg Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if strings.ToLower(cfg.Format) == "console" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: cfg.NoColor})
	} else {
		zl = zerolog.New(out)
	}
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	return zl.Level(level)
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}
