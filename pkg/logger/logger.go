// Package logger holds the process-wide zerolog instance for the commerce
// API. The entrypoint configures it once with Init; everything else reaches
// it through Get. Before Init runs, Get hands out a JSON logger at info
// level so library code and tests never have to care about ordering.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// service is stamped on every line so aggregated logs stay attributable.
const service = "commerce-api"

// Options configures the shared logger.
type Options struct {
	// Level is the minimum level to emit: trace, debug, info, warn, error.
	// Unknown or empty values fall back to info.
	Level string
	// Pretty switches to the colored console writer for local development.
	// Production keeps the default JSON stream.
	Pretty bool
	// Output receives the log stream. Defaults to os.Stdout.
	Output io.Writer
}

var (
	mu       sync.Mutex
	instance *zerolog.Logger
)

// Init builds the shared logger from opts and returns it. Later calls
// replace the previous configuration, which only matters in tests.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	log := build(opts)
	instance = &log
	return log
}

// Get returns the shared logger, building a default one when Init has not
// run yet.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		log := build(Options{})
		instance = &log
	}
	return *instance
}

// Reset drops the shared logger so the next Init or Get starts fresh.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}

func build(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Caller().
		Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
