package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls where log output goes
type Options struct {
	Verbosity int

	// Console receives human readable output. Defaults to os.Stderr.
	Console io.Writer

	// LogFile receives JSON lines. Empty means $XDG_STATE_HOME/dotf/dotf.log;
	// "-" disables the file.
	LogFile string
}

var (
	mu      sync.Mutex
	logFile *os.File
)

// Level maps a -v count to a zerolog level. Warnings always show so that
// content diagnostics reach the user.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger for the given verbosity, writing
// to stderr and to the state log file.
func SetupLogger(verbosity int) {
	Setup(Options{Verbosity: verbosity})
}

// Setup configures the global logger. Calling it again replaces the previous
// outputs and closes the previous log file.
func Setup(opts Options) {
	mu.Lock()
	defer mu.Unlock()

	zerolog.SetGlobalLevel(Level(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}}

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	path := opts.LogFile
	if path == "" {
		path = LogFilePath()
	}
	var fileErr error
	if path != "-" {
		logFile, fileErr = openLogFile(path)
		if fileErr == nil {
			writers = append(writers, logFile)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", path).Msg("Logger initialized")
}

// GetLogger returns a sub-logger tagged with a component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogFilePath is $XDG_STATE_HOME/dotf/dotf.log
func LogFilePath() string {
	// XDG_* may change after process start (tests, wrappers).
	xdg.Reload()
	return filepath.Join(xdg.StateHome, "dotf", "dotf.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

// LogOperationStart logs at DEBUG when a pass begins and returns a func that
// logs its duration.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
