package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the name of the rotated log file inside the logs directory.
const LogFileName = "brickyard.log"

var (
	// Log is the global logger instance
	Log zerolog.Logger = zerolog.Nop()

	// fileWriter is the file output for logging (with rotation)
	fileWriter *lumberjack.Logger

	// fileOnlyLog writes only to file. Used while prompts own the terminal.
	fileOnlyLog zerolog.Logger

	// interactiveMode suppresses console Info/Warn/Error output.
	// File logging is never affected.
	interactiveMode bool
	interactiveMu   sync.RWMutex

	logContext   logContextData
	logContextMu sync.RWMutex
)

// logContextData holds optional workspace and command context for log entries.
type logContextData struct {
	Workspace string
	Command   string
}

// SetContext sets workspace and command context for all subsequent log entries.
// Pass empty strings to clear. Thread-safe.
func SetContext(workspace, command string) {
	logContextMu.Lock()
	defer logContextMu.Unlock()
	logContext = logContextData{
		Workspace: workspace,
		Command:   command,
	}
}

// ClearContext clears the workspace/command context.
func ClearContext() {
	SetContext("", "")
}

func getContext() logContextData {
	logContextMu.RLock()
	defer logContextMu.RUnlock()
	return logContext
}

func addContext(event *zerolog.Event) *zerolog.Event {
	ctx := getContext()
	if ctx.Workspace != "" {
		event = event.Str("workspace", ctx.Workspace)
	}
	if ctx.Command != "" {
		event = event.Str("command", ctx.Command)
	}
	return event
}

// LoggingConfig holds configuration for file-based logging.
// Mirrors config.LoggingSettings so this package does not import config.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// IsFileEnabled returns whether file logging is enabled.
// Defaults to true if not explicitly set.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 50 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 50
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// SetInteractiveMode enables or disables interactive mode.
// While enabled, console Info/Warn/Error are dropped so they do not land in
// the middle of a prompt. Debug is never suppressed.
func SetInteractiveMode(enabled bool) {
	interactiveMu.Lock()
	defer interactiveMu.Unlock()
	interactiveMode = enabled
}

func levelFor(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    false,
	}
}

// Init initializes console-only logging. Use InitWithFile for file logging.
func Init(debug bool) {
	Log = zerolog.New(consoleWriter()).
		Level(levelFor(debug)).
		With().
		Timestamp().
		Logger()
}

// InitWithFile initializes the logger with optional file output.
// If logsDir is empty or cfg disables file logging this behaves like Init,
// otherwise all entries go to the rotated JSON file only.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	level := levelFor(debug)
	console := consoleWriter()

	if logsDir == "" || cfg == nil || !cfg.IsFileEnabled() {
		Log = zerolog.New(console).
			Level(level).
			With().
			Timestamp().
			Logger()
		return nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, LogFileName),
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
		Compress:   false,
	}

	fileOnlyLog = zerolog.New(fileWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Once a file is available the console stays quiet; stderr belongs to
	// prompts, spinners and mason's own output.
	Log = fileOnlyLog

	return nil
}

// CloseFileWriter closes the file writer if it exists.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil
		return err
	}
	return nil
}

// GetLogFilePath returns the path to the current log file, or empty string if file logging is disabled.
func GetLogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

func shouldSuppress() bool {
	interactiveMu.RLock()
	interactive := interactiveMode
	interactiveMu.RUnlock()
	return interactive && Log.GetLevel() != zerolog.DebugLevel
}

func suppressed(level zerolog.Level) *zerolog.Event {
	if fileWriter != nil {
		return addContext(fileOnlyLog.WithLevel(level))
	}
	nop := zerolog.Nop()
	return nop.WithLevel(level)
}

// Debug logs a debug message (never suppressed)
func Debug() *zerolog.Event {
	return addContext(Log.Debug())
}

// Info logs an info message (file only in interactive mode)
func Info() *zerolog.Event {
	if shouldSuppress() {
		return suppressed(zerolog.InfoLevel)
	}
	return addContext(Log.Info())
}

// Warn logs a warning message (file only in interactive mode)
func Warn() *zerolog.Event {
	if shouldSuppress() {
		return suppressed(zerolog.WarnLevel)
	}
	return addContext(Log.Warn())
}

// Error logs an error message (file only in interactive mode)
func Error() *zerolog.Event {
	if shouldSuppress() {
		return suppressed(zerolog.ErrorLevel)
	}
	return addContext(Log.Error())
}

// WithField returns a logger with an additional field
func WithField(key string, value interface{}) zerolog.Logger {
	return Log.With().Interface(key, value).Logger()
}

// Global satisfies iostreams.Logger by forwarding to the package-level functions,
// so interactive-mode suppression applies to command-layer logging too.
type Global struct{}

func (Global) Debug() *zerolog.Event { return Debug() }
func (Global) Info() *zerolog.Event  { return Info() }
func (Global) Warn() *zerolog.Event  { return Warn() }
func (Global) Error() *zerolog.Event { return Error() }
