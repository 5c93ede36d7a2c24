package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/studydash/internal/constants"
)

// Rotation settings for the log file.
const (
	maxLogMegabytes = 5
	maxLogBackups   = 2
	maxLogAgeDays   = 14
)

var (
	Logger *log.Logger
	file   *lumberjack.Logger
)

// Config selects where planner diagnostics go. The log file always receives
// every entry at or above the active level. Console, when set, also gets a
// copy in debug mode; the tui command leaves it nil so the alt screen stays
// clean.
type Config struct {
	Debug     bool
	ConfigDir string
	Console   io.Writer
}

func LogPath(configDir string) string {
	return filepath.Join(configDir, "logs", constants.AppName+".log")
}

// Init replaces the package logger. Calling it again closes the previous
// log file first.
func Init(cfg Config) error {
	path := LogPath(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := Close(); err != nil {
		return err
	}

	file = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogMegabytes,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}
	Logger = log.NewWithOptions(sessionWriter(cfg, file), log.Options{
		Level:           levelFor(cfg.Debug),
		ReportTimestamp: true,
		ReportCaller:    cfg.Debug,
		CallerOffset:    2, // emit and the level wrapper
		Prefix:          constants.AppName,
		Formatter:       log.LogfmtFormatter,
	})
	return nil
}

func sessionWriter(cfg Config, w io.Writer) io.Writer {
	if cfg.Debug && cfg.Console != nil {
		return io.MultiWriter(cfg.Console, w)
	}
	return w
}

func levelFor(debug bool) log.Level {
	if debug {
		return log.DebugLevel
	}
	return log.WarnLevel
}

// Close flushes and releases the log file. The package logger is reset, so
// later calls are dropped until the next Init.
func Close() error {
	Logger = nil
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

func Debug(msg string, keyvals ...interface{}) { emit(log.DebugLevel, msg, keyvals) }
func Info(msg string, keyvals ...interface{})  { emit(log.InfoLevel, msg, keyvals) }
func Warn(msg string, keyvals ...interface{})  { emit(log.WarnLevel, msg, keyvals) }
func Error(msg string, keyvals ...interface{}) { emit(log.ErrorLevel, msg, keyvals) }

func emit(level log.Level, msg string, keyvals []interface{}) {
	if Logger == nil {
		return
	}
	Logger.Log(level, msg, keyvals...)
}
