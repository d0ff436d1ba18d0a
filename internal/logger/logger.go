// Package logger holds the process-wide logrus logger.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// L is the global logger instance. It discards all output until Init is
// called, so library code can log unconditionally.
var L = newLogger(io.Discard, logrus.InfoLevel)

// Options configures the logger initialization.
type Options struct {
	Verbose bool   // Lowers the level to debug
	Quiet   bool   // Only errors are written; wins over Verbose
	Level   string // Explicit level name ("debug", "warn", ...); wins over Verbose and Quiet
	File    string // Log file path. Default: standard error
}

// file is the log file opened by the last Init, if any.
var file *os.File

// Init configures logging. Call from main() before any log calls.
// A log file opened by a previous Init is closed.
func Init(opts Options) error {
	level := logrus.WarnLevel
	switch {
	case opts.Level != "":
		lvl, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return err
		}
		level = lvl
	case opts.Quiet:
		level = logrus.ErrorLevel
	case opts.Verbose:
		level = logrus.DebugLevel
	}

	var w io.Writer = os.Stderr
	var f *os.File
	if opts.File != "" {
		var err error
		f, err = os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		w = f
	}

	prev := file
	L, file = newLogger(w, level), f
	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// Close closes the log file, if any, and discards further output.
func Close() error {
	L = newLogger(io.Discard, logrus.InfoLevel)
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	return &logrus.Logger{
		Out: w,
		Formatter: &logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
			DisableSorting:  true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}
}
