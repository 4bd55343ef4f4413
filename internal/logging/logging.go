// internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the application wide logger. It is usable before Init is called.
var Log = NewLogger(Options{Level: "info"})

// Options controls logger construction.
type Options struct {
	Level     string
	Format    string // "json" (default) or "text"
	File      string // optional rotating log file
	MaxSizeMB int
}

// Init replaces the global logger.
func Init(opts Options) {
	Log = NewLogger(opts)
}

// NewLogger returns a logger with the given level, format and output.
func NewLogger(opts Options) *logrus.Logger {
	var log = logrus.New()

	if strings.ToLower(opts.Format) == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetOutput(output(opts))
	log.SetLevel(ParseLevel(opts.Level))
	return log
}

// ParseLevel maps a level name to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func output(opts Options) io.Writer {
	if opts.File == "" {
		return os.Stdout
	}
	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	fileWriter := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	// Keep stdout so container logs still show up.
	return io.MultiWriter(os.Stdout, fileWriter)
}
