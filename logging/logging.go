package logging

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Logger is the sink railenv reports configuration changes to.
type Logger interface {
	Warn(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
}

type nop struct{}

func (nop) Warn(string, map[string]any) {}
func (nop) Info(string, map[string]any) {}

// Nop discards every event.
var Nop Logger = nop{}

// Logrus adapts a logrus logger to Logger
type Logrus struct {
	logger *log.Logger
}

func NewLogrus(logger *log.Logger) *Logrus {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Logrus{logger: logger}
}

func (l *Logrus) Warn(msg string, fields map[string]any) {
	l.logger.WithFields(log.Fields(fields)).Warn(msg)
}

func (l *Logrus) Info(msg string, fields map[string]any) {
	l.logger.WithFields(log.Fields(fields)).Info(msg)
}

// New builds a logrus logger writing to stderr. format is "text" or "json".
func New(level, format string) (*log.Logger, error) {
	logger := log.New()
	logger.SetOutput(os.Stderr)

	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	return logger, nil
}
