// Package console implements a logger backend on top of charmbracelet/log.
package console

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger writes to a terminal
type Logger struct {
	logger *log.Logger
}

// Params configures a console Logger
type Params struct {
	Debug  bool
	Output io.Writer // defaults to stderr
}

// New creates a console logger
func New(params Params) *Logger {
	level := log.InfoLevel
	if params.Debug {
		level = log.DebugLevel
	}
	output := params.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		logger: log.NewWithOptions(output, log.Options{
			ReportTimestamp: true,
			Level:           level,
		}),
	}
}

func (c *Logger) Debug(message string, keyvals ...any) { c.logger.Debug(message, keyvals...) }

func (c *Logger) Info(message string, keyvals ...any) { c.logger.Info(message, keyvals...) }

func (c *Logger) Warn(message string, keyvals ...any) { c.logger.Warn(message, keyvals...) }

func (c *Logger) Error(message string, keyvals ...any) { c.logger.Error(message, keyvals...) }
