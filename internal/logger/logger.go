// Package logger builds the hclog logger used for debug tracing of
// rewrite and resolution decisions.
package logger

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// New returns a named logger. The level comes from JTOL_LOG_LEVEL and
// defaults to warn, so normal runs stay silent.
func New(name string) hclog.Logger {
	level := getLogLevel(strings.ToUpper(os.Getenv("JTOL_LOG_LEVEL")))

	return hclog.New(&hclog.LoggerOptions{
		Name:        name,
		DisableTime: true,
		Output:      os.Stderr,
		Level:       level,
	})
}

func getLogLevel(levelStr string) hclog.Level {
	switch levelStr {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "INFO":
		return hclog.Info
	case "WARN":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	default:
		return hclog.Warn
	}
}
