package logger

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Setup configures the package-level charmbracelet logger used across the service.
// Production output is JSON, everything else is human readable text.
func Setup(env, level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	log.SetDefault(New(env, lvl))
}

func New(env string, level log.Level) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
	})
	if env == "production" {
		l.SetFormatter(log.JSONFormatter)
	}
	return l
}
