package helpers

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger for one binary (api, seed, event
// worker). Development logs text at debug level; every other environment logs
// JSON at level, falling back to info when level is empty or unknown.
func NewLogger(component, env, level string) *logrus.Logger {
	return newLogger(os.Stdout, component, env, level)
}

func newLogger(out io.Writer, component, env, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if env == "development" {
		if level == "" {
			lvl = logrus.DebugLevel
		}
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{FieldMap: logrus.FieldMap{logrus.FieldKeyMsg: "message"}})
	}
	logger.SetLevel(lvl)
	logger.WithFields(logrus.Fields{"component": component, "env": env, "level": lvl.String()}).Info("logger initialized")
	return logger
}

// LogError logs a failed request or job with its context fields.
func LogError(logger *logrus.Logger, msg string, err error, fields logrus.Fields) {
	entry := logger.WithFields(fields)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(msg)
}
