package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func NewLogger(level logrus.Level, out io.Writer) *logrus.Logger {
	logg := logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(level)
	if out == nil {
		out = os.Stdout
	}
	logg.SetOutput(out)
	return logg
}

// DiscardLogger swallows every entry; handy in tests.
func DiscardLogger() *logrus.Logger {
	return NewLogger(logrus.PanicLevel, io.Discard)
}

func LogError(logger *logrus.Logger, moduleName string, funcName string, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}

// LogWarning is LogError for failures that do not abort the operation.
func LogWarning(logger *logrus.Logger, moduleName string, funcName string, context string, err error) {
	logger.WithFields(logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}).Warn(err.Error())
}
