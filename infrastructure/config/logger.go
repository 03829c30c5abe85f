package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger - creates the logger shared by the model, the browser backends and the CLI
func NewLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if out != nil {
		logger.SetOutput(out)
	}
	return logger, nil
}
