package setting

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// ConfigureLogging applies [log] to the standard logrus logger.
func ConfigureLogging(l Log, out io.Writer) error {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetLevel(level)
	if out != nil {
		logrus.SetOutput(out)
	}
	switch l.Format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
