package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	defaultLevel = logrus.WarnLevel
)

// New returns a logger writing to stderr. An empty level falls back to
// warning, an empty format to text.
func New(level, format string) (*logrus.Logger, error) {
	return NewWithOutput(os.Stderr, level, format)
}

func NewWithOutput(out io.Writer, level, format string) (*logrus.Logger, error) {
	lg := logrus.New()
	lg.SetOutput(out)

	lvl := defaultLevel
	if level != "" {
		var err error
		lvl, err = logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
	}
	lg.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", FormatText:
		lg.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000 MST",
		})
	case FormatJSON:
		lg.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format '%s'", format)
	}

	return lg, nil
}
