package logger

import (
	"fmt"
	"os"
	"strings"
)

// ParseLevel maps a configuration string onto a LogLevel.
func ParseLevel(level string) (LogLevel, error) {
	switch l := LogLevel(strings.ToLower(strings.TrimSpace(level))); l {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel, DisabledLevel:
		return l, nil
	case NoLevel:
		return InfoLevel, nil
	default:
		return NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// SetupLogger builds the process logger. Output always goes to stderr.
func SetupLogger(level LogLevel, logJSON, logSource bool) Logger {
	return NewLogger(&Config{
		Level:      level,
		Output:     os.Stderr,
		JSON:       logJSON,
		AddSource:  logSource,
		TimeFormat: "15:04:05",
	})
}
