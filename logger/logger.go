package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	log "github.com/mgutz/logxi/v1"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	TRACE LogLevel = iota // Per-PDU decode details
	DEBUG                 // Attribute database loads, capture records
	INFO                  // High-level events (connections, files)
	WARN                  // Warnings
	ERROR                 // Errors
)

var (
	currentLevel LogLevel = INFO
	output       io.Writer
	loggers      = make(map[string]log.Logger)
	mu           sync.RWMutex
)

// SetLevel sets the global log level
func SetLevel(level LogLevel) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
	for _, l := range loggers {
		l.SetLevel(logxiLevel(level))
	}
}

// GetLevel returns the current log level
func GetLevel() LogLevel {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// SetOutput redirects every logger to w. Loggers created earlier are
// recreated on next use.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	loggers = make(map[string]log.Logger)
}

// ParseLevel converts a string to a LogLevel
func ParseLevel(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

func logxiLevel(level LogLevel) int {
	switch level {
	case TRACE:
		return log.LevelTrace
	case DEBUG:
		return log.LevelDebug
	case INFO:
		return log.LevelInfo
	case WARN:
		return log.LevelWarn
	default:
		return log.LevelError
	}
}

// get returns the logxi logger named after prefix
func get(prefix string) log.Logger {
	if prefix == "" {
		prefix = "attmon"
	}

	mu.RLock()
	l, exists := loggers[prefix]
	mu.RUnlock()
	if exists {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if l, exists = loggers[prefix]; exists {
		return l
	}
	w := output
	if w == nil {
		w = os.Stdout
	}
	l = log.NewLogger(log.NewConcurrentWriter(w), prefix)
	l.SetLevel(logxiLevel(currentLevel))
	loggers[prefix] = l
	return l
}

func write(level LogLevel, prefix, format string, args ...interface{}) {
	if level < GetLevel() {
		return
	}

	msg := fmt.Sprintf(format, args...)
	l := get(prefix)
	switch level {
	case TRACE:
		l.Trace(msg)
	case DEBUG:
		l.Debug(msg)
	case INFO:
		l.Info(msg)
	case WARN:
		l.Warn(msg)
	default:
		l.Error(msg)
	}
}

// Trace logs a trace message (per-PDU decode details)
func Trace(prefix, format string, args ...interface{}) {
	write(TRACE, prefix, format, args...)
}

// Debug logs a debug message
func Debug(prefix, format string, args ...interface{}) {
	write(DEBUG, prefix, format, args...)
}

// Info logs an info message (high-level events)
func Info(prefix, format string, args ...interface{}) {
	write(INFO, prefix, format, args...)
}

// Warn logs a warning message
func Warn(prefix, format string, args ...interface{}) {
	write(WARN, prefix, format, args...)
}

// Error logs an error message
func Error(prefix, format string, args ...interface{}) {
	write(ERROR, prefix, format, args...)
}

// ToJSON converts any value to a pretty-printed JSON string for logging
func ToJSON(v interface{}) string {
	if msg, ok := v.(proto.Message); ok {
		marshaler := protojson.MarshalOptions{
			Multiline:       true,
			Indent:          "  ",
			EmitUnpopulated: false,
		}
		jsonBytes, err := marshaler.Marshal(msg)
		if err != nil {
			return fmt.Sprintf("<error: %v>", err)
		}
		return string(jsonBytes)
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	return string(jsonBytes)
}

// TraceJSON logs a trace message with a JSON representation
func TraceJSON(prefix, label string, v interface{}) {
	if GetLevel() > TRACE {
		return
	}
	write(TRACE, prefix, "%s:\n%s", label, ToJSON(v))
}

// DebugJSON logs a debug message with a JSON representation
func DebugJSON(prefix, label string, v interface{}) {
	if GetLevel() > DEBUG {
		return
	}
	write(DEBUG, prefix, "%s:\n%s", label, ToJSON(v))
}
