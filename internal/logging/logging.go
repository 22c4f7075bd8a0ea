package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

// requestIDKey is the key used to store request ID in context
type requestIDKey struct{}

// New builds the process logger. Production gets JSON output.
func New(level, env string) *logrus.Logger {
	l := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	if env == "production" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// WithRequestID stores the request ID in a standard context.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request ID from a standard context
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides request-scoped logging for services
type Logger struct {
	entry *logrus.Entry
}

// FromContext creates a logger carrying the request ID set by the middleware.
func FromContext(ctx context.Context, base *logrus.Logger) *Logger {
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{entry: base.WithField("request_id", requestID)}
}

func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error) {
	l.entry.WithField("operation", operation).WithError(err).Error("operation failed")
}

// LogInfo logs an info message with context
func (l *Logger) LogInfo(operation string, message string) {
	l.entry.WithField("operation", operation).Info(message)
}

// LogInfof logs a formatted info message with context
func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	l.entry.WithField("operation", operation).Infof(format, args...)
}

// LogWarn logs a warning with context
func (l *Logger) LogWarn(operation string, message string) {
	l.entry.WithField("operation", operation).Warn(message)
}
