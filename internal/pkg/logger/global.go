package logger

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type requestIDKey struct{}

var (
	// globalLogger holds the singleton logger instance
	globalLogger *AppLogger
	// once ensures the fallback logger is built only once
	once sync.Once
	// mu protects access to the global logger
	mu sync.RWMutex
)

// SetGlobalLogger sets the global logger instance.
// This should be called once during application startup.
func SetGlobalLogger(logger *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance, or a console logger if none is set
func GetGlobalLogger() *AppLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	once.Do(func() {
		fallback, _ := NewAppLogger(Config{Level: "info"})
		mu.Lock()
		if globalLogger == nil {
			globalLogger = fallback
		}
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrus(fields)).Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrus(fields)).Warn(msg)
}

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrus(fields)).Debug(msg)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrus(fields)).Error(msg)
}

// Fatal logs a fatal message and exits using the global logger
func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().WithFields(toLogrus(fields)).Fatal(msg)
}

// WithFields returns an entry with additional fields using the global logger
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return GetGlobalLogger().WithFields(fields)
}

// ContextWithRequestID stores the request id so Ctx helpers can tag entries with it
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id stored in ctx, if any
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func entryCtx(ctx context.Context, fields []Field) *logrus.Entry {
	lf := toLogrus(fields)
	if id := RequestIDFromContext(ctx); id != "" {
		lf["request_id"] = id
	}
	return GetGlobalLogger().WithFields(lf)
}

// InfoCtx logs an info message with request context using the global logger
func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	entryCtx(ctx, fields).Info(msg)
}

// WarnCtx logs a warning message with request context using the global logger
func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	entryCtx(ctx, fields).Warn(msg)
}

// ErrorCtx logs an error message with request context using the global logger
func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	entryCtx(ctx, fields).Error(msg)
}

// DebugCtx logs a debug message with request context using the global logger
func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	entryCtx(ctx, fields).Debug(msg)
}
