package utils

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
)

// Logger is the logging interface shared by handlers and services.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)

	With(args ...any) Logger

	// HTTP request logging helpers
	LogRequest(method, path string, statusCode int, duration string, args ...any)
	LogError(err error, msg string, args ...any)
}

// Slog implements Logger on top of log/slog.
type Slog struct {
	logger *slog.Logger
}

// NewSlogLogger wraps an existing slog.Logger.
func NewSlogLogger(logger *slog.Logger) Logger {
	return &Slog{logger: logger}
}

// NewDefaultLogger creates a JSON logger at info level for production use.
func NewDefaultLogger() Logger {
	return NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}

// NewDevelopmentLogger creates a text logger at debug level.
func NewDevelopmentLogger() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func (l *Slog) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Slog) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Slog) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Slog) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *Slog) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *Slog) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *Slog) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *Slog) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *Slog) With(args ...any) Logger {
	return &Slog{logger: l.logger.With(args...)}
}

// LogRequest logs one handled HTTP request, at a level matching the
// response status.
func (l *Slog) LogRequest(method, path string, statusCode int, duration string, args ...any) {
	level := slog.LevelInfo
	if statusCode >= 400 {
		level = slog.LevelWarn
	}
	if statusCode >= 500 {
		level = slog.LevelError
	}

	baseArgs := []any{
		"method", method,
		"path", path,
		"status_code", statusCode,
		"duration", duration,
	}
	l.logger.Log(context.Background(), level, "HTTP Request", append(baseArgs, args...)...)
}

func (l *Slog) LogError(err error, msg string, args ...any) {
	l.logger.Error(msg, append([]any{"error", err}, args...)...)
}

// Slogger returns the underlying slog.Logger for components that need
// it directly (the event publisher does).
func (l *Slog) Slogger() *slog.Logger {
	return l.logger
}

// ToSlogLogger unwraps a Logger to its slog.Logger when possible.
func ToSlogLogger(logger Logger) *slog.Logger {
	if sl, ok := logger.(*Slog); ok {
		return sl.Slogger()
	}
	return slog.Default()
}

// LoggerMiddleware creates a gin middleware that routes request logs
// through the shared Logger.
func LoggerMiddleware(logger Logger) func(*gin.Context) {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		logger.LogRequest(
			param.Method,
			param.Path,
			param.StatusCode,
			param.Latency.String(),
			"client_ip", param.ClientIP,
			"user_agent", param.Request.UserAgent(),
		)
		return ""
	})
}
