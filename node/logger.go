package node

import (
	"context"
	"log/slog"
)

// Logger is the interface this package uses for structured logging
// during document decoding. It is designed to be minimal yet
// compatible with popular logging libraries including log/slog, zap,
// and zerolog, using variadic key-value pairs in the same convention
// as log/slog.
//
//	logger.Debug("detected format from content", "format", "json")
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to
	// every subsequent log call.
	With(attrs ...any) Logger
}

// NopLogger discards all output. It is the default when no logger is
// configured via WithLogger.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any)    {}
func (NopLogger) Info(_ string, _ ...any)     {}
func (NopLogger) Warn(_ string, _ ...any)     {}
func (NopLogger) Error(_ string, _ ...any)    {}
func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter. If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

// ContextLogger wraps a Logger with an associated context, useful for
// passing request-scoped values through a logging pipeline that does
// not otherwise carry a context.Context.
type ContextLogger struct {
	logger Logger
	ctx    context.Context
}

// NewContextLogger creates a ContextLogger.
func NewContextLogger(logger Logger, ctx context.Context) *ContextLogger {
	return &ContextLogger{logger: logger, ctx: ctx}
}

func (c *ContextLogger) Debug(msg string, attrs ...any) { c.logger.Debug(msg, attrs...) }
func (c *ContextLogger) Info(msg string, attrs ...any)  { c.logger.Info(msg, attrs...) }
func (c *ContextLogger) Warn(msg string, attrs ...any)  { c.logger.Warn(msg, attrs...) }
func (c *ContextLogger) Error(msg string, attrs ...any) { c.logger.Error(msg, attrs...) }
func (c *ContextLogger) With(attrs ...any) Logger {
	return &ContextLogger{logger: c.logger.With(attrs...), ctx: c.ctx}
}

// Context returns the context associated with this logger.
func (c *ContextLogger) Context() context.Context { return c.ctx }

var _ Logger = (*ContextLogger)(nil)
