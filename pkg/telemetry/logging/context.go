package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// RunIDKey is the context key for audit run IDs.
	RunIDKey contextKey = "run_id"

	// TableKey is the context key for the input table being processed.
	TableKey contextKey = "table"

	// FileKey is the context key for the file being read or written.
	FileKey contextKey = "file"

	// TraceIDKey is the context key for the OpenTelemetry trace ID.
	TraceIDKey contextKey = "trace_id"
)

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// WithTable adds a table name to the context.
func WithTable(ctx context.Context, table string) context.Context {
	return context.WithValue(ctx, TableKey, table)
}

// GetTable retrieves the table name from the context.
func GetTable(ctx context.Context) string {
	if table, ok := ctx.Value(TableKey).(string); ok {
		return table
	}
	return ""
}

// WithFile adds a file path to the context.
func WithFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, FileKey, path)
}

// GetFile retrieves the file path from the context.
func GetFile(ctx context.Context) string {
	if path, ok := ctx.Value(FileKey).(string); ok {
		return path
	}
	return ""
}

// WithTraceID adds a trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// extractContextFields returns the context's log fields as key-value pairs.
func extractContextFields(ctx context.Context) []any {
	var fields []any
	if runID := GetRunID(ctx); runID != "" {
		fields = append(fields, "run_id", runID)
	}
	if table := GetTable(ctx); table != "" {
		fields = append(fields, "table", table)
	}
	if path := GetFile(ctx); path != "" {
		fields = append(fields, "file", path)
	}
	if traceID := GetTraceID(ctx); traceID != "" {
		fields = append(fields, "trace_id", traceID)
	}
	return fields
}

// ContextLogger is a logger bound to a context whose fields it adds to
// every entry.
type ContextLogger struct {
	logger *Logger
	ctx    context.Context
}

// NewContextLogger creates a logger that automatically includes context fields.
func NewContextLogger(logger *Logger, ctx context.Context) *ContextLogger {
	return &ContextLogger{
		logger: logger,
		ctx:    ctx,
	}
}

// Debug logs a debug message with context fields.
func (cl *ContextLogger) Debug(msg string, args ...any) {
	cl.logger.DebugContext(cl.ctx, msg, args...)
}

// Info logs an info message with context fields.
func (cl *ContextLogger) Info(msg string, args ...any) {
	cl.logger.InfoContext(cl.ctx, msg, args...)
}
