// Package logger configures the process-wide JSON slog handler and carries
// request-scoped loggers through context.Context.
package logger
