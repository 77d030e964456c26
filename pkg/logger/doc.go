// Package logger provides slog factories used across the module: a
// JSON logger for production, a no-op logger as the default for library
// components, and an optional Sentry-backed logger that fans records out
// to stdout and Sentry with graceful fallback when unconfigured.
package logger
