// Package log provides slog helpers that mask personal data before it
// reaches any log sink.
//
// The report store and sync client log the inputs they act on. Those
// inputs are phone numbers and email addresses belonging to real people,
// so every logger in this program masks them by default: a wrapped
// handler rewrites matching attribute values before delegating to the
// underlying text or JSON handler.
package log
