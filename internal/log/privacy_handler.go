package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// piiKeys contains attribute keys whose values are always masked. These
// keys carry phone numbers, addresses, or device identity regardless of
// what the value looks like.
var piiKeys = map[string]bool{
	"phone":     true,
	"number":    true,
	"caller":    true,
	"email":     true,
	"sender":    true,
	"address":   true,
	"device_id": true,
	"deviceid":  true,
}

// phonePattern matches E.164 numbers and common local spellings with
// separators, anchored to avoid masking arbitrary numeric fields.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{6,18}[0-9]$`)

// emailPattern matches anything shaped like an email address.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MaskPhone hides all but the last four digits of a number. Short values
// are fully masked.
func MaskPhone(number string) string {
	digits := 0
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits <= 4 {
		return "****"
	}
	tail := number[len(number)-4:]
	return "****" + tail
}

// MaskEmail keeps the first character of the local part and the full
// domain: "user@example.com" becomes "u***@example.com".
func MaskEmail(address string) string {
	at := strings.IndexByte(address, '@')
	if at <= 0 {
		return "***"
	}
	return address[:1] + "***" + address[at:]
}

// PrivacyHandler wraps an slog.Handler and masks personal data in
// attribute values before delegating.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates with standard slog APIs and any slog-based library
//  2. It works with any underlying handler (text, JSON)
//  3. Call sites stay ordinary; nobody has to remember to mask
type PrivacyHandler struct {
	handler slog.Handler
}

// NewPrivacyHandler creates a PrivacyHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewPrivacyHandler(handler slog.Handler) *PrivacyHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &PrivacyHandler{handler: handler}
}

// Enabled delegates to the underlying handler.
func (h *PrivacyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it on.
func (h *PrivacyHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added, masked.
func (h *PrivacyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = h.maskAttr(a)
	}
	return &PrivacyHandler{handler: h.handler.WithAttrs(maskedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *PrivacyHandler) WithGroup(name string) slog.Handler {
	return &PrivacyHandler{handler: h.handler.WithGroup(name)}
}

// maskAttr masks a single attribute, recursing into groups.
func (h *PrivacyHandler) maskAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			maskedAttrs[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(maskedAttrs...)}
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}
	value := a.Value.String()

	if piiKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, maskByShape(value))
	}

	// Mask by value shape even under unlisted keys, so a phone number
	// logged as "input" is still hidden.
	switch {
	case emailPattern.MatchString(value):
		return slog.String(a.Key, MaskEmail(value))
	case phonePattern.MatchString(value):
		return slog.String(a.Key, MaskPhone(value))
	}
	return a
}

// maskByShape picks the mask for a value under a known PII key.
func maskByShape(value string) string {
	if emailPattern.MatchString(value) {
		return MaskEmail(value)
	}
	if phonePattern.MatchString(value) {
		return MaskPhone(value)
	}
	return "***"
}

// NewLogger creates a text slog.Logger with privacy masking. Verbose
// enables Debug level; the default is Warn so check output stays clean.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewPrivacyHandler(textHandler))
}

// NewJSONLogger creates a JSON slog.Logger with privacy masking, for the
// sync server where logs feed aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewPrivacyHandler(jsonHandler))
}
