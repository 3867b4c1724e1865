package model

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/unicode/norm"
)

// DefaultRegion is the ISO 3166-1 region used to interpret phone numbers
// written without a country code. The engine is tuned for the Dominican
// Republic.
const DefaultRegion = "DO"

// NormalizePhone canonicalizes a raw phone number to digits with an
// optional leading '+'. Numbers that parse as valid are formatted as
// E.164 via the phonenumbers library; anything else falls back to
// stripping every character except digits and a leading '+'.
//
// The result is idempotent: NormalizePhone(NormalizePhone(x)) ==
// NormalizePhone(x). E.164 output re-parses to itself, and the stripping
// fallback is a fixed point of itself.
func NormalizePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if num, err := phonenumbers.Parse(trimmed, DefaultRegion); err == nil {
		if phonenumbers.IsValidNumber(num) {
			return phonenumbers.Format(num, phonenumbers.E164)
		}
	}

	var b strings.Builder
	for i, r := range trimmed {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeEmail canonicalizes a raw email address: NFC unicode
// normalization, surrounding whitespace removed, lowercased. Idempotent.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(raw)))
}
