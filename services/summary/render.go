package summary

import (
	"strings"
	"unicode"
)

// ConfirmationLine is appended to every rendered summary.
const ConfirmationLine = "Appointment is confirmed. A senior inspector will call the morning of the visit."

// Render produces the clipboard text for a filled form: each visible
// field with a non-empty value contributes prefix+value+suffix, in schema
// order, followed by the fixed confirmation line. Emoji code points are
// stripped. The result is a deterministic, total function of
// (schema, data); once stored on an appointment it is never regenerated.
func Render(schema Schema, data map[string]string) string {
	var b strings.Builder
	for _, f := range schema {
		if !f.Visible(data) {
			continue
		}
		value := strings.TrimSpace(data[f.ID])
		if value == "" {
			continue
		}
		b.WriteString(f.Prefix)
		b.WriteString(value)
		b.WriteString(f.Suffix)
	}
	b.WriteString(ConfirmationLine)
	b.WriteString("\n")
	return stripEmoji(b.String())
}

// Validate checks required, visible fields for non-empty values and
// returns per-field problems keyed by field id. An empty map means the
// form may be submitted.
func Validate(schema Schema, data map[string]string) map[string]string {
	problems := make(map[string]string)
	for _, f := range schema {
		if !f.Required || !f.Visible(data) {
			continue
		}
		if strings.TrimSpace(data[f.ID]) == "" {
			problems[f.ID] = f.Label + " is required"
		}
	}
	return problems
}

// stripEmoji removes emoji and pictographic code points. Summaries travel
// through SMS and dialer notes fields that mangle anything outside the
// basic multilingual plane.
func stripEmoji(s string) string {
	return strings.Map(func(r rune) rune {
		if isEmoji(r) {
			return -1
		}
		return r
	}, s)
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, emoticons, symbols
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, ZWJ
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicators
		return true
	case unicode.Is(unicode.Sk, r) && r > 0xFFFF:
		return true
	}
	return false
}
