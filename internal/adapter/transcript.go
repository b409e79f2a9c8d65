package adapter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatTranscript flattens messages into one block of text for models that
// take a raw prompt. Each message becomes "<Role>: <content>\n".
func FormatTranscript(messages []Message) string {
	var b strings.Builder
	for _, m := range messages {
		role := m.Role
		if role == "" {
			role = RoleUser
		}
		b.WriteString(capitalize(role))
		b.WriteString(": ")
		b.WriteString(m.Content)
		b.WriteByte('\n')
	}
	return b.String()
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
