package frontmatter

import (
	"strings"
)

const hexDigits = "0123456789abcdef"

// Escape renders s as a double-quoted literal. Quotes and backslashes are
// backslash-escaped, \b \f \n \r \t use their short forms and any other control
// character below 0x20 becomes \u00xx. Invalid UTF-8 bytes become U+FFFD.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[r>>4])
				b.WriteByte(hexDigits[r&0xF])
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Normalize escapes s and turns every two-character \n sequence back into a
// line feed. A literal backslash followed by n in s therefore becomes a
// backslash and a line feed.
func Normalize(s string) string {
	return strings.ReplaceAll(Escape(s), `\n`, "\n")
}

// Trim removes leading and trailing whitespace, including the byte order mark
func Trim(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}
