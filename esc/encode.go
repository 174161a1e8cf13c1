package esc

import "strings"
import "unicode/utf8"

const hexDigits = "0123456789ABCDEF"

// Encodes a single character so that decoding the result yields
// the same character back. Control characters are written with
// their short escape when they have one, and as \xHHHH otherwise.
// Backslashes are doubled. Code points above 0xFFFF can't be
// expressed as escapes and are written literally.
func Encode(char rune) string {
	switch char {
	case '\x00': return `\0`
	case '\a'  : return `\a`
	case '\b'  : return `\b`
	case '\x1B': return `\e`
	case '\f'  : return `\f`
	case '\n'  : return `\n`
	case '\r'  : return `\r`
	case '\t'  : return `\t`
	case '\v'  : return `\v`
	case '\\'  : return `\\`
	}
	if isControl(char) || !utf8.ValidRune(char) {
		if char >= 0 && char <= 0xFFFF { return hexEscape(char) }
	}
	return string(char)
}

// Returns the text with every character encoded through [Encode](),
// and braces written as hex escapes so they are never interpreted
// as rich text markup.
func Quote(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, char := range text {
		switch char {
		case '{', '}':
			builder.WriteString(hexEscape(char))
		default:
			builder.WriteString(Encode(char))
		}
	}
	return builder.String()
}

func hexEscape(char rune) string {
	var buffer [6]byte
	buffer[0], buffer[1] = '\\', 'x'
	for i := 0; i < 4; i++ {
		shift := uint(12 - i*4)
		buffer[2 + i] = hexDigits[(char >> shift) & 0xF]
	}
	return string(buffer[ : ])
}

// Matches the characters skipped by font character lists when
// they appear unescaped: C0 controls, DEL and C1 controls.
func isControl(char rune) bool {
	return char < 0x20 || (char >= 0x7F && char < 0xA0)
}

// Reports whether the character is a control character that
// would be ignored if it appeared unescaped in a font character
// list.
func IsControl(char rune) bool { return isControl(char) }
