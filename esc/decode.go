package esc

import "unicode/utf8"

// Maximum number of hexadecimal digits consumed by \u and \x escapes.
const MaxHexDigits = 4

// Decodes the character starting at the given byte index.
//
// When raw is true, escapes are not interpreted and this is only an
// utf8 decoding step. Otherwise, a backslash introduces an escape as
// described in the package documentation.
//
// The returned next index is where the following character starts.
// For out of range indices, the function returns (len(text), -1, false).
// The escaped flag is true only for valid escapes; an unrecognized
// escape returns a literal '\\' with escaped == false.
func Decode(text string, index int, raw bool) (next int, char rune, escaped bool) {
	if index < 0 || index >= len(text) { return len(text), -1, false }

	codePoint, size := utf8.DecodeRuneInString(text[index : ])
	if raw || codePoint != '\\' { return index + size, codePoint, false }

	// backslash at the end of the string is a literal
	next = index + 1
	if next >= len(text) { return next, '\\', false }

	switch text[next] {
	case '0' : return next + 1, '\x00', true
	case 'a' : return next + 1, '\a', true
	case 'b' : return next + 1, '\b', true
	case 'e' : return next + 1, '\x1B', true
	case 'f' : return next + 1, '\f', true
	case 'n' : return next + 1, '\n', true
	case 'r' : return next + 1, '\r', true
	case 't' : return next + 1, '\t', true
	case 'v' : return next + 1, '\v', true
	case '\\': return next + 1, '\\', true
	case '\'': return next + 1, '\'', true
	case '"' : return next + 1, '"', true
	case 'u', 'x':
		next += 1
		var value rune
		for digits := 0; digits < MaxHexDigits && next < len(text); digits++ {
			nibble, ok := hexValue(text[next])
			if !ok { break }
			value = (value << 4) | nibble
			next += 1
		}
		return next, value, true
	default:
		// unknown escape: literal backslash, rewind to the
		// character right after it
		return index + 1, '\\', false
	}
}

func hexValue(b byte) (rune, bool) {
	switch {
	case b >= '0' && b <= '9': return rune(b - '0'), true
	case b >= 'a' && b <= 'f': return rune(b - 'a' + 10), true
	case b >= 'A' && b <= 'F': return rune(b - 'A' + 10), true
	default:
		return 0, false
	}
}

// Decodes the whole text and returns the resulting characters.
// Mostly useful for debugging and tests, as the layout engine
// always decodes lazily.
func DecodeAll(text string, raw bool) []rune {
	out := make([]rune, 0, len(text))
	for index := 0; index < len(text); {
		var char rune
		index, char, _ = Decode(text, index, raw)
		out = append(out, char)
	}
	return out
}
