package esc

import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestDecodeShortForms(t *testing.T) {
	tests := []struct {
		in  string
		out rune
	}{
		{`\0`, 0}, {`\a`, 7}, {`\b`, 8}, {`\e`, 0x1B}, {`\f`, 0x0C},
		{`\n`, '\n'}, {`\r`, '\r'}, {`\t`, '\t'}, {`\v`, 0x0B},
		{`\\`, '\\'}, {`\'`, '\''}, {`\"`, '"'},
	}
	for _, test := range tests {
		next, char, escaped := Decode(test.in, 0, false)
		assert.Equal(t, 2, next, test.in)
		assert.Equal(t, test.out, char, test.in)
		assert.True(t, escaped, test.in)
	}
}

func TestDecodeHex(t *testing.T) {
	next, char, escaped := Decode(`\x0041BC`, 0, false)
	assert.Equal(t, 6, next)
	assert.Equal(t, 'A', char)
	assert.True(t, escaped)

	// fewer digits when a non-hex character appears
	next, char, escaped = Decode(`\x4g`, 0, false)
	assert.Equal(t, 3, next)
	assert.Equal(t, rune(4), char)
	assert.True(t, escaped)

	// fewer digits when the string ends
	next, char, _ = Decode(`\xFF`, 0, false)
	assert.Equal(t, 4, next)
	assert.Equal(t, rune(0xFF), char)

	// no digits at all
	next, char, escaped = Decode(`\u`, 0, false)
	assert.Equal(t, 2, next)
	assert.Equal(t, rune(0), char)
	assert.True(t, escaped)
}

func TestDecodeUnknownAndRaw(t *testing.T) {
	next, char, escaped := Decode(`\q`, 0, false)
	assert.Equal(t, 1, next, "unknown escapes must only consume the backslash")
	assert.Equal(t, '\\', char)
	assert.False(t, escaped)

	next, char, _ = Decode(`\q`, next, false)
	assert.Equal(t, 2, next)
	assert.Equal(t, 'q', char)

	next, char, escaped = Decode(`ab\`, 2, false)
	assert.Equal(t, 3, next)
	assert.Equal(t, '\\', char)
	assert.False(t, escaped)

	next, char, escaped = Decode(`\n`, 0, true)
	assert.Equal(t, 1, next)
	assert.Equal(t, '\\', char)
	assert.False(t, escaped)

	next, char, _ = Decode("ñ", 0, false)
	assert.Equal(t, 2, next)
	assert.Equal(t, 'ñ', char)

	next, char, escaped = Decode("abc", 3, false)
	assert.Equal(t, 3, next)
	assert.Equal(t, rune(-1), char)
	assert.False(t, escaped)
}

func TestDecodeVisitsEachIndexOnce(t *testing.T) {
	inputs := []string{
		``, `plain`, `\`, `\\\`, `\u`, `\u12`, `a\qb\x41\n{x}`, `\\\\n`,
		"multi\nline\\t ñ 漢字 \\uFFFF", `\x0041\x`,
	}
	for _, input := range inputs {
		for _, raw := range []bool{false, true} {
			seen := make(map[int]bool)
			steps := 0
			for index := 0; index < len(input); {
				require.False(t, seen[index], "index %d visited twice in %q", index, input)
				seen[index] = true
				next, _, _ := Decode(input, index, raw)
				require.Greater(t, next, index, "no progress at %d in %q", index, input)
				index = next
				steps += 1
				require.LessOrEqual(t, steps, len(input))
			}
		}
	}
}

func TestIterator(t *testing.T) {
	iter := NewIterator(`A\nB`, false)
	var chars []rune
	var indices []int
	for iter.More() {
		index, char, _ := iter.Next()
		chars = append(chars, char)
		indices = append(indices, index)
	}
	assert.Equal(t, []rune{'A', '\n', 'B'}, chars)
	assert.Equal(t, []int{0, 1, 3}, indices)

	_, char, _ := iter.Next()
	assert.Equal(t, rune(-1), char)

	iter.Seek(1)
	char, escaped := iter.Peek()
	assert.Equal(t, '\n', char)
	assert.True(t, escaped)
	assert.Equal(t, 1, iter.Index())

	iter.Reset(`\n`, true)
	assert.Equal(t, []rune{'\\', 'n'}, DecodeAll(`\n`, true))
	_, char, _ = iter.Next()
	assert.Equal(t, '\\', char)
}
