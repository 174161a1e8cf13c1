package markup

import "image/color"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/tinne26/texel/esc"
import "github.com/tinne26/texel/fract"

type cookedChar struct {
	Char  rune
	Style Style
}

// Runs the processor over the whole text and returns the visible
// characters with the style active for each of them.
func cook(text string, raw bool, style Style) []cookedChar {
	var processor Processor
	processor.Reset(text, raw)
	var out []cookedChar
	for index := 0; index < len(text); {
		next, char, escaped := esc.Decode(text, index, raw)
		if !processor.Feed(index, next, char, escaped, &style) {
			out = append(out, cookedChar{ char, style })
		}
		index = next
	}
	return out
}

func visible(chars []cookedChar) string {
	runes := make([]rune, len(chars))
	for i, char := range chars { runes[i] = char.Char }
	return string(runes)
}

var defaultStyle = Style{
	Size: fract.FromInt(8),
	Foreground: color.NRGBA{ 255, 255, 255, 255 },
}

func TestColorCommands(t *testing.T) {
	chars := cook("{f,255,0,0}A{f,0,255,0}B", false, defaultStyle)
	require.Equal(t, "AB", visible(chars))
	assert.Equal(t, color.NRGBA{ 255, 0, 0, 255 }, chars[0].Style.Foreground)
	assert.Equal(t, color.NRGBA{ 0, 255, 0, 255 }, chars[1].Style.Foreground)

	chars = cook("{b,#10203040;f,blue}x{i}y", false, defaultStyle)
	require.Equal(t, "xy", visible(chars))
	assert.Equal(t, color.NRGBA{ 0x10, 0x20, 0x30, 0x40 }, chars[0].Style.Background)
	assert.Equal(t, color.NRGBA{ 0, 0, 255, 255 }, chars[0].Style.Foreground)
	assert.Equal(t, chars[0].Style.Background, chars[1].Style.Foreground)
	assert.Equal(t, chars[0].Style.Foreground, chars[1].Style.Background)

	chars = cook("{255,0,0f}z", false, defaultStyle)
	require.Equal(t, "z", visible(chars))
	assert.Equal(t, color.NRGBA{ 255, 0, 0, 255 }, chars[0].Style.Foreground)

	// trailing letter with single digit parameters
	chars = cook("{0,0,0f}a{1,2,3,4b}b{9f}c", false, defaultStyle)
	require.Equal(t, "abc", visible(chars))
	assert.Equal(t, color.NRGBA{ 0, 0, 0, 255 }, chars[0].Style.Foreground)
	assert.Equal(t, color.NRGBA{ 1, 2, 3, 4 }, chars[1].Style.Background)
	assert.Equal(t, Palette[9], chars[2].Style.Foreground)
}

func TestSizeAndOffsetCommands(t *testing.T) {
	chars := cook("a{s,+4}b{s,50%}c{s,-20}d{s,7}e{s,x}f{o,2,-3}g", false, defaultStyle)
	require.Equal(t, "abcdefg", visible(chars))
	sizes := []int{ 8, 12, 6, 1, 7, 7, 7 }
	for i, size := range sizes {
		assert.Equal(t, fract.FromInt(size), chars[i].Style.Size, "size of %q", chars[i].Char)
	}
	assert.Equal(t, fract.Point{}, chars[5].Style.Offset)
	assert.Equal(t, fract.IntsToPoint(2, -3), chars[6].Style.Offset)

	chars = cook("{5,5o}a{12,34o}b{4s}c", false, defaultStyle)
	require.Equal(t, "abc", visible(chars))
	assert.Equal(t, fract.IntsToPoint(5, 5), chars[0].Style.Offset)
	assert.Equal(t, fract.IntsToPoint(12, 34), chars[1].Style.Offset)
	assert.Equal(t, fract.FromInt(4), chars[2].Style.Size)

	// percentages round to whole pixels
	chars = cook("{s,33%}a", false, defaultStyle)
	assert.Equal(t, fract.FromInt(3), chars[0].Style.Size)
}

func TestMalformedMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{ "{f,red", "{f,red" },
		{ "a{b{f,red}c", "a{bc" },
		{ "{q,1}x", "x" },
		{ "{}x", "x" },
		{ `\x007Bf,red}x`, "{f,red}x" },
		{ `{f,red\x007D}x`, "{f,red}x" },
		{ `\{f,red}x`, `\x` },
		{ `{f,red\}x`, "x" },
		{ "}x{", "}x{" },
	}
	for _, test := range tests {
		chars := cook(test.in, false, defaultStyle)
		assert.Equal(t, test.want, visible(chars), "input %q", test.in)
	}

	chars := cook("{f,1,2}{o,1}{s}{i,2}x", false, defaultStyle)
	require.Len(t, chars, 1)
	assert.Equal(t, defaultStyle, chars[0].Style, "bad parameters must not modify the style")
}

func TestRawMarkup(t *testing.T) {
	chars := cook(`{f,red}\n`, true, defaultStyle)
	require.Equal(t, `\n`, visible(chars))
	assert.Equal(t, color.NRGBA{ 255, 0, 0, 255 }, chars[0].Style.Foreground)
}

func TestProcessorReset(t *testing.T) {
	var processor Processor
	processor.Reset("{f,red}", false)
	style := defaultStyle
	assert.True(t, processor.Feed(0, 1, '{', false, &style))
	assert.True(t, processor.InBlock())
	processor.Reset("{", false)
	assert.False(t, processor.InBlock())
	assert.False(t, processor.Feed(0, 1, '{', false, &style))
}
