package markup

import "image/color"

import "github.com/tinne26/texel/fract"

// Style state mutated while laying out text. Each layout pass
// starts from the renderer defaults.
type Style struct {
	Size fract.Unit
	Foreground color.NRGBA
	Background color.NRGBA
	Offset fract.Point
}

// Optional per character style override. Functions are expected
// to be pure: they may be called any number of times per layout
// pass, and must return the style to use for the given character.
type StyleFunc func(text string, index int, char rune, style Style) Style

// Swaps the foreground and background colors.
func (self *Style) Invert() {
	self.Foreground, self.Background = self.Background, self.Foreground
}
