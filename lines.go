package texel

import "image"
import "image/color"

import "github.com/tinne26/texel/atlas"
import "github.com/tinne26/texel/fract"

// Layout record for a single visible character.
type Characteristics struct {
	Index int  // byte index of the character in the text
	Char  rune // logical character, after escape decoding
	Glyph atlas.GlyphMetrics
	Scale fract.Unit

	// Bottom-left corner of the glyph slot and its size. Slots
	// span the scaled glyph width and the scaled cell height
	// for horizontal text, or the scaled cell width and glyph
	// height for vertical text.
	Position fract.Point
	Slot fract.Point

	// Drawn glyph box, relative to the slot position.
	BoxOrigin fract.Point
	BoxSize fract.Point

	// Slot padded with the glyph spacing and the line gap.
	Padded fract.Rect

	// Markup offset. Only affects drawing and bounds, not hit
	// testing.
	Offset fract.Point

	Texel image.Rectangle // texture region, top-left origin
	Foreground color.NRGBA
	Background color.NRGBA
}

// Returns the glyph slot rect.
func (self *Characteristics) SlotRect() fract.Rect {
	return fract.OriginSizeRect(self.Position, self.Slot)
}

// Returns the rect where the glyph is drawn.
func (self *Characteristics) BoxRect() fract.Rect {
	origin := self.Position.AddPoint(self.BoxOrigin).AddPoint(self.Offset)
	return fract.OriginSizeRect(origin, self.BoxSize)
}

// A laid out line. For vertical text, a column.
type LineInfo struct {
	Chars []Characteristics

	// Line bounds, padded with the glyph spacing and line gap.
	Rect fract.Rect

	// Pen position right after the last glyph, and the scale in
	// effect when the line was closed. Used to place the caret at
	// the end of the line.
	Tail fract.Point
	TailScale fract.Unit

	// Byte index where the line starts, and the index where it
	// ends: the line break, the first character of the next line
	// for wrapped lines, or the text length for the last line.
	HeadIndex int
	TailIndex int

	// Whether the line was closed by wrapping instead of by an
	// explicit line break or the end of the text.
	Wrapped bool

	charStart int
	charEnd int
}
