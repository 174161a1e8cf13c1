package texel

import "log/slog"

import "github.com/tinne26/texel/esc"
import "github.com/tinne26/texel/fract"
import "github.com/tinne26/texel/markup"
import "github.com/tinne26/texel/internal/tracing"

// Per pass layout state. Lines are built in line-local coordinates,
// with the pen advancing from zero along the major axis, and moved
// to their final cross-axis position once they are closed.
type lineBuilder struct {
	renderer *Renderer
	advance fract.Unit // major axis distance covered by the line
	extent fract.Unit  // max cross axis extent of the line
	cursor fract.Unit  // cross axis position of the next line
	glyphs int
	head int
	charStart int
}

func (self *Renderer) resetArena() {
	if self.hasFlag(flagNoReuse) {
		self.lines, self.chars = nil, nil
	} else {
		self.lines, self.chars = self.lines[ : 0], self.chars[ : 0]
	}
	self.bounds = fract.Rect{}
}

func (self *Renderer) layout() {
	self.passes += 1
	self.resetArena()
	self.refreshTable()
	if self.text == "" || self.size <= 0 || !self.table.Valid() {
		Logger().Debug("texel: empty layout",
			"text_len", len(self.text), "size", self.size.ToFloat64(), "font_valid", self.table.Valid())
		return
	}

	raw  := self.hasFlag(flagRawText)
	rich := self.hasFlag(flagRichText)
	if rich { self.processor.Reset(self.text, raw) }
	style := markup.Style{ Size: self.size, Foreground: self.fgColor, Background: self.bgColor }

	builder := lineBuilder{ renderer: self }
	builder.startLine(0, self.scaleFor(style.Size))
	for index := 0; index < len(self.text); {
		next, char, escaped := esc.Decode(self.text, index, raw)
		if rich && self.processor.Feed(index, next, char, escaped, &style) {
			index = next
			continue
		}
		if !escaped && char == '\n' {
			builder.closeLine(index, self.scaleFor(style.Size), false)
			builder.startLine(next, self.scaleFor(style.Size))
			index = next
			continue
		}
		if !escaped && esc.IsControl(char) {
			index = next
			continue
		}

		charStyle := style
		if self.styleFunc != nil {
			charStyle = self.styleFunc(self.text, index, char, style)
		}
		if charStyle.Size > 0 { builder.place(index, char, charStyle) }
		index = next
	}
	builder.closeLine(len(self.text), self.scaleFor(style.Size), false)

	self.alignLines(builder.cursor)
	for i := range self.lines {
		line := &self.lines[i]
		line.Chars = self.chars[line.charStart : line.charEnd : line.charEnd]
	}
	if tracing.Enabled(slog.LevelDebug) {
		Logger().Debug("texel: layout pass",
			"lines", len(self.lines), "chars", len(self.chars), "direction", self.direction.String())
	}
}

// Returns the factor that converts font texels to layout units
// for the given text size.
func (self *Renderer) scaleFor(size fract.Unit) fract.Unit {
	cell := self.font.CellHeight
	if self.direction.IsVertical() { cell = self.font.CellWidth }
	return size.Div(fract.FromInt(cell))
}

// Returns the area limit along the major axis, or zero if
// unbounded.
func (self *Renderer) majorLimit() fract.Unit {
	if self.direction.IsVertical() { return max(self.height, 0) }
	return max(self.width, 0)
}

func scaled(texels int, scale fract.Unit) fract.Unit {
	return fract.FromInt(texels).Mul(scale)
}

func (self *lineBuilder) startLine(head int, scale fract.Unit) {
	font := &self.renderer.font
	self.advance = 0
	self.glyphs = 0
	self.head = head
	self.charStart = len(self.renderer.chars)
	if self.renderer.direction.IsVertical() {
		self.extent = scaled(font.CellWidth, scale)
	} else {
		self.extent = scaled(font.CellHeight, scale)
	}
}

func (self *lineBuilder) place(index int, char rune, style markup.Style) {
	r := self.renderer
	scale := r.scaleFor(style.Size)
	glyph := r.table.Glyph(char)
	var slot fract.Point
	if r.direction.IsVertical() {
		slot = fract.UnitsToPoint(scaled(r.font.CellWidth, scale), scaled(int(glyph.Height), scale))
	} else {
		slot = fract.UnitsToPoint(scaled(int(glyph.Width), scale), scaled(r.font.CellHeight, scale))
	}
	major := slot.X
	if r.direction.IsVertical() { major = slot.Y }

	var gap fract.Unit
	if self.glyphs > 0 { gap = r.spacing }
	limit := r.majorLimit()
	if limit > 0 && self.advance + gap + major > limit {
		switch {
		case r.hasFlag(flagWrap):
			if self.glyphs > 0 {
				self.closeLine(index, scale, true)
				self.startLine(index, scale)
				gap = 0
			}
		case !r.hasFlag(flagOverflow):
			return
		}
	}

	chr := Characteristics{
		Index: index,
		Char: char,
		Glyph: glyph,
		Scale: scale,
		Slot: slot,
		BoxSize: fract.UnitsToPoint(scaled(int(glyph.Width), scale), scaled(int(glyph.Height), scale)),
		Offset: style.Offset,
		Texel: glyph.TexelRect(r.font),
		Foreground: style.Foreground,
		Background: style.Background,
	}
	start := self.advance + gap
	switch r.direction {
	case LeftToRight:
		chr.Position.X = start
		chr.BoxOrigin.Y = scaled(r.font.CellHeight - int(glyph.OriginY) - int(glyph.Height), scale)
		chr.Padded = fract.UnitsToRect(start, -r.lineGap, start + slot.X + r.spacing, slot.Y)
	case RightToLeft:
		chr.Position.X = -(start + slot.X)
		chr.BoxOrigin.Y = scaled(r.font.CellHeight - int(glyph.OriginY) - int(glyph.Height), scale)
		chr.Padded = fract.UnitsToRect(-(start + slot.X + r.spacing), -r.lineGap, -start, slot.Y)
	case TopToBottom:
		chr.Position.Y = -(start + slot.Y)
		chr.BoxOrigin.X = scaled(int(glyph.OriginX), scale)
		chr.Padded = fract.UnitsToRect(0, -(start + slot.Y + r.spacing), slot.X + r.lineGap, -start)
	}

	r.chars = append(r.chars, chr)
	self.advance = start + major
	self.glyphs += 1
	if r.direction.IsVertical() {
		self.extent = max(self.extent, slot.X)
	} else {
		self.extent = max(self.extent, slot.Y)
	}
}

// Closes the current line and shifts its glyphs to their final
// cross axis position, now that the line extent is known.
func (self *lineBuilder) closeLine(tail int, scale fract.Unit, wrapped bool) {
	r := self.renderer
	line := LineInfo{
		TailScale: scale,
		HeadIndex: self.head,
		TailIndex: tail,
		Wrapped: wrapped,
		charStart: self.charStart,
		charEnd: len(r.chars),
	}

	var pad fract.Unit
	if self.glyphs > 0 { pad = r.spacing }
	var shift fract.Point
	switch r.direction {
	case LeftToRight:
		bottom := self.cursor - self.extent
		shift.Y = bottom
		line.Tail = fract.UnitsToPoint(self.advance, bottom)
		line.Rect = fract.UnitsToRect(0, bottom - r.lineGap, self.advance + pad, self.cursor)
		self.cursor = bottom - r.lineGap
	case RightToLeft:
		bottom := self.cursor - self.extent
		shift.Y = bottom
		line.Tail = fract.UnitsToPoint(-self.advance, bottom)
		line.Rect = fract.UnitsToRect(-(self.advance + pad), bottom - r.lineGap, 0, self.cursor)
		self.cursor = bottom - r.lineGap
	case TopToBottom:
		left := self.cursor
		shift.X = left
		line.Tail = fract.UnitsToPoint(left, -self.advance)
		line.Rect = fract.UnitsToRect(left, -(self.advance + pad), left + self.extent + r.lineGap, 0)
		self.cursor = left + self.extent + r.lineGap
	}

	for i := line.charStart; i < line.charEnd; i++ {
		chr := &r.chars[i]
		chr.Position = chr.Position.AddPoint(shift)
		chr.Padded = chr.Padded.AddPoint(shift)
	}
	r.lines = append(r.lines, line)
}
