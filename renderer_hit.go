package texel

import "github.com/tinne26/texel/fract"

// Hit testing and caret mapping. None of these functions modify
// the layout, they only recompute it if it's dirty.

// Returns the index of the character closest to the given point
// and its slot rect. Points past the last glyph of a line map to
// the line's tail index, with the tail caret rect. Points outside
// all lines return (-1, fract.Rect{}).
func (self *Renderer) IndexAt(point fract.Point) (int, fract.Rect) {
	self.Update()
	for i := range self.lines {
		line := &self.lines[i]
		if !self.crossContains(line.Rect, point) { continue }
		for j := range line.Chars {
			chr := &line.Chars[j]
			if self.beforeMidpoint(chr, point) {
				return chr.Index, chr.SlotRect()
			}
		}
		return line.TailIndex, self.tailCaret(line)
	}
	return -1, fract.Rect{}
}

func (self *Renderer) crossContains(rect fract.Rect, point fract.Point) bool {
	if self.direction.IsVertical() {
		return point.X >= rect.Min.X && point.X < rect.Max.X
	}
	return point.Y >= rect.Min.Y && point.Y < rect.Max.Y
}

// Reports whether the point falls on the side of the glyph's
// midpoint where the caret goes before the glyph.
func (self *Renderer) beforeMidpoint(chr *Characteristics, point fract.Point) bool {
	center := chr.SlotRect().Center()
	switch self.direction {
	case LeftToRight: return point.X <= center.X
	case RightToLeft: return point.X >= center.X
	case TopToBottom: return point.Y >= center.Y
	default:
		panic(self.direction)
	}
}

// Returns the caret rect for the given index, clamped to the text
// length. The caret has the size of a scaled font cell and sits
// right before the first glyph at or after the index, or at the
// tail of the line if there's no such glyph. Returns false only
// when there are no lines.
func (self *Renderer) CaretRect(index int) (fract.Rect, bool) {
	self.Update()
	if len(self.lines) == 0 { return fract.Rect{}, false }
	index = min(max(index, 0), len(self.text))

	for i := range self.lines {
		line := &self.lines[i]
		for j := range line.Chars {
			chr := &line.Chars[j]
			if chr.Index >= index { return self.glyphCaret(chr), true }
		}
		if index <= line.TailIndex && !line.Wrapped {
			return self.tailCaret(line), true
		}
	}
	return self.tailCaret(&self.lines[len(self.lines) - 1]), true
}

// Returns the slot rect of the glyph laid out for the character
// at the given index, if any.
func (self *Renderer) CharRect(index int) (fract.Rect, bool) {
	self.Update()
	for i := range self.lines {
		line := &self.lines[i]
		if index > line.TailIndex { continue }
		for j := range line.Chars {
			if line.Chars[j].Index == index {
				return line.Chars[j].SlotRect(), true
			}
		}
		if !line.Wrapped { break }
	}
	return fract.Rect{}, false
}

// Snaps a candidate index to the nearest valid caret stop at or
// after it (forward) or at or before it (backward), within the
// candidate's line. Stops are glyph indices and line tails. When
// moving backward, a candidate that falls before the first glyph
// of a line (e.g. inside a leading markup block) resolves to the
// tail of the previous line. The first glyph itself is a valid stop.
//
// Callers moving a caret pass the neighbouring index as the
// candidate, e.g. StopIndex(caret - 1, false).
func (self *Renderer) StopIndex(index int, forward bool) int {
	self.Update()
	index = min(max(index, 0), len(self.text))
	if len(self.lines) == 0 { return index }

	lineIndex := len(self.lines) - 1
	for i := range self.lines {
		if index <= self.lines[i].TailIndex {
			lineIndex = i
			break
		}
	}
	line := &self.lines[lineIndex]

	if forward {
		for j := range line.Chars {
			if line.Chars[j].Index >= index { return line.Chars[j].Index }
		}
		return line.TailIndex
	}

	if index >= line.TailIndex { return line.TailIndex }
	for j := len(line.Chars) - 1; j >= 0; j-- {
		if line.Chars[j].Index <= index { return line.Chars[j].Index }
	}
	if lineIndex == 0 { return line.HeadIndex }
	return self.lines[lineIndex - 1].TailIndex
}

func (self *Renderer) cellSize(scale fract.Unit) fract.Point {
	return fract.UnitsToPoint(scaled(self.font.CellWidth, scale), scaled(self.font.CellHeight, scale))
}

func (self *Renderer) glyphCaret(chr *Characteristics) fract.Rect {
	cell := self.cellSize(chr.Scale)
	slot := chr.SlotRect()
	switch self.direction {
	case LeftToRight:
		return fract.OriginSizeRect(slot.Min, cell)
	case RightToLeft:
		return fract.UnitsToRect(slot.Max.X - cell.X, slot.Min.Y, slot.Max.X, slot.Min.Y + cell.Y)
	case TopToBottom:
		return fract.UnitsToRect(slot.Min.X, slot.Max.Y - cell.Y, slot.Min.X + cell.X, slot.Max.Y)
	default:
		panic(self.direction)
	}
}

func (self *Renderer) tailCaret(line *LineInfo) fract.Rect {
	cell := self.cellSize(line.TailScale)
	tail := line.Tail
	switch self.direction {
	case LeftToRight:
		return fract.OriginSizeRect(tail, cell)
	case RightToLeft:
		return fract.UnitsToRect(tail.X - cell.X, tail.Y, tail.X, tail.Y + cell.Y)
	case TopToBottom:
		return fract.UnitsToRect(tail.X, tail.Y - cell.Y, tail.X + cell.X, tail.Y)
	default:
		panic(self.direction)
	}
}
