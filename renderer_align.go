package texel

import "github.com/tinne26/texel/fract"

// Only private methods related to alignment operations. Missing
// align components behave as Top and Left.

// Moves the lines from their line-local positions to the final
// positions within the area, and accumulates the bounds. The
// cursor is the cross axis position where the next line would
// have started.
func (self *Renderer) alignLines(cursor fract.Unit) {
	if self.direction.IsVertical() {
		totalWidth := cursor - self.lineGap
		dx := self.blockOffsetX(totalWidth)
		for i := range self.lines {
			line := &self.lines[i]
			length := -line.Tail.Y
			self.shiftLine(line, fract.UnitsToPoint(dx, self.columnOffsetY(length)))
		}
	} else {
		totalHeight := -cursor - self.lineGap
		dy := self.blockOffsetY(totalHeight)
		for i := range self.lines {
			line := &self.lines[i]
			width := line.Tail.X
			if width < 0 { width = -width }
			self.shiftLine(line, fract.UnitsToPoint(self.lineOffsetX(width), dy))
		}
	}
}

func (self *Renderer) shiftLine(line *LineInfo, shift fract.Point) {
	line.Rect = line.Rect.AddPoint(shift)
	line.Tail = line.Tail.AddPoint(shift)
	for i := line.charStart; i < line.charEnd; i++ {
		chr := &self.chars[i]
		chr.Position = chr.Position.AddPoint(shift)
		chr.Padded = chr.Padded.AddPoint(shift)
		self.bounds = self.bounds.Union(chr.SlotRect().AddPoint(chr.Offset))
	}
}

// Horizontal text blocks span [-height, 0] before alignment.
func (self *Renderer) blockOffsetY(height fract.Unit) fract.Unit {
	area := max(self.height, 0)
	switch self.align.Vert() {
	case Top, 0: return area
	case VertCenter: return (area + height).Half()
	case Bottom: return height
	default:
		panic(self.align.Vert())
	}
}

// Left to right lines span [0, width] before alignment, right
// to left lines span [-width, 0].
func (self *Renderer) lineOffsetX(width fract.Unit) fract.Unit {
	area := max(self.width, 0)
	if self.direction == RightToLeft {
		switch self.align.Horz() {
		case Left, 0: return width
		case HorzCenter: return (area + width).Half()
		case Right: return area
		default:
			panic(self.align.Horz())
		}
	}

	switch self.align.Horz() {
	case Left, 0: return 0
	case HorzCenter: return (area - width).Half()
	case Right: return area - width
	default:
		panic(self.align.Horz())
	}
}

// Vertical text blocks span [0, width] before alignment.
func (self *Renderer) blockOffsetX(width fract.Unit) fract.Unit {
	area := max(self.width, 0)
	switch self.align.Horz() {
	case Left, 0: return 0
	case HorzCenter: return (area - width).Half()
	case Right: return area - width
	default:
		panic(self.align.Horz())
	}
}

// Columns span [-length, 0] before alignment.
func (self *Renderer) columnOffsetY(length fract.Unit) fract.Unit {
	area := max(self.height, 0)
	switch self.align.Vert() {
	case Top, 0: return area
	case VertCenter: return (area + length).Half()
	case Bottom: return length
	default:
		panic(self.align.Vert())
	}
}
