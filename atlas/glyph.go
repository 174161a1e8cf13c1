package atlas

import "image"

// Location and box of a glyph within the font grid. Origins are
// offsets from the cell's top-left corner, in texels.
type GlyphMetrics struct {
	Column  uint8
	Row     uint8
	OriginX int8
	OriginY int8
	Width   uint8
	Height  uint8
}

// Returns the texture region covered by the glyph, with the
// texture origin at the top-left corner.
func (self GlyphMetrics) TexelRect(font Font) image.Rectangle {
	x := int(self.Column)*font.CellWidth  + int(self.OriginX)
	y := int(self.Row)*font.CellHeight + int(self.OriginY)
	return image.Rect(x, y, x + int(self.Width), y + int(self.Height))
}

func defaultMetrics(font Font, column, row int) GlyphMetrics {
	return GlyphMetrics{
		Column: uint8(column),
		Row: uint8(row),
		OriginX: clampInt8(font.OriginX),
		OriginY: clampInt8(font.OriginY),
		Width: clampUint8(font.Width),
		Height: clampUint8(font.Height),
	}
}

func clampInt8(value int) int8 {
	if value < -128 { return -128 }
	if value >  127 { return  127 }
	return int8(value)
}

func clampUint8(value int) uint8 {
	if value <   0 { return 0 }
	if value > 255 { return 255 }
	return uint8(value)
}
