package atlas

import "image"

// A texel font description. Fonts are comparable values, so they
// can be used directly as map keys; two fonts with the same content
// always resolve to the same metrics.
//
// The texture itself is not part of the font, only its size in
// texels. Hosts keep the image and hand it to the drawing helpers.
type Font struct {
	TextureWidth  int
	TextureHeight int
	CellWidth  int
	CellHeight int

	// Default glyph box, relative to the top-left corner of
	// each cell.
	OriginX int
	OriginY int
	Width   int
	Height  int

	// Characters in assignment order. Cells are assigned row
	// after row, left to right.
	Characters string

	// Override table, one record per line:
	//   target,[reference],[originX],[originY],[width],[height]
	Metrics string

	// Region of the texture sampled for glyph backgrounds.
	Background image.Rectangle
}

// Reports whether the font can produce any metrics at all.
func (self Font) Valid() bool {
	if self.TextureWidth <= 0 || self.TextureHeight <= 0 { return false }
	if self.CellWidth <= 0 || self.CellHeight <= 0 { return false }
	return len(self.Characters) > 0
}

// Returns the number of cells per row and the number of rows
// of the font grid, both capped at 256.
func (self Font) Grid() (columns, rows int) {
	if self.CellWidth <= 0 || self.CellHeight <= 0 { return 0, 0 }
	columns = min(256, self.TextureWidth/self.CellWidth)
	rows    = min(256, self.TextureHeight/self.CellHeight)
	return max(columns, 0), max(rows, 0)
}

// Returns the total number of cells available for assignment.
func (self Font) Capacity() int {
	columns, rows := self.Grid()
	return columns*rows
}
