package atlas

import "github.com/tinne26/texel/esc"
import "github.com/tinne26/texel/internal/tracing"

// Glyph metrics resolved for a specific [Font]. Tables are never
// modified after being computed, so they can be shared freely.
type Table struct {
	glyphs map[rune]GlyphMetrics
	tofuChar rune
	tofu GlyphMetrics
	hasTofu bool
}

var emptyTable = &Table{}

// Returns the metrics for the given character, if assigned.
func (self *Table) Lookup(char rune) (GlyphMetrics, bool) {
	metrics, found := self.glyphs[char]
	return metrics, found
}

// Returns the metrics for the given character, or the tofu
// glyph metrics if the character is not assigned.
func (self *Table) Glyph(char rune) GlyphMetrics {
	metrics, found := self.glyphs[char]
	if !found { return self.tofu }
	return metrics
}

// Returns the fallback character and its metrics.
func (self *Table) Tofu() (rune, GlyphMetrics) {
	return self.tofuChar, self.tofu
}

// Returns the number of characters with metrics.
func (self *Table) Len() int { return len(self.glyphs) }

// Reports whether the table can be used for layout. Tables
// computed from invalid fonts, or from fonts where nothing
// could be assigned, are not valid.
func (self *Table) Valid() bool { return self.hasTofu }

// Calls the given function for each assigned character, in
// no particular order.
func (self *Table) Each(fn func(char rune, metrics GlyphMetrics)) {
	for char, metrics := range self.glyphs { fn(char, metrics) }
}

// Computes the glyph metrics for the given font without going
// through any cache. Invalid fonts return an empty table.
func Compute(font Font) *Table {
	if !font.Valid() {
		tracing.Logger().Debug("atlas: invalid font",
			"texture_width", font.TextureWidth, "texture_height", font.TextureHeight,
			"cell_width", font.CellWidth, "cell_height", font.CellHeight,
			"characters", len(font.Characters))
		return emptyTable
	}

	columns, _ := font.Grid()
	capacity := font.Capacity()
	if capacity == 0 { return emptyTable }

	table := &Table{ glyphs: make(map[rune]GlyphMetrics, min(capacity, len(font.Characters))) }
	count := 0
	for index := 0; index < len(font.Characters) && count < capacity; {
		var char rune
		var escaped bool
		index, char, escaped = esc.Decode(font.Characters, index, false)
		if !escaped && esc.IsControl(char) { continue }
		if _, found := table.glyphs[char]; found { continue }

		metrics := defaultMetrics(font, count % columns, count / columns)
		table.glyphs[char] = metrics
		if !table.hasTofu || char == 0 {
			table.tofuChar, table.tofu, table.hasTofu = char, metrics, true
		}
		count += 1
	}

	if font.Metrics != "" { applyOverrides(table, font.Metrics) }
	return table
}
