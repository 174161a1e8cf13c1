// Package atlas describes texel fonts: bitmap fonts whose glyphs
// live in fixed size cells of a single packed texture.
//
// A [Font] is a plain comparable value holding the grid geometry,
// the default glyph box, the character assignment string and an
// optional override table. [Resolve]() turns it into a [Table]
// mapping characters to [GlyphMetrics], memoized through a bounded
// [Cache].
//
// Character assignment strings and override records are escape
// aware; see the esc package for the grammar.
package atlas
