// Package markup implements the inline rich text commands that
// can be embedded in texel text.
//
// A block starts with '{' and ends with '}'. Inside, ';' separates
// commands and ',' separates a command from its parameters:
//
//	{f,255,0,0}red{f,white;s,+4}big white{i}inverted
//
// The command letter can also trail its parameters, as in
// "{255,0,0f}". Supported commands:
//   - s: font size. Absolute ("12"), relative ("+2", "-2") or
//     a percentage ("150%"). Results are rounded to whole pixels
//     and never go below one pixel.
//   - f, b: foreground and background colors. See [ParseColor]().
//   - o: pixel offset, as two integers.
//   - i: swaps the foreground and background colors.
//
// Unknown commands are ignored and malformed parameters leave the
// style unchanged. A '{' only opens a block when an unescaped '}'
// follows it before any other unescaped '{'; otherwise it's
// regular text.
package markup
