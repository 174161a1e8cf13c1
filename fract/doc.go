// Layout math in texel is done with fixed point arithmetic instead of
// floating point arithmetic. This makes layout passes deterministic
// (the same text, font and style always produce bit-identical results)
// and keeps the rounding behavior explicit.
//
// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value and provides the small set of operations needed
// by the layout engine. Additionally, the subpackage also defines
// the [Point] and [Rect] helper types.
//
// The internal representation is compatible with
// [golang.org/x/image/math/fixed], and conversion helpers are
// provided in both directions.
package fract
