package fract

import "golang.org/x/image/math/fixed"

// Interoperability with [golang.org/x/image/math/fixed]. The bit
// layouts are identical, so conversions are free.

// Converts a [fixed.Int26_6] to a [Unit].
func FromFixed(value fixed.Int26_6) Unit { return Unit(value) }

// Converts the unit to a [fixed.Int26_6].
func (self Unit) Fixed() fixed.Int26_6 { return fixed.Int26_6(self) }

// Converts a [fixed.Point26_6] to a [Point].
func FromFixedPoint(point fixed.Point26_6) Point {
	return Point{ X: Unit(point.X), Y: Unit(point.Y) }
}

// Converts the point to a [fixed.Point26_6].
func (self Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{ X: fixed.Int26_6(self.X), Y: fixed.Int26_6(self.Y) }
}

// Converts the rect to a [fixed.Rectangle26_6].
func (self Rect) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{ Min: self.Min.Fixed(), Max: self.Max.Fixed() }
}
