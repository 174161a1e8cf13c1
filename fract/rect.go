package fract

import "image"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle.
//
// Texel layouts use a y-up coordinate system, so Min is the
// bottom-left corner and Max the top-right one.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four units.
func UnitsToRect(minX, minY, maxX, maxY Unit) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Creates a rect from an origin point and a size.
func OriginSizeRect(origin, size Point) Rect {
	return Rect{ Min: origin, Max: origin.AddPoint(size) }
}

// Creates a rect from a set of four integers.
func IntsToRect(minX, minY, maxX, maxY int) Rect {
	return Rect{
		Min: Point{ X: FromInt(minX), Y: FromInt(minY) },
		Max: Point{ X: FromInt(maxX), Y: FromInt(maxY) },
	}
}

// Converts the rect coordinates to ints and returns them as an
// [image.Rectangle]. The returned rectangle is guaranteed to
// contain the original rect.
func (self Rect) ImageRect() image.Rectangle {
	minX, minY, maxX, maxY := self.ToInts()
	return image.Rect(minX, minY, maxX, maxY)
}

// Returns the rect coordinates as a set of four ints.
// The returned ints are guaranteed to contain the original
// rect.
func (self Rect) ToInts() (minX, minY, maxX, maxY int) {
	return self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(), self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil()
}

// Returns the rect coordinates as a set of four float64s.
func (self Rect) ToFloat64s() (minX, minY, maxX, maxY float64) {
	return self.Min.X.ToFloat64(), self.Min.Y.ToFloat64(), self.Max.X.ToFloat64(), self.Max.Y.ToFloat64()
}

// Returns the rect coordinates as a set of four float32s.
func (self Rect) ToFloat32s() (minX, minY, maxX, maxY float32) {
	return self.Min.X.ToFloat32(), self.Min.Y.ToFloat32(), self.Max.X.ToFloat32(), self.Max.Y.ToFloat32()
}

// Returns the width of the rect.
func (self Rect) Width() Unit {
	return self.Max.X - self.Min.X
}

// Returns the height of the rect.
func (self Rect) Height() Unit {
	return self.Max.Y - self.Min.Y
}

// Returns the center point of the rect.
func (self Rect) Center() Point {
	return Point{
		X: self.Min.X + (self.Width() >> 1),
		Y: self.Min.Y + (self.Height() >> 1),
	}
}

// Returns whether the rect is empty or not.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns the result of translating the rect by the given values.
func (self Rect) AddUnits(x, y Unit) Rect {
	self.Min.X += x
	self.Min.Y += y
	self.Max.X += x
	self.Max.Y += y
	return self
}

// Returns the result of translating the rect by the given value.
func (self Rect) AddPoint(pt Point) Rect {
	return self.AddUnits(pt.X, pt.Y)
}

// Returns the smallest rect containing both rects. Empty rects
// are ignored, as in [image.Rectangle.Union]().
func (self Rect) Union(other Rect) Rect {
	if other.Empty() { return self }
	if self.Empty() { return other }
	if other.Min.X < self.Min.X { self.Min.X = other.Min.X }
	if other.Min.Y < self.Min.Y { self.Min.Y = other.Min.Y }
	if other.Max.X > self.Max.X { self.Max.X = other.Max.X }
	if other.Max.Y > self.Max.Y { self.Max.Y = other.Max.Y }
	return self
}

// Returns whether the rect contains the given point or not.
//
// Remember that point == Rect.Min is included, but point == Rect.Max
// is not.
func (self Rect) Contains(point Point) bool {
	return point.In(self)
}

// Returns a textual representation of the rect (e.g.: "(0, 0)-(1.5, 8.5)").
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
