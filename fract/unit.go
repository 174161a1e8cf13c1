package fract

// Fixed point type used for all layout coordinates and sizes.
//
// 26 bits represent the integer part of the value, while the remaining
// 6 bits represent the decimal part. A Unit of 64 is one pixel, 96 is
// 1.5 pixels, and so on.
//
// The internal representation is compatible with [fixed.Int26_6].
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
type Unit int32

// Returns whether the Unit is a whole number or if it
// has a fractional part.
func (self Unit) IsWhole() bool {
	return self & 0x3F == 0
}

// Multiplies two units, rounding half up.
func (self Unit) Mul(multiplier Unit) Unit {
	mx64 := int64(self)*int64(multiplier)
	return Unit((mx64 + 32) >> 6)
}

// Multiplies the unit by an integer factor. Unlike [Unit.Mul](),
// no rounding is involved.
func (self Unit) MulInt(factor int) Unit {
	return Unit(int64(self)*int64(factor))
}

// Divides two units, truncating towards zero. Division by zero
// returns zero instead of panicking, as zero-sized cells are a
// common sight on invalid fonts.
func (self Unit) Div(divisor Unit) Unit {
	if divisor == 0 { return 0 }
	return Unit((int64(self) << 6)/int64(divisor))
}

// Returns the absolute value of the unit.
func (self Unit) Abs() Unit {
	if self >= 0 { return self }
	return -self
}

// Returns half the unit, rounding towards negative infinity.
func (self Unit) Half() Unit {
	return self >> 1
}

func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

func (self Unit) ToFloat32() float32 {
	return float32(self)/64.0
}

// Defaults to [Unit.ToIntHalfUp]().
func (self Unit) ToInt() int {
	return self.ToIntHalfUp()
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return (int(self) +  0) >> 6
}

func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

func (self Unit) ToIntHalfUp() int {
	return (int(self) + 32) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}

func (self Unit) HalfUp() Unit {
	return (self + 32).Floor()
}

// Returns the minimum of the two units.
func (self Unit) Min(other Unit) Unit {
	if self <= other { return self }
	return other
}

// Returns the maximum of the two units.
func (self Unit) Max(other Unit) Unit {
	if self >= other { return self }
	return other
}
