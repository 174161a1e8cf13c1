package texel

// Aligns tell a [Renderer] where to place text within its area.
//
// Aligns have a vertical and a horizontal component, combined with
// a bitwise OR:
//   renderer.SetAlign(texel.Bottom | texel.Right)
// Use [Align.Vert]() and [Align.Horz]() to retrieve the individual
// components.
//
// For horizontal text, the vertical component positions the whole
// text block and the horizontal component positions each line. For
// [TopToBottom] text it's the other way around: the horizontal
// component positions the block of columns and the vertical
// component positions each column.
type Align uint8

const (
	// Horizontal aligns
	Left       Align = 0b0010_0000
	HorzCenter Align = 0b0100_0000
	Right      Align = 0b1000_0000

	// Vertical aligns
	Top        Align = 0b0000_0001
	VertCenter Align = 0b0000_0010
	Bottom     Align = 0b0000_0100

	// Full aligns
	Center Align = HorzCenter | VertCenter

	alignVertBits Align = 0b0000_1111 // bit mask
	alignHorzBits Align = 0b1111_0000 // bit mask
)

// Returns the vertical component of the align.
func (self Align) Vert() Align { return alignVertBits & self }

// Returns the horizontal component of the align.
func (self Align) Horz() Align { return alignHorzBits & self }

// Returns the result of overriding the current align with the
// non-empty components of the new align.
func (self Align) Adjusted(align Align) Align {
	horz, vert := align.Horz(), align.Vert()
	if horz == 0 { horz = self.Horz() }
	if vert == 0 { vert = self.Vert() }
	return horz | vert
}

// Reports whether both components hold one of the known values.
func (self Align) Valid() bool {
	switch self.Vert() {
	case Top, VertCenter, Bottom:
	default:
		return false
	}
	switch self.Horz() {
	case Left, HorzCenter, Right:
		return true
	default:
		return false
	}
}

// Returns a textual representation of the align. Some examples:
//   (Top | Right).String() == "(Top | Right)"
//   Center.String() == "(VertCenter | HorzCenter)"
func (self Align) String() string {
	if self == 0 { return "(ZeroAlign)" }
	if self.Vert() == 0 { return "(" + self.horzString() + ")" }
	if self.Horz() == 0 { return "(" + self.vertString() + ")" }
	return "(" + self.vertString() + " | " + self.horzString() + ")"
}

func (self Align) vertString() string {
	switch self.Vert() {
	case Top: return "Top"
	case VertCenter: return "VertCenter"
	case Bottom: return "Bottom"
	default:
		return "VertUnknown"
	}
}

func (self Align) horzString() string {
	switch self.Horz() {
	case Left: return "Left"
	case HorzCenter: return "HorzCenter"
	case Right: return "Right"
	default:
		return "HorzUnknown"
	}
}
