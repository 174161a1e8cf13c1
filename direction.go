package texel

import "github.com/go-text/typesetting/di"

// Text directions supported by the [Renderer].
//
// Horizontal directions lay lines from top to bottom. [TopToBottom]
// lays columns from left to right.
type Direction int8
const (
	LeftToRight Direction = iota
	RightToLeft
	TopToBottom
)

// Reports whether the direction lays glyphs in columns.
func (self Direction) IsVertical() bool { return self == TopToBottom }

func (self Direction) String() string {
	switch self {
	case LeftToRight: return "LeftToRight"
	case RightToLeft: return "RightToLeft"
	case TopToBottom: return "TopToBottom"
	default:
		return "UnknownDirection"
	}
}

// Converts the direction to its go-text/typesetting equivalent,
// for hosts that mix texel text with shaped text.
func (self Direction) Typesetting() di.Direction {
	switch self {
	case LeftToRight: return di.DirectionLTR
	case RightToLeft: return di.DirectionRTL
	case TopToBottom: return di.DirectionTTB
	default:
		panic("unexpected direction")
	}
}

// Converts a go-text/typesetting direction. Vertical orientation
// flags are ignored. Bottom to top text is not supported and
// returns ok == false.
func DirectionFromTypesetting(direction di.Direction) (Direction, bool) {
	fromTopLeft := (direction.Progression() == di.FromTopLeft)
	if direction.IsVertical() { return TopToBottom, fromTopLeft }
	if fromTopLeft { return LeftToRight, true }
	return RightToLeft, true
}
