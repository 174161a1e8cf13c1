package texel

import "image/color"

import "github.com/tinne26/texel/atlas"
import "github.com/tinne26/texel/fract"
import "github.com/tinne26/texel/markup"

// Renderer state flags.
const (
	flagDirty         uint16 = 0b0000_0000_0001
	flagGeometryDirty uint16 = 0b0000_0000_0010
	flagTableStale    uint16 = 0b0000_0000_0100
	flagWrap          uint16 = 0b0000_0000_1000
	flagOverflow      uint16 = 0b0000_0001_0000
	flagRichText      uint16 = 0b0000_0010_0000
	flagRawText       uint16 = 0b0000_0100_0000
	flagPixelSnap     uint16 = 0b0000_1000_0000
	flagNoReuse       uint16 = 0b0001_0000_0000
)

// The [Renderer] is the heart of texel: it holds one text layout
// and everything needed to compute it.
//
// Renderers have three groups of functions:
//  - Setters for the text, font and style properties. Any change
//    marks the layout as dirty.
//  - Layout outputs: [Renderer.Bounds](), [Renderer.Lines]() and
//    [Renderer.Geometry]().
//  - Hit testing: [Renderer.IndexAt](), [Renderer.CaretRect](),
//    [Renderer.CharRect]() and [Renderer.StopIndex]().
//
// Outputs are recomputed lazily. All the query functions call
// [Renderer.Update]() first, so a layout is computed at most once
// between two changes, no matter how many queries are made.
//
// Layout coordinates have the origin at the bottom-left corner of
// the renderer area, with y growing upwards.
//
// The zero value is safe to use, but it has size 0 and transparent
// colors, so nothing is laid out until those are set. Prefer
// [NewRenderer]().
//
// Renderers are not safe for concurrent use.
type Renderer struct {
	text string
	font atlas.Font
	table *atlas.Table
	cache *atlas.Cache
	styleFunc markup.StyleFunc
	processor markup.Processor

	size fract.Unit
	fgColor color.NRGBA
	bgColor color.NRGBA
	tint color.NRGBA
	spacing fract.Unit
	lineGap fract.Unit
	width fract.Unit
	height fract.Unit

	align Align
	direction Direction
	flags uint16

	// layout results
	lines []LineInfo
	chars []Characteristics
	bounds fract.Rect
	vertices []Vertex
	indices []uint16
	passes int

	drawState
}

// Creates a new [Renderer] with default properties: size 16,
// white text over a transparent background, (Top | Left) align,
// [LeftToRight] direction, no wrapping and overflow allowed. The
// area is unbounded until [Renderer.SetArea]() is called.
//
// A font must be set before anything can be laid out.
func NewRenderer() *Renderer {
	return &Renderer{
		table: atlas.Compute(atlas.Font{}),
		cache: atlas.DefaultCache(),
		size: fract.FromInt(16),
		fgColor: color.NRGBA{255, 255, 255, 255},
		tint: color.NRGBA{255, 255, 255, 255},
		align: Top | Left,
		direction: LeftToRight,
		flags: flagDirty | flagGeometryDirty | flagTableStale | flagOverflow,
	}
}

func (self *Renderer) hasFlag(flag uint16) bool { return self.flags & flag != 0 }

func (self *Renderer) setFlag(flag uint16, on bool) {
	if self.hasFlag(flag) == on { return }
	if on { self.flags |= flag } else { self.flags &^= flag }
	self.flags |= flagDirty
}

// Forces the next query to recompute the layout.
func (self *Renderer) MarkDirty() { self.flags |= flagDirty }

// Reports whether the layout needs to be recomputed.
func (self *Renderer) Dirty() bool { return self.hasFlag(flagDirty) }

// Recomputes the layout if it's dirty. Queries already call this
// on their own, but it can be useful to control when the work
// happens.
func (self *Renderer) Update() {
	if !self.hasFlag(flagDirty) { return }
	self.flags &^= flagDirty
	self.flags |= flagGeometryDirty
	self.layout()
}

// Returns the bounding rect of all the laid out glyphs, in layout
// coordinates. Empty text, invalid fonts and non-positive sizes
// result in an empty rect.
func (self *Renderer) Bounds() fract.Rect {
	self.Update()
	return self.bounds
}

// Returns the number of laid out lines (or columns, for vertical
// text).
func (self *Renderer) LineCount() int {
	self.Update()
	return len(self.lines)
}

// Returns the laid out lines. The returned slice and the
// characteristics within are owned by the renderer: they must not
// be modified, and are only valid until the next layout pass.
func (self *Renderer) Lines() []LineInfo {
	self.Update()
	return self.lines
}
