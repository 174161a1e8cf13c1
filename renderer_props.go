package texel

import "image/color"

import "github.com/tinne26/texel/atlas"
import "github.com/tinne26/texel/fract"
import "github.com/tinne26/texel/markup"

// Sets the text to lay out. Unless raw text is enabled, backslash
// escapes are interpreted (see the esc package). Unless rich text
// is enabled, markup blocks are regular text.
func (self *Renderer) SetText(text string) {
	if self.text == text { return }
	self.text = text
	self.MarkDirty()
}

// Returns the current text.
func (self *Renderer) Text() string { return self.text }

// Sets the font. Glyph metrics are resolved through the renderer's
// metrics cache (see [Renderer.SetMetricsCache]()).
func (self *Renderer) SetFont(font atlas.Font) {
	if self.font == font { return }
	self.font = font
	self.flags |= flagTableStale
	self.MarkDirty()
}

// Returns the current font.
func (self *Renderer) Font() atlas.Font { return self.font }

// Sets the cache used to resolve font metrics. Passing nil makes
// the renderer compute metrics without caching.
func (self *Renderer) SetMetricsCache(cache *atlas.Cache) {
	if self.cache == cache { return }
	self.cache = cache
	self.flags |= flagTableStale
	self.MarkDirty()
}

// Returns the resolved metrics for the current font.
func (self *Renderer) Metrics() *atlas.Table {
	self.refreshTable()
	return self.table
}

func (self *Renderer) refreshTable() {
	if self.table != nil && !self.hasFlag(flagTableStale) { return }
	self.flags &^= flagTableStale
	if self.cache == nil {
		self.table = atlas.Compute(self.font)
	} else {
		self.table = self.cache.Resolve(self.font)
	}
}

// Sets the text size in pixels. For horizontal text this is the
// height of a scaled cell; for vertical text, the width. Sizes
// equal to the font cell size draw glyphs at their natural size.
//
// Non-positive sizes are allowed, but nothing will be laid out.
func (self *Renderer) SetSize(size float64) {
	self.SetFractSize(fract.FromFloat64Up(size))
}

// Fixed point version of [Renderer.SetSize]().
func (self *Renderer) SetFractSize(size fract.Unit) {
	if self.size == size { return }
	self.size = size
	self.MarkDirty()
}

// Returns the current text size.
func (self *Renderer) Size() float64 { return self.size.ToFloat64() }

// Sets the default foreground color. The default is white.
func (self *Renderer) SetColor(fg color.Color) {
	nrgba := color.NRGBAModel.Convert(fg).(color.NRGBA)
	if self.fgColor == nrgba { return }
	self.fgColor = nrgba
	self.MarkDirty()
}

// Returns the default foreground color.
func (self *Renderer) Color() color.NRGBA { return self.fgColor }

// Sets the default background color. The default is fully
// transparent, which skips background quads entirely.
func (self *Renderer) SetBackground(bg color.Color) {
	nrgba := color.NRGBAModel.Convert(bg).(color.NRGBA)
	if self.bgColor == nrgba { return }
	self.bgColor = nrgba
	self.MarkDirty()
}

// Returns the default background color.
func (self *Renderer) Background() color.NRGBA { return self.bgColor }

// Sets a color multiplied with every vertex color of the geometry.
// A fully transparent tint results in empty geometry. The tint
// doesn't affect the layout.
func (self *Renderer) SetTint(tint color.Color) {
	nrgba := color.NRGBAModel.Convert(tint).(color.NRGBA)
	if self.tint == nrgba { return }
	self.tint = nrgba
	self.flags |= flagGeometryDirty
}

// Returns the current tint.
func (self *Renderer) Tint() color.NRGBA { return self.tint }

// Sets the spacing between consecutive glyphs, in pixels. Negative
// values are allowed.
func (self *Renderer) SetSpacing(spacing float64) {
	self.SetFractSpacing(fract.FromFloat64Up(spacing))
}

// Fixed point version of [Renderer.SetSpacing]().
func (self *Renderer) SetFractSpacing(spacing fract.Unit) {
	if self.spacing == spacing { return }
	self.spacing = spacing
	self.MarkDirty()
}

// Returns the current glyph spacing.
func (self *Renderer) Spacing() float64 { return self.spacing.ToFloat64() }

// Sets the gap between consecutive lines (or columns), in pixels.
func (self *Renderer) SetLineGap(gap float64) {
	self.SetFractLineGap(fract.FromFloat64Up(gap))
}

// Fixed point version of [Renderer.SetLineGap]().
func (self *Renderer) SetFractLineGap(gap fract.Unit) {
	if self.lineGap == gap { return }
	self.lineGap = gap
	self.MarkDirty()
}

// Returns the current line gap.
func (self *Renderer) LineGap() float64 { return self.lineGap.ToFloat64() }

// Sets the text align. Missing components keep their current
// value. Unknown components will panic.
func (self *Renderer) SetAlign(align Align) {
	align = self.align.Adjusted(align)
	if !align.Valid() { panic("invalid align " + align.String()) }
	if self.align == align { return }
	self.align = align
	self.MarkDirty()
}

// Returns the current align.
func (self *Renderer) Align() Align { return self.align }

// Sets the text direction. Unknown directions will panic.
func (self *Renderer) SetDirection(dir Direction) {
	switch dir {
	case LeftToRight, RightToLeft, TopToBottom:
	default:
		panic("invalid direction " + dir.String())
	}
	if self.direction == dir { return }
	self.direction = dir
	self.MarkDirty()
}

// Returns the current text direction.
func (self *Renderer) Direction() Direction { return self.direction }

// Sets the area where text is laid out. Non-positive dimensions
// leave the corresponding axis unbounded, in which case wrapping
// and overflow never apply and aligns treat the dimension as zero.
func (self *Renderer) SetArea(width, height float64) {
	self.SetFractArea(fract.FromFloat64Up(width), fract.FromFloat64Up(height))
}

// Fixed point version of [Renderer.SetArea]().
func (self *Renderer) SetFractArea(width, height fract.Unit) {
	if self.width == width && self.height == height { return }
	self.width, self.height = width, height
	self.MarkDirty()
}

// Returns the current area size.
func (self *Renderer) Area() (width, height float64) {
	return self.width.ToFloat64(), self.height.ToFloat64()
}

// Enables or disables line wrapping. When enabled, glyphs that
// would exceed the area start a new line.
func (self *Renderer) SetWrap(wrap bool) { self.setFlag(flagWrap, wrap) }

// Returns whether wrapping is enabled.
func (self *Renderer) Wrap() bool { return self.hasFlag(flagWrap) }

// When wrapping is disabled, overflow decides what happens to
// glyphs exceeding the area: with overflow enabled they are laid
// out anyway, otherwise they are skipped.
func (self *Renderer) SetOverflow(overflow bool) { self.setFlag(flagOverflow, overflow) }

// Returns whether overflow is enabled.
func (self *Renderer) Overflow() bool { return self.hasFlag(flagOverflow) }

// Enables or disables markup processing. See the markup package.
func (self *Renderer) SetRichText(enabled bool) { self.setFlag(flagRichText, enabled) }

// Returns whether markup processing is enabled.
func (self *Renderer) RichText() bool { return self.hasFlag(flagRichText) }

// Enables or disables raw text. Raw text doesn't interpret
// backslash escapes.
func (self *Renderer) SetRawText(raw bool) { self.setFlag(flagRawText, raw) }

// Returns whether raw text is enabled.
func (self *Renderer) RawText() bool { return self.hasFlag(flagRawText) }

// Sets a per character style override. Pass nil to remove it.
// The function must be pure, as it can be called any number of
// times. Since functions can't be compared, this always marks the
// layout as dirty.
func (self *Renderer) SetStyleFunc(fn markup.StyleFunc) {
	self.styleFunc = fn
	self.MarkDirty()
}

// Enables or disables rounding quad corners to whole pixels when
// building the geometry.
func (self *Renderer) SetPixelSnap(snap bool) {
	if self.hasFlag(flagPixelSnap) == snap { return }
	if snap { self.flags |= flagPixelSnap } else { self.flags &^= flagPixelSnap }
	self.flags |= flagGeometryDirty
}

// Returns whether pixel snapping is enabled.
func (self *Renderer) PixelSnap() bool { return self.hasFlag(flagPixelSnap) }

// By default, layout and geometry buffers are cleared and reused
// between passes. Disabling reuse makes each pass allocate fresh
// buffers, so previously returned slices stay untouched.
func (self *Renderer) SetReuseBuffers(reuse bool) {
	if reuse { self.flags &^= flagNoReuse } else { self.flags |= flagNoReuse }
}
