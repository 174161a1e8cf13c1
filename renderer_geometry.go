package texel

import "image"
import "image/color"

import "github.com/chewxy/math32"

import "github.com/tinne26/texel/fract"

// Maximum number of quads in a geometry buffer, as indices are
// uint16 and each quad takes four vertices.
const MaxQuads = 16383

// A geometry vertex. Positions are in layout coordinates (y-up),
// texture coordinates are in texels with the origin at the top-left
// corner of the texture. Colors are not premultiplied.
type Vertex struct {
	X, Y float32
	U, V float32
	Color color.NRGBA
}

// Returns the vertices and indices needed to draw the current
// layout: background quads first, then glyph quads, two triangles
// each. The returned buffers are owned by the renderer and are
// only valid until the next geometry rebuild.
func (self *Renderer) Geometry() ([]Vertex, []uint16) {
	self.Update()
	if self.hasFlag(flagGeometryDirty) {
		self.flags &^= flagGeometryDirty
		self.buildGeometry()
	}
	return self.vertices, self.indices
}

func (self *Renderer) buildGeometry() {
	if self.hasFlag(flagNoReuse) {
		self.vertices, self.indices = nil, nil
	} else {
		self.vertices, self.indices = self.vertices[ : 0], self.indices[ : 0]
	}
	if self.tint.A == 0 { return }

	var quads, dropped int
	for pass := 0; pass < 2; pass++ {
		for i := range self.chars {
			chr := &self.chars[i]
			var rect fract.Rect
			var texels image.Rectangle
			var clr color.NRGBA
			if pass == 0 {
				if chr.Background.A == 0 { continue }
				rect, texels, clr = chr.Padded.AddPoint(chr.Offset), self.font.Background, chr.Background
			} else {
				if chr.Foreground.A == 0 { continue }
				rect, texels, clr = chr.BoxRect(), chr.Texel, chr.Foreground
			}
			if quads >= MaxQuads {
				dropped += 1
				continue
			}
			self.appendQuad(rect, texels, self.tinted(clr))
			quads += 1
		}
	}
	if dropped > 0 {
		Logger().Warn("texel: geometry truncated", "max_quads", MaxQuads, "dropped", dropped)
	}
}

func (self *Renderer) tinted(clr color.NRGBA) color.NRGBA {
	if self.tint == (color.NRGBA{255, 255, 255, 255}) { return clr }
	return color.NRGBA{
		R: mulChannel(clr.R, self.tint.R),
		G: mulChannel(clr.G, self.tint.G),
		B: mulChannel(clr.B, self.tint.B),
		A: mulChannel(clr.A, self.tint.A),
	}
}

func mulChannel(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127)/255)
}

// Appends a quad. The texture region is flipped vertically, so
// its top-left corner maps to the top-left corner of the quad.
func (self *Renderer) appendQuad(rect fract.Rect, texels image.Rectangle, clr color.NRGBA) {
	x0, y0, x1, y1 := rect.ToFloat32s()
	if self.hasFlag(flagPixelSnap) {
		x0, y0 = math32.Round(x0), math32.Round(y0)
		x1, y1 = math32.Round(x1), math32.Round(y1)
	}
	u0, v0 := float32(texels.Min.X), float32(texels.Min.Y)
	u1, v1 := float32(texels.Max.X), float32(texels.Max.Y)

	base := uint16(len(self.vertices))
	self.vertices = append(self.vertices,
		Vertex{ X: x0, Y: y0, U: u0, V: v1, Color: clr }, // bottom-left
		Vertex{ X: x1, Y: y0, U: u1, V: v1, Color: clr }, // bottom-right
		Vertex{ X: x1, Y: y1, U: u1, V: v0, Color: clr }, // top-right
		Vertex{ X: x0, Y: y1, U: u0, V: v0, Color: clr }, // top-left
	)
	self.indices = append(self.indices, base, base + 1, base + 2, base, base + 2, base + 3)
}
