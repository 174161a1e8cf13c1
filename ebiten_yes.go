//go:build !gtxt

package texel

import "github.com/hajimehoshi/ebiten/v2"

// Alias to allow compiling the package without Ebitengine (gtxt version).
//
// Without Ebitengine, TargetImage defaults to [image/draw.Image] and
// AtlasImage to [image.Image].
type TargetImage = *ebiten.Image
type AtlasImage = *ebiten.Image

type drawState struct {
	ebitenVertices []ebiten.Vertex
}

// Draws the current geometry on the target, with the area's top-left
// corner placed at (x, y). The atlas must be the font texture.
//
// Layout coordinates are y-up while Ebitengine's are y-down, so y
// coordinates are flipped around the area height. With an unbounded
// height, (x, y) is the layout origin instead.
func (self *Renderer) Draw(target TargetImage, atlas AtlasImage, x, y float64) {
	vertices, indices := self.Geometry()
	if len(indices) == 0 { return }

	self.ebitenVertices = ensureSliceSize(self.ebitenVertices, len(vertices))
	srcMin := atlas.Bounds().Min
	sx, sy := float32(srcMin.X), float32(srcMin.Y)
	ox, oy := float32(x), float32(y) + max(self.height, 0).ToFloat32()
	for i, vertex := range vertices {
		self.ebitenVertices[i] = ebiten.Vertex{
			DstX: ox + vertex.X,
			DstY: oy - vertex.Y,
			SrcX: sx + vertex.U,
			SrcY: sy + vertex.V,
			ColorR: float32(vertex.Color.R)/255,
			ColorG: float32(vertex.Color.G)/255,
			ColorB: float32(vertex.Color.B)/255,
			ColorA: float32(vertex.Color.A)/255,
		}
	}

	var opts ebiten.DrawTrianglesOptions
	opts.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	target.DrawTriangles(self.ebitenVertices[ : len(vertices)], indices, atlas, &opts)
}
