//go:build gtxt

package texel

import "image"
import "image/draw"

import xdraw "golang.org/x/image/draw"

type TargetImage = draw.Image
type AtlasImage = image.Image

type drawState struct {
	gtxtMask *image.Alpha
}

// Draws the current geometry on the target, with the area's top-left
// corner placed at (x, y). The atlas must be the font texture.
//
// Quads are drawn as axis aligned rects, scaling the texture region
// with nearest neighbor sampling and using it as a mask for the
// vertex color. With an unbounded height, (x, y) is the layout
// origin instead.
func (self *Renderer) Draw(target TargetImage, atlas AtlasImage, x, y float64) {
	vertices, indices := self.Geometry()
	if len(indices) == 0 { return }

	srcMin := atlas.Bounds().Min
	ox, oy := float32(x), float32(y) + max(self.height, 0).ToFloat32()
	for i := 0; i + 3 < len(vertices); i += 4 {
		bottomLeft, topRight := vertices[i], vertices[i + 2]
		dst := image.Rect(
			int(ox + bottomLeft.X), int(oy - topRight.Y),
			int(ox + topRight.X), int(oy - bottomLeft.Y),
		)
		src := image.Rect(
			int(bottomLeft.U), int(topRight.V),
			int(topRight.U), int(bottomLeft.V),
		).Add(srcMin)
		if dst.Empty() || src.Empty() { continue }

		self.gtxtMask = ensureAlphaSize(self.gtxtMask, dst.Dx(), dst.Dy())
		xdraw.NearestNeighbor.Scale(self.gtxtMask, self.gtxtMask.Bounds(), atlas, src, xdraw.Src, nil)
		fill := image.NewUniform(bottomLeft.Color)
		draw.DrawMask(target, dst, fill, image.Point{}, self.gtxtMask, image.Point{}, draw.Over)
	}
}

func ensureAlphaSize(mask *image.Alpha, width, height int) *image.Alpha {
	if mask != nil && mask.Rect.Dx() == width && mask.Rect.Dy() == height { return mask }
	return image.NewAlpha(image.Rect(0, 0, width, height))
}
