package atlas

import "image"
import "strings"

import "golang.org/x/image/font/basicfont"

import "github.com/tinne26/texel/esc"

// Private use code points fill the cells a face doesn't map, so
// they keep consuming grid slots without clashing with real text.
const fillerBase = 0xE000

// Creates a font description for a [basicfont.Face]. Face masks
// stack all glyphs in a single column, which becomes a grid with
// one cell per row. The returned image is the face mask itself,
// to be used as the font texture.
//
// When the face maps U+FFFD, it's also used as the tofu glyph.
func FromBasicFace(face *basicfont.Face) (Font, image.Image) {
	cellHeight := face.Ascent + face.Descent
	bounds := face.Mask.Bounds()
	font := Font{
		TextureWidth: bounds.Dx(),
		TextureHeight: bounds.Dy(),
		CellWidth: face.Width,
		CellHeight: cellHeight,
		Width: face.Width,
		Height: cellHeight,
	}
	if cellHeight <= 0 || face.Width <= 0 { return font, face.Mask }

	// map each mask slot to the rune stored there
	slots := make([]rune, min(256, bounds.Dy()/cellHeight))
	for i := range slots { slots[i] = -1 }
	hasReplacement := false
	for _, rng := range face.Ranges {
		for char := rng.Low; char < rng.High; char++ {
			slot := int(char - rng.Low) + rng.Offset
			if slot < 0 || slot >= len(slots) { continue }
			slots[slot] = char
			if char == '�' { hasReplacement = true }
		}
	}

	var builder strings.Builder
	for i, char := range slots {
		if char < 0 { char = rune(fillerBase + i) }
		builder.WriteString(esc.Encode(char))
	}
	font.Characters = builder.String()
	if hasReplacement { font.Metrics = `\0,�` }
	return font, face.Mask
}
