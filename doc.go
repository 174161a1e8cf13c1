// texel is a package for laying out and drawing text with bitmap
// fonts packed in a single texture grid, designed to be used mainly
// with the Ebitengine game engine.
//
// Common usage depends only on a couple types and a few functions.
// First, you describe the font texture with an [atlas.Font]:
//   font := atlas.Font{
//       TextureWidth: 128, TextureHeight: 128,
//       CellWidth: 8, CellHeight: 8, Width: 8, Height: 8,
//       Characters: atlas.CodePage437(),
//   }
//
// Then, you create a [Renderer] and configure it:
//   renderer := texel.NewRenderer()
//   renderer.SetFont(font)
//   renderer.SetSize(16)
//   renderer.SetArea(320, 240)
//   renderer.SetText("Hello {f,yellow}world{f,white}!")
//   renderer.SetRichText(true)
//
// Finally, you draw it with the font texture:
//   renderer.Draw(screen, fontTexture, x, y)
//
// Editing widgets can also map points to character indices and back
// with [Renderer.IndexAt](), [Renderer.CaretRect]() and friends.
//
// Without Ebitengine (gtxt build tag), drawing works on any
// [image/draw.Image] instead.
package texel
