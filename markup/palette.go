package markup

import "image/color"

// The 256 color palette used for numeric color indices: the 16
// standard terminal colors, a 6x6x6 color cube and a 24 step
// grayscale ramp. Must not be modified.
var Palette = newPalette()

var cubeLevels = [6]uint8{ 0, 95, 135, 175, 215, 255 }

func newPalette() [256]color.NRGBA {
	var palette [256]color.NRGBA
	base := [16][3]uint8{
		{  0,   0,   0}, {128,   0,   0}, {  0, 128,   0}, {128, 128,   0},
		{  0,   0, 128}, {128,   0, 128}, {  0, 128, 128}, {192, 192, 192},
		{128, 128, 128}, {255,   0,   0}, {  0, 255,   0}, {255, 255,   0},
		{  0,   0, 255}, {255,   0, 255}, {  0, 255, 255}, {255, 255, 255},
	}
	for i, rgb := range base {
		palette[i] = color.NRGBA{ rgb[0], rgb[1], rgb[2], 255 }
	}
	for i := 0; i < 216; i++ {
		r, g, b := cubeLevels[i/36], cubeLevels[(i/6) % 6], cubeLevels[i % 6]
		palette[16 + i] = color.NRGBA{ r, g, b, 255 }
	}
	for i := 0; i < 24; i++ {
		level := uint8(8 + 10*i)
		palette[232 + i] = color.NRGBA{ level, level, level, 255 }
	}
	return palette
}
