package atlas

import "fmt"
import "image"

import "github.com/pelletier/go-toml/v2"
import "gopkg.in/yaml.v3"

// Font description as stored in configuration files. The
// background is written as [x0, y0, x1, y1].
type fontDesc struct {
	TextureWidth  int    `toml:"texture_width"  yaml:"texture_width"`
	TextureHeight int    `toml:"texture_height" yaml:"texture_height"`
	CellWidth     int    `toml:"cell_width"     yaml:"cell_width"`
	CellHeight    int    `toml:"cell_height"    yaml:"cell_height"`
	OriginX       int    `toml:"origin_x"       yaml:"origin_x"`
	OriginY       int    `toml:"origin_y"       yaml:"origin_y"`
	Width         int    `toml:"width"          yaml:"width"`
	Height        int    `toml:"height"         yaml:"height"`
	Characters    string `toml:"characters"     yaml:"characters"`
	Metrics       string `toml:"metrics"        yaml:"metrics"`
	Background    []int  `toml:"background"     yaml:"background"`
}

func (self *fontDesc) font() (Font, error) {
	font := Font{
		TextureWidth: self.TextureWidth, TextureHeight: self.TextureHeight,
		CellWidth: self.CellWidth, CellHeight: self.CellHeight,
		OriginX: self.OriginX, OriginY: self.OriginY,
		Width: self.Width, Height: self.Height,
		Characters: self.Characters,
		Metrics: self.Metrics,
	}
	switch len(self.Background) {
	case 0:
	case 4:
		bg := self.Background
		font.Background = image.Rect(bg[0], bg[1], bg[2], bg[3])
	default:
		return font, fmt.Errorf("%w: background needs 4 values, got %d", ErrInvalidFont, len(self.Background))
	}
	if !font.Valid() {
		return font, fmt.Errorf("%w: texture %dx%d, cell %dx%d, %d character bytes", ErrInvalidFont,
			font.TextureWidth, font.TextureHeight, font.CellWidth, font.CellHeight, len(font.Characters))
	}
	return font, nil
}

// Decodes a font description in TOML format.
func DecodeTOML(data []byte) (Font, error) {
	var desc fontDesc
	if err := toml.Unmarshal(data, &desc); err != nil {
		return Font{}, fmt.Errorf("atlas: decoding toml: %w", err)
	}
	return desc.font()
}

// Decodes a font description in YAML format.
func DecodeYAML(data []byte) (Font, error) {
	var desc fontDesc
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return Font{}, fmt.Errorf("atlas: decoding yaml: %w", err)
	}
	return desc.font()
}

// Encodes the font description in TOML format.
func EncodeTOML(font Font) ([]byte, error) {
	desc := fontDesc{
		TextureWidth: font.TextureWidth, TextureHeight: font.TextureHeight,
		CellWidth: font.CellWidth, CellHeight: font.CellHeight,
		OriginX: font.OriginX, OriginY: font.OriginY,
		Width: font.Width, Height: font.Height,
		Characters: font.Characters,
		Metrics: font.Metrics,
	}
	if !font.Background.Empty() {
		bg := font.Background
		desc.Background = []int{ bg.Min.X, bg.Min.Y, bg.Max.X, bg.Max.Y }
	}
	return toml.Marshal(desc)
}
