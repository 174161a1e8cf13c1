package markup

import "strconv"
import "strings"
import "image/color"

import "golang.org/x/image/colornames"

var basicColors = map[string]uint8{
	"black": 0, "red": 9, "green": 10, "yellow": 11,
	"blue": 12, "magenta": 13, "cyan": 14, "white": 15,
}

// Parses color command parameters. Accepted forms:
//   - "#RRGGBB" or "#RRGGBBAA".
//   - One of black, red, green, yellow, blue, magenta, cyan or
//     white, as pure primaries. Other CSS color names are also
//     recognized.
//   - A single integer in [0, 255], used as an index into [Palette].
//   - Three or four integers in [0, 255], for RGB or RGBA.
//
// On failure, the current color is returned with ok == false.
func ParseColor(params []string, current color.NRGBA) (color.NRGBA, bool) {
	switch len(params) {
	case 1:
		param := strings.TrimSpace(params[0])
		if strings.HasPrefix(param, "#") { return parseHexColor(param[1 : ], current) }
		if index, ok := parseByte(param); ok { return Palette[index], true }
		name := strings.ToLower(param)
		if index, found := basicColors[name]; found { return Palette[index], true }
		if rgba, found := colornames.Map[name]; found {
			return color.NRGBA{ rgba.R, rgba.G, rgba.B, rgba.A }, true
		}
		return current, false
	case 3, 4:
		var channels [4]uint8
		channels[3] = 255
		for i, param := range params {
			value, ok := parseByte(strings.TrimSpace(param))
			if !ok { return current, false }
			channels[i] = value
		}
		return color.NRGBA{ channels[0], channels[1], channels[2], channels[3] }, true
	default:
		return current, false
	}
}

func parseHexColor(digits string, current color.NRGBA) (color.NRGBA, bool) {
	if len(digits) != 6 && len(digits) != 8 { return current, false }
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil { return current, false }
	if len(digits) == 6 { value = (value << 8) | 0xFF }
	return color.NRGBA{ uint8(value >> 24), uint8(value >> 16), uint8(value >> 8), uint8(value) }, true
}

func parseByte(param string) (uint8, bool) {
	value, err := strconv.ParseUint(param, 10, 8)
	return uint8(value), err == nil
}
