package atlas

import "strings"

import "golang.org/x/text/encoding/charmap"

import "github.com/tinne26/texel/esc"

// Returns an assignment string with the 256 characters of code
// page 437 in byte order, for the classic 16x16 grids. Control
// code points are escaped so they still consume their cells.
func CodePage437() string {
	var builder strings.Builder
	for i := 0; i < 256; i++ {
		char := charmap.CodePage437.DecodeByte(byte(i))
		builder.WriteString(esc.Encode(char))
	}
	return builder.String()
}
