package markup

import "strconv"
import "strings"

import "github.com/tinne26/texel/esc"
import "github.com/tinne26/texel/fract"

// Rich text state machine. The layout engine feeds it each decoded
// character in order, and the processor reports whether the
// character belonged to a markup block.
//
// The zero value is ready to use after [Processor.Reset]().
type Processor struct {
	text string
	raw bool
	inBlock bool
	field strings.Builder
	fields []string
}

// Prepares the processor for a new pass over the given text.
// The raw flag must match the one used to decode the text.
func (self *Processor) Reset(text string, raw bool) {
	self.text = text
	self.raw = raw
	self.inBlock = false
	self.field.Reset()
	self.fields = self.fields[ : 0]
}

// Reports whether the processor is currently inside a block.
func (self *Processor) InBlock() bool { return self.inBlock }

// Feeds the character decoded at the given index, with next being
// the index right after it. Returns true if the character was
// consumed as markup, in which case it must not be laid out.
func (self *Processor) Feed(index, next int, char rune, escaped bool, style *Style) bool {
	if !self.inBlock {
		if char != '{' || escaped { return false }
		if !self.hasClosing(next) { return false }
		self.inBlock = true
		return true
	}

	if escaped {
		self.field.WriteRune(char)
		return true
	}
	switch char {
	case ',':
		self.closeField()
	case ';':
		self.closeField()
		self.dispatch(style)
	case '}':
		self.closeField()
		self.dispatch(style)
		self.inBlock = false
	default:
		self.field.WriteRune(char)
	}
	return true
}

// Looks for an unescaped '}' before any other unescaped '{'.
func (self *Processor) hasClosing(index int) bool {
	for index < len(self.text) {
		var char rune
		var escaped bool
		index, char, escaped = esc.Decode(self.text, index, self.raw)
		if escaped { continue }
		if char == '}' { return true }
		if char == '{' { return false }
	}
	return false
}

func (self *Processor) closeField() {
	self.fields = append(self.fields, self.field.String())
	self.field.Reset()
}

func (self *Processor) dispatch(style *Style) {
	defer func() { self.fields = self.fields[ : 0] }()
	if len(self.fields) == 0 { return }

	var letter byte
	var params []string
	first := strings.TrimSpace(self.fields[0])
	if len(first) == 1 && first[0] >= 'a' && first[0] <= 'z' {
		letter, params = first[0], self.fields[1 : ]
	} else {
		// trailing letter form: "{255,0,0f}"
		last := strings.TrimSpace(self.fields[len(self.fields) - 1])
		if last == "" { return }
		letter = last[len(last) - 1]
		self.fields[len(self.fields) - 1] = last[ : len(last) - 1]
		params = self.fields
		if len(params) == 1 && params[0] == "" { params = nil }
	}
	Apply(letter, params, style)
}

// Applies a single command to the given style. Unknown commands
// and malformed parameters are ignored. Returns whether the style
// was modified.
func Apply(letter byte, params []string, style *Style) bool {
	switch letter {
	case 's':
		if len(params) != 1 { return false }
		size, ok := parseSize(strings.TrimSpace(params[0]), style.Size)
		if ok { style.Size = size }
		return ok
	case 'f':
		fg, ok := ParseColor(params, style.Foreground)
		style.Foreground = fg
		return ok
	case 'b':
		bg, ok := ParseColor(params, style.Background)
		style.Background = bg
		return ok
	case 'o':
		if len(params) != 2 { return false }
		x, errX := strconv.Atoi(strings.TrimSpace(params[0]))
		y, errY := strconv.Atoi(strings.TrimSpace(params[1]))
		if errX != nil || errY != nil { return false }
		style.Offset = fract.IntsToPoint(x, y)
		return true
	case 'i':
		if len(params) != 0 { return false }
		style.Invert()
		return true
	default:
		return false
	}
}

func parseSize(param string, current fract.Unit) (fract.Unit, bool) {
	if param == "" { return current, false }

	var size fract.Unit
	switch {
	case strings.HasSuffix(param, "%"):
		percent, err := strconv.Atoi(param[ : len(param) - 1])
		if err != nil { return current, false }
		size = fract.Unit((int64(current)*int64(percent))/100)
	case param[0] == '+' || param[0] == '-':
		delta, err := strconv.Atoi(param)
		if err != nil { return current, false }
		size = current + fract.FromInt(delta)
	default:
		value, err := strconv.Atoi(param)
		if err != nil { return current, false }
		size = fract.FromInt(value)
	}
	return max(size.HalfUp(), fract.One), true
}
