package main

import "errors"
import "image/color"
import "fmt"
import "sort"
import "strconv"
import "strings"

import "github.com/chzyer/readline"
import "github.com/pterm/pterm"

import "github.com/tinne26/texel"
import "github.com/tinne26/texel/atlas"
import "github.com/tinne26/texel/markup"

var errArgs = errors.New("wrong number of arguments")

// Intp is our interpreter object.
type Intp struct {
	renderer *texel.Renderer
}

func newIntp(font atlas.Font) *Intp {
	renderer := texel.NewRenderer()
	renderer.SetFont(font)
	return &Intp{ renderer: renderer }
}

// REPL starts interactive mode.
func (self *Intp) REPL(repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if err != nil { break } // io.EOF or interrupt
		quit, err := self.execute(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit { break }
	}
	pterm.Info.Println("Good bye!")
}

type opFunc func(intp *Intp, args []string, rest string) (quit bool, err error)

type op struct {
	fn opFunc
	usage string
}

var ops map[string]op

func init() {
	ops = map[string]op{
		"text"    : { textOp, "text <content>: set the text, escapes and markup included" },
		"size"    : { floatOp((*texel.Renderer).SetSize), "size <px>: set the text size" },
		"spacing" : { floatOp((*texel.Renderer).SetSpacing), "spacing <px>: set the glyph spacing" },
		"gap"     : { floatOp((*texel.Renderer).SetLineGap), "gap <px>: set the line gap" },
		"area"    : { areaOp, "area <width> <height>: set the layout area, <= 0 for unbounded" },
		"dir"     : { dirOp, "dir ltr|rtl|ttb: set the text direction" },
		"align"   : { alignOp, "align <top|vcenter|bottom|left|hcenter|right|center>...: set the align" },
		"wrap"    : { switchOp((*texel.Renderer).SetWrap), "wrap on|off: toggle line wrapping" },
		"overflow": { switchOp((*texel.Renderer).SetOverflow), "overflow on|off: toggle overflow" },
		"rich"    : { switchOp((*texel.Renderer).SetRichText), "rich on|off: toggle markup processing" },
		"raw"     : { switchOp((*texel.Renderer).SetRawText), "raw on|off: toggle raw text" },
		"snap"    : { switchOp((*texel.Renderer).SetPixelSnap), "snap on|off: toggle pixel snapping" },
		"color"   : { colorOp((*texel.Renderer).Color, (*texel.Renderer).SetColor), "color <color>: set the text color" },
		"bg"      : { colorOp((*texel.Renderer).Background, (*texel.Renderer).SetBackground), "bg <color>: set the background color" },
		"tint"    : { colorOp((*texel.Renderer).Tint, (*texel.Renderer).SetTint), "tint <color>: set the geometry tint" },
		"show"    : { showOp, "show: print the renderer properties" },
		"lines"   : { linesOp, "lines: print the laid out lines" },
		"glyphs"  : { glyphsOp, "glyphs [line]: print the laid out glyphs" },
		"metrics" : { metricsOp, "metrics [chars]: print glyph metrics" },
		"font"    : { fontOp, "font: print the font description as TOML" },
		"hit"     : { hitOp, "hit <x> <y>: index at the given layout point" },
		"caret"   : { caretOp, "caret <index>: caret rect for the given index" },
		"char"    : { charOp, "char <index>: slot rect for the given index" },
		"stop"    : { stopOp, "stop <index> fwd|back: nearest caret stop" },
		"quads"   : { quadsOp, "quads: print geometry stats" },
		"pdf"     : { pdfOp, "pdf <file>: export the layout rects to a PDF file" },
		"help"    : { helpOp, "help: list commands" },
		"quit"    : { quitOp, "quit: exit the CLI" },
	}
}

func newCompleter() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(ops))
	for _, name := range opNames() { items = append(items, readline.PcItem(name)) }
	return readline.NewPrefixCompleter(items...)
}

func opNames() []string {
	names := make([]string, 0, len(ops))
	for name := range ops { names = append(names, name) }
	sort.Strings(names)
	return names
}

// Parses and executes a single command line.
func (self *Intp) execute(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" { return false, nil }
	name, rest, _ := strings.Cut(line, " ")
	operation, found := ops[strings.ToLower(name)]
	if !found { return false, fmt.Errorf("unknown command %q (try 'help')", name) }
	quit, err := operation.fn(self, strings.Fields(rest), rest)
	if errors.Is(err, errArgs) { err = fmt.Errorf("%w, usage: %s", err, operation.usage) }
	return quit, err
}

func textOp(intp *Intp, args []string, rest string) (bool, error) {
	intp.renderer.SetText(rest)
	pterm.Printf("text set (%d bytes, %d lines)\n", len(rest), intp.renderer.LineCount())
	return false, nil
}

func floatOp(setter func(*texel.Renderer, float64)) opFunc {
	return func(intp *Intp, args []string, _ string) (bool, error) {
		if len(args) != 1 { return false, errArgs }
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil { return false, err }
		setter(intp.renderer, value)
		return false, nil
	}
}

func switchOp(setter func(*texel.Renderer, bool)) opFunc {
	return func(intp *Intp, args []string, _ string) (bool, error) {
		if len(args) != 1 { return false, errArgs }
		switch strings.ToLower(args[0]) {
		case "on", "true", "1": setter(intp.renderer, true)
		case "off", "false", "0": setter(intp.renderer, false)
		default:
			return false, fmt.Errorf("expected on or off, got %q", args[0])
		}
		return false, nil
	}
}

func colorOp(getter func(*texel.Renderer) color.NRGBA, setter func(*texel.Renderer, color.Color)) opFunc {
	return func(intp *Intp, args []string, _ string) (bool, error) {
		if len(args) == 0 { return false, errArgs }
		clr, ok := markup.ParseColor(args, getter(intp.renderer))
		if !ok { return false, fmt.Errorf("invalid color %q", strings.Join(args, " ")) }
		setter(intp.renderer, clr)
		return false, nil
	}
}

func areaOp(intp *Intp, args []string, _ string) (bool, error) {
	if len(args) != 2 { return false, errArgs }
	width, err := strconv.ParseFloat(args[0], 64)
	if err != nil { return false, err }
	height, err := strconv.ParseFloat(args[1], 64)
	if err != nil { return false, err }
	intp.renderer.SetArea(width, height)
	return false, nil
}

func dirOp(intp *Intp, args []string, _ string) (bool, error) {
	if len(args) != 1 { return false, errArgs }
	switch strings.ToLower(args[0]) {
	case "ltr": intp.renderer.SetDirection(texel.LeftToRight)
	case "rtl": intp.renderer.SetDirection(texel.RightToLeft)
	case "ttb": intp.renderer.SetDirection(texel.TopToBottom)
	default:
		return false, fmt.Errorf("unknown direction %q", args[0])
	}
	return false, nil
}

var alignNames = map[string]texel.Align{
	"top": texel.Top, "vcenter": texel.VertCenter, "bottom": texel.Bottom,
	"left": texel.Left, "hcenter": texel.HorzCenter, "right": texel.Right,
	"center": texel.Center,
}

func alignOp(intp *Intp, args []string, _ string) (bool, error) {
	if len(args) == 0 { return false, errArgs }
	align := intp.renderer.Align()
	for _, arg := range args {
		component, found := alignNames[strings.ToLower(arg)]
		if !found { return false, fmt.Errorf("unknown align %q", arg) }
		align = align.Adjusted(component)
	}
	intp.renderer.SetAlign(align)
	pterm.Printf("align set to %s\n", align)
	return false, nil
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil { return 0, fmt.Errorf("invalid index %q", arg) }
	return index, nil
}

func hitOp(intp *Intp, args []string, _ string) (bool, error) {
	if len(args) != 2 { return false, errArgs }
	point, err := parsePoint(args[0], args[1])
	if err != nil { return false, err }
	index, rect := intp.renderer.IndexAt(point)
	if index < 0 {
		pterm.Println("no line at the given point")
		return false, nil
	}
	pterm.Printf("index %d, rect %s\n", index, rect)
	return false, nil
}

func caretOp(intp *Intp, args []string, _ string) (bool, error) {
	if len(args) != 1 { return false, errArgs }
	index, err := parseIndex(args[0])
	if err != nil { return false, err }
	rect, ok := intp.renderer.CaretRect(index)
	if !ok {
		pterm.Println("no caret, the layout is empty")
		return false, nil
	}
	pterm.Printf("caret %s\n", rect)
	return false, nil
}

func charOp(intp *Intp, args []string, _ string) (bool, error) {
	if len(args) != 1 { return false, errArgs }
	index, err := parseIndex(args[0])
	if err != nil { return false, err }
	rect, ok := intp.renderer.CharRect(index)
	if !ok {
		pterm.Printf("no glyph laid out for index %d\n", index)
		return false, nil
	}
	pterm.Printf("slot %s\n", rect)
	return false, nil
}

func stopOp(intp *Intp, args []string, _ string) (bool, error) {
	if len(args) != 2 { return false, errArgs }
	index, err := parseIndex(args[0])
	if err != nil { return false, err }
	var forward bool
	switch strings.ToLower(args[1]) {
	case "fwd", "forward": forward = true
	case "back", "backward": forward = false
	default:
		return false, fmt.Errorf("expected fwd or back, got %q", args[1])
	}
	pterm.Printf("stop %d\n", intp.renderer.StopIndex(index, forward))
	return false, nil
}

func helpOp(intp *Intp, args []string, _ string) (bool, error) {
	pterm.Info.Println("Commands")
	for _, name := range opNames() {
		pterm.Println("  " + ops[name].usage)
	}
	pterm.Println("Layout coordinates are y-up, with the origin at the bottom-left corner of the area.")
	return false, nil
}

func quitOp(intp *Intp, args []string, _ string) (bool, error) {
	return true, nil
}
