// Command texelcli is an interactive inspector for texel layouts.
// It loads an atlas font description (TOML or YAML, or the built-in
// basicfont atlas when none is given), and lets you change renderer
// properties and query the resulting layout from a REPL.
//
// Usage:
//   texelcli [-font path/to/font.toml] [-text "initial text"] [-trace Warn]
package main

import "flag"
import "fmt"
import "log/slog"
import "os"
import "path/filepath"
import "strings"

import "github.com/chzyer/readline"
import "github.com/pterm/pterm"
import "golang.org/x/image/font/basicfont"

import "github.com/tinne26/texel"
import "github.com/tinne26/texel/atlas"

func main() {
	initDisplay()

	// command line flags
	traceLevel := flag.String("trace", "Warn", "Trace level [Debug|Info|Warn|Error|Off]")
	fontPath := flag.String("font", "", "Atlas font description (.toml, .yaml or .yml)")
	text := flag.String("text", "Hello World!", "Initial text")
	flag.Parse()

	// set up logging
	level, err := parseLogLevel(*traceLevel)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	pterm.DefaultLogger.Level = level
	texel.SetLogger(slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger)))
	pterm.Info.Println("Welcome to the texel CLI")

	// load font to use
	font, err := loadFont(*fontPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt: "texel > ",
		AutoComplete: newCompleter(),
	})
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(3)
	}
	defer repl.Close()

	intp := newIntp(font)
	intp.renderer.SetText(*text)
	pterm.Info.Println("Quit with <ctrl>D or 'quit', list commands with 'help'")
	intp.REPL(repl)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func parseLogLevel(name string) (pterm.LogLevel, error) {
	switch strings.ToLower(name) {
	case "debug": return pterm.LogLevelDebug, nil
	case "info" : return pterm.LogLevelInfo, nil
	case "warn" : return pterm.LogLevelWarn, nil
	case "error": return pterm.LogLevelError, nil
	case "off"  : return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelDisabled, fmt.Errorf("invalid trace level %q", name)
	}
}

// Loads the atlas font description at the given path, or the
// basicfont atlas if the path is empty.
func loadFont(path string) (atlas.Font, error) {
	if path == "" {
		font, _ := atlas.FromBasicFace(basicfont.Face7x13)
		return font, nil
	}

	data, err := os.ReadFile(path)
	if err != nil { return atlas.Font{}, err }
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return atlas.DecodeTOML(data)
	case ".yaml", ".yml":
		return atlas.DecodeYAML(data)
	default:
		return atlas.Font{}, fmt.Errorf("unsupported font description format %q", filepath.Ext(path))
	}
}
