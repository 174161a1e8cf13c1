package main

import "fmt"
import "image/color"
import "sort"
import "strconv"

import "github.com/pterm/pterm"

import "github.com/tinne26/texel/atlas"
import "github.com/tinne26/texel/esc"
import "github.com/tinne26/texel/fract"

func parsePoint(xArg, yArg string) (fract.Point, error) {
	x, err := strconv.ParseFloat(xArg, 64)
	if err != nil { return fract.Point{}, err }
	y, err := strconv.ParseFloat(yArg, 64)
	if err != nil { return fract.Point{}, err }
	return fract.UnitsToPoint(fract.FromFloat64Up(x), fract.FromFloat64Up(y)), nil
}

func formatColor(clr color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", clr.R, clr.G, clr.B, clr.A)
}

func showOp(intp *Intp, args []string, _ string) (bool, error) {
	r := intp.renderer
	width, height := r.Area()
	data := [][]string{
		{"Property", "Value"},
		{"text", esc.Quote(r.Text())},
		{"size", strconv.FormatFloat(r.Size(), 'f', -1, 64)},
		{"spacing", strconv.FormatFloat(r.Spacing(), 'f', -1, 64)},
		{"line gap", strconv.FormatFloat(r.LineGap(), 'f', -1, 64)},
		{"area", fmt.Sprintf("%gx%g", width, height)},
		{"direction", r.Direction().String()},
		{"align", r.Align().String()},
		{"wrap", strconv.FormatBool(r.Wrap())},
		{"overflow", strconv.FormatBool(r.Overflow())},
		{"rich text", strconv.FormatBool(r.RichText())},
		{"raw text", strconv.FormatBool(r.RawText())},
		{"pixel snap", strconv.FormatBool(r.PixelSnap())},
		{"color", formatColor(r.Color())},
		{"background", formatColor(r.Background())},
		{"tint", formatColor(r.Tint())},
		{"bounds", r.Bounds().String()},
	}
	return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func linesOp(intp *Intp, args []string, _ string) (bool, error) {
	lines := intp.renderer.Lines()
	pterm.Printf("%d lines, bounds %s\n", len(lines), intp.renderer.Bounds())
	if len(lines) == 0 { return false, nil }
	data := [][]string{
		{"Line", "Head", "Tail", "Glyphs", "Wrapped", "Rect"},
	}
	for i, line := range lines {
		data = append(data, []string{
			strconv.Itoa(i),
			strconv.Itoa(line.HeadIndex),
			strconv.Itoa(line.TailIndex),
			strconv.Itoa(len(line.Chars)),
			strconv.FormatBool(line.Wrapped),
			line.Rect.String(),
		})
	}
	return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func glyphsOp(intp *Intp, args []string, _ string) (bool, error) {
	if len(args) > 1 { return false, errArgs }
	lines := intp.renderer.Lines()
	first, last := 0, len(lines) - 1
	if len(args) == 1 {
		index, err := parseIndex(args[0])
		if err != nil { return false, err }
		if index < 0 || index >= len(lines) { return false, fmt.Errorf("line %d out of range", index) }
		first, last = index, index
	}

	data := [][]string{
		{"Line", "Index", "Char", "Slot", "Box", "Texels", "Color"},
	}
	for i := first; i <= last; i++ {
		for _, chr := range lines[i].Chars {
			data = append(data, []string{
				strconv.Itoa(i),
				strconv.Itoa(chr.Index),
				esc.Quote(string(chr.Char)),
				chr.SlotRect().String(),
				chr.BoxRect().String(),
				chr.Texel.String(),
				formatColor(chr.Foreground),
			})
		}
	}
	if len(data) == 1 {
		pterm.Println("no glyphs")
		return false, nil
	}
	return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func metricsOp(intp *Intp, args []string, rest string) (bool, error) {
	table := intp.renderer.Metrics()
	tofuChar, _ := table.Tofu()
	pterm.Printf("%d glyphs, tofu %s\n", table.Len(), esc.Quote(string(tofuChar)))

	type entry struct { char rune; metrics atlas.GlyphMetrics; assigned bool }
	var entries []entry
	if len(args) == 0 {
		table.Each(func(char rune, metrics atlas.GlyphMetrics) {
			entries = append(entries, entry{ char, metrics, true })
		})
		sort.Slice(entries, func(i, j int) bool { return entries[i].char < entries[j].char })
	} else {
		for _, char := range esc.DecodeAll(rest, false) {
			metrics, found := table.Lookup(char)
			if !found { metrics = table.Glyph(char) }
			entries = append(entries, entry{ char, metrics, found })
		}
	}

	data := [][]string{
		{"Char", "Column", "Row", "Origin", "Size", "Assigned"},
	}
	for _, e := range entries {
		data = append(data, []string{
			esc.Quote(string(e.char)),
			strconv.Itoa(int(e.metrics.Column)),
			strconv.Itoa(int(e.metrics.Row)),
			fmt.Sprintf("(%d, %d)", e.metrics.OriginX, e.metrics.OriginY),
			fmt.Sprintf("%dx%d", e.metrics.Width, e.metrics.Height),
			strconv.FormatBool(e.assigned),
		})
	}
	return false, pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func fontOp(intp *Intp, args []string, _ string) (bool, error) {
	data, err := atlas.EncodeTOML(intp.renderer.Font())
	if err != nil { return false, err }
	pterm.Println(string(data))
	return false, nil
}

func quadsOp(intp *Intp, args []string, _ string) (bool, error) {
	vertices, indices := intp.renderer.Geometry()
	pterm.Printf("%d quads, %d vertices, %d indices\n", len(vertices)/4, len(vertices), len(indices))
	return false, nil
}
