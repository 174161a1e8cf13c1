package main

import "fmt"
import "image/color"
import "io"
import "os"

import "github.com/pterm/pterm"
import "github.com/tdewolff/canvas"
import "github.com/tdewolff/canvas/renderers/pdf"

import "github.com/tinne26/texel"

// Page margin around the layout bounds, in canvas units (mm).
const pdfMargin = 4.0

var (
	transparent = color.RGBA{}
	slotStroke = color.NRGBA{ 160, 160, 160, 255 }
	lineStroke = color.NRGBA{ 220, 80, 80, 255 }
)

// Writes a PDF with one page showing the layout: line rects, glyph
// backgrounds, glyph boxes filled with their colors and glyph slots.
// One layout pixel maps to one millimeter. Canvas coordinates are
// y-up like layout coordinates, so only a translation is needed.
func writeLayoutPDF(w io.Writer, renderer *texel.Renderer) error {
	bounds := renderer.Bounds()
	for _, line := range renderer.Lines() { bounds = bounds.Union(line.Rect) }
	if bounds.Empty() { return fmt.Errorf("the layout is empty") }

	minX, minY, maxX, maxY := bounds.ToFloat64s()
	width, height := maxX - minX + 2*pdfMargin, maxY - minY + 2*pdfMargin
	ox, oy := pdfMargin - minX, pdfMargin - minY

	writer := pdf.New(w, width, height, nil)
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetStrokeWidth(0.1)

	drawRect := func(x0, y0, x1, y1 float64) {
		ctx.DrawPath(ox + x0, oy + y0, canvas.Rectangle(x1 - x0, y1 - y0))
	}

	ctx.SetFillColor(transparent)
	ctx.SetStrokeColor(lineStroke)
	for _, line := range renderer.Lines() { drawRect(line.Rect.ToFloat64s()) }

	for _, line := range renderer.Lines() {
		for _, chr := range line.Chars {
			if chr.Background.A > 0 {
				ctx.SetFillColor(chr.Background)
				ctx.SetStrokeColor(transparent)
				drawRect(chr.Padded.AddPoint(chr.Offset).ToFloat64s())
			}
			ctx.SetFillColor(chr.Foreground)
			ctx.SetStrokeColor(transparent)
			drawRect(chr.BoxRect().ToFloat64s())

			ctx.SetFillColor(transparent)
			ctx.SetStrokeColor(slotStroke)
			drawRect(chr.SlotRect().ToFloat64s())
		}
	}

	c.RenderTo(writer)
	return writer.Close()
}

func pdfOp(intp *Intp, args []string, _ string) (bool, error) {
	if len(args) != 1 { return false, errArgs }
	file, err := os.Create(args[0])
	if err != nil { return false, err }
	err = writeLayoutPDF(file, intp.renderer)
	if closeErr := file.Close(); err == nil { err = closeErr }
	if err != nil { return false, fmt.Errorf("pdf export failed: %w", err) }
	pterm.Success.Printf("layout written to %s\n", args[0])
	return false, nil
}
