package texel

import "image"
import "image/color"
import "reflect"
import "testing"

import "github.com/tinne26/texel/atlas"
import "github.com/tinne26/texel/fract"
import "github.com/tinne26/texel/markup"

const testCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ abcdefghijklmnopqrstuvwxyz0123456789."

// 8x8 grid font where 'i' is 4 texels wide and '.' 2 texels wide.
func testFont() atlas.Font {
	return atlas.Font{
		TextureWidth: 64, TextureHeight: 64,
		CellWidth: 8, CellHeight: 8,
		Width: 8, Height: 8,
		Characters: testCharacters,
		Metrics: "i,,,,4\n.,,,,2",
		Background: image.Rect(63, 63, 64, 64),
	}
}

func testRenderer(text string) *Renderer {
	renderer := NewRenderer()
	renderer.SetFont(testFont())
	renderer.SetSize(8)
	renderer.SetText(text)
	return renderer
}

func copyLines(lines []LineInfo) []LineInfo {
	out := make([]LineInfo, len(lines))
	copy(out, lines)
	for i := range out {
		out[i].Chars = append([]Characteristics(nil), lines[i].Chars...)
	}
	return out
}

func allChars(renderer *Renderer) []Characteristics {
	var chars []Characteristics
	for _, line := range renderer.Lines() {
		chars = append(chars, line.Chars...)
	}
	return chars
}

func TestTwoGlyphScenario(t *testing.T) {
	renderer := NewRenderer()
	renderer.SetFont(atlas.Font{
		TextureWidth: 16, TextureHeight: 8,
		CellWidth: 8, CellHeight: 8, Width: 8, Height: 8,
		Characters: "AB",
	})
	renderer.SetSize(8)
	renderer.SetText("AB")

	lines := renderer.Lines()
	if len(lines) != 1 { t.Fatalf("expected 1 line, got %d", len(lines)) }
	chars := lines[0].Chars
	if len(chars) != 2 { t.Fatalf("expected 2 characteristics, got %d", len(chars)) }
	if chars[0].Position.X != 0 { t.Fatalf("expected first pen at 0, got %v", chars[0].Position.X.ToFloat64()) }
	if chars[1].Position.X != fract.FromInt(8) {
		t.Fatalf("expected second pen at 8, got %v", chars[1].Position.X.ToFloat64())
	}
	bounds := renderer.Bounds()
	if bounds.Width() != fract.FromInt(16) || bounds.Height() != fract.FromInt(8) {
		t.Fatalf("expected 16x8 bounds, got %s", bounds.String())
	}

	renderer.SetSpacing(2)
	chars = renderer.Lines()[0].Chars
	if chars[1].Position.X != fract.FromInt(10) {
		t.Fatalf("expected second pen at 10 with spacing, got %v", chars[1].Position.X.ToFloat64())
	}
}

func TestColorMarkupScenario(t *testing.T) {
	renderer := testRenderer("{f,255,0,0}A{f,0,255,0}B")
	renderer.SetRichText(true)
	chars := allChars(renderer)
	if len(chars) != 2 { t.Fatalf("expected 2 visible glyphs, got %d", len(chars)) }
	if chars[0].Char != 'A' || chars[1].Char != 'B' {
		t.Fatalf("unexpected glyphs %q %q", chars[0].Char, chars[1].Char)
	}
	if chars[0].Foreground != (color.NRGBA{255, 0, 0, 255}) {
		t.Fatalf("unexpected A color %v", chars[0].Foreground)
	}
	if chars[1].Foreground != (color.NRGBA{0, 255, 0, 255}) {
		t.Fatalf("unexpected B color %v", chars[1].Foreground)
	}

	// without rich text, the commands are regular text
	renderer.SetRichText(false)
	if got := len(allChars(renderer)); got != 24 {
		t.Fatalf("expected 24 glyphs without rich text, got %d", got)
	}
}

func TestDegenerateLayouts(t *testing.T) {
	setups := map[string]func(*Renderer){
		"empty text": func(r *Renderer) { r.SetText("") },
		"zero size": func(r *Renderer) { r.SetSize(0) },
		"negative size": func(r *Renderer) { r.SetSize(-4) },
		"invalid font": func(r *Renderer) { r.SetFont(atlas.Font{ CellWidth: 8, CellHeight: 8, Characters: "AB" }) },
		"no font": func(r *Renderer) { r.SetFont(atlas.Font{}) },
	}
	for name, setup := range setups {
		renderer := testRenderer("AB")
		setup(renderer)
		if !renderer.Bounds().Empty() { t.Fatalf("%s: expected empty bounds, got %s", name, renderer.Bounds()) }
		if renderer.LineCount() != 0 { t.Fatalf("%s: expected zero lines, got %d", name, renderer.LineCount()) }
		index, rect := renderer.IndexAt(fract.IntsToPoint(1, -1))
		if index != -1 || rect != (fract.Rect{}) { t.Fatalf("%s: expected no hit, got %d", name, index) }
		if _, ok := renderer.CaretRect(0); ok { t.Fatalf("%s: expected no caret", name) }
		if _, ok := renderer.CharRect(0); ok { t.Fatalf("%s: expected no char rect", name) }
		vertices, indices := renderer.Geometry()
		if len(vertices) != 0 || len(indices) != 0 { t.Fatalf("%s: expected empty geometry", name) }
	}
}

func TestZeroValueRenderer(t *testing.T) {
	var renderer Renderer
	renderer.SetText("AB")
	if !renderer.Bounds().Empty() { t.Fatalf("expected empty bounds, got %s", renderer.Bounds()) }
	if renderer.LineCount() != 0 { t.Fatalf("expected zero lines, got %d", renderer.LineCount()) }
	if renderer.Metrics().Valid() { t.Fatal("expected invalid metrics without font") }

	renderer.SetFont(testFont())
	renderer.SetSize(8)
	lines := renderer.Lines()
	if len(lines) != 1 || len(lines[0].Chars) != 2 {
		t.Fatalf("expected one line with two glyphs, got %d lines", len(lines))
	}
	bounds := renderer.Bounds()
	if bounds.Width() != fract.FromInt(16) || bounds.Height() != fract.FromInt(8) {
		t.Fatalf("expected 16x8 bounds, got %s", bounds.String())
	}
}

func TestDirtyGating(t *testing.T) {
	renderer := testRenderer("ABC")
	if !renderer.Dirty() { t.Fatal("new renderers must start dirty") }
	renderer.Bounds()
	renderer.Lines()
	renderer.Geometry()
	renderer.IndexAt(fract.Point{})
	renderer.CaretRect(1)
	renderer.StopIndex(1, true)
	if renderer.passes != 1 { t.Fatalf("expected 1 layout pass, got %d", renderer.passes) }
	if renderer.Dirty() { t.Fatal("expected clean renderer after queries") }

	renderer.SetText("ABC")
	renderer.SetSize(8)
	renderer.SetAlign(Top | Left)
	renderer.SetTint(color.NRGBA{255, 255, 255, 128})
	renderer.Bounds()
	if renderer.passes != 1 { t.Fatalf("unchanged properties must not trigger a pass (%d passes)", renderer.passes) }

	renderer.SetText("ABCD")
	renderer.Bounds()
	renderer.Bounds()
	if renderer.passes != 2 { t.Fatalf("expected 2 layout passes, got %d", renderer.passes) }

	renderer.MarkDirty()
	if !renderer.Dirty() { t.Fatal("expected dirty renderer") }
	renderer.Update()
	if renderer.passes != 3 { t.Fatalf("expected 3 layout passes, got %d", renderer.passes) }
}

func TestLayoutIdempotence(t *testing.T) {
	renderer := testRenderer("The {s,+8}quick{s,8} brown fox\njumps over\\nthe lazy dog.")
	renderer.SetRichText(true)
	renderer.SetWrap(true)
	renderer.SetArea(80, 100)
	renderer.SetSpacing(1)
	renderer.SetLineGap(2)
	renderer.SetAlign(Center)

	first := copyLines(renderer.Lines())
	firstBounds := renderer.Bounds()
	renderer.MarkDirty()
	second := renderer.Lines()
	if !reflect.DeepEqual(first, second) { t.Fatal("layout changed without any mutation") }
	if firstBounds != renderer.Bounds() { t.Fatal("bounds changed without any mutation") }
}

func TestFreshBuffersEquivalence(t *testing.T) {
	reused := testRenderer("")
	fresh := testRenderer("")
	fresh.SetReuseBuffers(false)
	fresh.SetMetricsCache(nil)
	for _, renderer := range []*Renderer{ reused, fresh } {
		renderer.SetRichText(true)
		renderer.SetWrap(true)
		renderer.SetArea(64, 64)
		renderer.SetBackground(color.NRGBA{0, 0, 80, 255})
	}

	texts := []string{
		"Hello world",
		"{b,#00000000}short",
		"a much longer text that will wrap over several lines",
		"",
		"{f,red}multi\nline\ntext",
	}
	var previous []LineInfo
	var previousCopy []LineInfo
	for _, text := range texts {
		reused.SetText(text)
		fresh.SetText(text)
		if !reflect.DeepEqual(copyLines(reused.Lines()), copyLines(fresh.Lines())) {
			t.Fatalf("lines differ for %q", text)
		}
		if reused.Bounds() != fresh.Bounds() { t.Fatalf("bounds differ for %q", text) }
		rv, ri := reused.Geometry()
		fv, fi := fresh.Geometry()
		if len(rv) != len(fv) || len(ri) != len(fi) { t.Fatalf("geometry sizes differ for %q", text) }
		for i := range rv {
			if rv[i] != fv[i] { t.Fatalf("vertex %d differs for %q", i, text) }
		}
		for i := range ri {
			if ri[i] != fi[i] { t.Fatalf("index %d differs for %q", i, text) }
		}

		// fresh buffers never touch previously returned results
		if previous != nil && !reflect.DeepEqual(previous, previousCopy) {
			t.Fatalf("fresh buffers modified a previous result (text %q)", text)
		}
		previous = fresh.Lines()
		previousCopy = copyLines(previous)
	}
}

func TestEscapesInLayout(t *testing.T) {
	renderer := testRenderer(`A\nB`)
	if renderer.LineCount() != 1 { t.Fatalf("escaped line breaks must not break lines (%d lines)", renderer.LineCount()) }
	if got := len(allChars(renderer)); got != 3 { t.Fatalf("expected 3 glyphs, got %d", got) }
	tofuChar, _ := renderer.Metrics().Tofu()
	if tofuChar != 'A' { t.Fatalf("unexpected tofu %q", tofuChar) }
	if chars := allChars(renderer); chars[1].Glyph != renderer.Metrics().Glyph('A') {
		t.Fatal("expected tofu metrics for the escaped line break")
	}

	renderer.SetRawText(true)
	if got := len(allChars(renderer)); got != 4 { t.Fatalf("expected 4 raw glyphs, got %d", got) }

	renderer.SetRawText(false)
	renderer.SetText("A\nB\tC\r")
	if renderer.LineCount() != 2 { t.Fatalf("expected 2 lines, got %d", renderer.LineCount()) }
	if got := len(allChars(renderer)); got != 3 { t.Fatalf("controls must be skipped, got %d glyphs", got) }

	renderer.SetText("A\n")
	lines := renderer.Lines()
	if len(lines) != 2 || len(lines[1].Chars) != 0 { t.Fatal("expected a trailing empty line") }
	if lines[1].HeadIndex != 2 || lines[1].TailIndex != 2 {
		t.Fatalf("unexpected empty line range [%d, %d]", lines[1].HeadIndex, lines[1].TailIndex)
	}
}

func TestStyleFunc(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	renderer := testRenderer("ABC")
	renderer.SetStyleFunc(func(text string, index int, char rune, style markup.Style) markup.Style {
		if index == 1 {
			style.Foreground = red
			style.Size = fract.FromInt(16)
		}
		return style
	})
	chars := allChars(renderer)
	if chars[1].Foreground != red { t.Fatalf("expected styled glyph, got %v", chars[1].Foreground) }
	if chars[2].Foreground == red { t.Fatal("style overrides must not persist") }
	if chars[1].Slot.X != fract.FromInt(16) { t.Fatalf("expected 16px slot, got %v", chars[1].Slot.X.ToFloat64()) }
	if chars[2].Position.X != fract.FromInt(24) {
		t.Fatalf("unexpected pen after styled glyph: %v", chars[2].Position.X.ToFloat64())
	}

	renderer.SetStyleFunc(nil)
	if allChars(renderer)[1].Foreground == red { t.Fatal("style func still applied after removal") }
}
