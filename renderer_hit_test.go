package texel

import "testing"

import "github.com/tinne26/texel/fract"

func TestIndexAtInverse(t *testing.T) {
	text := "The quick {o,3,-2}brown{o,0,0} fox.\njumps {s,12}over{s,8} the lazy dog\n\nend"
	for _, dir := range []Direction{ LeftToRight, RightToLeft, TopToBottom } {
		for _, align := range []Align{ Top | Left, Center, Bottom | Right } {
			renderer := testRenderer(text)
			renderer.SetRichText(true)
			renderer.SetDirection(dir)
			renderer.SetAlign(align)
			renderer.SetArea(96, 96)
			renderer.SetWrap(true)
			renderer.SetSpacing(1)
			renderer.SetLineGap(3)

			count := 0
			for _, line := range renderer.Lines() {
				for _, chr := range line.Chars {
					center := chr.SlotRect().Center()
					index, rect := renderer.IndexAt(center)
					if index != chr.Index {
						t.Fatalf("%s %s: glyph %q at %d maps back to %d", dir, align, chr.Char, chr.Index, index)
					}
					if rect != chr.SlotRect() { t.Fatalf("%s %s: unexpected hit rect %s", dir, align, rect) }
					count += 1
				}
			}
			if count == 0 { t.Fatalf("%s %s: no glyphs laid out", dir, align) }
		}
	}
}

func TestIndexAtLineTails(t *testing.T) {
	renderer := testRenderer("ab\ncd")
	cases := []struct { x, y, index int }{
		{ 1, -4, 0 }, { 4, -4, 0 }, { 7, -4, 1 }, { 20, -4, 2 },
		{ 1, -12, 3 }, { 50, -12, 5 },
		{ 1, 5, -1 }, { 1, -17, -1 },
	}
	for _, c := range cases {
		index, _ := renderer.IndexAt(fract.IntsToPoint(c.x, c.y))
		if index != c.index { t.Fatalf("(%d, %d): expected index %d, got %d", c.x, c.y, c.index, index) }
	}

	_, rect := renderer.IndexAt(fract.IntsToPoint(20, -4))
	if rect != fract.IntsToRect(16, -8, 24, 0) { t.Fatalf("unexpected tail rect %s", rect) }
}

func TestCaretRect(t *testing.T) {
	renderer := testRenderer("ab\ncd")
	cases := []struct { index int; rect fract.Rect }{
		{ -3, fract.IntsToRect(0, -8, 8, 0) },
		{ 0, fract.IntsToRect(0, -8, 8, 0) },
		{ 1, fract.IntsToRect(8, -8, 16, 0) },
		{ 2, fract.IntsToRect(16, -8, 24, 0) },
		{ 3, fract.IntsToRect(0, -16, 8, -8) },
		{ 5, fract.IntsToRect(16, -16, 24, -8) },
		{ 99, fract.IntsToRect(16, -16, 24, -8) },
	}
	for _, c := range cases {
		rect, ok := renderer.CaretRect(c.index)
		if !ok { t.Fatalf("index %d: expected caret", c.index) }
		if rect != c.rect { t.Fatalf("index %d: expected caret %s, got %s", c.index, c.rect, rect) }
	}

	// narrow glyphs still get a full cell caret
	renderer.SetText("i")
	rect, _ := renderer.CaretRect(1)
	if rect != fract.IntsToRect(4, -8, 12, 0) { t.Fatalf("unexpected tail caret %s", rect) }
}

func TestCaretRectWrapped(t *testing.T) {
	renderer := testRenderer("ABCD")
	renderer.SetArea(16, 0)
	renderer.SetWrap(true)
	rect, _ := renderer.CaretRect(2)
	if rect != fract.IntsToRect(0, -16, 8, -8) {
		t.Fatalf("wrapped indices must map to the start of the next line, got %s", rect)
	}
}

func TestCaretRectDirections(t *testing.T) {
	renderer := testRenderer("Ai")
	renderer.SetDirection(RightToLeft)
	rect, _ := renderer.CaretRect(1)
	if rect != fract.IntsToRect(-4, -8, 4, 0) { t.Fatalf("unexpected right to left caret %s", rect) }
	rect, _ = renderer.CaretRect(2)
	if rect != fract.IntsToRect(-8, -8, 0, 0) { t.Fatalf("unexpected right to left tail caret %s", rect) }

	renderer.SetDirection(TopToBottom)
	rect, _ = renderer.CaretRect(1)
	if rect != fract.IntsToRect(0, -16, 8, -8) { t.Fatalf("unexpected vertical caret %s", rect) }
}

func TestCharRect(t *testing.T) {
	renderer := testRenderer("ab\ncd")
	rect, ok := renderer.CharRect(1)
	if !ok || rect != fract.IntsToRect(8, -8, 16, 0) { t.Fatalf("unexpected char rect %s", rect) }
	rect, ok = renderer.CharRect(4)
	if !ok || rect != fract.IntsToRect(8, -16, 16, -8) { t.Fatalf("unexpected char rect %s", rect) }
	if _, ok = renderer.CharRect(2); ok { t.Fatal("line breaks have no char rect") }
	if _, ok = renderer.CharRect(9); ok { t.Fatal("out of range indices have no char rect") }
}

func TestStopIndex(t *testing.T) {
	renderer := testRenderer("ab\n{f,red}cd")
	renderer.SetRichText(true)
	cases := []struct { index int; forward bool; expected int }{
		{ 0, false, 0 }, { 0, true, 0 },
		{ 1, true, 1 }, { 2, true, 2 }, { 2, false, 2 },
		{ 5, true, 10 }, { 5, false, 2 },
		{ 10, false, 10 }, { 11, true, 11 },
		{ 12, false, 12 }, { 40, true, 12 }, { -4, false, 0 },
		{ 3, false, 2 },
	}
	for _, c := range cases {
		got := renderer.StopIndex(c.index, c.forward)
		if got != c.expected {
			t.Fatalf("StopIndex(%d, %v): expected %d, got %d", c.index, c.forward, c.expected, got)
		}
	}
}

func TestStopIndexCaretWalk(t *testing.T) {
	renderer := testRenderer("ab\ncd\n\nef")
	expected := []int{ 0, 1, 2, 3, 4, 5, 6, 7, 8, 9 }

	caret := 0
	for i := 1; i < len(expected); i++ {
		caret = renderer.StopIndex(caret + 1, true)
		if caret != expected[i] { t.Fatalf("forward step %d: expected %d, got %d", i, expected[i], caret) }
	}
	for i := len(expected) - 2; i >= 0; i-- {
		caret = renderer.StopIndex(caret - 1, false)
		if caret != expected[i] { t.Fatalf("backward step %d: expected %d, got %d", i, expected[i], caret) }
	}

	// the head of a non-empty line is its first glyph
	if got := renderer.StopIndex(3, false); got != 3 { t.Fatalf("expected head stop 3, got %d", got) }
}
