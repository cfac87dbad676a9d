package fontatlas

import "testing"

func TestBakeDefault(t *testing.T) {
	a, err := BakeDefault(18)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "Workshop 0123 score:" {
		if _, ok := a.Glyphs[r]; !ok {
			t.Errorf("missing glyph %q", r)
		}
	}
	if a.H&(a.H-1) != 0 {
		t.Errorf("atlas height %d is not a power of two", a.H)
	}
	if a.LineHeight <= 0 {
		t.Errorf("line height = %v", a.LineHeight)
	}

	g := a.Glyphs['W']
	if g.Width <= 0 || g.Height <= 0 || g.Advance <= 0 {
		t.Errorf("glyph W = %+v", g)
	}
	if g.AtlasX+g.Width > float32(a.W) || g.AtlasY+g.Height > float32(a.H) {
		t.Errorf("glyph W outside atlas: %+v", g)
	}
}

func TestBakeRejectsGarbage(t *testing.T) {
	if _, err := Bake([]byte("not a font"), 12); err == nil {
		t.Error("expected parse error")
	}
}

func TestLayoutAndMeasure(t *testing.T) {
	a, err := BakeDefault(16)
	if err != nil {
		t.Fatal(err)
	}
	verts := a.Layout(nil, "a b", 10, 20, 1)
	// space has no quad
	if len(verts) != 2*FloatsPerGlyph {
		t.Fatalf("floats = %d, want %d", len(verts), 2*FloatsPerGlyph)
	}
	w1, _ := a.Measure("ab", 1)
	w2, _ := a.Measure("ab", 2)
	if w1 <= 0 || w2 != 2*w1 {
		t.Errorf("measure = %v at 1x, %v at 2x", w1, w2)
	}
	// unknown runes fall back to '?'
	wq, _ := a.Measure("?", 1)
	wu, _ := a.Measure("世", 1)
	if wu != wq {
		t.Errorf("fallback width = %v, want %v", wu, wq)
	}
}
