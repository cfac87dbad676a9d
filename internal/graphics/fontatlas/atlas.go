// Package fontatlas bakes a TrueType face into a single channel glyph atlas and lays
// out text quads against it. It has no GL dependency.
package fontatlas

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes one character's placement in the atlas and its metrics in pixels.
type Glyph struct {
	AtlasX, AtlasY float32 // top-left in the atlas
	Width, Height  float32
	BearingX       float32
	BearingY       float32 // distance from baseline up to the glyph top
	Advance        float32
}

type Atlas struct {
	Image  *image.Alpha
	W, H   int
	Glyphs map[rune]Glyph
	// LineHeight is ascent plus descent at the baked size
	LineHeight float32
}

const (
	atlasWidth = 512
	padding    = 1
	firstRune  = 32
	lastRune   = 255
)

// BakeDefault bakes the embedded Go Regular face.
func BakeDefault(px int) (*Atlas, error) {
	return Bake(goregular.TTF, px)
}

// Bake renders printable Latin-1 runes of the font at px pixels into an atlas.
func Bake(ttf []byte, px int) (*Atlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	type placed struct {
		r       rune
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
		x, y    int
	}
	var glyphs []placed

	// row packer
	x, y, rowH := 0, 0, 0
	for r := rune(firstRune); r <= lastRune; r++ {
		if r >= 127 && r < 160 {
			continue
		}
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		w, h := dr.Dx(), dr.Dy()
		if x+w+padding > atlasWidth {
			x = 0
			y += rowH + padding
			rowH = 0
		}
		glyphs = append(glyphs, placed{r, dr, mask, maskp, advance, x, y})
		if w > 0 {
			x += w + padding
		}
		rowH = max(rowH, h)
	}
	height := nextPow2(y + rowH + padding)

	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, height))
	a := &Atlas{Image: img, W: atlasWidth, H: height, Glyphs: make(map[rune]Glyph, len(glyphs))}
	for _, g := range glyphs {
		w, h := g.dr.Dx(), g.dr.Dy()
		if w > 0 && h > 0 {
			draw.Draw(img, image.Rect(g.x, g.y, g.x+w, g.y+h), g.mask, g.maskp, draw.Src)
		}
		a.Glyphs[g.r] = Glyph{
			AtlasX:   float32(g.x),
			AtlasY:   float32(g.y),
			Width:    float32(w),
			Height:   float32(h),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  float32(math.Round(float64(g.advance) / 64.0)),
		}
	}
	m := face.Metrics()
	a.LineHeight = float32((m.Ascent + m.Descent).Round())
	return a, nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (a *Atlas) glyph(r rune) (Glyph, bool) {
	if g, ok := a.Glyphs[r]; ok {
		return g, true
	}
	g, ok := a.Glyphs['?']
	return g, ok
}

// Measure returns the width and tallest glyph height of text at scale.
func (a *Atlas) Measure(text string, scale float32) (w, h float32) {
	for _, r := range text {
		g, ok := a.glyph(r)
		if !ok {
			continue
		}
		w += g.Advance * scale
		h = max(h, g.Height*scale)
	}
	return w, h
}

// FloatsPerGlyph is six vertices of x, y, u, v.
const FloatsPerGlyph = 6 * 4

// Layout appends the quads for text with its baseline starting at (x, y) in
// top-left-origin pixels.
func (a *Atlas) Layout(dst []float32, text string, x, y, scale float32) []float32 {
	fw, fh := float32(a.W), float32(a.H)
	for _, r := range text {
		g, ok := a.glyph(r)
		if !ok {
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.Width*scale
			y1 := y0 + g.Height*scale
			u0, v0 := g.AtlasX/fw, g.AtlasY/fh
			u1, v1 := (g.AtlasX+g.Width)/fw, (g.AtlasY+g.Height)/fh
			dst = append(dst,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += g.Advance * scale
	}
	return dst
}
