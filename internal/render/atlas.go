package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	atlasCols   = 16
	atlasRows   = 8
)

// FontAtlas holds the ASCII glyph atlas and cached sub-images. Glyphs are
// rendered white so draws can tint them with a color scale.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [128]*ebiten.Image
}

// NewFontAtlas generates the glyph atlas at startup. Printable ASCII (32-126)
// is rendered with basicfont.Face7x13, centered in a 16x16 cell.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, atlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 32; code < 127; code++ {
		col := code % atlasCols
		row := code / atlasCols
		drawFontGlyph(img, face, col*GlyphWidth, row*GlyphHeight, rune(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 128; code++ {
		col := code % atlasCols
		row := code / atlasCols
		x := col * GlyphWidth
		y := row * GlyphHeight
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[code] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for an ASCII code. Codes outside the
// printable range map to '?'.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	if code < 32 || code > 126 {
		code = '?'
	}
	return a.glyphs[code]
}

// drawFontGlyph renders one character into the atlas. Face7x13 glyphs are
// 7x13, centered horizontally with the baseline at y+13.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13),
	}
	d.DrawString(string(r))
}
