package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextRenderer draws HUD strings and panels from the glyph atlas.
type TextRenderer struct {
	Atlas *FontAtlas
	CellW int
	CellH int

	pixel *ebiten.Image // 1x1 white, for panel backgrounds
}

// NewTextRenderer creates a renderer drawing glyphs at the given cell size.
func NewTextRenderer(atlas *FontAtlas, cellW, cellH int) *TextRenderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &TextRenderer{Atlas: atlas, CellW: cellW, CellH: cellH, pixel: pixel}
}

// DrawString writes s starting at pixel (px, py), one cell per character.
// Characters outside ASCII render as '?'.
func (r *TextRenderer) DrawString(screen *ebiten.Image, s string, px, py float64, fg uint8) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)
	x := px
	for _, ch := range s {
		if ch > 126 {
			ch = '?'
		}
		if ch != ' ' {
			var op ebiten.DrawImageOptions
			op.GeoM.Scale(scaleX, scaleY)
			op.GeoM.Translate(x, py)
			op.ColorScale.ScaleWithColor(Palette[fg])
			screen.DrawImage(r.Atlas.Glyph(byte(ch)), &op)
		}
		x += float64(r.CellW)
	}
}

// DrawGlyph renders a single glyph at sub-pixel screen coordinates, scaled.
// Used for markers that ride the smoothly moving world, not the HUD grid.
func (r *TextRenderer) DrawGlyph(screen *ebiten.Image, glyph byte, fg uint8, px, py, scale float64) {
	if glyph == ' ' || glyph == 0 {
		return
	}
	scaleX := float64(r.CellW) / float64(GlyphWidth) * scale
	scaleY := float64(r.CellH) / float64(GlyphHeight) * scale
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(px-float64(r.CellW)*scale/2, py-float64(r.CellH)*scale/2)
	op.ColorScale.ScaleWithColor(Palette[fg])
	screen.DrawImage(r.Atlas.Glyph(glyph), &op)
}

// FillRect fills a screen-space rectangle, used for HUD panel backgrounds.
func (r *TextRenderer) FillRect(screen *ebiten.Image, px, py, w, h float64, clr color.Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(px, py)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(r.pixel, &op)
}
