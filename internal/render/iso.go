package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TileRenderer draws the isometric ground. One white diamond is rasterized at
// startup and every tile on screen is a tinted, scaled copy of it.
type TileRenderer struct {
	HalfW float64
	HalfH float64

	diamond *ebiten.Image
}

// NewTileRenderer rasterizes the base diamond for the given tile half-extents
// in pixels.
func NewTileRenderer(halfW, halfH int) *TileRenderer {
	img := image.NewNRGBA(image.Rect(0, 0, halfW*2, halfH*2))
	w := float64(halfW)
	h := float64(halfH)
	for y := 0; y < halfH*2; y++ {
		for x := 0; x < halfW*2; x++ {
			dx := (float64(x) + 0.5 - w) / w
			dy := (float64(y) + 0.5 - h) / h
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}
			if dx+dy <= 1 {
				img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
			}
		}
	}
	return &TileRenderer{
		HalfW:   w,
		HalfH:   h,
		diamond: ebiten.NewImageFromImage(img),
	}
}

// DrawTile tints and places one diamond with its center at (cx, cy) screen
// pixels, scaled by the camera zoom.
func (r *TileRenderer) DrawTile(screen *ebiten.Image, cx, cy, scale float64, clr color.Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-r.HalfW, -r.HalfH)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(r.diamond, &op)
}

// DrawMarker places a smaller diamond on a tile, used as the base of POI and
// vessel markers so they sit visually on the ground plane.
func (r *TileRenderer) DrawMarker(screen *ebiten.Image, cx, cy, scale float64, clr color.Color) {
	r.DrawTile(screen, cx, cy, scale*0.55, clr)
}
