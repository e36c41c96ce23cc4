package render

import "image/color"

// Named palette indices for the salt-flat look.
const (
	ColorBlack     = 0
	ColorDeepBlue  = 1
	ColorGreen     = 2
	ColorCyan      = 3
	ColorRust      = 4
	ColorViolet    = 5
	ColorOchre     = 6
	ColorLightGray = 7
	ColorDarkGray  = 8
	ColorSkyBlue   = 9
	ColorMint      = 10
	ColorIce       = 11
	ColorSignalRed = 12
	ColorPink      = 13
	ColorAmber     = 14
	ColorWhite     = 15
)

// Palette is the fixed 16-color game palette. Everything on screen is tinted
// from here so the whole scene stays on one ramp.
var Palette = [16]color.RGBA{
	{12, 10, 16, 255},    // 0: near-black ground shadow
	{28, 42, 94, 255},    // 1: deep blue
	{52, 136, 74, 255},   // 2: green
	{38, 134, 148, 255},  // 3: cyan
	{142, 58, 38, 255},   // 4: rust
	{120, 62, 132, 255},  // 5: violet
	{164, 118, 52, 255},  // 6: ochre
	{168, 164, 158, 255}, // 7: light gray
	{74, 70, 68, 255},    // 8: dark gray
	{96, 140, 220, 255},  // 9: sky blue
	{118, 222, 140, 255}, // 10: mint
	{150, 226, 234, 255}, // 11: ice
	{232, 84, 70, 255},   // 12: signal red
	{228, 130, 196, 255}, // 13: pink
	{240, 198, 80, 255},  // 14: amber
	{238, 236, 230, 255}, // 15: white
}

// terrain shade ramp, dark to light
var terrainRamp = [2]color.RGBA{
	{38, 34, 40, 255},
	{96, 88, 84, 255},
}

// TerrainColor maps a shade value in [0, 1] onto the ground ramp.
func TerrainColor(shade float64) color.RGBA {
	if shade < 0 {
		shade = 0
	}
	if shade > 1 {
		shade = 1
	}
	lo, hi := terrainRamp[0], terrainRamp[1]
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*shade)
	}
	return color.RGBA{lerp(lo.R, hi.R), lerp(lo.G, hi.G), lerp(lo.B, hi.B), 255}
}
