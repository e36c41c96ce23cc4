package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/irondrift/irondrift/internal/config"
	"github.com/irondrift/irondrift/internal/game"
	"github.com/irondrift/irondrift/internal/grid"
	"github.com/irondrift/irondrift/internal/render"
	"github.com/irondrift/irondrift/internal/save"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
	title         = "Iron Drift"

	halfTileW = 32
	halfTileH = 16

	cellWidth  = 16
	cellHeight = 16

	commsMax = 6 // visible message log lines
)

// Game is the Ebitengine shell. It owns input sampling and drawing; all
// gameplay state lives in sim.
type Game struct {
	sim   *game.Sim
	tiles *render.TileRenderer
	text  *render.TextRenderer

	viewW, viewH int
	lastTick     time.Time
}

func NewGame(sim *game.Sim) *Game {
	atlas := render.NewFontAtlas()
	g := &Game{
		sim:      sim,
		tiles:    render.NewTileRenderer(halfTileW, halfTileH),
		text:     render.NewTextRenderer(atlas, cellWidth, cellHeight),
		lastTick: time.Now(),
	}
	sim.Proj = grid.Projection{HalfTileW: halfTileW, HalfTileH: halfTileH}
	return g
}

// sampleIntents reads the held movement keys. Opposing keys cancel inside the
// simulation, so no filtering happens here.
func sampleIntents() game.Intents {
	return game.Intents{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		Boost: ebiten.IsKeyPressed(ebiten.KeyShift),
		Brake: ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.sim.Interact()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.NewRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.sim.ZoomIn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.sim.ZoomOut()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		g.sim.ZoomReset()
	}

	// Wall-clock delta; the simulation clamps long hitches itself.
	now := time.Now()
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now
	g.sim.Step(sampleIntents(), dt)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Palette[render.ColorBlack])

	zoom := g.sim.Camera.Zoom
	b := g.sim.Params.Grid

	// Ground plane. Painted in grid order, which is already back-to-front for
	// the 2:1 projection.
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			sx, sy := g.sim.WorldToScreen(float64(x), float64(y))
			if sx < -2*halfTileW || sx > float64(g.viewW)+2*halfTileW ||
				sy < -2*halfTileH || sy > float64(g.viewH)+2*halfTileH {
				continue
			}
			g.tiles.DrawTile(screen, sx, sy, zoom, render.TerrainColor(g.sim.Terrain.Shade(c)))
		}
	}

	// POIs inside the fog radius; the hub is always shown.
	for _, p := range g.sim.VisiblePOIs() {
		sx, sy := g.sim.WorldToScreen(float64(p.Cell.X), float64(p.Cell.Y))
		glyph, clr := poiVisuals(p.Kind)
		g.tiles.DrawMarker(screen, sx, sy, zoom, render.Palette[clr])
		g.text.DrawGlyph(screen, glyph, render.ColorBlack, sx, sy, zoom)
	}

	// Vessel.
	px, py := g.sim.VesselPos()
	sx, sy := g.sim.WorldToScreen(px, py)
	g.tiles.DrawMarker(screen, sx, sy, zoom, render.Palette[render.ColorWhite])
	g.text.DrawGlyph(screen, '@', render.ColorBlack, sx, sy, zoom)

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	panel := render.Palette[render.ColorBlack]
	panel.A = 200

	// Status block, top left.
	lines := g.sim.StatusLines()
	g.text.FillRect(screen, 0, 0, float64(g.viewW), float64(len(lines)+1)*cellHeight, panel)
	for i, line := range lines {
		g.text.DrawString(screen, line, 8, float64(i)*cellHeight+4, render.ColorLightGray)
	}

	// Message log, bottom left.
	msgs := g.sim.Log.Recent(commsMax)
	logTop := float64(g.viewH) - float64(len(msgs)+2)*cellHeight
	g.text.FillRect(screen, 0, logTop, float64(g.viewW), float64(len(msgs)+2)*cellHeight, panel)
	for i, msg := range msgs {
		g.text.DrawString(screen, msg.Text, 8, logTop+float64(i)*cellHeight+4, msgColor(msg.Priority))
	}

	help := "WASD move  Shift boost  Space brake  E interact  N new run  +/-/0 zoom"
	g.text.DrawString(screen, help, 8, float64(g.viewH)-cellHeight-2, render.ColorDarkGray)
}

func poiVisuals(kind game.POIKind) (byte, uint8) {
	switch kind {
	case game.POIHub:
		return 'H', render.ColorAmber
	case game.POIVault:
		return 'V', render.ColorViolet
	case game.POIWreck:
		return 'W', render.ColorLightGray
	case game.POIRuin:
		return 'R', render.ColorRust
	case game.POIBeacon:
		return 'B', render.ColorIce
	case game.POIDebris:
		return 'd', render.ColorOchre
	default:
		return '?', render.ColorWhite
	}
}

func msgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgCritical:
		return render.ColorSignalRed
	case game.MsgWarning:
		return render.ColorAmber
	case game.MsgDiscovery:
		return render.ColorMint
	default:
		return render.ColorCyan
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.viewW || outsideHeight != g.viewH {
		g.viewW, g.viewH = outsideWidth, outsideHeight
		g.sim.SetView(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// paramsFromConfig assembles the simulation tuning from the loaded config.
func paramsFromConfig() game.Params {
	return game.Params{
		Grid: grid.Bounds{
			Width:  config.GetInt("grid.width"),
			Height: config.GetInt("grid.height"),
		},
		StartCell: grid.Cell{
			X: config.GetInt("grid.startX"),
			Y: config.GetInt("grid.startY"),
		},

		Accel:          config.GetFloat("physics.accel"),
		BoostAccelMult: config.GetFloat("physics.boostAccelMult"),
		MaxSpeed:       config.GetFloat("physics.maxSpeed"),
		BoostSpeedMult: config.GetFloat("physics.boostSpeedMult"),
		Drag:           config.GetFloat("physics.drag"),
		BrakeDrag:      config.GetFloat("physics.brakeDrag"),
		OverspeedDamp:  config.GetFloat("physics.overspeedDamp"),
		MaxDelta:       config.GetFloat("physics.maxDelta"),

		MaxHull:               config.GetInt("ship.maxHull"),
		MaxFuel:               config.GetFloat("ship.maxFuel"),
		FuelPerUnit:           config.GetFloat("ship.fuelPerUnit"),
		EmptyFuelDamageChance: config.GetFloat("ship.emptyFuelDamageChance"),
		FragmentTotal:         config.GetInt("ship.fragmentTotal"),

		InteractRadius: config.GetFloat("interact.radius"),
		FogRadius:      config.GetFloat("view.fogRadius"),

		FillerCount: config.GetInt("poi.fillerCount"),
		MinHubDist:  config.GetInt("poi.minHubDist"),
		MaxAttempts: config.GetInt("poi.maxAttempts"),

		SaveThrottle: config.GetFloat("save.throttle"),
	}
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if err := config.Load("."); err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	var store save.Store
	db, err := save.Open(config.GetString("save.path"))
	if err != nil {
		// Playable without persistence; progress just won't survive.
		logger.Warn().Err(err).Msg("save store unavailable, running without persistence")
	} else {
		store = db
		defer db.Close()
	}

	sim := game.NewSim(paramsFromConfig(), store, logger, time.Now().UnixNano())

	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(sim)); err != nil {
		logger.Fatal().Err(err).Msg("game loop exited")
	}
}
