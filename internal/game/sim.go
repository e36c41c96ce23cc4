package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/mlange-42/ark/ecs"
	"github.com/rs/zerolog"

	"github.com/irondrift/irondrift/internal/grid"
	"github.com/irondrift/irondrift/internal/save"
)

// Sim is the simulation context. It owns all gameplay state (vessel entity,
// ship economy, POI layout, camera) and is driven by one cooperative step
// per frame. Interactions run synchronously between steps.
type Sim struct {
	Params  Params
	ECS     *ecs.World
	Ship    Ship
	POIs    []POI
	Camera  Camera
	Log     *MessageLog
	Terrain *Terrain
	RunID   string

	// View geometry, owned by the shell via SetView.
	Proj         grid.Projection
	ViewW, ViewH float64

	mover  Mover
	store  save.Store
	logger zerolog.Logger
	rng    *rand.Rand

	vessel ecs.Entity
	posMap *ecs.Map[Position]
	velMap *ecs.Map[Velocity]

	dirty     bool
	sinceSave float64
}

// NewSim builds a simulation: restores the persisted run if the store has a
// usable snapshot, otherwise starts fresh. The seed drives all uncontrolled
// randomness (layout, outcomes); pass the clock for normal play.
func NewSim(params Params, store save.Store, logger zerolog.Logger, seed int64) *Sim {
	w := ecs.NewWorld(256)
	vessel := ecs.NewMap3[Position, Velocity, PlayerControlled](w).NewEntity(
		&Position{X: float64(params.StartCell.X), Y: float64(params.StartCell.Y)},
		&Velocity{},
		&PlayerControlled{},
	)

	s := &Sim{
		Params: params,
		ECS:    w,
		Ship:   NewShip(params.MaxHull, params.MaxFuel, params.FragmentTotal),
		Camera: NewCamera(),
		Log:    NewMessageLog(50),
		mover:  NewMover(params),
		store:  store,
		logger: logger,
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|1))),
		vessel: vessel,
		posMap: ecs.NewMap[Position](w),
		velMap: ecs.NewMap[Velocity](w),
	}

	restored := false
	if store != nil {
		if snap, ok := store.Load(); ok {
			restored = s.applySnapshot(snap)
		}
	}
	if restored {
		s.logger.Info().Str("run", s.RunID).Msg("run restored")
		s.Log.Add("Salvage run resumed.", MsgInfo)
	} else {
		s.freshRun()
		s.logger.Info().Str("run", s.RunID).Msg("new run started")
		s.Log.Add("The flats stretch out in every direction.", MsgInfo)
		s.Log.Add("Find the station. Watch the fuel.", MsgInfo)
	}
	return s
}

// freshRun resets everything: economy, progression, layout, terrain.
func (s *Sim) freshRun() {
	s.Ship = NewShip(s.Params.MaxHull, s.Params.MaxFuel, s.Params.FragmentTotal)
	s.POIs = GeneratePOIs(
		s.rng, s.Params.Grid,
		DefaultAnchors(s.Params.Grid),
		s.Params.FillerCount, s.Params.MinHubDist, s.Params.MaxAttempts,
	)
	s.Terrain = NewTerrain(int64(s.rng.Uint64()))
	s.RunID = uuid.NewString()
	s.resetVessel()
}

// NewRun discards the whole run on request, fragments and legendary status
// included, and lays out a new grid.
func (s *Sim) NewRun() {
	s.freshRun()
	s.Log.Add("Run abandoned. New salvage grounds generated.", MsgWarning)
	s.logger.Info().Str("run", s.RunID).Msg("run restarted")
	s.persist()
}

// resetVessel puts the vessel back on the start cell, at rest.
func (s *Sim) resetVessel() {
	pos := s.posMap.Get(s.vessel)
	vel := s.velMap.Get(s.vessel)
	pos.X = float64(s.Params.StartCell.X)
	pos.Y = float64(s.Params.StartCell.Y)
	vel.X, vel.Y = 0, 0
	s.snapCamera()
}

// VesselPos returns the vessel's continuous world position.
func (s *Sim) VesselPos() (float64, float64) {
	pos := s.posMap.Get(s.vessel)
	return pos.X, pos.Y
}

// VesselSpeed returns the vessel's current speed.
func (s *Sim) VesselSpeed() float64 {
	return Speed(s.velMap.Get(s.vessel))
}

// Step advances the simulation by one frame. dt is wall-clock seconds since
// the previous step; long pauses are clamped away before integration.
func (s *Sim) Step(in Intents, dt float64) {
	if dt > s.Params.MaxDelta {
		dt = s.Params.MaxDelta
	}

	pos := s.posMap.Get(s.vessel)
	vel := s.velMap.Get(s.vessel)
	dist := s.mover.Step(pos, vel, in, dt)

	moved := dist > moveEpsilon
	if moved {
		if !s.Ship.FuelEmpty() {
			mult := 1.0
			if in.Boost {
				mult = s.Params.BoostAccelMult
			}
			s.Ship.DrainFuel(dist * s.Params.FuelPerUnit * mult)
			if s.Ship.FuelEmpty() {
				s.Log.Add("Fuel exhausted. The vessel limps on, grinding.", MsgCritical)
			}
		} else if s.rng.Float64() < s.Params.EmptyFuelDamageChance {
			s.Log.Add("Dry running tears at the undercarriage. Hull -1.", MsgWarning)
			s.applyDamage(1)
		}
		s.dirty = true
	}

	// Throttled write-back while moving; interactions persist immediately.
	s.sinceSave += dt
	if moved && s.dirty && s.sinceSave >= s.Params.SaveThrottle {
		s.persist()
	}

	// Camera strictly after the integrator.
	tx, ty := s.cameraTarget()
	s.Camera.Follow(tx, ty, dt)
}

// applyDamage routes hull damage through destruction handling: at zero hull
// the run-local state resets while fragments and legendary status survive.
func (s *Sim) applyDamage(n int) {
	if !s.Ship.Damage(n) {
		return
	}
	s.Log.Add("HULL SPENT. Recovery crews haul the vessel back to the start.", MsgCritical)
	s.Ship.ResetRunLocal()
	s.resetVessel()
	s.persist()
}

// --- camera / view ---

// SetView tells the sim the pixel size of the viewport. Resizes snap the
// camera so re-centering never animates.
func (s *Sim) SetView(w, h float64) {
	s.ViewW, s.ViewH = w, h
	s.snapCamera()
}

// cameraTarget is the offset that would center the vessel on screen.
func (s *Sim) cameraTarget() (float64, float64) {
	pos := s.posMap.Get(s.vessel)
	sx, sy := s.Proj.Project(pos.X, pos.Y)
	return s.ViewW/2 - sx*s.Camera.Zoom, s.ViewH/2 - sy*s.Camera.Zoom
}

func (s *Sim) snapCamera() {
	tx, ty := s.cameraTarget()
	s.Camera.Snap(tx, ty)
}

// ZoomIn steps the zoom up and snaps the camera.
func (s *Sim) ZoomIn() {
	if s.Camera.ZoomIn() {
		s.snapCamera()
	}
}

// ZoomOut steps the zoom down and snaps the camera.
func (s *Sim) ZoomOut() {
	if s.Camera.ZoomOut() {
		s.snapCamera()
	}
}

// ZoomReset restores neutral zoom and snaps the camera.
func (s *Sim) ZoomReset() {
	if s.Camera.ZoomReset() {
		s.snapCamera()
	}
}

// WorldToScreen maps a continuous grid position to screen pixels under the
// current camera and zoom.
func (s *Sim) WorldToScreen(gx, gy float64) (float64, float64) {
	sx, sy := s.Proj.Project(gx, gy)
	return sx*s.Camera.Zoom + s.Camera.OffsetX, sy*s.Camera.Zoom + s.Camera.OffsetY
}

// --- presentation surface ---

// VisiblePOIs returns the POIs inside the fog-of-war radius around the
// vessel. The hub is always visible regardless of distance.
func (s *Sim) VisiblePOIs() []POI {
	px, py := s.VesselPos()
	var out []POI
	for _, p := range s.POIs {
		if p.Kind == POIHub {
			out = append(out, p)
			continue
		}
		if grid.Dist(px, py, float64(p.Cell.X), float64(p.Cell.Y)) <= s.Params.FogRadius {
			out = append(out, p)
		}
	}
	return out
}

// nearestPOI returns the POI closest to the vessel within radius.
func (s *Sim) nearestPOI(radius float64) (*POI, bool) {
	px, py := s.VesselPos()
	var best *POI
	bestD := radius
	for i := range s.POIs {
		p := &s.POIs[i]
		d := grid.Dist(px, py, float64(p.Cell.X), float64(p.Cell.Y))
		if d <= bestD {
			bestD = d
			best = p
		}
	}
	return best, best != nil
}

// NearestHint describes the closest visible POI, with lock and cost hints.
func (s *Sim) NearestHint() string {
	px, py := s.VesselPos()
	var best *POI
	bestD := s.Params.FogRadius
	for i := range s.POIs {
		p := &s.POIs[i]
		d := grid.Dist(px, py, float64(p.Cell.X), float64(p.Cell.Y))
		if d <= bestD {
			bestD = d
			best = p
		}
	}
	if best == nil {
		return "Nothing on the scope."
	}
	hint := fmt.Sprintf("%s at %.1f", best.Kind.Label(), bestD)
	switch best.Kind {
	case POIVault:
		if !s.Ship.Legendary {
			hint += " [locked]"
		}
	case POIHub:
		hint += fmt.Sprintf(" [repair %ds / refuel %ds]", hubRepairCost, hubRefuelCost)
	}
	if bestD <= s.Params.InteractRadius {
		hint += " [in range]"
	}
	return hint
}

// StatusLines is the textual summary for the HUD.
func (s *Sim) StatusLines() []string {
	px, py := s.VesselPos()
	progress := fmt.Sprintf("Fragments %d/%d", s.Ship.FragmentCount(), len(s.Ship.Fragments))
	if s.Ship.Legendary {
		progress = "LEGENDARY DRIVE FITTED"
	}
	return []string{
		fmt.Sprintf("Pos %.1f, %.1f  Spd %.1f", px, py, s.VesselSpeed()),
		fmt.Sprintf("Hull %d/%d  Fuel %d%%  Scrap %d  %s",
			s.Ship.Hull, s.Ship.MaxHull, s.Ship.FuelPct(), s.Ship.Scrap, progress),
		s.NearestHint(),
	}
}

// --- persistence ---

// snapshot captures the persistable run state.
func (s *Sim) snapshot() save.Snapshot {
	px, py := s.VesselPos()
	pois := make([]save.POIState, len(s.POIs))
	for i, p := range s.POIs {
		pois[i] = save.POIState{X: p.Cell.X, Y: p.Cell.Y, Kind: p.Kind.Name()}
	}
	return save.Snapshot{
		Ship: save.ShipState{
			Hull:      s.Ship.Hull,
			MaxHull:   s.Ship.MaxHull,
			Scrap:     s.Ship.Scrap,
			Fuel:      s.Ship.Fuel,
			MaxFuel:   s.Ship.MaxFuel,
			Legendary: s.Ship.Legendary,
			Fragments: s.Ship.FragmentIDs(),
		},
		Player:      save.PlayerState{X: px, Y: py},
		POIs:        pois,
		RunID:       s.RunID,
		TerrainSeed: s.Terrain.Seed,
	}
}

// applySnapshot restores state from a snapshot, falling back to defaults for
// anything missing or out of range. Returns false if the snapshot is unusable
// (the caller then starts a fresh run).
func (s *Sim) applySnapshot(snap save.Snapshot) bool {
	pois, ok := decodePOIs(snap.POIs, s.Params.Grid)
	if !ok {
		return false
	}
	s.POIs = pois

	ship := NewShip(s.Params.MaxHull, s.Params.MaxFuel, s.Params.FragmentTotal)
	if snap.Ship.MaxHull > 0 {
		ship.MaxHull = snap.Ship.MaxHull
	}
	if snap.Ship.Hull > 0 && snap.Ship.Hull <= ship.MaxHull {
		ship.Hull = snap.Ship.Hull
	} else {
		ship.Hull = ship.MaxHull
	}
	if snap.Ship.MaxFuel > 0 {
		ship.MaxFuel = snap.Ship.MaxFuel
	}
	if snap.Ship.Fuel >= 0 && snap.Ship.Fuel <= ship.MaxFuel {
		ship.Fuel = snap.Ship.Fuel
	} else {
		ship.Fuel = ship.MaxFuel
	}
	if snap.Ship.Scrap > 0 {
		ship.Scrap = snap.Ship.Scrap
	}
	for _, id := range snap.Ship.Fragments {
		ship.AddFragment(id)
	}
	ship.Legendary = snap.Ship.Legendary
	s.Ship = ship

	pos := s.posMap.Get(s.vessel)
	pos.X = s.Params.Grid.ClampX(snap.Player.X)
	pos.Y = s.Params.Grid.ClampY(snap.Player.Y)

	seed := snap.TerrainSeed
	if seed == 0 {
		seed = int64(s.rng.Uint64())
	}
	s.Terrain = NewTerrain(seed)

	s.RunID = snap.RunID
	if s.RunID == "" {
		s.RunID = uuid.NewString()
	}
	s.snapCamera()
	return true
}

// decodePOIs validates a persisted layout: known kinds, in-bounds unique
// cells, and at least one hub. Anything off means the layout is regenerated.
func decodePOIs(states []save.POIState, b grid.Bounds) ([]POI, bool) {
	if len(states) == 0 {
		return nil, false
	}
	seen := make(map[grid.Cell]bool, len(states))
	hasHub := false
	pois := make([]POI, 0, len(states))
	for _, st := range states {
		kind, ok := POIKindFromName(st.Kind)
		if !ok {
			return nil, false
		}
		c := grid.Cell{X: st.X, Y: st.Y}
		if !b.Contains(c) || seen[c] {
			return nil, false
		}
		seen[c] = true
		if kind == POIHub {
			hasHub = true
		}
		pois = append(pois, POI{Cell: c, Kind: kind})
	}
	if !hasHub {
		return nil, false
	}
	return pois, true
}

// persist writes the snapshot, fire-and-forget. A failed write is logged and
// otherwise ignored; the simulation never stops for storage.
func (s *Sim) persist() {
	s.dirty = false
	s.sinceSave = 0
	if s.store == nil {
		return
	}
	if err := s.store.Save(s.snapshot()); err != nil {
		s.logger.Warn().Err(err).Msg("snapshot write failed")
	}
}
