package game

import "fmt"

// Hub service costs and amounts.
const (
	hubRepairCost   = 3
	hubRepairAmount = 5
	hubRefuelCost   = 2
	hubRefuelAmount = 50
)

// Outcome odds per POI kind.
const (
	wreckDamageChance  = 0.25
	ruinDamageChance   = 0.35
	debrisDamageChance = 0.15
	ruinFragmentChance = 0.35
	beaconSignalChance = 0.50
)

// Interact resolves the player's activate action against the nearest POI
// within the interaction radius. No POI in range is a silent no-op. Every
// resolved outcome, including a locked vault, persists the run. POIs never
// deplete; each activation rolls fresh.
func (s *Sim) Interact() {
	poi, ok := s.nearestPOI(s.Params.InteractRadius)
	if !ok {
		return
	}

	if poi.Kind == POIVault && !s.Ship.Legendary {
		s.Log.Add("The vault door reads the hull and stays shut. It wants the legendary drive.", MsgWarning)
		s.persist()
		return
	}

	switch poi.Kind {
	case POIHub:
		s.resolveHub()
	case POIVault:
		s.resolveVault()
	case POIWreck:
		s.resolveWreck()
	case POIRuin:
		s.resolveRuin()
	case POIBeacon:
		s.resolveBeacon()
	case POIDebris:
		s.resolveDebris()
	default:
		s.Log.Add("Nothing here responds.", MsgInfo)
	}
	s.persist()
}

// resolveHub runs the station services that apply: craft the legendary drive
// if the collection is complete, then repair, then refuel. Services the ship
// can't pay for report and do nothing.
func (s *Sim) resolveHub() {
	serviced := false

	if s.Ship.CraftLegendary() {
		s.Log.Add("The station forge fuses all ten fragments. LEGENDARY DRIVE FITTED.", MsgDiscovery)
		serviced = true
	}

	if s.Ship.Hull < s.Ship.MaxHull {
		if s.Ship.SpendScrap(hubRepairCost) {
			s.Ship.Repair(hubRepairAmount)
			s.Log.Add(fmt.Sprintf("Hull patched to %d/%d for %d scrap.", s.Ship.Hull, s.Ship.MaxHull, hubRepairCost), MsgInfo)
		} else {
			s.Log.Add(fmt.Sprintf("Repairs cost %d scrap. You have %d.", hubRepairCost, s.Ship.Scrap), MsgWarning)
		}
		serviced = true
	}

	if s.Ship.Fuel < s.Ship.MaxFuel {
		if s.Ship.SpendScrap(hubRefuelCost) {
			s.Ship.Refuel(hubRefuelAmount)
			s.Log.Add(fmt.Sprintf("Tanks topped to %d%% for %d scrap.", s.Ship.FuelPct(), hubRefuelCost), MsgInfo)
		} else {
			s.Log.Add(fmt.Sprintf("Fuel costs %d scrap. You have %d.", hubRefuelCost, s.Ship.Scrap), MsgWarning)
		}
		serviced = true
	}

	if !serviced {
		s.Log.Add("Haven Station: nothing needs doing. The mechanics wave.", MsgInfo)
	}
}

// resolveVault pays out the late-game cache. Only reachable with the
// legendary flag set.
func (s *Sim) resolveVault() {
	gain := 10 + s.rng.IntN(11)
	s.Ship.AddScrap(gain)
	s.Log.Add(fmt.Sprintf("The vault yields a cache of refined plate. +%d scrap.", gain), MsgDiscovery)
}

func (s *Sim) resolveWreck() {
	gain := 1 + s.rng.IntN(4)
	if s.Ship.Legendary {
		gain = 2 + s.rng.IntN(5)
	}
	s.Ship.AddScrap(gain)
	s.Log.Add(fmt.Sprintf("Cut %d scrap out of the wreck.", gain), MsgInfo)

	if s.rng.Float64() < wreckDamageChance {
		s.Log.Add("A bulkhead shears loose across the hull. Hull -1.", MsgWarning)
		s.applyDamage(1)
	}
}

func (s *Sim) resolveRuin() {
	gain := 2 + s.rng.IntN(5)
	if s.Ship.Legendary {
		gain = 3 + s.rng.IntN(6)
	}
	s.Ship.AddScrap(gain)
	s.Log.Add(fmt.Sprintf("Pried %d scrap from the ruin.", gain), MsgInfo)

	if s.rng.Float64() < ruinFragmentChance {
		if !s.discoverFragment() {
			s.Log.Add("A relic housing, long since emptied.", MsgInfo)
		}
	}
	if s.rng.Float64() < ruinDamageChance {
		dmg := 1 + s.rng.IntN(2)
		s.Log.Add(fmt.Sprintf("Collapsing masonry hammers the deck. Hull -%d.", dmg), MsgWarning)
		s.applyDamage(dmg)
	}
}

func (s *Sim) resolveBeacon() {
	if s.rng.Float64() < beaconSignalChance {
		if s.discoverFragment() {
			return
		}
		s.Log.Add("The beacon repeats coordinates you have already stripped.", MsgInfo)
		return
	}
	s.Log.Add("The beacon clicks through static. Nothing usable.", MsgInfo)
}

func (s *Sim) resolveDebris() {
	gain := 1 + s.rng.IntN(3)
	s.Ship.AddScrap(gain)
	s.Log.Add(fmt.Sprintf("Raked %d scrap out of the debris.", gain), MsgInfo)

	if s.rng.Float64() < debrisDamageChance {
		s.Log.Add("Shrapnel chews the skids. Hull -1.", MsgWarning)
		s.applyDamage(1)
	}
}

// discoverFragment grants one uniformly-chosen missing fragment id. Returns
// false when the collection is already complete.
func (s *Sim) discoverFragment() bool {
	missing := s.Ship.MissingFragments()
	if len(missing) == 0 {
		return false
	}
	id := missing[s.rng.IntN(len(missing))]
	s.Ship.AddFragment(id)
	s.Log.Add(fmt.Sprintf("Relic fragment %d recovered. %d of %d held.",
		id+1, s.Ship.FragmentCount(), len(s.Ship.Fragments)), MsgDiscovery)
	return true
}
