package game

// Ship tracks the run economy: hull, fuel, scrap, and the fragment
// meta-progression. All mutators clamp; nothing here ever goes out of bounds.
type Ship struct {
	Hull    int
	MaxHull int
	Fuel    float64
	MaxFuel float64
	Scrap   int

	// Meta-progression. Survives vessel destruction, reset only by an
	// explicit new run.
	Fragments []bool // indexed by fragment id
	Legendary bool
}

// NewShip creates a fresh ship with full hull and fuel and no progression.
func NewShip(maxHull int, maxFuel float64, fragmentTotal int) Ship {
	return Ship{
		Hull:      maxHull,
		MaxHull:   maxHull,
		Fuel:      maxFuel,
		MaxFuel:   maxFuel,
		Fragments: make([]bool, fragmentTotal),
	}
}

// ResetRunLocal restores hull, fuel and scrap to run-start values.
// Fragments and the legendary flag are untouched.
func (s *Ship) ResetRunLocal() {
	s.Hull = s.MaxHull
	s.Fuel = s.MaxFuel
	s.Scrap = 0
}

// Damage reduces hull, clamping at zero. Returns true when the hull is spent
// and the vessel is destroyed.
func (s *Ship) Damage(n int) bool {
	s.Hull -= n
	if s.Hull <= 0 {
		s.Hull = 0
		return true
	}
	return false
}

// Repair raises hull, never exceeding max.
func (s *Ship) Repair(n int) {
	s.Hull += n
	if s.Hull > s.MaxHull {
		s.Hull = s.MaxHull
	}
}

// SpendScrap deducts scrap if enough is held. No mutation on failure.
func (s *Ship) SpendScrap(n int) bool {
	if s.Scrap < n {
		return false
	}
	s.Scrap -= n
	return true
}

// AddScrap credits scrap.
func (s *Ship) AddScrap(n int) {
	s.Scrap += n
}

// DrainFuel burns fuel, clamping at zero.
func (s *Ship) DrainFuel(amount float64) {
	s.Fuel -= amount
	if s.Fuel < 0 {
		s.Fuel = 0
	}
}

// Refuel adds fuel, never exceeding max.
func (s *Ship) Refuel(amount float64) {
	s.Fuel += amount
	if s.Fuel > s.MaxFuel {
		s.Fuel = s.MaxFuel
	}
}

// FuelEmpty reports whether the tank is dry.
func (s *Ship) FuelEmpty() bool {
	return s.Fuel <= 0
}

// AddFragment records a fragment id. Returns true only if it was new;
// re-acquiring a held id or passing an out-of-range id is a no-op.
func (s *Ship) AddFragment(id int) bool {
	if id < 0 || id >= len(s.Fragments) || s.Fragments[id] {
		return false
	}
	s.Fragments[id] = true
	return true
}

// FragmentCount returns how many fragments are held.
func (s *Ship) FragmentCount() int {
	n := 0
	for _, held := range s.Fragments {
		if held {
			n++
		}
	}
	return n
}

// FragmentIDs returns the held fragment ids in ascending order.
func (s *Ship) FragmentIDs() []int {
	var ids []int
	for id, held := range s.Fragments {
		if held {
			ids = append(ids, id)
		}
	}
	return ids
}

// MissingFragments returns the fragment ids not yet held, in ascending order.
func (s *Ship) MissingFragments() []int {
	var ids []int
	for id, held := range s.Fragments {
		if !held {
			ids = append(ids, id)
		}
	}
	return ids
}

// HasAllFragments reports whether the collection is complete.
func (s *Ship) HasAllFragments() bool {
	return s.FragmentCount() == len(s.Fragments)
}

// CraftLegendary sets the legendary flag. Only possible with the full fragment
// collection; one-way, the flag never reverts within a run.
func (s *Ship) CraftLegendary() bool {
	if s.Legendary || !s.HasAllFragments() {
		return false
	}
	s.Legendary = true
	return true
}

// HullPct returns hull as a percentage of max.
func (s *Ship) HullPct() int {
	if s.MaxHull == 0 {
		return 0
	}
	return s.Hull * 100 / s.MaxHull
}

// FuelPct returns fuel as a percentage of max.
func (s *Ship) FuelPct() int {
	if s.MaxFuel <= 0 {
		return 0
	}
	pct := int(s.Fuel / s.MaxFuel * 100)
	if pct > 100 {
		pct = 100
	}
	return pct
}
