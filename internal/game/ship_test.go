package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShip() Ship {
	return NewShip(10, 100, 10)
}

func TestHullAndFuelStayBounded(t *testing.T) {
	s := testShip()

	s.Damage(3)
	assert.Equal(t, 7, s.Hull)
	s.Repair(100)
	assert.Equal(t, 10, s.Hull)
	s.Damage(9999)
	assert.Equal(t, 0, s.Hull)
	s.Repair(2)
	assert.Equal(t, 2, s.Hull)

	s.DrainFuel(30.5)
	assert.InDelta(t, 69.5, s.Fuel, 1e-9)
	s.DrainFuel(1e9)
	assert.Equal(t, 0.0, s.Fuel)
	s.Refuel(250)
	assert.Equal(t, 100.0, s.Fuel)

	// Arbitrary interleaving never escapes the bounds.
	for i := 0; i < 50; i++ {
		s.Damage(i % 7)
		s.Repair(i % 5)
		s.DrainFuel(float64(i) * 3.3)
		s.Refuel(float64(i) * 2.1)
		assert.GreaterOrEqual(t, s.Hull, 0)
		assert.LessOrEqual(t, s.Hull, s.MaxHull)
		assert.GreaterOrEqual(t, s.Fuel, 0.0)
		assert.LessOrEqual(t, s.Fuel, s.MaxFuel)
	}
}

func TestDamageReportsDestruction(t *testing.T) {
	s := testShip()

	assert.False(t, s.Damage(9))
	assert.True(t, s.Damage(1))
	assert.Equal(t, 0, s.Hull)
}

func TestSpendScrapAllOrNothing(t *testing.T) {
	s := testShip()
	s.AddScrap(5)

	assert.False(t, s.SpendScrap(6))
	assert.Equal(t, 5, s.Scrap)

	assert.True(t, s.SpendScrap(5))
	assert.Equal(t, 0, s.Scrap)

	assert.False(t, s.SpendScrap(1))
}

func TestFragmentsNoDuplicatesNoOverflow(t *testing.T) {
	s := testShip()

	assert.True(t, s.AddFragment(3))
	assert.False(t, s.AddFragment(3), "re-acquiring a held id is a no-op")
	assert.Equal(t, 1, s.FragmentCount())

	assert.False(t, s.AddFragment(-1))
	assert.False(t, s.AddFragment(10))
	assert.Equal(t, 1, s.FragmentCount())

	for id := 0; id < 10; id++ {
		s.AddFragment(id)
	}
	assert.Equal(t, 10, s.FragmentCount())
	assert.Empty(t, s.MissingFragments())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, s.FragmentIDs())
}

func TestMissingFragments(t *testing.T) {
	s := testShip()
	for id := 0; id < 10; id++ {
		if id != 6 {
			s.AddFragment(id)
		}
	}
	assert.Equal(t, []int{6}, s.MissingFragments())
}

func TestCraftLegendaryRequiresFullSet(t *testing.T) {
	s := testShip()

	for id := 0; id < 9; id++ {
		s.AddFragment(id)
	}
	assert.False(t, s.CraftLegendary())
	assert.False(t, s.Legendary)

	s.AddFragment(9)
	assert.True(t, s.CraftLegendary())
	assert.True(t, s.Legendary)

	// One-way: crafting again is a no-op and the flag never reverts.
	assert.False(t, s.CraftLegendary())
	assert.True(t, s.Legendary)
}

func TestResetRunLocalKeepsProgression(t *testing.T) {
	s := testShip()
	s.Damage(8)
	s.DrainFuel(77)
	s.AddScrap(42)
	s.AddFragment(1)
	s.AddFragment(4)

	s.ResetRunLocal()

	assert.Equal(t, 10, s.Hull)
	assert.Equal(t, 100.0, s.Fuel)
	assert.Equal(t, 0, s.Scrap)
	require.Equal(t, 2, s.FragmentCount())
	assert.Equal(t, []int{1, 4}, s.FragmentIDs())
}
