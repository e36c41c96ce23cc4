package save

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadEmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	_, ok := db.Load()
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)

	snap := Snapshot{
		Ship: ShipState{
			Hull: 7, MaxHull: 10, Scrap: 23,
			Fuel: 41.5, MaxFuel: 100,
			Legendary: true,
			Fragments: []int{0, 3, 9},
		},
		Player: PlayerState{X: 12.625, Y: 30.25},
		POIs: []POIState{
			{X: 24, Y: 10, Kind: "hub"},
			{X: 5, Y: 39, Kind: "wreck"},
		},
		RunID:       "run-abc",
		TerrainSeed: 991,
	}
	require.NoError(t, db.Save(snap))

	got, ok := db.Load()
	require.True(t, ok)
	assert.Equal(t, snap, got)
}

func TestSaveOverwritesPrevious(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Save(Snapshot{Ship: ShipState{Scrap: 1}}))
	require.NoError(t, db.Save(Snapshot{Ship: ShipState{Scrap: 2}}))

	got, ok := db.Load()
	require.True(t, ok)
	assert.Equal(t, 2, got.Ship.Scrap)
}

func TestLoadMalformedBlobIsFreshStart(t *testing.T) {
	db := openTestDB(t)

	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO run_meta (key, value) VALUES (?, ?)",
		snapshotKey, "{not json",
	)
	require.NoError(t, err)

	_, ok := db.Load()
	assert.False(t, ok)
}
