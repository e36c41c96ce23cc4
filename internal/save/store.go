package save

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const snapshotKey = "run_state"

// DB stores snapshots as a JSON blob in a single-row key/value table.
type DB struct {
	conn *sqlx.DB
}

var _ Store = (*DB)(nil)

// Open opens or creates the SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS run_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Save writes the snapshot, replacing any previous one.
func (db *DB) Save(snap Snapshot) error {
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = db.conn.Exec(
		"INSERT OR REPLACE INTO run_meta (key, value) VALUES (?, ?)",
		snapshotKey, string(blob),
	)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Load restores the last saved snapshot. A missing row or a blob that fails to
// decode yields ok=false, never an error; the caller starts fresh.
func (db *DB) Load() (Snapshot, bool) {
	var blob string
	if err := db.conn.Get(&blob, "SELECT value FROM run_meta WHERE key = ?", snapshotKey); err != nil {
		return Snapshot{}, false
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(blob), &snap); err != nil {
		return Snapshot{}, false
	}
	return snap, true
}
