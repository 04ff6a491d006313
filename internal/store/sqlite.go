package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/Styt0/airwave-aggregator/internal/model"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
}

var _ Store = (*DB)(nil)

// New opens or creates an SQLite database at the given path.
func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Enable WAL mode for better concurrency.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set wal mode: %w", err)
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

// BackendType returns the storage backend name.
func (db *DB) BackendType() string {
	return "SQLite"
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

func (db *DB) get(key string) (string, bool, error) {
	var val string
	err := db.conn.QueryRow("SELECT value FROM entries WHERE key = ?", key).Scan(&val)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (db *DB) set(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT INTO entries (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = ?",
		key, value, value)
	return err
}

// Favorites returns the persisted favorite id list.
func (db *DB) Favorites() ([]string, error) {
	raw, ok, err := db.get(keyFavorites)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	return decodeFavorites(raw), nil
}

// ToggleFavorite toggles id membership and persists the resulting list.
func (db *DB) ToggleFavorite(id string) ([]string, error) {
	ids, err := db.Favorites()
	if err != nil {
		return nil, err
	}
	ids = toggled(ids, id)
	raw, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}
	if err := db.set(keyFavorites, string(raw)); err != nil {
		return nil, err
	}
	return ids, nil
}

// CustomRecords returns the persisted user-added records.
func (db *DB) CustomRecords() ([]model.FrequencyRecord, error) {
	raw, ok, err := db.get(keyCustomRecords)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.FrequencyRecord{}, nil
	}
	return decodeCustomRecords(raw), nil
}

// AddCustomRecord appends rec to the user-added collection and persists it.
func (db *DB) AddCustomRecord(rec model.FrequencyRecord) error {
	recs, err := db.CustomRecords()
	if err != nil {
		return err
	}
	recs = append(recs, rec)
	raw, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return db.set(keyCustomRecords, string(raw))
}

// decodeFavorites parses a persisted id list, failing soft to empty.
func decodeFavorites(raw string) []string {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.WithError(err).WithField("key", keyFavorites).Warning("malformed favorites entry, treating as empty")
		return []string{}
	}
	return ids
}

// decodeCustomRecords parses a persisted record list, failing soft to empty.
func decodeCustomRecords(raw string) []model.FrequencyRecord {
	var recs []model.FrequencyRecord
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		log.WithError(err).WithField("key", keyCustomRecords).Warning("malformed custom records entry, treating as empty")
		return []model.FrequencyRecord{}
	}
	return recs
}
