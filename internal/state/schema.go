package state

import (
	"database/sql"

	"github.com/cockroachdb/errors"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	version, err := schemaVersion(db)
	if err != nil {
		return errors.Wrap(err, "read schema version")
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS session_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			now_playing TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			repeat_mode INTEGER NOT NULL DEFAULT 0,
			shuffle INTEGER NOT NULL DEFAULT 0,
			queue_id TEXT,
			queue_name TEXT,
			selected_playlist_id TEXT,
			saved_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS session_tracks (
			list TEXT NOT NULL CHECK (list IN ('queue', 'sorted')),
			position INTEGER NOT NULL,
			path TEXT NOT NULL,
			PRIMARY KEY (list, position)
		);
	`)
	if err != nil {
		return err
	}

	if err := migrate(db, version); err != nil {
		return errors.Wrapf(err, "migrate from version %d", version)
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}

// schemaVersion returns 0 on an empty database.
func schemaVersion(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'schema_version'
	`).Scan(&n)
	if err != nil || n == 0 {
		return 0, err
	}

	var version int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	return version, err
}

// migrate upgrades tables created by an older version. Version 0 means the
// tables were just created.
func migrate(db *sql.DB, from int) error {
	if from == 1 {
		if _, err := db.Exec(`
			ALTER TABLE session_state ADD COLUMN position INTEGER NOT NULL DEFAULT 0
		`); err != nil {
			return err
		}
	}
	return nil
}
