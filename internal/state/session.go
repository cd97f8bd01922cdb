package state

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"

	dbutil "github.com/llehouerou/comrad/internal/db"
)

const (
	listQueue  = "queue"
	listSorted = "sorted"
)

// Session is the saved listening context.
type Session struct {
	NowPlaying string
	// Position is the index of NowPlaying in Queue, which may hold the
	// same path more than once.
	Position   int
	Elapsed    time.Duration
	RepeatMode int
	Shuffle    bool

	// QueueID and QueueName identify the playlist the queue was built
	// from. Queue is the navigation order, Sorted the unshuffled one.
	QueueID   string
	QueueName string
	Queue     []string
	Sorted    []string

	// SelectedPlaylistID is the playlist last open in the browser.
	SelectedPlaylistID string
}

func getSession(ctx context.Context, db *sql.DB) (*Session, error) {
	row := db.QueryRowContext(ctx, `
		SELECT now_playing, position, elapsed_ms, repeat_mode, shuffle, queue_id, queue_name, selected_playlist_id
		FROM session_state WHERE id = 1
	`)

	var s Session
	var elapsedMS int64
	var queueID, queueName, selectedID sql.NullString
	err := row.Scan(&s.NowPlaying, &s.Position, &elapsedMS, &s.RepeatMode, &s.Shuffle, &queueID, &queueName, &selectedID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	s.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	s.QueueID = dbutil.NullStringValue(queueID)
	s.QueueName = dbutil.NullStringValue(queueName)
	s.SelectedPlaylistID = dbutil.NullStringValue(selectedID)

	rows, err := db.QueryContext(ctx, `
		SELECT list, path FROM session_tracks ORDER BY list, position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var list, path string
		if err := rows.Scan(&list, &path); err != nil {
			return nil, err
		}
		switch list {
		case listQueue:
			s.Queue = append(s.Queue, path)
		case listSorted:
			s.Sorted = append(s.Sorted, path)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &s, nil
}

func saveSession(ctx context.Context, sqlDB *sql.DB, s Session) error {
	return dbutil.WithTx(ctx, sqlDB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_tracks`); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO session_state (id, now_playing, position, elapsed_ms, repeat_mode, shuffle,
			                           queue_id, queue_name, selected_playlist_id, saved_at)
			VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				now_playing = excluded.now_playing,
				position = excluded.position,
				elapsed_ms = excluded.elapsed_ms,
				repeat_mode = excluded.repeat_mode,
				shuffle = excluded.shuffle,
				queue_id = excluded.queue_id,
				queue_name = excluded.queue_name,
				selected_playlist_id = excluded.selected_playlist_id,
				saved_at = excluded.saved_at
		`, s.NowPlaying, s.Position, s.Elapsed.Milliseconds(), s.RepeatMode, s.Shuffle,
			nullable(s.QueueID), nullable(s.QueueName), nullable(s.SelectedPlaylistID), time.Now().Unix())
		if err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO session_tracks (list, position, path) VALUES (?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, l := range []struct {
			name  string
			paths []string
		}{{listQueue, s.Queue}, {listSorted, s.Sorted}} {
			for i, p := range l.paths {
				if _, err := stmt.ExecContext(ctx, l.name, i, p); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
