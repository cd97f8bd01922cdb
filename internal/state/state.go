// Package state keeps what is needed to resume the last listening session
// in a SQLite database.
package state

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	dbutil "github.com/llehouerou/comrad/internal/db"
)

const (
	appName      = "comrad"
	dbFileName   = "comrad.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Session
	inflight  sync.WaitGroup

	save func(ctx context.Context, db *sql.DB, s Session) error
}

// Open opens the database in dir, or in the per-user data directory when
// dir is empty.
func Open(dir string) (*Manager, error) {
	dbPath, err := getDBPath(dir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, errors.Wrap(err, "create state dir")
	}

	return open(dbPath)
}

func open(dsn string) (*Manager, error) {
	db, err := dbutil.Open(dsn)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "init schema")
	}

	return &Manager{db: db, save: saveSession}, nil
}

// Close waits for a running save, flushes a pending one and closes the
// database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	m.stopTimerLocked()
	m.saveMu.Unlock()

	m.inflight.Wait()

	m.saveMu.Lock()
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		if err := m.save(context.Background(), m.db, *pending); err != nil {
			log.Warn().Err(err).Msg("flush session state")
		}
	}

	return m.db.Close()
}

// GetSession returns the last saved session, or nil when none was saved.
func (m *Manager) GetSession() (*Session, error) {
	return getSession(context.Background(), m.db)
}

// SaveSession schedules state to be written. Calls within the debounce
// window replace each other; only the last one is written.
func (m *Manager) SaveSession(state Session) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &state

	m.stopTimerLocked()

	// Done runs either in the callback or when the timer is stopped
	// before firing.
	m.inflight.Add(1)
	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		defer m.inflight.Done()

		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			if err := m.save(context.Background(), m.db, *pending); err != nil {
				log.Warn().Err(err).Msg("save session state")
			}
		}
	})
}

func (m *Manager) stopTimerLocked() {
	if m.saveTimer != nil && m.saveTimer.Stop() {
		m.inflight.Done()
	}
	m.saveTimer = nil
}

func getDBPath(dir string) (string, error) {
	if dir != "" {
		return filepath.Join(dir, dbFileName), nil
	}
	p, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	return p, errors.Wrap(err, "resolve state path")
}
