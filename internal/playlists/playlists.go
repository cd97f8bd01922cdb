// Package playlists manages the user's playlist collection. Every mutation
// is written back to the store as a whole batch and recorded for undo.
package playlists

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/llehouerou/comrad/internal/playlist"
)

const historySize = 50

// ErrNotFound is returned for ids that name no playlist.
var ErrNotFound = errors.New("playlist not found")

// Store persists the collection.
type Store interface {
	LoadPlaylists() ([]*playlist.Playlist, error)
	SavePlaylists(lists []*playlist.Playlist) error
}

// Manager holds the collection in memory. Playlists handed out are copies;
// changes go through the Manager so they reach the store.
type Manager struct {
	mu      sync.Mutex
	store   Store
	lists   []*playlist.Playlist
	history *playlist.History
}

// Load reads the collection from store. When reading fails the manager
// starts empty and the error is returned alongside it.
func Load(store Store) (*Manager, error) {
	m := &Manager{
		store:   store,
		history: playlist.NewHistory(historySize),
	}

	lists, err := store.LoadPlaylists()
	for _, p := range lists {
		if p != nil {
			m.lists = append(m.lists, p.Clone())
		}
	}
	m.history.Push(m.lists)
	if err != nil {
		return m, errors.Wrap(err, "load playlists")
	}
	return m, nil
}

// All returns copies of every playlist in collection order.
func (m *Manager) All() []*playlist.Playlist {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*playlist.Playlist, len(m.lists))
	for i, p := range m.lists {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of playlists.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.lists)
}

// Get returns a copy of the playlist with the given id.
func (m *Manager) Get(id string) (*playlist.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(id)
	if i < 0 {
		return nil, errors.Wrapf(ErrNotFound, "id %s", id)
	}
	return m.lists[i].Clone(), nil
}

// Create adds an empty playlist under a fresh id.
func (m *Manager) Create(name string) (*playlist.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := playlist.FromRecord(m.freshIDLocked(), name, nil)
	m.lists = append(m.lists, p)
	return p.Clone(), m.commitLocked()
}

// Import adds a copy of p, typically a directory scan, under a fresh id.
func (m *Manager) Import(p *playlist.Playlist) (*playlist.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	imported := playlist.FromRecord(m.freshIDLocked(), p.Name(), p.Sources())
	m.lists = append(m.lists, imported)
	return imported.Clone(), m.commitLocked()
}

// Save stores a copy of p, replacing the playlist with the same id or
// appending it when the id is new.
func (m *Manager) Save(p *playlist.Playlist) error {
	if p == nil || p.ID() == "" {
		return errors.New("save playlist: missing id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexLocked(p.ID()); i >= 0 {
		m.lists[i] = p.Clone()
	} else {
		m.lists = append(m.lists, p.Clone())
	}
	return m.commitLocked()
}

// Rename changes the name of a playlist, keeping its id.
func (m *Manager) Rename(id, name string) error {
	return m.update(id, func(p *playlist.Playlist) bool {
		if p.Name() == name {
			return false
		}
		p.Rename(name)
		return true
	})
}

// AddSources appends sources to a playlist.
func (m *Manager) AddSources(id string, sources ...string) error {
	return m.update(id, func(p *playlist.Playlist) bool {
		p.Add(sources...)
		return len(sources) > 0
	})
}

// RemoveSource removes every occurrence of source from a playlist and
// returns how many were removed.
func (m *Manager) RemoveSource(id, source string) (int, error) {
	var n int
	err := m.update(id, func(p *playlist.Playlist) bool {
		n = p.Remove(source)
		return n > 0
	})
	return n, err
}

// RemoveAt removes the source at index from a playlist.
func (m *Manager) RemoveAt(id string, index int) error {
	return m.update(id, func(p *playlist.Playlist) bool {
		return p.RemoveAt(index)
	})
}

// Move moves a source of a playlist from one index to another.
func (m *Manager) Move(id string, from, to int) error {
	return m.update(id, func(p *playlist.Playlist) bool {
		return p.Move(from, to)
	})
}

// Delete removes a playlist.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(id)
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "id %s", id)
	}
	m.lists = append(m.lists[:i], m.lists[i+1:]...)
	return m.commitLocked()
}

// Undo reverts the last mutation. It reports false when there is nothing
// to undo.
func (m *Manager) Undo() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lists, ok := m.history.Undo()
	if !ok {
		return false, nil
	}
	m.lists = lists
	return true, m.persistLocked()
}

// Redo reapplies the last undone mutation.
func (m *Manager) Redo() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lists, ok := m.history.Redo()
	if !ok {
		return false, nil
	}
	m.lists = lists
	return true, m.persistLocked()
}

// CanUndo reports whether Undo would change anything.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history.CanRedo()
}

func (m *Manager) update(id string, fn func(*playlist.Playlist) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexLocked(id)
	if i < 0 {
		return errors.Wrapf(ErrNotFound, "id %s", id)
	}
	if !fn(m.lists[i]) {
		return nil
	}
	return m.commitLocked()
}

// commitLocked records the current collection and writes it out. The
// in-memory change stands even when the write fails.
func (m *Manager) commitLocked() error {
	m.history.Push(m.lists)
	return m.persistLocked()
}

func (m *Manager) persistLocked() error {
	if err := m.store.SavePlaylists(m.lists); err != nil {
		return errors.Wrap(err, "save playlists")
	}
	return nil
}

func (m *Manager) indexLocked(id string) int {
	for i, p := range m.lists {
		if p.ID() == id {
			return i
		}
	}
	return -1
}

func (m *Manager) freshIDLocked() string {
	for {
		id := playlist.NewID()
		if m.indexLocked(id) < 0 {
			return id
		}
	}
}
