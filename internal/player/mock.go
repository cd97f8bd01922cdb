package player

import (
	"sync"
	"time"
)

// Mock is a test double for Player. It records every device call and can
// simulate a busy device or failing media.
type Mock struct {
	mu sync.Mutex

	busy    bool
	playErr error
	seekErr error

	attempts int
	plays    []string
	pauses   int
	seeks    []time.Duration
	volumes  []float64
	current  string
	closed   bool
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

// Try runs fn unless the mock is marked busy.
func (m *Mock) Try(fn func(Device)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts++
	if m.busy {
		return false
	}
	fn(mockDevice{m})
	return true
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.current = ""
	return nil
}

// SetBusy makes subsequent Try calls fail (or succeed again).
func (m *Mock) SetBusy(busy bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = busy
}

// SetPlayError makes Play fail with err.
func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// SetSeekError makes Seek fail with err.
func (m *Mock) SetSeekError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekErr = err
}

// PlayCalls returns the paths passed to Play, in order.
func (m *Mock) PlayCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.plays...)
}

// SeekCalls returns the positions passed to Seek, in order.
func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seeks...)
}

// VolumeCalls returns the levels passed to SetVolume, in order.
func (m *Mock) VolumeCalls() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.volumes...)
}

// PauseCount returns how many times Pause ran.
func (m *Mock) PauseCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauses
}

// Attempts returns how many times Try was called.
func (m *Mock) Attempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}

// Current returns the path being output, or "" when idle.
func (m *Mock) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// mockDevice mutates the Mock; Try already holds its lock.
type mockDevice struct{ m *Mock }

func (d mockDevice) Play(path string) error {
	d.m.plays = append(d.m.plays, path)
	if d.m.playErr != nil {
		d.m.current = ""
		return &MediaError{Path: path, Err: d.m.playErr}
	}
	d.m.current = path
	return nil
}

func (d mockDevice) Pause() {
	d.m.pauses++
	d.m.current = ""
}

func (d mockDevice) Seek(pos time.Duration) error {
	d.m.seeks = append(d.m.seeks, pos)
	if d.m.current == "" {
		return ErrNoStream
	}
	return d.m.seekErr
}

func (d mockDevice) SetVolume(level float64) {
	d.m.volumes = append(d.m.volumes, clampLevel(level))
}
