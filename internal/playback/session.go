// Package playback implements the playback session: the state machine
// that tracks what is playing, measures elapsed time against the wall
// clock and drives the audio device once per render tick.
package playback

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/llehouerou/comrad/internal/player"
	"github.com/llehouerou/comrad/internal/playlist"
	"github.com/llehouerou/comrad/internal/tags"
)

// Config holds the collaborators of a Session.
type Config struct {
	Player   player.Interface
	Metadata Metadata
	// Now defaults to time.Now.
	Now func() time.Time
	// Rand drives shuffling. Defaults to a time-seeded generator.
	Rand *rand.Rand
	// SkipBackThreshold defaults to DefaultSkipBackThreshold.
	SkipBackThreshold time.Duration
}

// Session is the single playback context of the process. All methods are
// safe for concurrent use, but the session is meant to be driven from one
// render loop calling Tick.
type Session struct {
	mu sync.Mutex

	player   player.Interface
	meta     Metadata
	now      func() time.Time
	rng      *rand.Rand
	skipBack time.Duration

	state      State
	repeat     RepeatMode
	shuffled   bool
	nowPlaying string
	// pos is the index of nowPlaying in navList, -1 when it is not in
	// the list. A list may hold the same source twice.
	pos int

	// navList drives skip forward/backward; sortedList is the unshuffled
	// baseline. Both are private copies. While navList is shuffled, order
	// maps its positions to sortedList ones.
	navList     *playlist.Playlist
	sortedList  *playlist.Playlist
	navShuffled bool
	order       []int

	elapsed     time.Duration
	startOffset time.Duration
	total       time.Duration
	anchor      time.Time
	anchored    bool

	// Set by state changes, consumed by the clock reconciliation of the
	// next Tick.
	startFlag bool
	stopFlag  bool

	pending     *command
	volume      float64
	volumeDirty bool
	lastOpened  string

	subs   []*Subscription
	subsMu sync.RWMutex
	closed bool
}

// New creates a stopped session with nothing selected.
func New(cfg Config) *Session {
	s := &Session{
		player:   cfg.Player,
		meta:     cfg.Metadata,
		now:      cfg.Now,
		rng:      cfg.Rand,
		skipBack: cfg.SkipBackThreshold,
		pos:      -1,
		volume:   1,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.rng == nil {
		s.rng = NewRand(0)
	}
	if s.skipBack <= 0 {
		s.skipBack = DefaultSkipBackThreshold
	}
	if s.meta == nil {
		s.meta = tags.Static{}
	}
	return s
}

// State returns the logical playback state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// NowPlaying returns the current source, or "" when nothing is selected.
func (s *Session) NowPlaying() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nowPlaying
}

// Elapsed returns the effective elapsed time of the current source.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectiveLocked()
}

// Total returns the duration measured on the last tick; zero means unknown.
func (s *Session) Total() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Snapshot is a consistent, copied view of the session.
type Snapshot struct {
	State      State
	Repeat     RepeatMode
	Shuffle    bool
	NowPlaying string
	Info       tags.Info
	Elapsed    time.Duration
	Total      time.Duration
	Volume     float64
	Queue      []string
	// Position is the index of NowPlaying in Queue, -1 when absent.
	Position  int
	QueueName string
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		State:      s.state,
		Repeat:     s.repeat,
		Shuffle:    s.shuffled,
		NowPlaying: s.nowPlaying,
		Elapsed:    s.effectiveLocked(),
		Total:      s.total,
		Volume:     s.volume,
		Queue:      s.navList.Sources(),
		Position:   s.pos,
		QueueName:  s.navList.Name(),
	}
	if s.nowPlaying != "" {
		snap.Info = s.meta.Lookup(s.nowPlaying)
	}
	return snap
}

// Subscribe creates a new event subscription.
func (s *Session) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close closes every subscription. The audio device is left to its owner.
func (s *Session) Close() error {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	return nil
}

// effectiveLocked is the elapsed time: the frozen value while no clock
// anchor is set, otherwise time since the anchor plus the start offset.
func (s *Session) effectiveLocked() time.Duration {
	if !s.anchored {
		return s.elapsed
	}
	return s.now().Sub(s.anchor) + s.startOffset
}

func (s *Session) setStateLocked(next State) {
	prev := s.state
	s.state = next
	if prev == next {
		return
	}
	s.emit(StateChange{Previous: prev, Current: next})
}

func (s *Session) emitModeLocked() {
	s.emit(ModeChange{RepeatMode: s.repeat, Shuffle: s.shuffled})
}

func (s *Session) emitQueueLocked() {
	s.emit(QueueChange{Sources: s.navList.Sources(), Index: s.pos})
}

func (s *Session) emitTrackLocked(current string) {
	if current == s.lastOpened {
		return
	}
	e := TrackChange{Previous: s.lastOpened, Current: current}
	s.lastOpened = current
	s.emit(e)
}

func (s *Session) emit(e any) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		sub.deliver(e)
	}
}
