package playback

import "time"

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when output is opened on a different source
// than the last one, and when the now-playing pointer is cleared.
//
// Pausing, resuming the same source and seeking do not emit it, so a
// subscriber can hang per-track side effects (notifications, MPRIS
// metadata) on it directly.
type TrackChange struct {
	Previous string
	Current  string
}

// QueueChange is emitted when the navigation list is replaced or
// reordered.
type QueueChange struct {
	Sources []string
	Index   int
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	RepeatMode RepeatMode
	Shuffle    bool
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
}

// ErrorEvent reports a backend failure that the session swallowed.
type ErrorEvent struct {
	Operation string // e.g., "play", "seek"
	Path      string
	Err       error
}
