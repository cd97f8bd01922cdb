package playback

import (
	"time"

	"github.com/llehouerou/comrad/internal/playlist"
	"github.com/llehouerou/comrad/internal/tags"
)

// Metadata resolves tags and duration for a source.
type Metadata interface {
	Lookup(path string) tags.Info
}

// Service defines the playback session contract seen by the
// presentation layer and the desktop integrations.
type Service interface {
	// Playback control
	Play()
	Stop()
	Eject()
	SkipForward()
	SkipBackward()
	Seek(pos time.Duration)
	SetVolume(level float64)

	// Selection (lists are copied, never aliased)
	Select(source string, list *playlist.Playlist) bool
	PlaySource(source string, list *playlist.Playlist)
	PlayPlaylist(list *playlist.Playlist, selected string)
	PlayIndex(list *playlist.Playlist, index int)

	// Mode control
	ToggleShuffle() bool
	SetShuffle(on bool)
	CycleRepeat() RepeatMode
	SetRepeat(mode RepeatMode)

	// Render tick
	Tick()

	// State queries
	State() State
	NowPlaying() string
	Elapsed() time.Duration
	Total() time.Duration
	Snapshot() Snapshot

	// Persistence
	Export() Resume
	Restore(r Resume)

	// Subscribe returns a new event subscription.
	Subscribe() *Subscription
	// Apply runs a remote request.
	Apply(req Request)
	// Close closes all subscriptions.
	Close() error
}

// Verify Session implements Service at compile time.
var _ Service = (*Session)(nil)
