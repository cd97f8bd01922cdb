package playback

import (
	"time"

	"github.com/llehouerou/comrad/internal/playlist"
)

// Resume is the part of a session that survives a restart.
type Resume struct {
	NowPlaying string
	// Position is the index of NowPlaying in Queue. It is checked on
	// Restore and looked up again when it does not match.
	Position int
	Queue    *playlist.Playlist
	Sorted   *playlist.Playlist
	Elapsed  time.Duration
	Repeat   RepeatMode
	Shuffle  bool
}

// Export captures the session for persistence.
func (s *Session) Export() Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Resume{
		NowPlaying: s.nowPlaying,
		Position:   s.pos,
		Queue:      s.navList.Clone(),
		Sorted:     s.sortedList.Clone(),
		Elapsed:    s.effectiveLocked(),
		Repeat:     s.repeat,
		Shuffle:    s.shuffled,
	}
}

// Restore loads a saved session into a stopped one. With a position to
// resume from the session comes back Paused, so the next Play continues
// there; otherwise it stays Stopped. It is ignored while playing.
func (s *Session) Restore(r Resume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePlaying {
		return
	}

	s.nowPlaying = r.NowPlaying
	s.navList = r.Queue.Clone()
	s.sortedList = r.Sorted.Clone()
	if s.sortedList.IsEmpty() {
		s.sortedList = r.Queue.Clone()
	}
	s.order = nil
	s.pos = r.Position
	if s.nowPlaying == "" || s.navList.Source(s.pos) != s.nowPlaying {
		s.pos = s.navList.IndexOf(s.nowPlaying)
	}
	s.repeat = r.Repeat
	s.shuffled = r.Shuffle
	// A restored shuffled queue is kept as is
	s.navShuffled = r.Shuffle && !s.navList.IsEmpty()

	s.elapsed = max(r.Elapsed, 0)
	s.startOffset = s.elapsed
	s.anchored = false
	s.startFlag = false
	s.stopFlag = false

	if s.nowPlaying != "" && s.elapsed > 0 {
		s.setStateLocked(StatePaused)
	} else {
		s.setStateLocked(StateStopped)
	}
	s.emitModeLocked()
	s.emitQueueLocked()
}
