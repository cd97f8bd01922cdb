package playback

import (
	"time"

	"github.com/llehouerou/comrad/internal/playlist"
)

// Play toggles playback. From Stopped or Paused it opens the current
// source at the elapsed position; from Playing it pauses. The logical
// state flips even when the audio device is busy; the next Tick retries
// the device command.
//
// Play does nothing while no source is selected.
func (s *Session) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playLocked()
	s.flushLocked()
}

func (s *Session) playLocked() {
	s.applyShuffleLocked()
	if s.nowPlaying == "" {
		return
	}

	if s.state == StatePlaying {
		s.setStateLocked(StatePaused)
		s.startFlag = false
		s.stopFlag = true
		s.queueLocked(command{kind: cmdHalt})
		return
	}

	offset := s.effectiveLocked()
	s.setStateLocked(StatePlaying)
	s.startFlag = true
	s.stopFlag = false
	s.queueLocked(command{kind: cmdOpen, path: s.nowPlaying, offset: offset})
	s.emitTrackLocked(s.nowPlaying)
}

// Stop zeroes all timers, clears the clock anchor and silences the
// device. Calling it repeatedly is harmless.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.flushLocked()
}

func (s *Session) stopLocked() {
	s.setStateLocked(StateStopped)
	s.elapsed = 0
	s.startOffset = 0
	s.total = 0
	s.anchored = false
	s.startFlag = false
	s.stopFlag = true
	s.queueLocked(command{kind: cmdHalt})
}

// Eject clears the now-playing pointer and the navigation lists, then
// stops.
func (s *Session) Eject() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowPlaying = ""
	s.pos = -1
	s.navList = nil
	s.sortedList = nil
	s.navShuffled = false
	s.order = nil
	s.stopLocked()
	s.flushLocked()
	s.emitTrackLocked("")
	s.emitQueueLocked()
}

// SkipForward stops and moves to the next source of the navigation list,
// starting it. At the end of the list it wraps under RepeatAll and stays
// stopped otherwise.
func (s *Session) SkipForward() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipForwardLocked()
	s.flushLocked()
}

func (s *Session) skipForwardLocked() {
	s.stopLocked()
	next, ok := NextIndex(s.navList.Len(), s.pos, s.repeat)
	if !ok {
		return
	}
	s.moveToLocked(next)
	s.playLocked()
}

// SkipBackward stops and moves to the previous source when the current
// one has played for no longer than the skip-back threshold. Otherwise
// the pointer stays and the current source restarts from zero. Playback
// resumes if it was running.
func (s *Session) SkipBackward() {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Captured before stopLocked zeroes it
	elapsed := s.effectiveLocked()
	wasPlaying := s.state == StatePlaying

	s.stopLocked()
	if prev, ok := PrevIndex(s.pos, elapsed, s.skipBack); ok {
		s.moveToLocked(prev)
	}
	if wasPlaying {
		s.playLocked()
	}
	s.flushLocked()
}

// Seek moves the elapsed position. While playing, the device is
// repositioned too; otherwise the position is used by the next Play. An
// open still waiting for the device starts at pos instead.
func (s *Session) Seek(pos time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nowPlaying == "" {
		return
	}
	pos = max(pos, 0)
	if s.total > 0 {
		pos = min(pos, s.total)
	}

	s.elapsed = pos
	s.startOffset = pos
	if s.anchored {
		s.anchor = s.now()
	}
	if s.state == StatePlaying {
		if s.pending != nil && s.pending.kind == cmdOpen {
			s.pending.offset = pos
		} else {
			s.queueLocked(command{kind: cmdSeek, path: s.nowPlaying, offset: pos})
		}
		s.flushLocked()
	}
	s.emit(PositionChange{Position: pos})
}

// SetVolume records a 0.0-1.0 level and applies it as soon as the device
// is free.
func (s *Session) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = min(max(level, 0), 1)
	s.volumeDirty = true
	s.applyVolumeLocked()
}

// Volume returns the requested volume level.
func (s *Session) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Select points the session at source within list without starting
// playback, so the next Play opens it from the start. It is ignored while
// playing and reports whether it applied.
func (s *Session) Select(source string, list *playlist.Playlist) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StatePlaying {
		return false
	}
	if s.state == StatePaused {
		s.stopLocked()
		s.flushLocked()
	}
	s.nowPlaying = source
	s.pos = list.IndexOf(source)
	s.setListsLocked(list)
	return true
}

// PlaySource stops, adopts list as the navigation list and plays source.
func (s *Session) PlaySource(source string, list *playlist.Playlist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.nowPlaying = source
	s.pos = list.IndexOf(source)
	s.setListsLocked(list)
	s.playLocked()
	s.flushLocked()
}

// PlayPlaylist stops, adopts list and plays selected if list contains it,
// its first entry otherwise.
func (s *Session) PlayPlaylist(list *playlist.Playlist, selected string) {
	s.PlayIndex(list, max(list.IndexOf(selected), 0))
}

// PlayIndex stops, adopts list and plays its entry at index, the first
// one when index is out of range. Unlike PlayPlaylist it tells apart
// entries that hold the same source.
func (s *Session) PlayIndex(list *playlist.Playlist, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	switch {
	case list.IsEmpty():
		index = -1
	case index < 0 || index >= list.Len():
		index = 0
	}
	s.pos = index
	s.nowPlaying = list.Source(index)
	s.setListsLocked(list)
	s.playLocked()
	s.flushLocked()
}

func (s *Session) setListsLocked(list *playlist.Playlist) {
	s.navList = list.Clone()
	s.sortedList = list.Clone()
	s.navShuffled = false
	s.order = nil
	s.emitQueueLocked()
}

// moveToLocked points the session at navList entry pos.
func (s *Session) moveToLocked(pos int) {
	s.pos = pos
	s.nowPlaying = s.navList.Source(pos)
}

// ToggleShuffle flips shuffle and reorders the navigation list
// accordingly. It returns the new setting.
func (s *Session) ToggleShuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shuffled = !s.shuffled
	s.applyShuffleLocked()
	s.emitModeLocked()
	return s.shuffled
}

// SetShuffle sets shuffle explicitly.
func (s *Session) SetShuffle(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shuffled == on {
		return
	}
	s.shuffled = on
	s.applyShuffleLocked()
	s.emitModeLocked()
}

// CycleRepeat advances Off -> All -> One -> Off and returns the new mode.
func (s *Session) CycleRepeat() RepeatMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repeat = s.repeat.Next()
	s.emitModeLocked()
	return s.repeat
}

// SetRepeat sets the repeat mode explicitly.
func (s *Session) SetRepeat(mode RepeatMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.repeat == mode {
		return
	}
	s.repeat = mode
	s.emitModeLocked()
}

// applyShuffleLocked makes the navigation list agree with the shuffle
// flag. A list is shuffled once when it is adopted; turning shuffle off
// restores the sorted baseline when there is one.
func (s *Session) applyShuffleLocked() {
	if s.shuffled {
		if s.navShuffled || s.navList.IsEmpty() {
			return
		}
		perm := Permutation(s.navList.Len(), s.rng)
		sources := make([]string, len(perm))
		pos := -1
		for i, from := range perm {
			sources[i] = s.navList.Source(from)
			if from == s.pos {
				pos = i
			}
		}
		s.navList = s.navList.WithSources(sources)
		s.pos = pos
		s.order = perm
		s.navShuffled = true
		s.emitQueueLocked()
		return
	}

	wasShuffled := s.navShuffled
	s.navShuffled = false
	if !s.sortedList.IsEmpty() {
		s.pos = s.sortedPosLocked()
		s.navList = s.sortedList.Clone()
	}
	s.order = nil
	if wasShuffled {
		s.emitQueueLocked()
	}
}

// sortedPosLocked finds the current entry in sortedList. Without a
// shuffle order, as after a restore, it falls back to the first entry
// holding the current source.
func (s *Session) sortedPosLocked() int {
	if s.pos >= 0 && s.pos < len(s.order) {
		if i := s.order[s.pos]; s.sortedList.Source(i) == s.nowPlaying {
			return i
		}
	}
	if s.order == nil && s.pos >= 0 && s.sortedList.Source(s.pos) == s.nowPlaying {
		return s.pos
	}
	return s.sortedList.IndexOf(s.nowPlaying)
}
