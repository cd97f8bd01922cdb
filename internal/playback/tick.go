package playback

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/comrad/internal/player"
)

type commandKind int

const (
	cmdHalt commandKind = iota
	cmdOpen
	cmdSeek
)

// command is a device operation. Operations only queue commands; the
// latest one wins and is run by flushLocked, so the device sees at most
// one command per operation or tick. A command that finds the device busy
// stays queued for the next Tick.
type command struct {
	kind   commandKind
	path   string
	offset time.Duration
	retry  bool
}

// Tick runs one step of the render loop:
//  1. apply a pending volume change
//  2. detect end of track and apply the repeat policy
//  3. reconcile the clock with the state changes since the last tick
//  4. run the queued device command, including one skipped earlier
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyVolumeLocked()
	s.checkEndOfTrackLocked()
	s.reconcileClockLocked()
	s.flushLocked()
}

func (s *Session) applyVolumeLocked() {
	if !s.volumeDirty {
		return
	}
	level := s.volume
	if s.player.Try(func(d player.Device) { d.SetVolume(level) }) {
		s.volumeDirty = false
	}
}

func (s *Session) checkEndOfTrackLocked() {
	if s.nowPlaying == "" {
		return
	}
	s.total = s.meta.Lookup(s.nowPlaying).Duration
	if s.total == 0 || s.effectiveLocked() < s.total {
		return
	}

	log.Debug().Str("path", s.nowPlaying).Stringer("repeat", s.repeat).Msg("end of track")
	s.elapsed = 0
	s.stopLocked()
	if s.repeat == RepeatOne {
		s.playLocked()
		return
	}
	s.skipForwardLocked()
}

// reconcileClockLocked consumes the start/stop flags. Several state
// changes within one tick collapse into a single timer update.
func (s *Session) reconcileClockLocked() {
	if !s.startFlag && !s.stopFlag {
		return
	}
	s.elapsed = s.effectiveLocked()
	if s.startFlag {
		s.startOffset = s.elapsed
		s.anchor = s.now()
		s.anchored = true
	}
	if s.stopFlag {
		s.anchored = false
	}
	s.startFlag = false
	s.stopFlag = false
}

func (s *Session) queueLocked(c command) {
	s.pending = &c
}

// flushLocked runs the queued command without blocking. Device errors are
// logged and reported as events but never change the logical state.
func (s *Session) flushLocked() {
	if s.pending == nil {
		return
	}
	c := *s.pending
	if c.retry && c.kind != cmdHalt {
		// The clock kept running while the device was busy
		c.offset = s.effectiveLocked()
	}
	ran := s.player.Try(func(d player.Device) {
		s.runLocked(d, c)
	})
	if !ran {
		log.Debug().Int("kind", int(c.kind)).Msg("audio device busy, retrying next tick")
		s.pending.retry = true
		return
	}
	s.pending = nil
}

func (s *Session) runLocked(d player.Device, c command) {
	switch c.kind {
	case cmdHalt:
		d.Pause()
	case cmdSeek:
		err := d.Seek(c.offset)
		if err == nil {
			return
		}
		if !errors.Is(err, player.ErrNoStream) {
			s.reportLocked("seek", c.path, err)
			return
		}
		// Nothing loaded, open again at the target
		s.openLocked(d, c)
	case cmdOpen:
		s.openLocked(d, c)
	}
}

func (s *Session) openLocked(d player.Device, c command) {
	if err := d.Play(c.path); err != nil {
		s.reportLocked("play", c.path, err)
		return
	}
	if c.offset <= 0 {
		return
	}
	if err := d.Seek(c.offset); err != nil {
		s.reportLocked("seek", c.path, err)
	}
}

func (s *Session) reportLocked(op, path string, err error) {
	log.Warn().Err(err).Str("op", op).Str("path", path).Msg("audio device")
	s.emit(ErrorEvent{Operation: op, Path: path, Err: err})
}
