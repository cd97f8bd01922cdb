package app

import (
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/comrad/internal/catalog"
	"github.com/llehouerou/comrad/internal/errmsg"
	"github.com/llehouerou/comrad/internal/playback"
	"github.com/llehouerou/comrad/internal/playlist"
	"github.com/llehouerou/comrad/internal/state"
)

// toSession converts an exported session into its stored form.
func toSession(r playback.Resume, selectedPlaylist string) state.Session {
	return state.Session{
		NowPlaying:         r.NowPlaying,
		Position:           r.Position,
		Elapsed:            r.Elapsed,
		RepeatMode:         int(r.Repeat),
		Shuffle:            r.Shuffle,
		QueueID:            r.Queue.ID(),
		QueueName:          r.Queue.Name(),
		Queue:              r.Queue.Sources(),
		Sorted:             r.Sorted.Sources(),
		SelectedPlaylistID: selectedPlaylist,
	}
}

// toResume is the inverse of toSession. Unknown repeat modes become
// RepeatOff.
func toResume(s state.Session) playback.Resume {
	repeat := playback.RepeatMode(s.RepeatMode)
	if repeat < playback.RepeatOff || repeat > playback.RepeatOne {
		repeat = playback.RepeatOff
	}
	return playback.Resume{
		NowPlaying: s.NowPlaying,
		Position:   s.Position,
		Queue:      playlist.FromRecord(s.QueueID, s.QueueName, s.Queue),
		Sorted:     playlist.FromRecord(s.QueueID, s.QueueName, s.Sorted),
		Elapsed:    max(s.Elapsed, 0),
		Repeat:     repeat,
		Shuffle:    s.Shuffle,
	}
}

// sameContext compares everything but the elapsed time.
func sameContext(a, b state.Session) bool {
	return a.NowPlaying == b.NowPlaying &&
		a.Position == b.Position &&
		a.RepeatMode == b.RepeatMode &&
		a.Shuffle == b.Shuffle &&
		a.QueueID == b.QueueID &&
		a.QueueName == b.QueueName &&
		a.SelectedPlaylistID == b.SelectedPlaylistID &&
		slices.Equal(a.Queue, b.Queue) &&
		slices.Equal(a.Sorted, b.Sorted)
}

// restore loads the saved session into the stopped session and reopens
// the playlist that was last shown.
func (m *Model) restore() {
	if m.resume == nil {
		return
	}
	saved, err := m.resume.GetSession()
	if err != nil {
		m.setError(errmsg.OpSessionLoad, err)
		return
	}
	if saved == nil {
		return
	}

	m.session.Restore(toResume(*saved))
	if id := saved.SelectedPlaylistID; id != "" {
		if _, err := m.lists.Get(id); err == nil {
			m.playlist.openID(id)
		}
	}
	m.lastSaved = saved
	m.lastSave = time.Now()
}

// saveResume hands the session to the resume store when its context
// changed, or every saveInterval while only the position moves. force
// saves unconditionally.
func (m *Model) saveResume(force bool) {
	if m.resume == nil {
		return
	}
	cur := toSession(m.session.Export(), m.playlist.openedID())
	now := time.Now()

	if !force && m.lastSaved != nil && sameContext(*m.lastSaved, cur) {
		if cur.Elapsed == m.lastSaved.Elapsed || now.Sub(m.lastSave) < saveInterval {
			return
		}
	}

	m.resume.SaveSession(cur)
	m.lastSaved = &cur
	m.lastSave = now
}

// saveSettings writes the browse directory and volume. Failures are
// reported on the status line.
func (m *Model) saveSettings() {
	if m.store == nil {
		return
	}
	if err := m.store.SaveSettings(m.settings); err != nil {
		log.Warn().Err(err).Msg("save settings")
		m.setError(errmsg.OpSettingsSave, err)
	}
}

// shutdown saves what must survive the restart and closes the session's
// subscriptions. The stores and the audio device belong to the caller.
func (m *Model) shutdown() {
	m.quitting = true
	m.saveResume(true)
	if err := m.session.Close(); err != nil {
		log.Warn().Err(err).Msg("close session")
	}
	m.settings.Directory = m.browser.dir
	m.settings.Volume = clampVolume(m.settings.Volume)
	m.saveSettings()
}

func clampVolume(v int) int {
	return min(max(v, 0), 100)
}

var _ SettingsStore = (*catalog.Store)(nil)
