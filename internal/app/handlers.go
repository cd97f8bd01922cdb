package app

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/comrad/internal/catalog"
	"github.com/llehouerou/comrad/internal/errmsg"
	"github.com/llehouerou/comrad/internal/keymap"
	"github.com/llehouerou/comrad/internal/playlist"
	"github.com/llehouerou/comrad/internal/tags"
	"github.com/llehouerou/comrad/internal/ui/textinput"
)

// inputKind tells what a confirmed prompt is for.
type inputKind int

const (
	inputNewPlaylist inputKind = iota
	inputRename
)

type inputContext struct {
	kind inputKind
	id   string
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg.String())
	if action == "" {
		return m, nil
	}
	m.clearStatus()

	if action == keymap.ActionQuit {
		m.shutdown()
		return m, tea.Quit
	}
	if m.handlePlaybackAction(action) {
		return m, nil
	}
	if m.focusedCursor().Apply(action, m.listLen(), m.listHeight()) {
		return m, nil
	}

	switch action {
	case keymap.ActionSwitchPane:
		if m.focus == PaneBrowser {
			m.focus = PanePlaylists
		} else {
			m.focus = PaneBrowser
		}
	case keymap.ActionSelect:
		m.activate()
	case keymap.ActionCue:
		m.cue()
	case keymap.ActionParent:
		m.back()
	case keymap.ActionScanDir:
		m.scanDir()
	case keymap.ActionAddToPlaylist:
		m.addToPlaylist()
	case keymap.ActionNewPlaylist:
		return m, m.input.Start("New playlist", "", inputContext{kind: inputNewPlaylist})
	case keymap.ActionRename:
		return m, m.startRename()
	case keymap.ActionDelete:
		m.deleteSelected()
	case keymap.ActionUndo:
		m.undo(false)
	case keymap.ActionRedo:
		m.undo(true)
	}
	return m, nil
}

// handlePlaybackAction forwards playback keys to the session.
func (m *Model) handlePlaybackAction(action keymap.Action) bool {
	switch action {
	case keymap.ActionPlayPause:
		m.session.Play()
	case keymap.ActionStop:
		m.session.Stop()
	case keymap.ActionEject:
		m.session.Eject()
	case keymap.ActionNextTrack:
		m.session.SkipForward()
	case keymap.ActionPrevTrack:
		m.session.SkipBackward()
	case keymap.ActionCycleRepeat:
		mode := m.session.CycleRepeat()
		m.status = "Repeat: " + mode.String()
	case keymap.ActionToggleShuffle:
		if m.session.ToggleShuffle() {
			m.status = "Shuffle on"
		} else {
			m.status = "Shuffle off"
		}
	case keymap.ActionVolumeUp:
		m.changeVolume(volumeStep)
	case keymap.ActionVolumeDown:
		m.changeVolume(-volumeStep)
	case keymap.ActionSeekForward:
		m.seekBy(seekStep)
	case keymap.ActionSeekBack:
		m.seekBy(-seekStep)
	default:
		return false
	}
	return true
}

// changeVolume applies and persists a volume step.
func (m *Model) changeVolume(delta int) {
	vol := clampVolume(m.settings.Volume + delta)
	if vol == m.settings.Volume {
		return
	}
	m.settings.Volume = vol
	m.session.SetVolume(m.settings.Level())
	m.saveSettings()
}

// seekBy moves the position of the current source, clamped to its start.
func (m *Model) seekBy(delta time.Duration) {
	if m.session.NowPlaying() == "" {
		return
	}
	pos := max(m.session.Elapsed()+delta, 0)
	if total := m.session.Total(); total > 0 && pos >= total {
		return
	}
	m.session.Seek(pos)
}

// activate handles enter: directories open, music files play within the
// scan of the browsed directory, playlists open and their sources play.
func (m *Model) activate() {
	if m.focus == PaneBrowser {
		e, ok := m.browser.selected()
		if ok && e.IsDir() {
			if err := m.browser.open(e.Path); err != nil {
				m.setErrorWith(errmsg.OpBrowse, e.Name, err)
			}
			return
		}
	} else if m.playlist.open == "" {
		if pl := m.playlist.target(m.lists.All()); pl != nil {
			m.playlist.openID(pl.ID())
		}
		return
	}

	source, list, index, ok := m.cursorEntry()
	if !ok {
		return
	}
	if index < 0 {
		m.session.PlaySource(source, list)
		return
	}
	m.session.PlayIndex(list, index)
}

// cue points the session at the entry under the cursor without playing
// it. A running source is left alone.
func (m *Model) cue() {
	source, list, _, ok := m.cursorEntry()
	if !ok {
		return
	}
	if !m.session.Select(source, list) {
		m.status = "Pause or stop before cueing"
		return
	}
	m.status = "Cued " + filepath.Base(source)
}

// cursorEntry resolves the entry under the cursor to a source, the list
// it plays within and its index there, -1 when the list lacks it. A music
// file plays within the scan of the browsed directory, a playlist source
// within the open playlist.
func (m *Model) cursorEntry() (string, *playlist.Playlist, int, bool) {
	if m.focus == PanePlaylists {
		pl := find(m.lists.All(), m.playlist.open)
		if pl.IsEmpty() {
			return "", nil, 0, false
		}
		pos := m.playlist.sources.Pos()
		return pl.Source(pos), pl, pos, true
	}

	e, ok := m.browser.selected()
	if !ok || e.IsDir() {
		return "", nil, 0, false
	}
	if !tags.IsMusicFile(e.Path) {
		m.status = "Not a playable file: " + e.Name
		return "", nil, 0, false
	}
	list, err := catalog.Scan(m.browser.dir)
	if err != nil {
		m.setError(errmsg.OpScan, err)
		return "", nil, 0, false
	}
	return e.Path, list, list.IndexOf(e.Path), true
}

// back goes to the parent directory or closes the open playlist.
func (m *Model) back() {
	if m.focus == PanePlaylists {
		m.playlist.close()
		return
	}
	if err := m.browser.up(m.listHeight()); err != nil {
		m.setError(errmsg.OpBrowse, err)
	}
}

// scanDir turns the browsed directory into a new playlist.
func (m *Model) scanDir() {
	list, err := catalog.Scan(m.browser.dir)
	if err != nil {
		m.setError(errmsg.OpScan, err)
		return
	}
	if list.IsEmpty() {
		m.status = "No music found in " + m.browser.dir
		return
	}
	saved, err := m.lists.Import(list)
	if err != nil {
		m.setError(errmsg.OpPlaylistCreate, err)
	} else {
		m.status = fmt.Sprintf("Created playlist %q with %d tracks", displayName(saved), saved.Len())
	}
	m.playlist.sync(m.lists.All())
}

// addToPlaylist appends the browser selection to the target playlist. A
// directory adds its scan.
func (m *Model) addToPlaylist() {
	target := m.playlist.target(m.lists.All())
	if target == nil {
		m.status = "Create a playlist first (N)"
		return
	}
	e, ok := m.browser.selected()
	if !ok {
		return
	}

	var sources []string
	switch {
	case e.IsDir():
		list, err := catalog.Scan(e.Path)
		if err != nil {
			m.setError(errmsg.OpScan, err)
			return
		}
		sources = list.Sources()
	case tags.IsMusicFile(e.Path):
		sources = []string{e.Path}
	}
	if len(sources) == 0 {
		m.status = "Nothing to add from " + e.Name
		return
	}

	if err := m.lists.AddSources(target.ID(), sources...); err != nil {
		m.setErrorWith(errmsg.OpPlaylistAdd, target.Name(), err)
		return
	}
	m.status = fmt.Sprintf("Added %d to %q", len(sources), displayName(target))
}

func (m *Model) startRename() tea.Cmd {
	if m.focus != PanePlaylists {
		return nil
	}
	target := m.playlist.target(m.lists.All())
	if target == nil {
		return nil
	}
	return m.input.Start("Rename", target.Name(), inputContext{kind: inputRename, id: target.ID()})
}

// deleteSelected removes the source under the cursor of an open playlist,
// or the playlist under the cursor of the collection.
func (m *Model) deleteSelected() {
	if m.focus != PanePlaylists {
		return
	}
	all := m.lists.All()
	if m.playlist.open != "" {
		pl := find(all, m.playlist.open)
		if pl.IsEmpty() {
			return
		}
		if err := m.lists.RemoveAt(pl.ID(), m.playlist.sources.Pos()); err != nil {
			m.setErrorWith(errmsg.OpPlaylistRemove, pl.Name(), err)
		}
	} else if target := m.playlist.target(all); target != nil {
		if err := m.lists.Delete(target.ID()); err != nil {
			m.setErrorWith(errmsg.OpPlaylistDelete, target.Name(), err)
		} else {
			m.status = fmt.Sprintf("Deleted %q (u to undo)", displayName(target))
		}
	}
	m.playlist.sync(m.lists.All())
}

func (m *Model) undo(redo bool) {
	apply, word := m.lists.Undo, "Undo"
	if redo {
		apply, word = m.lists.Redo, "Redo"
	}
	changed, err := apply()
	switch {
	case err != nil:
		m.setError(errmsg.OpPlaylistUndo, err)
	case !changed:
		m.status = "Nothing to " + word
	default:
		m.status = word + " done"
	}
	m.playlist.sync(m.lists.All())
}

func (m Model) handleInputResult(res textinput.ResultMsg) (tea.Model, tea.Cmd) {
	ctx, ok := res.Context.(inputContext)
	if !ok || res.Canceled {
		return m, nil
	}
	if res.Text == "" {
		m.status = "A playlist needs a name"
		return m, nil
	}

	switch ctx.kind {
	case inputNewPlaylist:
		m.focus = PanePlaylists
		if _, err := m.lists.Create(res.Text); err != nil {
			m.setError(errmsg.OpPlaylistCreate, err)
		} else {
			m.status = fmt.Sprintf("Created playlist %q", res.Text)
		}
	case inputRename:
		if err := m.lists.Rename(ctx.id, res.Text); err != nil {
			m.setErrorWith(errmsg.OpPlaylistRename, res.Text, err)
		}
	}
	m.playlist.sync(m.lists.All())
	return m, nil
}

func (m *Model) setError(op errmsg.Op, err error) {
	log.Warn().Err(err).Str("op", string(op)).Msg("operation failed")
	m.status = errmsg.Format(op, err)
	m.statusErr = true
}

func (m *Model) setErrorWith(op errmsg.Op, context string, err error) {
	log.Warn().Err(err).Str("op", string(op)).Str("context", context).Msg("operation failed")
	m.status = errmsg.FormatWith(op, context, err)
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}
