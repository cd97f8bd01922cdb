package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/comrad/internal/catalog"
	"github.com/llehouerou/comrad/internal/playback"
	"github.com/llehouerou/comrad/internal/player"
	"github.com/llehouerou/comrad/internal/playlist"
	"github.com/llehouerou/comrad/internal/playlists"
	"github.com/llehouerou/comrad/internal/state"
	"github.com/llehouerou/comrad/internal/tags"
	"github.com/llehouerou/comrad/internal/ui/textinput"
)

type recorder struct {
	snaps  []playback.Snapshot
	tracks []string
}

func (r *recorder) Publish(snap playback.Snapshot) { r.snaps = append(r.snaps, snap) }
func (r *recorder) TrackChanged(path string)        { r.tracks = append(r.tracks, path) }

type fixture struct {
	music   string
	store   *catalog.Store
	player  *player.Mock
	session *playback.Session
	remote  *playback.Remote
	state   *state.Mock
	rec     *recorder
	lists   *playlists.Manager
}

// newFixture builds a music dir with a.mp3, b.mp3, notes.txt and
// sub/c.flac, and a model browsing it.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	music := t.TempDir()
	for _, name := range []string{"a.mp3", "b.mp3", "notes.txt", "sub/c.flac"} {
		path := filepath.Join(music, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	store, err := catalog.Open(t.TempDir())
	require.NoError(t, err)
	lists, err := playlists.Load(store)
	require.NoError(t, err)

	meta := tags.Static{}
	for _, name := range []string{"a.mp3", "b.mp3", "sub/c.flac"} {
		meta[filepath.Join(music, name)] = tags.Info{Title: name, Duration: 10 * time.Second}
	}

	f := &fixture{
		music:  music,
		store:  store,
		player: player.NewMock(),
		remote: playback.NewRemote(),
		state:  state.NewMock(),
		rec:    &recorder{},
		lists:  lists,
	}
	f.session = playback.New(playback.Config{Player: f.player, Metadata: meta, Rand: playback.NewRand(1)})
	return f
}

func (f *fixture) model() Model {
	m := New(Deps{
		Session:   f.session,
		Metadata:  tags.Static{},
		Remote:    f.remote,
		Playlists: f.lists,
		Settings:  catalog.Settings{Directory: f.music, Volume: 100},
		Store:     f.store,
		State:     f.state,
		Publisher: f.rec,
		Tracks:    f.rec,
	})
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func (f *fixture) path(name string) string {
	return filepath.Join(f.music, name)
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = update(m, keyMsg(k))
	}
	return m
}

// submit confirms the active prompt and feeds its result back.
func submit(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := update(m, keyMsg("enter"))
	require.NotNil(t, cmd)
	res, ok := cmd().(textinput.ResultMsg)
	require.True(t, ok)
	m, _ = update(m, res)
	return m
}

func tick(m Model) Model {
	m, _ = update(m, tickMsg(time.Now()))
	return m
}

func TestNew_ListsStartDirectory(t *testing.T) {
	f := newFixture(t)
	m := f.model()

	assert.Equal(t, f.music, m.Dir())
	var names []string
	for _, e := range m.browser.entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"a.mp3", "b.mp3", "notes.txt", "sub"}, names)
	assert.Equal(t, PaneBrowser, m.Focus())
}

func TestNew_UnreadableDirectoryFallsBackToRoot(t *testing.T) {
	f := newFixture(t)
	m := New(Deps{
		Session:   f.session,
		Playlists: f.lists,
		Settings:  catalog.Settings{Directory: filepath.Join(f.music, "missing"), Volume: 100},
	})

	assert.Equal(t, "/", m.Dir())
	status, isErr := m.Status()
	assert.True(t, isErr)
	assert.Contains(t, status, "open directory")
}

func TestEnter_PlaysFileWithinDirectoryScan(t *testing.T) {
	f := newFixture(t)
	m := f.model()

	m = press(m, "j", "enter")

	assert.Equal(t, playback.StatePlaying, f.session.State())
	assert.Equal(t, f.path("b.mp3"), f.session.NowPlaying())
	assert.Equal(t,
		[]string{f.path("a.mp3"), f.path("b.mp3"), f.path("sub/c.flac")},
		f.session.Snapshot().Queue)

	tick(m)
	assert.Equal(t, []string{f.path("b.mp3")}, f.player.PlayCalls())
}

func TestEnter_NonMusicFileIsNotPlayed(t *testing.T) {
	f := newFixture(t)
	m := f.model()

	m = press(m, "j", "j", "enter")

	assert.Empty(t, f.session.NowPlaying())
	status, _ := m.Status()
	assert.Contains(t, status, "notes.txt")
}

func TestBrowser_EnterAndBack(t *testing.T) {
	f := newFixture(t)
	m := f.model()

	m = press(m, "G", "enter")
	assert.Equal(t, f.path("sub"), m.Dir())
	require.Len(t, m.browser.entries, 1)

	m = press(m, "backspace")
	assert.Equal(t, f.music, m.Dir())
	e, ok := m.browser.selected()
	require.True(t, ok)
	assert.Equal(t, "sub", e.Name, "cursor returns to the directory just left")
}

func TestScanDir_CreatesPlaylist(t *testing.T) {
	f := newFixture(t)
	m := f.model()

	press(m, "c")

	all := f.lists.All()
	require.Len(t, all, 1)
	assert.Equal(t, filepath.Base(f.music), all[0].Name())
	assert.Equal(t, 3, all[0].Len())

	data, err := os.ReadFile(f.store.PlaylistsPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), all[0].ID())
}

func TestNewPlaylistThenAdd(t *testing.T) {
	f := newFixture(t)
	m := f.model()

	m = press(m, "N", "m", "i", "x")
	m = submit(t, m)

	all := f.lists.All()
	require.Len(t, all, 1)
	assert.Equal(t, "mix", all[0].Name())
	assert.Equal(t, PanePlaylists, m.Focus())

	// Back to the browser: add a file, then the sub directory.
	m = press(m, "tab", "a", "G", "a")

	got, err := f.lists.Get(all[0].ID())
	require.NoError(t, err)
	assert.Equal(t, []string{f.path("a.mp3"), f.path("sub/c.flac")}, got.Sources())
}

func TestAdd_WithoutPlaylist(t *testing.T) {
	f := newFixture(t)
	m := f.model()

	m = press(m, "a")

	status, _ := m.Status()
	assert.Contains(t, status, "Create a playlist first")
}

func TestRename(t *testing.T) {
	f := newFixture(t)
	m := f.model()
	m = press(m, "c", "tab", "R")
	require.True(t, m.input.Active())

	m = press(m, "!")
	m = submit(t, m)

	assert.Equal(t, filepath.Base(f.music)+"!", f.lists.All()[0].Name())
}

func TestDeleteUndoRedo(t *testing.T) {
	f := newFixture(t)
	m := f.model()
	m = press(m, "c", "tab")

	m = press(m, "d")
	assert.Equal(t, 0, f.lists.Len())

	m = press(m, "u")
	assert.Equal(t, 1, f.lists.Len())

	press(m, "U")
	assert.Equal(t, 0, f.lists.Len())
}

func TestPlaylistPane_PlaysOpenPlaylist(t *testing.T) {
	f := newFixture(t)
	m := f.model()
	m = press(m, "c", "tab", "enter")
	require.NotEmpty(t, m.playlist.openedID())

	m = press(m, "j", "j", "enter")

	assert.Equal(t, f.path("sub/c.flac"), f.session.NowPlaying())
	assert.Len(t, f.session.Snapshot().Queue, 3)

	// Removing a source from the open playlist leaves the queue alone.
	m = press(m, "d")
	assert.Equal(t, 2, f.lists.All()[0].Len())
	assert.Len(t, f.session.Snapshot().Queue, 3)

	m = press(m, "backspace")
	assert.Empty(t, m.playlist.openedID())
}

func TestPlaylistPane_RepeatedSourcePlaysItsEntry(t *testing.T) {
	f := newFixture(t)
	m := f.model()
	m = press(m, "N", "m", "i", "x")
	m = submit(t, m)
	m = press(m, "tab", "a", "j", "a", "k", "a", "tab", "enter")
	require.Equal(t, []string{f.path("a.mp3"), f.path("b.mp3"), f.path("a.mp3")}, f.lists.All()[0].Sources())

	m = press(m, "G", "enter")
	assert.Equal(t, f.path("a.mp3"), f.session.NowPlaying())
	assert.Equal(t, 2, f.session.Snapshot().Position)

	press(m, "p")
	assert.Equal(t, f.path("b.mp3"), f.session.NowPlaying())
	assert.Equal(t, 1, f.session.Snapshot().Position)
}

func TestCue_SelectsWithoutPlaying(t *testing.T) {
	f := newFixture(t)
	m := f.model()

	m = press(m, "j", "o")

	assert.Equal(t, f.path("b.mp3"), f.session.NowPlaying())
	assert.Equal(t, playback.StateStopped, f.session.State())
	assert.Empty(t, f.player.PlayCalls())
	status, _ := m.Status()
	assert.Equal(t, "Cued b.mp3", status)

	press(m, " ")
	assert.Equal(t, []string{f.path("b.mp3")}, f.player.PlayCalls())
}

func TestCue_IgnoredWhilePlaying(t *testing.T) {
	f := newFixture(t)
	m := f.model()

	m = press(m, "enter", "j", "o")

	assert.Equal(t, f.path("a.mp3"), f.session.NowPlaying())
	status, _ := m.Status()
	assert.Contains(t, status, "Pause or stop")
}

func TestPlaybackKeys(t *testing.T) {
	f := newFixture(t)
	m := f.model()
	m = press(m, "enter")

	m = press(m, "n")
	assert.Equal(t, f.path("b.mp3"), f.session.NowPlaying())

	m = press(m, "p")
	assert.Equal(t, f.path("a.mp3"), f.session.NowPlaying())

	m = press(m, " ")
	assert.Equal(t, playback.StatePaused, f.session.State())

	m = press(m, "r", "z")
	snap := f.session.Snapshot()
	assert.Equal(t, playback.RepeatAll, snap.Repeat)
	assert.True(t, snap.Shuffle)

	m = press(m, "s")
	assert.Equal(t, playback.StateStopped, f.session.State())

	press(m, "x")
	assert.Empty(t, f.session.NowPlaying())
}

func TestVolumeKeysPersistSettings(t *testing.T) {
	f := newFixture(t)
	m := f.model()

	m = press(m, "-", "-")
	m = press(m, "+")
	m = press(m, "+", "+")

	st, err := f.store.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 100, st.Volume, "clamped at 100")

	press(m, "-")
	st, err = f.store.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, 95, st.Volume)
	assert.InDelta(t, 0.95, f.session.Volume(), 1e-9)
}

func TestTick_PublishesNotifiesAndSaves(t *testing.T) {
	f := newFixture(t)
	m := f.model()
	m = press(m, "enter")

	m = tick(m)

	require.NotEmpty(t, f.rec.snaps)
	assert.Equal(t, f.path("a.mp3"), f.rec.snaps[len(f.rec.snaps)-1].NowPlaying)
	assert.Equal(t, []string{f.path("a.mp3")}, f.rec.tracks)

	saved, err := f.state.GetSession()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, f.path("a.mp3"), saved.NowPlaying)
	assert.Len(t, saved.Queue, 3)

	saves := f.state.Saves()
	tick(m)
	assert.Equal(t, saves, f.state.Saves(), "position-only changes are throttled")
}

func TestTick_RunsRemoteRequests(t *testing.T) {
	f := newFixture(t)
	m := f.model()
	m = press(m, "enter")

	require.True(t, f.remote.Send(playback.Request{Cmd: playback.CmdNext}))
	tick(m)

	assert.Equal(t, f.path("b.mp3"), f.session.NowPlaying())
}

func TestTick_ShowsCapturedStderr(t *testing.T) {
	f := newFixture(t)
	lines := make(chan string, 1)
	m := New(Deps{
		Session:   f.session,
		Playlists: f.lists,
		Settings:  catalog.Settings{Directory: f.music, Volume: 100},
		Messages:  lines,
	})
	lines <- "ALSA lib: underrun"

	m = tick(m)

	status, isErr := m.Status()
	assert.Equal(t, "ALSA lib: underrun", status)
	assert.True(t, isErr)
}

func TestNew_RestoresSession(t *testing.T) {
	f := newFixture(t)
	pl, err := f.lists.Create("saved")
	require.NoError(t, err)
	f.state.SaveSession(state.Session{
		NowPlaying:         f.path("b.mp3"),
		Elapsed:            30 * time.Second,
		RepeatMode:         int(playback.RepeatOne),
		QueueID:            pl.ID(),
		QueueName:          "saved",
		Queue:              []string{f.path("a.mp3"), f.path("b.mp3")},
		SelectedPlaylistID: pl.ID(),
	})

	m := f.model()

	assert.Equal(t, playback.StatePaused, f.session.State())
	assert.Equal(t, f.path("b.mp3"), f.session.NowPlaying())
	assert.Equal(t, 30*time.Second, f.session.Elapsed())
	assert.Equal(t, playback.RepeatOne, f.session.Snapshot().Repeat)
	assert.Equal(t, "saved", f.session.Snapshot().QueueName)
	assert.Equal(t, pl.ID(), m.playlist.openedID())
}

func TestQuit_SavesSessionAndSettings(t *testing.T) {
	f := newFixture(t)
	m := f.model()
	m = press(m, "G", "enter", "enter")

	m, cmd := update(m, keyMsg("q"))

	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
	st, err := f.store.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, f.path("sub"), st.Directory)

	saved, err := f.state.GetSession()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, f.path("sub/c.flac"), saved.NowPlaying)
}

func TestView(t *testing.T) {
	f := newFixture(t)
	m := f.model()
	m = press(m, "enter")

	out := m.View()

	assert.Contains(t, out, "a.mp3")
	assert.Contains(t, out, "Playlists (0)")
	assert.Equal(t, 30, len(strings.Split(out, "\n")))
}

func TestResumeCarriesPosition(t *testing.T) {
	r := playback.Resume{
		NowPlaying: "/m/a.mp3",
		Position:   2,
		Queue:      playlist.FromRecord("abcdEFGH12345678", "dupes", []string{"/m/a.mp3", "/m/b.mp3", "/m/a.mp3"}),
	}

	saved := toSession(r, "")
	assert.Equal(t, 2, saved.Position)
	assert.Equal(t, 2, toResume(saved).Position)

	moved := saved
	moved.Position = 0
	assert.False(t, sameContext(saved, moved))
}

func TestToResume_UnknownRepeatMode(t *testing.T) {
	r := toResume(state.Session{RepeatMode: 9, Elapsed: -time.Second})

	assert.Equal(t, playback.RepeatOff, r.Repeat)
	assert.Equal(t, time.Duration(0), r.Elapsed)
}
