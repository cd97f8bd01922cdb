// Package app is the bubbletea root model. It owns the render tick that
// drives the playback session and wires the browser, the playlists pane
// and the player bar to it.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/comrad/internal/catalog"
	"github.com/llehouerou/comrad/internal/errmsg"
	"github.com/llehouerou/comrad/internal/keymap"
	"github.com/llehouerou/comrad/internal/playback"
	"github.com/llehouerou/comrad/internal/playlists"
	"github.com/llehouerou/comrad/internal/state"
	"github.com/llehouerou/comrad/internal/tags"
	"github.com/llehouerou/comrad/internal/ui/textinput"
)

const (
	defaultTick  = 100 * time.Millisecond
	seekStep     = 5 * time.Second
	volumeStep   = 5
	saveInterval = 5 * time.Second
)

// Publisher receives a snapshot on every tick (MPRIS).
type Publisher interface {
	Publish(snap playback.Snapshot)
}

// TrackListener is told about every track change (notifications).
type TrackListener interface {
	TrackChanged(path string)
}

// SettingsStore persists the browse directory and volume.
type SettingsStore interface {
	SaveSettings(st catalog.Settings) error
}

// Deps are the collaborators of the root model. Metadata, Publisher,
// Tracks, Remote, Messages, Store and State are optional.
type Deps struct {
	Session   playback.Service
	Metadata  playback.Metadata
	Remote    *playback.Remote
	Playlists *playlists.Manager
	Settings  catalog.Settings
	Store     SettingsStore
	State     state.Interface
	Publisher Publisher
	Tracks    TrackListener
	// Messages carries captured stderr lines to the status line.
	Messages <-chan string
	// StartDir overrides the saved browse directory.
	StartDir string
	Tick     time.Duration
}

// Pane identifies the focused pane.
type Pane int

const (
	PaneBrowser Pane = iota
	PanePlaylists
)

// Model is the root application model.
type Model struct {
	session   playback.Service
	meta      playback.Metadata
	remote    *playback.Remote
	sub       *playback.Subscription
	lists     *playlists.Manager
	store     SettingsStore
	resume    state.Interface
	publisher Publisher
	tracks    TrackListener
	messages  <-chan string
	keys      *keymap.Resolver
	tick      time.Duration

	settings catalog.Settings
	focus    Pane
	browser  browser
	playlist playlistPane
	input    textinput.Model

	lastSave  time.Time
	lastSaved *state.Session

	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

// New builds the model, restores the saved session and opens the start
// directory. A directory that cannot be read falls back to the root.
func New(d Deps) Model {
	m := Model{
		session:   d.Session,
		meta:      d.Metadata,
		remote:    d.Remote,
		lists:     d.Playlists,
		store:     d.Store,
		resume:    d.State,
		publisher: d.Publisher,
		tracks:    d.Tracks,
		messages:  d.Messages,
		keys:      keymap.NewResolver(keymap.Bindings),
		tick:      d.Tick,
		settings:  d.Settings,
		browser:   newBrowser(),
		playlist:  newPlaylistPane(),
		input:     textinput.New(),
	}
	if m.tick <= 0 {
		m.tick = defaultTick
	}
	if m.meta == nil {
		m.meta = tags.Static{}
	}
	m.sub = m.session.Subscribe()
	m.session.SetVolume(m.settings.Level())

	dir := d.StartDir
	if dir == "" {
		dir = m.settings.Directory
	}
	if err := m.browser.open(dir); err != nil {
		m.setError(errmsg.OpBrowse, err)
		_ = m.browser.open(catalog.DefaultDirectory)
	}

	m.restore()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		return m.handleTick()

	case textinput.ResultMsg:
		return m.handleInputResult(msg)

	case tea.KeyMsg:
		if m.input.Active() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	if m.input.Active() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Focus returns the focused pane.
func (m Model) Focus() Pane {
	return m.focus
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Dir returns the directory shown in the browser.
func (m Model) Dir() string {
	return m.browser.dir
}
