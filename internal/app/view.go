package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/comrad/internal/keymap"
	"github.com/llehouerou/comrad/internal/ui/cursor"
	"github.com/llehouerou/comrad/internal/ui/playerbar"
	"github.com/llehouerou/comrad/internal/ui/render"
	"github.com/llehouerou/comrad/internal/ui/styles"
)

const minPaneHeight = 4

var (
	browserHints = []keymap.Action{
		keymap.ActionSelect, keymap.ActionPlayPause, keymap.ActionScanDir,
		keymap.ActionAddToPlaylist, keymap.ActionSwitchPane, keymap.ActionQuit,
	}
	playlistHints = []keymap.Action{
		keymap.ActionSelect, keymap.ActionNewPlaylist, keymap.ActionRename,
		keymap.ActionDelete, keymap.ActionUndo, keymap.ActionSwitchPane,
	}
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.width == 0 || m.height == 0 {
		return ""
	}

	snap := m.session.Snapshot()
	paneHeight := m.paneHeight()
	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth

	left := pane(m.browser.view(leftWidth-2, paneHeight-2, snap.NowPlaying),
		leftWidth, paneHeight, m.focus == PaneBrowser)
	right := pane(m.playlist.view(m.lists.All(), rightWidth-2, paneHeight-2, snap.NowPlaying, m.meta.Lookup),
		rightWidth, paneHeight, m.focus == PanePlaylists)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		playerbar.Render(playerbar.NewState(snap), m.width),
		m.footer(),
	)
}

func pane(rows []string, width, height int, focused bool) string {
	return styles.T().PanelStyle(focused).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Render(strings.Join(rows, "\n"))
}

// footer shows the prompt, the status line or the key hints.
func (m Model) footer() string {
	st := styles.T().S()
	switch {
	case m.input.Active():
		return render.TruncateStyled(m.input.View(), m.width)
	case m.status != "" && m.statusErr:
		return st.Error.Render(render.Truncate(m.status, m.width))
	case m.status != "":
		return st.Muted.Render(render.Truncate(m.status, m.width))
	}
	hints := browserHints
	if m.focus == PanePlaylists {
		hints = playlistHints
	}
	return st.Subtle.Render(render.Truncate(m.keys.Hint(hints...), m.width))
}

// paneHeight is the outer height of the two panes.
func (m Model) paneHeight() int {
	return max(m.height-playerbar.Height-1, minPaneHeight)
}

// listHeight is the number of list rows inside a pane.
func (m Model) listHeight() int {
	return max(m.paneHeight()-3, 1)
}

func (m *Model) focusedCursor() *cursor.Cursor {
	if m.focus == PaneBrowser {
		return &m.browser.cursor
	}
	return m.playlist.active()
}

func (m Model) listLen() int {
	if m.focus == PaneBrowser {
		return len(m.browser.entries)
	}
	if m.playlist.open != "" {
		return find(m.lists.All(), m.playlist.open).Len()
	}
	return m.lists.Len()
}
