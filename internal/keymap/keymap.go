// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Binding maps keys to an action, with a description for the help line.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "browser", "playlists"
}

// Bindings contains every key binding of the application.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchPane, []string{"tab"}, "Switch pane", "global"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "global"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "global"},
	{ActionJumpStart, []string{"g", "home"}, "First entry", "global"},
	{ActionJumpEnd, []string{"G", "end"}, "Last entry", "global"},
	{ActionSelect, []string{"enter"}, "Open/play", "global"},
	{ActionCue, []string{"o"}, "Cue", "global"},
	{ActionParent, []string{"backspace"}, "Back", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionEject, []string{"x"}, "Eject", "playback"},
	{ActionNextTrack, []string{"n"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p"}, "Previous track", "playback"},
	{ActionCycleRepeat, []string{"r"}, "Cycle repeat", "playback"},
	{ActionToggleShuffle, []string{"z"}, "Toggle shuffle", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionSeekForward, []string{"right"}, "Seek +5s", "playback"},
	{ActionSeekBack, []string{"left"}, "Seek -5s", "playback"},

	// File browser
	{ActionScanDir, []string{"c"}, "Playlist from folder", "browser"},
	{ActionAddToPlaylist, []string{"a"}, "Add to playlist", "browser"},

	// Playlists
	{ActionNewPlaylist, []string{"N"}, "New playlist", "playlists"},
	{ActionRename, []string{"R"}, "Rename", "playlists"},
	{ActionDelete, []string{"d", "delete"}, "Delete", "playlists"},
	{ActionUndo, []string{"u"}, "Undo", "playlists"},
	{ActionRedo, []string{"U"}, "Redo", "playlists"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
