package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionSwitchPane Action = "switch_pane"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionStop          Action = "stop"
	ActionEject         Action = "eject"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select" // enter - open or play
	ActionCue       Action = "cue"    // o - select without playing
	ActionParent    Action = "parent" // backspace

	// Playlist editing actions
	ActionScanDir       Action = "scan_dir"        // c - scan browsed directory
	ActionAddToPlaylist Action = "add_to_playlist" // a
	ActionNewPlaylist   Action = "new_playlist"    // N
	ActionRename        Action = "rename"          // R
	ActionDelete        Action = "delete"          // d - context determines what
	ActionUndo          Action = "undo"
	ActionRedo          Action = "redo"
)
