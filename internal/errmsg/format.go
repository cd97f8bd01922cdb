// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Browser
	OpBrowse Op = "open directory"
	OpScan   Op = "scan directory"

	// Playlists
	OpPlaylistLoad   Op = "load playlists"
	OpPlaylistCreate Op = "create playlist"
	OpPlaylistRename Op = "rename playlist"
	OpPlaylistDelete Op = "delete playlist"
	OpPlaylistAdd    Op = "add to playlist"
	OpPlaylistRemove Op = "remove from playlist"
	OpPlaylistUndo   Op = "undo playlist change"

	// Settings and session
	OpSettingsLoad Op = "load settings"
	OpSettingsSave Op = "save settings"
	OpSessionLoad  Op = "restore session"

	// Playback
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message. Only the innermost cause
// is shown; wrapping context belongs in the log.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, errors.UnwrapAll(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, errors.UnwrapAll(err))
}
