// Package mpris exposes the playback session on the session bus as an
// MPRIS2 media player.
package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/comrad/internal/catalog"
	"github.com/llehouerou/comrad/internal/playback"
	"github.com/llehouerou/comrad/internal/tags"
)

func playbackStatus(s playback.State) types.PlaybackStatus {
	switch s {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying
	case playback.StatePaused:
		return types.PlaybackStatusPaused
	case playback.StateStopped:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}

func loopStatus(m playback.RepeatMode) types.LoopStatus {
	switch m {
	case playback.RepeatOne:
		return types.LoopStatusTrack
	case playback.RepeatAll:
		return types.LoopStatusPlaylist
	case playback.RepeatOff:
		return types.LoopStatusNone
	}
	return types.LoopStatusNone
}

func repeatMode(s types.LoopStatus) playback.RepeatMode {
	switch s {
	case types.LoopStatusTrack:
		return playback.RepeatOne
	case types.LoopStatusPlaylist:
		return playback.RepeatAll
	case types.LoopStatusNone:
		return playback.RepeatOff
	}
	return playback.RepeatOff
}

func metadata(snap playback.Snapshot) types.Metadata {
	if snap.NowPlaying == "" {
		return types.Metadata{}
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(snap.NowPlaying)),
		Length:  types.Microseconds(snap.Total.Microseconds()),
		Title:   tags.DisplayTitle(snap.NowPlaying, snap.Info),
		Album:   snap.Info.Album,
	}
	if snap.Info.Artist != "" {
		meta.Artist = []string{snap.Info.Artist}
	}
	if art := catalog.FindCover(snap.NowPlaying); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta
}

// seekRequest turns a relative MPRIS seek into an absolute one.
func seekRequest(snap playback.Snapshot, offset types.Microseconds) playback.Request {
	pos := snap.Elapsed + time.Duration(offset)*time.Microsecond
	return playback.Request{Cmd: playback.CmdSeek, Position: max(pos, 0)}
}

func formatTrackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
