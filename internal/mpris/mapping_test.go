package mpris

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/comrad/internal/playback"
	"github.com/llehouerou/comrad/internal/tags"
)

func TestLoopStatusRoundTrip(t *testing.T) {
	for _, m := range []playback.RepeatMode{playback.RepeatOff, playback.RepeatAll, playback.RepeatOne} {
		if got := repeatMode(loopStatus(m)); got != m {
			t.Errorf("repeatMode(loopStatus(%v)) = %v", m, got)
		}
	}
	if loopStatus(playback.RepeatOne) != types.LoopStatusTrack {
		t.Error("RepeatOne should map to Track")
	}
	if loopStatus(playback.RepeatAll) != types.LoopStatusPlaylist {
		t.Error("RepeatAll should map to Playlist")
	}
}

func TestPlaybackStatus(t *testing.T) {
	tests := []struct {
		state playback.State
		want  types.PlaybackStatus
	}{
		{playback.StatePlaying, types.PlaybackStatusPlaying},
		{playback.StatePaused, types.PlaybackStatusPaused},
		{playback.StateStopped, types.PlaybackStatusStopped},
	}
	for _, tt := range tests {
		if got := playbackStatus(tt.state); got != tt.want {
			t.Errorf("playbackStatus(%v) = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestMetadata_Empty(t *testing.T) {
	meta := metadata(playback.Snapshot{})
	if meta.Title != "" || meta.TrackId != "" {
		t.Errorf("metadata of empty snapshot = %+v, want zero", meta)
	}
}

func TestMetadata(t *testing.T) {
	dir := t.TempDir()
	track := filepath.Join(dir, "01 intro.mp3")
	cover := filepath.Join(dir, "cover.jpg")
	if err := os.WriteFile(cover, []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}

	meta := metadata(playback.Snapshot{
		NowPlaying: track,
		Total:      3 * time.Minute,
		Info:       tags.Info{Title: "Intro", Artist: "Band", Album: "First"},
	})

	if meta.Title != "Intro" || meta.Album != "First" {
		t.Errorf("title/album = %q/%q", meta.Title, meta.Album)
	}
	if len(meta.Artist) != 1 || meta.Artist[0] != "Band" {
		t.Errorf("artist = %v", meta.Artist)
	}
	if meta.Length != types.Microseconds(180_000_000) {
		t.Errorf("length = %d", meta.Length)
	}
	if meta.ArtUrl != "file://"+cover {
		t.Errorf("art url = %q", meta.ArtUrl)
	}
	if !strings.HasPrefix(string(meta.TrackId), "/org/mpris/MediaPlayer2/Track/") {
		t.Errorf("track id = %q", meta.TrackId)
	}
}

func TestMetadata_TitleFallsBackToFileName(t *testing.T) {
	meta := metadata(playback.Snapshot{NowPlaying: "/music/untagged.flac"})
	if meta.Title != "untagged.flac" {
		t.Errorf("title = %q, want file name", meta.Title)
	}
	if meta.Artist != nil {
		t.Errorf("artist = %v, want none", meta.Artist)
	}
}

func TestSeekRequest(t *testing.T) {
	snap := playback.Snapshot{Elapsed: 10 * time.Second}

	fwd := seekRequest(snap, types.Microseconds(5_000_000))
	if fwd.Cmd != playback.CmdSeek || fwd.Position != 15*time.Second {
		t.Errorf("forward seek = %+v", fwd)
	}
	back := seekRequest(snap, types.Microseconds(-30_000_000))
	if back.Position != 0 {
		t.Errorf("seek before start = %v, want 0", back.Position)
	}
}

func TestFormatTrackID_Stable(t *testing.T) {
	if formatTrackID("/a.mp3") != formatTrackID("/a.mp3") {
		t.Error("track id not stable")
	}
	if formatTrackID("/a.mp3") == formatTrackID("/b.mp3") {
		t.Error("track ids collide")
	}
}
