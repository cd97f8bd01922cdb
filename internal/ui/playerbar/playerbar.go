// Package playerbar renders the now-playing bar at the bottom of the screen.
package playerbar

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/comrad/internal/playback"
	"github.com/llehouerou/comrad/internal/tags"
	"github.com/llehouerou/comrad/internal/ui/render"
)

// Height is the rendered height: two content rows plus the border.
const Height = 4

const (
	separator   = " · "
	minBarWidth = 5
)

// State holds everything needed to render the player bar.
type State struct {
	Status    playback.State
	Title     string
	Artist    string
	Album     string
	Position  time.Duration
	Duration  time.Duration
	Volume    float64
	Repeat    playback.RepeatMode
	Shuffle   bool
	QueueName string
	Index     int // zero-based position in the queue, -1 when absent
	Count     int
}

// NewState builds the bar state from a session snapshot.
func NewState(snap playback.Snapshot) State {
	s := State{
		Status:    snap.State,
		Artist:    snap.Info.Artist,
		Album:     snap.Info.Album,
		Position:  snap.Elapsed,
		Duration:  snap.Total,
		Volume:    snap.Volume,
		Repeat:    snap.Repeat,
		Shuffle:   snap.Shuffle,
		QueueName: snap.QueueName,
		Index:     snap.Position,
		Count:     len(snap.Queue),
	}
	if snap.NowPlaying == "" {
		s.Index = -1
		return s
	}
	s.Title = tags.DisplayTitle(snap.NowPlaying, snap.Info)
	if s.Duration <= 0 {
		s.Duration = snap.Info.Duration
	}
	return s
}

// Render returns the bar for the given total width, border included.
func Render(s State, width int) string {
	inner := max(width-4, 0)
	lines := []string{
		render.Row(trackLine(s), statusLine(s), inner),
		progressLine(s, inner),
	}
	return barStyle().Width(max(width-2, 0)).Render(strings.Join(lines, "\n"))
}

// trackLine is "▶ Title · Artist · Album".
func trackLine(s State) string {
	status := statusIcon(s.Status)
	if s.Title == "" {
		return status + " " + infoStyle().Render("Nothing selected")
	}

	title := titleStyle().Render(render.Sanitize(s.Title))
	var info []string
	for _, part := range []string{s.Artist, s.Album} {
		if part != "" {
			info = append(info, render.Sanitize(part))
		}
	}
	if len(info) == 0 {
		return status + " " + title
	}
	return status + " " + title + infoStyle().Render(separator+strings.Join(info, separator))
}

// statusLine shows the queue position, mode toggles and volume.
func statusLine(s State) string {
	var parts []string
	if s.QueueName != "" || s.Count > 0 {
		parts = append(parts, infoStyle().Render(queueLabel(s)))
	}
	parts = append(parts,
		modeStyle(s.Shuffle).Render(shuffleIcon()),
		modeStyle(s.Repeat != playback.RepeatOff).Render(repeatIcon(s.Repeat)),
		RenderVolume(s.Volume),
	)
	return strings.Join(parts, " ")
}

func queueLabel(s State) string {
	name := render.Sanitize(s.QueueName)
	if name == "" {
		name = "Queue"
	}
	if s.Index < 0 {
		return name
	}
	return name + " " + strconv.Itoa(s.Index+1) + "/" + strconv.Itoa(s.Count)
}

// progressLine is "01:23 ━━━━━─────── 03:58". Unknown durations show
// "--:--" and an empty bar.
func progressLine(s State, width int) string {
	pos := tags.FormatDuration(s.Position)
	total := "--:--"
	if s.Duration > 0 {
		total = tags.FormatDuration(s.Duration)
	}
	left := timeStyle().Render(pos) + " "
	right := " " + timeStyle().Render(total)

	barWidth := width - lipgloss.Width(left) - lipgloss.Width(right)
	if barWidth < minBarWidth {
		return render.Row(left, right, width)
	}
	return left + ProgressBar(s.Position, s.Duration, barWidth) + right
}
