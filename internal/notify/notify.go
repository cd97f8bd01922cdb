// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/llehouerou/comrad/internal/catalog"
	"github.com/llehouerou/comrad/internal/tags"
)

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// trackTimeout is how long a now-playing notification stays up, in ms.
const trackTimeout = 5000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(Notification) (uint32, error) { return 0, nil }
func (Nop) Close(uint32) error                  { return nil }

// Metadata resolves tags for a track.
type Metadata interface {
	Lookup(path string) tags.Info
}

// TrackNotifier announces the track that starts playing, replacing its
// own previous announcement.
type TrackNotifier struct {
	notifier Notifier
	meta     Metadata
	lastID   uint32
}

// NewTrackNotifier creates a TrackNotifier.
func NewTrackNotifier(n Notifier, meta Metadata) *TrackNotifier {
	return &TrackNotifier{notifier: n, meta: meta}
}

// TrackChanged announces path. An empty path closes the current
// announcement. Failures are logged.
func (t *TrackNotifier) TrackChanged(path string) {
	if path == "" {
		if t.lastID != 0 {
			if err := t.notifier.Close(t.lastID); err != nil {
				log.Debug().Err(err).Msg("close notification")
			}
			t.lastID = 0
		}
		return
	}

	id, err := t.notifier.Notify(TrackNotification(path, t.meta.Lookup(path), t.lastID))
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("track notification")
		return
	}
	t.lastID = id
}

// TrackNotification builds the now-playing notification for path.
func TrackNotification(path string, info tags.Info, replaces uint32) Notification {
	var body []string
	if info.Artist != "" {
		body = append(body, info.Artist)
	}
	if info.Album != "" {
		body = append(body, info.Album)
	}

	return Notification{
		Title:      tags.DisplayTitle(path, info),
		Body:       strings.Join(body, " - "),
		Icon:       catalog.FindCover(path),
		Timeout:    trackTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}
