package notify

import (
	"errors"
	"testing"

	"github.com/llehouerou/comrad/internal/tags"
)

func TestUrgencyValues(t *testing.T) {
	// values are fixed by the notification protocol
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestNotificationZeroValue(t *testing.T) {
	var n Notification
	if n.Urgency != UrgencyLow {
		t.Errorf("zero value Urgency = %d, want UrgencyLow (0)", n.Urgency)
	}
	if n.Timeout != 0 {
		t.Error("zero value Timeout should be 0 (never expire)")
	}
	if n.ReplacesID != 0 {
		t.Error("zero value ReplacesID should be 0 (new notification)")
	}
}

type fakeNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (f *fakeNotifier) Notify(n Notification) (uint32, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.sent = append(f.sent, n)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeNotifier) Close(id uint32) error {
	f.closed = append(f.closed, id)
	return nil
}

func TestTrackNotification(t *testing.T) {
	n := TrackNotification("/m/song.mp3", tags.Info{Title: "Song", Artist: "Band", Album: "LP"}, 4)

	if n.Title != "Song" || n.Body != "Band - LP" {
		t.Errorf("got %q / %q", n.Title, n.Body)
	}
	if n.ReplacesID != 4 || n.Urgency != UrgencyLow || n.Timeout != trackTimeout {
		t.Errorf("unexpected options: %+v", n)
	}

	untagged := TrackNotification("/m/untagged.flac", tags.Info{}, 0)
	if untagged.Title != "untagged.flac" || untagged.Body != "" {
		t.Errorf("untagged = %q / %q", untagged.Title, untagged.Body)
	}
}

func TestTrackNotifier_ReplacesPrevious(t *testing.T) {
	f := &fakeNotifier{}
	tn := NewTrackNotifier(f, tags.Static{"/a.mp3": {Title: "A"}})

	tn.TrackChanged("/a.mp3")
	tn.TrackChanged("/b.mp3")

	if len(f.sent) != 2 {
		t.Fatalf("sent %d notifications, want 2", len(f.sent))
	}
	if f.sent[0].ReplacesID != 0 || f.sent[1].ReplacesID != 1 {
		t.Errorf("replaces ids = %d, %d", f.sent[0].ReplacesID, f.sent[1].ReplacesID)
	}
	if f.sent[0].Title != "A" || f.sent[1].Title != "b.mp3" {
		t.Errorf("titles = %q, %q", f.sent[0].Title, f.sent[1].Title)
	}

	tn.TrackChanged("")
	if len(f.closed) != 1 || f.closed[0] != 2 {
		t.Errorf("closed = %v, want [2]", f.closed)
	}
	tn.TrackChanged("")
	if len(f.closed) != 1 {
		t.Error("closing twice should be a no-op")
	}
}

func TestTrackNotifier_ErrorIsSwallowed(t *testing.T) {
	f := &fakeNotifier{err: errors.New("no server")}
	tn := NewTrackNotifier(f, tags.Static{})

	tn.TrackChanged("/a.mp3")

	if tn.lastID != 0 {
		t.Errorf("lastID = %d after failure", tn.lastID)
	}
}

func TestNop(t *testing.T) {
	var n Notifier = Nop{}
	id, err := n.Notify(Notification{Title: "x"})
	if id != 0 || err != nil {
		t.Errorf("Nop.Notify() = %d, %v", id, err)
	}
	if err := n.Close(1); err != nil {
		t.Errorf("Nop.Close() = %v", err)
	}
}
