//go:build linux

package notify

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBus struct {
	method string
	args   []any
	reply  []any
	err    error
}

func (f *fakeBus) Call(method string, _ dbus.Flags, args ...any) *dbus.Call {
	f.method = method
	f.args = args
	return &dbus.Call{Body: f.reply, Err: f.err}
}

func TestDBusNotifier_Notify(t *testing.T) {
	bus := &fakeBus{reply: []any{uint32(12)}}
	n := &dbusNotifier{obj: bus}

	id, err := n.Notify(Notification{
		Title:      "Song",
		Body:       "Band - LP",
		Icon:       "/m/cover.jpg",
		Timeout:    5000,
		ReplacesID: 3,
		Urgency:    UrgencyCritical,
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(12), id)

	assert.Equal(t, "org.freedesktop.Notifications.Notify", bus.method)
	require.Len(t, bus.args, 8)
	assert.Equal(t, appName, bus.args[0])
	assert.Equal(t, uint32(3), bus.args[1])
	assert.Equal(t, "/m/cover.jpg", bus.args[2])
	assert.Equal(t, "Song", bus.args[3])
	assert.Equal(t, "Band - LP", bus.args[4])
	assert.Equal(t, int32(5000), bus.args[7])

	hints, ok := bus.args[6].(map[string]dbus.Variant)
	require.True(t, ok)
	assert.Equal(t, byte(UrgencyCritical), hints["urgency"].Value())
	assert.Equal(t, appID, hints["desktop-entry"].Value())
}

func TestDBusNotifier_NotifyError(t *testing.T) {
	n := &dbusNotifier{obj: &fakeBus{err: errors.New("no server")}}

	id, err := n.Notify(Notification{Title: "x"})
	assert.Error(t, err)
	assert.Zero(t, id)
}

func TestDBusNotifier_BadReply(t *testing.T) {
	n := &dbusNotifier{obj: &fakeBus{reply: []any{"not an id"}}}

	_, err := n.Notify(Notification{Title: "x"})
	assert.Error(t, err)
}

func TestDBusNotifier_Close(t *testing.T) {
	bus := &fakeBus{}
	n := &dbusNotifier{obj: bus}

	require.NoError(t, n.Close(9))
	assert.Equal(t, "org.freedesktop.Notifications.CloseNotification", bus.method)
	assert.Equal(t, []any{uint32(9)}, bus.args)

	bus.err = errors.New("gone")
	assert.Error(t, n.Close(9))
}
