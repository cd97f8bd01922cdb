//go:build linux

package mpris

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/comrad/internal/playback"
)

var errQueueFull = errors.New("player busy")

// Adapter connects a playback session to MPRIS over D-Bus. Method calls
// are queued on the Remote and run by the render loop; properties are
// answered from the last snapshot.
type Adapter struct {
	service playback.Service
	server  *server.Server
	events  *events.EventHandler
	player  *playerAdapter
	sub     *playback.Subscription
	done    chan struct{}
	wg      sync.WaitGroup
}

// New creates and starts a new MPRIS adapter.
func New(service playback.Service, remote *playback.Remote) (*Adapter, error) {
	pa := &playerAdapter{remote: remote}
	pa.publish(service.Snapshot())

	a := &Adapter{
		service: service,
		player:  pa,
		sub:     service.Subscribe(),
		done:    make(chan struct{}),
	}
	a.server = server.NewServer("comrad", &rootAdapter{}, pa)
	a.events = events.NewEventHandler(a.server)

	go func() {
		if err := a.server.Listen(); err != nil {
			log.Warn().Err(err).Msg("mpris listen")
		}
	}()

	a.wg.Add(1)
	go a.watch()

	return a, nil
}

// Publish replaces the snapshot properties are read from.
func (a *Adapter) Publish(snap playback.Snapshot) {
	a.player.publish(snap)
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	close(a.done)
	a.wg.Wait()
	return a.server.Stop()
}

// watch turns session events into PropertiesChanged signals.
func (a *Adapter) watch() {
	defer a.wg.Done()
	for {
		var err error
		select {
		case <-a.done:
			return
		case <-a.sub.Done:
			return
		case <-a.sub.StateChanged:
			a.refresh()
			err = a.events.Player.OnPlayPause()
		case <-a.sub.TrackChanged:
			a.refresh()
			err = a.events.Player.OnTitle()
		case e := <-a.sub.PositionChanged:
			a.refresh()
			err = a.events.Player.OnSeek(types.Microseconds(e.Position.Microseconds()))
		case <-a.sub.ModeChanged:
			a.refresh()
			err = a.events.Player.OnOptions()
		case <-a.sub.QueueChanged:
		case <-a.sub.Error:
		}
		if err != nil {
			log.Debug().Err(err).Msg("mpris signal")
		}
	}
}

func (a *Adapter) refresh() {
	a.player.publish(a.service.Snapshot())
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Comrad", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/wav", "audio/mp4"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional interfaces.
type playerAdapter struct {
	remote *playback.Remote

	mu   sync.RWMutex
	snap playback.Snapshot
}

func (p *playerAdapter) publish(snap playback.Snapshot) {
	p.mu.Lock()
	p.snap = snap
	p.mu.Unlock()
}

func (p *playerAdapter) snapshot() playback.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

func (p *playerAdapter) send(req playback.Request) error {
	if !p.remote.Send(req) {
		return errQueueFull
	}
	return nil
}

func (p *playerAdapter) Next() error {
	return p.send(playback.Request{Cmd: playback.CmdNext})
}

func (p *playerAdapter) Previous() error {
	return p.send(playback.Request{Cmd: playback.CmdPrevious})
}

func (p *playerAdapter) Pause() error {
	return p.send(playback.Request{Cmd: playback.CmdPause})
}

func (p *playerAdapter) PlayPause() error {
	return p.send(playback.Request{Cmd: playback.CmdPlayPause})
}

func (p *playerAdapter) Stop() error {
	return p.send(playback.Request{Cmd: playback.CmdStop})
}

func (p *playerAdapter) Play() error {
	return p.send(playback.Request{Cmd: playback.CmdPlay})
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.send(seekRequest(p.snapshot(), offset))
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	snap := p.snapshot()
	// Requests naming another track are stale.
	if snap.NowPlaying == "" || trackID != formatTrackID(snap.NowPlaying) {
		return nil
	}
	return p.send(seekRequest(playback.Snapshot{}, position))
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.snapshot().State), nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return metadata(p.snapshot()), nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.snapshot().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.send(playback.Request{Cmd: playback.CmdSetVolume, Volume: min(max(v, 0), 1)})
}

func (p *playerAdapter) Position() (int64, error) {
	return p.snapshot().Elapsed.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return len(p.snapshot().Queue) > 0, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return len(p.snapshot().Queue) > 0, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.snapshot().NowPlaying != "", nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.snapshot().Total > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return loopStatus(p.snapshot().Repeat), nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	return p.send(playback.Request{Cmd: playback.CmdSetRepeat, Repeat: repeatMode(status)})
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.snapshot().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	return p.send(playback.Request{Cmd: playback.CmdSetShuffle, Shuffle: shuffle})
}
