// Package player owns the audio output pipeline built on beep.
package player

import (
	"os"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

var (
	// ErrNoStream is returned when seeking with nothing loaded.
	ErrNoStream = errors.New("no stream loaded")
	// ErrSeekRange is returned when a seek target lies outside the stream.
	ErrSeekRange = errors.New("seek position out of range")
)

// Player guards a single output behind a mutex that is only ever taken
// with TryLock from the render loop.
type Player struct {
	mu  sync.Mutex
	out *output
}

// New creates a player. The speaker is initialised lazily on the first
// successful Play, at that track's sample rate.
func New() *Player {
	return &Player{out: &output{level: 1}}
}

// Try runs fn with exclusive access to the device. It never blocks:
// when the device is busy it returns false without calling fn.
func (p *Player) Try(fn func(Device)) bool {
	if !p.mu.TryLock() {
		return false
	}
	defer p.mu.Unlock()
	fn(p.out)
	return true
}

// Close stops output and closes the current stream.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.out.release()
	return nil
}

// output is the Device implementation. All methods run with Player.mu held.
type output struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	volume   *effects.Volume
	path     string

	level float64

	speakerReady bool
	speakerRate  beep.SampleRate
}

func (o *output) Play(path string) error {
	o.release()

	f, err := os.Open(path)
	if err != nil {
		return &MediaError{Path: path, Err: err}
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return &MediaError{Path: path, Err: err}
	}

	if err := o.ensureSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		f.Close()
		return &MediaError{Path: path, Err: err}
	}

	// Resample if the track's sample rate differs from the speaker's
	var s beep.Streamer = streamer
	if format.SampleRate != o.speakerRate {
		s = beep.Resample(4, format.SampleRate, o.speakerRate, streamer)
	}

	o.file = f
	o.streamer = streamer
	o.format = format
	o.path = path
	o.volume = &effects.Volume{Streamer: s, Base: 2}
	o.volume.Volume, o.volume.Silent = levelToVolume(o.level)

	speaker.Play(o.volume)
	return nil
}

func (o *output) Pause() {
	o.release()
}

func (o *output) Seek(pos time.Duration) error {
	if o.streamer == nil {
		return ErrNoStream
	}
	n := o.format.SampleRate.N(pos)
	if n < 0 || n > o.streamer.Len() {
		return ErrSeekRange
	}

	speaker.Lock()
	err := o.streamer.Seek(n)
	speaker.Unlock()
	return err
}

func (o *output) SetVolume(level float64) {
	o.level = clampLevel(level)
	if o.volume == nil {
		return
	}
	speaker.Lock()
	o.volume.Volume, o.volume.Silent = levelToVolume(o.level)
	speaker.Unlock()
}

func (o *output) ensureSpeaker(rate beep.SampleRate) error {
	if o.speakerReady {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}
	o.speakerReady = true
	o.speakerRate = rate
	return nil
}

// release silences the speaker and closes the current stream, leaving
// the speaker itself initialised and idle.
func (o *output) release() {
	if o.speakerReady {
		speaker.Clear()
	}
	if o.streamer != nil {
		_ = o.streamer.Close()
	}
	if o.file != nil {
		// Some decoders already closed it
		_ = o.file.Close()
	}
	o.file = nil
	o.streamer = nil
	o.volume = nil
	o.path = ""
}
