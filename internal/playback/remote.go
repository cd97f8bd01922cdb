package playback

import "time"

// Command identifies a remote request.
type Command int

const (
	CmdPlayPause Command = iota
	CmdPlay
	CmdPause
	CmdStop
	CmdNext
	CmdPrevious
	CmdSeek // absolute, uses Request.Position
	CmdSetRepeat
	CmdSetShuffle
	CmdSetVolume
)

// Request is a command plus its argument, if any.
type Request struct {
	Cmd      Command
	Position time.Duration
	Repeat   RepeatMode
	Shuffle  bool
	Volume   float64
}

const remoteBufferSize = 32

// Remote queues requests from other goroutines (D-Bus handlers) so they
// run on the render loop instead of racing it.
type Remote struct {
	ch chan Request
}

// NewRemote creates an empty request queue.
func NewRemote() *Remote {
	return &Remote{ch: make(chan Request, remoteBufferSize)}
}

// Send queues req. It never blocks and reports false when the queue is
// full.
func (r *Remote) Send(req Request) bool {
	select {
	case r.ch <- req:
		return true
	default:
		return false
	}
}

// Applier runs requests. Session is the production implementation.
type Applier interface {
	Apply(req Request)
}

// Drain applies every queued request to a and returns how many ran.
func (r *Remote) Drain(a Applier) int {
	n := 0
	for {
		select {
		case req := <-r.ch:
			a.Apply(req)
			n++
		default:
			return n
		}
	}
}

// Apply runs a single request.
func (s *Session) Apply(req Request) {
	switch req.Cmd {
	case CmdPlayPause:
		s.Play()
	case CmdPlay:
		if s.State() != StatePlaying {
			s.Play()
		}
	case CmdPause:
		if s.State() == StatePlaying {
			s.Play()
		}
	case CmdStop:
		s.Stop()
	case CmdNext:
		s.SkipForward()
	case CmdPrevious:
		s.SkipBackward()
	case CmdSeek:
		s.Seek(req.Position)
	case CmdSetRepeat:
		s.SetRepeat(req.Repeat)
	case CmdSetShuffle:
		s.SetShuffle(req.Shuffle)
	case CmdSetVolume:
		s.SetVolume(req.Volume)
	}
}
