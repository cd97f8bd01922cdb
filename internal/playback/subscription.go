package playback

// eventBufferSize is how many events of each kind a subscriber may fall
// behind by before further ones are dropped.
const eventBufferSize = 16

// Subscription delivers session events, one buffered channel per kind.
// Done closes when the session is closed.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	PositionChanged <-chan PositionChange
	QueueChanged    <-chan QueueChange
	ModeChanged     <-chan ModeChange
	Error           <-chan ErrorEvent
	Done            <-chan struct{}

	state    chan StateChange
	track    chan TrackChange
	position chan PositionChange
	queue    chan QueueChange
	mode     chan ModeChange
	errs     chan ErrorEvent
	done     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		state:    make(chan StateChange, eventBufferSize),
		track:    make(chan TrackChange, eventBufferSize),
		position: make(chan PositionChange, eventBufferSize),
		queue:    make(chan QueueChange, eventBufferSize),
		mode:     make(chan ModeChange, eventBufferSize),
		errs:     make(chan ErrorEvent, eventBufferSize),
		done:     make(chan struct{}),
	}
	s.StateChanged, s.TrackChanged, s.PositionChanged = s.state, s.track, s.position
	s.QueueChanged, s.ModeChanged, s.Error = s.queue, s.mode, s.errs
	s.Done = s.done
	return s
}

func (s *Subscription) close() {
	close(s.done)
}

// deliver routes e to the channel of its kind. It never blocks.
func (s *Subscription) deliver(e any) {
	switch e := e.(type) {
	case StateChange:
		offer(s.state, e)
	case TrackChange:
		offer(s.track, e)
	case PositionChange:
		offer(s.position, e)
	case QueueChange:
		offer(s.queue, e)
	case ModeChange:
		offer(s.mode, e)
	case ErrorEvent:
		offer(s.errs, e)
	default:
		panic("playback: unknown event type")
	}
}

func offer[T any](ch chan<- T, v T) {
	select {
	case ch <- v:
	default:
	}
}
