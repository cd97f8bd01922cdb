package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveSession(state Session)
	GetSession() (*Session, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
