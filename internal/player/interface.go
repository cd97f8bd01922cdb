package player

import "time"

// Device is the exclusive decode/output resource. Callers only reach it
// through Interface.Try, which guarantees exclusive access for the
// duration of the callback.
type Device interface {
	// Play opens path, decodes it and starts output, replacing whatever
	// was playing. Open and decode failures are *MediaError.
	Play(path string) error
	// Pause halts output and leaves an idle sink in place. Volume is kept.
	Pause()
	// Seek repositions the current stream. It fails with ErrNoStream when
	// nothing is loaded and ErrSeekRange when pos is outside the stream.
	Seek(pos time.Duration) error
	// SetVolume applies a normalized 0.0-1.0 gain immediately.
	SetVolume(level float64)
}

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	// Try runs fn with the device if it can be acquired without blocking.
	// It reports whether fn ran.
	Try(fn func(Device)) bool
	// Close releases the output, waiting for any in-flight Try.
	Close() error
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
