//go:build !unix

package stderr

// Start is a no-op where the audio stack does not write to fd 2.
func Start() error { return nil }

// Stop is a no-op where the audio stack does not write to fd 2.
func Stop() {}
