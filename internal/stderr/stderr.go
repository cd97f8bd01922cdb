//go:build unix

// Package stderr keeps what C libraries (ALSA, faad2, taglib) print on file
// descriptor 2 off the terminal while the TUI owns it. Captured lines are
// logged and offered to the UI on Messages.
package stderr

import (
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

type capture struct {
	mu    sync.Mutex
	saved int // duplicate of the original fd 2, -1 when idle
	r, w  *os.File
	done  chan struct{}
}

var global = capture{saved: -1}

// Start points fd 2 at a pipe drained into the log. It must run before the
// decoders are first used. On error fd 2 is left untouched.
func Start() error {
	return global.start(int(os.Stderr.Fd()))
}

// Stop restores fd 2 and waits for captured lines to be forwarded.
func Stop() {
	global.stop(int(os.Stderr.Fd()))
}

func (c *capture) start(fd int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.saved >= 0 {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return errors.Wrap(err, "create pipe")
	}
	saved, err := unix.Dup(fd)
	if err != nil {
		_ = r.Close()
		_ = w.Close()
		return errors.Wrap(err, "duplicate stderr")
	}
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		_ = unix.Close(saved)
		_ = r.Close()
		_ = w.Close()
		return errors.Wrap(err, "redirect stderr")
	}

	c.saved, c.r, c.w = saved, r, w
	c.done = make(chan struct{})
	go func() {
		defer close(c.done)
		forward(r, Messages)
	}()
	return nil
}

func (c *capture) stop(fd int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.saved < 0 {
		return
	}

	// fd 2 still refers to the pipe; both must go before the reader sees EOF
	_ = unix.Dup2(c.saved, fd)
	_ = unix.Close(c.saved)
	_ = c.w.Close()
	<-c.done
	_ = c.r.Close()
	c.saved = -1
}
