//go:build !windows

// Package stderr captures stderr output from C libraries (ALSA, the speaker
// backend) that write directly to file descriptor 2, bypassing Go's os.Stderr.
// Captured lines go to the log file instead of corrupting the board.
package stderr

import (
	"fmt"
	"os"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
)

type capture struct {
	orig    int // duplicate of the terminal's fd 2
	r, w    *os.File
	drained chan struct{}
}

var (
	mu     sync.Mutex
	active *capture
)

// Start redirects fd 2 into log. Call it before the speaker is initialized.
// On error nothing is redirected and output keeps going to the terminal.
func Start(log zerolog.Logger) error {
	mu.Lock()
	defer mu.Unlock()
	if active != nil {
		return nil
	}

	fd := int(os.Stderr.Fd())
	r, w, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	orig, err := syscall.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return fmt.Errorf("dup stderr: %w", err)
	}
	if err := syscall.Dup2(int(w.Fd()), fd); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return fmt.Errorf("redirect stderr: %w", err)
	}

	c := &capture{orig: orig, r: r, w: w, drained: make(chan struct{})}
	go func() {
		defer close(c.drained)
		forward(r, log)
	}()
	active = c
	return nil
}

// Stop puts the terminal back on fd 2 and waits for captured lines to be logged.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	c := active
	if c == nil {
		return
	}
	active = nil

	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)

	// fd 2 no longer refers to the pipe, so closing w lets forward reach EOF
	c.w.Close()
	<-c.drained
	c.r.Close()
}
