// Package spinner provides a small terminal progress indicator shown while
// a remote source is being fetched.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var frames = []string{"|", "/", "-", "\\"}

// Spinner animates a single status line on a terminal. On non-terminal
// writers Start and Stop are harmless no-ops apart from a carriage return.
type Spinner struct {
	writer  io.Writer
	message string
	delay   time.Duration

	mu     sync.Mutex
	active bool
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a spinner that writes to w with the given status message.
func New(w io.Writer, message string) *Spinner {
	return &Spinner{
		writer:  w,
		message: message,
		delay:   120 * time.Millisecond,
	}
}

// Start begins the animation. Calling Start on a running spinner does
// nothing.
func (s *Spinner) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(runCtx)
}

// Stop halts the animation and clears the status line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.cancel()
	done := s.done
	s.mu.Unlock()

	<-done

	if f, ok := s.writer.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(s.writer, "\r\033[2K")
	} else {
		fmt.Fprint(s.writer, "\r")
	}
}

func (s *Spinner) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Fprintf(s.writer, "\r%s %s", frames[i%len(frames)], s.message)
		}
	}
}
