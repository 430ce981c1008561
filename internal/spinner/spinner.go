// Package spinner shows progress on a terminal while artifacts download.
package spinner

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const interval = 80 * time.Millisecond

// Spinner animates a message on one line until stopped.
type Spinner struct {
	w        io.Writer
	message  string
	done     chan struct{}
	cleared  chan struct{}
	stopOnce sync.Once
}

// Start displays an animated spinner with the given message on w.
func Start(w io.Writer, message string) *Spinner {
	s := &Spinner{
		w:       w,
		message: message,
		done:    make(chan struct{}),
		cleared: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	width := runewidth.StringWidth(s.message) + 2
	i := 0
	for {
		select {
		case <-s.done:
			fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", width)) //nolint:errcheck
			close(s.cleared)
			return
		case <-ticker.C:
			fmt.Fprintf(s.w, "\r%s %s", frames[i%len(frames)], s.message) //nolint:errcheck
			i++
		}
	}
}

// Stop clears the spinner line. A non-empty final message is printed in its
// place. Stop is safe to call more than once; only the first call prints.
func (s *Spinner) Stop(final string) {
	first := false
	s.stopOnce.Do(func() {
		first = true
		close(s.done)
	})
	<-s.cleared
	if first && final != "" {
		fmt.Fprintln(s.w, final) //nolint:errcheck
	}
}
