package output

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows progress for a long-running step. On a non-TTY it
// degrades to a single plain line when created and one when finished.
type Spinner struct {
	w       io.Writer
	term    *termenv.Output
	styles  Styles
	msg     string
	enabled bool

	mu      sync.Mutex
	stop    chan struct{}
	wg      sync.WaitGroup
	stopped bool
}

// NewSpinner starts a spinner with the given message.
func (r *Renderer) NewSpinner(msg string) *Spinner {
	s := &Spinner{
		w:       r.out,
		styles:  r.styles,
		msg:     msg,
		enabled: r.isTTY,
	}
	if !s.enabled {
		fmt.Fprintln(s.w, msg)
		return s
	}

	s.term = termenv.NewOutput(r.out)
	s.term.HideCursor()
	s.stop = make(chan struct{})
	s.wg.Add(1)
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer s.wg.Done()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.term.ClearLine()
			fmt.Fprintf(s.w, "\r%s %s", s.styles.Info.Render(spinnerFrames[frame]), s.msg)
			frame = (frame + 1) % len(spinnerFrames)
		}
	}
}

// Success stops the spinner and prints a confirmation line.
func (s *Spinner) Success(msg string) {
	s.finish(s.styles.StatusSuccess.String(), msg)
}

// Fail stops the spinner and prints a failure line.
func (s *Spinner) Fail(msg string) {
	s.finish(s.styles.StatusFailed.String(), msg)
}

// Stop halts the spinner without a final message.
func (s *Spinner) Stop() {
	s.finish("", "")
}

func (s *Spinner) finish(icon, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true

	if s.enabled {
		close(s.stop)
		s.wg.Wait()
		s.term.ClearLine()
		fmt.Fprint(s.w, "\r")
		s.term.ShowCursor()
	}
	if msg != "" {
		fmt.Fprintf(s.w, "%s %s\n", icon, msg)
	}
}
