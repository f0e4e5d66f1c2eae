// Package state holds the process-wide shell state: the foreground-only
// mode flag and the outcome of the last foreground child.
package state

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"

	"smallsh/internal/prompt"
)

var (
	enterNotice = []byte("\nEntering foreground-only mode (& is now ignored)\n")
	exitNotice  = []byte("\nExiting foreground-only mode\n")
)

// State is shared between the main loop and the signal watcher. The
// foreground-only flag is the only value that crosses that boundary;
// the last wait status belongs to the main loop alone.
type State struct {
	fgOnly atomic.Bool
	last   unix.WaitStatus

	// NoticeOut receives the mode-toggle notices as single raw writes.
	NoticeOut io.Writer
}

func New() *State {
	return &State{NoticeOut: os.Stdout}
}

// ForegroundOnly reports whether '&' requests are currently ignored.
func (s *State) ForegroundOnly() bool {
	return s.fgOnly.Load()
}

// Toggle flips foreground-only mode and returns the new value.
func (s *State) Toggle() bool {
	next := !s.fgOnly.Load()
	s.fgOnly.Store(next)
	return next
}

// SetLastWait records the raw wait status of the last foreground child.
func (s *State) SetLastWait(ws unix.WaitStatus) {
	s.last = ws
}

// SetLastExit records a synthetic normal exit with the given code, encoded
// in the kernel's wait status layout.
func (s *State) SetLastExit(code int) {
	s.last = unix.WaitStatus(code << 8)
}

// Describe renders the last foreground outcome for the status builtin.
func (s *State) Describe() string {
	if s.last.Signaled() {
		return fmt.Sprintf("terminated by signal %d", s.last.Signal())
	}
	return fmt.Sprintf("exit value %d", s.last.ExitStatus())
}

// Watch consumes signals until sigs is closed. SIGTSTP toggles
// foreground-only mode and emits the matching notice; the toggle path only
// flips one atomic and performs one precomposed write. SIGINT deliveries
// are consumed so the shell never dies on Ctrl-C, while spawned children
// revert to the default disposition on exec and still do. On a terminal
// the pending prompt is re-issued after a notice.
func (s *State) Watch(sigs <-chan os.Signal) {
	for sig := range sigs {
		if sig != syscall.SIGTSTP {
			continue
		}
		if s.Toggle() {
			_, _ = s.NoticeOut.Write(enterNotice)
		} else {
			_, _ = s.NoticeOut.Write(exitNotice)
		}
		if prompt.Interactive() {
			prompt.Out()
		}
	}
}
