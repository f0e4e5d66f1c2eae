// Package jobs tracks background children from spawn until they are reaped
// or force-killed at shutdown.
package jobs

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"smallsh/internal/trace"
)

type Manager struct {
	pids map[int]bool
	out  io.Writer
}

func NewManager() *Manager {
	return &Manager{
		pids: make(map[int]bool),
		out:  os.Stdout,
	}
}

// SetOutput redirects completion reports, used by tests.
func (m *Manager) SetOutput(w io.Writer) {
	m.out = w
}

// Add registers a spawned background child.
func (m *Manager) Add(pid int) {
	m.pids[pid] = true
	trace.L().Info("background child registered", zap.Int("pid", pid))
}

// Live returns the number of background children not yet reaped.
func (m *Manager) Live() int {
	return len(m.pids)
}

// Sweep reaps every already-terminated child without blocking and reports
// each completion unless quiet is set. It returns as soon as no terminated
// child is pending.
func (m *Manager) Sweep(quiet bool) {
	for {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(-1, &ws, unix.WNOHANG, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil || pid <= 0 {
			return
		}

		delete(m.pids, pid)
		trace.L().Info("background child reaped",
			zap.Int("pid", pid), zap.Bool("signaled", ws.Signaled()))

		if quiet {
			continue
		}
		if ws.Signaled() {
			fmt.Fprintf(m.out, "background pid %d is done: terminated by signal %d\n", pid, ws.Signal())
		} else {
			fmt.Fprintf(m.out, "background pid %d is done: exit value %d\n", pid, ws.ExitStatus())
		}
	}
}

// Shutdown force-kills every background child still registered. It does not
// wait for them to die; process exit reclaims whatever remains.
func (m *Manager) Shutdown() {
	for pid := range m.pids {
		_ = unix.Kill(pid, unix.SIGKILL)
		trace.L().Info("background child killed at shutdown", zap.Int("pid", pid))
	}
	m.pids = make(map[int]bool)
}
