package prompt

import (
	"os"

	"golang.org/x/term"
)

var token = []byte(": ")

// Out writes the prompt token straight to stdout, so it is visible before
// the blocking read starts and safe to call from the signal watcher.
func Out() {
	_, _ = os.Stdout.Write(token)
}

// Interactive reports whether stdin is attached to a terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
