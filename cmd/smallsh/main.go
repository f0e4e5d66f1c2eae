package main

import (
	"bufio"
	"os"
	"os/signal"
	"syscall"

	"smallsh/internal/jobs"
	"smallsh/internal/parser"
	"smallsh/internal/prompt"
	"smallsh/internal/state"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)

	st := state.New()
	jm := jobs.NewManager()

	// The watcher owns both signals: SIGTSTP toggles foreground-only mode,
	// SIGINT is swallowed so only the foreground child dies on Ctrl-C.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTSTP)
	go st.Watch(sigs)

	pid := os.Getpid()

	for {
		jm.Sweep(st.ForegroundOnly())
		prompt.Out()

		if !scanner.Scan() {
			// EOF behaves like exit.
			break
		}

		cmd := parser.Parse(scanner.Text(), pid)
		if cmd == nil {
			continue
		}
		if cmd.Args[0] == "exit" {
			break
		}
		cmd.Run(st, jm)
	}

	jm.Shutdown()
}
