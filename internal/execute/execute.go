package exec

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"smallsh/internal/jobs"
	"smallsh/internal/state"
	"smallsh/internal/trace"
)

// Command is one parsed directive: what to run, where its standard
// descriptors point, and whether the shell waits for it.
type Command struct {
	Args            []string
	InFile, OutFile string
	Background      bool
}

// Run dispatches a command: builtins run inside the shell, everything else
// is spawned. A background request is forced to the foreground while
// foreground-only mode is active; the flag is read exactly once, here.
func (cmd *Command) Run(st *state.State, jm *jobs.Manager) {
	switch cmd.Args[0] {
	case "cd":
		dir := os.Getenv("HOME")
		if len(cmd.Args) > 1 {
			dir = cmd.Args[1]
		}
		if err := os.Chdir(dir); err != nil {
			fmt.Fprintf(os.Stderr, "smallsh: %v\n", err)
		}
		return
	case "status":
		fmt.Println(st.Describe())
		return
	}

	cmd.launch(st, jm, cmd.Background && !st.ForegroundOnly())
}

func (cmd *Command) launch(st *state.State, jm *jobs.Manager, background bool) {
	binary, err := exec.LookPath(cmd.Args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "smallsh: %v\n", err)
		st.SetLastExit(1)
		return
	}

	in, err := openInput(cmd.InFile, background)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smallsh: %v\n", err)
		st.SetLastExit(1)
		return
	}
	stdin := os.Stdin
	if in != nil {
		defer in.Close()
		stdin = in
	}

	out, err := openOutput(cmd.OutFile, background)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smallsh: %v\n", err)
		st.SetLastExit(1)
		return
	}
	stdout := os.Stdout
	if out != nil {
		defer out.Close()
		stdout = out
	}

	// A background child gets its own process group so terminal-generated
	// SIGINT and SIGTSTP never reach it; a foreground child stays in the
	// shell's group and dies on Ctrl-C.
	pid, err := syscall.ForkExec(binary, cmd.Args, &syscall.ProcAttr{
		Env:   os.Environ(),
		Files: []uintptr{stdin.Fd(), stdout.Fd(), os.Stderr.Fd()},
		Sys:   &syscall.SysProcAttr{Setpgid: background},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "smallsh: %s: %v\n", cmd.Args[0], err)
		if err == syscall.EAGAIN || err == syscall.ENOMEM {
			// The fork itself failed; the shell cannot keep spawning.
			os.Exit(1)
		}
		st.SetLastExit(1)
		return
	}
	trace.L().Info("spawned",
		zap.String("cmd", cmd.Args[0]), zap.Int("pid", pid), zap.Bool("background", background))

	if background {
		fmt.Printf("background pid is %d\n", pid)
		jm.Add(pid)
		return
	}
	waitForeground(pid, st)
}

func waitForeground(pid int, st *state.State) {
	var ws unix.WaitStatus
	for {
		wpid, err := unix.Wait4(pid, &ws, 0, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "smallsh: wait: %v\n", err)
			return
		}
		if wpid == pid {
			break
		}
	}

	st.SetLastWait(ws)
	if ws.Signaled() {
		fmt.Printf("terminated by signal %d\n", ws.Signal())
	}
}

// openInput yields the file standard input is served from: the named
// redirection target, the null device for background children, or nil to
// inherit the shell's own descriptor.
func openInput(path string, background bool) (*os.File, error) {
	switch {
	case path != "":
		return os.Open(path)
	case background:
		return os.Open(os.DevNull)
	}
	return nil, nil
}

func openOutput(path string, background bool) (*os.File, error) {
	switch {
	case path != "":
		return os.Create(path)
	case background:
		return os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	}
	return nil, nil
}
