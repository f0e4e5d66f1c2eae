package state

import (
	"bytes"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"golang.org/x/sys/unix"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDescribeInitial(t *testing.T) {
	assert.Equal(t, "exit value 0", New().Describe())
}

func TestDescribeExit(t *testing.T) {
	st := New()
	st.SetLastExit(2)
	assert.Equal(t, "exit value 2", st.Describe())
}

func TestDescribeSignal(t *testing.T) {
	st := New()
	st.SetLastWait(unix.WaitStatus(unix.SIGTERM))
	assert.Equal(t, "terminated by signal 15", st.Describe())
}

func TestToggle(t *testing.T) {
	st := New()
	assert.False(t, st.ForegroundOnly())
	assert.True(t, st.Toggle())
	assert.True(t, st.ForegroundOnly())
	assert.False(t, st.Toggle())
	assert.False(t, st.ForegroundOnly())
}

func TestWatchTogglesAndNotifies(t *testing.T) {
	st := New()
	var out bytes.Buffer
	st.NoticeOut = &out

	sigs := make(chan os.Signal)
	done := make(chan struct{})
	go func() {
		st.Watch(sigs)
		close(done)
	}()

	sigs <- syscall.SIGTSTP
	sigs <- syscall.SIGTSTP
	close(sigs)
	<-done

	assert.False(t, st.ForegroundOnly())
	assert.Equal(t,
		"\nEntering foreground-only mode (& is now ignored)\n"+
			"\nExiting foreground-only mode\n",
		out.String())
}

func TestWatchIgnoresInterrupt(t *testing.T) {
	st := New()
	var out bytes.Buffer
	st.NoticeOut = &out

	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	go func() {
		st.Watch(sigs)
		close(done)
	}()

	sigs <- syscall.SIGINT
	close(sigs)
	<-done

	assert.False(t, st.ForegroundOnly())
	assert.Empty(t, out.String())
}
