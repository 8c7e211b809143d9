package process

import (
	"bytes"
	"io"
	"os/exec"
	"sync/atomic"
	"time"
)

// Handle is a started child process together with the two pipes carrying its
// stdout and stderr. It is created by Start and consumed once by Collect.
type Handle struct {
	id      string
	path    string
	args    []string
	started time.Time

	cmd    *exec.Cmd
	stdout *drain
	stderr *drain

	collected atomic.Bool
}

// ID returns the unique identifier assigned at launch.
func (h *Handle) ID() string { return h.id }

// Path returns the executable the process was started from.
func (h *Handle) Path() string { return h.path }

// Args returns a copy of the arguments passed to the executable.
func (h *Handle) Args() []string { return append([]string{}, h.args...) }

// Pid returns the operating system process id.
func (h *Handle) Pid() int { return h.cmd.Process.Pid }

// StartedAt returns when the process was launched.
func (h *Handle) StartedAt() time.Time { return h.started }

// drain reads one pipe to EOF on its own goroutine.
type drain struct {
	buf  bytes.Buffer
	err  error
	done chan struct{}
}

func startDrain(r io.Reader) *drain {
	d := &drain{done: make(chan struct{})}
	go func() {
		defer close(d.done)
		_, d.err = d.buf.ReadFrom(r)
	}()
	return d
}

// wait blocks until the pipe reached EOF and returns everything read.
func (d *drain) wait() ([]byte, error) {
	<-d.done
	return d.buf.Bytes(), d.err
}
