package syncer

import (
	"io"
	"os"

	"github.com/walteh/booksync/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// copyTask is the handle of one in-flight copy. Tasks execute concurrently
// with the coordinator loop and with each other; the coordinator awaits
// them in dispatch order once the candidate channel is exhausted.
type copyTask struct {
	src  string
	dest string
	done chan error
}

// startCopy streams in to out on a fresh goroutine. The destination file
// was already created exclusively by the coordinator; the task never
// re-checks existence.
func startCopy(printer *status.Printer, in, out *os.File, src, dest string) *copyTask {
	t := &copyTask{src: src, dest: dest, done: make(chan error, 1)}
	go func() {
		t.done <- t.run(printer, in, out)
	}()
	return t
}

func (t *copyTask) run(printer *status.Printer, in, out *os.File) error {
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Errorf("copying %s to %s: %w", t.src, t.dest, err)
	}
	if err := out.Close(); err != nil {
		return errors.Errorf("closing %s: %w", t.dest, err)
	}

	printer.Copied(t.src, t.dest)
	return nil
}

// startDryRun reports the intention without performing any I/O. The
// resulting task always succeeds.
func startDryRun(printer *status.Printer, src, dest string) *copyTask {
	t := &copyTask{src: src, dest: dest, done: make(chan error, 1)}
	printer.WouldCopy(src, dest)
	t.done <- nil
	return t
}

// wait blocks until the task finishes and returns its result.
func (t *copyTask) wait() error {
	return <-t.done
}
