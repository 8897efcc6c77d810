package syncer

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// coordinate consumes candidate paths until the channel closes. Each
// candidate is resolved to exactly one outcome: a dispatched copy task
// (EventCopied, emitted at dispatch) or a skip because the document already
// exists on the device (EventSkippedExisting). Any other failure aborts the
// loop.
//
// After the candidate channel closes, every dispatched task is awaited in
// dispatch order. All tasks are awaited even after a failure; only the
// first error is surfaced.
func (s *Syncer) coordinate(ctx context.Context, candidates <-chan string, events chan<- Event) error {
	logger := zerolog.Ctx(ctx)

	var tasks []*copyTask
	var loopErr error

	for src := range candidates {
		name := filepath.Base(src)
		if name == "" || name == "." || name == string(filepath.Separator) {
			// No usable final component; not an error and not counted.
			logger.Debug().Str("path", src).Msg("dropping candidate without a file name")
			continue
		}
		dest := filepath.Join(s.cfg.DeviceDir, name)

		task, err := s.dispatchCopy(src, dest)
		switch {
		case err == nil:
			tasks = append(tasks, task)
			events <- EventCopied
		case errors.Is(err, fs.ErrExist):
			s.printer.Skipped(dest)
			events <- EventSkippedExisting
		default:
			loopErr = err
		}
		if loopErr != nil {
			break
		}
	}

	var taskErr error
	for _, task := range tasks {
		if err := task.wait(); err != nil && taskErr == nil {
			taskErr = err
		}
	}

	if loopErr != nil {
		return loopErr
	}
	return taskErr
}

// dispatchCopy starts one copy of src to dest and returns its handle. The
// destination is claimed with an atomic exclusive create on the calling
// goroutine, so two candidates resolving to the same name can never both
// dispatch; the loser sees fs.ErrExist. In dry-run mode nothing on the
// filesystem is touched and the task only reports the intention.
func (s *Syncer) dispatchCopy(src, dest string) (*copyTask, error) {
	if s.cfg.DryRun {
		return startDryRun(s.printer, src, dest), nil
	}

	in, err := os.Open(src)
	if err != nil {
		return nil, errors.Errorf("opening %s: %w", src, err)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		in.Close()
		if errors.Is(err, fs.ErrExist) {
			return nil, err
		}
		return nil, errors.Errorf("creating %s: %w", dest, err)
	}

	return startCopy(s.printer, in, out, src, dest), nil
}
