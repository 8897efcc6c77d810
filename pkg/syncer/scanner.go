package syncer

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// scan walks every documents directory and forwards matching file paths on
// the candidate channel, emitting one EventFoundSource per match. The
// directories are walked concurrently; a walk failure in any of them fails
// the scan, but the other walks still run to completion since the pipeline
// has no cancellation.
func (s *Syncer) scan(ctx context.Context, candidates chan<- string, events chan<- Event) error {
	g := new(errgroup.Group)
	for _, dir := range s.cfg.DocumentsDirs {
		dir := dir
		g.Go(func() error {
			return s.scanDir(ctx, dir, candidates, events)
		})
	}
	return g.Wait()
}

// scanDir recursively walks one documents directory. Symlinks are not
// followed. Extension matching is case-sensitive.
func (s *Syncer) scanDir(ctx context.Context, dir string, candidates chan<- string, events chan<- Event) error {
	logger := zerolog.Ctx(ctx)

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		if !s.extensions[ext] {
			return nil
		}
		if s.ignored(ctx, dir, path) {
			logger.Debug().Str("path", path).Msg("ignored by pattern")
			return nil
		}

		events <- EventFoundSource
		candidates <- path
		return nil
	})
	if err != nil {
		return errors.Errorf("walking %s: %w", dir, err)
	}
	return nil
}

// ignored reports whether path, relative to its documents directory,
// matches any of the configured ignore globs.
func (s *Syncer) ignored(ctx context.Context, dir, path string) bool {
	if len(s.cfg.Ignore) == 0 {
		return false
	}

	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range s.cfg.Ignore {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			zerolog.Ctx(ctx).Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
