package syncer

import (
	"context"
	"io"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/booksync/pkg/config"
	"github.com/walteh/booksync/pkg/status"
)

// scanAll runs the scanner over cfg's documents directories and returns
// the candidate paths and the number of FoundSource events.
func scanAll(t *testing.T, cfg *config.Config) ([]string, int, error) {
	t.Helper()
	s := New(cfg, status.NewPrinter(io.Discard))

	candidates := make(chan string, 256)
	events := make(chan Event, 256)
	err := s.scan(context.Background(), candidates, events)
	close(candidates)
	close(events)

	var paths []string
	for path := range candidates {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	found := 0
	for event := range events {
		if event == EventFoundSource {
			found++
		}
	}
	return paths, found, err
}

func TestScanFiltersByExtension(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "a.epub", "a")
	writeFile(t, src, "b.pdf", "b")
	writeFile(t, src, "c.txt", "c")
	writeFile(t, src, "d.mobi", "d")
	writeFile(t, src, "noext", "e")

	cfg := testConfig(t, t.TempDir(), src)
	paths, found, err := scanAll(t, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(src, "a.epub"),
		filepath.Join(src, "b.pdf"),
	}, paths)
	assert.Equal(t, len(paths), found, "one FoundSource event per candidate")
}

func TestScanIsCaseSensitive(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "upper.EPUB", "a")
	writeFile(t, src, "lower.epub", "b")

	cfg := testConfig(t, t.TempDir(), src)
	paths, _, err := scanAll(t, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(src, "lower.epub")}, paths)
}

func TestScanWalksNestedDirectories(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, filepath.Join("a", "b", "deep.epub"), "deep")
	writeFile(t, src, "top.pdf", "top")

	cfg := testConfig(t, t.TempDir(), src)
	paths, _, err := scanAll(t, cfg)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestScanIgnorePatterns(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "keep.epub", "keep")
	writeFile(t, src, "skip.draft.epub", "skip")
	writeFile(t, src, filepath.Join("drafts", "wip.pdf"), "wip")

	cfg := testConfig(t, t.TempDir(), src)
	cfg.Ignore = []string{"*.draft.epub", "drafts/**"}

	paths, found, err := scanAll(t, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(src, "keep.epub")}, paths)
	assert.Equal(t, 1, found, "ignored files are not counted")
}

func TestScanMissingDirectoryFails(t *testing.T) {
	src := t.TempDir()
	cfg := testConfig(t, t.TempDir(), src)
	// The directory disappears after validation.
	cfg.DocumentsDirs = []string{filepath.Join(src, "gone")}

	_, _, err := scanAll(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "walking")
}
