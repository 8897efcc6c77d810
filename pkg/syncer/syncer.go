// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package syncer implements the synchronisation pipeline: a scanner that
// walks the documents directories, a coordinator that resolves each found
// document against the device and dispatches copies, and a statistics
// collector that tallies the outcome. The stages run concurrently and are
// connected by bounded channels; closing the sending side of a channel is
// the only termination signal a stage receives.
package syncer

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/booksync/pkg/config"
	"github.com/walteh/booksync/pkg/status"
)

// 🔄 Syncer runs one synchronisation pass from the documents directories
// onto the device
type Syncer struct {
	cfg        *config.Config
	printer    *status.Printer
	extensions map[string]bool
}

// 🏭 New creates a syncer for the given configuration
func New(cfg *config.Config, printer *status.Printer) *Syncer {
	extensions := make(map[string]bool, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		extensions[strings.TrimPrefix(ext, ".")] = true
	}
	return &Syncer{
		cfg:        cfg,
		printer:    printer,
		extensions: extensions,
	}
}

// Run executes one synchronisation pass and returns its summary.
//
// The scanner and the statistics collector run as separate goroutines; the
// coordinator runs on the calling goroutine and waits for every copy it
// dispatched before returning. Once the coordinator and the scanner have
// both finished, no more events can be produced, the event channel is
// closed and the collector drains. The summary is only printed for
// successful runs; a failed run stops after its first fatal error.
func (s *Syncer) Run(ctx context.Context) (Summary, error) {
	queueSize := s.cfg.QueueSize
	if queueSize <= 0 {
		queueSize = config.DefaultQueueSize
	}
	candidates := make(chan string, queueSize)
	events := make(chan Event, queueSize)

	zerolog.Ctx(ctx).Debug().
		Str("device_dir", s.cfg.DeviceDir).
		Strs("documents_dirs", s.cfg.DocumentsDirs).
		Bool("dry_run", s.cfg.DryRun).
		Int("queue_size", queueSize).
		Msg("starting sync run")

	scanDone := make(chan error, 1)
	go func() {
		err := s.scan(ctx, candidates, events)
		close(candidates)
		scanDone <- err
	}()

	statsDone := make(chan Summary, 1)
	go func() {
		statsDone <- collectStats(events)
	}()

	coordErr := s.coordinate(ctx, candidates, events)
	if coordErr != nil {
		// The scanner may still be blocked sending candidates nobody will
		// consume; drain until it closes the channel.
		go func() {
			for range candidates {
			}
		}()
	}
	scanErr := <-scanDone
	close(events)
	summary := <-statsDone

	if coordErr != nil {
		return summary, coordErr
	}
	if scanErr != nil {
		return summary, scanErr
	}

	s.printer.Summary(s.cfg.DocumentsDirs, summary.Found, summary.Skipped, summary.Copied)
	return summary, nil
}
