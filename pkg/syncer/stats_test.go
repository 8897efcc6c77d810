package syncer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectStats(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   Summary
	}{
		{
			name: "empty",
			want: Summary{},
		},
		{
			name:   "balanced_run",
			events: []Event{EventFoundSource, EventFoundSource, EventCopied, EventSkippedExisting},
			want:   Summary{Found: 2, Copied: 1, Skipped: 1},
		},
		{
			name:   "interleaving_does_not_matter",
			events: []Event{EventCopied, EventFoundSource, EventSkippedExisting, EventFoundSource},
			want:   Summary{Found: 2, Copied: 1, Skipped: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make(chan Event, len(tt.events))
			for _, event := range tt.events {
				events <- event
			}
			close(events)

			got := collectStats(events)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Found, got.Skipped+got.Copied, "conservation invariant")
		})
	}
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "found_source", EventFoundSource.String())
	assert.Equal(t, "skipped_existing", EventSkippedExisting.String())
	assert.Equal(t, "copied", EventCopied.String())
	assert.Equal(t, "unknown", Event(42).String())
}
