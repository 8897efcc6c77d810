package syncer

// Event is a payload-free statistics notification. The scanner emits one
// EventFoundSource per matching document; the coordinator resolves each
// document to exactly one of EventSkippedExisting or EventCopied.
type Event int

const (
	EventFoundSource Event = iota
	EventSkippedExisting
	EventCopied
)

func (e Event) String() string {
	switch e {
	case EventFoundSource:
		return "found_source"
	case EventSkippedExisting:
		return "skipped_existing"
	case EventCopied:
		return "copied"
	default:
		return "unknown"
	}
}

// Summary holds the counters of one completed run. For any run that
// resolved every found document, Found == Skipped + Copied.
type Summary struct {
	Found   int
	Skipped int
	Copied  int
}

// collectStats tallies events until the channel closes. It never fails;
// closure of the event channel is its only termination signal.
func collectStats(events <-chan Event) Summary {
	var s Summary
	for event := range events {
		switch event {
		case EventFoundSource:
			s.Found++
		case EventSkippedExisting:
			s.Skipped++
		case EventCopied:
			s.Copied++
		}
	}
	return s
}
