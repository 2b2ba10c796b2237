package cli

import "time"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	// Now is the clock used for all derived date statuses. Injectable
	// so tests can pin it.
	Now func() time.Time
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and the
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
