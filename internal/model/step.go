package model

import "strings"

// MaxListNameLength is the upper bound for a list name.
const MaxListNameLength = 100

// AutoTagMarker is the fixed tag applied to every item created from a step
// list, ahead of the list's own name.
const AutoTagMarker = "lista"

// StepEntry is one row in the list creator. Position is 1-based, dense, and
// recomputed by the builder on every structural change.
type StepEntry struct {
	Position int
	Label    string
}

// HasLabel reports whether the entry has a non-blank label after trimming.
func (e *StepEntry) HasLabel() bool {
	return strings.TrimSpace(e.Label) != ""
}

// StepItem is the submission-time record for a single step: the trimmed label
// plus the final tag sequence assigned when the payload is built.
type StepItem struct {
	Label string
	Tags  []string
}

// StepListPayload is assembled from the list creator form at submit time. It
// is derived data, never persisted as-is; the store turns it into list and
// item rows.
type StepListPayload struct {
	ListName    string
	CategoryID  int64
	Description string
	Steps       []StepItem
}
