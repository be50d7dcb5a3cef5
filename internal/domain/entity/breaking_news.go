package entity

import "time"

// BreakingNews represents a banner item surfaced above the reader pages.
// At most one item is shown at a time: the most recently created row with
// Active set. The URL may be site-relative or absolute.
type BreakingNews struct {
	ID        int64
	Title     string
	URL       string
	Active    bool
	CreatedAt time.Time
}
