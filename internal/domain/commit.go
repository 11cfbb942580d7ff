package domain

import "time"

// Commit is one scheduled entry of the synthetic history. Commits are
// replayed in sequence order; timestamps never decrease.
type Commit struct {
	Sequence  int
	Timestamp time.Time
	Author    Contributor
	Message   string
	Files     []string
}
