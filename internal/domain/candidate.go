package domain

import (
	"sort"
	"time"
)

// Candidate is a file eligible for deletion.
// ModifiedAt is Unix seconds; Size is informational only.
type Candidate struct {
	Path       string
	ModifiedAt int64
	Size       int64
}

// ModTime returns the modification time as time.Time
func (c Candidate) ModTime() time.Time {
	return time.Unix(c.ModifiedAt, 0)
}

// CandidateQueue holds candidates oldest first and is consumed front to back.
type CandidateQueue struct {
	items []Candidate
}

// NewCandidateQueue sorts candidates ascending by modification time and
// wraps them in a queue. Equal timestamps keep their scan order.
func NewCandidateQueue(candidates []Candidate) *CandidateQueue {
	items := make([]Candidate, len(candidates))
	copy(items, candidates)
	SortOldestFirst(items)
	return &CandidateQueue{items: items}
}

// SortOldestFirst stable-sorts candidates ascending by ModifiedAt.
func SortOldestFirst(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ModifiedAt < candidates[j].ModifiedAt
	})
}

// Len returns the number of remaining candidates
func (q *CandidateQueue) Len() int {
	return len(q.items)
}

// IsEmpty returns true if no candidates remain
func (q *CandidateQueue) IsEmpty() bool {
	return len(q.items) == 0
}

// Pop removes and returns the oldest remaining candidate.
func (q *CandidateQueue) Pop() (Candidate, error) {
	if len(q.items) == 0 {
		return Candidate{}, ErrEmptyQueue
	}
	c := q.items[0]
	q.items = q.items[1:]
	return c, nil
}

// Remaining returns a copy of the candidates not yet consumed.
func (q *CandidateQueue) Remaining() []Candidate {
	out := make([]Candidate, len(q.items))
	copy(out, q.items)
	return out
}
