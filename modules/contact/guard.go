package contact

import (
	"fmt"
	"strings"
	"time"
)

// DefaultMinElapsed is the shortest time a human takes to fill the form.
const DefaultMinElapsed = 3 * time.Second

// Guard runs the stateless bot heuristics: honeypot and speed gate.
type Guard struct {
	minElapsed time.Duration
	now        func() time.Time
}

// NewGuard creates a Guard. minElapsed can only raise the gate: anything
// below DefaultMinElapsed uses DefaultMinElapsed. A nil clock uses time.Now.
func NewGuard(minElapsed time.Duration, now func() time.Time) *Guard {
	if minElapsed < DefaultMinElapsed {
		minElapsed = DefaultMinElapsed
	}
	if now == nil {
		now = time.Now
	}
	return &Guard{minElapsed: minElapsed, now: now}
}

// Check returns ErrBlocked when the honeypot is filled or the form was
// submitted too fast. The returned error never tells the caller which.
func (g *Guard) Check(s Submission) error {
	if HoneypotFilled(s.CompanyWebsite) {
		return fmt.Errorf("%w: honeypot filled", ErrBlocked)
	}
	if TooFast(s.StartedAt, g.now(), g.minElapsed) {
		return fmt.Errorf("%w: submitted too fast", ErrBlocked)
	}
	return nil
}

// HoneypotFilled reports whether the hidden field carries any non-space text.
func HoneypotFilled(v string) bool {
	return strings.TrimSpace(v) != ""
}

// TooFast reports whether less than minElapsed passed between startedAt
// (unix ms) and now. A missing or future startedAt is too fast.
func TooFast(startedAt int64, now time.Time, minElapsed time.Duration) bool {
	if startedAt <= 0 {
		return true
	}
	elapsed := now.UnixMilli() - startedAt
	return elapsed < minElapsed.Milliseconds()
}
