// Package app enforces per-user analysis limits for authenticated users.
package app

import (
	"sync"

	"example/vision-api/app/models"
)

const FreeAnalysisLimit = 1

type quotaError struct {
	Limit int
	Used  int
}

func (e quotaError) Error() string {
	return "usage limit exceeded"
}

// UsageLedger counts completed analyses per user in process memory. Counts
// reset on restart and the map grows by one entry per distinct user for the
// lifetime of the process; there is no persistence or eviction.
type UsageLedger struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewUsageLedger() *UsageLedger {
	return &UsageLedger{
		counts: make(map[string]int),
	}
}

// TryConsume reports whether the user may run another analysis, charging one
// unit on success. Premium users always pass and are never charged. The
// check and increment happen under one lock so two concurrent requests for
// the same free user cannot both observe a zero count.
func (l *UsageLedger) TryConsume(userID string, tier models.Tier) error {
	if tier == models.TierPremium {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.counts[userID]
	if current >= FreeAnalysisLimit {
		return quotaError{Limit: FreeAnalysisLimit, Used: current}
	}
	l.counts[userID] = current + 1
	return nil
}

// CurrentUsage returns the number of analyses charged to the user. It never
// mutates the ledger; a never-seen user reads as zero.
func (l *UsageLedger) CurrentUsage(userID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[userID]
}

// RemainingFree returns how many free-tier analyses the user has left.
func (l *UsageLedger) RemainingFree(userID string) int {
	remaining := FreeAnalysisLimit - l.CurrentUsage(userID)
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
