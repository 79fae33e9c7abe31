package internal

import (
	"sync"
	"time"
)

// ScaleHistory is the only process-wide mutable state. It tracks when the
// queue was first observed continuously empty, and when a mutation was last
// applied, so the scale-down debounce survives across warm invocations.
//
// It is advisory only: decision correctness never depends on it, so losing
// it on a cold start merely restarts the debounce window.
type ScaleHistory struct {
	mu sync.Mutex

	// emptySince is the time of the first of the current streak of
	// zero-depth observations. Zero when the streak is broken.
	emptySince time.Time

	lastAction time.Time
}

func NewScaleHistory() *ScaleHistory {
	return &ScaleHistory{}
}

// ObserveDepth records a queue depth observation. Any non-zero depth breaks
// the empty streak.
func (h *ScaleHistory) ObserveDepth(depth int, now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if depth > 0 {
		h.emptySince = time.Time{}
		return
	}

	if h.emptySince.IsZero() {
		h.emptySince = now
	}
}

// ResetEmptyStreak breaks the empty streak without a depth observation.
// Used when a message-arrival trigger proves the queue was non-empty even
// if the eventually consistent depth attribute still reads zero.
func (h *ScaleHistory) ResetEmptyStreak() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.emptySince = time.Time{}
}

// EmptyFor reports whether the queue has been observed continuously empty
// for at least the given threshold as of now. A zero threshold always
// passes.
func (h *ScaleHistory) EmptyFor(threshold time.Duration, now time.Time) bool {
	if threshold == 0 {
		return true
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return !h.emptySince.IsZero() && now.Sub(h.emptySince) >= threshold
}

// RecordAction notes a successfully applied mutation. Update only after the
// remote call succeeded.
func (h *ScaleHistory) RecordAction(now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastAction = now
}

// LastAction returns the time of the last applied mutation, or a zero time
// if none was applied since process start.
func (h *ScaleHistory) LastAction() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.lastAction
}
