package impl

import (
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"
)

// countdownTracker invents a stable countdown for each flash-deal item.
// Each identifier gets a pseudo-random remaining duration on first sight;
// one shared ticker decrements every tracked identifier in lockstep,
// flooring at zero. Identifiers are never evicted, so a re-fetch that
// yields the same set preserves every countdown. Purely cosmetic.
type countdownTracker struct {
	minSeconds int
	maxSeconds int
	tick       time.Duration

	mu        sync.Mutex
	remaining map[string]int
	lastKey   string
	running   bool
	stop      chan struct{}
}

func newCountdownTracker(minSeconds, maxSeconds int, tick time.Duration) *countdownTracker {
	if maxSeconds < minSeconds {
		maxSeconds = minSeconds
	}
	if tick <= 0 {
		tick = time.Second
	}

	return &countdownTracker{
		minSeconds: minSeconds,
		maxSeconds: maxSeconds,
		tick:       tick,
		remaining:  make(map[string]int),
	}
}

// Observe registers the current identifier set. The set is compared by its
// sorted, joined key: an unchanged set is a no-op, and only genuinely new
// identifiers receive a fresh random value.
func (t *countdownTracker) Observe(ids []string) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	key := strings.Join(sorted, ",")

	t.mu.Lock()
	defer t.mu.Unlock()

	if key == t.lastKey {
		return
	}
	t.lastKey = key

	for _, id := range sorted {
		if id == "" {
			continue
		}
		if _, seen := t.remaining[id]; !seen {
			t.remaining[id] = t.minSeconds + rand.IntN(t.maxSeconds-t.minSeconds+1)
		}
	}

	t.ensureTickingLocked()
}

// Remaining returns the seconds left for an identifier; zero when unknown.
func (t *countdownTracker) Remaining(id string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.remaining[id]
}

// Stop tears the ticker down. Safe to call repeatedly.
func (t *countdownTracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		close(t.stop)
		t.running = false
	}
}

func (t *countdownTracker) ensureTickingLocked() {
	if t.running || !t.anyPositiveLocked() {
		return
	}

	t.running = true
	t.stop = make(chan struct{})
	go t.loop(t.stop)
}

func (t *countdownTracker) anyPositiveLocked() bool {
	for _, v := range t.remaining {
		if v > 0 {
			return true
		}
	}

	return false
}

func (t *countdownTracker) loop(stop <-chan struct{}) {
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			allZero := true
			for id, v := range t.remaining {
				if v > 0 {
					v--
					t.remaining[id] = v
				}
				if v > 0 {
					allZero = false
				}
			}
			if allZero {
				// Self-cancel once every countdown has hit zero.
				t.running = false
				t.mu.Unlock()

				return
			}
			t.mu.Unlock()
		}
	}
}
