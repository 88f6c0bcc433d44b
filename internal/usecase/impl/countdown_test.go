package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownTracker_AssignsWithinRange(t *testing.T) {
	tracker := newCountdownTracker(7200, 43200, time.Hour)
	defer tracker.Stop()

	tracker.Observe([]string{"a", "b", "c"})

	for _, id := range []string{"a", "b", "c"} {
		remaining := tracker.Remaining(id)
		assert.GreaterOrEqual(t, remaining, 7200, "id %s", id)
		assert.LessOrEqual(t, remaining, 43200, "id %s", id)
	}
}

func TestCountdownTracker_IdempotentForUnchangedSet(t *testing.T) {
	tracker := newCountdownTracker(7200, 43200, time.Hour)
	defer tracker.Stop()

	tracker.Observe([]string{"b", "a"})
	first := map[string]int{"a": tracker.Remaining("a"), "b": tracker.Remaining("b")}

	// Same identifiers, different order: sorted-joined key is unchanged.
	tracker.Observe([]string{"a", "b"})

	assert.Equal(t, first["a"], tracker.Remaining("a"))
	assert.Equal(t, first["b"], tracker.Remaining("b"))
}

func TestCountdownTracker_OnlyNewIDsGetFreshValues(t *testing.T) {
	tracker := newCountdownTracker(7200, 43200, time.Hour)
	defer tracker.Stop()

	tracker.Observe([]string{"a"})
	before := tracker.Remaining("a")

	tracker.Observe([]string{"a", "b"})

	assert.Equal(t, before, tracker.Remaining("a"))
	assert.Positive(t, tracker.Remaining("b"))
}

func TestCountdownTracker_SharedTickerDecrementsInLockstep(t *testing.T) {
	tracker := newCountdownTracker(100, 100, 10*time.Millisecond)
	defer tracker.Stop()

	tracker.Observe([]string{"a", "b"})

	require.Eventually(t, func() bool {
		return tracker.Remaining("a") < 100 && tracker.Remaining("b") < 100
	}, time.Second, 5*time.Millisecond)

	a, b := tracker.Remaining("a"), tracker.Remaining("b")
	assert.InDelta(t, a, b, 1, "tracked ids decrement together")
}

func TestCountdownTracker_FloorsAtZeroAndSelfCancels(t *testing.T) {
	tracker := newCountdownTracker(1, 1, 5*time.Millisecond)
	defer tracker.Stop()

	tracker.Observe([]string{"a"})

	require.Eventually(t, func() bool {
		return tracker.Remaining("a") == 0
	}, time.Second, 5*time.Millisecond)

	// Ids are not evicted; the value stays at zero.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, tracker.Remaining("a"))

	tracker.mu.Lock()
	running := tracker.running
	tracker.mu.Unlock()
	assert.False(t, running, "ticker self-cancels once everything is zero")
}

func TestCountdownTracker_UnknownIDIsZero(t *testing.T) {
	tracker := newCountdownTracker(10, 20, time.Hour)
	defer tracker.Stop()

	assert.Equal(t, 0, tracker.Remaining("never-seen"))
}
