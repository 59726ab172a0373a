package reveal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steps(ids ...int) []Region[int] {
	out := make([]Region[int], 0, len(ids))
	for _, id := range ids {
		out = append(out, Region[int]{ID: id, Area: id})
	}
	return out
}

func TestTracker_RevealScenario(t *testing.T) {
	b := NewBeacon[int]()
	tr := New[int](b)
	require.NoError(t, tr.Observe(steps(1, 2, 3, 4, 5), 0.3))

	assert.Equal(t, 0, tr.Revealed().Len())

	require.True(t, b.Cross(3))
	assert.ElementsMatch(t, []int{3}, tr.Revealed().Members())

	require.True(t, b.Cross(1))
	assert.ElementsMatch(t, []int{1, 3}, tr.Revealed().Members())

	require.True(t, b.Cross(3))
	assert.ElementsMatch(t, []int{1, 3}, tr.Revealed().Members())
}

func TestTracker_NeverCrossedStaysHidden(t *testing.T) {
	b := NewBeacon[int]()
	tr := New[int](b)
	require.NoError(t, tr.Observe(steps(1, 2), 0.3))

	b.Cross(1)
	assert.True(t, tr.IsRevealed(1))
	assert.False(t, tr.IsRevealed(2))
}

func TestTracker_UnobservedIDNeverRevealed(t *testing.T) {
	b := NewBeacon[int]()
	tr := New[int](b)
	require.NoError(t, tr.Observe(steps(1), 0.3))

	assert.False(t, b.Cross(9))
	// A misbehaving observer reporting an id it was never given.
	tr.reveal(9)
	assert.False(t, tr.IsRevealed(9))
	assert.Equal(t, 0, tr.Revealed().Len())
}

func TestTracker_ObserveTwiceSingleLatch(t *testing.T) {
	b := NewBeacon[int]()
	tr := New[int](b)
	require.NoError(t, tr.Observe(steps(2), 0.3))
	require.NoError(t, tr.Observe([]Region[int]{{ID: 2, Area: "second"}}, 0.5))

	assert.Equal(t, 1, b.Len())
	area, ok := b.Area(2)
	require.True(t, ok)
	assert.Equal(t, "second", area)
	th, _ := b.Threshold(2)
	assert.Equal(t, 0.5, th)

	b.Cross(2)
	b.Cross(2)
	assert.Equal(t, 1, tr.Revealed().Len())
}

func TestTracker_MonotonicGrowth(t *testing.T) {
	b := NewBeacon[string]()
	tr := New[string](b)
	require.NoError(t, tr.Observe([]Region[string]{{ID: "a"}, {ID: "b"}}, 0))

	b.Cross("a")
	for i := 0; i < 3; i++ {
		b.Cross("b")
		assert.True(t, tr.IsRevealed("a"))
	}
	assert.ElementsMatch(t, []string{"a", "b"}, tr.Revealed().Members())
}

func TestTracker_SnapshotIsCopy(t *testing.T) {
	b := NewBeacon[int]()
	tr := New[int](b)
	require.NoError(t, tr.Observe(steps(1, 2), 0.3))
	b.Cross(1)

	snap := tr.Revealed()
	b.Cross(2)
	assert.False(t, snap.Has(2))
	assert.True(t, tr.IsRevealed(2))
}

func TestTracker_DisposeStopsMutation(t *testing.T) {
	b := NewBeacon[int]()
	tr := New[int](b)
	require.NoError(t, tr.Observe(steps(1, 2, 3), 0.3))
	b.Cross(1)

	tr.Dispose()
	assert.True(t, tr.Disposed())
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Cross(2))

	// Even a stale callback held by an observer cannot mutate the set.
	tr.reveal(2)
	assert.ElementsMatch(t, []int{1}, tr.Revealed().Members())

	tr.Dispose()
	require.NoError(t, tr.Observe(steps(4), 0.3))
	assert.Equal(t, 0, b.Len())
}

func TestTracker_InvalidThreshold(t *testing.T) {
	for _, th := range []float64{-0.1, 1.01, math.NaN(), math.Inf(1)} {
		b := NewBeacon[int]()
		tr := New[int](b)
		err := tr.Observe(steps(1), th)
		assert.ErrorIs(t, err, ErrInvalidThreshold, "threshold %v", th)
		assert.Equal(t, 0, b.Len())
	}
}

type countingObserver struct {
	*Beacon[int]
	unregisterCalls int
}

func (c *countingObserver) UnregisterAll() {
	c.unregisterCalls++
	c.Beacon.UnregisterAll()
}

func TestTracker_DisposeReleasesOnce(t *testing.T) {
	obs := &countingObserver{Beacon: NewBeacon[int]()}
	tr := New[int](obs)
	require.NoError(t, tr.Observe(steps(1), 0.3))

	tr.Dispose()
	tr.Dispose()
	assert.Equal(t, 1, obs.unregisterCalls)
}

// eagerObserver reports every region as visible the moment it is registered.
type eagerObserver struct{}

func (eagerObserver) Register(id int, _ any, _ float64, onCross func(int)) { onCross(id) }
func (eagerObserver) UnregisterAll()                                       {}

func TestTracker_SynchronousCallbackFromRegister(t *testing.T) {
	tr := New[int](eagerObserver{})
	require.NoError(t, tr.Observe(steps(1, 2), 0.3))
	assert.ElementsMatch(t, []int{1, 2}, tr.Revealed().Members())
}

// disposingObserver reveals each region on registration and then disposes
// the tracker from inside the callback.
type disposingObserver struct {
	*countingObserver
	tracker *Tracker[int]
}

func (d *disposingObserver) Register(id int, area any, threshold float64, onCross func(int)) {
	d.countingObserver.Register(id, area, threshold, onCross)
	onCross(id)
	d.tracker.Dispose()
}

func TestTracker_DisposeFromCallback(t *testing.T) {
	obs := &disposingObserver{countingObserver: &countingObserver{Beacon: NewBeacon[int]()}}
	tr := New[int](obs)
	obs.tracker = tr

	done := make(chan error, 1)
	go func() { done <- tr.Observe(steps(1, 2, 3), 0.3) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Observe deadlocked when the callback disposed the tracker")
	}

	assert.True(t, tr.Disposed())
	assert.ElementsMatch(t, []int{1}, tr.Revealed().Members())
	assert.Equal(t, 1, obs.unregisterCalls)
	assert.Zero(t, obs.Len(), "registrations must not outlive UnregisterAll")
}
