// Package reveal tracks which regions of a page have been scrolled into view.
//
// A Tracker hands regions to an Observer, which reports when a region's visible
// fraction first reaches a threshold. Revealed ids are kept in an insertion-only
// set: once a region has been seen it stays revealed until the tracker is
// discarded.
package reveal

import (
	"errors"
	"math"
	"sync"
)

// ErrInvalidThreshold is returned by Observe for thresholds outside [0, 1].
var ErrInvalidThreshold = errors.New("reveal: threshold must be within [0, 1]")

// Observer is the platform facility that watches regions enter the viewport.
//
// Register starts watching a region. onCross must be called each time the
// region's visible fraction goes from below threshold to at-or-above it, and
// may be called synchronously from Register. Registering an id again replaces
// the previous registration. UnregisterAll stops every callback.
type Observer[K comparable] interface {
	Register(id K, area any, threshold float64, onCross func(K))
	UnregisterAll()
}

// Region is a labeled area to watch. Area is an opaque handle the observer
// understands (an element id, a rectangle).
type Region[K comparable] struct {
	ID   K
	Area any
}

// Tracker keeps the cumulative set of revealed region ids.
type Tracker[K comparable] struct {
	observer Observer[K]

	mu         sync.Mutex
	registered map[K]struct{}
	revealed   Set[K]
	disposed   bool
	// observing counts Observe calls still registering. UnregisterAll waits
	// for the last of them so no registration lands after it.
	observing int
	released  bool
}

// New returns an empty tracker that watches regions through observer.
func New[K comparable](observer Observer[K]) *Tracker[K] {
	return &Tracker[K]{
		observer:   observer,
		registered: make(map[K]struct{}),
		revealed:   make(Set[K]),
	}
}

// Observe starts watching regions at the given threshold.
func (t *Tracker[K]) Observe(regions []Region[K], threshold float64) error {
	if err := CheckThreshold(threshold); err != nil {
		return err
	}

	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return nil
	}
	for _, r := range regions {
		t.registered[r.ID] = struct{}{}
	}
	t.observing++
	t.mu.Unlock()

	// No lock is held here: observers may call back from Register, and a
	// callback may dispose the tracker.
	for _, r := range regions {
		if t.Disposed() {
			break
		}
		t.observer.Register(r.ID, r.Area, threshold, t.reveal)
	}

	t.mu.Lock()
	t.observing--
	release := t.shouldRelease()
	t.mu.Unlock()
	if release {
		t.observer.UnregisterAll()
	}
	return nil
}

// shouldRelease reports whether the caller must call UnregisterAll, and marks
// it done. t.mu must be held.
func (t *Tracker[K]) shouldRelease() bool {
	if !t.disposed || t.observing > 0 || t.released {
		return false
	}
	t.released = true
	return true
}

// CheckThreshold returns ErrInvalidThreshold unless threshold is within [0, 1].
func CheckThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return ErrInvalidThreshold
	}
	return nil
}

func (t *Tracker[K]) reveal(id K) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.disposed {
		return
	}
	if _, ok := t.registered[id]; !ok {
		return
	}
	t.revealed.add(id)
}

// Revealed returns a snapshot of the revealed ids.
func (t *Tracker[K]) Revealed() Set[K] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revealed.clone()
}

// IsRevealed reports whether id has been revealed.
func (t *Tracker[K]) IsRevealed(id K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revealed.Has(id)
}

// Dispose releases the observer's handles. Later crossings are ignored.
// Calling Dispose again does nothing. It may be called from an observer
// callback; the handles are then released once the running Observe returns.
func (t *Tracker[K]) Dispose() {
	t.mu.Lock()
	if t.disposed {
		t.mu.Unlock()
		return
	}
	t.disposed = true
	release := t.shouldRelease()
	t.mu.Unlock()

	if release {
		t.observer.UnregisterAll()
	}
}

// Disposed reports whether Dispose has been called.
func (t *Tracker[K]) Disposed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.disposed
}
