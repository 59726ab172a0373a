package visibility

import "sync"

// Monitor watches rectangular regions against a movable viewport. It
// satisfies reveal.Observer.
//
// A region fires when its visible fraction goes from below its threshold to
// at-or-above it, the way an intersection observer does. Regions whose area
// handle is not a Rect are accepted and never fire.
type Monitor[K comparable] struct {
	mu      sync.Mutex
	view    Rect
	hasView bool
	entries map[K]*watch[K]
}

type watch[K comparable] struct {
	area      Rect
	threshold float64
	onCross   func(K)
	above     bool
}

// NewMonitor returns a Monitor with no viewport yet. Nothing fires until
// SetViewport is called.
func NewMonitor[K comparable]() *Monitor[K] {
	return &Monitor[K]{entries: make(map[K]*watch[K])}
}

// Register implements reveal.Observer.
func (m *Monitor[K]) Register(id K, area any, threshold float64, onCross func(K)) {
	rect, ok := area.(Rect)
	m.mu.Lock()
	if !ok {
		delete(m.entries, id)
		m.mu.Unlock()
		return
	}
	w := &watch[K]{area: rect, threshold: threshold, onCross: onCross}
	m.entries[id] = w
	var fire bool
	if m.hasView {
		fire = w.update(m.view)
	}
	m.mu.Unlock()

	if fire {
		onCross(id)
	}
}

// UnregisterAll implements reveal.Observer.
func (m *Monitor[K]) UnregisterAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
}

// SetViewport moves the viewport and fires every region that crossed its
// threshold on the way.
func (m *Monitor[K]) SetViewport(view Rect) {
	type crossing struct {
		id K
		fn func(K)
	}
	var fired []crossing

	m.mu.Lock()
	m.view = view
	m.hasView = true
	for id, w := range m.entries {
		if w.update(view) {
			fired = append(fired, crossing{id: id, fn: w.onCross})
		}
	}
	m.mu.Unlock()

	for _, c := range fired {
		c.fn(c.id)
	}
}

// Viewport returns the last viewport set.
func (m *Monitor[K]) Viewport() (Rect, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view, m.hasView
}

// Len returns how many regions are watched.
func (m *Monitor[K]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// update records the region's state in view and reports an upward crossing.
func (w *watch[K]) update(view Rect) bool {
	overlap := w.area.Intersect(view).Area()
	frac := VisibleFraction(w.area, view)
	now := overlap > 0 && frac >= w.threshold
	crossed := now && !w.above
	w.above = now
	return crossed
}
