package reveal

import "sync"

// Beacon is an Observer whose crossings are reported from outside, for example
// by a browser sending an intersect request once an element is on screen.
type Beacon[K comparable] struct {
	mu      sync.Mutex
	entries map[K]beaconEntry[K]
}

type beaconEntry[K comparable] struct {
	area      any
	threshold float64
	onCross   func(K)
}

// NewBeacon returns a Beacon with nothing registered.
func NewBeacon[K comparable]() *Beacon[K] {
	return &Beacon[K]{entries: make(map[K]beaconEntry[K])}
}

// Register implements Observer.
func (b *Beacon[K]) Register(id K, area any, threshold float64, onCross func(K)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[id] = beaconEntry[K]{area: area, threshold: threshold, onCross: onCross}
}

// UnregisterAll implements Observer.
func (b *Beacon[K]) UnregisterAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.entries)
}

// Cross reports that id reached its threshold. It returns false when nothing
// is registered for id.
func (b *Beacon[K]) Cross(id K) bool {
	b.mu.Lock()
	e, ok := b.entries[id]
	b.mu.Unlock()
	if !ok {
		return false
	}
	e.onCross(id)
	return true
}

// Threshold returns the threshold id was registered with.
func (b *Beacon[K]) Threshold(id K) (float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[id]
	return e.threshold, ok
}

// Area returns the area handle id was registered with.
func (b *Beacon[K]) Area(id K) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.entries[id]
	return e.area, ok
}

// Len returns how many ids are registered.
func (b *Beacon[K]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
