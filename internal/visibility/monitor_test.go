package visibility

import (
	"testing"

	"github.com/alexmorgan/portfolio/internal/reveal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ reveal.Observer[int] = (*Monitor[int])(nil)

func TestVisibleFraction(t *testing.T) {
	view := Rect{X: 0, Y: 0, W: 100, H: 100}
	tests := []struct {
		name   string
		region Rect
		want   float64
	}{
		{"inside", Rect{X: 10, Y: 10, W: 10, H: 10}, 1},
		{"half below", Rect{X: 0, Y: 90, W: 100, H: 20}, 0.5},
		{"outside", Rect{X: 0, Y: 200, W: 100, H: 20}, 0},
		{"touching edge", Rect{X: 0, Y: 100, W: 100, H: 20}, 0},
		{"zero height", Rect{X: 0, Y: 10, W: 100, H: 0}, 0},
		{"larger than view", Rect{X: 0, Y: -100, W: 100, H: 400}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, VisibleFraction(tt.region, view), 1e-9)
		})
	}
}

func TestMonitor_FiresOnUpwardCrossing(t *testing.T) {
	m := NewMonitor[int]()
	var fired []int
	m.Register(1, Rect{Y: 100, W: 10, H: 10}, 0.3, func(id int) { fired = append(fired, id) })

	m.SetViewport(Rect{Y: 0, W: 10, H: 50})
	assert.Empty(t, fired)

	// 2 of 10 rows visible: below threshold.
	m.SetViewport(Rect{Y: 52, W: 10, H: 50})
	assert.Empty(t, fired)

	// 5 of 10 rows visible.
	m.SetViewport(Rect{Y: 55, W: 10, H: 50})
	assert.Equal(t, []int{1}, fired)

	// Still above: no repeat.
	m.SetViewport(Rect{Y: 80, W: 10, H: 50})
	assert.Equal(t, []int{1}, fired)

	// Leave and come back: a second crossing.
	m.SetViewport(Rect{Y: 0, W: 10, H: 50})
	m.SetViewport(Rect{Y: 90, W: 10, H: 50})
	assert.Equal(t, []int{1, 1}, fired)
}

func TestMonitor_RegisterEvaluatesAgainstCurrentViewport(t *testing.T) {
	m := NewMonitor[int]()
	m.SetViewport(Rect{W: 10, H: 50})

	var fired []int
	m.Register(1, Rect{Y: 10, W: 10, H: 10}, 0.3, func(id int) { fired = append(fired, id) })
	assert.Equal(t, []int{1}, fired)
}

func TestMonitor_UnsupportedAreaNeverFires(t *testing.T) {
	m := NewMonitor[string]()
	m.SetViewport(Rect{W: 10, H: 50})
	m.Register("a", "#step-1", 0, func(string) { t.Fatal("fired for non-rect area") })
	m.Register("b", Rect{Y: 10, W: 10, H: 0}, 0, func(string) { t.Fatal("fired for zero area") })
	m.SetViewport(Rect{Y: 5, W: 10, H: 50})
	assert.Equal(t, 1, m.Len())
}

func TestMonitor_UnregisterAllStopsCallbacks(t *testing.T) {
	m := NewMonitor[int]()
	m.Register(1, Rect{Y: 100, W: 10, H: 10}, 0.3, func(int) { t.Fatal("fired after unregister") })
	m.UnregisterAll()
	m.SetViewport(Rect{Y: 90, W: 10, H: 50})
	assert.Zero(t, m.Len())
}

func TestMonitor_DrivesTracker(t *testing.T) {
	m := NewMonitor[int]()
	tr := reveal.New[int](m)
	regions := []reveal.Region[int]{
		{ID: 1, Area: Rect{Y: 0, W: 80, H: 10}},
		{ID: 2, Area: Rect{Y: 20, W: 80, H: 10}},
		{ID: 3, Area: Rect{Y: 40, W: 80, H: 10}},
	}
	require.NoError(t, tr.Observe(regions, 0.3))

	m.SetViewport(Rect{Y: 0, W: 80, H: 15})
	assert.ElementsMatch(t, []int{1}, tr.Revealed().Members())

	m.SetViewport(Rect{Y: 30, W: 80, H: 15})
	assert.ElementsMatch(t, []int{1, 3}, tr.Revealed().Members())

	m.SetViewport(Rect{Y: 0, W: 80, H: 15})
	m.SetViewport(Rect{Y: 30, W: 80, H: 15})
	assert.Equal(t, 2, tr.Revealed().Len())

	tr.Dispose()
	m.SetViewport(Rect{Y: 15, W: 80, H: 15})
	assert.False(t, tr.IsRevealed(2))
}
