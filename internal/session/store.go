// Package session keeps the per-visitor page state: which timeline steps have
// scrolled into view and which items are expanded or selected.
package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/alexmorgan/portfolio/internal/content"
	"github.com/alexmorgan/portfolio/internal/periodic"
	"github.com/alexmorgan/portfolio/internal/reveal"
	"github.com/alexmorgan/portfolio/internal/selection"
)

// View is the state of one mounted page. It lives from a page load until the
// next page load for the same visitor, an idle sweep, or shutdown.
type View struct {
	timeline *reveal.Tracker[int]
	beacon   *reveal.Beacon[int]

	mu         sync.Mutex
	activeStep selection.Selection[int]
	client     selection.Selection[string]
	project    selection.Selection[int]
	lastSeen   time.Time
}

// StepAnchor is the element id of a timeline step on the page.
func StepAnchor(id int) string { return fmt.Sprintf("step-%d", id) }

func newView(threshold float64, now time.Time) (*View, error) {
	beacon := reveal.NewBeacon[int]()
	v := &View{
		timeline: reveal.New[int](beacon),
		beacon:   beacon,
		lastSeen: now,
	}
	regions := make([]reveal.Region[int], 0, len(content.Steps))
	for _, s := range content.Steps {
		regions = append(regions, reveal.Region[int]{ID: s.ID, Area: StepAnchor(s.ID)})
	}
	if err := v.timeline.Observe(regions, threshold); err != nil {
		return nil, fmt.Errorf("observe timeline: %w", err)
	}
	return v, nil
}

// ReportStep records that the browser saw step id cross the reveal threshold.
// It returns false for ids that are not on the timeline.
func (v *View) ReportStep(id int) bool {
	return v.beacon.Cross(id)
}

// StepRevealed reports whether step id has been revealed.
func (v *View) StepRevealed(id int) bool { return v.timeline.IsRevealed(id) }

// Revealed returns the revealed step ids.
func (v *View) Revealed() reveal.Set[int] { return v.timeline.Revealed() }

// ToggleStep expands step id, or collapses it when already expanded.
func (v *View) ToggleStep(id int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.activeStep.Select(id)
}

// ActiveStep returns the expanded step.
func (v *View) ActiveStep() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.activeStep.Current()
}

// ToggleClient selects client slug, or deselects it when already selected.
func (v *View) ToggleClient(slug string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.client.Select(slug)
}

// SelectedClient returns the selected client slug.
func (v *View) SelectedClient() (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.client.Current()
}

// OpenProject shows project id in the modal. Opening the open project keeps
// it open.
func (v *View) OpenProject(id int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.project.IsSelected(id) {
		v.project.Select(id)
	}
}

// CloseProject closes the modal.
func (v *View) CloseProject() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.project.Clear()
}

// OpenProjectID returns the project shown in the modal.
func (v *View) OpenProjectID() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.project.Current()
}

func (v *View) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *View) idleSince(now time.Time) time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return now.Sub(v.lastSeen)
}

// Dispose stops tracking the timeline.
func (v *View) Dispose() { v.timeline.Dispose() }

// Store maps visitor session ids to their mounted view.
type Store struct {
	threshold float64
	now       func() time.Time

	mu    sync.Mutex
	views map[string]*View
}

// NewStore returns an empty store whose views reveal timeline steps at
// threshold.
func NewStore(threshold float64) *Store {
	return &Store{
		threshold: threshold,
		now:       time.Now,
		views:     make(map[string]*View),
	}
}

// Mount replaces the visitor's view with a fresh one, disposing the old one.
func (s *Store) Mount(sessionID string) (*View, error) {
	v, err := newView(s.threshold, s.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	old := s.views[sessionID]
	s.views[sessionID] = v
	s.mu.Unlock()

	if old != nil {
		old.Dispose()
	}
	return v, nil
}

// View returns the visitor's mounted view, mounting one when there is none
// (the page was loaded before a restart or the view was swept).
func (s *Store) View(sessionID string) (*View, error) {
	s.mu.Lock()
	v, ok := s.views[sessionID]
	s.mu.Unlock()
	if ok {
		v.touch(s.now())
		return v, nil
	}
	return s.Mount(sessionID)
}

// Sweep disposes views idle for longer than ttl and returns how many.
func (s *Store) Sweep(ttl time.Duration) int {
	now := s.now()
	var expired []*View

	s.mu.Lock()
	for id, v := range s.views {
		if v.idleSince(now) > ttl {
			expired = append(expired, v)
			delete(s.views, id)
		}
	}
	s.mu.Unlock()

	for _, v := range expired {
		v.Dispose()
	}
	return len(expired)
}

// StartSweeper sweeps idle views every interval until ctx ends or the task is
// stopped.
func (s *Store) StartSweeper(ctx context.Context, interval, ttl time.Duration) (*periodic.Task, error) {
	task, err := periodic.Start(ctx, interval, func(time.Time) {
		if n := s.Sweep(ttl); n > 0 {
			log.Printf("Session sweep: disposed %d idle views", n)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("start sweeper: %w", err)
	}
	return task, nil
}

// Len returns the number of mounted views.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// Close disposes every view.
func (s *Store) Close() {
	s.mu.Lock()
	views := s.views
	s.views = make(map[string]*View)
	s.mu.Unlock()

	for _, v := range views {
		v.Dispose()
	}
}
