// Package tui renders the portfolio page in a terminal. The page scrolls in a
// viewport, and timeline steps reveal as they come into view, driven by the
// same tracker the web server uses.
package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexmorgan/portfolio/internal/content"
	"github.com/alexmorgan/portfolio/internal/reveal"
	"github.com/alexmorgan/portfolio/internal/selection"
	"github.com/alexmorgan/portfolio/internal/visibility"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PixelMsg toggles the footer pixel.
type PixelMsg struct{}

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 2 // nav bar + help line
)

// Model is the Bubble Tea model of the page.
type Model struct {
	viewport  viewport.Model
	monitor   *visibility.Monitor[int]
	timeline  *reveal.Tracker[int]
	threshold float64

	activeStep   selection.Selection[int]
	client       selection.Selection[string]
	clientCursor int
	pixel        bool

	width      int
	heroHeight int

	// observed is the last region layout handed to the tracker.
	observed []reveal.Region[int]
	observes int
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// New returns a model revealing timeline steps at threshold. Call Close when
// the program exits.
func New(threshold float64) (*Model, error) {
	if err := reveal.CheckThreshold(threshold); err != nil {
		return nil, err
	}
	monitor := visibility.NewMonitor[int]()
	m := &Model{
		viewport:  viewport.New(defaultWidth, defaultHeight-chromeHeight),
		monitor:   monitor,
		timeline:  reveal.New[int](monitor),
		threshold: threshold,
		width:     defaultWidth,
	}
	m.refresh()
	return m, nil
}

// Close stops tracking the timeline.
func (m *Model) Close() { m.timeline.Dispose() }

// Revealed returns the revealed timeline step ids.
func (m *Model) Revealed() reveal.Set[int] { return m.timeline.Revealed() }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.refresh()
		return m, nil
	case PixelMsg:
		m.pixel = !m.pixel
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1", "2", "3", "4", "5":
			m.activeStep.Select(int(key[0] - '0'))
			m.refresh()
			return m, nil
		case "left", "h":
			m.moveCursor(-1)
			return m, nil
		case "right", "l":
			m.moveCursor(1)
			return m, nil
		case "enter":
			m.client.Select(content.Clients[m.clientCursor].Slug)
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	n := len(content.Clients)
	m.clientCursor = (m.clientCursor + delta + n) % n
	m.refresh()
}

// View implements tea.Model.
func (m *Model) View() string {
	help := Styles.Hint.Render("j/k scroll • 1-5 expand step • ←/→ client • enter select • q quit")
	return m.navBar() + "\n" + m.viewport.View() + "\n" + help
}

func (m *Model) navBar() string {
	items := []string{Styles.Title.Render(content.Initials)}
	for _, item := range content.NavItems {
		items = append(items, item.Label)
	}
	style := Styles.Nav
	if m.viewport.YOffset >= m.heroHeight {
		style = Styles.NavScrolled
	}
	return style.Width(m.width).Render(strings.Join(items, "   "))
}

// refresh lays the page out, re-observes the step regions and moves the
// monitor's viewport. Steps revealed by the move are drawn revealed.
func (m *Model) refresh() {
	before := m.timeline.Revealed().Len()
	m.layout()
	m.monitor.SetViewport(m.viewRect())
	if m.timeline.Revealed().Len() != before {
		m.layout()
	}
}

func (m *Model) viewRect() visibility.Rect {
	return visibility.Rect{X: 0, Y: m.viewport.YOffset, W: m.width, H: m.viewport.Height}
}

func (m *Model) layout() {
	page := m.render()
	m.heroHeight = page.heroHeight
	m.viewport.SetContent(page.content)
	if slices.Equal(page.regions, m.observed) {
		return
	}
	// Observe only fails on a bad threshold, which New rejects.
	_ = m.timeline.Observe(page.regions, m.threshold)
	m.observed = page.regions
	m.observes++
}

type page struct {
	content    string
	regions    []reveal.Region[int]
	heroHeight int
}

func (m *Model) render() page {
	width := max(m.width, 20)
	wrap := lipgloss.NewStyle().Width(width - 2)

	var (
		blocks  []string
		regions []reveal.Region[int]
		y       int
	)
	add := func(block string) int {
		top := y
		blocks = append(blocks, block)
		y += lipgloss.Height(block)
		return top
	}

	add(m.renderHero(wrap))
	heroHeight := y

	add(Styles.Heading.Render("Selected Works"))
	for _, p := range content.Projects {
		add(wrap.Render(Styles.Title.Render(p.Title) + "  " + Styles.Muted.Render(p.Year+" • "+p.Role)))
		add(wrap.Render(Styles.Muted.Render(p.Description)))
	}

	add(Styles.Heading.Render("About"))
	for _, p := range content.AboutParagraphs {
		add(wrap.Render(Styles.Muted.Render(content.Flow(p))))
	}
	for _, a := range content.Achievements {
		add(Styles.Normal.Render("  ◆ " + a))
	}

	add(Styles.Heading.Render("Creative Process"))
	add(wrap.Render(Styles.Muted.Render(content.Flow(content.ProcessIntro))))
	for _, s := range content.Steps {
		block := m.renderStep(s, width)
		top := add(block)
		regions = append(regions, reveal.Region[int]{
			ID:   s.ID,
			Area: visibility.Rect{X: 0, Y: top, W: lipgloss.Width(block), H: lipgloss.Height(block)},
		})
	}

	add(Styles.Heading.Render("Clients & Collaborations"))
	add(wrap.Render(m.renderLogos()))
	if panel := m.renderClientPanel(); panel != "" {
		add(panel)
	}
	var stats []string
	for _, s := range content.Stats {
		stats = append(stats, Styles.Title.Render(s.Value)+" "+Styles.Muted.Render(s.Label))
	}
	add(wrap.Render(strings.Join(stats, "   ")))

	add(Styles.Heading.Render("Let's Create Together"))
	add(wrap.Render(Styles.Muted.Render(content.Flow(content.ContactIntro))))
	add(Styles.Normal.Render("Email     " + content.Email))
	add(Styles.Normal.Render("Telegram  " + content.Telegram))

	add(m.renderFooter())

	return page{content: strings.Join(blocks, "\n"), regions: regions, heroHeight: heroHeight}
}

func (m *Model) renderHero(wrap lipgloss.Style) string {
	return strings.Join([]string{
		"",
		Styles.Heading.Render(strings.ToUpper(content.ArtistName)),
		Styles.Normal.Render(content.Tagline),
		wrap.Render(Styles.Muted.Render(content.Flow(content.HeroLede))),
		"",
		Styles.Hint.Render("scroll ⌄"),
	}, "\n")
}

func (m *Model) renderStep(s content.Step, width int) string {
	lines := []string{
		fmt.Sprintf("%d  %s", s.ID, s.Title),
		s.Description,
	}
	style := Styles.StepCard
	if m.activeStep.IsSelected(s.ID) {
		lines = append(lines, "", s.Details)
		style = Styles.StepCardActive
	}
	if !m.timeline.IsRevealed(s.ID) {
		style = Styles.StepCardHidden
	}
	return style.Width(width - 4).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderLogos() string {
	logos := make([]string, 0, len(content.Clients))
	for i, c := range content.Clients {
		style := Styles.Logo
		switch {
		case m.client.IsSelected(c.Slug):
			style = Styles.LogoSelected
		case i == m.clientCursor:
			style = Styles.LogoCursor
		}
		logos = append(logos, style.Render("["+c.Logo+"]"))
	}
	return strings.Join(logos, " ")
}

func (m *Model) renderClientPanel() string {
	slug, ok := m.client.Current()
	if !ok {
		return ""
	}
	c, ok := content.ClientBySlug(slug)
	if !ok {
		return ""
	}
	return Styles.Panel.Render(Styles.Title.Render(c.Name) + "\n" + c.Project + "\n" + Styles.Muted.Render(c.Year))
}

func (m *Model) renderFooter() string {
	pixel := Styles.PixelOff.Render("•")
	if m.pixel {
		pixel = Styles.PixelOn.Render("●")
	}
	return strings.Join([]string{
		"",
		Styles.Title.Render(content.ArtistName) + "  " + Styles.Muted.Render(content.Tagline+", "+content.Location),
		Styles.Muted.Render(content.Copyright) + "  " + Styles.Muted.Render("Built with digital precision ") + pixel,
	}, "\n")
}
