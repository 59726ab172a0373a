// Package content holds the copy and records rendered on the portfolio page.
package content

import (
	"math/rand/v2"
	"strings"
	"time"
)

// Section anchors, in page order.
const (
	SectionHero     = "hero"
	SectionProjects = "projects"
	SectionAbout    = "about"
	SectionProcess  = "process"
	SectionClients  = "clients"
	SectionContact  = "contact"
)

// NavItem is a navigation link to a section anchor.
type NavItem struct {
	Label   string
	Section string
}

var NavItems = []NavItem{
	{Label: "Home", Section: SectionHero},
	{Label: "Projects", Section: SectionProjects},
	{Label: "About", Section: SectionAbout},
	{Label: "Process", Section: SectionProcess},
	{Label: "Contact", Section: SectionContact},
}

// ScrolledOffset is how far the page scrolls before the navigation bar turns
// opaque.
const ScrolledOffset = 50

// Project is a gallery entry with its modal details.
type Project struct {
	ID           int
	Title        string
	Year         string
	Role         string
	Technologies []string
	Preview      string
	Description  string
	Concept      string
	Partners     []string
	VimeoURL     string
}

var Projects = []Project{
	{
		ID:           1,
		Title:        "Immersive Data Forest",
		Year:         "2024",
		Role:         "Lead Artist & Technical Director",
		Technologies: []string{"TouchDesigner", "Kinect", "Unity", "Ableton Live"},
		Preview:      "/images/project-1.jpg",
		Description:  "An interactive installation that transforms visitor movements into a living digital ecosystem, where biometric data creates unique visual and auditory landscapes.",
		Concept:      "Exploring the intersection between human presence and digital nature, this piece questions our relationship with data collection and environmental consciousness in the digital age.",
		Partners:     []string{"LACMA", "Google Arts & Culture", "MIT Media Lab"},
		VimeoURL:     "#",
	},
	{
		ID:           2,
		Title:        "Quantum Memories",
		Year:         "2023",
		Role:         "Creative Producer & 3D Artist",
		Technologies: []string{"Blender", "Unreal Engine", "Max/MSP", "Arduino"},
		Preview:      "/images/project-2.jpg",
		Description:  "A generative sculpture series that visualizes quantum computing principles through dynamic 3D forms that respond to real quantum computer outputs.",
		Concept:      "Bridging the gap between quantum physics and human perception by creating tangible representations of quantum states and superposition.",
		Partners:     []string{"IBM Quantum", "Venice Biennale", "Ars Electronica"},
		VimeoURL:     "#",
	},
	{
		ID:           3,
		Title:        "Urban Shadows",
		Year:         "2023",
		Role:         "Video Artist & Director",
		Technologies: []string{"After Effects", "Cinema 4D", "MadMapper", "Resolume"},
		Preview:      "/images/project-3.jpg",
		Description:  "Large-scale projection mapping transforming city buildings into canvases for exploring themes of urban alienation and digital connectivity.",
		Concept:      "Investigating how digital technology both connects and isolates urban dwellers, creating temporary moments of collective experience in public spaces.",
		Partners:     []string{"Vivid Sydney", "City of Los Angeles", "Samsung"},
		VimeoURL:     "#",
	},
}

// ProjectByID looks up a project.
func ProjectByID(id int) (Project, bool) {
	for _, p := range Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Step is one stage of the creative process timeline.
type Step struct {
	ID          int
	Icon        string
	Title       string
	Description string
	Details     string
}

var Steps = []Step{
	{ID: 1, Icon: "💡", Title: "Concept", Description: "Ideation and conceptual development",
		Details: "Research, mood boards, and initial sketches exploring themes and narrative structures."},
	{ID: 2, Icon: "🖥", Title: "Render", Description: "3D modeling and digital prototyping",
		Details: "Creating digital assets, testing technical feasibility, and developing visual language."},
	{ID: 3, Icon: "📷", Title: "Shoot", Description: "Content creation and capture",
		Details: "Filming, motion capture, data collection, and real-world documentation."},
	{ID: 4, Icon: "🔧", Title: "Install", Description: "Technical implementation",
		Details: "Hardware setup, software integration, and space preparation for exhibition."},
	{ID: 5, Icon: "👁", Title: "Experience", Description: "Audience interaction and iteration",
		Details: "Live testing, audience feedback collection, and continuous refinement."},
}

// StepByID looks up a timeline step and its position.
func StepByID(id int) (Step, int, bool) {
	for i, s := range Steps {
		if s.ID == id {
			return s, i, true
		}
	}
	return Step{}, 0, false
}

// Reveal transitions are staggered by position.
const (
	StepStagger      = 200 * time.Millisecond
	StepNodeDelay    = 300 * time.Millisecond
	StepNumberDelay  = 500 * time.Millisecond
	RevealThreshold  = 0.3
	FooterPixelEvery = 2 * time.Second
)

// StepDelays returns the card, node and number transition delays for the step
// at index.
func StepDelays(index int) (card, node, number time.Duration) {
	card = time.Duration(index) * StepStagger
	return card, card + StepNodeDelay, card + StepNumberDelay
}

// Client is a collaborating institution shown in the logo carousel.
type Client struct {
	Slug    string
	Name    string
	Logo    string
	Project string
	Year    string
}

var Clients = []Client{
	{Slug: "lacma", Name: "LACMA", Logo: "LACMA", Project: "Immersive Data Forest", Year: "2024"},
	{Slug: "venice-biennale", Name: "Venice Biennale", Logo: "VB", Project: "Quantum Memories", Year: "2023"},
	{Slug: "ars-electronica", Name: "Ars Electronica", Logo: "AE", Project: "Digital Consciousness", Year: "2023"},
	{Slug: "mit-media-lab", Name: "MIT Media Lab", Logo: "MIT", Project: "Research Collaboration", Year: "2022"},
	{Slug: "google-arts", Name: "Google Arts", Logo: "GA", Project: "AI & Art Initiative", Year: "2024"},
	{Slug: "samsung", Name: "Samsung", Logo: "SS", Project: "Urban Shadows", Year: "2023"},
	{Slug: "vivid-sydney", Name: "Vivid Sydney", Logo: "VS", Project: "Light Installation", Year: "2023"},
	{Slug: "moma", Name: "MOMA", Logo: "MOMA", Project: "New Media Showcase", Year: "2022"},
}

// ClientBySlug looks up a client.
func ClientBySlug(slug string) (Client, bool) {
	for _, c := range Clients {
		if c.Slug == slug {
			return c, true
		}
	}
	return Client{}, false
}

// CarouselClients repeats the client list so the scrolling strip loops
// without a gap.
func CarouselClients() []Client {
	out := make([]Client, 0, 2*len(Clients))
	out = append(out, Clients...)
	return append(out, Clients...)
}

// Stat is a headline number in the clients section.
type Stat struct {
	Value string
	Label string
}

var Stats = []Stat{
	{Value: "15+", Label: "Countries"},
	{Value: "50+", Label: "Exhibitions"},
	{Value: "25+", Label: "Collaborations"},
	{Value: "5", Label: "Years Active"},
}

// Link is an outbound link.
type Link struct {
	Label string
	Href  string
}

var SocialLinks = []Link{
	{Label: "Instagram", Href: "#"},
	{Label: "Vimeo", Href: "#"},
	{Label: "GitHub", Href: "#"},
}

var FooterLinks = []Link{
	{Label: "Privacy Policy", Href: "#"},
	{Label: "Colophon", Href: "#"},
	{Label: "Press Kit", Href: "#"},
}

var FooterConnect = []Link{
	{Label: Email, Href: "mailto:" + Email},
	{Label: "@alexmorgan_art", Href: "#"},
	{Label: "Vimeo Portfolio", Href: "#"},
}

// Particle is a floating dot in the hero banner. X and Y are percentages.
type Particle struct {
	ID    int
	X, Y  float64
	Delay float64
}

// ParticleCount is how many particles float over the hero banner.
const ParticleCount = 15

// Particles scatters ParticleCount particles with animation delays up to six
// seconds.
func Particles(rng *rand.Rand) []Particle {
	out := make([]Particle, ParticleCount)
	for i := range out {
		out[i] = Particle{
			ID:    i,
			X:     rng.Float64() * 100,
			Y:     rng.Float64() * 100,
			Delay: rng.Float64() * 6,
		}
	}
	return out
}

// Flow collapses the line breaks and indentation of multi-line copy.
func Flow(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
