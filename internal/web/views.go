package web

import (
	"math/rand/v2"
	"time"

	"github.com/alexmorgan/portfolio/internal/contact"
	"github.com/alexmorgan/portfolio/internal/content"
	"github.com/alexmorgan/portfolio/internal/session"
	"github.com/gin-gonic/gin"
)

// stepView is a timeline step as rendered for one visitor.
type stepView struct {
	content.Step
	Anchor    string
	Index     int
	Reverse   bool
	Revealed  bool
	Active    bool
	Threshold float64

	CardDelayMS   int64
	NodeDelayMS   int64
	NumberDelayMS int64
}

func newStepView(v *session.View, step content.Step, index int, threshold float64) stepView {
	card, node, number := content.StepDelays(index)
	active, ok := v.ActiveStep()
	return stepView{
		Step:          step,
		Anchor:        session.StepAnchor(step.ID),
		Index:         index,
		Reverse:       index%2 == 1,
		Revealed:      v.StepRevealed(step.ID),
		Active:        ok && active == step.ID,
		Threshold:     threshold,
		CardDelayMS:   card.Milliseconds(),
		NodeDelayMS:   node.Milliseconds(),
		NumberDelayMS: number.Milliseconds(),
	}
}

func stepViews(v *session.View, threshold float64) []stepView {
	out := make([]stepView, 0, len(content.Steps))
	for i, s := range content.Steps {
		out = append(out, newStepView(v, s, i, threshold))
	}
	return out
}

// clientPanel is the detail card under the logo carousel.
func clientPanel(v *session.View) gin.H {
	slug, ok := v.SelectedClient()
	if !ok {
		return gin.H{"client": nil}
	}
	c, ok := content.ClientBySlug(slug)
	if !ok {
		return gin.H{"client": nil}
	}
	return gin.H{"client": c}
}

func contactFormData(msg contact.Message, errText string) gin.H {
	return gin.H{
		"values":       msg,
		"error":        errText,
		"email":        content.Email,
		"telegram":     content.Telegram,
		"socialLinks":  content.SocialLinks,
		"contactIntro": content.Flow(content.ContactIntro),
	}
}

func pageData(v *session.View, threshold float64, rng *rand.Rand) gin.H {
	about := make([]string, 0, len(content.AboutParagraphs))
	for _, p := range content.AboutParagraphs {
		about = append(about, content.Flow(p))
	}
	return gin.H{
		"name":           content.ArtistName,
		"initials":       content.Initials,
		"tagline":        content.Tagline,
		"location":       content.Location,
		"heroLede":       content.Flow(content.HeroLede),
		"navItems":       content.NavItems,
		"scrolledOffset": content.ScrolledOffset,
		"particles":      content.Particles(rng),

		"projectsIntro": content.Flow(content.ProjectsIntro),
		"projects":      content.Projects,

		"aboutParagraphs": about,
		"achievements":    content.Achievements,
		"philosophy":      content.Flow(content.Philosophy),

		"processIntro": content.Flow(content.ProcessIntro),
		"steps":        stepViews(v, threshold),

		"clientsIntro": content.Flow(content.ClientsIntro),
		"carousel":     content.CarouselClients(),
		"clientPanel":  clientPanel(v),
		"stats":        content.Stats,

		"contactForm": contactFormData(contact.Message{}, ""),

		"footerLinks":   content.FooterLinks,
		"footerConnect": content.FooterConnect,
		"copyright":     content.Copyright,
		"pixelPeriodMS": content.FooterPixelEvery.Milliseconds(),
	}
}

func newRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
