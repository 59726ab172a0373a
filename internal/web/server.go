// Package web serves the portfolio page and the HTMX fragments that update
// it: timeline reveals, expanded steps, the client panel, the project modal
// and the contact form.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexmorgan/portfolio/internal/contact"
	"github.com/alexmorgan/portfolio/internal/content"
	"github.com/alexmorgan/portfolio/internal/session"
	"github.com/alexmorgan/portfolio/internal/telemetry"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options wires the server's dependencies.
type Options struct {
	Sessions  *session.Store
	Contact   contact.Submitter
	Threshold float64
	// ImagesDir is served under /images when set.
	ImagesDir string
	// Rand seeds hero particles; a time-seeded source is used when nil.
	Rand func() *rand.Rand
}

type server struct {
	sessions  *session.Store
	contact   contact.Submitter
	threshold float64
	rand      func() *rand.Rand
}

var errUnknownID = errors.New("unknown id")

// NewRouter builds the gin engine serving the site.
func NewRouter(opts Options) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	s := &server{
		sessions:  opts.Sessions,
		contact:   opts.Contact,
		threshold: opts.Threshold,
		rand:      opts.Rand,
	}
	if s.rand == nil {
		s.rand = newRand
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), telemetry.Middleware())
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(static))
	if opts.ImagesDir != "" {
		r.Static("/images", opts.ImagesDir)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	site := r.Group("/", sessionMiddleware())
	site.GET("/", s.index)

	site.POST("/process/steps/:id/reveal", s.revealStep)
	site.POST("/process/steps/:id/toggle", s.toggleStep)

	site.POST("/clients/:slug/select", s.selectClient)

	site.GET("/projects/:id", s.openProject)
	site.DELETE("/projects/modal", s.closeProject)

	site.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact-form", contactFormData(contact.Message{}, ""))
	})
	site.POST("/contact", s.submitContact)

	return r, nil
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"join": strings.Join,
		"pct":  func(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) },
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// index mounts a fresh view for the visitor and renders the whole page.
func (s *server) index(c *gin.Context) {
	id := sessionID(c)
	v, err := s.sessions.Mount(id)
	if err != nil {
		log.Printf("Error mounting view for session %s: %v", shortID(id), err)
		c.HTML(http.StatusInternalServerError, "error", gin.H{"error": "Failed to load the page"})
		return
	}
	c.HTML(http.StatusOK, "index.html", pageData(v, s.threshold, s.rand()))
}

// view returns the visitor's mounted view or writes an error response.
func (s *server) view(c *gin.Context) (*session.View, bool) {
	id := sessionID(c)
	v, err := s.sessions.View(id)
	if err != nil {
		log.Printf("Error loading view for session %s: %v", shortID(id), err)
		c.HTML(http.StatusInternalServerError, "error", gin.H{"error": "Failed to load the page"})
		return nil, false
	}
	return v, true
}

func stepParam(c *gin.Context) (content.Step, int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error", gin.H{"error": "Invalid step"})
		return content.Step{}, 0, false
	}
	step, index, ok := content.StepByID(id)
	if !ok {
		_ = c.Error(fmt.Errorf("step %d: %w", id, errUnknownID))
		c.HTML(http.StatusNotFound, "error", gin.H{"error": "Step not found"})
		return content.Step{}, 0, false
	}
	return step, index, true
}

// revealStep records a viewport crossing reported by the browser.
func (s *server) revealStep(c *gin.Context) {
	step, index, ok := stepParam(c)
	if !ok {
		return
	}
	v, ok := s.view(c)
	if !ok {
		return
	}
	v.ReportStep(step.ID)
	c.HTML(http.StatusOK, "step", newStepView(v, step, index, s.threshold))
}

func (s *server) toggleStep(c *gin.Context) {
	step, _, ok := stepParam(c)
	if !ok {
		return
	}
	v, ok := s.view(c)
	if !ok {
		return
	}
	v.ToggleStep(step.ID)
	c.HTML(http.StatusOK, "steps", gin.H{"steps": stepViews(v, s.threshold)})
}

func (s *server) selectClient(c *gin.Context) {
	slug := c.Param("slug")
	if _, ok := content.ClientBySlug(slug); !ok {
		_ = c.Error(fmt.Errorf("client %q: %w", slug, errUnknownID))
		c.HTML(http.StatusNotFound, "error", gin.H{"error": "Client not found"})
		return
	}
	v, ok := s.view(c)
	if !ok {
		return
	}
	v.ToggleClient(slug)
	c.HTML(http.StatusOK, "client-panel", clientPanel(v))
}

func (s *server) openProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "error", gin.H{"error": "Invalid project"})
		return
	}
	p, ok := content.ProjectByID(id)
	if !ok {
		_ = c.Error(fmt.Errorf("project %d: %w", id, errUnknownID))
		c.HTML(http.StatusNotFound, "error", gin.H{"error": "Project not found"})
		return
	}
	v, ok := s.view(c)
	if !ok {
		return
	}
	v.OpenProject(p.ID)
	c.HTML(http.StatusOK, "project-modal", gin.H{"project": p})
}

func (s *server) closeProject(c *gin.Context) {
	v, ok := s.view(c)
	if !ok {
		return
	}
	v.CloseProject()
	c.String(http.StatusOK, "")
}

func (s *server) submitContact(c *gin.Context) {
	var msg contact.Message
	if err := c.ShouldBind(&msg); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "contact-form",
			contactFormData(msg, "Please enter your name, a valid email address and a message."))
		return
	}

	ack, err := s.contact.Submit(c.Request.Context(), msg)
	if err != nil {
		log.Printf("Error submitting contact message: %v", err)
		_ = c.Error(err)
		c.HTML(http.StatusServiceUnavailable, "contact-form",
			contactFormData(msg, "Sorry, your message could not be sent. Please try again."))
		return
	}

	data := contactFormData(contact.Message{}, "")
	data["ack"] = ack
	c.HTML(http.StatusOK, "contact-success", data)
}
