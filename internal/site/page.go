// Package site renders the public landing page from the content document.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"

	"github.com/peecock/content-admin/backend/go-services/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

// richPolicy keeps the handful of inline tags editors use in headings and
// button text.
func richPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("br", "b", "strong", "em", "i")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span")
	p.AllowElements("span")
	return p
}

// Renderer executes the page template against a document.
type Renderer struct {
	page   *template.Template
	policy *bluemonday.Policy
}

// View is the data the page template sees.
type View struct {
	*content.Document
}

// Button returns the buy button for slot, or nil when none is placed there.
func (v View) Button(slot string) *content.BuyButton {
	return v.Document.ButtonFor(slot)
}

// HasSocial reports whether any social link is set.
func (v View) HasSocial() bool {
	s := v.SocialMedia
	return s.Facebook != "" || s.Instagram != "" || s.TikTok != ""
}

func New() (*Renderer, error) {
	r := &Renderer{policy: richPolicy()}
	funcs := template.FuncMap{
		// rich marks sanitized editor HTML as safe.
		"rich": func(s string) template.HTML {
			return template.HTML(r.policy.Sanitize(s))
		},
		"year": func(v View) int { return v.LastUpdated.Year() },
	}
	page, err := template.New("page.html").Funcs(funcs).ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	r.page = page
	return r, nil
}

// Render writes the page for doc to w. The page is rendered into a buffer
// first so a template failure never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, doc *content.Document) error {
	var buf bytes.Buffer
	if err := r.page.Execute(&buf, View{Document: doc}); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Sanitize applies the rich-text policy to s.
func (r *Renderer) Sanitize(s string) string {
	return r.policy.Sanitize(s)
}
