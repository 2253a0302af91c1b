package site

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peecock/content-admin/backend/go-services/internal/content"
)

func render(t *testing.T, doc *content.Document) string {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	var sb strings.Builder
	require.NoError(t, r.Render(&sb, doc))
	return sb.String()
}

func TestRender_DefaultDocument(t *testing.T) {
	doc := content.Default("1.0.0", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	out := render(t, doc)

	assert.Contains(t, out, "<title>Peecock - Sérum vegano para crescimento de cílios</title>")
	assert.Contains(t, out, `id="header-buy"`)
	assert.Contains(t, out, `id="shipping-cta"`)
	assert.Contains(t, out, "<b>frete grátis!</b>", "trusted inline tags survive sanitizing")
	assert.Contains(t, out, "Peecock:<br>o segredo")
	assert.Contains(t, out, "© 2026 Peecock Cosméticos")
}

func TestRender_HeaderButtonOnlyWhenPresent(t *testing.T) {
	doc := content.Default("1.0.0", time.Now())
	var kept []content.BuyButton
	for _, b := range doc.BuyButtons {
		if b.Location != content.SlotHeader {
			kept = append(kept, b)
		}
	}
	doc.BuyButtons = kept

	out := render(t, doc)
	header := out[strings.Index(out, "<header"):strings.Index(out, "</header>")]
	assert.NotContains(t, header, "buy-button")
	assert.Contains(t, out, `id="main-cta-1"`)
}

func TestRender_HidesEmptySections(t *testing.T) {
	doc := content.Default("1.0.0", time.Now())
	doc.FAQ = []content.FAQ{}
	doc.Testimonials = nil
	doc.SocialMedia = content.SocialMedia{}
	doc.Normalize()

	out := render(t, doc)
	assert.NotContains(t, out, `class="faq"`)
	assert.NotContains(t, out, `class="testimonials"`)
	assert.NotContains(t, out, `class="social"`)

	doc.SocialMedia.Instagram = "https://www.instagram.com/peecockbr/"
	out = render(t, doc)
	assert.Contains(t, out, "Instagram")
	assert.NotContains(t, out, "Facebook")
}

func TestRender_SanitizesRichText(t *testing.T) {
	doc := content.Default("1.0.0", time.Now())
	doc.MainHeadings.Hero = `Oi<script>alert(1)</script><span class="hl" onclick="x()">Peecock</span>`
	doc.Company.Name = "<b>Peecock</b>"

	out := render(t, doc)
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, `<span class="hl">Peecock</span>`)
	assert.Contains(t, out, "&lt;b&gt;Peecock&lt;/b&gt;", "plain fields are escaped, not sanitized")
}

func TestSanitize(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Equal(t, "a<br>b", r.Sanitize("a<br>b"))
	assert.Equal(t, "link", r.Sanitize(`<a href="javascript:x">link</a>`))
	assert.Equal(t, "<em>x</em>", r.Sanitize("<em>x</em>"))
}
