package web_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/RonakFabian/next.js-ci-cd/internal/adapter/driving/web"
	"github.com/RonakFabian/next.js-ci-cd/internal/domain/model"
)

// --- Test helpers ---

func newTestMux(motion bool) *http.ServeMux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := http.NewServeMux()
	web.RegisterRoutes(mux, web.NewHandler(model.DefaultProfile(), motion, logger))
	return mux
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func parseDoc(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	for c := range n.Descendants() {
		if match(c) {
			out = append(out, c)
		}
	}
	return out
}

func element(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	for c := range n.Descendants() {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(b.String())
}

// --- Landing page ---

func TestLanding_RendersLiteralContentOnce(t *testing.T) {
	rec := get(t, newTestMux(true), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, "Ronak Fabian"))
	assert.Equal(t, 1, strings.Count(body, "This is a change to webapp!"))
	assert.Contains(t, body, "Crafting Experiences at")
	assert.Contains(t, body, "Dimension")
}

func TestLanding_Structure(t *testing.T) {
	doc := parseDoc(t, get(t, newTestMux(true), "/").Body.String())

	headings := findAll(doc, element("h1"))
	require.Len(t, headings, 1)
	assert.Equal(t, "Ronak Fabian", textOf(headings[0]))

	paragraphs := findAll(doc, func(n *html.Node) bool {
		return element("p")(n) && attr(n, "class") == "hero-description"
	})
	require.Len(t, paragraphs, 1)
	assert.Equal(t, "This is a change to webapp!", textOf(paragraphs[0]))
}

func TestLanding_Buttons(t *testing.T) {
	doc := parseDoc(t, get(t, newTestMux(true), "/").Body.String())

	buttons := findAll(doc, element("button"))
	require.Len(t, buttons, 2)
	assert.Equal(t, "Learn How ↓", textOf(buttons[0]))
	assert.Equal(t, "More about me", textOf(buttons[1]))
	assert.Equal(t, "primary", attr(buttons[0], "data-variant"))
	assert.Equal(t, "secondary", attr(buttons[1], "data-variant"))

	assert.Equal(t, "button", attr(buttons[0], "type"))
	require.NotNil(t, buttons[1].Parent)
	assert.Equal(t, "form", buttons[1].Parent.Data)
	assert.Equal(t, "/about", attr(buttons[1].Parent, "action"))
}

func TestLanding_SocialLinks(t *testing.T) {
	doc := parseDoc(t, get(t, newTestMux(true), "/").Body.String())

	navs := findAll(doc, element("nav"))
	require.Len(t, navs, 1)

	links := findAll(navs[0], element("a"))
	require.Len(t, links, 3)

	seen := map[string]bool{}
	for _, a := range links {
		href := attr(a, "href")
		assert.NotEmpty(t, href)
		assert.False(t, seen[href], "duplicate destination %q", href)
		seen[href] = true

		assert.NotEmpty(t, attr(a, "aria-label"))

		icons := findAll(a, element("svg"))
		require.Len(t, icons, 1, "link %q should carry one icon", href)
		assert.NotEmpty(t, attr(icons[0], "data-icon"))
	}

	assert.Equal(t, "_blank", attr(links[0], "target"))
	assert.Equal(t, "noopener noreferrer", attr(links[0], "rel"))
	assert.True(t, strings.HasPrefix(attr(links[2], "href"), "mailto:"))
	assert.Empty(t, attr(links[2], "target"))
}

func TestLanding_EntranceAttributes(t *testing.T) {
	doc := parseDoc(t, get(t, newTestMux(true), "/").Body.String())

	entrances := map[string]string{}
	for _, n := range findAll(doc, func(n *html.Node) bool { return attr(n, "data-entrance") != "" }) {
		entrances[n.Data] = attr(n, "data-entrance")
	}

	assert.Equal(t, map[string]string{
		"h1": model.HeadingEntrance().Name,
		"p":  model.ParagraphEntrance().Name,
	}, entrances)
}

func TestLanding_RenderIsIdempotent(t *testing.T) {
	mux := newTestMux(true)

	first := get(t, mux, "/").Body.String()
	second := get(t, mux, "/").Body.String()

	assert.Equal(t, first, second)
}

func TestLanding_LinksMotionStylesheet(t *testing.T) {
	body := get(t, newTestMux(true), "/").Body.String()

	assert.Contains(t, body, `<link rel="stylesheet" href="/motion.css">`)
	assert.Contains(t, body, `<link rel="stylesheet" href="/static/styles.css">`)
}

func TestLanding_MotionDisabledKeepsContentVisible(t *testing.T) {
	body := get(t, newTestMux(false), "/").Body.String()

	assert.NotContains(t, body, "/motion.css")
	assert.NotContains(t, body, "opacity")
	assert.NotContains(t, body, "style=")

	doc := parseDoc(t, body)
	hidden := findAll(doc, func(n *html.Node) bool {
		for _, a := range n.Attr {
			if a.Key == "hidden" {
				return true
			}
		}
		return false
	})
	assert.Empty(t, hidden)
	assert.Equal(t, "Ronak Fabian", textOf(findAll(doc, element("h1"))[0]))
	assert.Len(t, findAll(doc, element("button")), 2)
	assert.Len(t, findAll(doc, element("a")), 3)
}

func TestLanding_UnknownPath(t *testing.T) {
	rec := get(t, newTestMux(true), "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// --- Supporting routes ---

func TestMotionCSS(t *testing.T) {
	rec := get(t, newTestMux(true), "/motion.css")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	assert.Contains(t, body, "@media (prefers-reduced-motion: no-preference)")
	assert.Contains(t, body, "@keyframes enter-heading")
	assert.Contains(t, body, "@keyframes enter-paragraph")
	assert.Contains(t, body, "enter-heading 800ms")
	assert.Contains(t, body, "300ms 1 normal both")
}

func TestStaticStylesheet_NeverHidesContent(t *testing.T) {
	rec := get(t, newTestMux(true), "/static/styles.css")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.NotContains(t, rec.Body.String(), "opacity: 0")
	assert.NotContains(t, rec.Body.String(), "visibility: hidden")
}

func TestAbout(t *testing.T) {
	rec := get(t, newTestMux(true), "/about")

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<title>About · Portfolio</title>")
	assert.Contains(t, body, "<h2>About me</h2>")
	assert.Contains(t, body, `<a href="/">← Back</a>`)
	assert.NotContains(t, body, "<script")
}
