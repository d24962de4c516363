// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/RonakFabian/next.js-ci-cd/internal/adapter/driving/web/templates"
	"github.com/RonakFabian/next.js-ci-cd/internal/adapter/driving/web/templates/pages"
	vm "github.com/RonakFabian/next.js-ci-cd/internal/adapter/driving/web/viewmodel"
	"github.com/RonakFabian/next.js-ci-cd/internal/domain/model"
)

// Document metadata. Kept distinct from the hero copy so the name and
// description each occur once in the landing document.
const (
	siteTitle       = "Portfolio"
	siteDescription = "Personal portfolio landing page."
)

// Handler is the web GUI driving adapter that serves HTML via templ components.
// Everything it renders is immutable, so a Handler is safe for concurrent use.
type Handler struct {
	profile   model.Profile
	motion    bool
	motionCSS string
	logger    *slog.Logger
}

// NewHandler creates a Handler for profile. When motion is false the pages
// render without the entrance animation stylesheet.
func NewHandler(profile model.Profile, motion bool, logger *slog.Logger) *Handler {
	return &Handler{
		profile:   profile,
		motion:    motion,
		motionCSS: MotionStylesheet(model.Entrances()...),
		logger:    logger,
	}
}

// Landing renders the hero landing page with the full HTML layout.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	component := pages.Landing(toHeroViewModel(h.profile))
	h.render(w, r, "landing", h.page(siteTitle), component)
}

// About renders the markdown bio page.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	component := pages.About(toAboutViewModel(h.profile))
	h.render(w, r, "about", h.page("About · "+siteTitle), component)
}

// MotionCSS serves the entrance animation keyframes.
func (h *Handler) MotionCSS(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(h.motionCSS))
}

func (h *Handler) page(title string) vm.PageViewModel {
	return vm.PageViewModel{
		Title:       title,
		Description: siteDescription,
		Motion:      h.motion,
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, page vm.PageViewModel, component templ.Component) {
	layout := templates.Layout(page, component)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
