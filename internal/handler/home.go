package handler

import (
	"net/http"

	"github.com/templui/goalplanner/internal/markdown"
	"github.com/templui/goalplanner/internal/service"
	"github.com/templui/goalplanner/internal/ui"
	"github.com/templui/goalplanner/internal/ui/pages"
)

type HomeHandler struct {
	planner  *service.PlannerService
	markdown *markdown.Parser
}

func NewHomeHandler(planner *service.PlannerService, md *markdown.Parser) *HomeHandler {
	return &HomeHandler{
		planner:  planner,
		markdown: md,
	}
}

func (h *HomeHandler) OverviewPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Overview(pages.OverviewProps{
		Overview: h.planner.Overview(),
		Today:    h.planner.Today(),
		Markdown: h.markdown,
	}))
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	ui.Render(w, r, pages.NotFound())
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
