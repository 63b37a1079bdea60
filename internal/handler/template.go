package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"homeroster/internal/model"
	"homeroster/internal/store"
)

type TemplateHandler struct {
	store     *store.MemberStore
	templates *template.Template
	logger    *slog.Logger
}

func NewTemplateHandler(s *store.MemberStore, logger *slog.Logger) *TemplateHandler {
	tmpl := template.Must(template.ParseGlob("web/templates/*.html"))
	return &TemplateHandler{
		store:     s,
		templates: tmpl,
		logger:    logger,
	}
}

// Roster renders the member listing page. The static script re-renders
// the roster client-side and wires up the profile form.
func (h *TemplateHandler) Roster(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	members, err := h.store.List()
	if err != nil {
		h.logger.Error("load roster page", "error", err)
		http.Error(w, "failed to load members", http.StatusInternalServerError)
		return
	}

	rows := make([]model.MemberRow, len(members))
	for i, m := range members {
		rows[i] = model.RowFromMember(m)
	}

	data := map[string]any{
		"Title":          "Household Profiler",
		"Members":        rows,
		"Roles":          model.Roles,
		"Sexes":          model.Sexes,
		"ActivityLevels": model.ActivityLevels,
		"Frequencies":    model.Frequencies,
	}
	if err := h.templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		h.logger.Error("render roster page", "error", err)
	}
}
