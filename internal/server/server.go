package server

import (
	"database/sql"
	"log/slog"
	"net/http"

	"homeroster/internal/handler"
	"homeroster/internal/household"
	"homeroster/internal/middleware"
	"homeroster/internal/store"
	ws "homeroster/internal/websocket"
)

type Server struct {
	db         *sql.DB
	hub        *ws.Hub
	memberH    *handler.MemberHandler
	householdH *handler.HouseholdHandler
	templateH  *handler.TemplateHandler
	logger     *slog.Logger
}

func New(db *sql.DB, timezone string, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))
	memberStore := store.NewMemberStore(db)
	householdSvc := household.NewService(memberStore, timezone)

	return &Server{
		db:         db,
		hub:        hub,
		memberH:    handler.NewMemberHandler(memberStore, hub, logger.With("component", "member")),
		householdH: handler.NewHouseholdHandler(householdSvc, logger.With("component", "household")),
		templateH:  handler.NewTemplateHandler(memberStore, logger.With("component", "template")),
		logger:     logger,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// JSON API
	mux.HandleFunc("GET /healthcheck", handler.Healthcheck)
	mux.HandleFunc("GET /household", s.householdH.Overview)
	mux.HandleFunc("GET /members", s.memberH.List)
	mux.HandleFunc("POST /members", s.memberH.Create)
	mux.HandleFunc("PUT /members/{id}", s.memberH.Update)
	mux.HandleFunc("DELETE /members/{id}", s.memberH.Delete)

	// Browser UI
	mux.HandleFunc("GET /ws", ws.Handle(s.hub))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	mux.HandleFunc("GET /", s.templateH.Roster)

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}
