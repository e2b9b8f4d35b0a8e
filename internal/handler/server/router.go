package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rosterhq/tournament-roster/internal/handler"
	"go.uber.org/zap"
)

type RouterConfig struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

func NewRouter(h *handler.Handler, cfg RouterConfig, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handler.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.Healthz)

	r.Route("/tournaments/{tournamentID}", func(r chi.Router) {
		r.Get("/teams", h.ListTeams)
		r.Get("/stats", h.GetTournamentStats)

		r.Group(func(r chi.Router) {
			r.Use(handler.Authenticate(cfg.JWTSecret))
			r.Post("/join", h.JoinViaInviteCode)
			r.Put("/seeds", h.UpdateSeeds)
		})
	})

	r.Route("/teams/{teamID}", func(r chi.Router) {
		r.Use(handler.Authenticate(cfg.JWTSecret))
		r.Post("/members", h.AddPlayer)
		r.Delete("/members/{userID}", h.RemovePlayer)
		r.Post("/check-in", h.CheckIn)
		r.Delete("/check-in", h.CheckOut)
		r.Post("/invite-code", h.ResetInviteCode)
	})

	r.With(handler.Authenticate(cfg.JWTSecret)).Get("/users/me/teams", h.ListMyTeams)

	return r
}
