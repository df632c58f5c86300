package http

import (
	"log/slog"
	"os"

	"github.com/gatherly/rsvp-backend-go/internal/config"
	"github.com/gatherly/rsvp-backend-go/internal/handler/http/middleware"
	"github.com/gatherly/rsvp-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	inviteHandler InviteHandler,
	rsvpHandler RSVPHandler,
	eventHandler EventHandler,
	metricsHandler MetricsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "gatherly-rsvp"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-ID"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Public, token optional: a verified token upgrades the
		// submission to the authenticated key-space.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))

			r.Get("/invites/{id}", inviteHandler.Get)
			r.Post("/invites/{id}/rsvps", rsvpHandler.Submit)
		})

		r.Post("/events", eventHandler.Record)

		if cfg.App.Env == "development" {
			r.Post("/auth/token", authHandler.MintToken)
		}

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/invites", inviteHandler.Create)
			r.Get("/invites", inviteHandler.List)
			r.Delete("/invites/{id}", inviteHandler.Delete)
			r.Get("/invites/{id}/roster", rsvpHandler.Roster)

			r.Route("/metrics", func(r chi.Router) {
				r.Get("/hero", metricsHandler.Hero)
				r.Get("/daily", metricsHandler.Daily)
			})
		})
	})
	return r
}
