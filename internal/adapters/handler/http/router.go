package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vncsmyrnk/academic-polls/internal/core/ports"

	_ "github.com/vncsmyrnk/academic-polls/docs"
)

type Handlers struct {
	Auth      *AuthHandler
	Polls     *PollHandler
	Responses *ResponseHandler
	Users     *UserHandler
}

type RouterConfig struct {
	AllowedOrigins []string
	Metrics        *Metrics
	Logger         *slog.Logger
}

func NewHandler(h Handlers, authService ports.AuthService, cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NewMetrics()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cfg.Metrics.Middleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/oauth", func(r chi.Router) {
		r.Post("/callback", h.Auth.GoogleCallback)
		r.Post("/refresh", h.Auth.Refresh)
		r.Post("/logout", h.Auth.Logout)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(Authenticator(authService))

		r.Get("/me", h.Users.GetMe)
		r.Put("/users/{id}/role", h.Users.SetRole)
		r.Put("/users/{id}/batch", h.Users.SetBatch)

		r.Route("/polls", func(r chi.Router) {
			r.Post("/", h.Polls.CreatePoll)
			r.Get("/", h.Polls.ListPolls)
			r.Post("/respond", h.Responses.Respond)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Polls.GetPoll)
				r.Put("/", h.Polls.UpdatePoll)
				r.Delete("/", h.Polls.DeletePoll)
				r.Get("/details", h.Polls.GetDetails)
				r.Get("/my-responses", h.Responses.MyResponses)
				r.Get("/audit", h.Polls.AuditTrail)
				r.Put("/toggle-status", h.Polls.ToggleStatus)
			})
		})
	})

	return r
}
