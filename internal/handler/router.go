/*
Package handler provides the HTTP handlers and routing setup for the Pariksha Mitra API.

This file defines the main Router, applying middleware like logging, CORS,
and IP-based rate limiting before delegating requests to the auth, profile,
and dashboard handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"parikshamitra/internal/app/user"
	"parikshamitra/internal/pkg/limiter"
	"parikshamitra/internal/pkg/logx"
	"parikshamitra/internal/pkg/resp"
)

const (
	// AuthRate and AuthBurst cap the auth endpoints at 10 requests per
	// 15-minute window per source IP (10/900 tokens per second, burst 10).
	AuthRate  = 10.0 / 900.0
	AuthBurst = 10
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It configures CORS, global middleware, the per-IP limiter for the auth
// endpoints, and the protected route subtrees.
func Router(deps *AppDeps) http.Handler {
	authLimiter := limiter.NewIPRateLimiter(rate.Limit(AuthRate), AuthBurst)

	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "Pariksha Mitra API",
		}
		resp.RespondJSON(w, r, http.StatusOK, data)
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(auth chi.Router) {
			auth.Use(authLimiter.Middleware)
			auth.Post("/register", HandleRegister(deps))
			auth.Post("/login", HandleLogin(deps))
			auth.With(Authenticate(deps)).Post("/change-password", HandleChangePassword(deps))
		})

		api.Route("/users", func(users chi.Router) {
			users.Use(Authenticate(deps))
			users.Get("/me", HandleGetMe(deps))
			users.Put("/me", HandleUpdateProfile(deps))
			users.Post("/avatar/presign", HandlePresignAvatar(deps))
		})

		api.Route("/teacher", func(teacher chi.Router) {
			teacher.Use(Authenticate(deps))
			teacher.Use(RequireRole(user.RoleTeacher))
			teacher.Get("/overview", HandleTeacherOverview(deps))
		})
	})

	return r
}
