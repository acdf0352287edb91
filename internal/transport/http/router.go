// Package http собирает HTTP-поверхность сервиса: роутер chi,
// цепочку middleware и ops-эндпойнты на одном листенере.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/songs-service/internal/config"
	"github.com/pribylovaa/songs-service/internal/service"
	"github.com/pribylovaa/songs-service/internal/transport/http/handlers"
	"github.com/pribylovaa/songs-service/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
	Metrics *middleware.HTTPMetrics
	// Ready — проверка готовности для /healthz (обычно ping хранилища).
	// nil означает «всегда готов».
	Ready func(ctx context.Context) error
}

// publicRoutes — маршруты, доступные без токена.
// Точное совпадение "METHOD PATH"; см. middleware.Auth.
func publicRoutes() map[string]struct{} {
	return map[string]struct{}{
		"GET /":                  {},
		"GET /livez":             {},
		"GET /healthz":           {},
		"GET /metrics":           {},
		"POST /auth/register":    {},
		"POST /auth/login":       {},
		"POST /auth/refresh":     {},
	}
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, cfg config.Config, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),                              // безопасно ловим паники
		middleware.RequestID(),                            // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger),                   // кладём request-scoped логгер в контекст и логируем
		middleware.CORS(cfg.CORS.AllowedOrigins),          // preflight завершается здесь
	)
	if opts.Metrics != nil {
		root.Use(opts.Metrics.Handler())
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}
	root.Use(middleware.Auth(svc.Codec(), publicRoutes()))

	h := handlers.New(svc, cfg)
	registerRoutes(root, h, opts)

	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, opts Options) {
	// ops
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"service":"songs-service"}`))
	})
	r.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if opts.Ready != nil {
			if err := opts.Ready(req.Context()); err != nil {
				http.Error(w, "not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// auth
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
	r.Get("/auth/me", h.Me)
	r.Post("/auth/logout", h.Logout)

	// songs
	r.Post("/songs", h.CreateSong)
	r.Get("/songs", h.ListSongs)
	r.Get("/songs/search", h.SearchSongs)
	r.Get("/songs/{id}", h.GetSong)
	r.Put("/songs/{id}", h.UpdateSong)
	r.Delete("/songs/{id}", h.DeleteSong)
	r.Get("/songs/{id}/export", h.ExportSong)

	// users
	r.Get("/users", h.ListUsers)
	r.Get("/users/{username}", h.GetUser)
	r.Put("/users/{username}", h.UpdateUser)
	r.Delete("/users/{username}", h.DeleteUser)
	r.Post("/users/{username}/activate", h.ActivateUser)
	r.Post("/users/{username}/deactivate", h.DeactivateUser)
	r.Get("/users/{username}/stats", h.UserStats)
}
