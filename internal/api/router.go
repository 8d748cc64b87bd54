package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/the-usman/task-back-end/internal/api/handlers"
	"github.com/the-usman/task-back-end/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(accountService services.AccountServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// The API is consumed cross-origin without credentials.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	accountHandler := handlers.NewAccountHandler(accountService)

	r.Post("/signup", accountHandler.Signup)
	r.Post("/login", accountHandler.Login)
	r.Post("/forgot-password", accountHandler.ForgotPassword)
	r.Post("/change-pass", accountHandler.ChangePassword)
	r.Post("/operation", handlers.Operation)

	return r
}

// requestLogger logs one structured line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
