package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/finapp/backend/internal/config"
	"github.com/finapp/backend/internal/handlers"
	"github.com/finapp/backend/internal/middleware"
)

func NewRouter(cfg *config.Config, deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(lm.LoggerMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	sh := handlers.NewStatusHandlers(deps)
	ah := handlers.NewAccountHandlers(deps)
	ch := handlers.NewCategoryHandlers(deps)
	th := handlers.NewTransactionHandlers(deps)
	bh := handlers.NewBudgetHandlers(deps)
	gh := handlers.NewGoalHandlers(deps)
	rh := handlers.NewRecurringHandlers(deps)
	sth := handlers.NewStatsHandlers(deps)

	auth := middleware.NewMiddleware(deps.Verifier)

	r.Route("/api", func(r chi.Router) {
		// the probe stays outside the auth gate
		r.Get("/", sh.Status)

		r.Group(func(r chi.Router) {
			r.Use(auth.Auth)
			r.Mount("/accounts", ah.Routes())
			r.Mount("/categories", ch.Routes())
			r.Mount("/transactions", th.Routes())
			r.Mount("/budgets", bh.Routes())
			r.Mount("/goals", gh.Routes())
			r.Mount("/recurring", rh.Routes())
			r.Mount("/stats", sth.Routes())
		})
	})

	return r
}
