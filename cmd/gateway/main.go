package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/prepstack/prepstack-engine/internal/api/http"
	auth "github.com/prepstack/prepstack-engine/internal/auth/middleware"
	"github.com/prepstack/prepstack-engine/internal/bank"
	"github.com/prepstack/prepstack-engine/internal/config"
	"github.com/prepstack/prepstack-engine/internal/db"
	"github.com/prepstack/prepstack-engine/internal/rbac"
	"github.com/prepstack/prepstack-engine/internal/results"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	banks := bank.NewSQLStore(dbh)
	if err := bank.Seed(ctx, banks, cfg.BankDir); err != nil {
		log.Fatalf("seeding banks: %v", err)
	}
	resultStore := results.NewStore(dbh)
	hub := api.NewHub()

	authSvc := auth.NewAuthService(cfg.AuthSecret, cfg.AdminUser, cfg.AdminPassHash)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Admin: import banks, export results
		pr.With(rbac.Require("bank:import")).
			Post("/banks", api.ImportBankHandler(banks))
		pr.With(rbac.Require("results:export")).
			Get("/results/export", api.ExportResultsHandler(resultStore))

		// Browsing
		pr.With(rbac.Require("bank:view")).
			Get("/banks", api.ListBanksHandler(banks))
		pr.With(rbac.Require("bank:view")).
			Get("/banks/{bankID}", api.GetBankHandler(banks))

		// Session flow
		pr.With(rbac.Require("session:create")).
			Post("/sessions", api.CreateSessionHandler(banks, hub, resultStore))
		pr.With(rbac.Require("session:run")).Route("/sessions/{sessionID}", func(sr chi.Router) {
			sr.Get("/", api.GetSessionHandler(hub))
			sr.Get("/clock", api.ClockStreamHandler(hub))
			sr.Post("/select", api.SelectOptionHandler(hub))
			sr.Post("/advance", api.AdvanceHandler(hub))
			sr.Post("/mark", api.MarkForReviewHandler(hub))
			sr.Post("/clear", api.ClearResponseHandler(hub))
			sr.Post("/jump", api.JumpHandler(hub))
			sr.Post("/submit", api.SubmitSessionHandler(hub))
			sr.Delete("/", api.AbandonSessionHandler(hub))
		})

		pr.With(rbac.RequireAny("results:view-own", "results:view-all")).
			Get("/results", api.ListResultsHandler(resultStore))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
