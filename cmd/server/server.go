package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rahul4469/gemini-relay/internal/config"
	"github.com/rahul4469/gemini-relay/internal/controllers"
	"github.com/rahul4469/gemini-relay/internal/middleware"
	"github.com/rahul4469/gemini-relay/internal/services"
)

func run(cfg *config.Config) error {
	// Setup Services ---------------
	gemini, err := services.NewGeminiClient(context.Background(), cfg.APIs.GeminiAPIKey, cfg.APIs.GeminiModel)
	if err != nil {
		return err
	}
	defer gemini.Close()
	log.Printf("Gemini client ready (model %s, timeout %v)", cfg.APIs.GeminiModel, cfg.APIs.GeminiTimeout)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      newRouter(cfg, gemini),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start the Server
	log.Printf("Server is running and listening on port %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

// newRouter wires controllers to routes. generator is shared by all
// requests and must be safe for concurrent use.
func newRouter(cfg *config.Config, generator services.Generator) http.Handler {
	generator = services.WithTimeout(generator, cfg.APIs.GeminiTimeout)

	// Setup Controllers ---------------
	geminiCtrl := controllers.NewGeminiController(generator)
	analyzeCtrl := controllers.NewAnalyzeController(
		services.NewAIAnalyzer(generator, cfg.Analyzer.StrictSchema),
	)

	// Setup router and routes
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	// CORS runs first so recovered panics still carry the allow-origin header
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Security.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(middleware.RecoverJSON)

	// ---- Public Routes ----
	r.Get("/", controllers.GetHome)
	r.Get("/health", controllers.HealthCheck)

	// ---- API Routes ----
	r.Group(func(r chi.Router) {
		r.Use(chimw.RequestSize(cfg.Limits.MaxBodyBytes))

		r.Post("/gemini", geminiCtrl.PostGenerate)
		r.Post("/analyze-eat", analyzeCtrl.PostAnalyze)
	})

	return r
}
