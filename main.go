package main

import (
	"log"
	"net/http"
	"time"

	"github.com/EmpoweredVote/insightforge/internal/config"
	"github.com/EmpoweredVote/insightforge/internal/docstore"
	"github.com/EmpoweredVote/insightforge/internal/lda"
	"github.com/EmpoweredVote/insightforge/internal/metrics"
	"github.com/EmpoweredVote/insightforge/internal/middleware"
	"github.com/EmpoweredVote/insightforge/internal/network"
	"github.com/EmpoweredVote/insightforge/internal/politicians"
	"github.com/EmpoweredVote/insightforge/internal/regions"
	"github.com/EmpoweredVote/insightforge/internal/search"
	"github.com/EmpoweredVote/insightforge/internal/utils"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

const version = "1.0.0"

func RootHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]any{
		"message": "InsightForge API",
		"version": version,
		"endpoints": map[string]string{
			"national":    "/api/national/*",
			"regions":     "/api/regions",
			"lda":         "/api/lda/*",
			"politicians": "/api/politicians/*",
			"network":     "/api/network/*",
			"search":      "/api/search",
		},
	})
}

func healthHandler(store *docstore.Store, rollups *regions.RollupCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"status":           "healthy",
			"documents_cached": len(store.Cached()),
			"aggregated":       false,
		}
		if agg := rollups.Get(); agg != nil {
			resp["aggregated"] = true
			resp["aggregation_run_id"] = agg.RunID.String()
			resp["aggregated_at"] = agg.GeneratedAt.Format(time.RFC3339)
		}
		utils.WriteJSON(w, resp)
	}
}

// newRouter wires every feature over store. It runs the startup aggregation.
func newRouter(cfg config.Config, store *docstore.Store) (http.Handler, error) {
	topics, err := lda.NewProvider(cfg.LDAProvider, store)
	if err != nil {
		return nil, err
	}

	regionsHandler := regions.Init(store, cfg.DefaultYear, cfg.LatestYear)
	politiciansHandler := politicians.Init(store, cfg.SupportedSidoCode, cfg.SupportedSidoPrefix)
	searchHandler := &search.Handler{Searcher: search.NewSearcher(store)}
	networkHandler := &network.Handler{Service: network.NewService(store)}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.Metrics)

	r.Get("/", RootHandler)
	r.Get("/health", healthHandler(store, regionsHandler.Rollups))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimit.Enabled {
			r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}

		r.Mount("/national", regions.SetupNationalRoutes(regionsHandler))
		r.Mount("/emdong", regions.SetupEmdongRoutes(regionsHandler))
		r.Mount("/regions", regions.SetupRegionRoutes(regionsHandler))
		r.Get("/years", regionsHandler.Years)

		r.Mount("/politicians", politicians.SetupRoutes(politiciansHandler))
		r.Mount("/network", network.SetupRoutes(networkHandler))
		r.Mount("/lda", lda.SetupRoutes(topics))

		r.Get("/search", searchHandler.Search)
		r.Get("/stats/summary", networkHandler.Summary)
	})

	return r, nil
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[config] %v", err)
	}
	log.Printf("[config] data directory: %s", cfg.DataDir)

	store := docstore.New(cfg.DataDir, cfg.Documents)
	r, err := newRouter(cfg, store)
	if err != nil {
		log.Fatalf("[lda] %v", err)
	}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	log.Printf("Server listening on port :%s...", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server: %v", err)
	}
}
