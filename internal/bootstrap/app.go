package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Salma-fathi/ATS-CV-TESTER/internal/analyses"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/enrich"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/scoring"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/services/health"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/config"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/server"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/storage/db"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/storage/object"
	localstore "github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/storage/object/local"
	s3store "github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/storage/object/s3"
)

// Version is stamped at build time.
var Version = "dev"

// App holds the application's shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Store           object.ObjectStore
	AnalysesRepo    analyses.Repo
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
	Health          *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	analyzer, err := scoring.NewAnalyzer()
	if err != nil {
		return nil, fmt.Errorf("build analyzer: %w", err)
	}

	enricher := buildEnricher(ctx, cfg)

	var repo analyses.Repo
	if sqlDB != nil {
		repo = &analyses.PGRepo{DB: sqlDB}
	} else {
		repo = analyses.NewMemoryRepo()
	}

	svc := &analyses.Service{
		Repo:          repo,
		Analyzer:      analyzer,
		Enricher:      enricher,
		Store:         store,
		EnrichTimeout: cfg.EnrichTimeout,
	}

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		Store:           store,
		AnalysesRepo:    repo,
		AnalysesService: svc,
		AnalysisHandler: analyses.NewHandler(svc),
		Health:          health.NewService(Version, enricher != nil),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AnalysisHandler: app.AnalysisHandler,
		Health:          app.Health,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildEnricher returns nil when no API key is configured; the service
// degrades to heuristic-only analysis.
func buildEnricher(ctx context.Context, cfg config.Config) enrich.Enricher {
	if strings.TrimSpace(cfg.GoogleAPIKey) == "" {
		log.Printf("bootstrap: GOOGLE_API_KEY empty; enrichment disabled")
		return nil
	}
	enricher, err := enrich.NewGeminiEnricher(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("bootstrap: gemini client init failed; enrichment disabled: %v", err)
		return nil
	}
	return enricher
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
