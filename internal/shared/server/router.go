package server

import (
	"github.com/gin-gonic/gin"

	"github.com/Salma-fathi/ATS-CV-TESTER/internal/analyses"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/services/health"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/config"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/metrics"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/server/middleware"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/server/respond"
)

// RouterDeps carries the constructed handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	Health          *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	})

	// Analysis is CPU- and model-bound; keep a per-client cap on it.
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"ANALYZE": {Rate: 1, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.FullPath() == "/api/v1/analyze" {
				return "ANALYZE"
			}
			return ""
		},
	}))
	deps.AnalysisHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
