package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/lexnetio/lexnet/internal/dbpool"
	"github.com/lexnetio/lexnet/internal/middleware"
	"github.com/lexnetio/lexnet/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Pool        *dbpool.Pool
	Hub         *ws.Hub
	Synsets     SynsetRepository
	Relations   RelationRepository
	Senses      SenseRepository
	Graph       GraphRepository
	Bulk        BulkRepository
	CORSOrigins []string
	APIKey      string
	MaxDepth    int
	Version     string
}

// Router-level limits.
const (
	maxBodySize = 10 << 20 // 10 MB
	rateLimit   = 100      // requests per second per IP
	rateBurst   = 200      // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	var events Broadcaster
	if deps.Hub != nil {
		events = deps.Hub
	}

	health := NewHealthHandler(deps.Pool, deps.Hub, log, deps.Version)
	synsets := NewSynsetHandler(deps.Synsets, events, log)
	relations := NewRelationHandler(deps.Relations, events, log)
	senses := NewSenseHandler(deps.Senses, events, log)
	graph := NewGraphHandler(deps.Graph, deps.MaxDepth, log)
	bulk := NewBulkHandler(deps.Bulk, events, log)

	// Health and readiness are unauthenticated.
	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// All other API routes require authentication when an API key is configured.
	api.Use(middleware.APIKeyAuth(deps.APIKey))

	// Synsets.
	api.GET("/synsets", synsets.List)
	api.POST("/synsets", synsets.Create)
	api.GET("/synsets/:id", synsets.Get)
	api.GET("/synsets/:id/senses", senses.ListForSynset)
	api.POST("/synsets/:id/senses", senses.Create)

	// Relations.
	api.GET("/relations", relations.List)
	api.POST("/relations", relations.Create)

	// Graph traversal.
	api.GET("/graph/ego/:id", graph.Ego)
	api.GET("/graph/edges/:id", graph.Edges)

	// Bulk operations.
	api.POST("/bulk/synsets", bulk.BulkSynsets)
	api.POST("/bulk/relations", bulk.BulkRelations)
	api.POST("/bulk/senses", bulk.BulkSenses)

	// WebSocket endpoint.
	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
