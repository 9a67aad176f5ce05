package httpd

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with the gocalc middleware stack and all
// routes registered.
//
// Endpoints:
//
//	GET  /health         - liveness probe
//	GET  /v1/operations  - list supported operations
//	POST /v1/calculate   - evaluate one operation
//	POST /v1/worksheet   - evaluate a batch of operations
//	GET  /metrics        - Prometheus exposition
func NewRouter(h *Handlers, logger *zap.Logger, m *Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))
	router.Use(Instrument(m))

	RegisterRoutes(router, h)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return router
}

// RegisterRoutes registers the API routes with the router.
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/health", h.HandleHealth)

	v1 := router.Group("/v1")
	v1.GET("/operations", h.HandleOperations)
	v1.POST("/calculate", h.HandleCalculate)
	v1.POST("/worksheet", h.HandleWorksheet)
}
