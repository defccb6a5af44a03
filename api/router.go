package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"sales_api/internal/metrics"
	"sales_api/internal/sales"
)

func init() {
	// Amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// InitRoutes registers the sales endpoints, health check and metrics on the
// given Gin engine, together with request ID, logging, recovery and metrics
// middleware.
func InitRoutes(e *gin.Engine, salesService *sales.Service, logger *zap.Logger, m *metrics.Metrics) {
	e.Use(requestID(), requestLogger(logger), recovery(logger), instrument(m))

	salesHandler := NewSalesHandler(salesService, logger)

	e.POST("/sales", salesHandler.handleCreateSale)
	e.GET("/sales", salesHandler.handleListSales)
	e.GET("/sales/summary", salesHandler.handleSummary)
	e.GET("/sales/:id", salesHandler.handleGetSale)
	e.PUT("/sales/:id", salesHandler.handleUpdateSale)
	e.DELETE("/sales/:id", salesHandler.handleCancelSale)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	e.GET("/metrics", gin.WrapH(m.Handler()))
}

// NewRouter builds an engine with an in-memory store, ready to serve.
func NewRouter(logger *zap.Logger, m *metrics.Metrics) *gin.Engine {
	e := gin.New()
	salesService := sales.NewService(sales.NewLocalStorage(), logger, sales.WithRecorder(m))
	InitRoutes(e, salesService, logger, m)
	return e
}
