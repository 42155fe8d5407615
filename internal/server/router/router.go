package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agrodesk/agrodesk/internal/server/handlers"
)

const requestIDHeader = "X-Request-Id"

// Handlers groups the per-resource HTTP adapters the router mounts.
type Handlers struct {
	Customers *handlers.CustomerHandler
	Products  *handlers.ProductHandler
	Sales     *handlers.SaleHandler
	Suppliers *handlers.SupplierHandler
	Reports   *handlers.ReportHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	customers := api.Group("/customers")
	customers.GET("", h.Customers.List)
	customers.POST("", h.Customers.Create)
	customers.GET("/:id", h.Customers.Get)
	customers.PUT("/:id", h.Customers.Update)
	customers.DELETE("/:id", h.Customers.Delete)
	customers.POST("/:id/communications", h.Customers.AddCommunication)

	products := api.Group("/products")
	products.GET("", h.Products.List)
	products.POST("", h.Products.Create)
	products.GET("/:id", h.Products.Get)
	products.PUT("/:id", h.Products.Update)
	products.DELETE("/:id", h.Products.Delete)
	products.PATCH("/:id/stock", h.Products.UpdateStock)

	sales := api.Group("/sales")
	sales.GET("", h.Sales.List)
	sales.POST("", h.Sales.Create)
	sales.GET("/metrics", h.Sales.Metrics)
	sales.GET("/:id", h.Sales.Get)
	sales.PUT("/:id", h.Sales.Update)
	sales.DELETE("/:id", h.Sales.Delete)
	sales.PATCH("/:id/payment-status", h.Sales.UpdatePaymentStatus)

	suppliers := api.Group("/suppliers")
	suppliers.GET("", h.Suppliers.List)
	suppliers.POST("", h.Suppliers.Create)
	suppliers.GET("/reliability-report", h.Suppliers.ReliabilityReport)
	suppliers.GET("/:id", h.Suppliers.Get)
	suppliers.PUT("/:id", h.Suppliers.Update)
	suppliers.DELETE("/:id", h.Suppliers.Delete)
	suppliers.PATCH("/:id/reliability", h.Suppliers.UpdateReliability)
	suppliers.PATCH("/:id/delivery", h.Suppliers.UpdateDelivery)

	reports := api.Group("/reports")
	reports.GET("/dashboard", h.Reports.Dashboard)
	reports.GET("/sales", h.Reports.Sales)
	reports.POST("/export", h.Reports.Export)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
