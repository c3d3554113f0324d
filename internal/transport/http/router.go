package rest

import (
	"net/http"
	"time"

	"github.com/Gunvolt24/pharma_inventory/internal/ports"
	"github.com/Gunvolt24/pharma_inventory/pkg/httpx"
	"github.com/Gunvolt24/pharma_inventory/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler - REST-обработчики справочников и приёмок.
type Handler struct {
	suppliers  ports.SupplierService
	products   ports.ProductService
	receptions ports.ReceptionService
	log        ports.Logger
	timeout    time.Duration
}

// NewHandler - timeout ограничивает каждый запрос к API (0 - без ограничения).
func NewHandler(
	suppliers ports.SupplierService,
	products ports.ProductService,
	receptions ports.ReceptionService,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{
		suppliers:  suppliers,
		products:   products,
		receptions: receptions,
		log:        log,
		timeout:    timeout,
	}
}

// NewRouter собирает gin.Engine; otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	validate.UseJSONFieldNames()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))
	r.Use(httpx.Metrics())

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("", httpx.Timeout(h.timeout))

	suppliers := api.Group("/suppliers")
	suppliers.GET("", h.listSuppliers)
	suppliers.POST("", h.createSupplier)
	suppliers.POST("/validate", h.validateSupplier)
	suppliers.GET("/:id", h.getSupplier)
	suppliers.PATCH("/:id", h.updateSupplier)
	suppliers.DELETE("/:id", h.deleteSupplier)

	products := api.Group("/products")
	products.GET("", h.listProducts)
	products.GET("/active", h.listActiveProducts)
	products.POST("", h.createProduct)
	products.POST("/validate", h.validateProduct)
	products.GET("/:id", h.getProduct)
	products.PATCH("/:id", h.updateProduct)
	products.DELETE("/:id", h.deleteProduct)

	receptions := api.Group("/receptions")
	receptions.GET("", h.listReceptions)
	receptions.POST("", h.createReception)
	receptions.POST("/validate", h.validateReception)
	receptions.GET("/:id", h.getReception)
	receptions.PATCH("/:id", h.updateReception)
	receptions.DELETE("/:id", h.deleteReception)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}
