package httpx

import (
	"strconv"
	"time"

	"github.com/Gunvolt24/pharma_inventory/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics - гистограмма длительности запросов по шаблону маршрута.
// Неизвестные маршруты сводятся к одному label, чтобы не раздувать кардинальность.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		switch route {
		case "/metrics":
			return
		case "":
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
