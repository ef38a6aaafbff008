package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
)

var inicio = time.Now()

// Health returns a JSON health check response with store sizes. The stores
// are process-local, so there is no connectivity to probe — the counts double
// as a liveness signal for the console.
func Health(activos repository.ActivoRepository, rmas repository.RMARepository, materiales repository.MaterialRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"ok":         true,
			"uptime":     time.Since(inicio).Round(time.Second).String(),
			"activos":    activos.Contar(ctx),
			"rmas":       rmas.Contar(ctx),
			"materiales": materiales.Contar(ctx),
		})
	}
}
