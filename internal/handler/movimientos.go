package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/dto"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
)

type MovimientosHandler struct {
	movimientos repository.MovimientoRepository
}

func NewMovimientosHandler(movimientos repository.MovimientoRepository) *MovimientosHandler {
	return &MovimientosHandler{movimientos: movimientos}
}

func (h *MovimientosHandler) Listar(c *gin.Context) {
	snapshot := h.movimientos.Listar(c.Request.Context())
	resultado := make([]dto.MovimientoResponse, 0, len(snapshot))
	for _, m := range snapshot {
		resultado = append(resultado, dto.MapMovimiento(m))
	}
	c.JSON(http.StatusOK, resultado)
}
