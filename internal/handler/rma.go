package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/dto"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/service"
)

type RMAHandler struct {
	svc  service.RMAService
	rmas repository.RMARepository
}

func NewRMAHandler(svc service.RMAService, rmas repository.RMARepository) *RMAHandler {
	return &RMAHandler{svc: svc, rmas: rmas}
}

func (h *RMAHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarRMARequest
	if !bindAndValidate(c, &req) {
		return
	}
	res := h.svc.RegistrarRMA(c.Request.Context(), req)
	responderResultado(c, res, http.StatusCreated)
}

func (h *RMAHandler) Listar(c *gin.Context) {
	snapshot := h.rmas.Listar(c.Request.Context())
	resultado := make([]dto.RMAResponse, 0, len(snapshot))
	for _, r := range snapshot {
		resultado = append(resultado, dto.MapRMA(r))
	}
	c.JSON(http.StatusOK, resultado)
}
