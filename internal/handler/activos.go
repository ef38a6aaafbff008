package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/dto"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/service"
)

type ActivosHandler struct {
	asignacion service.AsignacionService
	ingreso    service.IngresoService
	activos    repository.ActivoRepository
}

func NewActivosHandler(asignacion service.AsignacionService, ingreso service.IngresoService, activos repository.ActivoRepository) *ActivosHandler {
	return &ActivosHandler{asignacion: asignacion, ingreso: ingreso, activos: activos}
}

func (h *ActivosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarSerialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	res := h.ingreso.RegistrarNuevoSerial(c.Request.Context(), req)
	responderResultado(c, res, http.StatusCreated)
}

func (h *ActivosHandler) Asignar(c *gin.Context) {
	var req dto.AsignarActivoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	res := h.asignacion.Asignar(c.Request.Context(), req)
	responderResultado(c, res, http.StatusOK)
}

// Listar returns a registry snapshot in insertion order, optionally filtered
// by estado, tecnología or técnico.
func (h *ActivosHandler) Listar(c *gin.Context) {
	var filter dto.ActivoFilter
	_ = c.ShouldBindQuery(&filter)

	snapshot := h.activos.Listar(c.Request.Context())
	resultado := make([]dto.ActivoResponse, 0, len(snapshot))
	for _, a := range snapshot {
		if filter.Estado != "" && a.Estado != model.EstadoActivo(filter.Estado) {
			continue
		}
		if filter.Tecnologia != "" && a.Tecnologia != filter.Tecnologia {
			continue
		}
		if filter.TecnicoID != "" && a.TecnicoID != filter.TecnicoID {
			continue
		}
		resultado = append(resultado, dto.MapActivo(a))
	}
	c.JSON(http.StatusOK, resultado)
}
