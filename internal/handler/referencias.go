package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/apierror"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/dto"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/service"
)

// ReferenciasHandler serves the read-only reference lists the console's
// selects are populated from. It reads the catalog directly — there is no
// business logic to put behind a service.
type ReferenciasHandler struct {
	catalogo *model.CatalogoReferencia
}

func NewReferenciasHandler(catalogo *model.CatalogoReferencia) *ReferenciasHandler {
	return &ReferenciasHandler{catalogo: catalogo}
}

func (h *ReferenciasHandler) Tecnicos(c *gin.Context) {
	resultado := make([]dto.TecnicoResponse, 0, len(h.catalogo.Tecnicos))
	for _, t := range h.catalogo.Tecnicos {
		resultado = append(resultado, dto.TecnicoResponse{ID: t.ID, Nombre: t.Nombre})
	}
	c.JSON(http.StatusOK, resultado)
}

func (h *ReferenciasHandler) Causales(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogo.Causales)
}

func (h *ReferenciasHandler) TiposEquipo(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogo.TiposEquipo)
}

func (h *ReferenciasHandler) Tecnologias(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogo.Tecnologias)
}

func (h *ReferenciasHandler) Almacenes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogo.Almacenes)
}

type CompatibilidadHandler struct{ svc service.CompatibilidadService }

func NewCompatibilidadHandler(svc service.CompatibilidadService) *CompatibilidadHandler {
	return &CompatibilidadHandler{svc: svc}
}

func (h *CompatibilidadHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar compatibilidad"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompatibilidadHandler) PorTecnologia(c *gin.Context) {
	resp, err := h.svc.ServiciosPorTecnologia(c.Request.Context(), c.Param("tecnologia"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
