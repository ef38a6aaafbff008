package dto

import (
	"github.com/shopspring/decimal"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearMaterialRequest struct {
	Codigo         string          `json:"codigo"          validate:"required,min=3,max=40"`
	Nombre         string          `json:"nombre"          validate:"required,min=2,max=120"`
	Descripcion    *string         `json:"descripcion"`
	Unidad         string          `json:"unidad"          validate:"required"`
	Cantidad       decimal.Decimal `json:"cantidad"        validate:"min=0"`
	CantidadMinima decimal.Decimal `json:"cantidad_minima" validate:"min=0"`
	Almacen        string          `json:"almacen"`
}

type ActualizarMaterialRequest struct {
	Nombre         *string          `json:"nombre"          validate:"omitempty,min=2,max=120"`
	Descripcion    *string          `json:"descripcion"`
	Unidad         *string          `json:"unidad"`
	CantidadMinima *decimal.Decimal `json:"cantidad_minima"`
	Almacen        *string          `json:"almacen"`
}

// AjustarCantidadRequest moves stock in (positive) or out (negative).
type AjustarCantidadRequest struct {
	Delta  decimal.Decimal `json:"delta"  validate:"required"`
	Motivo string          `json:"motivo" validate:"required,min=3,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MaterialResponse struct {
	ID             string          `json:"id"`
	Codigo         string          `json:"codigo"`
	Nombre         string          `json:"nombre"`
	Descripcion    *string         `json:"descripcion,omitempty"`
	Unidad         string          `json:"unidad"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	CantidadMinima decimal.Decimal `json:"cantidad_minima"`
	Almacen        string          `json:"almacen"`
	BajoMinimo     bool            `json:"bajo_minimo"`
}

func MapMaterial(m model.MaterialGranel) MaterialResponse {
	return MaterialResponse{
		ID:             m.ID.String(),
		Codigo:         m.Codigo,
		Nombre:         m.Nombre,
		Descripcion:    m.Descripcion,
		Unidad:         m.Unidad,
		Cantidad:       m.Cantidad,
		CantidadMinima: m.CantidadMinima,
		Almacen:        m.Almacen,
		BajoMinimo:     m.BajoMinimo(),
	}
}
