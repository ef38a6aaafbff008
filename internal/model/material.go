package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialGranel is bulk stock tracked by quantity rather than by serial:
// coaxial cable in meters, connectors by unit, etc. Cantidad never goes
// negative; CantidadMinima drives the low-stock alert view.
type MaterialGranel struct {
	ID             uuid.UUID       `json:"id"`
	Codigo         string          `json:"codigo"`
	Nombre         string          `json:"nombre"`
	Descripcion    *string         `json:"descripcion,omitempty"`
	Unidad         string          `json:"unidad"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	CantidadMinima decimal.Decimal `json:"cantidad_minima"`
	Almacen        string          `json:"almacen"`
	Activo         bool            `json:"activo"`
	CreadoEn       time.Time       `json:"creado_en"`
	ActualizadoEn  time.Time       `json:"actualizado_en"`
}

// BajoMinimo reports whether the material should appear in the alert list.
func (m MaterialGranel) BajoMinimo() bool {
	return m.Cantidad.LessThanOrEqual(m.CantidadMinima)
}
