package model

import (
	"time"

	"github.com/google/uuid"
)

// TipoMovimiento classifies an entry of the movement audit log.
type TipoMovimiento string

const (
	MovIngreso        TipoMovimiento = "INGRESO"
	MovAsignacion     TipoMovimiento = "ASIGNACION"
	MovRMA            TipoMovimiento = "RMA"
	MovAjusteMaterial TipoMovimiento = "AJUSTE_MATERIAL"
)

// Movimiento is an immutable audit entry recorded after every successful
// state mutation. Referencia is the asset serial or the material code.
type Movimiento struct {
	ID         uuid.UUID      `json:"id"`
	Referencia string         `json:"referencia"`
	Tipo       TipoMovimiento `json:"tipo"`
	Detalle    string         `json:"detalle"`
	Fecha      time.Time      `json:"fecha"`
}
