package model

import (
	"time"

	"github.com/google/uuid"
)

// EstadoRMA classifies an RMA record. Records are created PENDIENTE_REVISION
// and the console does not mutate them afterwards; the remaining states are
// observed on data fed back from the repair center.
type EstadoRMA string

const (
	RMAPendienteRevision  EstadoRMA = "PENDIENTE_REVISION"
	RMADanadoBaja         EstadoRMA = "DANADO_BAJA"
	RMADanadoReparacion   EstadoRMA = "DANADO_CENTRO_REPARACION"
	RMAAprobadoDevolucion EstadoRMA = "APROBADO_DEVOLUCION"
)

// RegistroRMA documents a returned or damaged unit. A serial appears in the
// ledger at most once; registering it consumes the asset from the registry.
type RegistroRMA struct {
	ID                   uuid.UUID `json:"id"`
	Serial               string    `json:"serial"`
	TipoEquipo           string    `json:"tipo_equipo"`
	Tecnologia           string    `json:"tecnologia"`
	Estado               EstadoRMA `json:"estado"`
	Causal               string    `json:"causal"`
	FechaRegistro        time.Time `json:"fecha_registro"`
	TecnicoReportaID     string    `json:"tecnico_reporta_id"`
	TecnicoReportaNombre string    `json:"tecnico_reporta_nombre"`
}
