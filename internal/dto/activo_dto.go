package dto

import (
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AsignarActivoRequest struct {
	Serial        string `json:"serial"         validate:"required,min=4,max=40"`
	TecnicoID     string `json:"tecnico_id"     validate:"required"`
	TecnicoNombre string `json:"tecnico_nombre" validate:"required"`
}

type RegistrarSerialRequest struct {
	Serial     string `json:"serial"      validate:"required,min=4,max=40"`
	TipoEquipo string `json:"tipo_equipo" validate:"required"`
	Tecnologia string `json:"tecnologia"  validate:"required"`
	// Ubicacion defaults to the default warehouse when omitted.
	Ubicacion string `json:"ubicacion"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ActivoFilter struct {
	Estado     string `form:"estado"`
	Tecnologia string `form:"tecnologia"`
	TecnicoID  string `form:"tecnico_id"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ActivoResponse struct {
	Serial        string `json:"serial"`
	TipoEquipo    string `json:"tipo_equipo"`
	Tecnologia    string `json:"tecnologia"`
	Estado        string `json:"estado"`
	TecnicoID     string `json:"tecnico_id,omitempty"`
	TecnicoNombre string `json:"tecnico_nombre,omitempty"`
	Ubicacion     string `json:"ubicacion"`
}

// ResultadoOperacion is the envelope every state-mutating operation returns.
// Failures travel here as codes and messages, never as Go errors: the console
// shows Mensaje as-is and uses Codigo to offer recovery actions (NOT_FOUND on
// assignment offers registering the serial first).
type ResultadoOperacion struct {
	Exito   bool                  `json:"exito"`
	Codigo  model.CodigoResultado `json:"codigo,omitempty"`
	Mensaje string                `json:"mensaje"`
	Activo  *ActivoResponse       `json:"activo,omitempty"`
	RMA     *RMAResponse          `json:"rma,omitempty"`
}

func MapActivo(a model.ActivoSerializado) ActivoResponse {
	return ActivoResponse{
		Serial:        a.Serial,
		TipoEquipo:    a.TipoEquipo,
		Tecnologia:    a.Tecnologia,
		Estado:        string(a.Estado),
		TecnicoID:     a.TecnicoID,
		TecnicoNombre: a.TecnicoNombre,
		Ubicacion:     a.Ubicacion,
	}
}
