package dto

import (
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
)

type RegistrarRMARequest struct {
	Serial        string `json:"serial"         validate:"required,min=4,max=40"`
	Causal        string `json:"causal"         validate:"required"`
	TecnicoID     string `json:"tecnico_id"     validate:"required"`
	TecnicoNombre string `json:"tecnico_nombre" validate:"required"`
	// Fallback fields for serials the registry never saw. Optional: when
	// empty the service defaults from the reference lists.
	TipoEquipo string `json:"tipo_equipo"`
	Tecnologia string `json:"tecnologia"`
}

type RMAResponse struct {
	ID                   string `json:"id"`
	Serial               string `json:"serial"`
	TipoEquipo           string `json:"tipo_equipo"`
	Tecnologia           string `json:"tecnologia"`
	Estado               string `json:"estado"`
	Causal               string `json:"causal"`
	FechaRegistro        string `json:"fecha_registro"`
	TecnicoReportaID     string `json:"tecnico_reporta_id"`
	TecnicoReportaNombre string `json:"tecnico_reporta_nombre"`
}

func MapRMA(r model.RegistroRMA) RMAResponse {
	return RMAResponse{
		ID:                   r.ID.String(),
		Serial:               r.Serial,
		TipoEquipo:           r.TipoEquipo,
		Tecnologia:           r.Tecnologia,
		Estado:               string(r.Estado),
		Causal:               r.Causal,
		FechaRegistro:        r.FechaRegistro.Format("2006-01-02"),
		TecnicoReportaID:     r.TecnicoReportaID,
		TecnicoReportaNombre: r.TecnicoReportaNombre,
	}
}
