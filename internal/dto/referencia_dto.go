package dto

import (
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
)

type TecnicoResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}

type CompatibilidadResponse struct {
	Tecnologia string   `json:"tecnologia"`
	Servicios  []string `json:"servicios"`
}

type MovimientoResponse struct {
	ID         string `json:"id"`
	Referencia string `json:"referencia"`
	Tipo       string `json:"tipo"`
	Detalle    string `json:"detalle"`
	Fecha      string `json:"fecha"`
}

func MapMovimiento(m model.Movimiento) MovimientoResponse {
	return MovimientoResponse{
		ID:         m.ID.String(),
		Referencia: m.Referencia,
		Tipo:       string(m.Tipo),
		Detalle:    m.Detalle,
		Fecha:      m.Fecha.Format("2006-01-02 15:04:05"),
	}
}
