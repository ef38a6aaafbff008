package model

import (
	"strings"
	"time"
)

// EstadoActivo is the lifecycle state of a serialized asset. The state drives
// which operations are allowed: only EN_BODEGA assets can be assigned, and
// any asset (or even an unregistered serial) can enter RMA.
type EstadoActivo string

const (
	EstadoEnBodega         EstadoActivo = "EN_BODEGA"
	EstadoAsignadoTecnico  EstadoActivo = "ASIGNADO_TECNICO"
	EstadoInstaladoCliente EstadoActivo = "INSTALADO_CLIENTE"
	EstadoEnProcesoRMA     EstadoActivo = "EN_PROCESO_RMA"
)

// Location prefixes. OFSC exports expect these literals, so they are not
// translated.
const (
	PrefijoVehiculo = "Vehicle:"
	PrefijoCliente  = "Client:"
)

// ActivoSerializado is a uniquely identified physical unit tracked by serial
// number, as opposed to bulk material tracked only by quantity.
//
// Invariants: Serial is unique across the registry and stored uppercase.
// Estado and Ubicacion/TecnicoID stay mutually consistent — ASIGNADO_TECNICO
// implies Ubicacion = "Vehicle:<TecnicoID>" and both technician fields set;
// EN_BODEGA implies empty technician fields and a warehouse name.
type ActivoSerializado struct {
	Serial        string       `json:"serial"`
	TipoEquipo    string       `json:"tipo_equipo"`
	Tecnologia    string       `json:"tecnologia"`
	Estado        EstadoActivo `json:"estado"`
	TecnicoID     string       `json:"tecnico_id,omitempty"`
	TecnicoNombre string       `json:"tecnico_nombre,omitempty"`
	Ubicacion     string       `json:"ubicacion"`
	CreadoEn      time.Time    `json:"creado_en"`
	ActualizadoEn time.Time    `json:"actualizado_en"`
}

// NormalizarSerial trims and upper-cases a serial so lookups are
// case-insensitive regardless of how the operator typed it.
func NormalizarSerial(serial string) string {
	return strings.ToUpper(strings.TrimSpace(serial))
}

// UbicacionVehiculo builds the location string for an asset riding in a
// technician's vehicle.
func UbicacionVehiculo(tecnicoID string) string {
	return PrefijoVehiculo + tecnicoID
}
