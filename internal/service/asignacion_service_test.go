package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/dto"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
)

func TestAsignarEnBodega(t *testing.T) {
	activos := repository.NewActivoRepository()
	movimientos := repository.NewMovimientoRepository()
	svc := NewAsignacionService(activos, movimientos, catalogoDePrueba())

	seedActivo(activos, "RTR112233445", model.EstadoEnBodega)

	// Serial matching is case-insensitive via normalization.
	res := svc.Asignar(context.Background(), dto.AsignarActivoRequest{
		Serial:        "rtr112233445",
		TecnicoID:     "T001",
		TecnicoNombre: "Juan Pérez",
	})

	require.True(t, res.Exito)
	assert.Equal(t, model.CodigoAsignado, res.Codigo)
	require.NotNil(t, res.Activo)
	assert.Equal(t, string(model.EstadoAsignadoTecnico), res.Activo.Estado)
	assert.Equal(t, "Vehicle:T001", res.Activo.Ubicacion)

	a, ok := activos.BuscarPorSerial(context.Background(), "RTR112233445")
	require.True(t, ok)
	assert.Equal(t, model.EstadoAsignadoTecnico, a.Estado)
	assert.Equal(t, "T001", a.TecnicoID)
	assert.Equal(t, "Juan Pérez", a.TecnicoNombre)
}

func TestAsignarSerialInexistente(t *testing.T) {
	activos := repository.NewActivoRepository()
	svc := NewAsignacionService(activos, repository.NewMovimientoRepository(), catalogoDePrueba())

	res := svc.Asignar(context.Background(), dto.AsignarActivoRequest{
		Serial:        "XYZ999",
		TecnicoID:     "T001",
		TecnicoNombre: "Juan Pérez",
	})

	assert.False(t, res.Exito)
	assert.Equal(t, model.CodigoNoEncontrado, res.Codigo)
	assert.Contains(t, res.Mensaje, "Regístrelo")
	assert.Equal(t, 0, activos.Contar(context.Background()))
}

func TestAsignarYaAsignado(t *testing.T) {
	activos := repository.NewActivoRepository()
	svc := NewAsignacionService(activos, repository.NewMovimientoRepository(), catalogoDePrueba())

	seedActivo(activos, "DEC987654321", model.EstadoAsignadoTecnico)

	res := svc.Asignar(context.Background(), dto.AsignarActivoRequest{
		Serial:        "DEC987654321",
		TecnicoID:     "T001",
		TecnicoNombre: "Juan Pérez",
	})

	assert.False(t, res.Exito)
	assert.Equal(t, model.CodigoNoDisponible, res.Codigo)
	assert.Contains(t, res.Mensaje, string(model.EstadoAsignadoTecnico))

	// No partial mutation: the asset keeps its original technician.
	a, ok := activos.BuscarPorSerial(context.Background(), "DEC987654321")
	require.True(t, ok)
	assert.Equal(t, "T002", a.TecnicoID)
	assert.Equal(t, model.UbicacionVehiculo("T002"), a.Ubicacion)
}

func TestAsignarInstaladoCliente(t *testing.T) {
	activos := repository.NewActivoRepository()
	svc := NewAsignacionService(activos, repository.NewMovimientoRepository(), catalogoDePrueba())

	seedActivo(activos, "DEC555000111", model.EstadoInstaladoCliente)

	res := svc.Asignar(context.Background(), dto.AsignarActivoRequest{
		Serial:        "DEC555000111",
		TecnicoID:     "T001",
		TecnicoNombre: "Juan Pérez",
	})

	assert.False(t, res.Exito)
	assert.Equal(t, model.CodigoNoDisponible, res.Codigo)
}

func TestAsignarTecnicoDesconocido(t *testing.T) {
	activos := repository.NewActivoRepository()
	svc := NewAsignacionService(activos, repository.NewMovimientoRepository(), catalogoDePrueba())

	seedActivo(activos, "RTR112233445", model.EstadoEnBodega)

	res := svc.Asignar(context.Background(), dto.AsignarActivoRequest{
		Serial:        "RTR112233445",
		TecnicoID:     "T999",
		TecnicoNombre: "Nadie",
	})

	assert.False(t, res.Exito)
	assert.Equal(t, model.CodigoErrorValidacion, res.Codigo)

	a, _ := activos.BuscarPorSerial(context.Background(), "RTR112233445")
	assert.Equal(t, model.EstadoEnBodega, a.Estado)
}

func TestAsignarRegistraMovimiento(t *testing.T) {
	activos := repository.NewActivoRepository()
	movimientos := repository.NewMovimientoRepository()
	svc := NewAsignacionService(activos, movimientos, catalogoDePrueba())

	seedActivo(activos, "RTR112233445", model.EstadoEnBodega)

	res := svc.Asignar(context.Background(), dto.AsignarActivoRequest{
		Serial:        "RTR112233445",
		TecnicoID:     "T001",
		TecnicoNombre: "Juan Pérez",
	})
	require.True(t, res.Exito)

	lista := movimientos.Listar(context.Background())
	require.Len(t, lista, 1)
	assert.Equal(t, model.MovAsignacion, lista[0].Tipo)
	assert.Equal(t, "RTR112233445", lista[0].Referencia)
}
