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

func TestRegistrarNuevoSerial(t *testing.T) {
	activos := repository.NewActivoRepository()
	svc := NewIngresoService(activos, repository.NewMovimientoRepository(), catalogoDePrueba())

	res := svc.RegistrarNuevoSerial(context.Background(), dto.RegistrarSerialRequest{
		Serial:     "ont998877665",
		TipoEquipo: "ONT GPON",
		Tecnologia: "Fibra Óptica",
		Ubicacion:  "Bodega Norte",
	})

	require.True(t, res.Exito)
	assert.Equal(t, model.CodigoRegistrado, res.Codigo)

	a, ok := activos.BuscarPorSerial(context.Background(), "ONT998877665")
	require.True(t, ok)
	assert.Equal(t, model.EstadoEnBodega, a.Estado)
	assert.Empty(t, a.TecnicoID)
	assert.Empty(t, a.TecnicoNombre)
	assert.Equal(t, "Bodega Norte", a.Ubicacion)
}

func TestRegistrarSerialDuplicado(t *testing.T) {
	activos := repository.NewActivoRepository()
	svc := NewIngresoService(activos, repository.NewMovimientoRepository(), catalogoDePrueba())

	req := dto.RegistrarSerialRequest{
		Serial:     "DEC987654321",
		TipoEquipo: "Decodificador 4K",
		Tecnologia: "HFC",
	}
	primero := svc.RegistrarNuevoSerial(context.Background(), req)
	require.True(t, primero.Exito)

	segundo := svc.RegistrarNuevoSerial(context.Background(), req)
	assert.False(t, segundo.Exito)
	assert.Equal(t, model.CodigoSerialDuplicado, segundo.Codigo)
	assert.Equal(t, 1, activos.Contar(context.Background()))
}

func TestRegistrarUbicacionPorDefecto(t *testing.T) {
	activos := repository.NewActivoRepository()
	svc := NewIngresoService(activos, repository.NewMovimientoRepository(), catalogoDePrueba())

	res := svc.RegistrarNuevoSerial(context.Background(), dto.RegistrarSerialRequest{
		Serial:     "MOD123400001",
		TipoEquipo: "Cable Módem DOCSIS 3.1",
		Tecnologia: "HFC",
	})
	require.True(t, res.Exito)

	a, _ := activos.BuscarPorSerial(context.Background(), "MOD123400001")
	assert.Equal(t, "Bodega Central", a.Ubicacion)
}

// The console's recovery flow: a failed assignment is followed by an intake
// of the same serial, after which the assignment goes through.
func TestFlujoRecuperacionNoEncontrado(t *testing.T) {
	activos := repository.NewActivoRepository()
	movimientos := repository.NewMovimientoRepository()
	catalogo := catalogoDePrueba()
	ingreso := NewIngresoService(activos, movimientos, catalogo)
	asignacion := NewAsignacionService(activos, movimientos, catalogo)

	req := dto.AsignarActivoRequest{Serial: "RTR556600442", TecnicoID: "T001", TecnicoNombre: "Juan Pérez"}

	fallo := asignacion.Asignar(context.Background(), req)
	require.False(t, fallo.Exito)
	require.Equal(t, model.CodigoNoEncontrado, fallo.Codigo)

	alta := ingreso.RegistrarNuevoSerial(context.Background(), dto.RegistrarSerialRequest{
		Serial:     "RTR556600442",
		TipoEquipo: "Router Wi-Fi 6",
		Tecnologia: "HFC",
	})
	require.True(t, alta.Exito)

	reintento := asignacion.Asignar(context.Background(), req)
	require.True(t, reintento.Exito)
	assert.Equal(t, model.CodigoAsignado, reintento.Codigo)
}
