// Package seed provides the reference data the console needs at startup and
// an optional deterministic demo inventory. There is no random generation:
// the same process always boots with the same data.
package seed

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
)

// Catalogo builds the read-only reference catalog. almacenDefault is moved to
// the front of the warehouse list so it doubles as the intake default.
func Catalogo(almacenDefault string) *model.CatalogoReferencia {
	almacenes := []string{"Bodega Central", "Bodega Norte", "Bodega Sur"}
	for i, a := range almacenes {
		if a == almacenDefault && i != 0 {
			almacenes[0], almacenes[i] = almacenes[i], almacenes[0]
			break
		}
	}

	return &model.CatalogoReferencia{
		Tecnicos: []model.Tecnico{
			{ID: "T001", Nombre: "Juan Pérez"},
			{ID: "T002", Nombre: "María Gómez"},
			{ID: "T003", Nombre: "Carlos Rodríguez"},
			{ID: "T004", Nombre: "Lucía Fernández"},
		},
		Causales: []string{
			"Fallo de Encendido",
			"Daño Físico",
			"Puerto Dañado",
			"Fallo de Señal",
			"Equipo Obsoleto",
		},
		TiposEquipo: []string{
			"Decodificador 4K",
			"Decodificador HD",
			"Cable Módem DOCSIS 3.1",
			"Router Wi-Fi 6",
			"ONT GPON",
			"Antena Satelital",
		},
		Tecnologias: []string{"HFC", "Fibra Óptica", "Satelital"},
		Almacenes:   almacenes,
	}
}

// Matriz is the technology-to-service compatibility matrix.
func Matriz() model.MatrizCompatibilidad {
	return model.MatrizCompatibilidad{
		Entradas: []model.EntradaCompatibilidad{
			{Tecnologia: "HFC", Servicios: []string{"Internet Cable", "TV Cable", "Telefonía Fija"}},
			{Tecnologia: "Fibra Óptica", Servicios: []string{"Internet Fibra", "TV IP", "Telefonía Fija"}},
			{Tecnologia: "Satelital", Servicios: []string{"TV Satelital"}},
		},
	}
}

// DemoInventario loads a handful of assets and materials so a fresh process
// is not empty. Seeded assets include an INSTALADO_CLIENTE unit: the console
// never produces that state itself but must display and gate on it.
func DemoInventario(ctx context.Context, activos repository.ActivoRepository, materiales repository.MaterialRepository, almacen string) error {
	ahora := time.Now()

	demo := []model.ActivoSerializado{
		{Serial: "RTR112233445", TipoEquipo: "Router Wi-Fi 6", Tecnologia: "HFC", Estado: model.EstadoEnBodega, Ubicacion: almacen},
		{Serial: "DEC987654321", TipoEquipo: "Decodificador 4K", Tecnologia: "HFC", Estado: model.EstadoEnBodega, Ubicacion: almacen},
		{Serial: "ONT556677889", TipoEquipo: "ONT GPON", Tecnologia: "Fibra Óptica", Estado: model.EstadoEnBodega, Ubicacion: almacen},
		{Serial: "MOD443322110", TipoEquipo: "Cable Módem DOCSIS 3.1", Tecnologia: "HFC", Estado: model.EstadoAsignadoTecnico,
			TecnicoID: "T002", TecnicoNombre: "María Gómez", Ubicacion: model.UbicacionVehiculo("T002")},
		{Serial: "DEC111222333", TipoEquipo: "Decodificador HD", Tecnologia: "Satelital", Estado: model.EstadoInstaladoCliente,
			TecnicoID: "C1044", TecnicoNombre: "Cliente 1044", Ubicacion: model.PrefijoCliente + "C1044"},
	}
	for _, a := range demo {
		a.CreadoEn = ahora
		a.ActualizadoEn = ahora
		if err := activos.Insertar(ctx, a); err != nil {
			return err
		}
	}

	granel := []model.MaterialGranel{
		{Codigo: "CAB-RG6", Nombre: "Cable Coaxial RG6", Unidad: "metros",
			Cantidad: decimal.NewFromInt(1500), CantidadMinima: decimal.NewFromInt(200), Almacen: almacen, Activo: true},
		{Codigo: "CON-F81", Nombre: "Conector F81", Unidad: "unidades",
			Cantidad: decimal.NewFromInt(80), CantidadMinima: decimal.NewFromInt(100), Almacen: almacen, Activo: true},
		{Codigo: "FIB-DROP", Nombre: "Cable Drop Fibra 2 hilos", Unidad: "metros",
			Cantidad: decimal.NewFromInt(3000), CantidadMinima: decimal.NewFromInt(500), Almacen: almacen, Activo: true},
	}
	for i := range granel {
		granel[i].CreadoEn = ahora
		granel[i].ActualizadoEn = ahora
		if err := materiales.Crear(ctx, &granel[i]); err != nil {
			return err
		}
	}
	return nil
}
