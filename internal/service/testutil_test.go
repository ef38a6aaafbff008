package service

import (
	"context"
	"time"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
)

// ── Shared test fixtures ──────────────────────────────────────────────────────

func catalogoDePrueba() *model.CatalogoReferencia {
	return &model.CatalogoReferencia{
		Tecnicos: []model.Tecnico{
			{ID: "T001", Nombre: "Juan Pérez"},
			{ID: "T002", Nombre: "María Gómez"},
		},
		Causales:    []string{"Fallo de Encendido", "Daño Físico"},
		TiposEquipo: []string{"Decodificador 4K", "Router Wi-Fi 6"},
		Tecnologias: []string{"HFC", "Fibra Óptica"},
		Almacenes:   []string{"Bodega Central", "Bodega Norte"},
	}
}

func seedActivo(repo repository.ActivoRepository, serial string, estado model.EstadoActivo) model.ActivoSerializado {
	a := model.ActivoSerializado{
		Serial:        serial,
		TipoEquipo:    "Decodificador 4K",
		Tecnologia:    "HFC",
		Estado:        estado,
		Ubicacion:     "Bodega Central",
		CreadoEn:      time.Now(),
		ActualizadoEn: time.Now(),
	}
	if estado == model.EstadoAsignadoTecnico {
		a.TecnicoID = "T002"
		a.TecnicoNombre = "María Gómez"
		a.Ubicacion = model.UbicacionVehiculo("T002")
	}
	if err := repo.Insertar(context.Background(), a); err != nil {
		panic(err)
	}
	return a
}
