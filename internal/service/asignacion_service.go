package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/dto"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
)

// AsignacionService performs the warehouse → technician transition.
type AsignacionService interface {
	// Asignar attempts to hand an EN_BODEGA asset to a technician. Every
	// outcome, including failures, is a ResultadoOperacion — no error return,
	// the operation always runs to completion.
	Asignar(ctx context.Context, req dto.AsignarActivoRequest) dto.ResultadoOperacion
}

type asignacionService struct {
	activos     repository.ActivoRepository
	movimientos repository.MovimientoRepository
	catalogo    *model.CatalogoReferencia
}

func NewAsignacionService(activos repository.ActivoRepository, movimientos repository.MovimientoRepository, catalogo *model.CatalogoReferencia) AsignacionService {
	return &asignacionService{activos: activos, movimientos: movimientos, catalogo: catalogo}
}

func (s *asignacionService) Asignar(ctx context.Context, req dto.AsignarActivoRequest) dto.ResultadoOperacion {
	serial := model.NormalizarSerial(req.Serial)
	if serial == "" || req.TecnicoID == "" {
		return dto.ResultadoOperacion{
			Codigo:  model.CodigoErrorValidacion,
			Mensaje: "Debe indicar el serial y el técnico a asignar.",
		}
	}
	if _, ok := s.catalogo.BuscarTecnico(req.TecnicoID); !ok {
		return dto.ResultadoOperacion{
			Codigo:  model.CodigoErrorValidacion,
			Mensaje: fmt.Sprintf("El técnico %s no existe en el directorio.", req.TecnicoID),
		}
	}

	var (
		errNoEncontrado = errors.New("no encontrado")
		errNoDisponible = errors.New("no disponible")
		estadoActual    model.EstadoActivo
		asignado        model.ActivoSerializado
	)

	// The lookup, the state check and the mutation run atomically under the
	// registry's write lock. A failed check leaves the registry untouched.
	err := s.activos.Mutar(ctx, serial, func(a *model.ActivoSerializado) error {
		if a == nil {
			return errNoEncontrado
		}
		if a.Estado != model.EstadoEnBodega {
			estadoActual = a.Estado
			return errNoDisponible
		}
		a.Estado = model.EstadoAsignadoTecnico
		a.TecnicoID = req.TecnicoID
		a.TecnicoNombre = req.TecnicoNombre
		a.Ubicacion = model.UbicacionVehiculo(req.TecnicoID)
		a.ActualizadoEn = time.Now()
		asignado = *a
		return nil
	})

	switch {
	case errors.Is(err, errNoEncontrado):
		return dto.ResultadoOperacion{
			Codigo:  model.CodigoNoEncontrado,
			Mensaje: fmt.Sprintf("El serial %s no se encuentra en el inventario. Regístrelo como ingreso nuevo antes de asignarlo.", serial),
		}
	case errors.Is(err, errNoDisponible):
		return dto.ResultadoOperacion{
			Codigo:  model.CodigoNoDisponible,
			Mensaje: fmt.Sprintf("El serial %s no está disponible para asignación (estado actual: %s).", serial, estadoActual),
		}
	}

	s.movimientos.Registrar(ctx, model.Movimiento{
		ID:         uuid.New(),
		Referencia: serial,
		Tipo:       model.MovAsignacion,
		Detalle:    fmt.Sprintf("Asignado al técnico %s (%s)", req.TecnicoNombre, req.TecnicoID),
		Fecha:      time.Now(),
	})

	log.Info().
		Str("serial", serial).
		Str("tecnico_id", req.TecnicoID).
		Msg("activo asignado")

	activo := dto.MapActivo(asignado)
	return dto.ResultadoOperacion{
		Exito:   true,
		Codigo:  model.CodigoAsignado,
		Mensaje: fmt.Sprintf("Serial %s asignado al técnico %s.", serial, req.TecnicoNombre),
		Activo:  &activo,
	}
}
