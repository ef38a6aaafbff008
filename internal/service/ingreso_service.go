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

// IngresoService registers brand-new serials into the registry. It is also
// the recovery path the console offers when an assignment fails NOT_FOUND.
type IngresoService interface {
	RegistrarNuevoSerial(ctx context.Context, req dto.RegistrarSerialRequest) dto.ResultadoOperacion
}

type ingresoService struct {
	activos     repository.ActivoRepository
	movimientos repository.MovimientoRepository
	catalogo    *model.CatalogoReferencia
}

func NewIngresoService(activos repository.ActivoRepository, movimientos repository.MovimientoRepository, catalogo *model.CatalogoReferencia) IngresoService {
	return &ingresoService{activos: activos, movimientos: movimientos, catalogo: catalogo}
}

func (s *ingresoService) RegistrarNuevoSerial(ctx context.Context, req dto.RegistrarSerialRequest) dto.ResultadoOperacion {
	serial := model.NormalizarSerial(req.Serial)
	if serial == "" || req.TipoEquipo == "" || req.Tecnologia == "" {
		return dto.ResultadoOperacion{
			Codigo:  model.CodigoErrorValidacion,
			Mensaje: "Debe indicar serial, tipo de equipo y tecnología.",
		}
	}

	ubicacion := req.Ubicacion
	if ubicacion == "" {
		ubicacion = s.catalogo.AlmacenPorDefecto()
	}

	ahora := time.Now()
	nuevo := model.ActivoSerializado{
		Serial:        serial,
		TipoEquipo:    req.TipoEquipo,
		Tecnologia:    req.Tecnologia,
		Estado:        model.EstadoEnBodega,
		Ubicacion:     ubicacion,
		CreadoEn:      ahora,
		ActualizadoEn: ahora,
	}

	if err := s.activos.Insertar(ctx, nuevo); err != nil {
		if errors.Is(err, repository.ErrSerialDuplicado) {
			return dto.ResultadoOperacion{
				Codigo:  model.CodigoSerialDuplicado,
				Mensaje: fmt.Sprintf("El serial %s ya existe en el inventario.", serial),
			}
		}
		return dto.ResultadoOperacion{
			Codigo:  model.CodigoErrorValidacion,
			Mensaje: err.Error(),
		}
	}

	s.movimientos.Registrar(ctx, model.Movimiento{
		ID:         uuid.New(),
		Referencia: serial,
		Tipo:       model.MovIngreso,
		Detalle:    fmt.Sprintf("Ingreso a %s (%s, %s)", ubicacion, req.TipoEquipo, req.Tecnologia),
		Fecha:      ahora,
	})

	log.Info().
		Str("serial", serial).
		Str("ubicacion", ubicacion).
		Msg("serial registrado")

	activo := dto.MapActivo(nuevo)
	return dto.ResultadoOperacion{
		Exito:   true,
		Codigo:  model.CodigoRegistrado,
		Mensaje: fmt.Sprintf("Serial %s registrado en %s.", serial, ubicacion),
		Activo:  &activo,
	}
}
