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

// RMAService registers returned or damaged units. Registering an RMA consumes
// the asset: it is removed from the registry, not status-flagged, and the
// ledger keeps the only trace of it.
type RMAService interface {
	RegistrarRMA(ctx context.Context, req dto.RegistrarRMARequest) dto.ResultadoOperacion
}

type rmaService struct {
	activos     repository.ActivoRepository
	rmas        repository.RMARepository
	movimientos repository.MovimientoRepository
	catalogo    *model.CatalogoReferencia
}

func NewRMAService(activos repository.ActivoRepository, rmas repository.RMARepository, movimientos repository.MovimientoRepository, catalogo *model.CatalogoReferencia) RMAService {
	return &rmaService{activos: activos, rmas: rmas, movimientos: movimientos, catalogo: catalogo}
}

func (s *rmaService) RegistrarRMA(ctx context.Context, req dto.RegistrarRMARequest) dto.ResultadoOperacion {
	// Callers normalize before submitting, but tolerate raw input anyway.
	serial := model.NormalizarSerial(req.Serial)
	if serial == "" || req.Causal == "" || req.TecnicoID == "" {
		return dto.ResultadoOperacion{
			Codigo:  model.CodigoErrorValidacion,
			Mensaje: "Debe indicar serial, causal y técnico que reporta.",
		}
	}
	if !s.catalogo.EsCausalValida(req.Causal) {
		return dto.ResultadoOperacion{
			Codigo:  model.CodigoErrorValidacion,
			Mensaje: fmt.Sprintf("La causal %q no pertenece a la lista de causales.", req.Causal),
		}
	}

	if s.rmas.Existe(ctx, serial) {
		return s.resultadoDuplicado(serial)
	}

	// If the registry knows the serial, capture its type/technology and
	// consume it. Otherwise fall back to what the caller supplied, defaulting
	// from the reference lists.
	tipoEquipo := req.TipoEquipo
	tecnologia := req.Tecnologia
	if activo, ok := s.activos.Eliminar(ctx, serial); ok {
		tipoEquipo = activo.TipoEquipo
		tecnologia = activo.Tecnologia
	} else {
		if tipoEquipo == "" {
			tipoEquipo = s.catalogo.TipoEquipoPorDefecto()
		}
		if tecnologia == "" {
			tecnologia = s.catalogo.TecnologiaPorDefecto()
		}
	}

	registro := model.RegistroRMA{
		ID:                   uuid.New(),
		Serial:               serial,
		TipoEquipo:           tipoEquipo,
		Tecnologia:           tecnologia,
		Estado:               model.RMAPendienteRevision,
		Causal:               req.Causal,
		FechaRegistro:        time.Now(),
		TecnicoReportaID:     req.TecnicoID,
		TecnicoReportaNombre: req.TecnicoNombre,
	}

	if err := s.rmas.Insertar(ctx, registro); err != nil {
		if errors.Is(err, repository.ErrRMADuplicado) {
			return s.resultadoDuplicado(serial)
		}
		return dto.ResultadoOperacion{
			Codigo:  model.CodigoErrorValidacion,
			Mensaje: err.Error(),
		}
	}

	s.movimientos.Registrar(ctx, model.Movimiento{
		ID:         uuid.New(),
		Referencia: serial,
		Tipo:       model.MovRMA,
		Detalle:    fmt.Sprintf("RMA por %q, reporta %s (%s)", req.Causal, req.TecnicoNombre, req.TecnicoID),
		Fecha:      registro.FechaRegistro,
	})

	log.Info().
		Str("serial", serial).
		Str("causal", req.Causal).
		Msg("rma registrado")

	rma := dto.MapRMA(registro)
	return dto.ResultadoOperacion{
		Exito:   true,
		Codigo:  model.CodigoRMARegistrado,
		Mensaje: fmt.Sprintf("RMA registrado para el serial %s (causal: %s).", serial, req.Causal),
		RMA:     &rma,
	}
}

func (s *rmaService) resultadoDuplicado(serial string) dto.ResultadoOperacion {
	return dto.ResultadoOperacion{
		Codigo:  model.CodigoYaEnRMA,
		Mensaje: fmt.Sprintf("El serial %s ya tiene un RMA registrado.", serial),
	}
}
