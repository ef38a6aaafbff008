package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/dto"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
)

// MaterialService covers the bulk-material side of the console: catalog CRUD,
// quantity adjustments and low-stock alerts.
type MaterialService interface {
	Crear(ctx context.Context, req dto.CrearMaterialRequest) (dto.MaterialResponse, error)
	Listar(ctx context.Context) ([]dto.MaterialResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.MaterialResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaterialRequest) (dto.MaterialResponse, error)
	AjustarCantidad(ctx context.Context, id uuid.UUID, req dto.AjustarCantidadRequest) (dto.MaterialResponse, error)
	Alertas(ctx context.Context) ([]dto.MaterialResponse, error)
}

type materialService struct {
	materiales  repository.MaterialRepository
	movimientos repository.MovimientoRepository
	catalogo    *model.CatalogoReferencia
}

func NewMaterialService(materiales repository.MaterialRepository, movimientos repository.MovimientoRepository, catalogo *model.CatalogoReferencia) MaterialService {
	return &materialService{materiales: materiales, movimientos: movimientos, catalogo: catalogo}
}

func (s *materialService) Crear(ctx context.Context, req dto.CrearMaterialRequest) (dto.MaterialResponse, error) {
	if req.Cantidad.IsNegative() || req.CantidadMinima.IsNegative() {
		return dto.MaterialResponse{}, errors.New("las cantidades no pueden ser negativas")
	}

	almacen := req.Almacen
	if almacen == "" {
		almacen = s.catalogo.AlmacenPorDefecto()
	}

	ahora := time.Now()
	m := &model.MaterialGranel{
		Codigo:         req.Codigo,
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		Unidad:         req.Unidad,
		Cantidad:       req.Cantidad,
		CantidadMinima: req.CantidadMinima,
		Almacen:        almacen,
		Activo:         true,
		CreadoEn:       ahora,
		ActualizadoEn:  ahora,
	}
	if err := s.materiales.Crear(ctx, m); err != nil {
		if errors.Is(err, repository.ErrCodigoDuplicado) {
			return dto.MaterialResponse{}, fmt.Errorf("ya existe un material con el código %s", req.Codigo)
		}
		return dto.MaterialResponse{}, err
	}
	return dto.MapMaterial(*m), nil
}

func (s *materialService) Listar(ctx context.Context) ([]dto.MaterialResponse, error) {
	lista := s.materiales.Listar(ctx)
	resultado := make([]dto.MaterialResponse, 0, len(lista))
	for _, m := range lista {
		if !m.Activo {
			continue
		}
		resultado = append(resultado, dto.MapMaterial(m))
	}
	return resultado, nil
}

func (s *materialService) ObtenerPorID(ctx context.Context, id uuid.UUID) (dto.MaterialResponse, error) {
	m, ok := s.materiales.BuscarPorID(ctx, id)
	if !ok {
		return dto.MaterialResponse{}, errors.New("material no encontrado")
	}
	return dto.MapMaterial(m), nil
}

func (s *materialService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMaterialRequest) (dto.MaterialResponse, error) {
	var actualizado model.MaterialGranel
	err := s.materiales.Mutar(ctx, id, func(m *model.MaterialGranel) error {
		if m == nil {
			return errors.New("material no encontrado")
		}
		if req.Nombre != nil {
			m.Nombre = *req.Nombre
		}
		if req.Descripcion != nil {
			m.Descripcion = req.Descripcion
		}
		if req.Unidad != nil {
			m.Unidad = *req.Unidad
		}
		if req.CantidadMinima != nil {
			if req.CantidadMinima.IsNegative() {
				return errors.New("la cantidad mínima no puede ser negativa")
			}
			m.CantidadMinima = *req.CantidadMinima
		}
		if req.Almacen != nil {
			m.Almacen = *req.Almacen
		}
		m.ActualizadoEn = time.Now()
		actualizado = *m
		return nil
	})
	if err != nil {
		return dto.MaterialResponse{}, err
	}
	return dto.MapMaterial(actualizado), nil
}

func (s *materialService) AjustarCantidad(ctx context.Context, id uuid.UUID, req dto.AjustarCantidadRequest) (dto.MaterialResponse, error) {
	var ajustado model.MaterialGranel
	err := s.materiales.Mutar(ctx, id, func(m *model.MaterialGranel) error {
		if m == nil {
			return errors.New("material no encontrado")
		}
		nueva := m.Cantidad.Add(req.Delta)
		if nueva.IsNegative() {
			return fmt.Errorf("stock insuficiente: %s %s disponibles", m.Cantidad.String(), m.Unidad)
		}
		m.Cantidad = nueva
		m.ActualizadoEn = time.Now()
		ajustado = *m
		return nil
	})
	if err != nil {
		return dto.MaterialResponse{}, err
	}

	s.movimientos.Registrar(ctx, model.Movimiento{
		ID:         uuid.New(),
		Referencia: ajustado.Codigo,
		Tipo:       model.MovAjusteMaterial,
		Detalle:    fmt.Sprintf("Ajuste %s %s: %s", req.Delta.String(), ajustado.Unidad, req.Motivo),
		Fecha:      time.Now(),
	})
	return dto.MapMaterial(ajustado), nil
}

func (s *materialService) Alertas(ctx context.Context) ([]dto.MaterialResponse, error) {
	lista := s.materiales.Listar(ctx)
	alertas := make([]dto.MaterialResponse, 0)
	for _, m := range lista {
		if m.Activo && m.BajoMinimo() {
			alertas = append(alertas, dto.MapMaterial(m))
		}
	}
	return alertas, nil
}
