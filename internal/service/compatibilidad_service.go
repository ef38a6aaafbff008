package service

import (
	"context"
	"fmt"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/dto"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
)

// CompatibilidadService answers which services can run over each access
// technology. The matrix is seeded at startup and read-only.
type CompatibilidadService interface {
	Listar(ctx context.Context) ([]dto.CompatibilidadResponse, error)
	ServiciosPorTecnologia(ctx context.Context, tecnologia string) (dto.CompatibilidadResponse, error)
}

type compatibilidadService struct {
	matriz model.MatrizCompatibilidad
}

func NewCompatibilidadService(matriz model.MatrizCompatibilidad) CompatibilidadService {
	return &compatibilidadService{matriz: matriz}
}

func (s *compatibilidadService) Listar(_ context.Context) ([]dto.CompatibilidadResponse, error) {
	resultado := make([]dto.CompatibilidadResponse, 0, len(s.matriz.Entradas))
	for _, e := range s.matriz.Entradas {
		resultado = append(resultado, dto.CompatibilidadResponse{
			Tecnologia: e.Tecnologia,
			Servicios:  e.Servicios,
		})
	}
	return resultado, nil
}

func (s *compatibilidadService) ServiciosPorTecnologia(_ context.Context, tecnologia string) (dto.CompatibilidadResponse, error) {
	servicios, ok := s.matriz.ServiciosPara(tecnologia)
	if !ok {
		return dto.CompatibilidadResponse{}, fmt.Errorf("tecnología desconocida: %s", tecnologia)
	}
	return dto.CompatibilidadResponse{Tecnologia: tecnologia, Servicios: servicios}, nil
}
