package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
)

var (
	ErrMaterialNoEncontrado = errors.New("material no encontrado")
	ErrCodigoDuplicado      = errors.New("ya existe un material con ese código")
)

// MaterialRepository stores the bulk-material catalog. Código is unique
// across the catalog the way Serial is unique across the registry.
type MaterialRepository interface {
	Crear(ctx context.Context, m *model.MaterialGranel) error
	BuscarPorID(ctx context.Context, id uuid.UUID) (model.MaterialGranel, bool)
	BuscarPorCodigo(ctx context.Context, codigo string) (model.MaterialGranel, bool)
	// Mutar runs fn under the write lock; fn receives nil for an unknown id
	// and a failed fn leaves the material untouched.
	Mutar(ctx context.Context, id uuid.UUID, fn func(m *model.MaterialGranel) error) error
	Listar(ctx context.Context) []model.MaterialGranel
	Contar(ctx context.Context) int
}

type catalogoMateriales struct {
	mu    sync.RWMutex
	porID map[uuid.UUID]*model.MaterialGranel
	orden []uuid.UUID
}

func NewMaterialRepository() MaterialRepository {
	return &catalogoMateriales{porID: make(map[uuid.UUID]*model.MaterialGranel)}
}

func (c *catalogoMateriales) Crear(_ context.Context, m *model.MaterialGranel) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existente := range c.porID {
		if existente.Codigo == m.Codigo {
			return ErrCodigoDuplicado
		}
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	copia := *m
	c.porID[m.ID] = &copia
	c.orden = append(c.orden, m.ID)
	return nil
}

func (c *catalogoMateriales) BuscarPorID(_ context.Context, id uuid.UUID) (model.MaterialGranel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.porID[id]
	if !ok {
		return model.MaterialGranel{}, false
	}
	return *m, true
}

func (c *catalogoMateriales) BuscarPorCodigo(_ context.Context, codigo string) (model.MaterialGranel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.orden {
		if c.porID[id].Codigo == codigo {
			return *c.porID[id], true
		}
	}
	return model.MaterialGranel{}, false
}

func (c *catalogoMateriales) Mutar(_ context.Context, id uuid.UUID, fn func(m *model.MaterialGranel) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	actual, ok := c.porID[id]
	if !ok {
		return fn(nil)
	}
	copia := *actual
	if err := fn(&copia); err != nil {
		return err
	}
	*actual = copia
	return nil
}

func (c *catalogoMateriales) Listar(_ context.Context) []model.MaterialGranel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	resultado := make([]model.MaterialGranel, 0, len(c.orden))
	for _, id := range c.orden {
		resultado = append(resultado, *c.porID[id])
	}
	return resultado
}

func (c *catalogoMateriales) Contar(_ context.Context) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.porID)
}
