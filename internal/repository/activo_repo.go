package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
)

var (
	ErrSerialDuplicado    = errors.New("el serial ya existe en el inventario")
	ErrActivoNoEncontrado = errors.New("activo no encontrado")
)

// ActivoRepository is the asset registry: serial → serialized asset. Services
// depend on this interface, not on the concrete in-memory store, keeping the
// teacher/test seam the rest of the codebase expects.
//
// The registry is process-local state. Serving it from a multi-threaded HTTP
// server requires explicit mutual exclusion, so every method of the concrete
// store runs under a single per-store lock and Mutar gives callers an atomic
// read-validate-write cycle.
type ActivoRepository interface {
	// Insertar adds a new asset; ErrSerialDuplicado if the serial exists.
	Insertar(ctx context.Context, a model.ActivoSerializado) error
	// BuscarPorSerial returns a copy of the asset, if present.
	BuscarPorSerial(ctx context.Context, serial string) (model.ActivoSerializado, bool)
	// Mutar runs fn under the write lock. fn receives nil when the serial is
	// unknown. If fn returns an error no mutation is applied.
	Mutar(ctx context.Context, serial string, fn func(a *model.ActivoSerializado) error) error
	// Eliminar removes the asset and returns a copy of what was removed.
	Eliminar(ctx context.Context, serial string) (model.ActivoSerializado, bool)
	// Listar returns a snapshot in insertion order for stable display.
	Listar(ctx context.Context) []model.ActivoSerializado
	Contar(ctx context.Context) int
}

type registroActivos struct {
	mu        sync.RWMutex
	porSerial map[string]*model.ActivoSerializado
	orden     []string
}

func NewActivoRepository() ActivoRepository {
	return &registroActivos{porSerial: make(map[string]*model.ActivoSerializado)}
}

func (r *registroActivos) Insertar(_ context.Context, a model.ActivoSerializado) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porSerial[a.Serial]; ok {
		return ErrSerialDuplicado
	}
	r.porSerial[a.Serial] = &a
	r.orden = append(r.orden, a.Serial)
	return nil
}

func (r *registroActivos) BuscarPorSerial(_ context.Context, serial string) (model.ActivoSerializado, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.porSerial[serial]
	if !ok {
		return model.ActivoSerializado{}, false
	}
	return *a, true
}

func (r *registroActivos) Mutar(_ context.Context, serial string, fn func(a *model.ActivoSerializado) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	actual, ok := r.porSerial[serial]
	if !ok {
		return fn(nil)
	}
	// fn works on a copy so a failed validation never leaves a partial write.
	copia := *actual
	if err := fn(&copia); err != nil {
		return err
	}
	*actual = copia
	return nil
}

func (r *registroActivos) Eliminar(_ context.Context, serial string) (model.ActivoSerializado, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.porSerial[serial]
	if !ok {
		return model.ActivoSerializado{}, false
	}
	delete(r.porSerial, serial)
	for i, s := range r.orden {
		if s == serial {
			r.orden = append(r.orden[:i], r.orden[i+1:]...)
			break
		}
	}
	return *a, true
}

func (r *registroActivos) Listar(_ context.Context) []model.ActivoSerializado {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resultado := make([]model.ActivoSerializado, 0, len(r.orden))
	for _, serial := range r.orden {
		resultado = append(resultado, *r.porSerial[serial])
	}
	return resultado
}

func (r *registroActivos) Contar(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.porSerial)
}
