package repository

import (
	"context"
	"sync"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
)

// MovimientoRepository is the append-only movement audit log.
type MovimientoRepository interface {
	Registrar(ctx context.Context, m model.Movimiento)
	// Listar returns a snapshot newest-first.
	Listar(ctx context.Context) []model.Movimiento
	Contar(ctx context.Context) int
}

type bitacoraMovimientos struct {
	mu       sync.RWMutex
	entradas []model.Movimiento
}

func NewMovimientoRepository() MovimientoRepository {
	return &bitacoraMovimientos{}
}

func (b *bitacoraMovimientos) Registrar(_ context.Context, m model.Movimiento) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entradas = append(b.entradas, m)
}

func (b *bitacoraMovimientos) Listar(_ context.Context) []model.Movimiento {
	b.mu.RLock()
	defer b.mu.RUnlock()
	resultado := make([]model.Movimiento, len(b.entradas))
	for i, m := range b.entradas {
		resultado[len(b.entradas)-1-i] = m
	}
	return resultado
}

func (b *bitacoraMovimientos) Contar(_ context.Context) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entradas)
}
