package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
)

var ErrRMADuplicado = errors.New("el serial ya tiene un RMA registrado")

// RMARepository is the RMA ledger: serial → RMA record. Records are write-once;
// the ledger only grows.
type RMARepository interface {
	// Insertar adds a record; ErrRMADuplicado if the serial is already
	// ledgered. The duplicate check and the insert run under one lock.
	Insertar(ctx context.Context, r model.RegistroRMA) error
	Existe(ctx context.Context, serial string) bool
	BuscarPorSerial(ctx context.Context, serial string) (model.RegistroRMA, bool)
	// Listar returns a snapshot in insertion order.
	Listar(ctx context.Context) []model.RegistroRMA
	Contar(ctx context.Context) int
}

type libroRMA struct {
	mu        sync.RWMutex
	porSerial map[string]*model.RegistroRMA
	orden     []string
}

func NewRMARepository() RMARepository {
	return &libroRMA{porSerial: make(map[string]*model.RegistroRMA)}
}

func (l *libroRMA) Insertar(_ context.Context, r model.RegistroRMA) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.porSerial[r.Serial]; ok {
		return ErrRMADuplicado
	}
	l.porSerial[r.Serial] = &r
	l.orden = append(l.orden, r.Serial)
	return nil
}

func (l *libroRMA) Existe(_ context.Context, serial string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.porSerial[serial]
	return ok
}

func (l *libroRMA) BuscarPorSerial(_ context.Context, serial string) (model.RegistroRMA, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.porSerial[serial]
	if !ok {
		return model.RegistroRMA{}, false
	}
	return *r, true
}

func (l *libroRMA) Listar(_ context.Context) []model.RegistroRMA {
	l.mu.RLock()
	defer l.mu.RUnlock()
	resultado := make([]model.RegistroRMA, 0, len(l.orden))
	for _, serial := range l.orden {
		resultado = append(resultado, *l.porSerial[serial])
	}
	return resultado
}

func (l *libroRMA) Contar(_ context.Context) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.porSerial)
}
