package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
)

func TestCatalogoAlmacenDefaultPrimero(t *testing.T) {
	catalogo := Catalogo("Bodega Sur")
	require.NotEmpty(t, catalogo.Almacenes)
	assert.Equal(t, "Bodega Sur", catalogo.Almacenes[0])
	assert.Equal(t, "Bodega Sur", catalogo.AlmacenPorDefecto())
}

func TestDemoInventarioDeterminista(t *testing.T) {
	activos := repository.NewActivoRepository()
	materiales := repository.NewMaterialRepository()

	err := DemoInventario(context.Background(), activos, materiales, "Bodega Central")
	require.NoError(t, err)

	assert.Equal(t, 5, activos.Contar(context.Background()))
	assert.Equal(t, 3, materiales.Contar(context.Background()))

	// The seed includes an installed unit the console can only observe,
	// never produce.
	var instalados int
	for _, a := range activos.Listar(context.Background()) {
		if a.Estado == model.EstadoInstaladoCliente {
			instalados++
		}
	}
	assert.Equal(t, 1, instalados)

	// Seeding twice collides on serials.
	err = DemoInventario(context.Background(), activos, materiales, "Bodega Central")
	assert.ErrorIs(t, err, repository.ErrSerialDuplicado)
}
