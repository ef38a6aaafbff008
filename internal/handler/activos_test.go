package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/config"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/dto"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/router"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/seed"
)

func nuevoServidorDePrueba() (*gin.Engine, router.Stores) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Port: 0, Env: "test", RateLimitPerMin: 10000, AlmacenDefault: "Bodega Central"}
	stores := router.Stores{
		Activos:     repository.NewActivoRepository(),
		RMAs:        repository.NewRMARepository(),
		Materiales:  repository.NewMaterialRepository(),
		Movimientos: repository.NewMovimientoRepository(),
	}
	r := router.New(cfg, stores, seed.Catalogo(cfg.AlmacenDefault), seed.Matriz())
	return r, stores
}

func hacerJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAsignarSerialInexistenteHTTP(t *testing.T) {
	r, _ := nuevoServidorDePrueba()

	w := hacerJSON(t, r, http.MethodPost, "/v1/activos/asignar", dto.AsignarActivoRequest{
		Serial:        "XYZ999111",
		TecnicoID:     "T001",
		TecnicoNombre: "Juan Pérez",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	var res dto.ResultadoOperacion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.False(t, res.Exito)
	assert.Equal(t, model.CodigoNoEncontrado, res.Codigo)
	assert.NotEmpty(t, res.Mensaje)
}

func TestRegistrarYAsignarHTTP(t *testing.T) {
	r, stores := nuevoServidorDePrueba()

	w := hacerJSON(t, r, http.MethodPost, "/v1/activos", dto.RegistrarSerialRequest{
		Serial:     "rtr112233445",
		TipoEquipo: "Router Wi-Fi 6",
		Tecnologia: "HFC",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = hacerJSON(t, r, http.MethodPost, "/v1/activos/asignar", dto.AsignarActivoRequest{
		Serial:        "RTR112233445",
		TecnicoID:     "T001",
		TecnicoNombre: "Juan Pérez",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res dto.ResultadoOperacion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Exito)
	assert.Equal(t, model.CodigoAsignado, res.Codigo)
	require.NotNil(t, res.Activo)
	assert.Equal(t, "Vehicle:T001", res.Activo.Ubicacion)

	// Second assignment of the same serial conflicts.
	w = hacerJSON(t, r, http.MethodPost, "/v1/activos/asignar", dto.AsignarActivoRequest{
		Serial:        "RTR112233445",
		TecnicoID:     "T002",
		TecnicoNombre: "María Gómez",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	lista := stores.Activos.Listar(context.Background())
	require.Len(t, lista, 1)
	assert.Equal(t, "T001", lista[0].TecnicoID)
}

func TestValidacionCamposFaltantesHTTP(t *testing.T) {
	r, _ := nuevoServidorDePrueba()

	w := hacerJSON(t, r, http.MethodPost, "/v1/activos/asignar", map[string]string{
		"serial": "RTR112233445",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRegistrarRMAHTTP(t *testing.T) {
	r, stores := nuevoServidorDePrueba()

	w := hacerJSON(t, r, http.MethodPost, "/v1/activos", dto.RegistrarSerialRequest{
		Serial:     "DEC987654321",
		TipoEquipo: "Decodificador 4K",
		Tecnologia: "HFC",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = hacerJSON(t, r, http.MethodPost, "/v1/rma", dto.RegistrarRMARequest{
		Serial:        "DEC987654321",
		Causal:        "Fallo de Encendido",
		TecnicoID:     "T001",
		TecnicoNombre: "Juan Pérez",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var res dto.ResultadoOperacion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Exito)
	require.NotNil(t, res.RMA)
	assert.Equal(t, "PENDIENTE_REVISION", res.RMA.Estado)

	assert.Equal(t, 0, stores.Activos.Contar(context.Background()))
	assert.Equal(t, 1, stores.RMAs.Contar(context.Background()))

	// Duplicate RMA conflicts.
	w = hacerJSON(t, r, http.MethodPost, "/v1/rma", dto.RegistrarRMARequest{
		Serial:        "DEC987654321",
		Causal:        "Fallo de Encendido",
		TecnicoID:     "T001",
		TecnicoNombre: "Juan Pérez",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReferenciasYHealthHTTP(t *testing.T) {
	r, _ := nuevoServidorDePrueba()

	w := hacerJSON(t, r, http.MethodGet, "/v1/referencias/tecnicos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tecnicos []dto.TecnicoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tecnicos))
	assert.NotEmpty(t, tecnicos)

	w = hacerJSON(t, r, http.MethodGet, "/v1/compatibilidad/HFC", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = hacerJSON(t, r, http.MethodGet, "/v1/compatibilidad/5G", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = hacerJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
