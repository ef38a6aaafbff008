package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/config"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/handler"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/middleware"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/model"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/repository"
	"github.com/luiscastroconsultoria-stack/Maestro-de-Inventarios/internal/service"
)

// Stores groups the process-wide in-memory state the router wires into the
// services. Each store is created once in the composition root and owned by
// its service layer from then on.
type Stores struct {
	Activos     repository.ActivoRepository
	RMAs        repository.RMARepository
	Materiales  repository.MaterialRepository
	Movimientos repository.MovimientoRepository
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository (in-memory stores)
func New(cfg *config.Config, stores Stores, catalogo *model.CatalogoReferencia, matriz model.MatrizCompatibilidad) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	asignacionSvc := service.NewAsignacionService(stores.Activos, stores.Movimientos, catalogo)
	ingresoSvc := service.NewIngresoService(stores.Activos, stores.Movimientos, catalogo)
	rmaSvc := service.NewRMAService(stores.Activos, stores.RMAs, stores.Movimientos, catalogo)
	materialSvc := service.NewMaterialService(stores.Materiales, stores.Movimientos, catalogo)
	compatibilidadSvc := service.NewCompatibilidadService(matriz)

	// ── Handlers ─────────────────────────────────────────────────────────────
	activosH := handler.NewActivosHandler(asignacionSvc, ingresoSvc, stores.Activos)
	rmaH := handler.NewRMAHandler(rmaSvc, stores.RMAs)
	materialesH := handler.NewMaterialesHandler(materialSvc)
	referenciasH := handler.NewReferenciasHandler(catalogo)
	compatibilidadH := handler.NewCompatibilidadHandler(compatibilidadSvc)
	movimientosH := handler.NewMovimientosHandler(stores.Movimientos)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(stores.Activos, stores.RMAs, stores.Materiales))

	v1 := r.Group("/v1")
	{
		activos := v1.Group("/activos")
		{
			activos.POST("", activosH.Registrar)
			activos.POST("/asignar", activosH.Asignar)
			activos.GET("", activosH.Listar)
		}

		rma := v1.Group("/rma")
		{
			rma.POST("", rmaH.Registrar)
			rma.GET("", rmaH.Listar)
		}

		materiales := v1.Group("/materiales")
		{
			materiales.POST("", materialesH.Crear)
			materiales.GET("", materialesH.Listar)
			materiales.GET("/alertas", materialesH.Alertas)
			materiales.GET("/:id", materialesH.ObtenerPorID)
			materiales.PUT("/:id", materialesH.Actualizar)
			materiales.PATCH("/:id/ajuste", materialesH.AjustarCantidad)
		}

		referencias := v1.Group("/referencias")
		{
			referencias.GET("/tecnicos", referenciasH.Tecnicos)
			referencias.GET("/causales", referenciasH.Causales)
			referencias.GET("/tipos-equipo", referenciasH.TiposEquipo)
			referencias.GET("/tecnologias", referenciasH.Tecnologias)
			referencias.GET("/almacenes", referenciasH.Almacenes)
		}

		v1.GET("/compatibilidad", compatibilidadH.Listar)
		v1.GET("/compatibilidad/:tecnologia", compatibilidadH.PorTecnologia)

		v1.GET("/movimientos", movimientosH.Listar)
	}

	return r
}
