package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"

	"github.com/chars222/lista-compras/internal/config"
	"github.com/chars222/lista-compras/internal/handler"
	"github.com/chars222/lista-compras/internal/infra"
	"github.com/chars222/lista-compras/internal/metrics"
	"github.com/chars222/lista-compras/internal/middleware"
	"github.com/chars222/lista-compras/internal/repository"
	"github.com/chars222/lista-compras/internal/service"
	"github.com/chars222/lista-compras/internal/tabular"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← tabular.Store
func New(cfg *config.Config, store tabular.Store, mailer *infra.Mailer) *gin.Engine {
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
	r.Use(middleware.RateLimiter(200, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	listaRepo := repository.NewListaRepository(store)

	// ── Services ─────────────────────────────────────────────────────────────
	rotacionSvc := service.NewRotacionService(listaRepo, cfg.MaxListas)
	sesionSvc := service.NewSesionService(listaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	listasH := handler.NewListasHandler(rotacionSvc, sesionSvc, mailer)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(store, cfg.Backend))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/catalogo", handler.Catalogo)

		listas := v1.Group("/listas")
		{
			listas.GET("", listasH.Listar)
			listas.POST("", listasH.Crear)
			listas.GET("/:id", listasH.Obtener)
			listas.DELETE("/:id", listasH.Eliminar)

			listas.GET("/:id/totales", listasH.Totales)
			listas.GET("/:id/pdf", listasH.DescargarPDF)
			listas.POST("/:id/enviar", listasH.Enviar)

			plan := listas.Group("/:id/planificacion")
			{
				plan.POST("/items", listasH.AgregarItem)
				plan.PATCH("/items/:nombre", listasH.EditarItem)
				plan.DELETE("/items/:nombre", listasH.QuitarItem)
			}

			compra := listas.Group("/:id/compra")
			{
				compra.POST("/items/:nombre/marcar", listasH.MarcarItem)
				compra.POST("/items/:nombre/desmarcar", listasH.DesmarcarItem)
			}
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
