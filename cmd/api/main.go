package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/jhoicas/geocatalog-api/internal/application/catalog"
	"github.com/jhoicas/geocatalog-api/internal/application/customers"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
	"github.com/jhoicas/geocatalog-api/internal/infrastructure/memory"
	"github.com/jhoicas/geocatalog-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/geocatalog-api/internal/interfaces/http"
	"github.com/jhoicas/geocatalog-api/pkg/config"
	"github.com/jhoicas/geocatalog-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	txRunner, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	projector := catalog.NewProjector()
	stateUC := catalog.NewStateUseCase(txRunner)
	municipalityUC := catalog.NewMunicipalityUseCase(txRunner)
	localityUC := catalog.NewLocalityUseCase(txRunner)
	addressUC := catalog.NewAddressUseCase(txRunner, projector)
	customerUC := customers.NewCustomerUseCase(txRunner, projector)

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI: http://localhost:<port>/docs (solo si existe el JSON generado)
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Geocatalog API",
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		StateUC:        stateUC,
		MunicipalityUC: municipalityUC,
		LocalityUC:     localityUC,
		AddressUC:      addressUC,
		CustomerUC:     customerUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore devuelve el TxRunner según STORE_DRIVER y la función que libera sus recursos.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.TxRunner, func()) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return memory.NewStore(), func() {}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}

	if cfg.Store.MigrateOnStart {
		if err := postgres.MigrateUp(pool, log); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
	}

	txRunner, err := postgres.NewTxRunner(pool, cfg.DB.TxIsolation)
	if err != nil {
		log.Fatal().Err(err).Msg("nivel de aislamiento")
	}
	return txRunner, pool.Close
}
