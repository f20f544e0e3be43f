// seed_geo importa un catálogo Estado → Municipio → Localidad desde XML.
//
// Uso: go run ./cmd/seed_geo [ruta/catalogo.xml]
// Por defecto busca catalogo.xml en el directorio actual. Requiere STORE_DRIVER=postgres
// y aplica las mismas reglas de unicidad que la API; lo existente se reutiliza.
package main

import (
	"context"
	"os"

	"github.com/jhoicas/geocatalog-api/internal/application/catalog"
	"github.com/jhoicas/geocatalog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/geocatalog-api/internal/infrastructure/seed"
	"github.com/jhoicas/geocatalog-api/pkg/config"
	"github.com/jhoicas/geocatalog-api/pkg/logger"
)

func main() {
	xmlPath := "catalogo.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	seeds, err := seed.ReadCatalogFile(xmlPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", xmlPath).Msg("leer catálogo")
	}

	if cfg.Store.Driver != config.StoreDriverPostgres {
		log.Fatal().Str("store", cfg.Store.Driver).Msg("seed_geo requiere STORE_DRIVER=postgres")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.Store.MigrateOnStart {
		if err := postgres.MigrateUp(pool, log); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
	}

	txRunner, err := postgres.NewTxRunner(pool, cfg.DB.TxIsolation)
	if err != nil {
		log.Fatal().Err(err).Msg("nivel de aislamiento")
	}

	importer := catalog.NewImporter(
		txRunner,
		catalog.NewStateUseCase(txRunner),
		catalog.NewMunicipalityUseCase(txRunner),
		catalog.NewLocalityUseCase(txRunner),
	)
	res, err := importer.Import(ctx, seeds)
	ev := log.Info()
	if err != nil {
		ev = log.Error().Err(err)
	}
	ev.Str("path", xmlPath).
		Int("states_created", res.StatesCreated).
		Int("states_reused", res.StatesReused).
		Int("municipalities_created", res.MunicipalitiesCreated).
		Int("municipalities_reused", res.MunicipalitiesReused).
		Int("localities_created", res.LocalitiesCreated).
		Int("localities_reused", res.LocalitiesReused).
		Strs("skipped", res.Skipped).
		Msg("importación de catálogo")
	if err != nil {
		os.Exit(1)
	}
}
