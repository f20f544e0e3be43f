// migrate aplica o revierte las migraciones embebidas sobre la base configurada.
//
// Uso: go run ./cmd/migrate [up|down|version|steps N]
// Sin argumentos ejecuta "up".
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/geocatalog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/geocatalog-api/pkg/config"
	"github.com/jhoicas/geocatalog-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar migraciones")
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar migrador")
		}
	}()

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "steps":
		if len(os.Args) < 3 {
			log.Fatal().Msg("uso: migrate steps N")
		}
		var n int
		n, err = strconv.Atoi(os.Args[2])
		if err == nil {
			err = m.Steps(n)
		}
	case "version":
		var (
			version uint
			dirty   bool
		)
		version, dirty, err = m.Version()
		if err == nil {
			log.Info().Uint("version", version).Bool("dirty", dirty).Msg("versión actual")
		}
	default:
		log.Fatal().Str("cmd", cmd).Msg("comando desconocido (up|down|version|steps N)")
	}
	if err != nil {
		log.Error().Err(err).Str("cmd", cmd).Msg("migración fallida")
		os.Exit(1)
	}
}
