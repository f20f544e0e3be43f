//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/geocatalog-api/internal/application/catalog"
	"github.com/jhoicas/geocatalog-api/internal/application/customers"
	"github.com/jhoicas/geocatalog-api/internal/application/dto"
	"github.com/jhoicas/geocatalog-api/internal/domain"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
	"github.com/jhoicas/geocatalog-api/internal/infrastructure/postgres"
	"github.com/jhoicas/geocatalog-api/pkg/config"
	"github.com/jhoicas/geocatalog-api/pkg/logger"
)

// newTestRunner levanta PostgreSQL en un contenedor, aplica las migraciones y devuelve
// un TxRunner sobre una base vacía.
func newTestRunner(t *testing.T) *postgres.TxRunner {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("geocatalog_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "iniciar contenedor PostgreSQL")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	m, err := postgres.NewMigrator(pool, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
	require.NoError(t, m.Close())

	// Sin migraciones pendientes: no falla y deja la misma versión.
	require.NoError(t, postgres.MigrateUp(pool, logger.Nop()))

	runner, err := postgres.NewTxRunner(pool, "read committed")
	require.NoError(t, err)
	return runner
}

func TestIntegration_CatalogoYClientes(t *testing.T) {
	runner := newTestRunner(t)
	ctx := context.Background()
	projector := catalog.NewProjector()

	states := catalog.NewStateUseCase(runner)
	municipalities := catalog.NewMunicipalityUseCase(runner)
	localities := catalog.NewLocalityUseCase(runner)
	customerUC := customers.NewCustomerUseCase(runner, projector)

	s, err := states.Create(ctx, dto.CreateStateRequest{Name: "México"})
	require.NoError(t, err)
	assert.Equal(t, "mexico", s.Name)

	_, err = states.Create(ctx, dto.CreateStateRequest{Name: "MEXICO"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	m, err := municipalities.Create(ctx, dto.CreateMunicipalityRequest{Name: "Toluca", StateID: s.ID})
	require.NoError(t, err)
	_, err = municipalities.Create(ctx, dto.CreateMunicipalityRequest{Name: "TOLUCA", StateID: s.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)

	l, err := localities.Create(ctx, dto.CreateLocalityRequest{Name: "San Pablo Autopán", MunicipalityID: m.ID})
	require.NoError(t, err)
	assert.Equal(t, "san pablo autopan", l.Name)

	// Localidad inexistente: no se persiste ni el cliente ni la dirección
	req := dto.CreateCustomerRequest{
		Name: "Acme", FirstName: "Ana", LastName: "López", RFC: "LOAA800101AB1",
		Email: "ana@acme.mx", Phone: "7221234567", Status: true,
		Street: "Hidalgo", ExteriorNumber: "5", PostalCode: "50000", LocalityID: 9999,
	}
	_, err = customerUC.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	list, err := customerUC.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	req.LocalityID = l.ID
	c, err := customerUC.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, c.Address)
	assert.Equal(t, "mexico", c.Address.Locality.Municipality.State.Name)
	assert.Equal(t, "Toluca", c.Address.Locality.Municipality.Name)

	updated, err := customerUC.Update(ctx, c.ID, dto.UpdateCustomerRequest{
		Email:  ptr("ventas@acme.mx"),
		Street: ptr("Juárez"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ventas@acme.mx", updated.Email)
	assert.Equal(t, "Juárez", updated.Address.Street)

	// La localidad tiene una dirección: RESTRICT
	_, err = localities.Remove(ctx, l.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	removed, err := customerUC.Remove(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, removed.ID)

	_, err = customerUC.Get(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = localities.Remove(ctx, l.ID)
	require.NoError(t, err)
}

func TestIntegration_RollbackDelRunner(t *testing.T) {
	runner := newTestRunner(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := runner.Run(ctx, func(r repository.Repositories) error {
		require.NoError(t, r.States.Create(ctx, &entity.State{Name: "colima", CreatedAt: time.Now(), UpdatedAt: time.Now()}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = runner.Run(ctx, func(r repository.Repositories) error {
		found, err := r.States.FindByName(ctx, "COLIMA")
		require.NoError(t, err)
		assert.Nil(t, found, "la inserción se revierte con la transacción")
		return nil
	})
	require.NoError(t, err)
}

func TestIntegration_GetAncestry(t *testing.T) {
	runner := newTestRunner(t)
	ctx := context.Background()
	now := time.Now().UTC()

	err := runner.Run(ctx, func(r repository.Repositories) error {
		s := &entity.State{Name: "jalisco", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, r.States.Create(ctx, s))
		m := &entity.Municipality{StateID: s.ID, Name: "Zapopan", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, r.Municipalities.Create(ctx, m))
		l := &entity.Locality{MunicipalityID: m.ID, Name: "tesistan", CreatedAt: now, UpdatedAt: now}
		require.NoError(t, r.Localities.Create(ctx, l))

		anc, err := r.Localities.GetAncestry(ctx, l.ID)
		require.NoError(t, err)
		require.NotNil(t, anc)
		assert.Equal(t, l.ID, anc.Locality.ID)
		assert.Equal(t, m.ID, anc.Municipality.ID)
		assert.Equal(t, s.ID, anc.State.ID)
		assert.Equal(t, "jalisco", anc.State.Name)

		missing, err := r.Localities.GetAncestry(ctx, l.ID+100)
		require.NoError(t, err)
		assert.Nil(t, missing)

		// Municipio duplicado sin distinguir mayúsculas: índice único sobre lower(name)
		err = r.Municipalities.Create(ctx, &entity.Municipality{StateID: s.ID, Name: "ZAPOPAN", CreatedAt: now, UpdatedAt: now})
		assert.ErrorIs(t, err, domain.ErrConflict)
		return nil
	})
	// El error de unicidad aborta la transacción en PostgreSQL; el commit falla.
	assert.Error(t, err)
}

func TestIntegration_CreateConcurrenteDeLocalidad(t *testing.T) {
	runner := newTestRunner(t)
	ctx := context.Background()

	s, err := catalog.NewStateUseCase(runner).Create(ctx, dto.CreateStateRequest{Name: "Yucatán"})
	require.NoError(t, err)
	m, err := catalog.NewMunicipalityUseCase(runner).Create(ctx, dto.CreateMunicipalityRequest{Name: "Mérida", StateID: s.ID})
	require.NoError(t, err)
	localities := catalog.NewLocalityUseCase(runner)

	// ux_localities_municipality_name resuelve la carrera entre la búsqueda y el INSERT.
	const n = 4
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = localities.Create(ctx, dto.CreateLocalityRequest{Name: "Centro", MunicipalityID: m.ID})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflict)
	}
	assert.Equal(t, 1, ok)

	detail, err := catalog.NewMunicipalityUseCase(runner).Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Localities, 1)
}

func ptr[T any](v T) *T { return &v }
