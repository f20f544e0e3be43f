package customers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/geocatalog-api/internal/application/catalog"
	"github.com/jhoicas/geocatalog-api/internal/application/customers"
	"github.com/jhoicas/geocatalog-api/internal/application/dto"
	"github.com/jhoicas/geocatalog-api/internal/domain"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
	"github.com/jhoicas/geocatalog-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store      *memory.Store
	customers  *customers.CustomerUseCase
	addresses  *catalog.AddressUseCase
	localityID int64
	otherLocID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	projector := catalog.NewProjector()

	s, err := catalog.NewStateUseCase(store).Create(ctx, dto.CreateStateRequest{Name: "Jalisco"})
	require.NoError(t, err)
	m, err := catalog.NewMunicipalityUseCase(store).Create(ctx, dto.CreateMunicipalityRequest{Name: "Zapopan", StateID: s.ID})
	require.NoError(t, err)
	localities := catalog.NewLocalityUseCase(store)
	l1, err := localities.Create(ctx, dto.CreateLocalityRequest{Name: "Tesistán", MunicipalityID: m.ID})
	require.NoError(t, err)
	l2, err := localities.Create(ctx, dto.CreateLocalityRequest{Name: "Nextipac", MunicipalityID: m.ID})
	require.NoError(t, err)

	return &fixture{
		store:      store,
		customers:  customers.NewCustomerUseCase(store, projector),
		addresses:  catalog.NewAddressUseCase(store, projector),
		localityID: l1.ID,
		otherLocID: l2.ID,
	}
}

func createRequest(localityID int64) dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Name:           "Acme",
		FirstName:      "Ana",
		LastName:       "López",
		RFC:            "LOAA800101AB1",
		Email:          "ana@acme.mx",
		Phone:          "3312345678",
		Status:         true,
		Street:         "Av. Vallarta",
		ExteriorNumber: "100",
		PostalCode:     "45010",
		LocalityID:     localityID,
	}
}

func (f *fixture) counts(t *testing.T) (customersN, addressesN int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.store.Run(ctx, func(r repository.Repositories) error {
		cs, err := r.Customers.List(ctx)
		if err != nil {
			return err
		}
		as, err := r.Addresses.List(ctx)
		if err != nil {
			return err
		}
		customersN, addressesN = len(cs), len(as)
		return nil
	}))
	return customersN, addressesN
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Create / Get / List
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ClienteConDireccionProyectada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	view, err := f.customers.Create(ctx, createRequest(f.localityID))
	require.NoError(t, err)
	require.NotNil(t, view.Address)
	require.NotNil(t, view.Address.CustomerID)
	assert.Equal(t, view.ID, *view.Address.CustomerID)
	assert.Equal(t, "tesistan", view.Address.Locality.Name)
	assert.Equal(t, "Zapopan", view.Address.Locality.Municipality.Name)
	assert.Equal(t, "jalisco", view.Address.Locality.Municipality.State.Name)

	got, err := f.customers.Get(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.Address.ID, got.Address.ID)

	list, err := f.customers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Name)
}

func TestCreate_LocalidadInexistenteNoPersisteNada(t *testing.T) {
	f := newFixture(t)

	_, err := f.customers.Create(context.Background(), createRequest(9999))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	c, a := f.counts(t)
	assert.Zero(t, c)
	assert.Zero(t, a)
}

func TestGet_ClienteInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.customers.Get(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SoloCamposDeCliente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.customers.Create(ctx, createRequest(f.localityID))
	require.NoError(t, err)

	out, err := f.customers.Update(ctx, created.ID, dto.UpdateCustomerRequest{Phone: ptr("3300000000"), Status: ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "3300000000", out.Phone)
	assert.False(t, out.Status)
	assert.Equal(t, created.Address.Street, out.Address.Street)
	assert.Equal(t, created.Address.UpdatedAt, out.Address.UpdatedAt, "la dirección no se toca")
}

func TestUpdate_SoloCamposDeDireccion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.customers.Create(ctx, createRequest(f.localityID))
	require.NoError(t, err)

	out, err := f.customers.Update(ctx, created.ID, dto.UpdateCustomerRequest{
		Street:     ptr("Av. Patria"),
		LocalityID: &f.otherLocID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Av. Patria", out.Address.Street)
	assert.Equal(t, "nextipac", out.Address.Locality.Name)
	assert.Equal(t, created.Name, out.Name)
	assert.Equal(t, created.UpdatedAt, out.UpdatedAt, "el cliente no se toca")
}

func TestUpdate_DireccionAnidadaYPrioridadDeLaRaiz(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.customers.Create(ctx, createRequest(f.localityID))
	require.NoError(t, err)

	out, err := f.customers.Update(ctx, created.ID, dto.UpdateCustomerRequest{
		PostalCode: ptr("45000"),
		Address: &dto.UpdateAddressRequest{
			PostalCode:     ptr("99999"),
			InteriorNumber: ptr("4B"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "45000", out.Address.PostalCode)
	require.NotNil(t, out.Address.InteriorNumber)
	assert.Equal(t, "4B", *out.Address.InteriorNumber)
}

func TestUpdate_LocalidadNuevaInexistenteRevierteTodo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.customers.Create(ctx, createRequest(f.localityID))
	require.NoError(t, err)

	_, err = f.customers.Update(ctx, created.ID, dto.UpdateCustomerRequest{
		Name:       ptr("Otro nombre"),
		LocalityID: ptr(int64(777)),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.customers.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name, "el cambio del cliente se revierte junto con el de la dirección")
}

func TestUpdate_ClienteInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.customers.Update(context.Background(), 404, dto.UpdateCustomerRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_ClienteSinDireccion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var id int64
	require.NoError(t, f.store.Run(ctx, func(r repository.Repositories) error {
		c := &entity.Customer{Name: "Sin dirección", RFC: "XAXX010101000"}
		if err := r.Customers.Create(ctx, c); err != nil {
			return err
		}
		id = c.ID
		return nil
	}))

	_, err := f.customers.Update(ctx, id, dto.UpdateCustomerRequest{Phone: ptr("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "dirección del cliente")

	got, err := f.customers.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Address)
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove
// ──────────────────────────────────────────────────────────────────────────────

func TestRemove_EliminaClienteYDireccion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.customers.Create(ctx, createRequest(f.localityID))
	require.NoError(t, err)

	removed, err := f.customers.Remove(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)
	assert.Equal(t, "Acme", removed.Name)

	_, err = f.customers.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.addresses.Get(ctx, created.Address.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	c, a := f.counts(t)
	assert.Zero(t, c)
	assert.Zero(t, a)
}

func TestRemove_ClienteInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.customers.Remove(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
