package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/geocatalog-api/internal/domain"
	"github.com/jhoicas/geocatalog-api/internal/domain/entity"
	"github.com/jhoicas/geocatalog-api/internal/domain/repository"
)

func TestStore_RollbackDescartaEscrituras(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(r repository.Repositories) error {
		require.NoError(t, r.States.Create(ctx, &entity.State{Name: "jalisco"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = s.Run(ctx, func(r repository.Repositories) error {
		list, err := r.States.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_CommitPublicaEscrituras(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var id int64
	require.NoError(t, s.Run(ctx, func(r repository.Repositories) error {
		st := &entity.State{Name: "jalisco", CreatedAt: time.Now()}
		if err := r.States.Create(ctx, st); err != nil {
			return err
		}
		id = st.ID
		return nil
	}))

	require.NoError(t, s.Run(ctx, func(r repository.Repositories) error {
		got, err := r.States.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "jalisco", got.Name)
		return nil
	}))
}

func TestStore_ContextoCancelado(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Run(ctx, func(repository.Repositories) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestStore_RestriccionesReferenciales(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.Run(ctx, func(r repository.Repositories) error {
		return r.Municipalities.Create(ctx, &entity.Municipality{StateID: 1, Name: "Zapopan"})
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = s.Run(ctx, func(r repository.Repositories) error {
		st := &entity.State{Name: "jalisco"}
		if err := r.States.Create(ctx, st); err != nil {
			return err
		}
		m := &entity.Municipality{StateID: st.ID, Name: "Zapopan"}
		if err := r.Municipalities.Create(ctx, m); err != nil {
			return err
		}
		return r.Municipalities.Create(ctx, &entity.Municipality{StateID: st.ID, Name: "ZAPOPAN"})
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAddressRepo_GetByIDDevuelveCopia(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	interior := "B"

	require.NoError(t, s.Run(ctx, func(r repository.Repositories) error {
		st := &entity.State{Name: "jalisco"}
		require.NoError(t, r.States.Create(ctx, st))
		m := &entity.Municipality{StateID: st.ID, Name: "Zapopan"}
		require.NoError(t, r.Municipalities.Create(ctx, m))
		l := &entity.Locality{MunicipalityID: m.ID, Name: "centro"}
		require.NoError(t, r.Localities.Create(ctx, l))
		a := &entity.Address{Street: "Calle", ExteriorNumber: "1", PostalCode: "1", LocalityID: l.ID, InteriorNumber: &interior}
		require.NoError(t, r.Addresses.Create(ctx, a))

		got, err := r.Addresses.GetByID(ctx, a.ID)
		require.NoError(t, err)
		*got.InteriorNumber = "Z"

		again, err := r.Addresses.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "B", *again.InteriorNumber)
		return nil
	}))
	assert.Equal(t, "B", interior)
}
