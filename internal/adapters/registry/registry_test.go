package registry_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/marchbank/coastal-ledger/internal/adapters/registry"
	"github.com/marchbank/coastal-ledger/internal/apperrors"
	"github.com/marchbank/coastal-ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndFind(t *testing.T) {
	ctx := context.Background()
	r := registry.New(10)

	acct := &domain.Account{Number: 10000001, FirstName: "John", LastName: "Doe"}
	require.NoError(t, r.Save(ctx, acct))

	found, err := r.FindByNumber(ctx, 10000001)
	require.NoError(t, err)
	assert.Same(t, acct, found)

	_, err = r.FindByNumber(ctx, 87654321)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = r.FindByNumber(ctx, -1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCapacity(t *testing.T) {
	ctx := context.Background()
	r := registry.New(registry.DefaultCapacity)

	for i := 0; i < registry.DefaultCapacity; i++ {
		err := r.Save(ctx, &domain.Account{Number: int64(10000000 + i)})
		require.NoError(t, err, "slot %d", i)
	}
	assert.Equal(t, registry.DefaultCapacity, r.Len())

	err := r.Save(ctx, &domain.Account{Number: 99999999})
	assert.ErrorIs(t, err, apperrors.ErrRegistryFull)
	assert.Equal(t, registry.DefaultCapacity, r.Len(), "failed add must not change occupancy")
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	r := registry.New(10)

	acct := &domain.Account{Number: 10000001}
	require.NoError(t, r.Save(ctx, acct))
	require.NoError(t, r.Remove(ctx, acct.Number))

	_, err := r.FindByNumber(ctx, acct.Number)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// removing a non-member is a no-op
	require.NoError(t, r.Remove(ctx, acct.Number))
	assert.Equal(t, 0, r.Len())
}

func TestDuplicateSaveOccupiesTwoSlots(t *testing.T) {
	ctx := context.Background()
	r := registry.New(10)

	acct := &domain.Account{Number: 10000001}
	require.NoError(t, r.Save(ctx, acct))
	require.NoError(t, r.Save(ctx, acct))
	assert.Equal(t, 2, r.Len())

	// removal by number clears both slots
	require.NoError(t, r.Remove(ctx, acct.Number))
	assert.Equal(t, 0, r.Len())
}

func TestListPreservesSlotOrder(t *testing.T) {
	ctx := context.Background()
	r := registry.New(10)

	var want []int64
	for i := 0; i < 5; i++ {
		n := int64(20000000 + i)
		require.NoError(t, r.Save(ctx, &domain.Account{Number: n}))
		want = append(want, n)
	}

	accounts, err := r.List(ctx)
	require.NoError(t, err)
	var got []int64
	for _, a := range accounts {
		got = append(got, a.Number)
	}
	assert.Equal(t, want, got, fmt.Sprintf("expected slot order %v", want))
}
