package repositories

import (
	"context"

	"github.com/marchbank/coastal-ledger/internal/core/domain"
)

// AccountReader defines read operations over the account registry.
type AccountReader interface {
	// FindByNumber retrieves an account by its account number. Returns
	// apperrors.ErrNotFound when no occupied slot matches.
	FindByNumber(ctx context.Context, number int64) (*domain.Account, error)

	// List returns the occupied slots in slot order.
	List(ctx context.Context) ([]*domain.Account, error)
}

// AccountWriter defines write operations over the account registry.
type AccountWriter interface {
	// Save places an account into the first free slot. Returns
	// apperrors.ErrRegistryFull when every slot is occupied.
	Save(ctx context.Context, account *domain.Account) error

	// Remove clears every slot holding the given account number. Removing a
	// number that is not present is a no-op.
	Remove(ctx context.Context, number int64) error
}

// AccountRepository combines read and write access to the registry.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
