// Package registry provides the in-memory, fixed-capacity account store
// backing the bank. Slots live for the process lifetime; there is no
// persistence behind them.
package registry

import (
	"context"
	"sync"

	"github.com/marchbank/coastal-ledger/internal/apperrors"
	"github.com/marchbank/coastal-ledger/internal/core/domain"
	portsrepo "github.com/marchbank/coastal-ledger/internal/core/ports/repositories"
)

// DefaultCapacity is the number of account slots a bank holds.
const DefaultCapacity = 100

// Registry is a fixed-size ordered sequence of account slots, each empty or
// holding one account. Save does not deduplicate: inserting the same account
// twice occupies two slots. Uniqueness of account numbers is the service
// layer's responsibility; Remove clears every slot matching the number, which
// keeps a duplicated insertion from leaving stale slots behind.
type Registry struct {
	mu    sync.RWMutex
	slots []*domain.Account
}

var _ portsrepo.AccountRepository = (*Registry)(nil)

// New creates a registry with the given number of slots. A non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{slots: make([]*domain.Account, capacity)}
}

// Save places the account into the first empty slot.
func (r *Registry) Save(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.slots {
		if r.slots[i] == nil {
			r.slots[i] = account
			return nil
		}
	}
	return apperrors.ErrRegistryFull
}

// Remove clears every slot holding the given account number.
func (r *Registry) Remove(ctx context.Context, number int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.slots {
		if r.slots[i] != nil && r.slots[i].Number == number {
			r.slots[i] = nil
		}
	}
	return nil
}

// FindByNumber scans the slots for the account number.
func (r *Registry) FindByNumber(ctx context.Context, number int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.slots {
		if account != nil && account.Number == number {
			return account, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// List returns the occupied slots in slot order.
func (r *Registry) List(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	accounts := make([]*domain.Account, 0, len(r.slots))
	for _, account := range r.slots {
		if account != nil {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

// Len returns the number of occupied slots.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, account := range r.slots {
		if account != nil {
			n++
		}
	}
	return n
}
