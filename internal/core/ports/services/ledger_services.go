package services

import (
	"context"

	"github.com/marchbank/coastal-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines the read-only ledger operations. Both return value
// snapshots, never live registry state.
type LedgerReader interface {
	// AccountByCredentials resolves and authenticates an account from its
	// number token and PIN.
	AccountByCredentials(ctx context.Context, numberToken, pin string) (domain.Account, error)

	// ListAccounts returns every open account, for administrative display.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// LedgerWriter defines every account-mutating ledger operation. All
// account-scoped operations follow the same gate: identify by number token,
// resolve in the registry, authenticate by PIN, then act.
type LedgerWriter interface {
	// OpenAccount registers a new account with balance zero. A zero number
	// requests one from the credential generator; an explicit number must not
	// collide with an open account.
	OpenAccount(ctx context.Context, firstName, lastName, ssn string, number int64) (domain.Account, error)

	// UpdateOwner changes the owner names and SSN on an authenticated account.
	UpdateOwner(ctx context.Context, numberToken, pin, firstName, lastName, ssn string) (domain.Account, error)

	// ChangePIN sets a new 4-digit PIN, confirmed by exact repetition.
	ChangePIN(ctx context.Context, numberToken, pin, newPIN, confirmPIN string) error

	// Deposit adds cents to an authenticated account and returns the new balance.
	Deposit(ctx context.Context, numberToken, pin string, cents int64) (int64, error)

	// Withdraw removes cents from an authenticated account and returns the new balance.
	Withdraw(ctx context.Context, numberToken, pin string, cents int64) (int64, error)

	// ATMWithdraw withdraws a whole-dollar amount constrained to multiples of
	// five in [5, 1000], charges the flat fee, and reports the bill breakdown.
	ATMWithdraw(ctx context.Context, numberToken, pin string, dollars int64) (*domain.ATMReceipt, error)

	// Transfer moves cents from an authenticated source account to a
	// destination account resolved by number. The deposit is never attempted
	// when the withdrawal fails.
	Transfer(ctx context.Context, fromToken, pin, toToken string, cents int64) (*domain.TransferReceipt, error)

	// DepositCoins parses a coin string and deposits the valid sum when it is
	// strictly positive, reporting every rejected symbol.
	DepositCoins(ctx context.Context, numberToken, pin, coins string) (*domain.CoinReceipt, error)

	// CloseAccount removes an authenticated account from the registry.
	CloseAccount(ctx context.Context, numberToken, pin string) error

	// AccrueInterest deposits one month of interest at the given annual rate
	// into every open account. Administrative: no PIN gate.
	AccrueInterest(ctx context.Context, annualRatePercent decimal.Decimal) ([]domain.InterestAccrual, error)
}

// LedgerSvcFacade combines all ledger operations. Handlers depend on this
// facade rather than on the concrete service.
type LedgerSvcFacade interface {
	LedgerReader
	LedgerWriter
}
