package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/marchbank/coastal-ledger/internal/apperrors"
	"github.com/marchbank/coastal-ledger/internal/core/domain"
	portsrepo "github.com/marchbank/coastal-ledger/internal/core/ports/repositories"
	portssvc "github.com/marchbank/coastal-ledger/internal/core/ports/services"
	"github.com/marchbank/coastal-ledger/internal/middleware"
	"github.com/marchbank/coastal-ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

const (
	minAccountNumber = 10000000
	maxAccountNumber = 99999999

	atmMinDollars      = 5
	atmMaxDollars      = 1000
	atmDollarsMultiple = 5
)

// LedgerService orchestrates every user-facing operation over the account
// registry. Each account-scoped operation runs the same gate before acting:
// identify by number token, resolve in the registry, authenticate by PIN.
//
// A single mutex serializes the act phase of every operation, so account
// mutations never interleave and a transfer is atomic with respect to any
// other operation. Operations that report account state return value
// snapshots taken while the mutex is held; live registry pointers never leave
// the service.
type LedgerService struct {
	mu   sync.Mutex
	repo portsrepo.AccountRepository
	gen  portssvc.CredentialGenerator
}

var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// NewLedgerService creates a LedgerService over the given registry and
// credential generator.
func NewLedgerService(repo portsrepo.AccountRepository, gen portssvc.CredentialGenerator) *LedgerService {
	return &LedgerService{repo: repo, gen: gen}
}

// parseAccountNumber validates that the token is purely numeric and returns
// its value.
func parseAccountNumber(token string) (int64, error) {
	if !isDigits(token) {
		return 0, fmt.Errorf("%w: account number must be numeric", apperrors.ErrMalformedInput)
	}
	number, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: account number must be numeric", apperrors.ErrMalformedInput)
	}
	return number, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// authenticate resolves the account for the number token and checks the PIN.
// Callers must hold s.mu.
func (s *LedgerService) authenticate(ctx context.Context, numberToken, pin string) (*domain.Account, error) {
	number, err := parseAccountNumber(numberToken)
	if err != nil {
		return nil, err
	}
	account, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if !account.ValidatePIN(pin) {
		return nil, apperrors.ErrInvalidPIN
	}
	return account, nil
}

// OpenAccount registers a new account with balance zero. A zero number asks
// the credential generator for one, retrying on the unlikely collision with
// an open account; an explicit number must be 8 digits and unused.
func (s *LedgerService) OpenAccount(ctx context.Context, firstName, lastName, ssn string, number int64) (domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(ssn) != 9 || !isDigits(ssn) {
		return domain.Account{}, fmt.Errorf("%w: social security number must be 9 digits", apperrors.ErrMalformedInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if number != 0 {
		if number < minAccountNumber || number > maxAccountNumber {
			return domain.Account{}, fmt.Errorf("%w: account number must be 8 digits", apperrors.ErrMalformedInput)
		}
		if _, err := s.repo.FindByNumber(ctx, number); err == nil {
			return domain.Account{}, fmt.Errorf("%w: %d", apperrors.ErrDuplicate, number)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return domain.Account{}, err
		}
	} else {
		for {
			candidate := s.gen.AccountNumber()
			if _, err := s.repo.FindByNumber(ctx, candidate); errors.Is(err, apperrors.ErrNotFound) {
				number = candidate
				break
			} else if err != nil {
				return domain.Account{}, err
			}
		}
	}

	account := &domain.Account{
		Number:    number,
		FirstName: firstName,
		LastName:  lastName,
		SSN:       ssn,
		PIN:       s.gen.PIN(),
	}

	if err := s.repo.Save(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrRegistryFull) {
			logger.Error("Failed to save account in registry", slog.String("error", err.Error()))
		}
		return domain.Account{}, err
	}

	logger.Info("Account opened", slog.Int64("account_number", account.Number))
	return *account, nil
}

// AccountByCredentials resolves and authenticates an account for display. The
// returned snapshot is taken under the service mutex.
func (s *LedgerService) AccountByCredentials(ctx context.Context, numberToken, pin string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.authenticate(ctx, numberToken, pin)
	if err != nil {
		return domain.Account{}, err
	}
	return *account, nil
}

// ListAccounts returns a snapshot of every open account in slot order.
func (s *LedgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := make([]domain.Account, len(accounts))
	for i, account := range accounts {
		snapshot[i] = *account
	}
	return snapshot, nil
}

// UpdateOwner changes the owner names and SSN on an authenticated account.
// Empty fields are left unchanged; a non-empty SSN must be 9 digits.
func (s *LedgerService) UpdateOwner(ctx context.Context, numberToken, pin, firstName, lastName, ssn string) (domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if ssn != "" && (len(ssn) != 9 || !isDigits(ssn)) {
		return domain.Account{}, fmt.Errorf("%w: social security number must be 9 digits", apperrors.ErrMalformedInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.authenticate(ctx, numberToken, pin)
	if err != nil {
		return domain.Account{}, err
	}
	if firstName != "" {
		account.FirstName = firstName
	}
	if lastName != "" {
		account.LastName = lastName
	}
	if ssn != "" {
		account.SSN = ssn
	}

	logger.Info("Account owner updated", slog.Int64("account_number", account.Number))
	return *account, nil
}

// ChangePIN sets a new 4-digit PIN after the current PIN authenticates and
// the new PIN is confirmed by exact repetition. Mismatch or a malformed new
// PIN aborts without mutation.
func (s *LedgerService) ChangePIN(ctx context.Context, numberToken, pin, newPIN, confirmPIN string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(newPIN) != 4 || !isDigits(newPIN) {
		return fmt.Errorf("%w: PIN must be 4 digits", apperrors.ErrMalformedInput)
	}
	if newPIN != confirmPIN {
		return fmt.Errorf("%w: PINs do not match", apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.authenticate(ctx, numberToken, pin)
	if err != nil {
		return err
	}
	account.PIN = newPIN

	logger.Info("PIN updated", slog.Int64("account_number", account.Number))
	return nil
}

// Deposit adds cents to an authenticated account.
func (s *LedgerService) Deposit(ctx context.Context, numberToken, pin string, cents int64) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.authenticate(ctx, numberToken, pin)
	if err != nil {
		return 0, err
	}
	balance, err := account.Deposit(cents)
	if err != nil {
		return balance, err
	}

	logger.Info("Deposit applied", slog.Int64("account_number", account.Number), slog.Int64("amount_cents", cents))
	return balance, nil
}

// Withdraw removes cents from an authenticated account.
func (s *LedgerService) Withdraw(ctx context.Context, numberToken, pin string, cents int64) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.authenticate(ctx, numberToken, pin)
	if err != nil {
		return 0, err
	}
	balance, err := account.Withdraw(cents)
	if err != nil {
		return balance, err
	}

	logger.Info("Withdrawal applied", slog.Int64("account_number", account.Number), slog.Int64("amount_cents", cents))
	return balance, nil
}

// ATMWithdraw withdraws a whole-dollar amount through the ATM channel. The
// requested amount must be a multiple of $5 between $5 and $1000 before the
// fee is considered; the bill breakdown covers the requested amount only.
func (s *LedgerService) ATMWithdraw(ctx context.Context, numberToken, pin string, dollars int64) (*domain.ATMReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if dollars < atmMinDollars || dollars > atmMaxDollars || dollars%atmDollarsMultiple != 0 {
		return nil, fmt.Errorf("%w: ATM amount must be a multiple of $5 between $5 and $1000", apperrors.ErrInvalidAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.authenticate(ctx, numberToken, pin)
	if err != nil {
		return nil, err
	}

	twenties, tens, fives := money.BillBreakdown(dollars)
	balance, err := account.ATMWithdraw(dollars * 100)
	if err != nil {
		return nil, err
	}

	logger.Info("ATM withdrawal applied", slog.Int64("account_number", account.Number), slog.Int64("amount_dollars", dollars))
	return &domain.ATMReceipt{
		AccountNumber: account.Number,
		Twenties:      twenties,
		Tens:          tens,
		Fives:         fives,
		Fee:           domain.ATMWithdrawalFee,
		NewBalance:    balance,
	}, nil
}

// Transfer moves cents from an authenticated source account to a destination
// account resolved by number. The withdrawal runs first; if it fails the
// transfer aborts with no deposit attempted, so a failed transfer leaves the
// destination untouched.
func (s *LedgerService) Transfer(ctx context.Context, fromToken, pin, toToken string, cents int64) (*domain.TransferReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.authenticate(ctx, fromToken, pin)
	if err != nil {
		return nil, err
	}

	toNumber, err := parseAccountNumber(toToken)
	if err != nil {
		return nil, err
	}
	to, err := s.repo.FindByNumber(ctx, toNumber)
	if err != nil {
		return nil, err
	}

	fromBalance, err := from.Withdraw(cents)
	if err != nil {
		return nil, err
	}
	toBalance, err := to.Deposit(cents)
	if err != nil {
		// Unreachable: Withdraw already rejected non-positive amounts.
		return nil, err
	}

	logger.Info("Transfer completed",
		slog.Int64("from_account", from.Number),
		slog.Int64("to_account", to.Number),
		slog.Int64("amount_cents", cents),
	)
	return &domain.TransferReceipt{
		FromNumber:  from.Number,
		ToNumber:    to.Number,
		Amount:      cents,
		FromBalance: fromBalance,
		ToBalance:   toBalance,
	}, nil
}

// DepositCoins parses the coin string and deposits the valid sum when it is
// strictly positive. Invalid symbols are reported on the receipt, never as an
// error; a string with no valid coins deposits nothing.
func (s *LedgerService) DepositCoins(ctx context.Context, numberToken, pin, coins string) (*domain.CoinReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.authenticate(ctx, numberToken, pin)
	if err != nil {
		return nil, err
	}

	total, invalid := money.ParseCoins(coins)
	receipt := &domain.CoinReceipt{
		AccountNumber: account.Number,
		InvalidCoins:  invalid,
		NewBalance:    account.Balance,
	}
	if total > 0 {
		balance, err := account.Deposit(total)
		if err != nil {
			return nil, err
		}
		receipt.Deposited = total
		receipt.NewBalance = balance
		logger.Info("Coin deposit applied", slog.Int64("account_number", account.Number), slog.Int64("amount_cents", total))
	}
	return receipt, nil
}

// CloseAccount removes an authenticated account from the registry.
func (s *LedgerService) CloseAccount(ctx context.Context, numberToken, pin string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.authenticate(ctx, numberToken, pin)
	if err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, account.Number); err != nil {
		return err
	}

	logger.Info("Account closed", slog.Int64("account_number", account.Number))
	return nil
}

// AccrueInterest deposits one month of interest at the given annual rate into
// every open account. The interest is truncated toward zero, so small
// balances may accrue nothing; a zero interest is skipped without touching
// the account. Administrative operation, no PIN gate.
func (s *LedgerService) AccrueInterest(ctx context.Context, annualRatePercent decimal.Decimal) ([]domain.InterestAccrual, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !annualRatePercent.IsPositive() {
		return nil, fmt.Errorf("%w: interest rate must be positive", apperrors.ErrInvalidAmount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	// monthly interest = balance * rate / 12 / 100, truncated toward zero;
	// multiply before dividing to keep decimal precision out of the result.
	divisor := decimal.NewFromInt(12 * 100)
	accruals := make([]domain.InterestAccrual, 0, len(accounts))
	for _, account := range accounts {
		interest := decimal.NewFromInt(account.Balance).Mul(annualRatePercent).Div(divisor).IntPart()
		accrual := domain.InterestAccrual{AccountNumber: account.Number, NewBalance: account.Balance}
		if balance, err := account.Deposit(interest); err == nil {
			accrual.Interest = interest
			accrual.NewBalance = balance
		}
		accruals = append(accruals, accrual)
	}

	logger.Info("Monthly interest accrued", slog.Int("accounts", len(accruals)), slog.String("annual_rate_percent", annualRatePercent.String()))
	return accruals, nil
}
