package domain

import (
	"fmt"

	"github.com/marchbank/coastal-ledger/internal/apperrors"
	"github.com/marchbank/coastal-ledger/internal/utils/money"
)

// ATMWithdrawalFee is the flat surcharge in cents added to every ATM
// withdrawal's requested amount before the sufficiency check.
const ATMWithdrawalFee int64 = 250

// Account represents a single bank account within the core domain.
// Balance is held in integer cents and never goes negative: every mutation
// rejects a move that would violate that before touching state.
type Account struct {
	Number    int64  `json:"accountNumber"` // 8-digit identifier, immutable after creation
	FirstName string `json:"ownerFirstName"`
	LastName  string `json:"ownerLastName"`
	SSN       string `json:"-"` // 9 digits, only ever displayed masked
	PIN       string `json:"-"` // 4-digit credential, compared by exact equality
	Balance   int64  `json:"balance"` // cents
}

// Deposit adds a positive amount of cents to the balance and returns the new
// balance. A zero or negative amount fails with ErrInvalidAmount and leaves
// the balance untouched.
func (a *Account) Deposit(cents int64) (int64, error) {
	if cents <= 0 {
		return a.Balance, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrInvalidAmount)
	}
	a.Balance += cents
	return a.Balance, nil
}

// Withdraw removes a positive amount of cents from the balance and returns
// the new balance. Fails with ErrInvalidAmount for non-positive amounts and
// with ErrInsufficientFunds when the amount exceeds the balance; the failing
// account's number is carried in the error for display.
func (a *Account) Withdraw(cents int64) (int64, error) {
	if cents <= 0 {
		return a.Balance, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrInvalidAmount)
	}
	if cents > a.Balance {
		return a.Balance, fmt.Errorf("%w in account %d", apperrors.ErrInsufficientFunds, a.Number)
	}
	a.Balance -= cents
	return a.Balance, nil
}

// ATMWithdraw withdraws through the ATM channel: the flat fee is added to the
// requested amount and the fee-inclusive total is checked against the balance
// before delegating to Withdraw.
func (a *Account) ATMWithdraw(cents int64) (int64, error) {
	if cents <= 0 {
		return a.Balance, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrInvalidAmount)
	}
	total := cents + ATMWithdrawalFee
	if total > a.Balance {
		return a.Balance, fmt.Errorf("%w in account %d", apperrors.ErrInsufficientFunds, a.Number)
	}
	return a.Withdraw(total)
}

// ValidatePIN reports whether the candidate matches the stored PIN exactly.
// Empty or malformed candidates simply fail the match.
func (a *Account) ValidatePIN(candidate string) bool {
	return a.PIN == candidate
}

// MaskedSSN renders the SSN with everything but the last four digits hidden.
func (a *Account) MaskedSSN() string {
	tail := a.SSN
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return "XXX-XX-" + tail
}

// Statement renders the account details for display, with the SSN masked and
// the balance formatted in dollars.
func (a *Account) Statement() string {
	return fmt.Sprintf(
		"Account Number: %d\nOwner First Name: %s\nOwner Last Name: %s\nOwner SSN: %s\nPIN: %s\nBalance: $%s",
		a.Number, a.FirstName, a.LastName, a.MaskedSSN(), a.PIN, money.FormatCents(a.Balance),
	)
}
