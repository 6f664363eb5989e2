package dto

import (
	"github.com/marchbank/coastal-ledger/internal/core/domain"
	"github.com/marchbank/coastal-ledger/internal/utils/money"
)

// Credentials identifies and authenticates an account for account-scoped
// requests. The account number travels as a string token; the core validates
// that it is purely numeric. Credentials only ever travel in request bodies,
// never in URLs.
type Credentials struct {
	AccountNumber string `json:"accountNumber" binding:"required"`
	PIN           string `json:"pin" binding:"required"`
}

// OpenAccountRequest defines the data needed to open a new account.
// AccountNumber is optional; when absent the bank assigns a random one.
type OpenAccountRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	SSN           string `json:"ssn" binding:"required,ssn"`
	AccountNumber int64  `json:"accountNumber"`
}

// UpdateOwnerRequest defines the mutable owner fields. Empty fields are left
// unchanged.
type UpdateOwnerRequest struct {
	Credentials
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	SSN       string `json:"ssn" binding:"omitempty,ssn"`
}

// ChangePINRequest defines a PIN change, confirmed by exact repetition.
type ChangePINRequest struct {
	Credentials
	NewPIN     string `json:"newPin" binding:"required,pin"`
	ConfirmPIN string `json:"confirmPin" binding:"required"`
}

// AccountResponse defines the data returned for an authenticated account
// statement. The SSN is always masked; the PIN appears because the statement
// is only reachable through that same PIN.
type AccountResponse struct {
	AccountNumber int64  `json:"accountNumber"`
	FirstName     string `json:"ownerFirstName"`
	LastName      string `json:"ownerLastName"`
	MaskedSSN     string `json:"ownerSSN"`
	PIN           string `json:"pin"`
	Balance       string `json:"balance"`
}

// AccountSummary is the unauthenticated admin view of an account: no PIN.
type AccountSummary struct {
	AccountNumber int64  `json:"accountNumber"`
	FirstName     string `json:"ownerFirstName"`
	LastName      string `json:"ownerLastName"`
	MaskedSSN     string `json:"ownerSSN"`
	Balance       string `json:"balance"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		AccountNumber: account.Number,
		FirstName:     account.FirstName,
		LastName:      account.LastName,
		MaskedSSN:     account.MaskedSSN(),
		PIN:           account.PIN,
		Balance:       money.FormatCents(account.Balance),
	}
}

// ToAccountSummaries converts a slice of accounts to admin summaries.
func ToAccountSummaries(accounts []domain.Account) []AccountSummary {
	summaries := make([]AccountSummary, len(accounts))
	for i, account := range accounts {
		summaries[i] = AccountSummary{
			AccountNumber: account.Number,
			FirstName:     account.FirstName,
			LastName:      account.LastName,
			MaskedSSN:     account.MaskedSSN(),
			Balance:       money.FormatCents(account.Balance),
		}
	}
	return summaries
}
