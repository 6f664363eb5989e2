package dto

import (
	"github.com/marchbank/coastal-ledger/internal/core/domain"
	"github.com/marchbank/coastal-ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// AmountRequest carries a dollars-and-cents amount for deposit and withdraw.
type AmountRequest struct {
	Credentials
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ATMRequest carries a whole-dollar ATM withdrawal amount. The multiple-of-5
// and range constraints are the core's contract, not the binding's.
type ATMRequest struct {
	Credentials
	AmountDollars int64 `json:"amountDollars" binding:"required"`
}

// TransferRequest moves an amount from the authenticated account to a
// destination resolved by number.
type TransferRequest struct {
	Credentials
	ToAccountNumber string          `json:"toAccountNumber" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
}

// CoinDepositRequest carries a coin string such as "QPDNNDHW". Invalid
// symbols are reported, not rejected, so the string is unconstrained here.
type CoinDepositRequest struct {
	Credentials
	Coins string `json:"coins" binding:"required"`
}

// InterestRequest applies one annual rate to every account in the bank.
type InterestRequest struct {
	AnnualRatePercent decimal.Decimal `json:"annualRatePercent" binding:"required"`
}

// BalanceResponse reports the balance after a money-moving operation. The
// account number echoes the request token.
type BalanceResponse struct {
	AccountNumber string `json:"accountNumber"`
	NewBalance    string `json:"newBalance"`
}

// ATMResponse reports an ATM withdrawal: the bill breakdown of the requested
// amount plus the fee charged on top of it.
type ATMResponse struct {
	AccountNumber int64  `json:"accountNumber"`
	Twenties      int64  `json:"twentyDollarBills"`
	Tens          int64  `json:"tenDollarBills"`
	Fives         int64  `json:"fiveDollarBills"`
	Fee           string `json:"fee"`
	NewBalance    string `json:"newBalance"`
}

// TransferResponse reports both post-transfer balances.
type TransferResponse struct {
	FromAccountNumber int64  `json:"fromAccountNumber"`
	ToAccountNumber   int64  `json:"toAccountNumber"`
	Amount            string `json:"amount"`
	FromBalance       string `json:"fromBalance"`
	ToBalance         string `json:"toBalance"`
}

// CoinDepositResponse reports the deposited sum and every rejected symbol in
// encounter order.
type CoinDepositResponse struct {
	AccountNumber int64    `json:"accountNumber"`
	Deposited     string   `json:"deposited"`
	InvalidCoins  []string `json:"invalidCoins"`
	NewBalance    string   `json:"newBalance"`
}

// InterestAccrualResponse reports one account's share of a bulk interest run.
type InterestAccrualResponse struct {
	AccountNumber int64  `json:"accountNumber"`
	Interest      string `json:"interest"`
	NewBalance    string `json:"newBalance"`
}

// ToATMResponse converts a domain.ATMReceipt to its DTO.
func ToATMResponse(receipt *domain.ATMReceipt) ATMResponse {
	return ATMResponse{
		AccountNumber: receipt.AccountNumber,
		Twenties:      receipt.Twenties,
		Tens:          receipt.Tens,
		Fives:         receipt.Fives,
		Fee:           money.FormatCents(receipt.Fee),
		NewBalance:    money.FormatCents(receipt.NewBalance),
	}
}

// ToTransferResponse converts a domain.TransferReceipt to its DTO.
func ToTransferResponse(receipt *domain.TransferReceipt) TransferResponse {
	return TransferResponse{
		FromAccountNumber: receipt.FromNumber,
		ToAccountNumber:   receipt.ToNumber,
		Amount:            money.FormatCents(receipt.Amount),
		FromBalance:       money.FormatCents(receipt.FromBalance),
		ToBalance:         money.FormatCents(receipt.ToBalance),
	}
}

// ToCoinDepositResponse converts a domain.CoinReceipt to its DTO.
func ToCoinDepositResponse(receipt *domain.CoinReceipt) CoinDepositResponse {
	invalid := make([]string, len(receipt.InvalidCoins))
	for i, r := range receipt.InvalidCoins {
		invalid[i] = string(r)
	}
	return CoinDepositResponse{
		AccountNumber: receipt.AccountNumber,
		Deposited:     money.FormatCents(receipt.Deposited),
		InvalidCoins:  invalid,
		NewBalance:    money.FormatCents(receipt.NewBalance),
	}
}

// ToInterestAccrualResponses converts accrual reports to their DTOs.
func ToInterestAccrualResponses(accruals []domain.InterestAccrual) []InterestAccrualResponse {
	responses := make([]InterestAccrualResponse, len(accruals))
	for i, accrual := range accruals {
		responses[i] = InterestAccrualResponse{
			AccountNumber: accrual.AccountNumber,
			Interest:      money.FormatCents(accrual.Interest),
			NewBalance:    money.FormatCents(accrual.NewBalance),
		}
	}
	return responses
}
