package domain

// ATMReceipt reports the outcome of an ATM withdrawal: the greedy bill split
// of the requested amount and the balance after the fee-inclusive debit.
type ATMReceipt struct {
	AccountNumber int64
	Twenties      int64
	Tens          int64
	Fives         int64
	Fee           int64 // cents
	NewBalance    int64 // cents
}

// TransferReceipt reports a completed transfer between two accounts.
type TransferReceipt struct {
	FromNumber  int64
	ToNumber    int64
	Amount      int64 // cents
	FromBalance int64 // cents
	ToBalance   int64 // cents
}

// CoinReceipt reports a coin deposit: the cents actually deposited, the
// rejected symbols in encounter order, and the resulting balance. A parse
// that yields nothing valid deposits zero and is not an error.
type CoinReceipt struct {
	AccountNumber int64
	Deposited     int64 // cents
	InvalidCoins  []rune
	NewBalance    int64 // cents
}

// InterestAccrual reports one account's share of a bulk interest run.
type InterestAccrual struct {
	AccountNumber int64
	Interest      int64 // cents, zero when the computed interest was skipped
	NewBalance    int64 // cents
}
