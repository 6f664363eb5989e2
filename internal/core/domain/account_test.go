package domain_test

import (
	"testing"

	"github.com/marchbank/coastal-ledger/internal/apperrors"
	"github.com/marchbank/coastal-ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount() *domain.Account {
	return &domain.Account{
		Number:    99912345,
		FirstName: "John",
		LastName:  "Doe",
		SSN:       "999123456",
		PIN:       "1234",
	}
}

func TestDeposit(t *testing.T) {
	acct := newTestAccount()

	balance, err := acct.Deposit(500)
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	balance, err = acct.Deposit(-100)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	assert.Equal(t, int64(500), balance, "failed deposit must not mutate")

	_, err = acct.Deposit(0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	assert.Equal(t, int64(500), acct.Balance)
}

func TestWithdraw(t *testing.T) {
	acct := newTestAccount()
	_, err := acct.Deposit(1000)
	require.NoError(t, err)

	balance, err := acct.Withdraw(500)
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)

	_, err = acct.Withdraw(600)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "99912345", "failure names the account")
	assert.Equal(t, int64(500), acct.Balance)

	_, err = acct.Withdraw(-100)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	_, err = acct.Withdraw(0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	assert.Equal(t, int64(500), acct.Balance)
}

func TestWithdrawDepositRoundTrip(t *testing.T) {
	acct := newTestAccount()
	_, err := acct.Deposit(12345)
	require.NoError(t, err)

	_, err = acct.Withdraw(678)
	require.NoError(t, err)
	_, err = acct.Deposit(678)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), acct.Balance)
}

func TestBalanceNeverNegative(t *testing.T) {
	acct := newTestAccount()
	ops := []func() (int64, error){
		func() (int64, error) { return acct.Deposit(250) },
		func() (int64, error) { return acct.Withdraw(9999) },
		func() (int64, error) { return acct.ATMWithdraw(1) },
		func() (int64, error) { return acct.Withdraw(250) },
		func() (int64, error) { return acct.Deposit(-5) },
		func() (int64, error) { return acct.ATMWithdraw(-5) },
	}
	for _, op := range ops {
		op()
		assert.GreaterOrEqual(t, acct.Balance, int64(0))
	}
}

func TestATMWithdraw(t *testing.T) {
	acct := newTestAccount()
	_, err := acct.Deposit(20*100 + domain.ATMWithdrawalFee)
	require.NoError(t, err)

	// fee-inclusive total exceeds the balance by one cent
	_, err = acct.ATMWithdraw(20*100 + 1)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	assert.Equal(t, int64(2250), acct.Balance)

	balance, err := acct.ATMWithdraw(20 * 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	_, err = acct.ATMWithdraw(0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestValidatePIN(t *testing.T) {
	acct := newTestAccount()
	assert.True(t, acct.ValidatePIN("1234"))
	assert.False(t, acct.ValidatePIN(""))
	assert.False(t, acct.ValidatePIN("abcd"))
	assert.False(t, acct.ValidatePIN("0000"))
	assert.False(t, acct.ValidatePIN("12345"))
}

func TestStatement(t *testing.T) {
	acct := newTestAccount()
	_, err := acct.Deposit(1250)
	require.NoError(t, err)

	statement := acct.Statement()
	assert.Contains(t, statement, "Account Number: 99912345")
	assert.Contains(t, statement, "Owner SSN: XXX-XX-3456")
	assert.NotContains(t, statement, "999123456", "full SSN never displayed")
	assert.Contains(t, statement, "Balance: $12.50")
}
