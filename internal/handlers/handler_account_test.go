package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/marchbank/coastal-ledger/internal/adapters/registry"
	portssvc "github.com/marchbank/coastal-ledger/internal/core/ports/services"
	"github.com/marchbank/coastal-ledger/internal/core/services"
	"github.com/marchbank/coastal-ledger/internal/handlers"
	"github.com/marchbank/coastal-ledger/pkg/config"
	"github.com/stretchr/testify/suite"
)

// stubGenerator deals account numbers and PINs from fixed sequences.
type stubGenerator struct {
	numbers []int64
	pins    []string
}

func (g *stubGenerator) AccountNumber() int64 {
	n := g.numbers[0]
	if len(g.numbers) > 1 {
		g.numbers = g.numbers[1:]
	}
	return n
}

func (g *stubGenerator) PIN() string {
	p := g.pins[0]
	if len(g.pins) > 1 {
		g.pins = g.pins[1:]
	}
	return p
}

var _ portssvc.CredentialGenerator = (*stubGenerator)(nil)

type HandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	bank := registry.New(registry.DefaultCapacity)
	generator := &stubGenerator{
		numbers: []int64{11111111, 22222222, 33333333},
		pins:    []string{"1111", "2222", "3333"},
	}
	ledger := services.NewLedgerService(bank, generator)
	container := &portssvc.ServiceContainer{Ledger: ledger}

	suite.router = gin.New()
	// rate limiting off so the suite can hammer the API from one IP
	handlers.RegisterRoutes(suite.router, &config.Config{Port: "0", RateLimit: ""}, container)
}

// do sends a JSON request and decodes the JSON response body into a map.
func (suite *HandlerTestSuite) do(method, path string, body any) (int, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w.Code, decoded
}

func (suite *HandlerTestSuite) openAccount() map[string]any {
	status, body := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{
		"firstName": "John",
		"lastName":  "Doe",
		"ssn":       "999123456",
	})
	suite.Require().Equal(http.StatusCreated, status, fmt.Sprintf("open failed: %v", body))
	return body
}

func (suite *HandlerTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestOpenAccount() {
	body := suite.openAccount()
	suite.Equal(float64(11111111), body["accountNumber"])
	suite.Equal("1111", body["pin"])
	suite.Equal("XXX-XX-3456", body["ownerSSN"])
	suite.Equal("0.00", body["balance"])
}

func (suite *HandlerTestSuite) TestOpenAccount_BadSSN() {
	status, _ := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{
		"firstName": "John",
		"lastName":  "Doe",
		"ssn":       "12345",
	})
	suite.Equal(http.StatusBadRequest, status)
}

func (suite *HandlerTestSuite) TestInquiryAndDeposit() {
	suite.openAccount()

	// wrong PIN
	status, _ := suite.do(http.MethodPost, "/api/v1/accounts/inquiry", gin.H{
		"accountNumber": "11111111", "pin": "0000",
	})
	suite.Equal(http.StatusUnauthorized, status)

	// unknown account
	status, _ = suite.do(http.MethodPost, "/api/v1/accounts/inquiry", gin.H{
		"accountNumber": "99999999", "pin": "1111",
	})
	suite.Equal(http.StatusNotFound, status)

	status, body := suite.do(http.MethodPost, "/api/v1/transactions/deposit", gin.H{
		"accountNumber": "11111111", "pin": "1111", "amount": "2.57",
	})
	suite.Equal(http.StatusOK, status)
	suite.Equal("2.57", body["newBalance"])

	status, body = suite.do(http.MethodPost, "/api/v1/accounts/inquiry", gin.H{
		"accountNumber": "11111111", "pin": "1111",
	})
	suite.Equal(http.StatusOK, status)
	suite.Equal("2.57", body["balance"])
}

func (suite *HandlerTestSuite) TestWithdrawInsufficientFunds() {
	suite.openAccount()

	status, _ := suite.do(http.MethodPost, "/api/v1/transactions/withdraw", gin.H{
		"accountNumber": "11111111", "pin": "1111", "amount": "5.00",
	})
	suite.Equal(http.StatusUnprocessableEntity, status)
}

func (suite *HandlerTestSuite) TestATMWithdraw() {
	suite.openAccount()
	status, _ := suite.do(http.MethodPost, "/api/v1/transactions/deposit", gin.H{
		"accountNumber": "11111111", "pin": "1111", "amount": "22.50",
	})
	suite.Require().Equal(http.StatusOK, status)

	// 37 is not a multiple of 5
	status, _ = suite.do(http.MethodPost, "/api/v1/transactions/atm", gin.H{
		"accountNumber": "11111111", "pin": "1111", "amountDollars": 37,
	})
	suite.Equal(http.StatusBadRequest, status)

	status, body := suite.do(http.MethodPost, "/api/v1/transactions/atm", gin.H{
		"accountNumber": "11111111", "pin": "1111", "amountDollars": 20,
	})
	suite.Equal(http.StatusOK, status)
	suite.Equal(float64(1), body["twentyDollarBills"])
	suite.Equal(float64(0), body["tenDollarBills"])
	suite.Equal(float64(0), body["fiveDollarBills"])
	suite.Equal("0.00", body["newBalance"])
}

func (suite *HandlerTestSuite) TestTransfer() {
	suite.openAccount() // 11111111
	status, _ := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{
		"firstName": "Jane", "lastName": "Doe", "ssn": "999123457",
	})
	suite.Require().Equal(http.StatusCreated, status) // 22222222

	status, _ = suite.do(http.MethodPost, "/api/v1/transactions/deposit", gin.H{
		"accountNumber": "11111111", "pin": "1111", "amount": "10.00",
	})
	suite.Require().Equal(http.StatusOK, status)

	status, body := suite.do(http.MethodPost, "/api/v1/transactions/transfer", gin.H{
		"accountNumber": "11111111", "pin": "1111",
		"toAccountNumber": "22222222", "amount": "3.00",
	})
	suite.Equal(http.StatusOK, status)
	suite.Equal("7.00", body["fromBalance"])
	suite.Equal("3.00", body["toBalance"])
}

func (suite *HandlerTestSuite) TestDepositCoins() {
	suite.openAccount()

	status, body := suite.do(http.MethodPost, "/api/v1/transactions/coins", gin.H{
		"accountNumber": "11111111", "pin": "1111", "coins": "QQQXXXWWP",
	})
	suite.Equal(http.StatusOK, status)
	suite.Equal("2.76", body["deposited"])
	suite.Equal([]any{"X", "X", "X"}, body["invalidCoins"])
}

func (suite *HandlerTestSuite) TestChangePINAndClose() {
	suite.openAccount()

	status, _ := suite.do(http.MethodPost, "/api/v1/accounts/pin", gin.H{
		"accountNumber": "11111111", "pin": "1111",
		"newPin": "9999", "confirmPin": "9998",
	})
	suite.Equal(http.StatusBadRequest, status)

	status, _ = suite.do(http.MethodPost, "/api/v1/accounts/pin", gin.H{
		"accountNumber": "11111111", "pin": "1111",
		"newPin": "9999", "confirmPin": "9999",
	})
	suite.Equal(http.StatusOK, status)

	status, _ = suite.do(http.MethodDelete, "/api/v1/accounts", gin.H{
		"accountNumber": "11111111", "pin": "9999",
	})
	suite.Equal(http.StatusOK, status)

	status, _ = suite.do(http.MethodPost, "/api/v1/accounts/inquiry", gin.H{
		"accountNumber": "11111111", "pin": "9999",
	})
	suite.Equal(http.StatusNotFound, status)
}

func (suite *HandlerTestSuite) TestAccrueInterest() {
	suite.openAccount()
	status, _ := suite.do(http.MethodPost, "/api/v1/transactions/deposit", gin.H{
		"accountNumber": "11111111", "pin": "1111", "amount": "100.00",
	})
	suite.Require().Equal(http.StatusOK, status)

	status, body := suite.do(http.MethodPost, "/api/v1/admin/interest", gin.H{
		"annualRatePercent": "1.25",
	})
	suite.Equal(http.StatusOK, status)
	accruals := body["accruals"].([]any)
	suite.Require().Len(accruals, 1)
	first := accruals[0].(map[string]any)
	suite.Equal("0.10", first["interest"])
	suite.Equal("100.10", first["newBalance"])
}

func (suite *HandlerTestSuite) TestAdminListsMaskedAccounts() {
	suite.openAccount()

	status, body := suite.do(http.MethodGet, "/api/v1/admin/accounts", nil)
	suite.Equal(http.StatusOK, status)
	accounts := body["accounts"].([]any)
	suite.Require().Len(accounts, 1)
	first := accounts[0].(map[string]any)
	suite.Equal("XXX-XX-3456", first["ownerSSN"])
	_, hasPIN := first["pin"]
	suite.False(hasPIN, "admin listing must not expose PINs")
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
