package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/marchbank/coastal-ledger/internal/core/ports/services"
	"github.com/marchbank/coastal-ledger/internal/dto"
	"github.com/marchbank/coastal-ledger/internal/middleware"
	"github.com/marchbank/coastal-ledger/internal/utils/money"
)

// transactionHandler handles the money-moving routes.
type transactionHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newTransactionHandler(ledger portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledger: ledger}
}

func registerTransactionRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledger)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/deposit", h.deposit)
		transactions.POST("/withdraw", h.withdraw)
		transactions.POST("/atm", h.atmWithdraw)
		transactions.POST("/transfer", h.transfer)
		transactions.POST("/coins", h.depositCoins)
	}
}

func (h *transactionHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	balance, err := h.ledger.Deposit(c.Request.Context(), req.AccountNumber, req.PIN, money.ToCents(req.Amount))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountNumber: req.AccountNumber,
		NewBalance:    money.FormatCents(balance),
	})
}

func (h *transactionHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	balance, err := h.ledger.Withdraw(c.Request.Context(), req.AccountNumber, req.PIN, money.ToCents(req.Amount))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountNumber: req.AccountNumber,
		NewBalance:    money.FormatCents(balance),
	})
}

func (h *transactionHandler) atmWithdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ATMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for atmWithdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.ledger.ATMWithdraw(c.Request.Context(), req.AccountNumber, req.PIN, req.AmountDollars)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToATMResponse(receipt))
}

func (h *transactionHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.ledger.Transfer(c.Request.Context(), req.AccountNumber, req.PIN, req.ToAccountNumber, money.ToCents(req.Amount))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(receipt))
}

func (h *transactionHandler) depositCoins(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CoinDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for depositCoins", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	receipt, err := h.ledger.DepositCoins(c.Request.Context(), req.AccountNumber, req.PIN, req.Coins)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCoinDepositResponse(receipt))
}
