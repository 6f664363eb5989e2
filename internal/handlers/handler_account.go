package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/marchbank/coastal-ledger/internal/core/ports/services"
	"github.com/marchbank/coastal-ledger/internal/dto"
	"github.com/marchbank/coastal-ledger/internal/middleware"
)

// accountHandler handles HTTP requests for the account lifecycle.
type accountHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newAccountHandler(ledger portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{ledger: ledger}
}

// registerAccountRoutes registers the account lifecycle routes. Every
// account-scoped request carries its credentials in the body, so even the
// inquiry is a POST.
func registerAccountRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newAccountHandler(ledger)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.openAccount)
		accounts.POST("/inquiry", h.getAccount)
		accounts.POST("/pin", h.changePIN)
		accounts.POST("/owner", h.updateOwner)
		accounts.DELETE("", h.closeAccount)
	}
}

// openAccount opens a new account and returns its statement, including the
// generated account number and PIN.
func (h *accountHandler) openAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for openAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.ledger.OpenAccount(c.Request.Context(), req.FirstName, req.LastName, req.SSN, req.AccountNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount returns the statement for an authenticated account.
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for getAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.ledger.AccountByCredentials(c.Request.Context(), req.AccountNumber, req.PIN)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// changePIN sets a new PIN on an authenticated account.
func (h *accountHandler) changePIN(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangePINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for changePIN", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.ledger.ChangePIN(c.Request.Context(), req.AccountNumber, req.PIN, req.NewPIN, req.ConfirmPIN); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "PIN updated"})
}

// updateOwner changes the owner names and SSN on an authenticated account.
func (h *accountHandler) updateOwner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateOwner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.ledger.UpdateOwner(c.Request.Context(), req.AccountNumber, req.PIN, req.FirstName, req.LastName, req.SSN)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// closeAccount removes an authenticated account from the bank.
func (h *accountHandler) closeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for closeAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.ledger.CloseAccount(c.Request.Context(), req.AccountNumber, req.PIN); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account closed"})
}
