package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/marchbank/coastal-ledger/internal/core/ports/services"
	"github.com/marchbank/coastal-ledger/internal/dto"
	"github.com/marchbank/coastal-ledger/internal/middleware"
)

// adminHandler handles the administrative routes: bulk interest accrual and
// the account listing. Administrative routes carry no PIN gate.
type adminHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newAdminHandler(ledger portssvc.LedgerSvcFacade) *adminHandler {
	return &adminHandler{ledger: ledger}
}

func registerAdminRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newAdminHandler(ledger)

	admin := rg.Group("/admin")
	{
		admin.POST("/interest", h.accrueInterest)
		admin.GET("/accounts", h.listAccounts)
	}
}

// accrueInterest applies one month of interest at the given annual rate to
// every account and reports the per-account result.
func (h *adminHandler) accrueInterest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for accrueInterest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	accruals, err := h.ledger.AccrueInterest(c.Request.Context(), req.AnnualRatePercent)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accruals": dto.ToInterestAccrualResponses(accruals)})
}

// listAccounts returns masked summaries of every open account.
func (h *adminHandler) listAccounts(c *gin.Context) {
	accounts, err := h.ledger.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": dto.ToAccountSummaries(accounts)})
}
