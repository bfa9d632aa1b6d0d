package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finandes/finops_backend/internal/apperrors"
	portssvc "github.com/finandes/finops_backend/internal/core/ports/services"
	"github.com/finandes/finops_backend/internal/dto"
	"github.com/finandes/finops_backend/internal/middleware"
)

// reportingHandler handles balance and ledger report requests.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/position", h.getPosition)
		reports.GET("/account-position", h.getAccountPosition)
		reports.GET("/client-ledger", h.getClientLedger)
	}
}

// getPosition returns the USD position and ARS cash balance.
func (h *reportingHandler) getPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.CashPosition(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute cash position", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute position"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPositionResponse(report))
}

// getAccountPosition returns sum(debit) - sum(credit) for one account and
// currency. Query parameters: account_code and currency, both required.
func (h *reportingHandler) getAccountPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountCode := c.Query("account_code")
	currency := c.Query("currency")
	if accountCode == "" || currency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_code and currency are required"})
		return
	}
	if currency != "ARS" && currency != "USD" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency must be ARS or USD"})
		return
	}

	balance, err := h.reportingService.AccountPosition(c.Request.Context(), accountCode, currency)
	if err != nil {
		logger.Error("Failed to compute account position",
			slog.String("account_code", accountCode), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute position"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"accountCode": accountCode,
		"currency":    currency,
		"balance":     balance,
	})
}

// getClientLedger returns the running-balance ledger of one party.
// Query parameters: party_name (required), currency, start_date, end_date
// (ISO dates, inclusive).
func (h *reportingHandler) getClientLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	partyName := c.Query("party_name")
	if partyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "party_name is required"})
		return
	}

	query := dto.ClientLedgerQuery{PartyName: partyName}

	if currency := c.Query("currency"); currency != "" {
		if currency != "ARS" && currency != "USD" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "currency must be ARS or USD"})
			return
		}
		query.Currency = &currency
	}

	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be yyyy-mm-dd"})
			return
		}
		query.FromDate = &parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be yyyy-mm-dd"})
			return
		}
		// Inclusive upper bound covers the whole day
		endOfDay := parsed.Add(24*time.Hour - time.Nanosecond)
		query.ToDate = &endOfDay
	}

	rows, err := h.reportingService.ClientLedger(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		} else {
			logger.Error("Failed to build client ledger", slog.String("party_name", partyName), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build ledger"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ledger": dto.ToLedgerRowResponses(rows)})
}
