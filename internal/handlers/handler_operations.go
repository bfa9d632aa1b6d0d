package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finandes/finops_backend/internal/apperrors"
	portssvc "github.com/finandes/finops_backend/internal/core/ports/services"
	"github.com/finandes/finops_backend/internal/dto"
	"github.com/finandes/finops_backend/internal/middleware"
)

// operationHandler handles posting requests and operation reads.
type operationHandler struct {
	operationService portssvc.OperationSvcFacade
}

func newOperationHandler(os portssvc.OperationSvcFacade) *operationHandler {
	return &operationHandler{operationService: os}
}

// registerOperationRoutes registers the posting and operation read routes.
func registerOperationRoutes(rg *gin.RouterGroup, operationService portssvc.OperationSvcFacade) {
	h := newOperationHandler(operationService)

	operations := rg.Group("/operations")
	{
		operations.POST("/fx", h.createFX)
		operations.POST("/payments", h.createPayment)
		operations.POST("/receipts", h.createReceipt)
		operations.POST("/cheque-purchases", h.createChequeBuy)
		operations.GET("", h.listOperations)
		operations.GET("/:id", h.getOperationByID)
	}
}

// respondPostingError translates posting service errors to HTTP responses.
func respondPostingError(c *gin.Context, logger *slog.Logger, err error, what string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error posting "+what, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Missing reference posting "+what, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to post "+what, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post " + what})
	}
}

// createFX posts a currency exchange operation.
func (h *operationHandler) createFX(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateFXRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFX", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.operationService.CreateFX(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondPostingError(c, logger, err, "fx operation")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// createPayment posts an outgoing payment operation.
func (h *operationHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.operationService.CreatePayment(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondPostingError(c, logger, err, "payment")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// createReceipt posts an incoming receipt operation.
func (h *operationHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.operationService.CreateReceipt(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondPostingError(c, logger, err, "receipt")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// createChequeBuy posts a discounted cheque purchase.
func (h *operationHandler) createChequeBuy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateChequeBuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateChequeBuy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.operationService.CreateChequeBuy(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondPostingError(c, logger, err, "cheque purchase")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// listOperations returns recent operation headers.
func (h *operationHandler) listOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	ops, err := h.operationService.ListOperations(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list operations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list operations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"operations": ops})
}

// getOperationByID returns an operation with its journal lines.
func (h *operationHandler) getOperationByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operationID := c.Param("id")

	op, err := h.operationService.GetOperationByID(c.Request.Context(), operationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Operation not found"})
		} else {
			logger.Error("Failed to get operation", slog.String("operation_id", operationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve operation"})
		}
		return
	}
	c.JSON(http.StatusOK, op)
}
