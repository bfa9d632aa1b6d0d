package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finandes/finops_backend/internal/apperrors"
	"github.com/finandes/finops_backend/internal/core/domain"
	portssvc "github.com/finandes/finops_backend/internal/core/ports/services"
	"github.com/finandes/finops_backend/internal/dto"
	"github.com/finandes/finops_backend/internal/middleware"
)

// chequeHandler handles cheque reads and status changes.
type chequeHandler struct {
	chequeService portssvc.ChequeSvcFacade
}

func newChequeHandler(cs portssvc.ChequeSvcFacade) *chequeHandler {
	return &chequeHandler{chequeService: cs}
}

// registerChequeRoutes registers the cheque routes.
func registerChequeRoutes(rg *gin.RouterGroup, chequeService portssvc.ChequeSvcFacade) {
	h := newChequeHandler(chequeService)

	cheques := rg.Group("/cheques")
	{
		cheques.GET("", h.listCheques)
		cheques.GET("/:id", h.getChequeByID)
		cheques.POST("/:id/status", h.updateChequeStatus)
	}
}

// listCheques returns cheques, optionally filtered by status.
func (h *chequeHandler) listCheques(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var statusFilter *domain.ChequeStatus
	if raw := c.Query("status"); raw != "" {
		status := domain.ChequeStatus(raw)
		if !domain.ValidChequeStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		statusFilter = &status
	}

	cheques, err := h.chequeService.ListCheques(c.Request.Context(), statusFilter)
	if err != nil {
		logger.Error("Failed to list cheques", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cheques"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cheques": dto.ToChequeResponses(cheques)})
}

// getChequeByID returns one cheque.
func (h *chequeHandler) getChequeByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chequeID := c.Param("id")

	cheque, err := h.chequeService.GetChequeByID(c.Request.Context(), chequeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cheque not found"})
		} else {
			logger.Error("Failed to get cheque", slog.String("cheque_id", chequeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cheque"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToChequeResponse(cheque))
}

// updateChequeStatus transitions a cheque's lifecycle state.
func (h *chequeHandler) updateChequeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chequeID := c.Param("id")

	var req dto.UpdateChequeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateChequeStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.chequeService.UpdateStatus(c.Request.Context(), chequeID, domain.ChequeStatus(req.Status), actorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cheque not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update cheque status", slog.String("cheque_id", chequeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cheque status"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
