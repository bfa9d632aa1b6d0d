package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finandes/finops_backend/internal/apperrors"
	"github.com/finandes/finops_backend/internal/core/domain"
	portsrepo "github.com/finandes/finops_backend/internal/core/ports/repositories"
	portssvc "github.com/finandes/finops_backend/internal/core/ports/services"
	"github.com/finandes/finops_backend/internal/middleware"
)

// chequeService drives the cheque lifecycle. Cheques are created by the
// posting engine; this service only reads them and moves their status.
type chequeService struct {
	chequeRepo portsrepo.ChequeRepositoryFacade
}

// NewChequeService creates a new ChequeService.
func NewChequeService(chequeRepo portsrepo.ChequeRepositoryFacade) portssvc.ChequeSvcFacade {
	return &chequeService{chequeRepo: chequeRepo}
}

var _ portssvc.ChequeSvcFacade = (*chequeService)(nil)

// GetChequeByID retrieves a cheque by id.
func (s *chequeService) GetChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error) {
	return s.chequeRepo.FindChequeByID(ctx, chequeID)
}

// UpdateStatus transitions a cheque to a new lifecycle state. Once a cheque
// has left pending its state is final; further transitions are conflicts.
// No journal entry accompanies a status change.
func (s *chequeService) UpdateStatus(ctx context.Context, chequeID string, newStatus domain.ChequeStatus, actorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidChequeStatus(newStatus) {
		return fmt.Errorf("%w: invalid cheque status %q", apperrors.ErrValidation, newStatus)
	}

	cheque, err := s.chequeRepo.FindChequeByID(ctx, chequeID)
	if err != nil {
		return err
	}

	if cheque.Status != domain.ChequePending {
		return fmt.Errorf("%w: cheque %s is already %s", apperrors.ErrConflict, chequeID, cheque.Status)
	}
	if newStatus == cheque.Status {
		return nil
	}

	now := time.Now().UTC()
	if err := s.chequeRepo.UpdateChequeStatus(ctx, chequeID, newStatus, actorUserID, now); err != nil {
		logger.Error("Failed to update cheque status", slog.String("cheque_id", chequeID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Cheque status updated",
		slog.String("cheque_id", chequeID),
		slog.String("from", string(cheque.Status)),
		slog.String("to", string(newStatus)),
	)
	return nil
}

// ListCheques returns cheques, optionally filtered by status.
func (s *chequeService) ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error) {
	if status != nil && !domain.ValidChequeStatus(*status) {
		return nil, fmt.Errorf("%w: invalid cheque status %q", apperrors.ErrValidation, *status)
	}
	return s.chequeRepo.ListCheques(ctx, status)
}
