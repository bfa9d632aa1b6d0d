package services

import (
	"context"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// ChequeSvcFacade drives the cheque lifecycle. Status updates never touch
// the journal store: accreditation does not generate a journal entry.
type ChequeSvcFacade interface {
	GetChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error)

	// UpdateStatus transitions a cheque. Unknown id fails with ErrNotFound,
	// an unrecognized status with ErrValidation, and a transition out of a
	// terminal (non-pending) state with ErrConflict.
	UpdateStatus(ctx context.Context, chequeID string, newStatus domain.ChequeStatus, actorUserID string) error

	// ListCheques returns cheques with an optional status filter.
	ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error)
}
