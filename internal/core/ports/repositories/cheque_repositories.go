package repositories

import (
	"context"
	"time"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// ChequeRepositoryFacade defines access to cheque detail records.
// Cheque rows are created by the posting engine (inside SaveOperation);
// only their status is ever mutated afterwards.
type ChequeRepositoryFacade interface {
	// FindChequeByID retrieves a cheque by its identifier.
	FindChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error)

	// UpdateChequeStatus sets the status of an existing cheque. Returns
	// apperrors.ErrNotFound when the id matches no row.
	UpdateChequeStatus(ctx context.Context, chequeID string, status domain.ChequeStatus, updatedBy string, updatedAt time.Time) error

	// ListCheques returns cheques, optionally filtered by status, ordered by
	// due date ascending.
	ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error)
}
