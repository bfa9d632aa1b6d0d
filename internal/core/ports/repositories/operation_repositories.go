package repositories

import (
	"context"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// OperationWriter persists posted operations.
type OperationWriter interface {
	// SaveOperation writes the operation header, its type-specific detail
	// record, every journal line, and the cheque row (for cheque operations)
	// in one database transaction: either all of it commits or none does.
	// When newParty is non-nil the party row is inserted first, inside the
	// same transaction, so the ledger effect stays consistent.
	SaveOperation(ctx context.Context, op domain.Operation, lines []domain.JournalLine, detail domain.OperationDetail, newParty *domain.Party) error
}

// OperationReader reads back posted operations and their lines.
type OperationReader interface {
	// FindOperationByID retrieves the operation header.
	FindOperationByID(ctx context.Context, operationID string) (*domain.Operation, error)

	// FindLinesByOperationID retrieves the journal lines of an operation in
	// insertion order.
	FindLinesByOperationID(ctx context.Context, operationID string) ([]domain.JournalLine, error)

	// ListOperations returns operation headers ordered by date descending.
	ListOperations(ctx context.Context, limit int) ([]domain.Operation, error)
}

// OperationRepositoryFacade combines all operation repository interfaces.
type OperationRepositoryFacade interface {
	OperationWriter
	OperationReader
}
