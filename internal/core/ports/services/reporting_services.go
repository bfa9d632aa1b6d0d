package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finandes/finops_backend/internal/core/domain"
	"github.com/finandes/finops_backend/internal/dto"
)

// ReportingSvcFacade answers balance and ledger queries over the journal
// store. Queries are read-only and never fail on empty results.
type ReportingSvcFacade interface {
	// CashPosition returns the USD cash position and ARS cash balance.
	CashPosition(ctx context.Context) (*domain.PositionReport, error)

	// AccountPosition returns the net debit-minus-credit balance of a single
	// account/currency pair. Zero when no lines exist.
	AccountPosition(ctx context.Context, accountCode, currencyCode string) (decimal.Decimal, error)

	// ClientLedger returns the chronological running-balance view of a
	// party's receivable/payable account. Fails with apperrors.ErrNotFound
	// when the party does not exist.
	ClientLedger(ctx context.Context, q dto.ClientLedgerQuery) ([]domain.LedgerRow, error)
}
