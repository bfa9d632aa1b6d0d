package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// LedgerQuery bounds a client ledger fetch. AccountCodes carries the
// receivable/payable codes appropriate to the party's type and the optional
// currency filter; the date bounds are inclusive when set.
type LedgerQuery struct {
	PartyID      string
	AccountCodes []string
	FromDate     *time.Time
	ToDate       *time.Time
}

// ReportingRepositoryFacade defines the read-only aggregations over the
// journal store. These queries never fail on empty results.
type ReportingRepositoryFacade interface {
	// AccountPosition returns sum(debit) - sum(credit) over all journal
	// lines of the account with the given chart code in the given currency.
	// Zero when no lines exist.
	AccountPosition(ctx context.Context, accountCode, currencyCode string) (decimal.Decimal, error)

	// ClientLedgerRows fetches the journal legs for a party's
	// receivable/payable accounts ordered by (operation date asc, entry
	// insertion order asc). Balances are left zero; the service computes
	// the running balance per currency.
	ClientLedgerRows(ctx context.Context, q LedgerQuery) ([]domain.LedgerRow, error)
}
