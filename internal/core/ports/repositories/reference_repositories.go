package repositories

import (
	"context"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// AccountRepositoryFacade defines read access to the chart of accounts.
// The chart is seeded by migrations; the core never writes accounts.
type AccountRepositoryFacade interface {
	// FindAccountByCode resolves a stable chart code (e.g. "1020") to its
	// account. Returns apperrors.ErrNotFound when no account has that code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountsByCodes resolves several codes at once, keyed by code.
	// Missing codes are simply absent from the map.
	FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error)

	// ListAccounts returns the full chart of accounts ordered by code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// CurrencyRepositoryFacade defines read access to currency reference data.
type CurrencyRepositoryFacade interface {
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// OperationTypeRepositoryFacade defines read access to the operation type catalog.
type OperationTypeRepositoryFacade interface {
	FindOperationTypeByCode(ctx context.Context, code domain.OperationTypeCode) (*domain.OperationType, error)
}
