package services

import (
	"context"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// AccountSvcFacade exposes read access to the chart of accounts. The chart
// is fixed and seeded by migration, so there are no write operations.
type AccountSvcFacade interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
}

// CurrencySvcFacade exposes read access to the configured currencies.
type CurrencySvcFacade interface {
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
