package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finandes/finops_backend/internal/core/domain"
	portsrepo "github.com/finandes/finops_backend/internal/core/ports/repositories"
	portssvc "github.com/finandes/finops_backend/internal/core/ports/services"
	"github.com/finandes/finops_backend/internal/dto"
)

// reportingService answers balance and ledger queries. It owns no state of
// its own; balances are always recomputed from the journal store.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
	partyRepo     portsrepo.PartyReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, partyRepo portsrepo.PartyReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: reportingRepo,
		partyRepo:     partyRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// CashPosition reports the net balance of the two main cash accounts: USD
// cash in USD and ARS cash in ARS. Bank accounts are not included.
func (s *reportingService) CashPosition(ctx context.Context) (*domain.PositionReport, error) {
	usdPosition, err := s.reportingRepo.AccountPosition(ctx, domain.AccountCashUSD, domain.CurrencyUSD)
	if err != nil {
		return nil, fmt.Errorf("failed to compute USD position: %w", err)
	}
	arsBalance, err := s.reportingRepo.AccountPosition(ctx, domain.AccountCashARS, domain.CurrencyARS)
	if err != nil {
		return nil, fmt.Errorf("failed to compute ARS balance: %w", err)
	}
	return &domain.PositionReport{USDPosition: usdPosition, ARSBalance: arsBalance}, nil
}

// AccountPosition returns sum(debit) - sum(credit) for one account/currency
// pair. Zero when the account has no activity.
func (s *reportingService) AccountPosition(ctx context.Context, accountCode, currencyCode string) (decimal.Decimal, error) {
	return s.reportingRepo.AccountPosition(ctx, accountCode, currencyCode)
}

// ClientLedger returns the chronological movements of a party's
// receivable/payable accounts with a running balance kept separately per
// currency. The balance of a row is debits minus credits accumulated over
// the rows of that row's currency up to and including it.
func (s *reportingService) ClientLedger(ctx context.Context, q dto.ClientLedgerQuery) ([]domain.LedgerRow, error) {
	party, err := s.partyRepo.FindPartyByName(ctx, q.PartyName)
	if err != nil {
		return nil, err
	}

	codes := ledgerAccountCodes(party.Type, q.Currency)

	rows, err := s.reportingRepo.ClientLedgerRows(ctx, portsrepo.LedgerQuery{
		PartyID:      party.PartyID,
		AccountCodes: codes,
		FromDate:     q.FromDate,
		ToDate:       q.ToDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger rows: %w", err)
	}

	balances := map[string]decimal.Decimal{}
	for i := range rows {
		cur := rows[i].CurrencyCode
		balances[cur] = balances[cur].Add(rows[i].Debit).Sub(rows[i].Credit)
		rows[i].Balance = balances[cur]
	}
	return rows, nil
}

// ledgerAccountCodes selects the receivable/payable codes for a party type,
// optionally restricted to one currency.
func ledgerAccountCodes(partyType domain.PartyType, currency *string) []string {
	var codes []string
	wantsCurrency := func(code string) bool {
		return currency == nil || *currency == "" || *currency == code
	}
	if wantsCurrency(domain.CurrencyARS) {
		if partyType == domain.PartySupplier {
			codes = append(codes, domain.AccountSuppliersARS)
		} else {
			codes = append(codes, domain.AccountClientsARS)
		}
	}
	if wantsCurrency(domain.CurrencyUSD) {
		if partyType == domain.PartySupplier {
			codes = append(codes, domain.AccountSuppliersUSD)
		} else {
			codes = append(codes, domain.AccountClientsUSD)
		}
	}
	return codes
}
