package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// PositionResponse is the cash position report: net USD cash position and
// net ARS cash balance of the main cash accounts.
type PositionResponse struct {
	USDPosition decimal.Decimal `json:"usdPosition"`
	ARSBalance  decimal.Decimal `json:"arsBalance"`
}

// ToPositionResponse converts the domain report.
func ToPositionResponse(r *domain.PositionReport) PositionResponse {
	return PositionResponse{USDPosition: r.USDPosition, ARSBalance: r.ARSBalance}
}

// ClientLedgerQuery bounds a client ledger request.
type ClientLedgerQuery struct {
	PartyName string
	Currency  *string // "ARS" or "USD"; nil means both
	FromDate  *time.Time
	ToDate    *time.Time
}

// LedgerRowResponse is one row of a client ledger.
type LedgerRowResponse struct {
	Date          time.Time       `json:"date"`
	OperationType string          `json:"operationType"`
	Description   string          `json:"description,omitempty"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
}

// ToLedgerRowResponses converts ledger rows for output.
func ToLedgerRowResponses(rows []domain.LedgerRow) []LedgerRowResponse {
	out := make([]LedgerRowResponse, len(rows))
	for i, r := range rows {
		out[i] = LedgerRowResponse{
			Date:          r.Date,
			OperationType: string(r.OperationTypeCode),
			Description:   r.Description,
			Debit:         r.Debit,
			Credit:        r.Credit,
			Currency:      r.CurrencyCode,
			Balance:       r.Balance,
		}
	}
	return out
}
