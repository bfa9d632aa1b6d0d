package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PositionReport is the net cash position of the two main cash accounts.
type PositionReport struct {
	USDPosition decimal.Decimal `json:"usdPosition"`
	ARSBalance  decimal.Decimal `json:"arsBalance"`
}

// LedgerRow is one line of a client ledger: a journal leg against the party's
// receivable/payable account, with the running balance of its own currency at
// that point in the sequence.
type LedgerRow struct {
	Date              time.Time         `json:"date"`
	OperationTypeCode OperationTypeCode `json:"operationType"`
	Description       string            `json:"description,omitempty"`
	Debit             decimal.Decimal   `json:"debit"`
	Credit            decimal.Decimal   `json:"credit"`
	CurrencyCode      string            `json:"currency"`
	Balance           decimal.Decimal   `json:"balance"`
}
