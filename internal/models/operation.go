package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation represents a row of the operations table.
type Operation struct {
	OperationID       string           `db:"operation_id"`
	Date              time.Time        `db:"date"`
	OperationTypeCode string           `db:"operation_type_code"` // Joined from operation_types
	PartyID           *string          `db:"party_id"`
	Amount            decimal.Decimal  `db:"amount"`
	CurrencyCode      string           `db:"currency_code"` // Joined from currencies
	ExchangeRate      *decimal.Decimal `db:"exchange_rate"`
	Notes             string           `db:"notes"`
	UserID            string           `db:"user_id"`
	AuditFields
}

// JournalEntry represents a row of the journal_entries table. The debit and
// credit columns follow the persisted layout: both non-negative, exactly one
// nonzero per row.
type JournalEntry struct {
	EntryID      string          `db:"entry_id"`
	EntrySeq     int64           `db:"entry_seq"` // Insertion order within the ledger
	OperationID  string          `db:"operation_id"`
	AccountID    string          `db:"account_id"`
	AccountCode  string          `db:"account_code"` // Joined from accounts
	CurrencyCode string          `db:"currency_code"`
	Debit        decimal.Decimal `db:"debit"`
	Credit       decimal.Decimal `db:"credit"`
	AuditFields
}

// FXDetail represents a row of the fx_details table.
type FXDetail struct {
	OperationID string          `db:"operation_id"`
	USDAmount   decimal.Decimal `db:"usd_amount"`
	ARSAmount   decimal.Decimal `db:"ars_amount"`
	FXType      string          `db:"fx_type"`
}

// PaymentDetail represents a row of the payment_details table; ReceiptDetail
// the receipt_details table. Same shape, separate tables.
type PaymentDetail struct {
	OperationID          string           `db:"operation_id"`
	GrossAmount          decimal.Decimal  `db:"gross_amount"`
	CommissionAmount     decimal.Decimal  `db:"commission_amount"`
	CommissionPercentage *decimal.Decimal `db:"commission_percentage"`
	ExpensesAmount       decimal.Decimal  `db:"expenses_amount"`
	PaymentMethod        string           `db:"payment_method"`
}

type ReceiptDetail struct {
	OperationID          string           `db:"operation_id"`
	GrossAmount          decimal.Decimal  `db:"gross_amount"`
	CommissionAmount     decimal.Decimal  `db:"commission_amount"`
	CommissionPercentage *decimal.Decimal `db:"commission_percentage"`
	ExpensesAmount       decimal.Decimal  `db:"expenses_amount"`
	PaymentMethod        string           `db:"payment_method"`
}
