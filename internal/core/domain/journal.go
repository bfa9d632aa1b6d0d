package domain

import "github.com/shopspring/decimal"

// EntrySide indicates whether a journal line is a debit or a credit leg.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// JournalLine is one debit-or-credit leg of an operation against one account
// in one currency. Lines are append-only: once written they are never updated
// or deleted, and the stored entry sequence preserves insertion order.
type JournalLine struct {
	EntryID      string          `json:"entryID"` // Primary Key (UUID)
	OperationID  string          `json:"operationID"`
	AccountID    string          `json:"accountID"`
	AccountCode  string          `json:"accountCode,omitempty"` // Populated on reads that join accounts
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"` // Always positive
	Side         EntrySide       `json:"side"`
	AuditFields
}

// DebitAmount returns the line amount when the line is a debit, zero otherwise.
func (l JournalLine) DebitAmount() decimal.Decimal {
	if l.Side == Debit {
		return l.Amount
	}
	return decimal.Zero
}

// CreditAmount returns the line amount when the line is a credit, zero otherwise.
func (l JournalLine) CreditAmount() decimal.Decimal {
	if l.Side == Credit {
		return l.Amount
	}
	return decimal.Zero
}
