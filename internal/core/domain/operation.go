package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationTypeCode identifies a kind of business event.
type OperationTypeCode string

const (
	OpFXBuy      OperationTypeCode = "FX_BUY"
	OpFXSell     OperationTypeCode = "FX_SELL"
	OpPayment    OperationTypeCode = "PAYMENT"
	OpReceipt    OperationTypeCode = "RECEIPT"
	OpChequeBuy  OperationTypeCode = "CHEQUE_BUY"
	OpChequeSell OperationTypeCode = "CHEQUE_SELL"
)

// OperationType is a catalog entry for a kind of event. Static reference data.
type OperationType struct {
	OperationTypeID string            `json:"operationTypeID"`
	Code            OperationTypeCode `json:"code"`
	Description     string            `json:"description"`
}

// Operation is the header of a posted business event. It owns its journal
// lines and exactly one type-specific detail record. Operations are created
// atomically by the posting engine and never mutated afterwards.
type Operation struct {
	OperationID       string            `json:"operationID"` // Primary Key (UUID)
	Date              time.Time         `json:"date"`
	OperationTypeCode OperationTypeCode `json:"operationTypeCode"`
	PartyID           *string           `json:"partyID,omitempty"`
	Amount            decimal.Decimal   `json:"amount"` // Primary amount in CurrencyCode
	CurrencyCode      string            `json:"currencyCode"`
	ExchangeRate      *decimal.Decimal  `json:"exchangeRate,omitempty"` // Only set for FX operations
	Notes             string            `json:"notes,omitempty"`
	UserID            string            `json:"userID"` // Acting user
	AuditFields

	// Lines are loaded separately; nil unless explicitly fetched.
	Lines []JournalLine `json:"lines,omitempty"`
}
