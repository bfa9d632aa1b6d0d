package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// CreateFXRequest posts a currency exchange (buy or sell of USD against ARS).
type CreateFXRequest struct {
	Date         time.Time       `json:"date" binding:"required"`
	PartyName    string          `json:"partyName" binding:"required"`
	FXType       string          `json:"fxType" binding:"required,oneof=buy sell"`
	USDAmount    decimal.Decimal `json:"usdAmount" binding:"required"`
	ExchangeRate decimal.Decimal `json:"exchangeRate" binding:"required"`
	Notes        string          `json:"notes"`
}

// CreateFXResponse returns the new operation id and the derived ARS amount.
type CreateFXResponse struct {
	OperationID string          `json:"operationID"`
	ARSAmount   decimal.Decimal `json:"arsAmount"`
}

// CreatePaymentRequest posts money flowing out to a party.
// Commission may be given as an absolute amount or a percentage of the gross;
// the percentage wins when both are present.
type CreatePaymentRequest struct {
	Date                 time.Time        `json:"date" binding:"required"`
	PartyName            string           `json:"partyName" binding:"required"`
	Currency             string           `json:"currency" binding:"required,oneof=ARS USD"`
	GrossAmount          decimal.Decimal  `json:"grossAmount"`
	CommissionAmount     decimal.Decimal  `json:"commissionAmount"`
	CommissionPercentage *decimal.Decimal `json:"commissionPercentage"`
	ExpensesAmount       decimal.Decimal  `json:"expensesAmount"`
	PaymentMethod        string           `json:"paymentMethod"`
	Notes                string           `json:"notes"`
}

// CreatePaymentResponse returns the new operation id and the total cash out.
type CreatePaymentResponse struct {
	OperationID string          `json:"operationID"`
	TotalPaid   decimal.Decimal `json:"totalPaid"`
}

// CreateReceiptRequest posts money flowing in from a party. Same inputs as a
// payment.
type CreateReceiptRequest struct {
	Date                 time.Time        `json:"date" binding:"required"`
	PartyName            string           `json:"partyName" binding:"required"`
	Currency             string           `json:"currency" binding:"required,oneof=ARS USD"`
	GrossAmount          decimal.Decimal  `json:"grossAmount"`
	CommissionAmount     decimal.Decimal  `json:"commissionAmount"`
	CommissionPercentage *decimal.Decimal `json:"commissionPercentage"`
	ExpensesAmount       decimal.Decimal  `json:"expensesAmount"`
	PaymentMethod        string           `json:"paymentMethod"`
	Notes                string           `json:"notes"`
}

// CreateReceiptResponse returns the new operation id and the net cash in.
type CreateReceiptResponse struct {
	OperationID string          `json:"operationID"`
	NetReceived decimal.Decimal `json:"netReceived"`
}

// CreateChequeBuyRequest posts the discounted purchase of a third-party cheque.
type CreateChequeBuyRequest struct {
	Date                      time.Time       `json:"date" binding:"required"`
	PartyName                 string          `json:"partyName" binding:"required"`
	Currency                  string          `json:"currency" binding:"required,oneof=ARS USD"`
	Bank                      string          `json:"bank" binding:"required"`
	Number                    string          `json:"number" binding:"required"`
	NominalAmount             decimal.Decimal `json:"nominalAmount" binding:"required"`
	DueDate                   time.Time       `json:"dueDate" binding:"required"`
	IssueDate                 *time.Time      `json:"issueDate"`
	ExpectedAccreditationDate *time.Time      `json:"expectedAccreditationDate"`
	InterestRate              decimal.Decimal `json:"interestRate"` // Annual, as a decimal (0.05 = 5%)
	InterestBase              int             `json:"interestBase"`
	CommissionsAmount         decimal.Decimal `json:"commissionsAmount"`
	ExpensesAmount            decimal.Decimal `json:"expensesAmount"`
	Notes                     string          `json:"notes"`
}

// CreateChequeBuyResponse returns the derived discount figures.
type CreateChequeBuyResponse struct {
	OperationID       string          `json:"operationID"`
	ChequeID          string          `json:"chequeID"`
	InterestAmount    decimal.Decimal `json:"interestAmount"`
	CommissionsAmount decimal.Decimal `json:"commissionsAmount"`
	ExpensesAmount    decimal.Decimal `json:"expensesAmount"`
	NetAmount         decimal.Decimal `json:"netAmount"`
}

// JournalLineResponse is one leg of an operation as returned to clients,
// in the persisted debit/credit layout.
type JournalLineResponse struct {
	EntryID     string          `json:"entryID"`
	AccountCode string          `json:"accountCode"`
	Currency    string          `json:"currency"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// OperationResponse is an operation header with its journal lines.
type OperationResponse struct {
	OperationID   string                `json:"operationID"`
	Date          time.Time             `json:"date"`
	OperationType string                `json:"operationType"`
	PartyID       *string               `json:"partyID,omitempty"`
	Amount        decimal.Decimal       `json:"amount"`
	Currency      string                `json:"currency"`
	ExchangeRate  *decimal.Decimal      `json:"exchangeRate,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	Lines         []JournalLineResponse `json:"lines,omitempty"`
}

// ToOperationResponse converts an operation and its lines to the response DTO.
func ToOperationResponse(op *domain.Operation) OperationResponse {
	resp := OperationResponse{
		OperationID:   op.OperationID,
		Date:          op.Date,
		OperationType: string(op.OperationTypeCode),
		PartyID:       op.PartyID,
		Amount:        op.Amount,
		Currency:      op.CurrencyCode,
		ExchangeRate:  op.ExchangeRate,
		Notes:         op.Notes,
	}
	for _, line := range op.Lines {
		resp.Lines = append(resp.Lines, JournalLineResponse{
			EntryID:     line.EntryID,
			AccountCode: line.AccountCode,
			Currency:    line.CurrencyCode,
			Debit:       line.DebitAmount(),
			Credit:      line.CreditAmount(),
		})
	}
	return resp
}
