package domain

import "github.com/shopspring/decimal"

// FXType is the direction of a currency exchange.
type FXType string

const (
	FXBuy  FXType = "buy"
	FXSell FXType = "sell"
)

// OperationDetail is the tagged union of type-specific detail records.
// Exactly one detail record accompanies every operation header.
type OperationDetail interface {
	isOperationDetail()
}

// FXDetail carries the facts specific to an FX operation.
type FXDetail struct {
	OperationID string          `json:"operationID"`
	USDAmount   decimal.Decimal `json:"usdAmount"`
	ARSAmount   decimal.Decimal `json:"arsAmount"`
	FXType      FXType          `json:"fxType"`
}

// PaymentDetail carries the facts specific to a payment (money flowing out).
type PaymentDetail struct {
	OperationID          string           `json:"operationID"`
	GrossAmount          decimal.Decimal  `json:"grossAmount"`
	CommissionAmount     decimal.Decimal  `json:"commissionAmount"`
	CommissionPercentage *decimal.Decimal `json:"commissionPercentage,omitempty"`
	ExpensesAmount       decimal.Decimal  `json:"expensesAmount"`
	PaymentMethod        string           `json:"paymentMethod,omitempty"`
}

// ReceiptDetail carries the facts specific to a receipt (money flowing in).
type ReceiptDetail struct {
	OperationID          string           `json:"operationID"`
	GrossAmount          decimal.Decimal  `json:"grossAmount"`
	CommissionAmount     decimal.Decimal  `json:"commissionAmount"`
	CommissionPercentage *decimal.Decimal `json:"commissionPercentage,omitempty"`
	ExpensesAmount       decimal.Decimal  `json:"expensesAmount"`
	PaymentMethod        string           `json:"paymentMethod,omitempty"`
}

func (FXDetail) isOperationDetail()      {}
func (PaymentDetail) isOperationDetail() {}
func (ReceiptDetail) isOperationDetail() {}
func (Cheque) isOperationDetail()        {}
