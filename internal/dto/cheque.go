package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// UpdateChequeStatusRequest moves a cheque to a new lifecycle state.
type UpdateChequeStatusRequest struct {
	Status string `json:"status" binding:"required,chequestatus"`
}

// ChequeResponse is the outward representation of a cheque.
type ChequeResponse struct {
	ChequeID                  string          `json:"chequeID"`
	OperationID               string          `json:"operationID"`
	PartyID                   string          `json:"partyID"`
	Bank                      string          `json:"bank"`
	Number                    string          `json:"number"`
	NominalAmount             decimal.Decimal `json:"nominalAmount"`
	IssueDate                 *time.Time      `json:"issueDate,omitempty"`
	DueDate                   time.Time       `json:"dueDate"`
	ExpectedAccreditationDate *time.Time      `json:"expectedAccreditationDate,omitempty"`
	InterestRate              decimal.Decimal `json:"interestRate"`
	InterestBase              int             `json:"interestBase"`
	Expenses                  decimal.Decimal `json:"expenses"`
	Commissions               decimal.Decimal `json:"commissions"`
	NetAmount                 decimal.Decimal `json:"netAmount"`
	Status                    string          `json:"status"`
	Currency                  string          `json:"currency"`
}

// ToChequeResponse converts a domain Cheque to its response DTO.
func ToChequeResponse(c *domain.Cheque) ChequeResponse {
	return ChequeResponse{
		ChequeID:                  c.ChequeID,
		OperationID:               c.OperationID,
		PartyID:                   c.PartyID,
		Bank:                      c.Bank,
		Number:                    c.Number,
		NominalAmount:             c.NominalAmount,
		IssueDate:                 c.IssueDate,
		DueDate:                   c.DueDate,
		ExpectedAccreditationDate: c.ExpectedAccreditationDate,
		InterestRate:              c.InterestRate,
		InterestBase:              c.InterestBase,
		Expenses:                  c.Expenses,
		Commissions:               c.Commissions,
		NetAmount:                 c.NetAmount,
		Status:                    string(c.Status),
		Currency:                  c.CurrencyCode,
	}
}

// ToChequeResponses converts a slice of cheques.
func ToChequeResponses(cheques []domain.Cheque) []ChequeResponse {
	responses := make([]ChequeResponse, len(cheques))
	for i := range cheques {
		responses[i] = ToChequeResponse(&cheques[i])
	}
	return responses
}
