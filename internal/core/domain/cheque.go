package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChequeStatus is the lifecycle state of a discounted cheque.
type ChequeStatus string

const (
	ChequePending    ChequeStatus = "pending"
	ChequeAccredited ChequeStatus = "accredited"
	ChequeExpired    ChequeStatus = "expired"
	ChequeRejected   ChequeStatus = "rejected"
	ChequeCancelled  ChequeStatus = "cancelled"
)

// ValidChequeStatus reports whether s is one of the five recognized states.
func ValidChequeStatus(s ChequeStatus) bool {
	switch s {
	case ChequePending, ChequeAccredited, ChequeExpired, ChequeRejected, ChequeCancelled:
		return true
	}
	return false
}

// Cheque is a third-party cheque acquired before its due date at a value
// discounted for interest, commission and expenses. It is the detail record
// of a CHEQUE_BUY operation; its status evolves independently of the journal.
type Cheque struct {
	ChequeID                  string          `json:"chequeID"` // Primary Key (UUID)
	OperationID               string          `json:"operationID"`
	PartyID                   string          `json:"partyID"`
	Bank                      string          `json:"bank"`
	Number                    string          `json:"number"`
	NominalAmount             decimal.Decimal `json:"nominalAmount"`
	IssueDate                 *time.Time      `json:"issueDate,omitempty"`
	DueDate                   time.Time       `json:"dueDate"`
	ExpectedAccreditationDate *time.Time      `json:"expectedAccreditationDate,omitempty"`
	InterestRate              decimal.Decimal `json:"interestRate"` // Annual, as a decimal (0.05 = 5%)
	InterestBase              int             `json:"interestBase"` // Day-count base, 365
	Expenses                  decimal.Decimal `json:"expenses"`
	Commissions               decimal.Decimal `json:"commissions"`
	NetAmount                 decimal.Decimal `json:"netAmount"`
	Status                    ChequeStatus    `json:"status"`
	CurrencyCode              string          `json:"currencyCode"`
	AuditFields
}
