package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cheque represents a row of the cheques table.
type Cheque struct {
	ChequeID                  string          `db:"cheque_id"`
	OperationID               string          `db:"operation_id"`
	PartyID                   string          `db:"party_id"`
	Bank                      string          `db:"bank"`
	Number                    string          `db:"number"`
	NominalAmount             decimal.Decimal `db:"nominal_amount"`
	IssueDate                 *time.Time      `db:"issue_date"`
	DueDate                   time.Time       `db:"due_date"`
	ExpectedAccreditationDate *time.Time      `db:"expected_accreditation_date"`
	InterestRate              decimal.Decimal `db:"interest_rate"`
	InterestBase              int             `db:"interest_base"`
	Expenses                  decimal.Decimal `db:"expenses"`
	Commissions               decimal.Decimal `db:"commissions"`
	NetAmount                 decimal.Decimal `db:"net_amount"`
	Status                    string          `db:"status"`
	CurrencyCode              string          `db:"currency_code"`
	AuditFields
}
