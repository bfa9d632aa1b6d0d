package mapping

import (
	"github.com/finandes/finops_backend/internal/core/domain"
	"github.com/finandes/finops_backend/internal/models"
)

// ToModelCheque converts a domain Cheque to a model Cheque.
func ToModelCheque(d domain.Cheque) models.Cheque {
	return models.Cheque{
		ChequeID:                  d.ChequeID,
		OperationID:               d.OperationID,
		PartyID:                   d.PartyID,
		Bank:                      d.Bank,
		Number:                    d.Number,
		NominalAmount:             d.NominalAmount,
		IssueDate:                 d.IssueDate,
		DueDate:                   d.DueDate,
		ExpectedAccreditationDate: d.ExpectedAccreditationDate,
		InterestRate:              d.InterestRate,
		InterestBase:              d.InterestBase,
		Expenses:                  d.Expenses,
		Commissions:               d.Commissions,
		NetAmount:                 d.NetAmount,
		Status:                    string(d.Status),
		CurrencyCode:              d.CurrencyCode,
		AuditFields:               ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCheque converts a model Cheque to a domain Cheque.
func ToDomainCheque(m models.Cheque) domain.Cheque {
	return domain.Cheque{
		ChequeID:                  m.ChequeID,
		OperationID:               m.OperationID,
		PartyID:                   m.PartyID,
		Bank:                      m.Bank,
		Number:                    m.Number,
		NominalAmount:             m.NominalAmount,
		IssueDate:                 m.IssueDate,
		DueDate:                   m.DueDate,
		ExpectedAccreditationDate: m.ExpectedAccreditationDate,
		InterestRate:              m.InterestRate,
		InterestBase:              m.InterestBase,
		Expenses:                  m.Expenses,
		Commissions:               m.Commissions,
		NetAmount:                 m.NetAmount,
		Status:                    domain.ChequeStatus(m.Status),
		CurrencyCode:              m.CurrencyCode,
		AuditFields:               ToDomainAuditFields(m.AuditFields),
	}
}
