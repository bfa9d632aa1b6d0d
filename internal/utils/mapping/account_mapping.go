package mapping

import (
	"github.com/finandes/finops_backend/internal/core/domain"
	"github.com/finandes/finops_backend/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:           m.AccountID,
		Code:                m.Code,
		Name:                m.Name,
		AccountType:         domain.AccountType(m.AccountType),
		ParentAccountID:     m.ParentAccountID,
		IsCash:              m.IsCash,
		IsClientAccount:     m.IsClientAccount,
		IsFXResult:          m.IsFXResult,
		IsCommissionIncome:  m.IsCommissionIncome,
		IsCommissionExpense: m.IsCommissionExpense,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Name:         m.Name,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOperationType converts a model OperationType to its domain form.
func ToDomainOperationType(m models.OperationType) domain.OperationType {
	return domain.OperationType{
		OperationTypeID: m.OperationTypeID,
		Code:            domain.OperationTypeCode(m.Code),
		Description:     m.Description,
	}
}
