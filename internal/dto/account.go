package dto

import (
	"github.com/finandes/finops_backend/internal/core/domain"
)

// AccountResponse is the outward representation of a chart-of-accounts line.
type AccountResponse struct {
	AccountID           string `json:"accountID"`
	Code                string `json:"code"`
	Name                string `json:"name"`
	AccountType         string `json:"accountType"`
	IsCash              bool   `json:"isCash"`
	IsClientAccount     bool   `json:"isClientAccount"`
	IsFXResult          bool   `json:"isFXResult"`
	IsCommissionIncome  bool   `json:"isCommissionIncome"`
	IsCommissionExpense bool   `json:"isCommissionExpense"`
}

// ToAccountResponse converts a domain Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:           a.AccountID,
		Code:                a.Code,
		Name:                a.Name,
		AccountType:         string(a.AccountType),
		IsCash:              a.IsCash,
		IsClientAccount:     a.IsClientAccount,
		IsFXResult:          a.IsFXResult,
		IsCommissionIncome:  a.IsCommissionIncome,
		IsCommissionExpense: a.IsCommissionExpense,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}

// CurrencyResponse is the outward representation of a currency.
type CurrencyResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ToCurrencyResponses converts a slice of currencies.
func ToCurrencyResponses(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		responses[i] = CurrencyResponse{Code: c.CurrencyCode, Name: c.Name}
	}
	return responses
}
