package models

// AccountType mirrors the account_type column enum.
type AccountType string

// Account represents a row of the accounts table.
type Account struct {
	AccountID           string      `db:"account_id"`
	Code                string      `db:"code"`
	Name                string      `db:"name"`
	AccountType         AccountType `db:"account_type"`
	ParentAccountID     *string     `db:"parent_account_id"`
	IsCash              bool        `db:"is_cash"`
	IsClientAccount     bool        `db:"is_client_account"`
	IsFXResult          bool        `db:"is_fx_result"`
	IsCommissionIncome  bool        `db:"is_commission_income"`
	IsCommissionExpense bool        `db:"is_commission_expense"`
	AuditFields
}

// Currency represents a row of the currencies table.
type Currency struct {
	CurrencyCode string `db:"code"`
	Name         string `db:"name"`
	AuditFields
}

// OperationType represents a row of the operation_types table.
type OperationType struct {
	OperationTypeID string `db:"operation_type_id"`
	Code            string `db:"code"`
	Description     string `db:"description"`
}
