package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Well-known account codes from the seeded chart of accounts. The posting
// engine addresses accounts exclusively through these codes so the chart can
// be reconfigured without touching posting logic.
const (
	AccountCashARS           = "1010"
	AccountCashUSD           = "1020"
	AccountBankARS           = "1030"
	AccountBankUSD           = "1040"
	AccountClientsARS        = "1100"
	AccountClientsUSD        = "1101"
	AccountChequesHeld       = "1200"
	AccountSuppliersARS      = "2100"
	AccountSuppliersUSD      = "2101"
	AccountFXResult          = "5100"
	AccountCommissionIncome  = "5200"
	AccountCommissionExpense = "5300"
	AccountInterestIncome    = "5400"
	AccountInterestExpense   = "5500"
)

// Account represents a single line of the chart of accounts.
// Accounts are seeded once and are read-only from the posting engine's
// perspective; the behavior flags drive account selection in posting rules.
type Account struct {
	AccountID           string      `json:"accountID"` // Primary Key (UUID)
	Code                string      `json:"code"`      // Stable chart code, unique (e.g. "1020")
	Name                string      `json:"name"`
	AccountType         AccountType `json:"accountType"`
	ParentAccountID     *string     `json:"parentAccountID,omitempty"`
	IsCash              bool        `json:"isCash"`
	IsClientAccount     bool        `json:"isClientAccount"`
	IsFXResult          bool        `json:"isFXResult"`
	IsCommissionIncome  bool        `json:"isCommissionIncome"`
	IsCommissionExpense bool        `json:"isCommissionExpense"`
	AuditFields
}
