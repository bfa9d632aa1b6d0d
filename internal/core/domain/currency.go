package domain

// Currency represents a supported currency. Immutable reference data.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string `json:"name"`         // e.g., "US Dollar"
	AuditFields
}

// The two currencies the posting rules know about.
const (
	CurrencyARS = "ARS"
	CurrencyUSD = "USD"
)
