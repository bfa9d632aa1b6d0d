package domain

// PartyType classifies a counterparty.
type PartyType string

const (
	PartyClient   PartyType = "client"
	PartySupplier PartyType = "supplier"
)

// Party is a counterparty (client or supplier). Parties are created lazily:
// a posting referencing an unknown party name creates it as a client.
type Party struct {
	PartyID string    `json:"partyID"` // Primary Key (UUID)
	Name    string    `json:"name"`
	Type    PartyType `json:"type"`
	Email   string    `json:"email,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Address string    `json:"address,omitempty"`
	AuditFields
}

// ReceivablePayableCode returns the ledger account code that carries this
// party's balance in the given currency: the receivable account for clients,
// the payable account for suppliers.
func (p Party) ReceivablePayableCode(currencyCode string) string {
	if p.Type == PartySupplier {
		if currencyCode == CurrencyUSD {
			return AccountSuppliersUSD
		}
		return AccountSuppliersARS
	}
	if currencyCode == CurrencyUSD {
		return AccountClientsUSD
	}
	return AccountClientsARS
}
