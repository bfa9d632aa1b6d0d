package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/finandes/finops_backend/internal/core/domain"
	"github.com/finandes/finops_backend/internal/models"
)

// ToModelOperation converts a domain Operation to a model Operation.
func ToModelOperation(d domain.Operation) models.Operation {
	return models.Operation{
		OperationID:       d.OperationID,
		Date:              d.Date,
		OperationTypeCode: string(d.OperationTypeCode),
		PartyID:           d.PartyID,
		Amount:            d.Amount,
		CurrencyCode:      d.CurrencyCode,
		ExchangeRate:      d.ExchangeRate,
		Notes:             d.Notes,
		UserID:            d.UserID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOperation converts a model Operation to a domain Operation.
func ToDomainOperation(m models.Operation) domain.Operation {
	return domain.Operation{
		OperationID:       m.OperationID,
		Date:              m.Date,
		OperationTypeCode: domain.OperationTypeCode(m.OperationTypeCode),
		PartyID:           m.PartyID,
		Amount:            m.Amount,
		CurrencyCode:      m.CurrencyCode,
		ExchangeRate:      m.ExchangeRate,
		Notes:             m.Notes,
		UserID:            m.UserID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntry converts a domain JournalLine to the persisted
// debit/credit column layout: exactly one of the two columns is nonzero.
func ToModelJournalEntry(d domain.JournalLine) models.JournalEntry {
	entry := models.JournalEntry{
		EntryID:      d.EntryID,
		OperationID:  d.OperationID,
		AccountID:    d.AccountID,
		AccountCode:  d.AccountCode,
		CurrencyCode: d.CurrencyCode,
		Debit:        decimal.Zero,
		Credit:       decimal.Zero,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.Side == domain.Debit {
		entry.Debit = d.Amount
	} else {
		entry.Credit = d.Amount
	}
	return entry
}

// ToDomainJournalLine converts a model JournalEntry back to the amount+side
// representation used by the core.
func ToDomainJournalLine(m models.JournalEntry) domain.JournalLine {
	line := domain.JournalLine{
		EntryID:      m.EntryID,
		OperationID:  m.OperationID,
		AccountID:    m.AccountID,
		AccountCode:  m.AccountCode,
		CurrencyCode: m.CurrencyCode,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.Debit.IsPositive() {
		line.Amount = m.Debit
		line.Side = domain.Debit
	} else {
		line.Amount = m.Credit
		line.Side = domain.Credit
	}
	return line
}

// ToDomainJournalLineSlice converts journal entry rows preserving order.
func ToDomainJournalLineSlice(ms []models.JournalEntry) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		lines[i] = ToDomainJournalLine(m)
	}
	return lines
}
