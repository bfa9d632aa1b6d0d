package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finandes/finops_backend/internal/apperrors"
	"github.com/finandes/finops_backend/internal/core/domain"
	"github.com/finandes/finops_backend/internal/utils/accounting"
)

// ErrNegativeNet rejects a posting whose deductions exceed the gross or
// nominal amount. It matches errors.Is against apperrors.ErrValidation.
var ErrNegativeNet = fmt.Errorf("%w: net amount cannot be negative", apperrors.ErrValidation)

// ruleContext carries everything a posting rule needs to emit journal lines:
// the operation being posted, the resolved chart accounts keyed by code, the
// acting user and the posting instant for audit fields.
type ruleContext struct {
	operationID string
	userID      string
	now         time.Time
	accounts    map[string]domain.Account
}

// newLine emits one journal leg against the account with the given chart
// code. The caller guarantees the code was resolved into rc.accounts.
func (rc ruleContext) newLine(accountCode, currencyCode string, amount decimal.Decimal, side domain.EntrySide) domain.JournalLine {
	acc := rc.accounts[accountCode]
	return domain.JournalLine{
		EntryID:      uuid.NewString(),
		OperationID:  rc.operationID,
		AccountID:    acc.AccountID,
		AccountCode:  accountCode,
		CurrencyCode: currencyCode,
		Amount:       amount,
		Side:         side,
		AuditFields: domain.AuditFields{
			CreatedAt:     rc.now,
			CreatedBy:     rc.userID,
			LastUpdatedAt: rc.now,
			LastUpdatedBy: rc.userID,
		},
	}
}

// resolveCommission picks the commission amount: a percentage of the gross
// wins over an absolute amount when both are present.
func resolveCommission(gross, amount decimal.Decimal, percentage *decimal.Decimal) decimal.Decimal {
	if percentage != nil && !percentage.IsZero() {
		return accounting.CommissionFromPercentage(gross, *percentage)
	}
	return amount
}

// buildFXLines produces the two legs of a currency exchange. A buy debits
// USD cash and credits ARS cash; a sell is the mirror image. The two legs
// are in different currencies, so they conserve value at the stated rate
// rather than balancing within one currency.
func buildFXLines(rc ruleContext, fxType domain.FXType, usdAmount, arsAmount decimal.Decimal) []domain.JournalLine {
	if fxType == domain.FXBuy {
		return []domain.JournalLine{
			rc.newLine(domain.AccountCashUSD, domain.CurrencyUSD, usdAmount, domain.Debit),
			rc.newLine(domain.AccountCashARS, domain.CurrencyARS, arsAmount, domain.Credit),
		}
	}
	return []domain.JournalLine{
		rc.newLine(domain.AccountCashARS, domain.CurrencyARS, arsAmount, domain.Debit),
		rc.newLine(domain.AccountCashUSD, domain.CurrencyUSD, usdAmount, domain.Credit),
	}
}

// buildPaymentLines produces the legs of a payment: debit the party's
// receivable/payable for the gross, debit commission expense for commission
// and expenses, credit cash for the full amount paid out. Debits equal
// credits by construction. Zero-amount legs are never emitted; the journal
// stores single-sided positive legs only.
func buildPaymentLines(rc ruleContext, partyAccountCode, currencyCode string, gross, commission, expenses decimal.Decimal) (totalPaid decimal.Decimal, lines []domain.JournalLine) {
	totalPaid = gross.Add(commission).Add(expenses)
	cashCode := cashAccountCode(currencyCode)

	if gross.IsPositive() {
		lines = append(lines, rc.newLine(partyAccountCode, currencyCode, gross, domain.Debit))
	}
	if commission.IsPositive() {
		lines = append(lines, rc.newLine(domain.AccountCommissionExpense, currencyCode, commission, domain.Debit))
	}
	if expenses.IsPositive() {
		lines = append(lines, rc.newLine(domain.AccountCommissionExpense, currencyCode, expenses, domain.Debit))
	}
	if totalPaid.IsPositive() {
		lines = append(lines, rc.newLine(cashCode, currencyCode, totalPaid, domain.Credit))
	}
	return totalPaid, lines
}

// buildReceiptLines produces the legs of a receipt: credit the party's
// account for the gross, debit cash for the net actually received, credit
// commission income for commission and for expenses charged on to the party.
// The credit side exceeds the debit side by commission plus expenses; the
// line set is recorded as-is.
func buildReceiptLines(rc ruleContext, partyAccountCode, currencyCode string, gross, commission, expenses decimal.Decimal) (netReceived decimal.Decimal, lines []domain.JournalLine, err error) {
	netReceived = gross.Sub(commission).Sub(expenses)
	if netReceived.IsNegative() {
		return decimal.Zero, nil, ErrNegativeNet
	}
	cashCode := cashAccountCode(currencyCode)

	if gross.IsPositive() {
		lines = append(lines, rc.newLine(partyAccountCode, currencyCode, gross, domain.Credit))
	}
	if netReceived.IsPositive() {
		lines = append(lines, rc.newLine(cashCode, currencyCode, netReceived, domain.Debit))
	}
	if commission.IsPositive() {
		lines = append(lines, rc.newLine(domain.AccountCommissionIncome, currencyCode, commission, domain.Credit))
	}
	if expenses.IsPositive() {
		lines = append(lines, rc.newLine(domain.AccountCommissionIncome, currencyCode, expenses, domain.Credit))
	}
	return netReceived, lines, nil
}

// buildChequeBuyLines produces the legs of a discounted cheque purchase:
// debit the cheque portfolio for the nominal, credit cash for the net paid,
// credit interest income and commission income for the discount components,
// debit commission expense for expenses. The debit side exceeds the credit
// side by commission income minus expenses; the line set is recorded as-is.
func buildChequeBuyLines(rc ruleContext, currencyCode string, nominal, interest, commissions, expenses decimal.Decimal) []domain.JournalLine {
	cashCode := cashAccountCode(currencyCode)
	netAmount := nominal.Sub(interest).Sub(commissions).Sub(expenses)

	var lines []domain.JournalLine
	if nominal.IsPositive() {
		lines = append(lines, rc.newLine(domain.AccountChequesHeld, currencyCode, nominal, domain.Debit))
	}
	if netAmount.IsPositive() {
		lines = append(lines, rc.newLine(cashCode, currencyCode, netAmount, domain.Credit))
	}
	if interest.IsPositive() {
		lines = append(lines, rc.newLine(domain.AccountInterestIncome, currencyCode, interest, domain.Credit))
	}
	if commissions.IsPositive() {
		lines = append(lines, rc.newLine(domain.AccountCommissionIncome, currencyCode, commissions, domain.Credit))
	}
	if expenses.IsPositive() {
		lines = append(lines, rc.newLine(domain.AccountCommissionExpense, currencyCode, expenses, domain.Debit))
	}
	return lines
}

// cashAccountCode selects the main cash account for a currency.
func cashAccountCode(currencyCode string) string {
	if currencyCode == domain.CurrencyUSD {
		return domain.AccountCashUSD
	}
	return domain.AccountCashARS
}
