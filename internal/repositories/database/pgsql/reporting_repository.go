package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finandes/finops_backend/internal/core/domain"
	portsrepo "github.com/finandes/finops_backend/internal/core/ports/repositories"
)

type ReportingRepository struct {
	db *pgxpool.Pool
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &ReportingRepository{db: db}
}

var _ portsrepo.ReportingRepositoryFacade = (*ReportingRepository)(nil)

// AccountPosition aggregates sum(debit) - sum(credit) over every journal
// entry of the account with the given chart code in the given currency.
func (r *ReportingRepository) AccountPosition(ctx context.Context, accountCode, currencyCode string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(je.debit) - SUM(je.credit), 0)
		FROM journal_entries je
		JOIN accounts a ON je.account_id = a.account_id
		WHERE a.code = $1 AND je.currency_code = $2;
	`
	var position decimal.Decimal
	if err := r.db.QueryRow(ctx, query, accountCode, currencyCode).Scan(&position); err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute position for account %s/%s: %w", accountCode, currencyCode, err)
	}
	return position, nil
}

// ClientLedgerRows fetches the journal legs against a party's
// receivable/payable accounts, chronologically, with entry insertion order
// breaking date ties. Running balances are computed by the caller.
func (r *ReportingRepository) ClientLedgerRows(ctx context.Context, q portsrepo.LedgerQuery) ([]domain.LedgerRow, error) {
	query := `
		SELECT o.date, ot.code, o.notes, je.debit, je.credit, je.currency_code
		FROM journal_entries je
		JOIN accounts a ON je.account_id = a.account_id
		JOIN operations o ON je.operation_id = o.operation_id
		JOIN operation_types ot ON o.operation_type_id = ot.operation_type_id
		WHERE a.code = ANY($1) AND o.party_id = $2
	`
	args := []any{q.AccountCodes, q.PartyID}
	if q.FromDate != nil {
		args = append(args, *q.FromDate)
		query += ` AND o.date >= $` + strconv.Itoa(len(args))
	}
	if q.ToDate != nil {
		args = append(args, *q.ToDate)
		query += ` AND o.date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY o.date ASC, je.entry_seq ASC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger rows: %w", err)
	}
	defer rows.Close()

	var ledger []domain.LedgerRow
	for rows.Next() {
		var row domain.LedgerRow
		var typeCode string
		if err := rows.Scan(&row.Date, &typeCode, &row.Description, &row.Debit, &row.Credit, &row.CurrencyCode); err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		row.OperationTypeCode = domain.OperationTypeCode(typeCode)
		ledger = append(ledger, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger rows: %w", err)
	}
	return ledger, nil
}
