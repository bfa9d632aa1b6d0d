package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finandes/finops_backend/internal/apperrors"
	"github.com/finandes/finops_backend/internal/core/domain"
	portsrepo "github.com/finandes/finops_backend/internal/core/ports/repositories"
	"github.com/finandes/finops_backend/internal/models"
	"github.com/finandes/finops_backend/internal/utils/mapping"
)

type PgxOperationRepository struct {
	BaseRepository
}

// newPgxOperationRepository creates the repository for operation headers,
// journal entries and the type-specific detail tables.
func newPgxOperationRepository(pool *pgxpool.Pool) portsrepo.OperationRepositoryFacade {
	return &PgxOperationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OperationRepositoryFacade = (*PgxOperationRepository)(nil)

// SaveOperation writes a full posting in one database transaction: the lazily
// created party (when present), the operation header, the type-specific
// detail row and every journal entry. Journal entries are inserted in the
// order the posting rule produced them; the entry_seq sequence preserves
// that order for reads.
func (r *PgxOperationRepository) SaveOperation(ctx context.Context, op domain.Operation, lines []domain.JournalLine, detail domain.OperationDetail, newParty *domain.Party) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if newParty != nil {
		if err := insertParty(ctx, tx, *newParty); err != nil {
			return err
		}
	}

	modelOp := mapping.ToModelOperation(op)
	headerQuery := `
		INSERT INTO operations (
			operation_id, date, operation_type_id, party_id, amount, currency_code,
			exchange_rate, notes, user_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, (SELECT operation_type_id FROM operation_types WHERE code = $3), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelOp.OperationID,
		modelOp.Date,
		modelOp.OperationTypeCode,
		modelOp.PartyID,
		modelOp.Amount,
		modelOp.CurrencyCode,
		modelOp.ExchangeRate,
		modelOp.Notes,
		modelOp.UserID,
		modelOp.CreatedAt,
		modelOp.CreatedBy,
		modelOp.LastUpdatedAt,
		modelOp.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert operation "+modelOp.OperationID, err)
	}

	if err := insertDetail(ctx, tx, detail); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO journal_entries (entry_id, operation_id, account_id, currency_code, debit, credit, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, line := range lines {
		entry := mapping.ToModelJournalEntry(line)
		batch.Queue(entryQuery,
			entry.EntryID,
			entry.OperationID,
			entry.AccountID,
			entry.CurrencyCode,
			entry.Debit,
			entry.Credit,
			entry.CreatedAt,
			entry.CreatedBy,
			entry.LastUpdatedAt,
			entry.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert journal entries for operation "+modelOp.OperationID, err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to flush journal entry batch", err)
	}

	return r.Commit(ctx, tx)
}

// insertParty writes a lazily created party inside the posting transaction.
func insertParty(ctx context.Context, tx pgx.Tx, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (party_id, name, type, email, phone, address, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.PartyID,
		m.Name,
		m.Type,
		m.Email,
		m.Phone,
		m.Address,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert party "+m.PartyID, err)
	}
	return nil
}

// insertDetail writes the detail row matching the operation's type.
func insertDetail(ctx context.Context, tx pgx.Tx, detail domain.OperationDetail) error {
	switch d := detail.(type) {
	case domain.FXDetail:
		query := `
			INSERT INTO fx_details (operation_id, usd_amount, ars_amount, fx_type)
			VALUES ($1, $2, $3, $4);
		`
		if _, err := tx.Exec(ctx, query, d.OperationID, d.USDAmount, d.ARSAmount, string(d.FXType)); err != nil {
			return apperrors.NewAppError(500, "failed to insert fx detail for operation "+d.OperationID, err)
		}
	case domain.PaymentDetail:
		query := `
			INSERT INTO payment_details (operation_id, gross_amount, commission_amount, commission_percentage, expenses_amount, payment_method)
			VALUES ($1, $2, $3, $4, $5, $6);
		`
		if _, err := tx.Exec(ctx, query, d.OperationID, d.GrossAmount, d.CommissionAmount, d.CommissionPercentage, d.ExpensesAmount, d.PaymentMethod); err != nil {
			return apperrors.NewAppError(500, "failed to insert payment detail for operation "+d.OperationID, err)
		}
	case domain.ReceiptDetail:
		query := `
			INSERT INTO receipt_details (operation_id, gross_amount, commission_amount, commission_percentage, expenses_amount, payment_method)
			VALUES ($1, $2, $3, $4, $5, $6);
		`
		if _, err := tx.Exec(ctx, query, d.OperationID, d.GrossAmount, d.CommissionAmount, d.CommissionPercentage, d.ExpensesAmount, d.PaymentMethod); err != nil {
			return apperrors.NewAppError(500, "failed to insert receipt detail for operation "+d.OperationID, err)
		}
	case domain.Cheque:
		m := mapping.ToModelCheque(d)
		query := `
			INSERT INTO cheques (
				cheque_id, operation_id, party_id, bank, number, nominal_amount,
				issue_date, due_date, expected_accreditation_date,
				interest_rate, interest_base, expenses, commissions, net_amount, status, currency_code,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
		`
		_, err := tx.Exec(ctx, query,
			m.ChequeID,
			m.OperationID,
			m.PartyID,
			m.Bank,
			m.Number,
			m.NominalAmount,
			m.IssueDate,
			m.DueDate,
			m.ExpectedAccreditationDate,
			m.InterestRate,
			m.InterestBase,
			m.Expenses,
			m.Commissions,
			m.NetAmount,
			m.Status,
			m.CurrencyCode,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert cheque for operation "+m.OperationID, err)
		}
	default:
		return apperrors.NewAppError(500, "unknown operation detail type", nil)
	}
	return nil
}

func (r *PgxOperationRepository) FindOperationByID(ctx context.Context, operationID string) (*domain.Operation, error) {
	query := `
		SELECT o.operation_id, o.date, ot.code, o.party_id, o.amount, o.currency_code,
			o.exchange_rate, o.notes, o.user_id,
			o.created_at, o.created_by, o.last_updated_at, o.last_updated_by
		FROM operations o
		JOIN operation_types ot ON o.operation_type_id = ot.operation_type_id
		WHERE o.operation_id = $1;
	`
	m, err := scanOperation(r.Pool.QueryRow(ctx, query, operationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("operation %s not found", operationID))
		}
		return nil, fmt.Errorf("failed to find operation by ID %s: %w", operationID, err)
	}
	op := mapping.ToDomainOperation(m)
	return &op, nil
}

func scanOperation(row pgx.Row) (models.Operation, error) {
	var m models.Operation
	err := row.Scan(
		&m.OperationID,
		&m.Date,
		&m.OperationTypeCode,
		&m.PartyID,
		&m.Amount,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.Notes,
		&m.UserID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxOperationRepository) FindLinesByOperationID(ctx context.Context, operationID string) ([]domain.JournalLine, error) {
	query := `
		SELECT je.entry_id, je.entry_seq, je.operation_id, je.account_id, a.code, je.currency_code,
			je.debit, je.credit,
			je.created_at, je.created_by, je.last_updated_at, je.last_updated_by
		FROM journal_entries je
		JOIN accounts a ON je.account_id = a.account_id
		WHERE je.operation_id = $1
		ORDER BY je.entry_seq ASC;
	`
	rows, err := r.Pool.Query(ctx, query, operationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries for operation %s: %w", operationID, err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var m models.JournalEntry
		err := rows.Scan(
			&m.EntryID,
			&m.EntrySeq,
			&m.OperationID,
			&m.AccountID,
			&m.AccountCode,
			&m.CurrencyCode,
			&m.Debit,
			&m.Credit,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal entry rows: %w", err)
	}
	return mapping.ToDomainJournalLineSlice(entries), nil
}

func (r *PgxOperationRepository) ListOperations(ctx context.Context, limit int) ([]domain.Operation, error) {
	query := `
		SELECT o.operation_id, o.date, ot.code, o.party_id, o.amount, o.currency_code,
			o.exchange_rate, o.notes, o.user_id,
			o.created_at, o.created_by, o.last_updated_at, o.last_updated_by
		FROM operations o
		JOIN operation_types ot ON o.operation_type_id = ot.operation_type_id
		ORDER BY o.date DESC, o.created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	defer rows.Close()

	var ops []domain.Operation
	for rows.Next() {
		m, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operation row: %w", err)
		}
		ops = append(ops, mapping.ToDomainOperation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read operation rows: %w", err)
	}
	return ops, nil
}
