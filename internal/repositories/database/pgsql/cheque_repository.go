package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finandes/finops_backend/internal/apperrors"
	"github.com/finandes/finops_backend/internal/core/domain"
	portsrepo "github.com/finandes/finops_backend/internal/core/ports/repositories"
	"github.com/finandes/finops_backend/internal/models"
	"github.com/finandes/finops_backend/internal/utils/mapping"
)

const chequeColumns = `cheque_id, operation_id, party_id, bank, number, nominal_amount,
		issue_date, due_date, expected_accreditation_date,
		interest_rate, interest_base, expenses, commissions, net_amount, status, currency_code,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxChequeRepository struct {
	db *pgxpool.Pool
}

func newPgxChequeRepository(db *pgxpool.Pool) portsrepo.ChequeRepositoryFacade {
	return &PgxChequeRepository{db: db}
}

var _ portsrepo.ChequeRepositoryFacade = (*PgxChequeRepository)(nil)

func scanCheque(row pgx.Row) (models.Cheque, error) {
	var m models.Cheque
	err := row.Scan(
		&m.ChequeID,
		&m.OperationID,
		&m.PartyID,
		&m.Bank,
		&m.Number,
		&m.NominalAmount,
		&m.IssueDate,
		&m.DueDate,
		&m.ExpectedAccreditationDate,
		&m.InterestRate,
		&m.InterestBase,
		&m.Expenses,
		&m.Commissions,
		&m.NetAmount,
		&m.Status,
		&m.CurrencyCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxChequeRepository) FindChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error) {
	query := `SELECT ` + chequeColumns + ` FROM cheques WHERE cheque_id = $1;`
	m, err := scanCheque(r.db.QueryRow(ctx, query, chequeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("cheque %s not found", chequeID))
		}
		return nil, fmt.Errorf("failed to find cheque by ID %s: %w", chequeID, err)
	}
	cheque := mapping.ToDomainCheque(m)
	return &cheque, nil
}

func (r *PgxChequeRepository) UpdateChequeStatus(ctx context.Context, chequeID string, status domain.ChequeStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE cheques
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE cheque_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, chequeID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update cheque status for "+chequeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("cheque %s not found", chequeID))
	}
	return nil
}

func (r *PgxChequeRepository) ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error) {
	query := `SELECT ` + chequeColumns + ` FROM cheques`
	var args []any
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY due_date ASC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cheques: %w", err)
	}
	defer rows.Close()

	var cheques []domain.Cheque
	for rows.Next() {
		m, err := scanCheque(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cheque row: %w", err)
		}
		cheques = append(cheques, mapping.ToDomainCheque(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cheque rows: %w", err)
	}
	return cheques, nil
}
