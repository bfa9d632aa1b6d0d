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

type PgxOperationTypeRepository struct {
	db *pgxpool.Pool
}

func newPgxOperationTypeRepository(db *pgxpool.Pool) portsrepo.OperationTypeRepositoryFacade {
	return &PgxOperationTypeRepository{db: db}
}

var _ portsrepo.OperationTypeRepositoryFacade = (*PgxOperationTypeRepository)(nil)

func (r *PgxOperationTypeRepository) FindOperationTypeByCode(ctx context.Context, code domain.OperationTypeCode) (*domain.OperationType, error) {
	query := `
		SELECT operation_type_id, code, description
		FROM operation_types
		WHERE code = $1;
	`
	var m models.OperationType
	err := r.db.QueryRow(ctx, query, string(code)).Scan(&m.OperationTypeID, &m.Code, &m.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("operation type %s not found", code))
		}
		return nil, fmt.Errorf("failed to find operation type by code %s: %w", code, err)
	}
	opType := mapping.ToDomainOperationType(m)
	return &opType, nil
}
