package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/finandes/finops_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:       newPgxAccountRepository(dbPool),
		CurrencyRepo:      newPgxCurrencyRepository(dbPool),
		OperationTypeRepo: newPgxOperationTypeRepository(dbPool),
		PartyRepo:         newPgxPartyRepository(dbPool),
		OperationRepo:     newPgxOperationRepository(dbPool),
		ChequeRepo:        newPgxChequeRepository(dbPool),
		ReportingRepo:     newReportingRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
	}
}
