package repositories

import (
	"context"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// UserRepositoryFacade defines read access to application users.
// User provisioning happens in migrations; the core only authenticates.
type UserRepositoryFacade interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
