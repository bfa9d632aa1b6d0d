package services

import (
	"context"

	"github.com/finandes/finops_backend/internal/core/domain"
)

type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
