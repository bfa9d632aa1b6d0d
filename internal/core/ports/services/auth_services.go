package services

import (
	"context"

	"github.com/finandes/finops_backend/internal/dto"
)

// AuthSvcFacade authenticates users and issues access tokens.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed JWT.
	// Invalid credentials or an inactive user yield ErrUnauthorized.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
