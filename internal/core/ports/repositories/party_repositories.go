package repositories

import (
	"context"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// PartyReader defines read operations for counterparty data.
type PartyReader interface {
	// FindPartyByID retrieves a party by its identifier.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// FindPartyByName performs an exact, case-sensitive name match.
	// Returns apperrors.ErrNotFound on miss; no fuzzy matching.
	FindPartyByName(ctx context.Context, name string) (*domain.Party, error)

	// ListParties returns all parties ordered by name.
	ListParties(ctx context.Context) ([]domain.Party, error)
}

// PartyWriter defines write operations for counterparty data.
type PartyWriter interface {
	SaveParty(ctx context.Context, party domain.Party) error
	UpdateParty(ctx context.Context, party domain.Party) error
}

// PartyRepositoryFacade combines all party repository interfaces.
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}
