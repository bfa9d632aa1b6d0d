package services

import (
	"context"

	"github.com/finandes/finops_backend/internal/core/domain"
	"github.com/finandes/finops_backend/internal/dto"
)

type PartySvcFacade interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, actorUserID string) (*domain.Party, error)
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, actorUserID string) (*domain.Party, error)
	ListParties(ctx context.Context, partyType *domain.PartyType) ([]domain.Party, error)
}
