package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finandes/finops_backend/internal/apperrors"
	"github.com/finandes/finops_backend/internal/core/domain"
	portsrepo "github.com/finandes/finops_backend/internal/core/ports/repositories"
	portssvc "github.com/finandes/finops_backend/internal/core/ports/services"
	"github.com/finandes/finops_backend/internal/dto"
	"github.com/finandes/finops_backend/internal/middleware"
)

// partyService manages counterparties created explicitly through the API.
// Postings create parties lazily on their own, bypassing this service.
type partyService struct {
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

// CreateParty creates a party with an explicit type. Names are unique; a
// second party with the same name is a duplicate.
func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, actorUserID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.partyRepo.FindPartyByName(ctx, req.Name); err == nil {
		return nil, fmt.Errorf("%w: party %q already exists", apperrors.ErrDuplicate, req.Name)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	partyType := domain.PartyType(req.Type)
	if partyType == "" {
		partyType = domain.PartyClient
	}

	now := time.Now().UTC()
	party := domain.Party{
		PartyID: uuid.NewString(),
		Name:    req.Name,
		Type:    partyType,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		logger.Error("Failed to save party", slog.String("name", req.Name), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Party created", slog.String("party_id", party.PartyID), slog.String("type", string(party.Type)))
	return &party, nil
}

// GetPartyByID retrieves a party by id.
func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	return s.partyRepo.FindPartyByID(ctx, partyID)
}

// UpdateParty edits the mutable fields of an existing party. The name is
// immutable because postings reference parties by name.
func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, actorUserID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		party.Type = domain.PartyType(*req.Type)
	}
	if req.Email != nil {
		party.Email = *req.Email
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	party.LastUpdatedAt = time.Now().UTC()
	party.LastUpdatedBy = actorUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		return nil, err
	}
	return party, nil
}

// ListParties returns parties, optionally filtered by type.
func (s *partyService) ListParties(ctx context.Context, partyType *domain.PartyType) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx)
	if err != nil {
		return nil, err
	}
	if partyType == nil {
		return parties, nil
	}
	filtered := make([]domain.Party, 0, len(parties))
	for _, p := range parties {
		if p.Type == *partyType {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}
