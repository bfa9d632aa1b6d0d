package dto

import (
	"github.com/finandes/finops_backend/internal/core/domain"
)

// CreatePartyRequest creates a counterparty explicitly (as opposed to the
// lazy creation performed by postings, which always yields a client).
type CreatePartyRequest struct {
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=client supplier"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdatePartyRequest edits contact fields of an existing party.
type UpdatePartyRequest struct {
	Type    *string `json:"type" binding:"omitempty,oneof=client supplier"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// PartyResponse is the outward representation of a party.
type PartyResponse struct {
	PartyID string `json:"partyID"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ToPartyResponse converts a domain Party to its response DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID: p.PartyID,
		Name:    p.Name,
		Type:    string(p.Type),
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
	}
}

// ToPartyResponses converts a slice of parties.
func ToPartyResponses(parties []domain.Party) []PartyResponse {
	responses := make([]PartyResponse, len(parties))
	for i := range parties {
		responses[i] = ToPartyResponse(&parties[i])
	}
	return responses
}
