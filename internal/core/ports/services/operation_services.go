package services

import (
	"context"

	"github.com/finandes/finops_backend/internal/dto"
)

// OperationSvcFacade is the posting engine's surface: one operation per
// posting rule, each taking a validated request and the authenticated actor,
// returning the new operation id plus rule-specific derived figures.
type OperationSvcFacade interface {
	CreateFX(ctx context.Context, req dto.CreateFXRequest, actorUserID string) (*dto.CreateFXResponse, error)
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, actorUserID string) (*dto.CreatePaymentResponse, error)
	CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, actorUserID string) (*dto.CreateReceiptResponse, error)
	CreateChequeBuy(ctx context.Context, req dto.CreateChequeBuyRequest, actorUserID string) (*dto.CreateChequeBuyResponse, error)

	GetOperationByID(ctx context.Context, operationID string) (*dto.OperationResponse, error)
	ListOperations(ctx context.Context, limit int) ([]dto.OperationResponse, error)
}
