package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finandes/finops_backend/internal/apperrors"
	"github.com/finandes/finops_backend/internal/core/domain"
	portsrepo "github.com/finandes/finops_backend/internal/core/ports/repositories"
	portssvc "github.com/finandes/finops_backend/internal/core/ports/services"
	"github.com/finandes/finops_backend/internal/dto"
	"github.com/finandes/finops_backend/internal/middleware"
	"github.com/finandes/finops_backend/internal/utils/accounting"
)

// operationService is the posting engine. Every Create method derives the
// journal lines for its operation type through a posting rule, then hands the
// whole posting to the repository for a single atomic write.
type operationService struct {
	operationRepo     portsrepo.OperationRepositoryFacade
	accountRepo       portsrepo.AccountRepositoryFacade
	partyRepo         portsrepo.PartyRepositoryFacade
	operationTypeRepo portsrepo.OperationTypeRepositoryFacade
}

// NewOperationService creates a new OperationService.
func NewOperationService(operationRepo portsrepo.OperationRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade, operationTypeRepo portsrepo.OperationTypeRepositoryFacade) portssvc.OperationSvcFacade {
	return &operationService{
		operationRepo:     operationRepo,
		accountRepo:       accountRepo,
		partyRepo:         partyRepo,
		operationTypeRepo: operationTypeRepo,
	}
}

var _ portssvc.OperationSvcFacade = (*operationService)(nil)

// resolveParty finds a party by exact name. On a miss it fabricates a new
// client party and returns it as newParty so the repository can insert it
// inside the posting transaction.
func (s *operationService) resolveParty(ctx context.Context, name string, actorUserID string, now time.Time) (party *domain.Party, newParty *domain.Party, err error) {
	party, err = s.partyRepo.FindPartyByName(ctx, name)
	if err == nil {
		return party, nil, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, fmt.Errorf("failed to resolve party %q: %w", name, err)
	}

	created := domain.Party{
		PartyID: uuid.NewString(),
		Name:    name,
		Type:    domain.PartyClient,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	return &created, &created, nil
}

// resolveOperationType confirms the operation type exists in the seeded
// catalog before the posting references it.
func (s *operationService) resolveOperationType(ctx context.Context, code domain.OperationTypeCode) error {
	if _, err := s.operationTypeRepo.FindOperationTypeByCode(ctx, code); err != nil {
		return fmt.Errorf("failed to resolve operation type %s: %w", code, err)
	}
	return nil
}

// resolveAccounts fetches the chart accounts for the posting rule about to
// run. Every code must exist in the seeded chart.
func (s *operationService) resolveAccounts(ctx context.Context, codes ...string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, code := range codes {
		if _, ok := accounts[code]; !ok {
			return nil, fmt.Errorf("%w: account code %s", apperrors.ErrNotFound, code)
		}
	}
	return accounts, nil
}

func validatePositive(name string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return fmt.Errorf("%w: %s must be positive", apperrors.ErrValidation, name)
	}
	return nil
}

func validateNonNegative(name string, d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, name)
	}
	return nil
}

// CreateFX posts a currency exchange. The ARS amount is derived from the USD
// amount at the stated rate; the operation header is denominated in USD.
func (s *operationService) CreateFX(ctx context.Context, req dto.CreateFXRequest, actorUserID string) (*dto.CreateFXResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validatePositive("usdAmount", req.USDAmount); err != nil {
		return nil, err
	}
	if err := validatePositive("exchangeRate", req.ExchangeRate); err != nil {
		return nil, err
	}
	fxType := domain.FXType(req.FXType)
	if fxType != domain.FXBuy && fxType != domain.FXSell {
		return nil, fmt.Errorf("%w: fxType must be %q or %q", apperrors.ErrValidation, domain.FXBuy, domain.FXSell)
	}

	now := time.Now().UTC()
	party, newParty, err := s.resolveParty(ctx, req.PartyName, actorUserID, now)
	if err != nil {
		return nil, err
	}

	accounts, err := s.resolveAccounts(ctx, domain.AccountCashARS, domain.AccountCashUSD)
	if err != nil {
		return nil, err
	}

	typeCode := domain.OpFXBuy
	if fxType == domain.FXSell {
		typeCode = domain.OpFXSell
	}
	if err := s.resolveOperationType(ctx, typeCode); err != nil {
		return nil, err
	}

	arsAmount := accounting.ConvertAtRate(req.USDAmount, req.ExchangeRate)

	operationID := uuid.NewString()
	rate := req.ExchangeRate
	op := domain.Operation{
		OperationID:       operationID,
		Date:              req.Date,
		OperationTypeCode: typeCode,
		PartyID:           &party.PartyID,
		Amount:            req.USDAmount,
		CurrencyCode:      domain.CurrencyUSD,
		ExchangeRate:      &rate,
		Notes:             req.Notes,
		UserID:            actorUserID,
		AuditFields:       auditNow(now, actorUserID),
	}

	rc := ruleContext{operationID: operationID, userID: actorUserID, now: now, accounts: accounts}
	lines := buildFXLines(rc, fxType, req.USDAmount, arsAmount)

	detail := domain.FXDetail{
		OperationID: operationID,
		USDAmount:   req.USDAmount,
		ARSAmount:   arsAmount,
		FXType:      fxType,
	}

	if err := s.operationRepo.SaveOperation(ctx, op, lines, detail, newParty); err != nil {
		logger.Error("Failed to save FX operation", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("FX operation posted",
		slog.String("operation_id", operationID),
		slog.String("fx_type", string(fxType)),
		slog.String("usd_amount", req.USDAmount.String()),
		slog.String("ars_amount", arsAmount.String()),
	)
	return &dto.CreateFXResponse{OperationID: operationID, ARSAmount: arsAmount}, nil
}

// CreatePayment posts money flowing out to a party. The cash credit covers
// the gross plus commission plus expenses. A zero gross is allowed for
// commission-only movements.
func (s *operationService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, actorUserID string) (*dto.CreatePaymentResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateNonNegative("grossAmount", req.GrossAmount); err != nil {
		return nil, err
	}
	if err := validateNonNegative("commissionAmount", req.CommissionAmount); err != nil {
		return nil, err
	}
	if err := validateNonNegative("expensesAmount", req.ExpensesAmount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	party, newParty, err := s.resolveParty(ctx, req.PartyName, actorUserID, now)
	if err != nil {
		return nil, err
	}

	if err := s.resolveOperationType(ctx, domain.OpPayment); err != nil {
		return nil, err
	}

	commission := resolveCommission(req.GrossAmount, req.CommissionAmount, req.CommissionPercentage)
	partyAccountCode := party.ReceivablePayableCode(req.Currency)

	accounts, err := s.resolveAccounts(ctx, partyAccountCode, cashAccountCode(req.Currency), domain.AccountCommissionExpense)
	if err != nil {
		return nil, err
	}

	operationID := uuid.NewString()
	op := domain.Operation{
		OperationID:       operationID,
		Date:              req.Date,
		OperationTypeCode: domain.OpPayment,
		PartyID:           &party.PartyID,
		Amount:            req.GrossAmount,
		CurrencyCode:      req.Currency,
		Notes:             req.Notes,
		UserID:            actorUserID,
		AuditFields:       auditNow(now, actorUserID),
	}

	rc := ruleContext{operationID: operationID, userID: actorUserID, now: now, accounts: accounts}
	totalPaid, lines := buildPaymentLines(rc, partyAccountCode, req.Currency, req.GrossAmount, commission, req.ExpensesAmount)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: payment must move at least one amount", apperrors.ErrValidation)
	}

	detail := domain.PaymentDetail{
		OperationID:          operationID,
		GrossAmount:          req.GrossAmount,
		CommissionAmount:     commission,
		CommissionPercentage: req.CommissionPercentage,
		ExpensesAmount:       req.ExpensesAmount,
		PaymentMethod:        req.PaymentMethod,
	}

	if err := s.operationRepo.SaveOperation(ctx, op, lines, detail, newParty); err != nil {
		logger.Error("Failed to save payment operation", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Payment posted",
		slog.String("operation_id", operationID),
		slog.String("party_id", party.PartyID),
		slog.String("total_paid", totalPaid.String()),
	)
	return &dto.CreatePaymentResponse{OperationID: operationID, TotalPaid: totalPaid}, nil
}

// CreateReceipt posts money flowing in from a party. Commission and expenses
// are withheld from the gross; a negative net is rejected before any write.
// A zero gross is allowed for commission-only movements.
func (s *operationService) CreateReceipt(ctx context.Context, req dto.CreateReceiptRequest, actorUserID string) (*dto.CreateReceiptResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateNonNegative("grossAmount", req.GrossAmount); err != nil {
		return nil, err
	}
	if err := validateNonNegative("commissionAmount", req.CommissionAmount); err != nil {
		return nil, err
	}
	if err := validateNonNegative("expensesAmount", req.ExpensesAmount); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	party, newParty, err := s.resolveParty(ctx, req.PartyName, actorUserID, now)
	if err != nil {
		return nil, err
	}

	if err := s.resolveOperationType(ctx, domain.OpReceipt); err != nil {
		return nil, err
	}

	commission := resolveCommission(req.GrossAmount, req.CommissionAmount, req.CommissionPercentage)
	partyAccountCode := party.ReceivablePayableCode(req.Currency)

	accounts, err := s.resolveAccounts(ctx, partyAccountCode, cashAccountCode(req.Currency), domain.AccountCommissionIncome)
	if err != nil {
		return nil, err
	}

	operationID := uuid.NewString()
	rc := ruleContext{operationID: operationID, userID: actorUserID, now: now, accounts: accounts}
	netReceived, lines, err := buildReceiptLines(rc, partyAccountCode, req.Currency, req.GrossAmount, commission, req.ExpensesAmount)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: receipt must move at least one amount", apperrors.ErrValidation)
	}

	op := domain.Operation{
		OperationID:       operationID,
		Date:              req.Date,
		OperationTypeCode: domain.OpReceipt,
		PartyID:           &party.PartyID,
		Amount:            req.GrossAmount,
		CurrencyCode:      req.Currency,
		Notes:             req.Notes,
		UserID:            actorUserID,
		AuditFields:       auditNow(now, actorUserID),
	}

	detail := domain.ReceiptDetail{
		OperationID:          operationID,
		GrossAmount:          req.GrossAmount,
		CommissionAmount:     commission,
		CommissionPercentage: req.CommissionPercentage,
		ExpensesAmount:       req.ExpensesAmount,
		PaymentMethod:        req.PaymentMethod,
	}

	if err := s.operationRepo.SaveOperation(ctx, op, lines, detail, newParty); err != nil {
		logger.Error("Failed to save receipt operation", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Receipt posted",
		slog.String("operation_id", operationID),
		slog.String("party_id", party.PartyID),
		slog.String("net_received", netReceived.String()),
	)
	return &dto.CreateReceiptResponse{OperationID: operationID, NetReceived: netReceived}, nil
}

// CreateChequeBuy posts the discounted purchase of a third-party cheque.
// Interest accrues from the operation date to the due date; the cheque row
// starts out pending.
func (s *operationService) CreateChequeBuy(ctx context.Context, req dto.CreateChequeBuyRequest, actorUserID string) (*dto.CreateChequeBuyResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validatePositive("nominalAmount", req.NominalAmount); err != nil {
		return nil, err
	}
	if err := validateNonNegative("interestRate", req.InterestRate); err != nil {
		return nil, err
	}
	if err := validateNonNegative("commissionsAmount", req.CommissionsAmount); err != nil {
		return nil, err
	}
	if err := validateNonNegative("expensesAmount", req.ExpensesAmount); err != nil {
		return nil, err
	}

	interestBase := req.InterestBase
	if interestBase <= 0 {
		interestBase = 365
	}

	days := accounting.DaysBetween(req.Date, req.DueDate)
	interest := accounting.ChequeInterest(req.NominalAmount, req.InterestRate, days, interestBase)
	netAmount := req.NominalAmount.Sub(interest).Sub(req.CommissionsAmount).Sub(req.ExpensesAmount)
	if netAmount.IsNegative() {
		return nil, ErrNegativeNet
	}

	now := time.Now().UTC()
	party, newParty, err := s.resolveParty(ctx, req.PartyName, actorUserID, now)
	if err != nil {
		return nil, err
	}

	if err := s.resolveOperationType(ctx, domain.OpChequeBuy); err != nil {
		return nil, err
	}

	accounts, err := s.resolveAccounts(ctx,
		domain.AccountChequesHeld,
		cashAccountCode(req.Currency),
		domain.AccountInterestIncome,
		domain.AccountCommissionIncome,
		domain.AccountCommissionExpense,
	)
	if err != nil {
		return nil, err
	}

	operationID := uuid.NewString()
	op := domain.Operation{
		OperationID:       operationID,
		Date:              req.Date,
		OperationTypeCode: domain.OpChequeBuy,
		PartyID:           &party.PartyID,
		Amount:            req.NominalAmount,
		CurrencyCode:      req.Currency,
		Notes:             req.Notes,
		UserID:            actorUserID,
		AuditFields:       auditNow(now, actorUserID),
	}

	rc := ruleContext{operationID: operationID, userID: actorUserID, now: now, accounts: accounts}
	lines := buildChequeBuyLines(rc, req.Currency, req.NominalAmount, interest, req.CommissionsAmount, req.ExpensesAmount)

	cheque := domain.Cheque{
		ChequeID:                  uuid.NewString(),
		OperationID:               operationID,
		PartyID:                   party.PartyID,
		Bank:                      req.Bank,
		Number:                    req.Number,
		NominalAmount:             req.NominalAmount,
		IssueDate:                 req.IssueDate,
		DueDate:                   req.DueDate,
		ExpectedAccreditationDate: req.ExpectedAccreditationDate,
		InterestRate:              req.InterestRate,
		InterestBase:              interestBase,
		Expenses:                  req.ExpensesAmount,
		Commissions:               req.CommissionsAmount,
		NetAmount:                 netAmount,
		Status:                    domain.ChequePending,
		CurrencyCode:              req.Currency,
		AuditFields:               auditNow(now, actorUserID),
	}

	if err := s.operationRepo.SaveOperation(ctx, op, lines, cheque, newParty); err != nil {
		logger.Error("Failed to save cheque buy operation", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Cheque buy posted",
		slog.String("operation_id", operationID),
		slog.String("cheque_id", cheque.ChequeID),
		slog.Int("days", days),
		slog.String("net_amount", netAmount.String()),
	)
	return &dto.CreateChequeBuyResponse{
		OperationID:       operationID,
		ChequeID:          cheque.ChequeID,
		InterestAmount:    interest,
		CommissionsAmount: req.CommissionsAmount,
		ExpensesAmount:    req.ExpensesAmount,
		NetAmount:         netAmount,
	}, nil
}

// GetOperationByID returns an operation header together with its journal lines.
func (s *operationService) GetOperationByID(ctx context.Context, operationID string) (*dto.OperationResponse, error) {
	op, err := s.operationRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		return nil, err
	}
	lines, err := s.operationRepo.FindLinesByOperationID(ctx, operationID)
	if err != nil {
		return nil, err
	}
	op.Lines = lines
	resp := dto.ToOperationResponse(op)
	return &resp, nil
}

// ListOperations returns recent operation headers without lines.
func (s *operationService) ListOperations(ctx context.Context, limit int) ([]dto.OperationResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	ops, err := s.operationRepo.ListOperations(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OperationResponse, len(ops))
	for i := range ops {
		out[i] = dto.ToOperationResponse(&ops[i])
	}
	return out, nil
}

// auditNow builds audit fields stamped at the given instant.
func auditNow(now time.Time, userID string) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}
