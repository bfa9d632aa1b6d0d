package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finandes/finops_backend/internal/apperrors"
	"github.com/finandes/finops_backend/internal/core/domain"
	portsrepo "github.com/finandes/finops_backend/internal/core/ports/repositories"
	portssvc "github.com/finandes/finops_backend/internal/core/ports/services"
	"github.com/finandes/finops_backend/internal/core/services"
	"github.com/finandes/finops_backend/internal/dto"
	"github.com/finandes/finops_backend/internal/utils/accounting"
)

// --- Mock OperationRepository ---
type MockOperationRepository struct {
	mock.Mock
}

var _ portsrepo.OperationRepositoryFacade = (*MockOperationRepository)(nil)

func (m *MockOperationRepository) SaveOperation(ctx context.Context, op domain.Operation, lines []domain.JournalLine, detail domain.OperationDetail, newParty *domain.Party) error {
	args := m.Called(ctx, op, lines, detail, newParty)
	return args.Error(0)
}

func (m *MockOperationRepository) FindOperationByID(ctx context.Context, operationID string) (*domain.Operation, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) FindLinesByOperationID(ctx context.Context, operationID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockOperationRepository) ListOperations(ctx context.Context, limit int) ([]domain.Operation, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operation), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock OperationTypeRepository ---
type MockOperationTypeRepository struct {
	mock.Mock
}

var _ portsrepo.OperationTypeRepositoryFacade = (*MockOperationTypeRepository)(nil)

func (m *MockOperationTypeRepository) FindOperationTypeByCode(ctx context.Context, code domain.OperationTypeCode) (*domain.OperationType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationType), args.Error(1)
}

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

var _ portsrepo.PartyRepositoryFacade = (*MockPartyRepository)(nil)

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) FindPartyByName(ctx context.Context, name string) (*domain.Party, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Party), args.Error(1)
}

func (m *MockPartyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Party), args.Error(1)
}

func (m *MockPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

// --- Test Suite Setup ---
type OperationServiceTestSuite struct {
	suite.Suite
	mockOperationRepo *MockOperationRepository
	mockAccountRepo   *MockAccountRepository
	mockPartyRepo     *MockPartyRepository
	mockOpTypeRepo    *MockOperationTypeRepository
	service           portssvc.OperationSvcFacade
	party             domain.Party
	userID            string
}

func (suite *OperationServiceTestSuite) SetupTest() {
	suite.mockOperationRepo = new(MockOperationRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockOpTypeRepo = new(MockOperationTypeRepository)
	suite.service = services.NewOperationService(suite.mockOperationRepo, suite.mockAccountRepo, suite.mockPartyRepo, suite.mockOpTypeRepo)

	// The catalog is seeded by migrations; every posting resolves its type.
	suite.mockOpTypeRepo.On("FindOperationTypeByCode", mock.Anything, mock.Anything).
		Return(&domain.OperationType{OperationTypeID: uuid.NewString()}, nil)

	suite.userID = uuid.NewString()
	suite.party = domain.Party{
		PartyID: uuid.NewString(),
		Name:    "Acme Trading",
		Type:    domain.PartyClient,
	}
}

// chartFor builds a resolved accounts map for the given codes, the shape
// FindAccountsByCodes returns.
func chartFor(codes ...string) map[string]domain.Account {
	accounts := make(map[string]domain.Account, len(codes))
	for _, code := range codes {
		accounts[code] = domain.Account{AccountID: uuid.NewString(), Code: code}
	}
	return accounts
}

// --- FX ---

func (suite *OperationServiceTestSuite) TestCreateFX_Success() {
	ctx := context.Background()
	req := dto.CreateFXRequest{
		Date:         time.Now().UTC(),
		PartyName:    suite.party.Name,
		FXType:       "buy",
		USDAmount:    decimal.NewFromInt(100),
		ExchangeRate: decimal.NewFromFloat(1052.5),
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.party.Name).Return(&suite.party, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(chartFor(domain.AccountCashARS, domain.AccountCashUSD), nil).Once()

	var savedOp domain.Operation
	var savedLines []domain.JournalLine
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.AnythingOfType("domain.Operation"), mock.Anything, mock.AnythingOfType("domain.FXDetail"), (*domain.Party)(nil)).
		Run(func(args mock.Arguments) {
			savedOp = args.Get(1).(domain.Operation)
			savedLines = args.Get(2).([]domain.JournalLine)
		}).Return(nil).Once()

	resp, err := suite.service.CreateFX(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(decimal.NewFromInt(105250).Equal(resp.ARSAmount))

	suite.Equal(domain.OpFXBuy, savedOp.OperationTypeCode)
	suite.Equal(domain.CurrencyUSD, savedOp.CurrencyCode)
	suite.True(req.USDAmount.Equal(savedOp.Amount))
	suite.Require().NotNil(savedOp.ExchangeRate)
	suite.True(req.ExchangeRate.Equal(*savedOp.ExchangeRate))
	suite.Len(savedLines, 2)

	suite.mockOperationRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestCreateFX_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateFXRequest{
		Date:         time.Now().UTC(),
		PartyName:    suite.party.Name,
		FXType:       "buy",
		USDAmount:    decimal.Zero,
		ExchangeRate: decimal.NewFromInt(1000),
	}

	_, err := suite.service.CreateFX(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "FindPartyByName", mock.Anything, mock.Anything)
	suite.mockOperationRepo.AssertNotCalled(suite.T(), "SaveOperation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OperationServiceTestSuite) TestCreateFX_InvalidType() {
	ctx := context.Background()
	req := dto.CreateFXRequest{
		Date:         time.Now().UTC(),
		PartyName:    suite.party.Name,
		FXType:       "banana",
		USDAmount:    decimal.NewFromInt(100),
		ExchangeRate: decimal.NewFromInt(1000),
	}

	_, err := suite.service.CreateFX(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "FindPartyByName", mock.Anything, mock.Anything)
	suite.mockOperationRepo.AssertNotCalled(suite.T(), "SaveOperation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OperationServiceTestSuite) TestCreateFX_LazyPartyCreation() {
	ctx := context.Background()
	req := dto.CreateFXRequest{
		Date:         time.Now().UTC(),
		PartyName:    "Brand New Client",
		FXType:       "sell",
		USDAmount:    decimal.NewFromInt(50),
		ExchangeRate: decimal.NewFromInt(1000),
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, req.PartyName).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(chartFor(domain.AccountCashARS, domain.AccountCashUSD), nil).Once()

	var savedParty *domain.Party
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.Anything, mock.Anything, mock.Anything, mock.AnythingOfType("*domain.Party")).
		Run(func(args mock.Arguments) {
			savedParty = args.Get(4).(*domain.Party)
		}).Return(nil).Once()

	_, err := suite.service.CreateFX(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(savedParty)
	suite.Equal(req.PartyName, savedParty.Name)
	suite.Equal(domain.PartyClient, savedParty.Type)
	suite.NotEmpty(savedParty.PartyID)
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

// --- Payment ---

func (suite *OperationServiceTestSuite) TestCreatePayment_Success() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Date:             time.Now().UTC(),
		PartyName:        suite.party.Name,
		Currency:         domain.CurrencyARS,
		GrossAmount:      decimal.NewFromInt(1000),
		CommissionAmount: decimal.NewFromInt(50),
		ExpensesAmount:   decimal.NewFromInt(20),
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.party.Name).Return(&suite.party, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(chartFor(domain.AccountClientsARS, domain.AccountCashARS, domain.AccountCommissionExpense), nil).Once()

	var savedLines []domain.JournalLine
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.Anything, mock.Anything, mock.AnythingOfType("domain.PaymentDetail"), (*domain.Party)(nil)).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(2).([]domain.JournalLine)
		}).Return(nil).Once()

	resp, err := suite.service.CreatePayment(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1070).Equal(resp.TotalPaid))
	suite.True(accounting.SumDebits(savedLines).Equal(accounting.SumCredits(savedLines)))
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestCreatePayment_CommissionPercentageWins() {
	ctx := context.Background()
	pct := decimal.NewFromInt(10)
	req := dto.CreatePaymentRequest{
		Date:                 time.Now().UTC(),
		PartyName:            suite.party.Name,
		Currency:             domain.CurrencyARS,
		GrossAmount:          decimal.NewFromInt(1000),
		CommissionAmount:     decimal.NewFromInt(5),
		CommissionPercentage: &pct,
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.party.Name).Return(&suite.party, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(chartFor(domain.AccountClientsARS, domain.AccountCashARS, domain.AccountCommissionExpense), nil).Once()

	var savedDetail domain.PaymentDetail
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.Anything, mock.Anything, mock.AnythingOfType("domain.PaymentDetail"), (*domain.Party)(nil)).
		Run(func(args mock.Arguments) {
			savedDetail = args.Get(3).(domain.PaymentDetail)
		}).Return(nil).Once()

	resp, err := suite.service.CreatePayment(ctx, req, suite.userID)

	suite.Require().NoError(err)
	// 10% of 1000, not the absolute 5
	suite.True(decimal.NewFromInt(100).Equal(savedDetail.CommissionAmount))
	suite.True(decimal.NewFromInt(1100).Equal(resp.TotalPaid))
}

func (suite *OperationServiceTestSuite) TestCreatePayment_SupplierUsesPayableAccount() {
	ctx := context.Background()
	supplier := domain.Party{PartyID: uuid.NewString(), Name: "Proveedora SA", Type: domain.PartySupplier}
	req := dto.CreatePaymentRequest{
		Date:        time.Now().UTC(),
		PartyName:   supplier.Name,
		Currency:    domain.CurrencyUSD,
		GrossAmount: decimal.NewFromInt(300),
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, supplier.Name).Return(&supplier, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, []string{domain.AccountSuppliersUSD, domain.AccountCashUSD, domain.AccountCommissionExpense}).
		Return(chartFor(domain.AccountSuppliersUSD, domain.AccountCashUSD, domain.AccountCommissionExpense), nil).Once()
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.Anything, mock.Anything, mock.Anything, (*domain.Party)(nil)).Return(nil).Once()

	_, err := suite.service.CreatePayment(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestCreatePayment_CommissionOnly() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Date:             time.Now().UTC(),
		PartyName:        suite.party.Name,
		Currency:         domain.CurrencyARS,
		GrossAmount:      decimal.Zero,
		CommissionAmount: decimal.NewFromInt(25),
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.party.Name).Return(&suite.party, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(chartFor(domain.AccountClientsARS, domain.AccountCashARS, domain.AccountCommissionExpense), nil).Once()

	var savedLines []domain.JournalLine
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.Anything, mock.Anything, mock.AnythingOfType("domain.PaymentDetail"), (*domain.Party)(nil)).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(2).([]domain.JournalLine)
		}).Return(nil).Once()

	resp, err := suite.service.CreatePayment(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(25).Equal(resp.TotalPaid))
	suite.Require().Len(savedLines, 2)
	for _, line := range savedLines {
		suite.True(line.Amount.IsPositive())
		suite.NotEqual(domain.AccountClientsARS, line.AccountCode)
	}
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestCreatePayment_AllZeroRejected() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Date:      time.Now().UTC(),
		PartyName: suite.party.Name,
		Currency:  domain.CurrencyARS,
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.party.Name).Return(&suite.party, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(chartFor(domain.AccountClientsARS, domain.AccountCashARS, domain.AccountCommissionExpense), nil).Once()

	_, err := suite.service.CreatePayment(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOperationRepo.AssertNotCalled(suite.T(), "SaveOperation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Receipt ---

func (suite *OperationServiceTestSuite) TestCreateReceipt_Success() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		Date:             time.Now().UTC(),
		PartyName:        suite.party.Name,
		Currency:         domain.CurrencyARS,
		GrossAmount:      decimal.NewFromInt(1000),
		CommissionAmount: decimal.NewFromInt(30),
		ExpensesAmount:   decimal.NewFromInt(10),
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.party.Name).Return(&suite.party, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(chartFor(domain.AccountClientsARS, domain.AccountCashARS, domain.AccountCommissionIncome), nil).Once()
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.Anything, mock.Anything, mock.AnythingOfType("domain.ReceiptDetail"), (*domain.Party)(nil)).Return(nil).Once()

	resp, err := suite.service.CreateReceipt(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(960).Equal(resp.NetReceived))
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestCreateReceipt_NegativeNetRejected() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		Date:             time.Now().UTC(),
		PartyName:        suite.party.Name,
		Currency:         domain.CurrencyARS,
		GrossAmount:      decimal.NewFromInt(100),
		CommissionAmount: decimal.NewFromInt(90),
		ExpensesAmount:   decimal.NewFromInt(20),
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.party.Name).Return(&suite.party, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(chartFor(domain.AccountClientsARS, domain.AccountCashARS, domain.AccountCommissionIncome), nil).Once()

	_, err := suite.service.CreateReceipt(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOperationRepo.AssertNotCalled(suite.T(), "SaveOperation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OperationServiceTestSuite) TestCreateReceipt_ZeroNetPostsWithoutCashLeg() {
	ctx := context.Background()
	req := dto.CreateReceiptRequest{
		Date:             time.Now().UTC(),
		PartyName:        suite.party.Name,
		Currency:         domain.CurrencyARS,
		GrossAmount:      decimal.NewFromInt(100),
		CommissionAmount: decimal.NewFromInt(100),
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.party.Name).Return(&suite.party, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(chartFor(domain.AccountClientsARS, domain.AccountCashARS, domain.AccountCommissionIncome), nil).Once()

	var savedLines []domain.JournalLine
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.Anything, mock.Anything, mock.AnythingOfType("domain.ReceiptDetail"), (*domain.Party)(nil)).
		Run(func(args mock.Arguments) {
			savedLines = args.Get(2).([]domain.JournalLine)
		}).Return(nil).Once()

	resp, err := suite.service.CreateReceipt(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(resp.NetReceived.IsZero())
	suite.Require().Len(savedLines, 2)
	for _, line := range savedLines {
		suite.True(line.Amount.IsPositive())
		suite.NotEqual(domain.AccountCashARS, line.AccountCode)
	}
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

// --- Cheque buy ---

func (suite *OperationServiceTestSuite) TestCreateChequeBuy_Success() {
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateChequeBuyRequest{
		Date:              date,
		PartyName:         suite.party.Name,
		Currency:          domain.CurrencyARS,
		Bank:              "Banco Nación",
		Number:            "00123456",
		NominalAmount:     decimal.NewFromInt(100000),
		DueDate:           date.AddDate(0, 0, 30),
		InterestRate:      decimal.NewFromFloat(0.60),
		CommissionsAmount: decimal.NewFromInt(500),
		ExpensesAmount:    decimal.NewFromInt(200),
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.party.Name).Return(&suite.party, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(chartFor(
			domain.AccountChequesHeld,
			domain.AccountCashARS,
			domain.AccountInterestIncome,
			domain.AccountCommissionIncome,
			domain.AccountCommissionExpense,
		), nil).Once()

	var savedCheque domain.Cheque
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.Anything, mock.Anything, mock.AnythingOfType("domain.Cheque"), (*domain.Party)(nil)).
		Run(func(args mock.Arguments) {
			savedCheque = args.Get(3).(domain.Cheque)
		}).Return(nil).Once()

	resp, err := suite.service.CreateChequeBuy(ctx, req, suite.userID)

	suite.Require().NoError(err)
	// 100000 * 0.60 * 30 / 365 = 4931.51
	suite.True(decimal.NewFromFloat(4931.51).Equal(resp.InterestAmount), "got %s", resp.InterestAmount)
	suite.True(decimal.NewFromFloat(94368.49).Equal(resp.NetAmount), "got %s", resp.NetAmount)

	suite.Equal(domain.ChequePending, savedCheque.Status)
	suite.Equal(365, savedCheque.InterestBase)
	suite.Equal(suite.party.PartyID, savedCheque.PartyID)
	suite.True(resp.NetAmount.Equal(savedCheque.NetAmount))
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestCreateChequeBuy_NegativeNetRejected() {
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateChequeBuyRequest{
		Date:          date,
		PartyName:     suite.party.Name,
		Currency:      domain.CurrencyARS,
		Bank:          "Banco Nación",
		Number:        "00123457",
		NominalAmount: decimal.NewFromInt(1000),
		DueDate:       date.AddDate(1, 0, 0),
		InterestRate:  decimal.NewFromInt(2), // 200% annual over a full year
	}

	_, err := suite.service.CreateChequeBuy(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNegativeNet)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPartyRepo.AssertNotCalled(suite.T(), "FindPartyByName", mock.Anything, mock.Anything)
	suite.mockOperationRepo.AssertNotCalled(suite.T(), "SaveOperation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OperationServiceTestSuite) TestCreateChequeBuy_SaveError() {
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateChequeBuyRequest{
		Date:          date,
		PartyName:     suite.party.Name,
		Currency:      domain.CurrencyARS,
		Bank:          "Banco Galicia",
		Number:        "00999",
		NominalAmount: decimal.NewFromInt(5000),
		DueDate:       date.AddDate(0, 1, 0),
	}
	saveErr := apperrors.NewAppError(500, "db down", nil)

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.party.Name).Return(&suite.party, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, mock.Anything).
		Return(chartFor(
			domain.AccountChequesHeld,
			domain.AccountCashARS,
			domain.AccountInterestIncome,
			domain.AccountCommissionIncome,
			domain.AccountCommissionExpense,
		), nil).Once()
	suite.mockOperationRepo.On("SaveOperation", ctx, mock.Anything, mock.Anything, mock.Anything, (*domain.Party)(nil)).Return(saveErr).Once()

	_, err := suite.service.CreateChequeBuy(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

// --- Reads ---

func (suite *OperationServiceTestSuite) TestGetOperationByID_Success() {
	ctx := context.Background()
	operationID := uuid.NewString()
	op := domain.Operation{
		OperationID:       operationID,
		OperationTypeCode: domain.OpPayment,
		Amount:            decimal.NewFromInt(1000),
		CurrencyCode:      domain.CurrencyARS,
	}
	lines := []domain.JournalLine{
		{EntryID: uuid.NewString(), AccountCode: domain.AccountClientsARS, Amount: decimal.NewFromInt(1000), Side: domain.Debit},
		{EntryID: uuid.NewString(), AccountCode: domain.AccountCashARS, Amount: decimal.NewFromInt(1000), Side: domain.Credit},
	}

	suite.mockOperationRepo.On("FindOperationByID", ctx, operationID).Return(&op, nil).Once()
	suite.mockOperationRepo.On("FindLinesByOperationID", ctx, operationID).Return(lines, nil).Once()

	resp, err := suite.service.GetOperationByID(ctx, operationID)

	suite.Require().NoError(err)
	suite.Equal(operationID, resp.OperationID)
	suite.Require().Len(resp.Lines, 2)
	suite.True(decimal.NewFromInt(1000).Equal(resp.Lines[0].Debit))
	suite.True(resp.Lines[0].Credit.IsZero())
	suite.True(decimal.NewFromInt(1000).Equal(resp.Lines[1].Credit))
}

func (suite *OperationServiceTestSuite) TestGetOperationByID_NotFound() {
	ctx := context.Background()
	operationID := uuid.NewString()

	suite.mockOperationRepo.On("FindOperationByID", ctx, operationID).Return(nil, apperrors.NewNotFoundError("operation not found")).Once()

	_, err := suite.service.GetOperationByID(ctx, operationID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *OperationServiceTestSuite) TestListOperations_DefaultLimit() {
	ctx := context.Background()

	suite.mockOperationRepo.On("ListOperations", ctx, 50).Return([]domain.Operation{}, nil).Once()

	_, err := suite.service.ListOperations(ctx, 0)

	suite.Require().NoError(err)
	suite.mockOperationRepo.AssertExpectations(suite.T())
}

func TestOperationService(t *testing.T) {
	suite.Run(t, new(OperationServiceTestSuite))
}
