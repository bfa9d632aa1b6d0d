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
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepositoryFacade = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) AccountPosition(ctx context.Context, accountCode, currencyCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountCode, currencyCode)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) ClientLedgerRows(ctx context.Context, q portsrepo.LedgerQuery) ([]domain.LedgerRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRow), args.Error(1)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockPartyRepo     *MockPartyRepository
	service           portssvc.ReportingSvcFacade
	client            domain.Party
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockPartyRepo)

	suite.client = domain.Party{
		PartyID: uuid.NewString(),
		Name:    "Acme Trading",
		Type:    domain.PartyClient,
	}
}

func (suite *ReportingServiceTestSuite) TestCashPosition() {
	ctx := context.Background()

	suite.mockReportingRepo.On("AccountPosition", ctx, domain.AccountCashUSD, domain.CurrencyUSD).Return(decimal.NewFromInt(1500), nil).Once()
	suite.mockReportingRepo.On("AccountPosition", ctx, domain.AccountCashARS, domain.CurrencyARS).Return(decimal.NewFromInt(-250000), nil).Once()

	report, err := suite.service.CashPosition(ctx)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1500).Equal(report.USDPosition))
	suite.True(decimal.NewFromInt(-250000).Equal(report.ARSBalance))
}

func (suite *ReportingServiceTestSuite) TestCashPosition_EmptyLedgerIsZero() {
	ctx := context.Background()

	suite.mockReportingRepo.On("AccountPosition", ctx, domain.AccountCashUSD, domain.CurrencyUSD).Return(decimal.Zero, nil).Once()
	suite.mockReportingRepo.On("AccountPosition", ctx, domain.AccountCashARS, domain.CurrencyARS).Return(decimal.Zero, nil).Once()

	report, err := suite.service.CashPosition(ctx)

	suite.Require().NoError(err)
	suite.True(report.USDPosition.IsZero())
	suite.True(report.ARSBalance.IsZero())
}

func (suite *ReportingServiceTestSuite) TestClientLedger_RunningBalancePerCurrency() {
	ctx := context.Background()
	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []domain.LedgerRow{
		{Date: day, OperationTypeCode: domain.OpPayment, Debit: decimal.NewFromInt(1000), CurrencyCode: domain.CurrencyARS},
		{Date: day.AddDate(0, 0, 1), OperationTypeCode: domain.OpPayment, Debit: decimal.NewFromInt(200), CurrencyCode: domain.CurrencyUSD},
		{Date: day.AddDate(0, 0, 2), OperationTypeCode: domain.OpReceipt, Credit: decimal.NewFromInt(400), CurrencyCode: domain.CurrencyARS},
		{Date: day.AddDate(0, 0, 3), OperationTypeCode: domain.OpReceipt, Credit: decimal.NewFromInt(50), CurrencyCode: domain.CurrencyUSD},
	}

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.client.Name).Return(&suite.client, nil).Once()
	suite.mockReportingRepo.On("ClientLedgerRows", ctx, mock.AnythingOfType("repositories.LedgerQuery")).Return(rows, nil).Once()

	got, err := suite.service.ClientLedger(ctx, dto.ClientLedgerQuery{PartyName: suite.client.Name})

	suite.Require().NoError(err)
	suite.Require().Len(got, 4)
	// Each currency accumulates independently, interleaved rows included.
	suite.True(decimal.NewFromInt(1000).Equal(got[0].Balance))
	suite.True(decimal.NewFromInt(200).Equal(got[1].Balance))
	suite.True(decimal.NewFromInt(600).Equal(got[2].Balance))
	suite.True(decimal.NewFromInt(150).Equal(got[3].Balance))
}

func (suite *ReportingServiceTestSuite) TestClientLedger_AccountCodesFollowPartyType() {
	ctx := context.Background()
	supplier := domain.Party{PartyID: uuid.NewString(), Name: "Proveedora SA", Type: domain.PartySupplier}
	currency := domain.CurrencyUSD

	suite.mockPartyRepo.On("FindPartyByName", ctx, supplier.Name).Return(&supplier, nil).Once()

	var savedQuery portsrepo.LedgerQuery
	suite.mockReportingRepo.On("ClientLedgerRows", ctx, mock.AnythingOfType("repositories.LedgerQuery")).
		Run(func(args mock.Arguments) {
			savedQuery = args.Get(1).(portsrepo.LedgerQuery)
		}).Return([]domain.LedgerRow{}, nil).Once()

	_, err := suite.service.ClientLedger(ctx, dto.ClientLedgerQuery{PartyName: supplier.Name, Currency: &currency})

	suite.Require().NoError(err)
	suite.Equal(supplier.PartyID, savedQuery.PartyID)
	suite.Equal([]string{domain.AccountSuppliersUSD}, savedQuery.AccountCodes)
}

func (suite *ReportingServiceTestSuite) TestClientLedger_BothCurrenciesByDefault() {
	ctx := context.Background()

	suite.mockPartyRepo.On("FindPartyByName", ctx, suite.client.Name).Return(&suite.client, nil).Once()

	var savedQuery portsrepo.LedgerQuery
	suite.mockReportingRepo.On("ClientLedgerRows", ctx, mock.AnythingOfType("repositories.LedgerQuery")).
		Run(func(args mock.Arguments) {
			savedQuery = args.Get(1).(portsrepo.LedgerQuery)
		}).Return([]domain.LedgerRow{}, nil).Once()

	_, err := suite.service.ClientLedger(ctx, dto.ClientLedgerQuery{PartyName: suite.client.Name})

	suite.Require().NoError(err)
	suite.Equal([]string{domain.AccountClientsARS, domain.AccountClientsUSD}, savedQuery.AccountCodes)
}

func (suite *ReportingServiceTestSuite) TestClientLedger_UnknownParty() {
	ctx := context.Background()

	suite.mockPartyRepo.On("FindPartyByName", ctx, "Nobody").Return(nil, apperrors.NewNotFoundError("party not found")).Once()

	_, err := suite.service.ClientLedger(ctx, dto.ClientLedgerQuery{PartyName: "Nobody"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "ClientLedgerRows", mock.Anything, mock.Anything)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
