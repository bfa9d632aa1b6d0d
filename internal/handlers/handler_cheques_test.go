package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finandes/finops_backend/internal/apperrors"
	"github.com/finandes/finops_backend/internal/core/domain"
	portssvc "github.com/finandes/finops_backend/internal/core/ports/services"
	"github.com/finandes/finops_backend/internal/dto"
)

// --- Mock ChequeService ---
type MockChequeService struct {
	mock.Mock
}

var _ portssvc.ChequeSvcFacade = (*MockChequeService)(nil)

func (m *MockChequeService) GetChequeByID(ctx context.Context, chequeID string) (*domain.Cheque, error) {
	args := m.Called(ctx, chequeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cheque), args.Error(1)
}

func (m *MockChequeService) UpdateStatus(ctx context.Context, chequeID string, newStatus domain.ChequeStatus, actorUserID string) error {
	args := m.Called(ctx, chequeID, newStatus, actorUserID)
	return args.Error(0)
}

func (m *MockChequeService) ListCheques(ctx context.Context, status *domain.ChequeStatus) ([]domain.Cheque, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cheque), args.Error(1)
}

// --- Test Suite Setup ---
type ChequeHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockChequeService *MockChequeService
	userID            string
}

func (suite *ChequeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidations()
	suite.router = gin.New()
	suite.mockChequeService = new(MockChequeService)
	suite.userID = uuid.NewString()

	// Stand-in for the auth middleware: the handlers only need the user id.
	suite.router.Use(func(c *gin.Context) {
		c.Set("userID", suite.userID)
		c.Next()
	})

	v1 := suite.router.Group("/api/v1")
	registerChequeRoutes(v1, suite.mockChequeService)
}

func (suite *ChequeHandlerTestSuite) postStatus(chequeID, status string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"status": status})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cheques/"+chequeID+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ChequeHandlerTestSuite) TestUpdateStatus_Success() {
	chequeID := uuid.NewString()

	suite.mockChequeService.On("UpdateStatus", mock.Anything, chequeID, domain.ChequeAccredited, suite.userID).Return(nil).Once()

	w := suite.postStatus(chequeID, "accredited")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockChequeService.AssertExpectations(suite.T())
}

func (suite *ChequeHandlerTestSuite) TestUpdateStatus_NotFound() {
	chequeID := uuid.NewString()

	suite.mockChequeService.On("UpdateStatus", mock.Anything, chequeID, domain.ChequeRejected, suite.userID).
		Return(apperrors.NewNotFoundError("cheque not found")).Once()

	w := suite.postStatus(chequeID, "rejected")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ChequeHandlerTestSuite) TestUpdateStatus_ConflictOnFinalState() {
	chequeID := uuid.NewString()

	suite.mockChequeService.On("UpdateStatus", mock.Anything, chequeID, domain.ChequeCancelled, suite.userID).
		Return(apperrors.ErrConflict).Once()

	w := suite.postStatus(chequeID, "cancelled")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ChequeHandlerTestSuite) TestUpdateStatus_InvalidBody() {
	w := suite.postStatus(uuid.NewString(), "lost")

	// Rejected by request binding before the service is reached.
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockChequeService.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ChequeHandlerTestSuite) TestListCheques_WithStatusFilter() {
	pending := domain.ChequePending
	cheques := []domain.Cheque{{
		ChequeID:      uuid.NewString(),
		OperationID:   uuid.NewString(),
		PartyID:       uuid.NewString(),
		NominalAmount: decimal.NewFromInt(100000),
		NetAmount:     decimal.NewFromInt(95000),
		DueDate:       time.Now().AddDate(0, 1, 0),
		Status:        pending,
		CurrencyCode:  domain.CurrencyARS,
	}}

	suite.mockChequeService.On("ListCheques", mock.Anything, &pending).Return(cheques, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cheques?status=pending", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body struct {
		Cheques []struct {
			ChequeID string `json:"chequeID"`
			Status   string `json:"status"`
		} `json:"cheques"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Cheques, 1)
	suite.Equal("pending", body.Cheques[0].Status)
}

func (suite *ChequeHandlerTestSuite) TestListCheques_BadFilter() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cheques?status=lost", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockChequeService.AssertNotCalled(suite.T(), "ListCheques", mock.Anything, mock.Anything)
}

func (suite *ChequeHandlerTestSuite) TestGetCheque_NotFound() {
	chequeID := uuid.NewString()

	suite.mockChequeService.On("GetChequeByID", mock.Anything, chequeID).
		Return(nil, apperrors.NewNotFoundError("cheque not found")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cheques/"+chequeID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestChequeHandler(t *testing.T) {
	suite.Run(t, new(ChequeHandlerTestSuite))
}
