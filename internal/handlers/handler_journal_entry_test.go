package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/andinosoft/contabilidad-api/internal/apperrors"
	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
	"github.com/andinosoft/contabilidad-api/internal/core/services"
	"github.com/andinosoft/contabilidad-api/internal/dto"
	"github.com/andinosoft/contabilidad-api/internal/handlers"
	"github.com/andinosoft/contabilidad-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	mock.Mock
}

func (m *MockJournalEntryService) GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}
func (m *MockJournalEntryService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateJournalEntryRequest, userID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) DeleteEntry(ctx context.Context, entryID int64, userID int64) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}
func (m *MockJournalEntryService) ApproveEntry(ctx context.Context, entryID int64, approverID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, approverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockJournalEntryService) AnnulEntry(ctx context.Context, entryID int64, userID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

// --- Test Suite ---
type JournalEntryHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockEntryService *MockJournalEntryService
	jwtSecret        string
	userID           int64
}

// generateTestToken creates a signed JWT whose subject is the numeric user ID.
func (suite *JournalEntryHandlerTestSuite) generateTestToken(userID int64) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "contabilidad-test",
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *JournalEntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = 7

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockEntryService = new(MockJournalEntryService)

	contabilidad := suite.router.Group("/contabilidad")
	handlers.RegisterJournalEntryRoutes(contabilidad, suite.mockEntryService)
}

func (suite *JournalEntryHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			suite.FailNow("Failed to encode request body", err.Error())
		}
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *JournalEntryHandlerTestSuite) validCreateRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EmpresaID:         1,
		PeriodoContableID: 3,
		Fecha:             time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Glosa:             "Compra de materiales",
		Libro:             domain.BookFiscal,
		Moneda:            "PEN",
		Detalles: []dto.JournalLineRequest{
			{CuentaContableID: 101, Glosa: "Materiales", Debe: decimal.RequireFromString("100"), Haber: decimal.Zero},
			{CuentaContableID: 201, Glosa: "Caja", Debe: decimal.Zero, Haber: decimal.RequireFromString("100")},
		},
	}
}

// --- Test Cases ---

func (suite *JournalEntryHandlerTestSuite) TestCreateEntry_Success() {
	req := suite.validCreateRequest()
	saved := &domain.JournalEntry{
		ID:          42,
		CompanyID:   req.EmpresaID,
		PeriodID:    req.PeriodoContableID,
		EntryNumber: 17,
		Status:      domain.EntryPending,
	}
	suite.mockEntryService.On("CreateEntry",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateJournalEntryRequest) bool {
			return r.EmpresaID == req.EmpresaID && len(r.Detalles) == 2
		}),
		suite.userID,
	).Return(saved, nil).Once()

	w := suite.doJSON(http.MethodPost, "/contabilidad/asiento-contable", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalEntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(42), resp.ID)
	suite.Equal(int64(17), resp.NumeroAsiento)
	suite.Equal(domain.EntryPending, resp.Estado)
	suite.True(resp.PuedeEditar)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestCreateEntry_BindFailure() {
	// missing required fields (empresaId, glosa, moneda)
	w := suite.doJSON(http.MethodPost, "/contabilidad/asiento-contable", `{"libro":"FISCAL"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Invalid request format")
	suite.mockEntryService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalEntryHandlerTestSuite) TestCreateEntry_NegativeAmountRejectedAtBinding() {
	req := suite.validCreateRequest()
	req.Detalles[1].Haber = decimal.RequireFromString("-5")

	w := suite.doJSON(http.MethodPost, "/contabilidad/asiento-contable", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "nonnegative_decimal")
	suite.mockEntryService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalEntryHandlerTestSuite) TestCreateEntry_UnbalancedReturns400() {
	req := suite.validCreateRequest()
	svcErr := fmt.Errorf("%w: total debe 100.00 vs total haber 50.00 (diferencia 50.00)", services.ErrEntryUnbalanced)
	suite.mockEntryService.On("CreateEntry", mock.Anything, mock.Anything, suite.userID).
		Return(nil, svcErr).Once()

	w := suite.doJSON(http.MethodPost, "/contabilidad/asiento-contable", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "100.00")
	suite.Contains(w.Body.String(), "50.00")
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestUpdateEntry_NonPendingReturns409() {
	req := dto.UpdateJournalEntryRequest{
		Fecha:  time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC),
		Glosa:  "Ajuste",
		Moneda: "PEN",
	}
	svcErr := fmt.Errorf("%w: %w (status APPROVED)", apperrors.ErrConflict, services.ErrEntryNotEditable)
	suite.mockEntryService.On("UpdateEntry", mock.Anything, int64(55), mock.Anything, suite.userID).
		Return(nil, svcErr).Once()

	w := suite.doJSON(http.MethodPut, "/contabilidad/asiento-contable/55", req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestGetEntry_NotFoundReturns404() {
	svcErr := fmt.Errorf("failed to find journal entry 99: %w", apperrors.ErrNotFound)
	suite.mockEntryService.On("GetEntryByID", mock.Anything, int64(99)).
		Return(nil, svcErr).Once()

	w := suite.doJSON(http.MethodGet, "/contabilidad/asiento-contable/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestGetEntry_InvalidIDReturns400() {
	w := suite.doJSON(http.MethodGet, "/contabilidad/asiento-contable/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "GetEntryByID", mock.Anything, mock.Anything)
}

func (suite *JournalEntryHandlerTestSuite) TestDeleteEntry_NoContent() {
	suite.mockEntryService.On("DeleteEntry", mock.Anything, int64(12), suite.userID).
		Return(nil).Once()

	w := suite.doJSON(http.MethodDelete, "/contabilidad/asiento-contable/12", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *JournalEntryHandlerTestSuite) TestListEntries_MissingTokenReturns401() {
	req, _ := http.NewRequest(http.MethodGet, "/contabilidad/asiento-contable?empresaId=1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestJournalEntryHandler(t *testing.T) {
	suite.Run(t, new(JournalEntryHandlerTestSuite))
}
