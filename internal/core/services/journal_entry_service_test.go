package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/andinosoft/contabilidad-api/internal/apperrors"
	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
	"github.com/andinosoft/contabilidad-api/internal/core/services"
	"github.com/andinosoft/contabilidad-api/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalEntryRepository ---
type MockJournalEntryRepository struct {
	mock.Mock
}

var _ portsrepo.JournalEntryRepositoryFacade = (*MockJournalEntryRepository)(nil)

func (m *MockJournalEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) UpdateEntryStatus(ctx context.Context, entryID int64, status domain.EntryStatus, approvedBy *int64, updatedBy int64, updatedAt time.Time) error {
	args := m.Called(ctx, entryID, status, approvedBy, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalEntryRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) ListEntriesByCompany(ctx context.Context, companyID int64, periodID *int64, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, companyID, periodID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		val := args.Get(1).(string)
		token = &val
	}
	return args.Get(0).([]domain.JournalEntry), token, args.Error(2)
}

// --- Mock AccountSvc ---
type MockAccountSvc struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountSvc)(nil)

func (m *MockAccountSvc) GetAccountByID(ctx context.Context, accountID int64) (*domain.ChartAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartAccount), args.Error(1)
}

func (m *MockAccountSvc) GetAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.ChartAccount, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.ChartAccount), args.Error(1)
}

func (m *MockAccountSvc) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.ChartAccount, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartAccount), args.Error(1)
}

// --- Mock PeriodReaderSvc ---
type MockPeriodReaderSvc struct {
	mock.Mock
}

var _ portssvc.PeriodReaderSvc = (*MockPeriodReaderSvc)(nil)

func (m *MockPeriodReaderSvc) GetPeriodByID(ctx context.Context, periodID int64) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodReaderSvc) ListPeriods(ctx context.Context, companyID int64) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

// --- Mock CompanySvc ---
type MockCompanySvc struct {
	mock.Mock
}

var _ portssvc.CompanySvcFacade = (*MockCompanySvc)(nil)

func (m *MockCompanySvc) GetCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanySvc) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

// --- Mock CurrencySvc ---
type MockCurrencySvc struct {
	mock.Mock
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencySvc)(nil)

func (m *MockCurrencySvc) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencySvc) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---

type JournalEntryServiceTestSuite struct {
	suite.Suite
	entryRepo   *MockJournalEntryRepository
	accountSvc  *MockAccountSvc
	periodSvc   *MockPeriodReaderSvc
	companySvc  *MockCompanySvc
	currencySvc *MockCurrencySvc
	service     portssvc.JournalEntrySvcFacade
	ctx         context.Context

	companyID int64
	periodID  int64
	userID    int64
}

func (suite *JournalEntryServiceTestSuite) SetupTest() {
	suite.entryRepo = new(MockJournalEntryRepository)
	suite.accountSvc = new(MockAccountSvc)
	suite.periodSvc = new(MockPeriodReaderSvc)
	suite.companySvc = new(MockCompanySvc)
	suite.currencySvc = new(MockCurrencySvc)
	suite.service = services.NewJournalEntryService(
		suite.entryRepo, suite.accountSvc, suite.periodSvc, suite.companySvc, suite.currencySvc,
	)
	suite.ctx = context.Background()
	suite.companyID = 1
	suite.periodID = 10
	suite.userID = 99
}

func (suite *JournalEntryServiceTestSuite) openPeriod() *domain.AccountingPeriod {
	p, err := domain.NewAccountingPeriod(suite.companyID, 2026, 2)
	suite.Require().NoError(err)
	p.ID = suite.periodID
	return &p
}

func (suite *JournalEntryServiceTestSuite) postableAccounts() map[int64]domain.ChartAccount {
	return map[int64]domain.ChartAccount{
		101: {ID: 101, CompanyID: suite.companyID, Code: "10.1", Name: "Caja", Level: domain.LevelDivision, Nature: domain.NatureDebit, IsPostable: true, IsActive: true},
		102: {ID: 102, CompanyID: suite.companyID, Code: "70.1", Name: "Ventas", Level: domain.LevelDivision, Nature: domain.NatureCredit, IsPostable: true, IsActive: true},
	}
}

func (suite *JournalEntryServiceTestSuite) createRequest(lines []dto.JournalLineRequest) dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EmpresaID:         suite.companyID,
		PeriodoContableID: suite.periodID,
		Fecha:             time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		Glosa:             "Venta al contado",
		Libro:             domain.BookFiscal,
		Moneda:            "PEN",
		Detalles:          lines,
	}
}

func balancedLines() []dto.JournalLineRequest {
	return []dto.JournalLineRequest{
		{CuentaContableID: 101, Glosa: "Ingreso a caja", Debe: decimal.RequireFromString("118.00")},
		{CuentaContableID: 102, Glosa: "Venta", Haber: decimal.RequireFromString("118.00")},
	}
}

func (suite *JournalEntryServiceTestSuite) expectResolution() {
	suite.companySvc.On("GetCompanyByID", suite.ctx, suite.companyID).
		Return(&domain.Company{ID: suite.companyID, RUC: "20100070970", Name: "Andino SAC", IsActive: true}, nil)
	suite.periodSvc.On("GetPeriodByID", suite.ctx, suite.periodID).Return(suite.openPeriod(), nil)
	suite.currencySvc.On("GetCurrencyByCode", suite.ctx, "PEN").
		Return(&domain.Currency{Code: "PEN", Name: "Sol", Symbol: "S/", Precision: 2}, nil)
}

func (suite *JournalEntryServiceTestSuite) TestCreateEntrySuccess() {
	suite.expectResolution()
	suite.accountSvc.On("GetAccountsByIDs", suite.ctx, []int64{101, 102}).Return(suite.postableAccounts(), nil)
	suite.entryRepo.On("SaveEntry", suite.ctx, mock.AnythingOfType("domain.JournalEntry")).
		Return(&domain.JournalEntry{ID: 55, EntryNumber: 7, Status: domain.EntryPending}, nil)

	saved, err := suite.service.CreateEntry(suite.ctx, suite.createRequest(balancedLines()), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(55), saved.ID)
	suite.Equal(domain.EntryPending, saved.Status)

	suite.entryRepo.AssertCalled(suite.T(), "SaveEntry", suite.ctx, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.Status == domain.EntryPending &&
			e.IsBalanced &&
			len(e.Lines) == 2 &&
			e.Lines[0].LineNumber == 1 &&
			e.Lines[1].LineNumber == 2 &&
			e.Lines[0].AccountCode == "10.1" &&
			e.CreatedBy == suite.userID
	}))
}

func (suite *JournalEntryServiceTestSuite) TestCreateEntryUnbalancedRejectedBeforePersistence() {
	suite.expectResolution()
	lines := []dto.JournalLineRequest{
		{CuentaContableID: 101, Glosa: "Ingreso a caja", Debe: decimal.RequireFromString("100")},
		{CuentaContableID: 102, Glosa: "Venta", Haber: decimal.RequireFromString("50")},
	}

	_, err := suite.service.CreateEntry(suite.ctx, suite.createRequest(lines), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryUnbalanced)
	suite.Contains(err.Error(), "100.00")
	suite.Contains(err.Error(), "50.00")
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
	suite.accountSvc.AssertNotCalled(suite.T(), "GetAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestCreateEntryPeriodNotOpen() {
	closed := suite.openPeriod()
	suite.Require().NoError(closed.Close(suite.userID, time.Now().UTC()))

	suite.companySvc.On("GetCompanyByID", suite.ctx, suite.companyID).
		Return(&domain.Company{ID: suite.companyID, IsActive: true}, nil)
	suite.periodSvc.On("GetPeriodByID", suite.ctx, suite.periodID).Return(closed, nil)

	_, err := suite.service.CreateEntry(suite.ctx, suite.createRequest(balancedLines()), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPeriodNotOpen)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestCreateEntryAccountNotPostable() {
	suite.expectResolution()
	accounts := suite.postableAccounts()
	header := accounts[101]
	header.IsPostable = false
	accounts[101] = header
	suite.accountSvc.On("GetAccountsByIDs", suite.ctx, []int64{101, 102}).Return(accounts, nil)

	_, err := suite.service.CreateEntry(suite.ctx, suite.createRequest(balancedLines()), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotPostable)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestCreateEntryAccountFromOtherCompany() {
	suite.expectResolution()
	accounts := suite.postableAccounts()
	foreign := accounts[102]
	foreign.CompanyID = suite.companyID + 1
	accounts[102] = foreign
	suite.accountSvc.On("GetAccountsByIDs", suite.ctx, []int64{101, 102}).Return(accounts, nil)

	_, err := suite.service.CreateEntry(suite.ctx, suite.createRequest(balancedLines()), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrCompanyMismatch)
}

func (suite *JournalEntryServiceTestSuite) TestCreateEntryMissingGlosa() {
	req := suite.createRequest(balancedLines())
	req.Glosa = "   "

	_, err := suite.service.CreateEntry(suite.ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalEntryServiceTestSuite) TestCreateEntryInvalidLine() {
	suite.expectResolution()
	lines := []dto.JournalLineRequest{
		{CuentaContableID: 101, Glosa: "Ambos lados", Debe: decimal.RequireFromString("10"), Haber: decimal.RequireFromString("10")},
	}

	_, err := suite.service.CreateEntry(suite.ctx, suite.createRequest(lines), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestCreateEntryNegativeAmountRejected() {
	suite.expectResolution()
	lines := []dto.JournalLineRequest{
		{CuentaContableID: 101, Glosa: "Debe positivo", Debe: decimal.RequireFromString("100"), Haber: decimal.Zero},
		{CuentaContableID: 102, Glosa: "Haber negativo", Debe: decimal.RequireFromString("100"), Haber: decimal.RequireFromString("-5")},
	}

	_, err := suite.service.CreateEntry(suite.ctx, suite.createRequest(lines), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, domain.ErrLineAmountNegative)
	suite.entryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestUpdateEntryRejectsNonPending() {
	approved := &domain.JournalEntry{ID: 55, CompanyID: suite.companyID, Status: domain.EntryApproved}
	suite.entryRepo.On("FindEntryByID", suite.ctx, int64(55)).Return(approved, nil)

	_, err := suite.service.UpdateEntry(suite.ctx, 55, dto.UpdateJournalEntryRequest{
		Fecha:  time.Now(),
		Glosa:  "cambio",
		Moneda: "PEN",
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.entryRepo.AssertNotCalled(suite.T(), "UpdateEntry", mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestDeleteEntryRejectsNonPending() {
	annulled := &domain.JournalEntry{ID: 56, Status: domain.EntryAnnulled}
	suite.entryRepo.On("FindEntryByID", suite.ctx, int64(56)).Return(annulled, nil)

	err := suite.service.DeleteEntry(suite.ctx, 56, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.entryRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestDeleteEntrySuccess() {
	pending := &domain.JournalEntry{ID: 57, Status: domain.EntryPending}
	suite.entryRepo.On("FindEntryByID", suite.ctx, int64(57)).Return(pending, nil)
	suite.entryRepo.On("DeleteEntry", suite.ctx, int64(57)).Return(nil)

	err := suite.service.DeleteEntry(suite.ctx, 57, suite.userID)

	suite.Require().NoError(err)
	suite.entryRepo.AssertExpectations(suite.T())
}

func (suite *JournalEntryServiceTestSuite) TestApproveEntrySuccess() {
	pending := &domain.JournalEntry{
		ID:     55,
		Status: domain.EntryPending,
		BalanceSummary: domain.BalanceSummary{
			TotalDebit:  decimal.RequireFromString("118.00"),
			TotalCredit: decimal.RequireFromString("118.00"),
			Difference:  decimal.Zero,
			IsBalanced:  true,
		},
	}
	suite.entryRepo.On("FindEntryByID", suite.ctx, int64(55)).Return(pending, nil)
	suite.entryRepo.On("UpdateEntryStatus", suite.ctx, int64(55), domain.EntryApproved,
		mock.AnythingOfType("*int64"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil)

	approved, err := suite.service.ApproveEntry(suite.ctx, 55, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.EntryApproved, approved.Status)
	suite.Require().NotNil(approved.ApprovedBy)
	suite.Equal(suite.userID, *approved.ApprovedBy)
	suite.NotNil(approved.ApprovedAt)
}

func (suite *JournalEntryServiceTestSuite) TestApproveEntryRejectsUnbalanced() {
	pending := &domain.JournalEntry{
		ID:     55,
		Status: domain.EntryPending,
		BalanceSummary: domain.BalanceSummary{
			TotalDebit:  decimal.RequireFromString("100.00"),
			TotalCredit: decimal.RequireFromString("50.00"),
			Difference:  decimal.RequireFromString("50.00"),
			IsBalanced:  false,
		},
	}
	suite.entryRepo.On("FindEntryByID", suite.ctx, int64(55)).Return(pending, nil)

	_, err := suite.service.ApproveEntry(suite.ctx, 55, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryUnbalanced)
	suite.entryRepo.AssertNotCalled(suite.T(), "UpdateEntryStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestApproveEntryRejectsAnnulled() {
	annulled := &domain.JournalEntry{ID: 55, Status: domain.EntryAnnulled}
	suite.entryRepo.On("FindEntryByID", suite.ctx, int64(55)).Return(annulled, nil)

	_, err := suite.service.ApproveEntry(suite.ctx, 55, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JournalEntryServiceTestSuite) TestAnnulEntrySuccess() {
	approverID := int64(42)
	approved := &domain.JournalEntry{ID: 55, Status: domain.EntryApproved, ApprovedBy: &approverID}
	suite.entryRepo.On("FindEntryByID", suite.ctx, int64(55)).Return(approved, nil)
	suite.entryRepo.On("UpdateEntryStatus", suite.ctx, int64(55), domain.EntryAnnulled,
		(*int64)(nil), suite.userID, mock.AnythingOfType("time.Time")).Return(nil)

	annulled, err := suite.service.AnnulEntry(suite.ctx, 55, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.EntryAnnulled, annulled.Status)
	suite.NotNil(annulled.AnnulledAt)
}

func (suite *JournalEntryServiceTestSuite) TestAnnulEntryRejectsPending() {
	pending := &domain.JournalEntry{ID: 55, Status: domain.EntryPending}
	suite.entryRepo.On("FindEntryByID", suite.ctx, int64(55)).Return(pending, nil)

	_, err := suite.service.AnnulEntry(suite.ctx, 55, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.entryRepo.AssertNotCalled(suite.T(), "UpdateEntryStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalEntryServiceTestSuite) TestListEntriesDefaultsLimit() {
	suite.entryRepo.On("ListEntriesByCompany", suite.ctx, suite.companyID, (*int64)(nil), 20, (*string)(nil)).
		Return([]domain.JournalEntry{}, nil, nil)

	res, err := suite.service.ListEntries(suite.ctx, dto.ListEntriesParams{EmpresaID: suite.companyID})

	suite.Require().NoError(err)
	suite.Empty(res.Asientos)
	suite.Nil(res.NextToken)
	suite.entryRepo.AssertExpectations(suite.T())
}

func TestJournalEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalEntryServiceTestSuite))
}
