package services_test

import (
	"context"
	"testing"

	"github.com/andinosoft/contabilidad-api/internal/apperrors"
	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	portsrepo "github.com/andinosoft/contabilidad-api/internal/core/ports/repositories"
	portssvc "github.com/andinosoft/contabilidad-api/internal/core/ports/services"
	"github.com/andinosoft/contabilidad-api/internal/core/services"
	"github.com/andinosoft/contabilidad-api/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.ChartAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartAccount), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.ChartAccount, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.ChartAccount), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByCompany(ctx context.Context, companyID int64) ([]domain.ChartAccount, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartAccount), args.Error(1)
}

// --- Test Suite ---

type AccountServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	service     portssvc.AccountSvcFacade
	ctx         context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.accountRepo)
	suite.ctx = context.Background()
}

func (suite *AccountServiceTestSuite) chart() []domain.ChartAccount {
	return []domain.ChartAccount{
		{ID: 1, CompanyID: 1, Code: "10", Name: "Efectivo", Level: domain.LevelAccount, Nature: domain.NatureDebit, IsPostable: false, IsActive: true},
		{ID: 2, CompanyID: 1, Code: "10.1", Name: "Caja", Level: domain.LevelDivision, Nature: domain.NatureDebit, IsPostable: true, IsActive: true},
		{ID: 3, CompanyID: 1, Code: "10.2", Name: "Caja chica antigua", Level: domain.LevelDivision, Nature: domain.NatureDebit, IsPostable: true, IsActive: false},
	}
}

func (suite *AccountServiceTestSuite) TestListAccountsReturnsFullChart() {
	suite.accountRepo.On("ListAccountsByCompany", suite.ctx, int64(1)).Return(suite.chart(), nil)

	accounts, err := suite.service.ListAccounts(suite.ctx, dto.ListAccountsParams{EmpresaID: 1})

	suite.Require().NoError(err)
	suite.Len(accounts, 3)
}

func (suite *AccountServiceTestSuite) TestListAccountsSoloImputables() {
	suite.accountRepo.On("ListAccountsByCompany", suite.ctx, int64(1)).Return(suite.chart(), nil)

	accounts, err := suite.service.ListAccounts(suite.ctx, dto.ListAccountsParams{EmpresaID: 1, SoloImputables: true})

	suite.Require().NoError(err)
	// header accounts and inactive accounts are filtered out
	suite.Require().Len(accounts, 1)
	suite.Equal("10.1", accounts[0].Code)
}

func (suite *AccountServiceTestSuite) TestGetAccountByIDNotFound() {
	suite.accountRepo.On("FindAccountByID", suite.ctx, int64(404)).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.GetAccountByID(suite.ctx, 404)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
