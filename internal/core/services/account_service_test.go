package services_test

import (
	"context"
	"testing"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/core/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	userID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "1120",
		Name:        "Savings Account",
		AccountType: domain.Asset,
		IsCurrent:   true,
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(domain.Account)
			suite.Equal("1120", account.Code)
			suite.Equal(domain.Asset, account.Type)
			suite.True(account.IsActive)
			suite.Equal(int64(0), account.Balance)
		}).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("1120", account.Code)
	suite.Equal(suite.userID, account.CreatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "1110",
		Name:        "Bank",
		AccountType: domain.Asset,
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CostOfSalesOnNonExpense() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "4200",
		Name:        "Service Revenue",
		AccountType: domain.Revenue,
		CostOfSales: true,
	}

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(account)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentTypeMismatch() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "2110",
		Name:        "Trade Payables",
		AccountType: domain.Liability,
		ParentCode:  "1110",
	}

	parent := &domain.Account{Code: "1110", Name: "Bank", Type: domain.Asset, IsActive: true}
	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1110").Return(parent, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentNotFound() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:        "2110",
		Name:        "Trade Payables",
		AccountType: domain.Liability,
		ParentCode:  "9999",
	}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "9999").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_Success() {
	ctx := context.Background()
	existing := &domain.Account{Code: "1110", Name: "Bank", Type: domain.Asset, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1110").Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	newName := "Main Bank Account"
	account, err := suite.service.UpdateAccount(ctx, "1110", dto.UpdateAccountRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, account.Name)
	suite.Equal(suite.userID, account.LastUpdatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoChangesSkipsWrite() {
	ctx := context.Background()
	existing := &domain.Account{Code: "1110", Name: "Bank", Type: domain.Asset, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1110").Return(existing, nil).Once()

	account, err := suite.service.UpdateAccount(ctx, "1110", dto.UpdateAccountRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Bank", account.Name)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	existing := &domain.Account{Code: "5200", Name: "Operating Expenses", Type: domain.ExpenseAccount, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "5200").Return(existing, nil).Once()
	suite.mockAccountRepo.On("DeactivateAccount", ctx, "5200", suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, "5200", suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_NonZeroBalance() {
	ctx := context.Background()
	existing := &domain.Account{Code: "1110", Name: "Bank", Type: domain.Asset, Balance: 700000, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByCode", ctx, "1110").Return(existing, nil).Once()

	err := suite.service.DeactivateAccount(ctx, "1110", suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountHasBalance)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeactivateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestSeedDefaultChart_SkipsExisting() {
	ctx := context.Background()

	// The cash account already exists; everything else is created.
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Code == domain.CodeCash
	})).Return(apperrors.ErrDuplicate).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Code != domain.CodeCash
	})).Return(nil).Times(len(domain.DefaultChart) - 1)

	created, err := suite.service.SeedDefaultChart(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(len(domain.DefaultChart)-1, created)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	ctx := context.Background()
	accounts := []domain.Account{
		{Code: "1110", Name: "Bank", Type: domain.Asset, IsActive: true},
		{Code: "2100", Name: "Accounts Payable", Type: domain.Liability, IsActive: true},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx, false).Return(accounts, nil).Once()

	result, err := suite.service.ListAccounts(ctx, dto.ListAccountsParams{})

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
