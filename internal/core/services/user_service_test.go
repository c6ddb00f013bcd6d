package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bekzodm/erp-ledger/internal/apperrors"
	"github.com/bekzodm/erp-ledger/internal/core/domain"
	portsrepo "github.com/bekzodm/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/bekzodm/erp-ledger/internal/core/ports/services"
	"github.com/bekzodm/erp-ledger/internal/core/services"
	"github.com/bekzodm/erp-ledger/internal/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeactivateUser(ctx context.Context, userID string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, updatedBy, now)
	return args.Error(0)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	jwtSecret    string
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.jwtSecret = "test-secret"
	suite.service = services.NewUserService(suite.mockUserRepo, suite.jwtSecret, 60)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "bookkeeper",
		Name:     "Jordan Doe",
		Password: "s3cret-pass",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(domain.User)
			suite.Equal("bookkeeper", user.Username)
			suite.True(user.IsActive)
			suite.NotEqual("s3cret-pass", user.PasswordHash)
			suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
		}).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "bookkeeper",
		Name:     "Jordan Doe",
		Password: "s3cret-pass",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "bookkeeper",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "bookkeeper").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "bookkeeper", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "bookkeeper",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "bookkeeper").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "bookkeeper", "wrong-pass")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	// Unknown users and bad passwords produce the same error
	suite.ErrorIs(err, services.ErrInvalidCredentials)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_InactiveUser() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "bookkeeper",
		PasswordHash: string(hash),
		IsActive:     false,
	}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "bookkeeper").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "bookkeeper", "s3cret-pass")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestGenerateAccessToken() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "bookkeeper", IsActive: true}

	signed, err := suite.service.GenerateAccessToken(ctx, user)
	suite.Require().NoError(err)
	suite.NotEmpty(signed)

	parsed, err := jwt.ParseWithClaims(signed, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.jwtSecret), nil
	})
	suite.Require().NoError(err)
	suite.True(parsed.Valid)

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	suite.Require().True(ok)
	suite.Equal(user.UserID, claims.Subject)
	suite.True(claims.ExpiresAt.After(time.Now()))
}

func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	requesterID := uuid.NewString()
	stored := &domain.User{UserID: userID, Username: "bookkeeper", Name: "Jordan Doe", IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	newName := "Jordan A. Doe"
	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Name: &newName}, requesterID)

	suite.Require().NoError(err)
	suite.Equal(newName, user.Name)
	suite.Equal(requesterID, user.LastUpdatedBy)
}

func (suite *UserServiceTestSuite) TestDeactivateUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	requesterID := uuid.NewString()

	suite.mockUserRepo.On("DeactivateUser", ctx, userID, requesterID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateUser(ctx, userID, requesterID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
