package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/qrasickz/vovabank_backend/internal/apperrors"
	"github.com/qrasickz/vovabank_backend/internal/core/domain"
	portssvc "github.com/qrasickz/vovabank_backend/internal/core/ports/services"
	"github.com/qrasickz/vovabank_backend/internal/core/services"
	"github.com/qrasickz/vovabank_backend/internal/dto"
	"github.com/qrasickz/vovabank_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	ctx          context.Context

	signupBonus decimal.Decimal
	seedBalance decimal.Decimal
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.signupBonus = decimal.NewFromInt(5)
	suite.seedBalance = decimal.NewFromInt(1000)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.signupBonus, suite.seedBalance)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{Username: "vova", Password: "secret", FullName: "Vova K"}

	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "vova").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUserWithDeposit", suite.ctx,
		mock.MatchedBy(func(u domain.User) bool {
			return u.Username == "vova" &&
				u.Role == domain.RoleUser &&
				u.Balance.Equal(suite.signupBonus) &&
				u.PasswordHash != "secret" &&
				utils.CheckPasswordHash("secret", u.PasswordHash)
		}),
		mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e != nil &&
				e.Category == domain.CategoryDeposit &&
				e.From == domain.SystemParty() &&
				e.Amount.Equal(suite.signupBonus)
		}),
	).Return(nil).Once()

	user, err := suite.service.Register(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), user)
	assert.True(suite.T(), user.Balance.Equal(suite.signupBonus))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_NoBonusConfigured() {
	svc := services.NewUserService(suite.mockUserRepo, decimal.Zero, suite.seedBalance)
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "vova").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUserWithDeposit", suite.ctx,
		mock.MatchedBy(func(u domain.User) bool { return u.Balance.IsZero() }),
		(*domain.LedgerEntry)(nil),
	).Return(nil).Once()

	user, err := svc.Register(suite.ctx, dto.RegisterRequest{Username: "vova", Password: "secret", FullName: "Vova K"})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), user.Balance.IsZero())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	existing := domain.User{UserID: uuid.NewString(), Username: "vova"}
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "vova").Return(&existing, nil).Once()

	user, err := suite.service.Register(suite.ctx, dto.RegisterRequest{Username: "vova", Password: "secret", FullName: "Vova K"})

	assert.Nil(suite.T(), user)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUserWithDeposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	hash, err := utils.HashPassword("secret")
	suite.Require().NoError(err)
	user := domain.User{UserID: uuid.NewString(), Username: "vova", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "vova").Return(&user, nil).Once()

	got, err := suite.service.Authenticate(suite.ctx, "vova", "secret")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	hash, err := utils.HashPassword("secret")
	suite.Require().NoError(err)
	user := domain.User{UserID: uuid.NewString(), Username: "vova", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "vova").Return(&user, nil).Once()

	got, err := suite.service.Authenticate(suite.ctx, "vova", "wrong")

	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(suite.ctx, "ghost", "secret")

	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_BlockedAfterMatch() {
	hash, err := utils.HashPassword("secret")
	suite.Require().NoError(err)
	user := domain.User{UserID: uuid.NewString(), Username: "vova", PasswordHash: hash, IsBlocked: true}
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "vova").Return(&user, nil).Once()

	got, err := suite.service.Authenticate(suite.ctx, "vova", "secret")

	assert.Nil(suite.T(), got)
	assert.ErrorIs(suite.T(), err, services.ErrUserBlocked)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_PartialMerge() {
	user := domain.User{UserID: uuid.NewString(), Username: "vova", FullName: "Vova K", Bio: "old bio"}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, user.UserID).Return(&user, nil).Once()

	newBio := "new bio"
	suite.mockUserRepo.On("UpdateUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Bio == "new bio" && u.FullName == "Vova K"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProfile(suite.ctx, user.UserID, dto.UpdateProfileRequest{Bio: &newBio})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new bio", updated.Bio)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestListUsers_RequiresAdmin() {
	actor := domain.User{UserID: uuid.NewString(), Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, actor.UserID).Return(&actor, nil).Once()

	users, err := suite.service.ListUsers(suite.ctx, actor.UserID)

	assert.Nil(suite.T(), users)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "ListUsers", mock.Anything)
}

func (suite *UserServiceTestSuite) TestAdminUpdateUser_Flags() {
	admin := domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}
	target := domain.User{UserID: uuid.NewString(), Role: domain.RoleUser}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, admin.UserID).Return(&admin, nil).Once()
	suite.mockUserRepo.On("FindUserByID", suite.ctx, target.UserID).Return(&target, nil).Once()

	verified := true
	suite.mockUserRepo.On("UpdateUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == target.UserID && u.IsVerified
	})).Return(nil).Once()

	updated, err := suite.service.AdminUpdateUser(suite.ctx, admin.UserID, target.UserID, dto.AdminUpdateUserRequest{IsVerified: &verified})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), updated.IsVerified)
}

func (suite *UserServiceTestSuite) TestEnsureSeedAdmin_AlreadyExists() {
	admin := domain.User{UserID: uuid.NewString(), Username: "qrasickz"}
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "qrasickz").Return(&admin, nil).Once()

	err := suite.service.EnsureSeedAdmin(suite.ctx, "qrasickz", "1111", "Head Administrator")

	assert.NoError(suite.T(), err)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUserWithDeposit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestEnsureSeedAdmin_CreatesAndFunds() {
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "qrasickz").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUserWithDeposit", suite.ctx,
		mock.MatchedBy(func(u domain.User) bool {
			return u.Username == "qrasickz" && u.Role == domain.RoleAdmin && u.IsVerified &&
				u.Balance.Equal(suite.seedBalance)
		}),
		mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e != nil && e.Category == domain.CategoryDeposit && e.Amount.Equal(suite.seedBalance)
		}),
	).Return(nil).Once()

	err := suite.service.EnsureSeedAdmin(suite.ctx, "qrasickz", "1111", "Head Administrator")

	assert.NoError(suite.T(), err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
