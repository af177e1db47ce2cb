package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chalet/internal/domain/entity"
	domainerrors "chalet/internal/domain/errors"
	"chalet/internal/domain/repository"
	mockRepo "chalet/internal/mocks/repository"
	mockSvc "chalet/internal/mocks/service"
	"chalet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

const testDummyHash = "dummy_timing_pad_hash"

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hasher.EXPECT().Hash("credential-timing-pad").Return(testDummyHash, nil).Once()

	service, err := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})
	require.NoError(t, err)

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "renter@example.com",
		Name:         "Renter",
		PasswordHash: "stored_hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "renter@example.com").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("Password123!", "stored_hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateToken(&entity.Principal{UserID: storedUser.ID, Email: storedUser.Email}).
		Return("signed.jwt.token", nil)
	fx.tokenService.EXPECT().TokenDuration().Return(24 * time.Hour)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Renter@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, 24*time.Hour, output.ExpiresIn)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)
	// The dummy comparison keeps the unknown-email path as slow as the
	// wrong-password path.
	fx.hasher.EXPECT().Check("whatever", testDummyHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "renter@example.com",
		PasswordHash: "stored_hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "renter@example.com").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("wrong-password", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "renter@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Check(mock.Anything, testDummyHash).Return(false)

	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "pw"})

	storedUser := &entity.User{ID: uuid.New(), Email: "renter@example.com", PasswordHash: "stored_hash"}
	fx.userRepo.EXPECT().FindByEmail(ctx, "renter@example.com").Return(storedUser, nil)
	fx.hasher.EXPECT().Check("pw", "stored_hash").Return(false)

	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "renter@example.com", Password: "pw"})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)

	var appErrA, appErrB domainerrors.AppError
	require.ErrorAs(t, unknownEmailErr, &appErrA)
	require.ErrorAs(t, wrongPasswordErr, &appErrB)
	assert.Equal(t, appErrB.ErrorCode(), appErrA.ErrorCode())
	assert.Equal(t, appErrB.Message(), appErrA.Message())
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "New Renter",
		Email:    "New@Example.com",
		Password: "Password123!",
	}
	newID := uuid.New()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "new@example.com", user.Email)
					assert.Equal(t, "hashed_password", user.PasswordHash)
					user.ID = newID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		GenerateToken(&entity.Principal{UserID: newID, Email: "new@example.com"}).
		Return("signed.jwt.token", nil)
	fx.tokenService.EXPECT().TokenDuration().Return(24 * time.Hour)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, "new@example.com", output.User.Email)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, 24*time.Hour, output.ExpiresIn)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("", errors.New("bcrypt exploded"))

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Renter",
		Email:    "renter@example.com",
		Password: "Password123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:    uuid.New(),
		Email: "renter@example.com",
		Name:  "Renter",
	}

	fx.userRepo.EXPECT().FindByID(ctx, storedUser.ID).Return(storedUser, nil)

	user, err := fx.service.CurrentUser(ctx, &entity.Principal{UserID: storedUser.ID, Email: storedUser.Email})

	require.NoError(t, err)
	assert.Equal(t, storedUser, user)
}

func TestAuthService_CurrentUser_NilPrincipal(t *testing.T) {
	fx := createTestAuthService(t)

	user, err := fx.service.CurrentUser(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_CurrentUser_VanishedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	gone := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, gone).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.CurrentUser(ctx, &entity.Principal{UserID: gone})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
