package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	mockRepo "portal/internal/mocks/repository"
	mockSvc "portal/internal/mocks/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	policy       *mockSvc.MockPasswordPolicy
	tokenService *mockSvc.MockTokenService
}

func newAuthServiceForTest(t *testing.T, cfg *config.Config) (usecase.AuthUsecase, *authServiceMocks) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	mocks := &authServiceMocks{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		policy:       mockSvc.NewMockPasswordPolicy(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	service := NewAuthService(AuthServiceParams{
		UserRepo:     mocks.userRepo,
		Hasher:       mocks.hasher,
		Policy:       mocks.policy,
		TokenService: mocks.tokenService,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, mocks
}

func TestAuthService_Register_Success(t *testing.T) {
	service, mocks := newAuthServiceForTest(t, nil)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "Sup3rSecret!",
	}
	generatedID := uuid.New()
	now := time.Now()

	mocks.policy.EXPECT().Validate(input.Password).Return(nil)
	mocks.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	mocks.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, input.Email, user.Email)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = generatedID
			user.CreatedAt = now
			user.UpdatedAt = now
		}).
		Return(nil)

	view, err := service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, generatedID, view.ID)
	assert.Equal(t, input.Email, view.Email)
	assert.Equal(t, now, view.CreatedAt)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	service, mocks := newAuthServiceForTest(t, nil)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "short",
	}

	mocks.policy.EXPECT().
		Validate(input.Password).
		Return(domainerrors.ErrWeakPassword.WrapMessage("password too short"))

	view, err := service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
	// No lookup, hashing, or insert may happen after a policy rejection.
	mocks.userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	mocks.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	service, mocks := newAuthServiceForTest(t, nil)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "Sup3rSecret!",
	}
	existing := &entity.User{ID: uuid.New(), Email: input.Email}

	mocks.policy.EXPECT().Validate(input.Password).Return(nil)
	mocks.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)

	view, err := service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	mocks.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_StoreError(t *testing.T) {
	service, mocks := newAuthServiceForTest(t, nil)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "Sup3rSecret!",
	}
	storeErr := errors.New("connection reset")

	mocks.policy.EXPECT().Validate(input.Password).Return(nil)
	mocks.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, storeErr)

	view, err := service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, storeErr))
	assert.False(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	service, mocks := newAuthServiceForTest(t, nil)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "Sup3rSecret!",
	}

	mocks.policy.EXPECT().Validate(input.Password).Return(nil)
	mocks.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	mocks.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	// A racing registration wins between the lookup and the insert; the
	// repository reports the unique violation as the same conflict.
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	view, err := service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_NormalizesEmailWhenConfigured(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{NormalizeEmails: true}}
	service, mocks := newAuthServiceForTest(t, cfg)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Email:    "Alice@Example.COM",
		Password: "Sup3rSecret!",
	}

	mocks.policy.EXPECT().Validate(input.Password).Return(nil)
	mocks.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(nil, repository.ErrUserNotFound)
	mocks.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "alice@example.com", user.Email)
		}).
		Return(nil)

	_, err := service.Register(ctx, input)
	require.NoError(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	service, mocks := newAuthServiceForTest(t, nil)
	ctx := context.Background()

	input := &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Sup3rSecret!",
	}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	mocks.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	mocks.tokenService.EXPECT().Sign(user).Return("signed.jwt.token", nil)

	output, err := service.Login(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
	require.NotNil(t, output.User)
	assert.Equal(t, user.ID, output.User.ID)
	assert.Equal(t, user.Email, output.User.Email)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, mocks := newAuthServiceForTest(t, nil)
	ctx := context.Background()

	input := &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Sup3rSecret!",
	}

	mocks.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	output, err := service.Login(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	mocks.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, mocks := newAuthServiceForTest(t, nil)
	ctx := context.Background()

	input := &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password1!",
	}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}

	mocks.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	mocks.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := service.Login(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	mocks.tokenService.AssertNotCalled(t, "Sign", mock.Anything)
}

func TestAuthService_Login_CredentialErrorsIndistinguishable(t *testing.T) {
	// Unknown email and wrong password must surface the identical error value.
	serviceA, mocksA := newAuthServiceForTest(t, nil)
	mocksA.userRepo.EXPECT().
		FindByEmail(mock.Anything, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)
	_, errUnknown := serviceA.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Sup3rSecret!",
	})

	serviceB, mocksB := newAuthServiceForTest(t, nil)
	mocksB.userRepo.EXPECT().
		FindByEmail(mock.Anything, "alice@example.com").
		Return(&entity.User{Email: "alice@example.com", PasswordHash: "hashed"}, nil)
	mocksB.hasher.EXPECT().Check(mock.Anything, "hashed").Return(false)
	_, errWrong := serviceB.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password1!",
	})

	var appErrUnknown, appErrWrong domainerrors.AppError
	require.True(t, errors.As(errUnknown, &appErrUnknown))
	require.True(t, errors.As(errWrong, &appErrWrong))
	assert.Equal(t, appErrUnknown.HTTPCode(), appErrWrong.HTTPCode())
	assert.Equal(t, appErrUnknown.Message(), appErrWrong.Message())
}

func TestAuthService_Login_TokenSignError(t *testing.T) {
	service, mocks := newAuthServiceForTest(t, nil)
	ctx := context.Background()

	input := &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Sup3rSecret!",
	}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: "hashed_password",
	}
	signErr := errors.New("signing key unavailable")

	mocks.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	mocks.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	mocks.tokenService.EXPECT().Sign(user).Return("", signErr)

	output, err := service.Login(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, signErr))
}
