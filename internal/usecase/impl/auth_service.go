// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo        repository.UserRepository
	hasher          service.PasswordHasher
	policy          service.PasswordPolicy
	tokenService    service.TokenService
	normalizeEmails bool
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	Policy       service.PasswordPolicy
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	normalizeEmails := false
	if params.Config != nil && params.Config.Auth != nil {
		normalizeEmails = params.Config.Auth.NormalizeEmails
	}

	return &authService{
		userRepo:        params.UserRepo,
		hasher:          params.Hasher,
		policy:          params.Policy,
		tokenService:    params.TokenService,
		normalizeEmails: normalizeEmails,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// storeEmail applies the configured email normalization. With normalization
// off, emails are stored and compared exactly as the client sent them.
func (srv *authService) storeEmail(email string) string {
	if srv.normalizeEmails {
		return strings.ToLower(email)
	}

	return email
}

// Register creates a new user after rejecting weak passwords and duplicate emails.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.UserView, error) {
	email := srv.storeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// Strength rules run before any store interaction.
	if err := srv.policy.Validate(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email))

		return nil, errors.Wrap(err, "password does not meet strength requirements")
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, email taken", slog.String("email", email))

		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("registration conflict")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to query user by email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}

	// The pre-check above is not transactional with the insert; the store's
	// unique constraint is the final arbiter and the repository translates its
	// violation back to the same conflict error.
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create user during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return toUserView(newUser), nil
}

// Login verifies credentials and mints a token on success.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := srv.storeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Unknown email and wrong password must be indistinguishable.
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to query user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Sign(user)
	if err != nil {
		srv.log(ctx).Error("Failed to sign token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign token during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		User:  toUserView(user),
		Token: token,
	}, nil
}

// toUserView projects a user entity to its public view. The password hash
// never crosses this boundary.
func toUserView(user *entity.User) *usecase.UserView {
	return &usecase.UserView{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
