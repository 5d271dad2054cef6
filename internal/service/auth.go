package service

import (
	"context"
	"errors"
	"time"

	"github.com/brevetti-digital/backend/internal/dto"
	apperrors "github.com/brevetti-digital/backend/internal/errors"
	"github.com/brevetti-digital/backend/internal/repository"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/brevetti-digital/backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	users repository.UserRepository
	jwt   *JWTService
}

func NewAuthService(users repository.UserRepository, jwt *JWTService) *AuthService {
	return &AuthService{
		users: users,
		jwt:   jwt,
	}
}

// Login verifies a credential pair and issues a session token.
//
// Unknown email and wrong password produce the same error so registered
// addresses cannot be enumerated. The active flag is checked only after
// the credentials are confirmed valid: a guesser never learns that a
// disabled account exists.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "Login")

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnWithContext(ctx, "Login attempt for unknown email").Log()
			return nil, apperrors.ErrInvalidCredentials
		}
		logger.ErrorWithContext(ctx, "Failed to look up user for login").Err(err).Log()
		return nil, apperrors.WrapError(apperrors.ErrUnexpected, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnWithContext(ctx, "Login attempt with wrong password").
			Uint("user_id", user.ID).
			Log()
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.Active {
		logger.WarnWithContext(ctx, "Login attempt on disabled account").
			Uint("user_id", user.ID).
			Log()
		return nil, apperrors.ErrAccountDisabled
	}

	// Best-effort telemetry; a lost write must not fail the login
	now := time.Now().UTC()
	if err := s.users.UpdateLastAccess(ctx, user.ID, now); err != nil {
		logger.WarnWithContext(ctx, "Failed to update last access timestamp").
			Uint("user_id", user.ID).
			Err(err).
			Log()
	} else {
		user.LastAccessAt = &now
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to sign session token").
			Uint("user_id", user.ID).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrUnexpected, err)
	}

	logger.InfoWithContext(ctx, "User logged in").
		Uint("user_id", user.ID).
		String("role", string(user.Role)).
		Log()

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.jwt.TTL().Seconds()),
		User:      dto.NewUserResponse(user),
	}, nil
}
