package service

import (
	"context"
	"errors"
	"strings"

	"github.com/brevetti-digital/backend/internal/constants"
	"github.com/brevetti-digital/backend/internal/dto"
	apperrors "github.com/brevetti-digital/backend/internal/errors"
	"github.com/brevetti-digital/backend/internal/model"
	"github.com/brevetti-digital/backend/internal/repository"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/brevetti-digital/backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// hashPassword is the explicit hashing step for create/update flows.
// Never a model hook: hashing stays a visible, testable service call.
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "CreateUser")

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrUnexpected, err)
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     strings.ToLower(req.Email),
		Password:  hash,
		Role:      model.Role(req.Role),
		Active:    true,
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	logger.InfoWithContext(ctx, "User created").
		Uint("user_id", user.ID).
		String("role", string(user.Role)).
		Log()

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "GetUser")

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) List(ctx context.Context, filter dto.UserFilter, page constants.PaginationParams) (*constants.PaginatedResult, error) {
	ctx = ctxutil.NewContext(ctx, "service", "ListUsers")

	users, total, err := s.users.List(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	result := constants.NewPaginatedResult(dto.NewUserResponses(users), total, page.Page, page.Limit)
	return &result, nil
}

func (s *UserService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	ctx = ctxutil.NewContext(ctx, "service", "UpdateUser")

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" {
		user.Email = strings.ToLower(req.Email)
	}
	if req.Password != "" {
		hash, err := hashPassword(req.Password)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrUnexpected, err)
		}
		user.Password = hash
	}
	if req.Role != "" {
		user.Role = model.Role(req.Role)
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.TranslateStoreError(err)
	}

	logger.InfoWithContext(ctx, "User updated").
		Uint("user_id", user.ID).
		Log()

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.NewContext(ctx, "service", "DeleteUser")

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.WrapError(apperrors.ErrNotFound, err)
		}
		return apperrors.TranslateStoreError(err)
	}

	logger.InfoWithContext(ctx, "User deleted").
		Uint("user_id", id).
		Log()

	return nil
}
