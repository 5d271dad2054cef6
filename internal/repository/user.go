package repository

import (
	"context"
	"strings"
	"time"

	"github.com/brevetti-digital/backend/internal/dto"
	"github.com/brevetti-digital/backend/internal/model"
	ctxutil "github.com/brevetti-digital/backend/pkg/context"
	"github.com/brevetti-digital/backend/pkg/logger"
	"gorm.io/gorm"
)

// UserRepository is the persistence port for identities
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, filter dto.UserFilter, limit, offset int) ([]model.User, int64, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
	UpdateLastAccess(ctx context.Context, id uint, at time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "GetByID")

	var user model.User
	result := r.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		logger.DebugWithContext(ctx, "Failed to get user by ID").
			Uint("user_id", id).
			Err(result.Error).
			Log()
		return nil, result.Error
	}

	return &user, nil
}

// GetByEmail performs a case-insensitive exact match on the login handle
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "GetByEmail")

	var user model.User
	result := r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(email)).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context, filter dto.UserFilter, limit, offset int) ([]model.User, int64, error) {
	ctx = ctxutil.NewContext(ctx, "repository", "List")

	query := r.db.WithContext(ctx).Model(&model.User{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count users").Err(err).Log()
		return nil, 0, err
	}

	var users []model.User
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch users").
			Int("limit", limit).
			Int("offset", offset).
			Err(err).
			Log()
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	ctx = ctxutil.NewContext(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create user").
			String("email", user.Email).
			Err(err).
			Log()
		return err
	}

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	ctx = ctxutil.NewContext(ctx, "repository", "Update")

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to update user").
			Uint("user_id", user.ID).
			Err(err).
			Log()
		return err
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.NewContext(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete user").
			Uint("user_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// UpdateLastAccess writes only the last_access_at column. Best-effort
// telemetry: callers may ignore the error.
func (r *userRepository) UpdateLastAccess(ctx context.Context, id uint, at time.Time) error {
	ctx = ctxutil.NewContext(ctx, "repository", "UpdateLastAccess")

	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("last_access_at", at).Error
}
