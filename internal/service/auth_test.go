package service

import (
	"context"
	"testing"
	"time"

	"github.com/brevetti-digital/backend/internal/dto"
	apperrors "github.com/brevetti-digital/backend/internal/errors"
	"github.com/brevetti-digital/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context, filter dto.UserFilter, limit, offset int) ([]model.User, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) UpdateLastAccess(ctx context.Context, id uint, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func hashedPassword(t *testing.T, plaintext string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func activeUser(t *testing.T) *model.User {
	return &model.User{
		Model:     gorm.Model{ID: 42},
		FirstName: "Ada",
		LastName:  "Rossi",
		Email:     "a@x.com",
		Password:  hashedPassword(t, "Passw0rd!"),
		Role:      model.RoleStandardUser,
		Active:    true,
	}
}

func TestLoginSuccess(t *testing.T) {
	repo := new(mockUserRepository)
	jwtSvc := NewJWTService(testSecret, time.Hour)
	svc := NewAuthService(repo, jwtSvc)

	user := activeUser(t)
	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(user, nil)
	repo.On("UpdateLastAccess", mock.Anything, uint(42), mock.AnythingOfType("time.Time")).Return(nil)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "Passw0rd!"})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.Equal(t, int(time.Hour.Seconds()), resp.ExpiresIn)

	// The decoded token carries the identity's role
	claims, err := jwtSvc.ValidateToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, user.ID, claims.UserID)

	repo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewAuthService(repo, NewJWTService(testSecret, time.Hour))

	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(activeUser(t), nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "wrong"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	repo.AssertNotCalled(t, "UpdateLastAccess", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginUnknownEmailSameErrorAsWrongPassword(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewAuthService(repo, NewJWTService(testSecret, time.Hour))

	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(activeUser(t), nil)
	repo.On("GetByEmail", mock.Anything, "nouser@x.com").Return(nil, gorm.ErrRecordNotFound)

	_, wrongPassErr := svc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "wrong"})
	_, unknownErr := svc.Login(context.Background(), dto.LoginRequest{Email: "nouser@x.com", Password: "anything"})

	// Identical error so registered emails cannot be probed
	assert.Equal(t, wrongPassErr, unknownErr)
	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewAuthService(repo, NewJWTService(testSecret, time.Hour))

	user := activeUser(t)
	user.Active = false
	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(user, nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "Passw0rd!"})

	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
	repo.AssertNotCalled(t, "UpdateLastAccess", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginDisabledNotRevealedOnBadPassword(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewAuthService(repo, NewJWTService(testSecret, time.Hour))

	user := activeUser(t)
	user.Active = false
	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(user, nil)

	// Wrong credentials on a disabled account: credential failure wins,
	// disabled-ness is surfaced only after credentials check out
	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "wrong"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginSucceedsWhenLastAccessWriteFails(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewAuthService(repo, NewJWTService(testSecret, time.Hour))

	repo.On("GetByEmail", mock.Anything, "a@x.com").Return(activeUser(t), nil)
	repo.On("UpdateLastAccess", mock.Anything, uint(42), mock.AnythingOfType("time.Time")).Return(gorm.ErrInvalidDB)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "Passw0rd!"})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}
