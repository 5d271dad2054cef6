package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brevetti-digital/backend/internal/constants"
	"github.com/brevetti-digital/backend/internal/dto"
	"github.com/brevetti-digital/backend/internal/model"
	"github.com/brevetti-digital/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepository) UpdateLastAccess(ctx context.Context, id uint, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func guardedEngine(jwtService *service.JWTService, repo *mockUserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := NewJWTMiddleware(jwtService, repo)
	r.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		role := c.GetString(constants.GinKeyUserRole)
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	return r
}

func serveWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthValidToken(t *testing.T) {
	jwtService := service.NewJWTService("test-secret-key", time.Hour)
	user := &model.User{Model: gorm.Model{ID: 42}, Email: "a@x.com", Role: model.RoleAdministrator, Active: true}

	token, err := jwtService.GenerateToken(user)
	assert.NoError(t, err)

	repo := new(mockUserRepository)
	repo.On("GetByID", mock.Anything, uint(42)).Return(user, nil)

	w := serveWithToken(guardedEngine(jwtService, repo), token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(model.RoleAdministrator))
}

func TestRequireAuthMissingHeader(t *testing.T) {
	jwtService := service.NewJWTService("test-secret-key", time.Hour)
	repo := new(mockUserRepository)

	w := serveWithToken(guardedEngine(jwtService, repo), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	repo.AssertNotCalled(t, "GetByID")
}

func TestRequireAuthGarbageToken(t *testing.T) {
	jwtService := service.NewJWTService("test-secret-key", time.Hour)
	repo := new(mockUserRepository)

	w := serveWithToken(guardedEngine(jwtService, repo), "not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	repo.AssertNotCalled(t, "GetByID")
}

// A token issued while the account was active stops working as soon as
// the account is deactivated, without waiting for the token to expire.
func TestRequireAuthDeactivatedAfterIssuance(t *testing.T) {
	jwtService := service.NewJWTService("test-secret-key", time.Hour)
	user := &model.User{Model: gorm.Model{ID: 42}, Email: "a@x.com", Role: model.RoleStandardUser, Active: true}

	token, err := jwtService.GenerateToken(user)
	assert.NoError(t, err)

	disabled := *user
	disabled.Active = false

	repo := new(mockUserRepository)
	repo.On("GetByID", mock.Anything, uint(42)).Return(&disabled, nil)

	w := serveWithToken(guardedEngine(jwtService, repo), token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "account is disabled")
}

func TestRequireAuthDeletedSubject(t *testing.T) {
	jwtService := service.NewJWTService("test-secret-key", time.Hour)
	user := &model.User{Model: gorm.Model{ID: 42}, Email: "a@x.com", Role: model.RoleStandardUser, Active: true}

	token, err := jwtService.GenerateToken(user)
	assert.NoError(t, err)

	repo := new(mockUserRepository)
	repo.On("GetByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	w := serveWithToken(guardedEngine(jwtService, repo), token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing or invalid token")
}
