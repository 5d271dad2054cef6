package service

import (
	"testing"
	"time"

	"github.com/brevetti-digital/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key"

func testUser() *model.User {
	return &model.User{
		Model:  gorm.Model{ID: 42},
		Email:  "a@x.com",
		Role:   model.RoleStandardUser,
		Active: true,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	token, err := svc.GenerateToken(testUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, model.RoleStandardUser, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateTokenExpired(t *testing.T) {
	// Negative TTL puts the expiry in the past: the T+epsilon case
	svc := NewJWTService(testSecret, -time.Minute)

	token, err := svc.GenerateToken(testUser())
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService(testSecret, time.Hour)
	verifier := NewJWTService("another-secret", time.Hour)

	token, err := issuer.GenerateToken(testUser())
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
