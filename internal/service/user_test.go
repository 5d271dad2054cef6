package service

import (
	"context"
	"testing"

	"github.com/brevetti-digital/backend/internal/dto"
	apperrors "github.com/brevetti-digital/backend/internal/errors"
	"github.com/brevetti-digital/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestHashPasswordSaltedPerCall(t *testing.T) {
	first, err := hashPassword("Passw0rd!")
	assert.NoError(t, err)

	second, err := hashPassword("Passw0rd!")
	assert.NoError(t, err)

	// Random salt per call: same input, different digests
	assert.NotEqual(t, first, second)

	// Both still verify against the original input
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(first), []byte("Passw0rd!")))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(second), []byte("Passw0rd!")))

	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(first), []byte("other")))
}

func TestCreateUserHashesAndLowercasesEmail(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	var created *model.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.User)
	}).Return(nil)

	resp, err := svc.Create(context.Background(), dto.CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Rossi",
		Email:     "Ada.Rossi@Example.COM",
		Password:  "Passw0rd!",
		Role:      "STANDARD_USER",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ada.rossi@example.com", created.Email)
	assert.NotEqual(t, "Passw0rd!", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Passw0rd!")))

	// The response never carries the hash
	assert.Equal(t, "ada.rossi@example.com", resp.Email)
}

func TestCreateUserDuplicateEmailIsConflict(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{
		FirstName: "Ada",
		LastName:  "Rossi",
		Email:     "a@x.com",
		Password:  "Passw0rd!",
		Role:      "STANDARD_USER",
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestDeleteUserNotFound(t *testing.T) {
	repo := new(mockUserRepository)
	svc := NewUserService(repo)

	repo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
