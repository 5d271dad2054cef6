package database

import (
	"errors"
	"strings"

	"github.com/brevetti-digital/backend/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultAdmin defines the default administrator credentials
type DefaultAdmin struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// GetDefaultAdmin returns the default administrator account
func GetDefaultAdmin() DefaultAdmin {
	return DefaultAdmin{
		FirstName: "Admin",
		LastName:  "Brevetti",
		Email:     "admin@brevetti.local",
		Password:  "Admin@123", // Change this in production!
	}
}

// Seed creates initial data for the database
func Seed(db *gorm.DB) error {
	return SeedUsers(db)
}

// SeedUsers creates the default administrator if not exists
func SeedUsers(db *gorm.DB) error {
	admin := GetDefaultAdmin()

	var existingUser model.User
	result := db.Where("email = ?", strings.ToLower(admin.Email)).First(&existingUser)

	if result.Error == nil {
		// Admin already exists, skip seeding
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     strings.ToLower(admin.Email),
		Password:  string(hashedPassword),
		Role:      model.RoleAdministrator,
		Active:    true,
	}

	return db.Create(&user).Error
}
