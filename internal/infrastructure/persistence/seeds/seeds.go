package seeds

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quickdesk/internal/infrastructure/persistence/models"
)

const (
	defaultAdminName     = "admin"
	defaultAdminEmail    = "admin@quickdesk.com"
	defaultAdminPassword = "admin123"
)

// SeedDefaultAdmin creates the bootstrap admin account when no account
// with its email exists yet. The password must be changed after first login.
func SeedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.UserModel{}).Where("email = ?", defaultAdminEmail).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := models.UserModel{
		Name:         defaultAdminName,
		Email:        defaultAdminEmail,
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	return nil
}

// SeedDefaultCategories inserts the stock ticket categories, skipping any
// name that already exists.
func SeedDefaultCategories(db *gorm.DB) error {
	categories := []models.CategoryModel{
		{Name: "Technical Support", Description: "Technical issues and troubleshooting", IsActive: true},
		{Name: "Account Issues", Description: "Login, password, and account related problems", IsActive: true},
		{Name: "Feature Request", Description: "Suggestions for new features", IsActive: true},
		{Name: "Bug Report", Description: "Report software bugs and issues", IsActive: true},
		{Name: "General Inquiry", Description: "General questions and information", IsActive: true},
	}

	for _, category := range categories {
		if err := db.FirstOrCreate(&category, models.CategoryModel{Name: category.Name}).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", category.Name, err)
		}
	}
	return nil
}

func SeedAll(db *gorm.DB) error {
	if err := SeedDefaultAdmin(db); err != nil {
		return err
	}
	return SeedDefaultCategories(db)
}
