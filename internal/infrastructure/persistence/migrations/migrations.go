package migrations

import (
	"gorm.io/gorm"

	"quickdesk/internal/infrastructure/persistence/models"
)

func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.VoteModel{},
	)
}
