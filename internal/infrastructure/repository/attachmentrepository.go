package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/db"
	"quickdesk/internal/shared/errors"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(database *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("attachment not found")
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.AttachmentToDomain(&model)
}

func (r *AttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	attachments := make([]*ticket.Attachment, len(attachmentModels))
	for i := range attachmentModels {
		a, err := r.mapper.AttachmentToDomain(&attachmentModels[i])
		if err != nil {
			return nil, err
		}
		attachments[i] = a
	}

	return attachments, nil
}
