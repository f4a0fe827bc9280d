package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"quickdesk/internal/domain/ticket"
	"quickdesk/internal/infrastructure/persistence/mappers"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(database *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	comments := make([]*ticket.Comment, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}

func (r *CommentRepository) CountByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ticketIDs))
	if len(ticketIDs) == 0 {
		return counts, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		TicketID uint
		Count    int64
	}
	if err := tx.
		Model(&models.CommentModel{}).
		Select("ticket_id, COUNT(*) AS count").
		Where("ticket_id IN ?", ticketIDs).
		Group("ticket_id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	for _, row := range rows {
		counts[row.TicketID] = row.Count
	}

	return counts, nil
}
