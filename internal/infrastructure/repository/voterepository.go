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

type VoteRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewVoteRepository(database *gorm.DB) *VoteRepository {
	return &VoteRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *VoteRepository) Save(ctx context.Context, v *ticket.Vote) error {
	model := r.mapper.VoteToModel(v)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}

	return v.SetID(model.ID)
}

func (r *VoteRepository) Update(ctx context.Context, v *ticket.Vote) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.VoteModel{}).
		Where("id = ?", v.ID()).
		Update("vote_type", v.Type().String())
	if result.Error != nil {
		return fmt.Errorf("failed to update vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("vote not found")
	}

	return nil
}

func (r *VoteRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.VoteModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("vote not found")
	}

	return nil
}

func (r *VoteRepository) GetByTicketAndVoter(ctx context.Context, ticketID, voterID uint) (*ticket.Vote, error) {
	var model models.VoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("ticket_id = ? AND voter_id = ?", ticketID, voterID).
		First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find vote: %w", err)
	}

	return r.mapper.VoteToDomain(&model)
}
